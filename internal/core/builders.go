package core

// Canonical equations for the standard axiom kinds. Move-generated axioms
// and the seed catalog use these builders so equal laws render identically.

// AssocEquation builds (x op y) op z = x op (y op z).
func AssocEquation(op string) Equation {
	x, y, z := Var{"x"}, Var{"y"}, Var{"z"}
	return Equation{
		LHS: NewApp(op, NewApp(op, x, y), z),
		RHS: NewApp(op, x, NewApp(op, y, z)),
	}
}

// CommEquation builds x op y = y op x.
func CommEquation(op string) Equation {
	x, y := Var{"x"}, Var{"y"}
	return Equation{LHS: NewApp(op, x, y), RHS: NewApp(op, y, x)}
}

// IdentityEquation builds the right identity law x op e = x.
func IdentityEquation(op, id string) Equation {
	x := Var{"x"}
	return Equation{LHS: NewApp(op, x, Const{id}), RHS: x}
}

// InverseEquation builds the right inverse law x op inv(x) = e.
func InverseEquation(op, inv, id string) Equation {
	x := Var{"x"}
	return Equation{LHS: NewApp(op, x, NewApp(inv, x)), RHS: Const{id}}
}

// IdempotentEquation builds x op x = x.
func IdempotentEquation(op string) Equation {
	x := Var{"x"}
	return Equation{LHS: NewApp(op, x, x), RHS: x}
}

// AnticommEquation builds x op y = neg(y op x). A negation operation named
// "neg" must exist in the signature using this law.
func AnticommEquation(op string) Equation {
	x, y := Var{"x"}, Var{"y"}
	return Equation{
		LHS: NewApp(op, x, y),
		RHS: NewApp("neg", NewApp(op, y, x)),
	}
}

// DistribEquation builds left distributivity a mul (b add c) = (a mul b) add (a mul c).
func DistribEquation(mul, add string) Equation {
	a, b, c := Var{"a"}, Var{"b"}, Var{"c"}
	return Equation{
		LHS: NewApp(mul, a, NewApp(add, b, c)),
		RHS: NewApp(add, NewApp(mul, a, b), NewApp(mul, a, c)),
	}
}

// SelfDistribEquation builds left self-distributivity
// a op (b op c) = (a op b) op (a op c), the rack/quandle law.
func SelfDistribEquation(op string) Equation {
	a, b, c := Var{"a"}, Var{"b"}, Var{"c"}
	return Equation{
		LHS: NewApp(op, a, NewApp(op, b, c)),
		RHS: NewApp(op, NewApp(op, a, b), NewApp(op, a, c)),
	}
}

// RightSelfDistribEquation builds right self-distributivity
// (a op b) op c = (a op c) op (b op c).
func RightSelfDistribEquation(op string) Equation {
	a, b, c := Var{"a"}, Var{"b"}, Var{"c"}
	return Equation{
		LHS: NewApp(op, NewApp(op, a, b), c),
		RHS: NewApp(op, NewApp(op, a, c), NewApp(op, b, c)),
	}
}

// JacobiEquation builds the Jacobi identity in the form
// [x,[y,z]] add [y,[z,x]] = neg([z,[x,y]]), using "add" and "neg".
func JacobiEquation(bracket string) Equation {
	x, y, z := Var{"x"}, Var{"y"}, Var{"z"}
	t1 := NewApp(bracket, x, NewApp(bracket, y, z))
	t2 := NewApp(bracket, y, NewApp(bracket, z, x))
	t3 := NewApp(bracket, z, NewApp(bracket, x, y))
	return Equation{
		LHS: NewApp("add", t1, t2),
		RHS: NewApp("neg", t3),
	}
}

// CanonicalEquation returns the canonical single-operation equation for an
// axiom kind, or false when the kind needs extra operations (identity needs
// a constant, inverse needs a unary) or has no canonical shape.
func CanonicalEquation(kind AxiomKind, op string) (Equation, bool) {
	switch kind {
	case Associativity:
		return AssocEquation(op), true
	case Commutativity:
		return CommEquation(op), true
	case Idempotence:
		return IdempotentEquation(op), true
	default:
		return Equation{}, false
	}
}
