// Package library holds the catalog of known algebraic structures and the
// persistence layer for discoveries: JSON documents on disk plus a
// queryable store index.
package library

import (
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
)

// The seed catalog. Each factory builds a fresh signature so callers may
// mutate their copy freely.

func Magma() *core.Signature {
	return &core.Signature{
		Name:  "Magma",
		Sorts: []core.Sort{{Name: "S", Description: "carrier set"}},
		Operations: []core.Operation{
			{Name: "mul", Domain: []string{"S", "S"}, Codomain: "S", Description: "binary operation"},
		},
		Description: "A set with a single binary operation and no axioms.",
	}
}

func Semigroup() *core.Signature {
	return &core.Signature{
		Name:  "Semigroup",
		Sorts: []core.Sort{{Name: "S", Description: "carrier set"}},
		Operations: []core.Operation{
			{Name: "mul", Domain: []string{"S", "S"}, Codomain: "S", Description: "associative binary operation"},
		},
		Axioms: []core.Axiom{
			{Kind: core.Associativity, Equation: core.AssocEquation("mul"), Operations: []string{"mul"}},
		},
		Description: "A set with an associative binary operation.",
	}
}

func Monoid() *core.Signature {
	return &core.Signature{
		Name:  "Monoid",
		Sorts: []core.Sort{{Name: "S", Description: "carrier set"}},
		Operations: []core.Operation{
			{Name: "mul", Domain: []string{"S", "S"}, Codomain: "S", Description: "associative binary operation"},
			{Name: "e", Codomain: "S", Description: "identity element"},
		},
		Axioms: []core.Axiom{
			{Kind: core.Associativity, Equation: core.AssocEquation("mul"), Operations: []string{"mul"}},
			{Kind: core.Identity, Equation: core.IdentityEquation("mul", "e"), Operations: []string{"mul", "e"}},
		},
		Description: "A semigroup with an identity element.",
	}
}

func Group() *core.Signature {
	return &core.Signature{
		Name:  "Group",
		Sorts: []core.Sort{{Name: "G", Description: "group elements"}},
		Operations: []core.Operation{
			{Name: "mul", Domain: []string{"G", "G"}, Codomain: "G", Description: "group multiplication"},
			{Name: "e", Codomain: "G", Description: "identity element"},
			{Name: "inv", Domain: []string{"G"}, Codomain: "G", Description: "group inverse"},
		},
		Axioms: []core.Axiom{
			{Kind: core.Associativity, Equation: core.AssocEquation("mul"), Operations: []string{"mul"}},
			{Kind: core.Identity, Equation: core.IdentityEquation("mul", "e"), Operations: []string{"mul", "e"}},
			{Kind: core.Inverse, Equation: core.InverseEquation("mul", "inv", "e"), Operations: []string{"mul", "inv", "e"}},
		},
		Description: "A set with associative operation, identity, and inverses.",
	}
}

func AbelianGroup() *core.Signature {
	sig := Group()
	sig.Name = "AbelianGroup"
	sig.Axioms = append(sig.Axioms, core.Axiom{
		Kind: core.Commutativity, Equation: core.CommEquation("mul"), Operations: []string{"mul"},
	})
	sig.Description = "A group where the operation is commutative."
	return sig
}

func Ring() *core.Signature {
	return &core.Signature{
		Name:  "Ring",
		Sorts: []core.Sort{{Name: "R", Description: "ring elements"}},
		Operations: []core.Operation{
			{Name: "add", Domain: []string{"R", "R"}, Codomain: "R", Description: "addition"},
			{Name: "mul", Domain: []string{"R", "R"}, Codomain: "R", Description: "multiplication"},
			{Name: "zero", Codomain: "R", Description: "additive identity"},
			{Name: "neg", Domain: []string{"R"}, Codomain: "R", Description: "additive inverse"},
		},
		Axioms: []core.Axiom{
			{Kind: core.Associativity, Equation: core.AssocEquation("add"), Operations: []string{"add"}},
			{Kind: core.Commutativity, Equation: core.CommEquation("add"), Operations: []string{"add"}},
			{Kind: core.Identity, Equation: core.IdentityEquation("add", "zero"), Operations: []string{"add", "zero"}},
			{Kind: core.Inverse, Equation: core.InverseEquation("add", "neg", "zero"), Operations: []string{"add", "neg"}},
			{Kind: core.Associativity, Equation: core.AssocEquation("mul"), Operations: []string{"mul"}},
			{Kind: core.Distributivity, Equation: core.DistribEquation("mul", "add"), Operations: []string{"mul", "add"}},
		},
		Description: "Abelian group under addition with associative, distributive multiplication.",
	}
}

func Field() *core.Signature {
	sig := Ring()
	sig.Name = "Field"
	sig.Operations = append(sig.Operations,
		core.Operation{Name: "one", Codomain: "R", Description: "multiplicative identity"},
		core.Operation{Name: "recip", Domain: []string{"R"}, Codomain: "R", Description: "multiplicative inverse (nonzero)"},
	)
	sig.Axioms = append(sig.Axioms,
		core.Axiom{Kind: core.Commutativity, Equation: core.CommEquation("mul"), Operations: []string{"mul"}},
		core.Axiom{Kind: core.Identity, Equation: core.IdentityEquation("mul", "one"), Operations: []string{"mul", "one"}},
	)
	sig.Description = "A commutative ring where every nonzero element has a multiplicative inverse."
	return sig
}

func Lattice() *core.Signature {
	x, y := core.Var{Name: "x"}, core.Var{Name: "y"}
	return &core.Signature{
		Name:  "Lattice",
		Sorts: []core.Sort{{Name: "L", Description: "lattice elements"}},
		Operations: []core.Operation{
			{Name: "meet", Domain: []string{"L", "L"}, Codomain: "L", Description: "greatest lower bound"},
			{Name: "join", Domain: []string{"L", "L"}, Codomain: "L", Description: "least upper bound"},
		},
		Axioms: []core.Axiom{
			{Kind: core.Associativity, Equation: core.AssocEquation("meet"), Operations: []string{"meet"}},
			{Kind: core.Associativity, Equation: core.AssocEquation("join"), Operations: []string{"join"}},
			{Kind: core.Commutativity, Equation: core.CommEquation("meet"), Operations: []string{"meet"}},
			{Kind: core.Commutativity, Equation: core.CommEquation("join"), Operations: []string{"join"}},
			{Kind: core.Idempotence, Equation: core.IdempotentEquation("meet"), Operations: []string{"meet"}},
			{Kind: core.Idempotence, Equation: core.IdempotentEquation("join"), Operations: []string{"join"}},
			{
				Kind: core.Absorption,
				Equation: core.Equation{
					LHS: core.NewApp("meet", x, core.NewApp("join", x, y)),
					RHS: x,
				},
				Operations:  []string{"meet", "join"},
				Description: "meet absorbs join",
			},
			{
				Kind: core.Absorption,
				Equation: core.Equation{
					LHS: core.NewApp("join", x, core.NewApp("meet", x, y)),
					RHS: x,
				},
				Operations:  []string{"meet", "join"},
				Description: "join absorbs meet",
			},
		},
		Description: "A set with meet and join satisfying absorption laws.",
	}
}

func Quasigroup() *core.Signature {
	x, y := core.Var{Name: "x"}, core.Var{Name: "y"}
	return &core.Signature{
		Name:  "Quasigroup",
		Sorts: []core.Sort{{Name: "Q", Description: "quasigroup elements"}},
		Operations: []core.Operation{
			{Name: "mul", Domain: []string{"Q", "Q"}, Codomain: "Q", Description: "binary operation"},
			{Name: "ldiv", Domain: []string{"Q", "Q"}, Codomain: "Q", Description: "left division"},
			{Name: "rdiv", Domain: []string{"Q", "Q"}, Codomain: "Q", Description: "right division"},
		},
		Axioms: []core.Axiom{
			{
				Kind: core.Custom,
				Equation: core.Equation{
					LHS: core.NewApp("mul", x, core.NewApp("ldiv", x, y)),
					RHS: y,
				},
				Operations:  []string{"mul", "ldiv"},
				Description: "left cancellation",
			},
			{
				Kind: core.Custom,
				Equation: core.Equation{
					LHS: core.NewApp("mul", core.NewApp("rdiv", x, y), y),
					RHS: x,
				},
				Operations:  []string{"mul", "rdiv"},
				Description: "right cancellation",
			},
			{
				Kind: core.Custom,
				Equation: core.Equation{
					LHS: core.NewApp("ldiv", x, core.NewApp("mul", x, y)),
					RHS: y,
				},
				Operations:  []string{"mul", "ldiv"},
				Description: "left division cancellation",
			},
			{
				Kind: core.Custom,
				Equation: core.Equation{
					LHS: core.NewApp("rdiv", core.NewApp("mul", x, y), y),
					RHS: x,
				},
				Operations:  []string{"mul", "rdiv"},
				Description: "right division cancellation",
			},
		},
		Description: "A Latin square: binary operation with unique solutions to a*x=b and y*a=b.",
	}
}

func Loop() *core.Signature {
	sig := Quasigroup()
	sig.Name = "Loop"
	sig.Operations = append(sig.Operations,
		core.Operation{Name: "e", Codomain: "Q", Description: "identity element"})
	sig.Axioms = append(sig.Axioms, core.Axiom{
		Kind: core.Identity, Equation: core.IdentityEquation("mul", "e"), Operations: []string{"mul", "e"},
	})
	sig.Description = "A quasigroup with a two-sided identity element."
	return sig
}

func LieAlgebra() *core.Signature {
	return &core.Signature{
		Name: "LieAlgebra",
		Sorts: []core.Sort{
			{Name: "L", Description: "Lie algebra elements"},
			{Name: "K", Description: "scalar field"},
		},
		Operations: []core.Operation{
			{Name: "add", Domain: []string{"L", "L"}, Codomain: "L", Description: "vector addition"},
			{Name: "scale", Domain: []string{"K", "L"}, Codomain: "L", Description: "scalar multiplication"},
			{Name: "bracket", Domain: []string{"L", "L"}, Codomain: "L", Description: "Lie bracket"},
			{Name: "neg", Domain: []string{"L"}, Codomain: "L", Description: "additive inverse"},
			{Name: "zero", Codomain: "L", Description: "zero vector"},
		},
		Axioms: []core.Axiom{
			{Kind: core.Associativity, Equation: core.AssocEquation("add"), Operations: []string{"add"}},
			{Kind: core.Commutativity, Equation: core.CommEquation("add"), Operations: []string{"add"}},
			{Kind: core.Identity, Equation: core.IdentityEquation("add", "zero"), Operations: []string{"add", "zero"}},
			{Kind: core.Inverse, Equation: core.InverseEquation("add", "neg", "zero"), Operations: []string{"add", "neg"}},
			{Kind: core.Anticommutativity, Equation: core.AnticommEquation("bracket"),
				Operations: []string{"bracket", "neg"}, Description: "antisymmetry of bracket"},
			{Kind: core.Jacobi, Equation: core.JacobiEquation("bracket"),
				Operations: []string{"bracket", "add", "neg"}, Description: "Jacobi identity"},
			{Kind: core.Bilinearity, Equation: core.DistribEquation("bracket", "add"),
				Operations: []string{"bracket", "add"}, Description: "bracket is bilinear (left)"},
		},
		Description: "A vector space with an antisymmetric bracket satisfying the Jacobi identity.",
	}
}

func VectorSpace() *core.Signature {
	return &core.Signature{
		Name: "VectorSpace",
		Sorts: []core.Sort{
			{Name: "V", Description: "vectors"},
			{Name: "K", Description: "scalars"},
		},
		Operations: []core.Operation{
			{Name: "add", Domain: []string{"V", "V"}, Codomain: "V", Description: "vector addition"},
			{Name: "scale", Domain: []string{"K", "V"}, Codomain: "V", Description: "scalar multiplication"},
			{Name: "neg", Domain: []string{"V"}, Codomain: "V", Description: "additive inverse"},
			{Name: "zero", Codomain: "V", Description: "zero vector"},
		},
		Axioms: []core.Axiom{
			{Kind: core.Associativity, Equation: core.AssocEquation("add"), Operations: []string{"add"}},
			{Kind: core.Commutativity, Equation: core.CommEquation("add"), Operations: []string{"add"}},
			{Kind: core.Identity, Equation: core.IdentityEquation("add", "zero"), Operations: []string{"add", "zero"}},
			{Kind: core.Inverse, Equation: core.InverseEquation("add", "neg", "zero"), Operations: []string{"add", "neg"}},
		},
		Description: "A module over a field with vector addition and scalar multiplication.",
	}
}

func InnerProductSpace() *core.Signature {
	x := core.Var{Name: "x"}
	y := core.Var{Name: "y"}
	sig := VectorSpace()
	sig.Name = "InnerProductSpace"
	sig.Operations = append(sig.Operations,
		core.Operation{Name: "inner", Domain: []string{"V", "V"}, Codomain: "K", Description: "inner product"})
	sig.Axioms = append(sig.Axioms,
		core.Axiom{
			Kind: core.Commutativity,
			Equation: core.Equation{
				LHS: core.NewApp("inner", x, y),
				RHS: core.NewApp("inner", y, x),
			},
			Operations:  []string{"inner"},
			Description: "symmetry of inner product",
		},
		core.Axiom{
			Kind: core.Positivity,
			Equation: core.Equation{
				LHS: core.NewApp("inner", x, x),
				RHS: core.NewApp("inner", x, x),
			},
			Operations:  []string{"inner"},
			Description: "<x,x> >= 0 (positivity, encoded symbolically)",
		},
	)
	sig.Description = "A vector space with a symmetric, positive-definite inner product."
	return sig
}

func Category() *core.Signature {
	f := core.Var{Name: "f"}
	return &core.Signature{
		Name: "Category",
		Sorts: []core.Sort{
			{Name: "Ob", Description: "objects"},
			{Name: "Mor", Description: "morphisms"},
		},
		Operations: []core.Operation{
			{Name: "comp", Domain: []string{"Mor", "Mor"}, Codomain: "Mor", Description: "morphism composition"},
			{Name: "id", Domain: []string{"Ob"}, Codomain: "Mor", Description: "identity morphism"},
			{Name: "dom", Domain: []string{"Mor"}, Codomain: "Ob", Description: "domain of a morphism"},
			{Name: "cod", Domain: []string{"Mor"}, Codomain: "Ob", Description: "codomain of a morphism"},
		},
		Axioms: []core.Axiom{
			{Kind: core.Associativity, Equation: core.AssocEquation("comp"), Operations: []string{"comp"}},
			{
				Kind: core.Identity,
				Equation: core.Equation{
					LHS: core.NewApp("comp", f, core.NewApp("id", core.NewApp("dom", f))),
					RHS: f,
				},
				Operations:  []string{"comp", "id", "dom"},
				Description: "right identity",
			},
			{
				Kind: core.Identity,
				Equation: core.Equation{
					LHS: core.NewApp("comp", core.NewApp("id", core.NewApp("cod", f)), f),
					RHS: f,
				},
				Operations:  []string{"comp", "id", "cod"},
				Description: "left identity",
			},
		},
		Description: "Objects and morphisms with associative composition and identities.",
	}
}

// knownOrder fixes catalog iteration order.
var knownOrder = []string{
	"Magma", "Semigroup", "Monoid", "Group", "AbelianGroup",
	"Ring", "Field", "Lattice", "Quasigroup", "Loop",
	"LieAlgebra", "VectorSpace", "InnerProductSpace", "Category",
}

var knownFactories = map[string]func() *core.Signature{
	"Magma":             Magma,
	"Semigroup":         Semigroup,
	"Monoid":            Monoid,
	"Group":             Group,
	"AbelianGroup":      AbelianGroup,
	"Ring":              Ring,
	"Field":             Field,
	"Lattice":           Lattice,
	"Quasigroup":        Quasigroup,
	"Loop":              Loop,
	"LieAlgebra":        LieAlgebra,
	"VectorSpace":       VectorSpace,
	"InnerProductSpace": InnerProductSpace,
	"Category":          Category,
}

// KnownNames lists the catalog in its fixed order.
func KnownNames() []string {
	return append([]string(nil), knownOrder...)
}

// LoadAllKnown builds every catalog structure.
func LoadAllKnown() []*core.Signature {
	sigs := make([]*core.Signature, 0, len(knownOrder))
	for _, name := range knownOrder {
		sigs = append(sigs, knownFactories[name]())
	}
	return sigs
}

// LoadByName builds one catalog structure, or nil for unknown names.
func LoadByName(name string) *core.Signature {
	factory, ok := knownFactories[name]
	if !ok {
		return nil
	}
	return factory()
}

// KnownFingerprints returns the fingerprint set of the whole catalog.
func KnownFingerprints() map[string]bool {
	fps := map[string]bool{}
	for _, sig := range LoadAllKnown() {
		fps[sig.Fingerprint()] = true
	}
	return fps
}
