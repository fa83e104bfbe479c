package moves

import (
	"fmt"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
)

// Dualize adds commutativity to each binary operation not already
// witnessed by a COMMUTATIVITY axiom. Dualizing a commutative operation is
// the identity, so those produce no child.
func (e *Engine) Dualize(sig *core.Signature) []Result {
	var results []Result
	for _, op := range sig.OpsByArity(2) {
		if sig.HasAxiom(core.Commutativity, op.Name) {
			continue
		}
		c := child(sig, fmt.Sprintf("%s_dual(%s)", sig.Name, op.Name),
			fmt.Sprintf("Dualize(%s)", op.Name))
		c.Axioms = append(c.Axioms, core.Axiom{
			Kind:        core.Commutativity,
			Equation:    core.CommEquation(op.Name),
			Operations:  []string{op.Name},
			Description: fmt.Sprintf("dualization of %s", op.Name),
		})
		results = append(results, Result{
			Signature:   c,
			Move:        Dualize,
			Parents:     []string{sig.Name},
			Description: fmt.Sprintf("Dualize %s in %s (add commutativity)", op.Name, sig.Name),
		})
	}
	return results
}

// Complete adds missing structure: identity elements, inverses, a second
// binary operation with distributivity, and a norm. Each completion is an
// independent child.
func (e *Engine) Complete(sig *core.Signature) []Result {
	var results []Result
	binaryOps := sig.OpsByArity(2)

	for _, op := range binaryOps {
		sort := op.Codomain

		hasIdentity := sig.HasAxiom(core.Identity, op.Name)
		if !hasIdentity {
			c := child(sig, fmt.Sprintf("%s+id(%s)", sig.Name, op.Name),
				fmt.Sprintf("Complete(identity for %s)", op.Name))
			idName := "e_" + op.Name
			c.Operations = append(c.Operations, core.Operation{
				Name: idName, Codomain: sort,
				Description: "identity for " + op.Name,
			})
			c.Axioms = append(c.Axioms, core.Axiom{
				Kind:       core.Identity,
				Equation:   core.IdentityEquation(op.Name, idName),
				Operations: []string{op.Name, idName},
			})
			results = append(results, Result{
				Signature:   c,
				Move:        Complete,
				Parents:     []string{sig.Name},
				Description: fmt.Sprintf("Add identity element for %s", op.Name),
			})
		}

		if hasIdentity && !sig.HasAxiom(core.Inverse, op.Name) {
			// The identity constant name comes from the existing
			// identity axiom's operation list; it must be nullary
			// (Category-style identities name a unary id map instead,
			// and those admit no inverse completion).
			idConst := ""
			for _, ax := range sig.Axioms {
				if ax.Kind == core.Identity && ax.Mentions(op.Name) {
					for _, o := range ax.Operations {
						if o == op.Name {
							continue
						}
						if decl, ok := sig.Op(o); ok && decl.Arity() == 0 {
							idConst = o
							break
						}
					}
				}
			}
			if idConst != "" {
				c := child(sig, fmt.Sprintf("%s+inv(%s)", sig.Name, op.Name),
					fmt.Sprintf("Complete(inverse for %s)", op.Name))
				invName := "inv_" + op.Name
				c.Operations = append(c.Operations, core.Operation{
					Name: invName, Domain: []string{sort}, Codomain: sort,
					Description: "inverse for " + op.Name,
				})
				c.Axioms = append(c.Axioms, core.Axiom{
					Kind:       core.Inverse,
					Equation:   core.InverseEquation(op.Name, invName, idConst),
					Operations: []string{op.Name, invName, idConst},
				})
				results = append(results, Result{
					Signature:   c,
					Move:        Complete,
					Parents:     []string{sig.Name},
					Description: fmt.Sprintf("Add inverse for %s", op.Name),
				})
			}
		}
	}

	// A lone binary operation invites a second one distributing over it.
	if len(binaryOps) == 1 {
		op := binaryOps[0]
		sort := op.Codomain
		c := child(sig, sig.Name+"+op2", "Complete(second operation)")
		c.Operations = append(c.Operations, core.Operation{
			Name: "op2", Domain: []string{sort, sort}, Codomain: sort,
			Description: "second binary operation",
		})
		c.Axioms = append(c.Axioms, core.Axiom{
			Kind:        core.Distributivity,
			Equation:    core.DistribEquation("op2", op.Name),
			Operations:  []string{"op2", op.Name},
			Description: "op2 distributes over original op",
		})
		results = append(results, Result{
			Signature:   c,
			Move:        Complete,
			Parents:     []string{sig.Name},
			Description: fmt.Sprintf("Add second operation distributing over %s", op.Name),
		})
	}

	// Norm completion. POSITIVITY is a symbolic marker: first-order
	// equational logic has no inequalities, so the axiom is the tautology
	// norm(x) = norm(x).
	if len(sig.Sorts) >= 2 || len(binaryOps) > 0 {
		if _, exists := sig.Op("norm"); !exists && len(sig.Sorts) > 0 {
			sort := sig.Sorts[0].Name
			scalarSort := sort
			if len(sig.Sorts) >= 2 {
				scalarSort = sig.Sorts[1].Name
			}
			c := child(sig, sig.Name+"+norm", "Complete(norm)")
			c.Operations = append(c.Operations, core.Operation{
				Name: "norm", Domain: []string{sort}, Codomain: scalarSort,
				Description: "norm function",
			})
			x := core.Var{Name: "x"}
			c.Axioms = append(c.Axioms, core.Axiom{
				Kind:        core.Positivity,
				Equation:    core.Equation{LHS: core.NewApp("norm", x), RHS: core.NewApp("norm", x)},
				Operations:  []string{"norm"},
				Description: "norm(x) >= 0 (positivity, encoded symbolically)",
			})
			results = append(results, Result{
				Signature:   c,
				Move:        Complete,
				Parents:     []string{sig.Name},
				Description: fmt.Sprintf("Add norm to %s", sig.Name),
			})
		}
	}

	return results
}

// Quotient forces additional equations (commutativity, idempotence) onto
// binary operations that do not already carry them.
func (e *Engine) Quotient(sig *core.Signature) []Result {
	var results []Result
	laws := []struct {
		kind  core.AxiomKind
		label string
		eq    func(string) core.Equation
	}{
		{core.Commutativity, "COMM", core.CommEquation},
		{core.Idempotence, "IDEM", core.IdempotentEquation},
	}

	for _, op := range sig.OpsByArity(2) {
		for _, law := range laws {
			if sig.HasAxiom(law.kind, op.Name) {
				continue
			}
			c := child(sig, fmt.Sprintf("%s_q(%s,%s)", sig.Name, law.label, op.Name),
				fmt.Sprintf("Quotient(%s on %s)", law.label, op.Name))
			c.Axioms = append(c.Axioms, core.Axiom{
				Kind:       law.kind,
				Equation:   law.eq(op.Name),
				Operations: []string{op.Name},
			})
			results = append(results, Result{
				Signature:   c,
				Move:        Quotient,
				Parents:     []string{sig.Name},
				Description: fmt.Sprintf("Quotient %s by %s on %s", sig.Name, law.label, op.Name),
			})
		}
	}
	return results
}

// Internalize turns each binary operation f: S x S -> S into a
// first-class Hom sort with evaluation and currying maps, related by the
// adjunction eval_f(curry_f(a), b) = f(a, b).
func (e *Engine) Internalize(sig *core.Signature) []Result {
	var results []Result
	for _, op := range sig.OpsByArity(2) {
		c := child(sig, fmt.Sprintf("%s_int(%s)", sig.Name, op.Name),
			fmt.Sprintf("Internalize(%s)", op.Name))
		sort := op.Codomain
		homSort := "Hom_" + op.Name
		evalName := "eval_" + op.Name
		curryName := "curry_" + op.Name

		c.Sorts = append(c.Sorts, core.Sort{Name: homSort, Description: "internalized " + op.Name})
		c.Operations = append(c.Operations,
			core.Operation{
				Name: evalName, Domain: []string{homSort, sort}, Codomain: sort,
				Description: "evaluate internalized " + op.Name,
			},
			core.Operation{
				Name: curryName, Domain: []string{sort}, Codomain: homSort,
				Description: "curry " + op.Name + " to Hom",
			},
		)

		a, b := core.Var{Name: "a"}, core.Var{Name: "b"}
		c.Axioms = append(c.Axioms, core.Axiom{
			Kind: core.Custom,
			Equation: core.Equation{
				LHS: core.NewApp(evalName, core.NewApp(curryName, a), b),
				RHS: core.NewApp(op.Name, a, b),
			},
			Operations:  []string{evalName, curryName, op.Name},
			Description: "curry-eval adjunction",
		})

		results = append(results, Result{
			Signature:   c,
			Move:        Internalize,
			Parents:     []string{sig.Name},
			Description: fmt.Sprintf("Internalize %s as Hom-object in %s", op.Name, sig.Name),
		})
	}
	return results
}

// Deform relaxes one axiom per child by a deformation parameter q living
// in a fresh Param sort. Associativity and commutativity get an explicit
// q-scaled right-hand side; other kinds keep their equation but are
// re-tagged CUSTOM to record the deformed origin.
func (e *Engine) Deform(sig *core.Signature) []Result {
	var results []Result
	if len(sig.Sorts) == 0 {
		return nil
	}

	for i, axiom := range sig.Axioms {
		if axiom.Kind == core.Custom || axiom.Kind == core.Positivity {
			continue
		}

		c := child(sig, fmt.Sprintf("%s_deform(%s)", sig.Name, axiom.Kind),
			fmt.Sprintf("Deform(%s)", axiom.Kind))
		ensureParam(c)

		// Drop the original axiom; the deformed variant replaces it.
		c.Axioms = append(c.Axioms[:i:i], c.Axioms[i+1:]...)

		switch axiom.Kind {
		case core.Associativity:
			opName := principalOp(axiom)
			deformOp := ensureDeformOp(c, opName, sig.Sorts[0].Name)
			x, y, z := core.Var{Name: "x"}, core.Var{Name: "y"}, core.Var{Name: "z"}
			c.Axioms = append(c.Axioms, core.Axiom{
				Kind: core.Custom,
				Equation: core.Equation{
					LHS: core.NewApp(opName, core.NewApp(opName, x, y), z),
					RHS: core.NewApp(deformOp, core.Const{Name: "q"},
						core.NewApp(opName, x, core.NewApp(opName, y, z))),
				},
				Operations:  []string{opName, deformOp},
				Description: "q-deformed ASSOCIATIVITY",
			})
		case core.Commutativity:
			opName := principalOp(axiom)
			deformOp := ensureDeformOp(c, opName, sig.Sorts[0].Name)
			x, y := core.Var{Name: "x"}, core.Var{Name: "y"}
			c.Axioms = append(c.Axioms, core.Axiom{
				Kind: core.Custom,
				Equation: core.Equation{
					LHS: core.NewApp(opName, x, y),
					RHS: core.NewApp(deformOp, core.Const{Name: "q"},
						core.NewApp(opName, y, x)),
				},
				Operations:  []string{opName, deformOp},
				Description: "q-deformed COMMUTATIVITY",
			})
		default:
			c.Axioms = append(c.Axioms, core.Axiom{
				Kind:        core.Custom,
				Equation:    axiom.Equation,
				Operations:  append([]string(nil), axiom.Operations...),
				Description: fmt.Sprintf("deformed-%s", axiom.Kind),
			})
		}

		results = append(results, Result{
			Signature:   c,
			Move:        Deform,
			Parents:     []string{sig.Name},
			Description: fmt.Sprintf("Deform %s in %s", axiom.Kind, sig.Name),
		})
	}
	return results
}

// SelfDistrib adds the rack/quandle laws. For each binary operation it
// emits a left-only child when left self-distributivity is absent, and a
// "full" child carrying whichever of the left and right laws were missing.
func (e *Engine) SelfDistrib(sig *core.Signature) []Result {
	var results []Result
	for _, op := range sig.OpsByArity(2) {
		hasLeft := sig.HasAxiom(core.SelfDistributivity, op.Name)
		hasRight := sig.HasAxiom(core.RightSelfDistributivity, op.Name)

		if !hasLeft {
			c := child(sig, fmt.Sprintf("%s_sd(%s)", sig.Name, op.Name),
				fmt.Sprintf("SelfDistrib(%s)", op.Name))
			c.Axioms = append(c.Axioms, core.Axiom{
				Kind:       core.SelfDistributivity,
				Equation:   core.SelfDistribEquation(op.Name),
				Operations: []string{op.Name},
			})
			results = append(results, Result{
				Signature:   c,
				Move:        SelfDistrib,
				Parents:     []string{sig.Name},
				Description: fmt.Sprintf("Add self-distributivity to %s in %s", op.Name, sig.Name),
			})
		}

		if !hasLeft || !hasRight {
			c := child(sig, fmt.Sprintf("%s_fsd(%s)", sig.Name, op.Name),
				fmt.Sprintf("SelfDistrib(full, %s)", op.Name))
			if !hasLeft {
				c.Axioms = append(c.Axioms, core.Axiom{
					Kind:       core.SelfDistributivity,
					Equation:   core.SelfDistribEquation(op.Name),
					Operations: []string{op.Name},
				})
			}
			if !hasRight {
				c.Axioms = append(c.Axioms, core.Axiom{
					Kind:       core.RightSelfDistributivity,
					Equation:   core.RightSelfDistribEquation(op.Name),
					Operations: []string{op.Name},
				})
			}
			results = append(results, Result{
				Signature:   c,
				Move:        SelfDistrib,
				Parents:     []string{sig.Name},
				Description: fmt.Sprintf("Add full self-distributivity to %s in %s", op.Name, sig.Name),
			})
		}
	}
	return results
}

// principalOp is the first operation an axiom constrains.
func principalOp(ax core.Axiom) string {
	if len(ax.Operations) > 0 {
		return ax.Operations[0]
	}
	return "op"
}

// ensureParam adds the deformation parameter sort and its constant q.
func ensureParam(sig *core.Signature) {
	hasParam := false
	for _, s := range sig.Sorts {
		if s.Name == "Param" {
			hasParam = true
			break
		}
	}
	if !hasParam {
		sig.Sorts = append(sig.Sorts, core.Sort{Name: "Param", Description: "deformation parameter"})
	}
	if _, ok := sig.Op("q"); !ok {
		sig.Operations = append(sig.Operations, core.Operation{
			Name: "q", Codomain: "Param", Description: "deformation constant",
		})
	}
}

// ensureDeformOp declares the scaling operation q_<op>: Param x S -> S.
func ensureDeformOp(sig *core.Signature, opName, sortName string) string {
	deformOp := "q_" + opName
	if _, ok := sig.Op(deformOp); !ok {
		sig.Operations = append(sig.Operations, core.Operation{
			Name: deformOp, Domain: []string{"Param", sortName}, Codomain: sortName,
			Description: "deformation scaling",
		})
	}
	return deformOp
}
