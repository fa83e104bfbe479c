package moves

import (
	"fmt"
	"strings"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
)

// Abstract extracts shared structure from two signatures: the axiom kinds
// present in both, re-expressed over a single abstract binary operation on
// a single carrier sort. Only kinds with a single-operation canonical
// equation survive; the rest (identity needs a constant, inverse needs a
// unary) are dropped. No shared survivors, no child.
func (e *Engine) Abstract(sigA, sigB *core.Signature) []Result {
	kindsB := map[core.AxiomKind]bool{}
	for _, ax := range sigB.Axioms {
		kindsB[ax.Kind] = true
	}
	kindsA := map[core.AxiomKind]bool{}
	for _, ax := range sigA.Axioms {
		kindsA[ax.Kind] = true
	}

	sig := &core.Signature{
		Name:  fmt.Sprintf("Abstract(%s,%s)", sigA.Name, sigB.Name),
		Sorts: []core.Sort{{Name: "S", Description: "abstract carrier"}},
		Operations: []core.Operation{{
			Name: "op", Domain: []string{"S", "S"}, Codomain: "S",
			Description: "abstract binary operation",
		}},
		DerivationChain: append(append([]string(nil), sigA.DerivationChain...),
			fmt.Sprintf("Abstract with %s", sigB.Name)),
	}

	var sharedNames []string
	for _, kind := range core.AllAxiomKinds {
		if !kindsA[kind] || !kindsB[kind] {
			continue
		}
		sharedNames = append(sharedNames, string(kind))
		if eq, ok := core.CanonicalEquation(kind, "op"); ok {
			sig.Axioms = append(sig.Axioms, core.Axiom{
				Kind:       kind,
				Equation:   eq,
				Operations: []string{"op"},
			})
		}
	}
	if len(sig.Axioms) == 0 {
		return nil
	}

	return []Result{{
		Signature: sig,
		Move:      Abstract,
		Parents:   []string{sigA.Name, sigB.Name},
		Description: fmt.Sprintf("Shared structure of %s and %s: [%s]",
			sigA.Name, sigB.Name, strings.Join(sharedNames, ", ")),
	}}
}

// Transfer combines two structures over their first carrier sorts, joined
// by a morphism. All operations are copied with a_/b_ prefixes, axiom
// equations are rewritten to the prefixed names, and when both parents
// have a binary operation the morphism is required to be a homomorphism
// between the first of each. Auxiliary sorts (scalars, parameters) are
// carried over so every copied operation still typechecks; colliding
// names from the second parent get a "_2" suffix.
func (e *Engine) Transfer(sigA, sigB *core.Signature) []Result {
	if len(sigA.Sorts) == 0 || len(sigB.Sorts) == 0 {
		return nil
	}
	sortA := sigA.Sorts[0].Name
	sortB := sigB.Sorts[0].Name
	if sortA == sortB {
		sortB = sortB + "_2"
	}

	sig := &core.Signature{
		Name: fmt.Sprintf("Transfer(%s,%s)", sigA.Name, sigB.Name),
		Sorts: []core.Sort{
			{Name: sortA, Description: "from " + sigA.Name},
			{Name: sortB, Description: "from " + sigB.Name},
		},
		DerivationChain: append(append([]string(nil), sigA.DerivationChain...),
			fmt.Sprintf("Transfer to %s", sigB.Name)),
	}

	declared := map[string]bool{sortA: true, sortB: true}
	sortMapA := map[string]string{sigA.Sorts[0].Name: sortA}
	for _, s := range sigA.Sorts[1:] {
		name := s.Name
		for declared[name] {
			name += "_2"
		}
		declared[name] = true
		sortMapA[s.Name] = name
		sig.Sorts = append(sig.Sorts, core.Sort{Name: name, Description: s.Description})
	}
	sortMapB := map[string]string{sigB.Sorts[0].Name: sortB}
	for _, s := range sigB.Sorts[1:] {
		name := s.Name
		for declared[name] {
			name += "_2"
		}
		declared[name] = true
		sortMapB[s.Name] = name
		sig.Sorts = append(sig.Sorts, core.Sort{Name: name, Description: s.Description})
	}

	renameA := copyPrefixed(sig, sigA, "a_", sortMapA)
	renameB := copyPrefixed(sig, sigB, "b_", sortMapB)

	for _, ax := range sigA.Axioms {
		sig.Axioms = append(sig.Axioms, renameAxiom(ax, renameA))
	}
	for _, ax := range sigB.Axioms {
		sig.Axioms = append(sig.Axioms, renameAxiom(ax, renameB))
	}

	sig.Operations = append(sig.Operations, core.Operation{
		Name: "transfer", Domain: []string{sortA}, Codomain: sortB,
		Description: fmt.Sprintf("morphism from %s to %s", sortA, sortB),
	})

	binA := sigA.OpsByArity(2)
	binB := sigB.OpsByArity(2)
	if len(binA) > 0 && len(binB) > 0 {
		opA := "a_" + binA[0].Name
		opB := "b_" + binB[0].Name
		x, y := core.Var{Name: "x"}, core.Var{Name: "y"}
		sig.Axioms = append(sig.Axioms, core.Axiom{
			Kind: core.Functoriality,
			Equation: core.Equation{
				LHS: core.NewApp("transfer", core.NewApp(opA, x, y)),
				RHS: core.NewApp(opB, core.NewApp("transfer", x), core.NewApp("transfer", y)),
			},
			Operations:  []string{"transfer", opA, opB},
			Description: "transfer is a homomorphism",
		})
	}

	return []Result{{
		Signature:   sig,
		Move:        Transfer,
		Parents:     []string{sigA.Name, sigB.Name},
		Description: fmt.Sprintf("Transfer structure from %s to %s", sigA.Name, sigB.Name),
	}}
}

// copyPrefixed copies src's operations into dst with the prefix applied,
// remapping sort names through sortMap. It returns the old-to-new
// operation name mapping.
func copyPrefixed(dst, src *core.Signature, prefix string, sortMap map[string]string) map[string]string {
	mapSort := func(name string) string {
		if mapped, ok := sortMap[name]; ok {
			return mapped
		}
		return name
	}
	rename := make(map[string]string, len(src.Operations))
	for _, op := range src.Operations {
		domain := make([]string, len(op.Domain))
		for i, d := range op.Domain {
			domain[i] = mapSort(d)
		}
		codomain := mapSort(op.Codomain)
		newName := prefix + op.Name
		rename[op.Name] = newName
		dst.Operations = append(dst.Operations, core.Operation{
			Name: newName, Domain: domain, Codomain: codomain,
			Description: fmt.Sprintf("%s from %s", op.Name, src.Name),
		})
	}
	return rename
}

// renameAxiom rewrites an axiom's operation list and equation to renamed
// operations. Names absent from the mapping are left alone.
func renameAxiom(ax core.Axiom, rename map[string]string) core.Axiom {
	ops := make([]string, len(ax.Operations))
	for i, o := range ax.Operations {
		if n, ok := rename[o]; ok {
			ops[i] = n
		} else {
			ops[i] = o
		}
	}
	return core.Axiom{
		Kind: ax.Kind,
		Equation: core.Equation{
			LHS: renameExpr(ax.Equation.LHS, rename),
			RHS: renameExpr(ax.Equation.RHS, rename),
		},
		Operations:  ops,
		Description: ax.Description,
	}
}

func renameExpr(e core.Expr, rename map[string]string) core.Expr {
	switch t := e.(type) {
	case core.Var:
		return t
	case core.Const:
		if n, ok := rename[t.Name]; ok {
			return core.Const{Name: n}
		}
		return t
	case core.App:
		args := make([]core.Expr, len(t.Args))
		for i, arg := range t.Args {
			args[i] = renameExpr(arg, rename)
		}
		op := t.Op
		if n, ok := rename[op]; ok {
			op = n
		}
		return core.App{Op: op, Args: args}
	default:
		return e
	}
}
