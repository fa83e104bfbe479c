package solver

import (
	"fmt"
	"strings"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
)

// LADR translation: signatures become Mace4/Prover9 input. Multi-sorted
// signatures collapse to a single sort, matching the finite-model
// flattening the SAT path performs.

// ToMace4Input renders a signature as a Mace4 problem at a fixed domain size.
func ToMace4Input(sig *core.Signature, domainSize int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%% Signature: %s\n", sig.Name)
	fmt.Fprintf(&b, "%% Domain size: %d\n\n", domainSize)
	fmt.Fprintf(&b, "assign(domain_size, %d).\n\n", domainSize)
	b.WriteString("formulas(assumptions).\n\n")

	for _, ax := range sig.Axioms {
		comment := ax.Description
		if comment == "" {
			comment = string(ax.Kind)
		}
		fmt.Fprintf(&b, "  %% %s\n", comment)
		fmt.Fprintf(&b, "  %s.\n\n", ladrEquation(ax.Equation))
	}

	b.WriteString("end_of_list.\n")
	return b.String()
}

// ToProver9Input renders a signature's axioms as assumptions and the
// conjecture as the goal.
func ToProver9Input(sig *core.Signature, conjecture core.Equation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%% Signature: %s\n\n", sig.Name)
	b.WriteString("formulas(assumptions).\n\n")
	for _, ax := range sig.Axioms {
		fmt.Fprintf(&b, "  %s.\n", ladrEquation(ax.Equation))
	}
	b.WriteString("\nend_of_list.\n\n")
	b.WriteString("formulas(goals).\n\n")
	fmt.Fprintf(&b, "  %s.\n", ladrEquation(conjecture))
	b.WriteString("\nend_of_list.\n")
	return b.String()
}

func ladrEquation(eq core.Equation) string {
	return ladrTerm(eq.LHS) + " = " + ladrTerm(eq.RHS)
}

// ladrTerm renders prefix form throughout: LADR treats undeclared infix
// operators as syntax errors, so mul(x,y) rather than (x mul y).
func ladrTerm(e core.Expr) string {
	switch t := e.(type) {
	case core.Var:
		return t.Name
	case core.Const:
		return t.Name
	case core.App:
		if len(t.Args) == 0 {
			return t.Op
		}
		args := make([]string, len(t.Args))
		for i, arg := range t.Args {
			args[i] = ladrTerm(arg)
		}
		return fmt.Sprintf("%s(%s)", t.Op, strings.Join(args, ","))
	default:
		return ""
	}
}
