// Package solver turns signatures into finite-model searches. The primary
// backend encodes ground equational constraints to CNF over a SAT solver;
// an external LADR-based finder and prover are used when installed.
package solver

import "github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"

// heavyKinds are the axiom kinds whose ground instantiation is O(n^3) and
// whose theories benefit from symmetry breaking and longer timeouts.
var heavyKinds = map[core.AxiomKind]bool{
	core.SelfDistributivity:      true,
	core.RightSelfDistributivity: true,
	core.Distributivity:          true,
	core.Jacobi:                  true,
}

// IsHeavy reports whether the signature qualifies for lex-leader symmetry
// breaking: single-sorted, no CUSTOM axioms (quasigroup-like theories hide
// Latin-square laws behind CUSTOM, and breaking symmetry there loses
// models), and at least one heavy axiom kind.
func IsHeavy(sig *core.Signature) bool {
	if len(sig.Sorts) > 1 {
		return false
	}
	hasHeavy := false
	for _, ax := range sig.Axioms {
		if ax.Kind == core.Custom {
			return false
		}
		if heavyKinds[ax.Kind] {
			hasHeavy = true
		}
	}
	return hasHeavy
}

// HasHeavyAxioms reports whether any axiom is of a heavy kind, regardless
// of sortedness. The router uses this for backend selection.
func HasHeavyAxioms(sig *core.Signature) bool {
	for _, ax := range sig.Axioms {
		if heavyKinds[ax.Kind] {
			return true
		}
	}
	return false
}
