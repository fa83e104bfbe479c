package solver

import "github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"

// GenerateConjectures proposes equational laws a signature does not
// already axiomatize: for each binary operation, commutativity,
// idempotence, and associativity where absent. Each is a candidate for
// the prover.
func GenerateConjectures(sig *core.Signature) []core.Equation {
	var conjectures []core.Equation
	for _, op := range sig.OpsByArity(2) {
		if !sig.HasAxiom(core.Commutativity, op.Name) {
			conjectures = append(conjectures, core.CommEquation(op.Name))
		}
		if !sig.HasAxiom(core.Idempotence, op.Name) {
			conjectures = append(conjectures, core.IdempotentEquation(op.Name))
		}
		if !sig.HasAxiom(core.Associativity, op.Name) {
			conjectures = append(conjectures, core.AssocEquation(op.Name))
		}
	}
	return conjectures
}
