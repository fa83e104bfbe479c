// Package display provides human-readable names for machine codes.
//
// Rule: code is for machines, words are for humans. Use these functions in
// CLI output, reports, and logs; keep raw codes for JSON fields, map keys,
// and equality comparisons.
package display

// --- Moves ---

var moveNames = map[string]string{
	"ABSTRACT":     "Abstraction",
	"DUALIZE":      "Dualization",
	"COMPLETE":     "Completion",
	"QUOTIENT":     "Quotient",
	"INTERNALIZE":  "Internalization",
	"TRANSFER":     "Structure transfer",
	"DEFORM":       "Deformation",
	"SELF_DISTRIB": "Self-distributivity",
}

// Move returns the human-readable name for a move code. Unknown codes are
// returned as-is.
func Move(code string) string {
	if name, ok := moveNames[code]; ok {
		return name
	}
	return code
}

// MoveWithCode returns "Dualization (DUALIZE)" format.
func MoveWithCode(code string) string {
	if name, ok := moveNames[code]; ok {
		return name + " (" + code + ")"
	}
	return code
}

// --- Axiom kinds ---

var axiomKindNames = map[string]string{
	"ASSOCIATIVITY":             "associativity",
	"COMMUTATIVITY":             "commutativity",
	"IDENTITY":                  "identity",
	"INVERSE":                   "inverse",
	"DISTRIBUTIVITY":            "distributivity",
	"ANTICOMMUTATIVITY":         "anticommutativity",
	"IDEMPOTENCE":               "idempotence",
	"NILPOTENCE":                "nilpotence",
	"JACOBI":                    "Jacobi identity",
	"POSITIVITY":                "positivity",
	"BILINEARITY":               "bilinearity",
	"HOMOMORPHISM":              "homomorphism",
	"FUNCTORIALITY":             "functoriality",
	"ABSORPTION":                "absorption",
	"MODULARITY":                "modularity",
	"SELF_DISTRIBUTIVITY":       "left self-distributivity",
	"RIGHT_SELF_DISTRIBUTIVITY": "right self-distributivity",
	"CUSTOM":                    "custom law",
}

// AxiomKind returns the human-readable name for an axiom kind code.
func AxiomKind(code string) string {
	if name, ok := axiomKindNames[code]; ok {
		return name
	}
	return code
}

// --- Proof statuses ---

var proofStatuses = map[string]string{
	"proved":    "Proved",
	"disproved": "Search exhausted",
	"timeout":   "Timed out",
	"error":     "Prover error",
}

// ProofStatus returns the human-readable name for a proof status.
// "disproved" reads as "Search exhausted": it records goal-search
// exhaustion, not a counter-model.
func ProofStatus(code string) string {
	if name, ok := proofStatuses[code]; ok {
		return name
	}
	return code
}
