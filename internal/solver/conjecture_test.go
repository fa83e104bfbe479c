package solver

import (
	"testing"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/library"
)

func TestGenerateConjectures(t *testing.T) {
	// Semigroup's mul is associative: commutativity and idempotence remain.
	conjectures := GenerateConjectures(library.Semigroup())
	if len(conjectures) != 2 {
		t.Fatalf("Semigroup conjectures = %d, want 2", len(conjectures))
	}

	// Magma's mul is unconstrained: all three laws are open.
	conjectures = GenerateConjectures(library.Magma())
	if len(conjectures) != 3 {
		t.Fatalf("Magma conjectures = %d, want 3", len(conjectures))
	}

	// AbelianGroup: commutativity and associativity are axioms; only
	// idempotence remains.
	conjectures = GenerateConjectures(library.AbelianGroup())
	if len(conjectures) != 1 {
		t.Fatalf("AbelianGroup conjectures = %d, want 1", len(conjectures))
	}
	if got := conjectures[0].String(); got != "(x mul x) = x" {
		t.Errorf("conjecture = %q, want idempotence", got)
	}
}
