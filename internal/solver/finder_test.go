package solver

import (
	"context"
	"testing"
	"time"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/library"
)

func testFinder() *SATFinder { return NewSATFinder(30 * time.Second) }

func TestFindModelsMagmaSizeOne(t *testing.T) {
	// One binary operation on one element: exactly one table exists.
	res := testFinder().FindModels(context.Background(), library.Magma(), 1, 10)
	if res.TimedOut || res.Err != "" {
		t.Fatalf("unexpected failure: timedOut=%v err=%q", res.TimedOut, res.Err)
	}
	if len(res.Models) != 1 {
		t.Fatalf("models = %d, want exactly 1", len(res.Models))
	}
	if got := res.Models[0].Tables["mul"][0][0]; got != 0 {
		t.Errorf("mul[0][0] = %d, want 0", got)
	}
}

func TestFindModelsSemigroupSizeTwo(t *testing.T) {
	// There are exactly 8 associative binary operations on a 2-element set.
	res := testFinder().FindModels(context.Background(), library.Semigroup(), 2, 20)
	if res.TimedOut || res.Err != "" {
		t.Fatalf("unexpected failure: timedOut=%v err=%q", res.TimedOut, res.Err)
	}
	if len(res.Models) != 8 {
		t.Fatalf("semigroups of order 2 = %d, want 8", len(res.Models))
	}
	for _, m := range res.Models {
		if !m.IsAssociative("mul") {
			t.Errorf("model is not associative: %v", m.Tables["mul"])
		}
		if err := VerifyModel(library.Semigroup(), m); err != nil {
			t.Errorf("post-hoc verification failed: %v", err)
		}
	}
}

func TestFindModelsGroupSizeTwo(t *testing.T) {
	// Two labelings of Z2 (identity at 0 or at 1).
	res := testFinder().FindModels(context.Background(), library.Group(), 2, 10)
	if res.TimedOut || res.Err != "" {
		t.Fatalf("unexpected failure: timedOut=%v err=%q", res.TimedOut, res.Err)
	}
	if len(res.Models) != 2 {
		t.Fatalf("group tables of order 2 = %d, want 2", len(res.Models))
	}
	for _, m := range res.Models {
		if !m.IsAssociative("mul") || !m.IsLatinSquare("mul") {
			t.Errorf("group model is not a Latin square semigroup: %v", m.Tables["mul"])
		}
		e := m.Constants["e"]
		if got := m.Identity("mul"); got != e {
			t.Errorf("identity constant %d but table identity %d", e, got)
		}
		if err := VerifyModel(library.Group(), m); err != nil {
			t.Errorf("post-hoc verification failed: %v", err)
		}
	}
}

func TestIdempotentGroupIsTrivial(t *testing.T) {
	// A group where every element is idempotent collapses: x*x = x forces
	// x = e, so only the one-element model exists.
	sig := library.Group().Clone("Group_q(IDEM,mul)")
	sig.Axioms = append(sig.Axioms, core.Axiom{
		Kind:       core.Idempotence,
		Equation:   core.IdempotentEquation("mul"),
		Operations: []string{"mul"},
	})

	res := testFinder().FindModels(context.Background(), sig, 1, 10)
	if len(res.Models) != 1 || res.TimedOut {
		t.Errorf("size 1: models = %d timedOut = %v, want 1 model", len(res.Models), res.TimedOut)
	}

	res = testFinder().FindModels(context.Background(), sig, 2, 10)
	if res.TimedOut || res.Err != "" {
		t.Fatalf("size 2: unexpected timeout/error: %v %q", res.TimedOut, res.Err)
	}
	if len(res.Models) != 0 {
		t.Errorf("size 2: models = %d, want proven empty", len(res.Models))
	}
}

func TestComputeSpectrumGroup(t *testing.T) {
	spectrum := ComputeSpectrum(context.Background(), testFinder(), library.Group(), 2, 4, 10)

	for size := 2; size <= 4; size++ {
		if spectrum.Counts[size] < 1 {
			t.Errorf("size %d: count = %d, want at least 1", size, spectrum.Counts[size])
		}
	}
	if spectrum.AnyTimedOut() {
		t.Errorf("unexpected timeouts at %v", spectrum.TimedOutSizes)
	}
	if spectrum.IsEmpty() {
		t.Error("group spectrum should not be empty")
	}
}

func TestSpectrumRecordsEncodingErrors(t *testing.T) {
	sig := &core.Signature{
		Name:  "Ternary",
		Sorts: []core.Sort{{Name: "S"}},
		Operations: []core.Operation{
			{Name: "f", Domain: []string{"S", "S", "S"}, Codomain: "S"},
		},
		Axioms: []core.Axiom{{
			Kind: core.Custom,
			Equation: core.Equation{
				LHS: core.NewApp("f", core.Var{Name: "x"}, core.Var{Name: "y"}, core.Var{Name: "z"}),
				RHS: core.Var{Name: "x"},
			},
			Operations: []string{"f"},
		}},
	}
	spectrum := ComputeSpectrum(context.Background(), testFinder(), sig, 2, 3, 5)
	if len(spectrum.Errors) != 2 {
		t.Fatalf("errors recorded = %d, want 2 (one per size)", len(spectrum.Errors))
	}
	if spectrum.TotalModels() != 0 {
		t.Errorf("errored sizes produced models: %v", spectrum.Counts)
	}
}

func TestCancellationStopsSpectrum(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	spectrum := ComputeSpectrum(ctx, testFinder(), library.Group(), 2, 6, 10)
	if len(spectrum.Counts) != 0 {
		t.Errorf("cancelled spectrum checked %d sizes, want 0", len(spectrum.Counts))
	}
}

func TestPositivityMarkerIsVacuous(t *testing.T) {
	// norm(x) = norm(x) must not constrain model finding.
	sig := library.Semigroup().Clone("Semigroup+norm")
	sig.Operations = append(sig.Operations, core.Operation{
		Name: "norm", Domain: []string{"S"}, Codomain: "S",
	})
	x := core.Var{Name: "x"}
	sig.Axioms = append(sig.Axioms, core.Axiom{
		Kind:       core.Positivity,
		Equation:   core.Equation{LHS: core.NewApp("norm", x), RHS: core.NewApp("norm", x)},
		Operations: []string{"norm"},
	})

	res := testFinder().FindModels(context.Background(), sig, 2, 1)
	if len(res.Models) != 1 {
		t.Fatalf("models = %d, want 1", len(res.Models))
	}
	if err := VerifyModel(sig, res.Models[0]); err != nil {
		t.Errorf("verification failed: %v", err)
	}
}
