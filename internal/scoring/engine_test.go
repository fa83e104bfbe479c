package scoring

import (
	"math"
	"testing"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/model"
)

const eps = 1e-9

func semigroup() *core.Signature {
	return &core.Signature{
		Name:  "Semigroup",
		Sorts: []core.Sort{{Name: "S"}},
		Operations: []core.Operation{
			{Name: "mul", Domain: []string{"S", "S"}, Codomain: "S"},
		},
		Axioms: []core.Axiom{
			{Kind: core.Associativity, Equation: core.AssocEquation("mul"), Operations: []string{"mul"}},
		},
	}
}

func spectrumOf(counts map[int]int, timedOut ...int) *model.Spectrum {
	s := model.NewSpectrum("test")
	for size, count := range counts {
		s.Counts[size] = count
	}
	s.TimedOutSizes = timedOut
	return s
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, w := range DefaultWeights() {
		sum += w
	}
	if math.Abs(sum-1.0) > eps {
		t.Errorf("weights sum to %f, want 1.0", sum)
	}
}

func TestTotalIsExactWeightedSum(t *testing.T) {
	e := NewEngine()
	sig := semigroup()
	sig.DerivationChain = []string{"Dualize(mul)", "Quotient(IDEM on mul)"}
	spectrum := spectrumOf(map[int]int{2: 1, 3: 2, 4: 0}, 5)

	b := e.Score(sig, spectrum, map[string]bool{})
	want := 0.0
	for name, value := range b.Dimensions() {
		want += e.Weights[name] * value
	}
	if math.Abs(b.Total-want) > eps {
		t.Errorf("Total = %f, want exact weighted sum %f", b.Total, want)
	}
}

func TestStructuralDimensions(t *testing.T) {
	b := NewEngine().Score(semigroup(), nil, nil)

	if b.Connectivity != 0.5 {
		t.Errorf("connectivity = %f, want 0.5 (single-sorted)", b.Connectivity)
	}
	if math.Abs(b.Richness-1.0) > eps {
		t.Errorf("richness = %f, want 1.0 at ratio 1", b.Richness)
	}
	if math.Abs(b.Tension-1.0/6) > eps {
		t.Errorf("tension = %f, want 1/6", b.Tension)
	}
	if math.Abs(b.Economy-1.0) > eps {
		t.Errorf("economy = %f, want 1.0 at size 3", b.Economy)
	}
	if math.Abs(b.Fertility-1.0/3) > eps {
		t.Errorf("fertility = %f, want 1/3", b.Fertility)
	}
	if b.AxiomSynergy != 0 {
		t.Errorf("axiom_synergy = %f, want 0", b.AxiomSynergy)
	}
	if b.Distance != 0 {
		t.Errorf("distance = %f, want 0 for an empty chain", b.Distance)
	}
}

// Without a spectrum the model-theoretic dimensions are exactly zero.
func TestNoSpectrumZeroesModelDimensions(t *testing.T) {
	b := NewEngine().Score(semigroup(), nil, map[string]bool{})
	for name, value := range map[string]float64{
		"has_models":        b.HasModels,
		"model_diversity":   b.ModelDiversity,
		"spectrum_pattern":  b.SpectrumPattern,
		"solver_difficulty": b.SolverDifficulty,
	} {
		if value != 0 {
			t.Errorf("%s = %f without a spectrum, want 0", name, value)
		}
	}
}

func TestHasModelsThreeValued(t *testing.T) {
	tests := []struct {
		name     string
		spectrum *model.Spectrum
		want     float64
	}{
		{"models found", spectrumOf(map[int]int{2: 1}), 1.0},
		{"empty with timeout", spectrumOf(map[int]int{2: 0}, 2), 0.5},
		{"proven empty", spectrumOf(map[int]int{2: 0, 3: 0}), 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewEngine().Score(semigroup(), tt.spectrum, nil)
			if b.HasModels != tt.want {
				t.Errorf("has_models = %f, want %f", b.HasModels, tt.want)
			}
		})
	}
}

func TestModelDiversity(t *testing.T) {
	// Sizes {2, 4} with 4 models total: coverage 2/3, avg 2 per size.
	b := NewEngine().Score(semigroup(), spectrumOf(map[int]int{2: 2, 3: 0, 4: 2}), nil)
	want := (2.0/3.0 + (1 - math.Exp(-2.0/3.0))) / 2
	if math.Abs(b.ModelDiversity-want) > eps {
		t.Errorf("model_diversity = %f, want %f", b.ModelDiversity, want)
	}
}

func TestSpectrumPattern(t *testing.T) {
	tests := []struct {
		name   string
		counts map[int]int
		want   float64
	}{
		{"single size", map[int]int{3: 1}, 0},
		{"primes", map[int]int{2: 1, 3: 1, 5: 2, 7: 1}, 0.9},
		{"powers of two", map[int]int{2: 1, 4: 1, 8: 1}, 0.8},
		{"arithmetic 2,3,4", map[int]int{2: 1, 3: 1, 4: 1}, 0.7},
		{"arithmetic 3,6,9", map[int]int{3: 1, 6: 1, 9: 1}, 0.7},
		{"monotone counts only", map[int]int{2: 1, 4: 2, 7: 3}, 0.5},
		{"no pattern", map[int]int{2: 3, 4: 1, 7: 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewEngine().Score(semigroup(), spectrumOf(tt.counts), nil)
			if math.Abs(b.SpectrumPattern-tt.want) > eps {
				t.Errorf("spectrum_pattern = %f, want %f", b.SpectrumPattern, tt.want)
			}
		})
	}
}

func TestSolverDifficulty(t *testing.T) {
	// One of three sizes timed out, counts vary: penalty 2/3 only.
	b := NewEngine().Score(semigroup(), spectrumOf(map[int]int{2: 1, 3: 2, 4: 0}, 4), nil)
	if math.Abs(b.SolverDifficulty-2.0/3.0) > eps {
		t.Errorf("solver_difficulty = %f, want 2/3", b.SolverDifficulty)
	}

	// Flat non-zero counts at three sizes are trivially saturated.
	b = NewEngine().Score(semigroup(), spectrumOf(map[int]int{2: 5, 3: 5, 4: 5}), nil)
	if math.Abs(b.SolverDifficulty-0.7) > eps {
		t.Errorf("flat spectrum solver_difficulty = %f, want 0.7", b.SolverDifficulty)
	}
}

func TestIsNovel(t *testing.T) {
	sig := semigroup()
	fp := sig.Fingerprint()

	b := NewEngine().Score(sig, nil, map[string]bool{})
	if b.IsNovel != 1.0 {
		t.Errorf("unseen fingerprint: is_novel = %f, want 1.0", b.IsNovel)
	}

	b = NewEngine().Score(sig, nil, map[string]bool{fp: true})
	if b.IsNovel != 0.0 {
		t.Errorf("known fingerprint: is_novel = %f, want 0.0", b.IsNovel)
	}
}

func TestDistance(t *testing.T) {
	sig := semigroup()
	sig.DerivationChain = []string{"Dualize(mul)"}
	b := NewEngine().Score(sig, nil, nil)
	want := (1.0/5 + 1.0/8) / 2
	if math.Abs(b.Distance-want) > eps {
		t.Errorf("distance = %f, want %f", b.Distance, want)
	}

	// Five diverse steps saturate the length half.
	sig.DerivationChain = []string{
		"Dualize(mul)", "Complete(norm)", "Quotient(IDEM on mul)",
		"Transfer to Ring", "Deform(ASSOCIATIVITY)",
	}
	b = NewEngine().Score(sig, nil, nil)
	want = (1.0 + 5.0/8) / 2
	if math.Abs(b.Distance-want) > eps {
		t.Errorf("distance = %f, want %f", b.Distance, want)
	}
}

func TestAxiomSynergy(t *testing.T) {
	sig := semigroup()
	sig.Axioms = append(sig.Axioms, core.Axiom{
		Kind: core.SelfDistributivity, Equation: core.SelfDistribEquation("mul"), Operations: []string{"mul"},
	})

	b := NewEngine().Score(sig, nil, nil)
	if b.AxiomSynergy != 0 {
		t.Errorf("SD alone: synergy = %f, want 0", b.AxiomSynergy)
	}

	withIdem := sig.Clone("quandle-like")
	withIdem.Axioms = append(withIdem.Axioms, core.Axiom{
		Kind: core.Idempotence, Equation: core.IdempotentEquation("mul"), Operations: []string{"mul"},
	})
	b = NewEngine().Score(withIdem, nil, nil)
	if b.AxiomSynergy != 0.9 {
		t.Errorf("IDEM+SD: synergy = %f, want 0.9", b.AxiomSynergy)
	}

	full := sig.Clone("full-sd")
	full.Axioms = append(full.Axioms, core.Axiom{
		Kind: core.RightSelfDistributivity, Equation: core.RightSelfDistribEquation("mul"), Operations: []string{"mul"},
	})
	b = NewEngine().Score(full, nil, nil)
	if b.AxiomSynergy != 1.0 {
		t.Errorf("SD+RSD: synergy = %f, want 1.0", b.AxiomSynergy)
	}
}

func TestEconomy(t *testing.T) {
	tests := []struct {
		sorts, ops, axioms int
		want               float64
	}{
		{1, 1, 0, 0.4},          // s=2
		{1, 2, 2, 1.0},          // s=5
		{1, 4, 5, 1.0 - 5*0.08}, // s=10
		{2, 8, 10, 0.1},         // s=20: 1-1.2 floored at 0.1
	}
	for _, tt := range tests {
		sig := &core.Signature{Name: "econ"}
		for i := 0; i < tt.sorts; i++ {
			sig.Sorts = append(sig.Sorts, core.Sort{Name: string(rune('A' + i))})
		}
		for i := 0; i < tt.ops; i++ {
			sig.Operations = append(sig.Operations, core.Operation{Name: string(rune('a' + i))})
		}
		for i := 0; i < tt.axioms; i++ {
			sig.Axioms = append(sig.Axioms, core.Axiom{Kind: core.Custom})
		}
		b := NewEngine().Score(sig, nil, nil)
		if math.Abs(b.Economy-tt.want) > eps {
			t.Errorf("economy(s=%d) = %f, want %f", tt.sorts+tt.ops+tt.axioms, b.Economy, tt.want)
		}
	}
}

func TestConnectivityMultiSorted(t *testing.T) {
	// Two sorts, one cross-sort operation of two total: coverage 1,
	// cross ratio 1/2.
	sig := &core.Signature{
		Name:  "conn",
		Sorts: []core.Sort{{Name: "V"}, {Name: "K"}},
		Operations: []core.Operation{
			{Name: "add", Domain: []string{"V", "V"}, Codomain: "V"},
			{Name: "scale", Domain: []string{"K", "V"}, Codomain: "V"},
		},
	}
	b := NewEngine().Score(sig, nil, nil)
	want := (1.0 + 0.5) / 2
	if math.Abs(b.Connectivity-want) > eps {
		t.Errorf("connectivity = %f, want %f", b.Connectivity, want)
	}
}
