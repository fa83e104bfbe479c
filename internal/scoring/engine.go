// Package scoring ranks candidate signatures on a twelve-dimension
// interestingness score combining structural, model-theoretic, and
// novelty signals. The engine is deterministic given equal inputs; when
// no spectrum is supplied the four model-theoretic dimensions are exactly
// zero rather than sentinels.
package scoring

import (
	"math"
	"strings"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/model"
)

// Breakdown is the per-dimension score, all in [0, 1], plus the weighted
// total.
type Breakdown struct {
	Connectivity     float64 `json:"connectivity"`
	Richness         float64 `json:"richness"`
	Tension          float64 `json:"tension"`
	Economy          float64 `json:"economy"`
	Fertility        float64 `json:"fertility"`
	AxiomSynergy     float64 `json:"axiom_synergy"`
	HasModels        float64 `json:"has_models"`
	ModelDiversity   float64 `json:"model_diversity"`
	SpectrumPattern  float64 `json:"spectrum_pattern"`
	SolverDifficulty float64 `json:"solver_difficulty"`
	IsNovel          float64 `json:"is_novel"`
	Distance         float64 `json:"distance"`
	Total            float64 `json:"total"`
}

// Dimensions returns the named dimension values, matching the weight keys.
func (b Breakdown) Dimensions() map[string]float64 {
	return map[string]float64{
		"connectivity":      b.Connectivity,
		"richness":          b.Richness,
		"tension":           b.Tension,
		"economy":           b.Economy,
		"fertility":         b.Fertility,
		"axiom_synergy":     b.AxiomSynergy,
		"has_models":        b.HasModels,
		"model_diversity":   b.ModelDiversity,
		"spectrum_pattern":  b.SpectrumPattern,
		"solver_difficulty": b.SolverDifficulty,
		"is_novel":          b.IsNovel,
		"distance":          b.Distance,
	}
}

// DefaultWeights sum to 1.0.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		"connectivity":      0.05,
		"richness":          0.08,
		"tension":           0.08,
		"economy":           0.10,
		"fertility":         0.03,
		"axiom_synergy":     0.06,
		"has_models":        0.15,
		"model_diversity":   0.10,
		"spectrum_pattern":  0.10,
		"solver_difficulty": 0.05,
		"is_novel":          0.15,
		"distance":          0.05,
	}
}

// Engine scores candidates. Weights default to DefaultWeights.
type Engine struct {
	Weights map[string]float64
}

// NewEngine returns an engine with the default weights.
func NewEngine() *Engine {
	return &Engine{Weights: DefaultWeights()}
}

// Score computes the full breakdown. spectrum may be nil (cheap structural
// pass); knownFingerprints may be nil, in which case is_novel stays 0.
func (e *Engine) Score(sig *core.Signature, spectrum *model.Spectrum, knownFingerprints map[string]bool) Breakdown {
	var b Breakdown

	b.Connectivity = connectivity(sig)
	b.Richness = richness(sig)
	b.Tension = tension(sig)
	b.Economy = economy(sig)
	b.Fertility = fertility(sig)
	b.AxiomSynergy = axiomSynergy(sig)

	if spectrum != nil {
		b.HasModels = hasModels(spectrum)
		b.ModelDiversity = modelDiversity(spectrum)
		b.SpectrumPattern = spectrumPattern(spectrum)
		b.SolverDifficulty = solverDifficulty(spectrum)
	}

	if knownFingerprints != nil {
		if !knownFingerprints[sig.Fingerprint()] {
			b.IsNovel = 1.0
		}
	}
	b.Distance = distance(sig)

	for name, value := range b.Dimensions() {
		b.Total += e.Weights[name] * value
	}
	return b
}

// connectivity: single-sorted signatures are neutral. Multi-sorted score
// the mean of sort coverage and the fraction of cross-sort operations.
func connectivity(sig *core.Signature) float64 {
	if len(sig.Sorts) <= 1 {
		return 0.5
	}
	declared := map[string]bool{}
	for _, s := range sig.Sorts {
		declared[s.Name] = true
	}

	touched := map[string]bool{}
	crossSortOps := 0
	for _, op := range sig.Operations {
		inOp := map[string]bool{}
		for _, d := range op.Domain {
			if declared[d] {
				touched[d] = true
			}
			inOp[d] = true
		}
		if declared[op.Codomain] {
			touched[op.Codomain] = true
		}
		inOp[op.Codomain] = true
		if len(inOp) > 1 {
			crossSortOps++
		}
	}

	coverage := float64(len(touched)) / float64(len(sig.Sorts))
	crossRatio := 0.0
	if len(sig.Operations) > 0 {
		crossRatio = float64(crossSortOps) / float64(len(sig.Operations))
	}
	return (coverage + crossRatio) / 2
}

// richness peaks when the axiom/operation ratio is 1: too few axioms is
// underconstrained, too many is likely trivial.
func richness(sig *core.Signature) float64 {
	nOps := len(sig.Operations)
	if nOps == 0 {
		nOps = 1
	}
	r := float64(len(sig.Axioms)) / float64(nOps)
	return math.Exp(-(r - 1) * (r - 1))
}

// tension rewards diversity of axiom kinds, capped at six distinct kinds.
func tension(sig *core.Signature) float64 {
	if len(sig.Axioms) == 0 {
		return 0
	}
	kinds := map[core.AxiomKind]bool{}
	for _, ax := range sig.Axioms {
		kinds[ax.Kind] = true
	}
	return math.Min(float64(len(kinds))/6, 1)
}

// economy is Occam's razor over the component count.
func economy(sig *core.Signature) float64 {
	s := len(sig.Sorts) + len(sig.Operations) + len(sig.Axioms)
	switch {
	case s <= 2:
		return 0.4
	case s <= 12:
		return 1.0 - math.Max(0, float64(s-5))*0.08
	default:
		return math.Max(0.1, 1.0-float64(s)*0.06)
	}
}

// fertility estimates how many further moves the signature can feed.
func fertility(sig *core.Signature) float64 {
	sortScore := math.Min(float64(len(sig.Sorts))/3, 1)
	opScore := math.Min(float64(len(sig.OpsByArity(2)))/3, 1)
	return (sortScore + opScore) / 2
}

// axiomSynergy rewards the rare axiom combinations: full self-distributivity
// on one operation, or idempotence with self-distributivity (quandle-like).
func axiomSynergy(sig *core.Signature) float64 {
	best := 0.0
	for _, op := range sig.OpsByArity(2) {
		kinds := map[core.AxiomKind]bool{}
		for _, ax := range sig.Axioms {
			if ax.Mentions(op.Name) {
				kinds[ax.Kind] = true
			}
		}
		score := 0.0
		switch {
		case kinds[core.SelfDistributivity] && kinds[core.RightSelfDistributivity]:
			score = 1.0
		case kinds[core.Idempotence] && kinds[core.SelfDistributivity]:
			score = 0.9
		}
		if score > best {
			best = score
		}
	}
	return best
}

// hasModels is three-valued: models exist, nothing but the solver gave up
// somewhere, or proven empty everywhere.
func hasModels(spectrum *model.Spectrum) float64 {
	switch {
	case !spectrum.IsEmpty():
		return 1.0
	case spectrum.AnyTimedOut():
		return 0.5
	default:
		return 0.0
	}
}

// modelDiversity mixes size coverage with the average model count per
// productive size.
func modelDiversity(spectrum *model.Spectrum) float64 {
	sizes := spectrum.SizesWithModels()
	if len(sizes) == 0 {
		return 0
	}
	coverage := float64(len(sizes)) / float64(sizes[len(sizes)-1]-sizes[0]+1)
	avg := float64(spectrum.TotalModels()) / float64(len(sizes))
	countScore := 1 - math.Exp(-avg/3)
	return (coverage + countScore) / 2
}

var primeSizes = map[int]bool{2: true, 3: true, 5: true, 7: true, 11: true, 13: true, 17: true, 19: true, 23: true}
var powerOfTwoSizes = map[int]bool{1: true, 2: true, 4: true, 8: true, 16: true, 32: true}

// spectrumPattern detects structure in the set of productive sizes:
// prime-only, powers of two, arithmetic/geometric progressions, or
// strictly growing model counts. Best match wins.
func spectrumPattern(spectrum *model.Spectrum) float64 {
	sizes := spectrum.SizesWithModels()
	if len(sizes) < 2 {
		return 0
	}

	score := 0.0
	allIn := func(set map[int]bool) bool {
		for _, s := range sizes {
			if !set[s] {
				return false
			}
		}
		return true
	}
	if allIn(primeSizes) {
		score = math.Max(score, 0.9)
	}
	if allIn(powerOfTwoSizes) {
		score = math.Max(score, 0.8)
	}

	arithmetic := true
	gap := sizes[1] - sizes[0]
	for i := 1; i+1 < len(sizes); i++ {
		if sizes[i+1]-sizes[i] != gap {
			arithmetic = false
			break
		}
	}
	if arithmetic {
		score = math.Max(score, 0.7)
	}

	if len(sizes) >= 3 {
		minRatio, maxRatio := math.Inf(1), math.Inf(-1)
		for i := 0; i+1 < len(sizes); i++ {
			r := float64(sizes[i+1]) / float64(sizes[i])
			minRatio = math.Min(minRatio, r)
			maxRatio = math.Max(maxRatio, r)
		}
		if maxRatio-minRatio < 0.1 {
			score = math.Max(score, 0.7)
		}
	}

	if score == 0 {
		increasing := true
		for i := 0; i+1 < len(sizes); i++ {
			if spectrum.Counts[sizes[i]] >= spectrum.Counts[sizes[i+1]] {
				increasing = false
				break
			}
		}
		if increasing {
			score = 0.5
		}
	}
	return score
}

// solverDifficulty penalizes timeout-heavy searches and trivially flat
// spectra (identical non-zero counts at three or more sizes).
func solverDifficulty(spectrum *model.Spectrum) float64 {
	sizesChecked := len(spectrum.Counts)
	if sizesChecked == 0 {
		return 0
	}
	timeoutRatio := float64(len(spectrum.TimedOutSizes)) / float64(sizesChecked)
	penalty := 1 - timeoutRatio

	var nonZero []int
	for _, count := range spectrum.Counts {
		if count > 0 {
			nonZero = append(nonZero, count)
		}
	}
	if len(nonZero) >= 3 {
		flat := true
		for _, c := range nonZero[1:] {
			if c != nonZero[0] {
				flat = false
				break
			}
		}
		if flat {
			penalty *= 0.7
		}
	}
	return penalty
}

// moveKindNames are the substrings derivation-chain entries use to record
// which move produced each step.
var moveKindNames = []string{
	"Abstract", "Dualize", "Complete", "Quotient",
	"Internalize", "Transfer", "Deform", "SelfDistrib",
}

// distance grows with derivation-chain length and move diversity: deeper,
// more varied derivations are farther from the seed library.
func distance(sig *core.Signature) float64 {
	chain := sig.DerivationChain
	if len(chain) == 0 {
		return 0
	}
	lengthScore := math.Min(float64(len(chain))/5, 1)

	kinds := map[string]bool{}
	for _, step := range chain {
		for _, name := range moveKindNames {
			if strings.Contains(step, name) {
				kinds[name] = true
			}
		}
	}
	diversity := float64(len(kinds)) / float64(len(moveKindNames))
	return (lengthScore + diversity) / 2
}
