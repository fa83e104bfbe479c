package pipeline

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/library"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/logging"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/model"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/moves"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/scoring"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/solver"
)

// Candidate is one scored exploration result. Spectrum and Final are set
// only for candidates that reached the model-checking phase.
type Candidate struct {
	Result     moves.Result
	Structural scoring.Breakdown
	Spectrum   *model.Spectrum
	Final      *scoring.Breakdown
}

// Score returns the best available score: final when present, else
// structural.
func (c *Candidate) Score() float64 {
	if c.Final != nil {
		return c.Final.Total
	}
	return c.Structural.Total
}

// Report is the outcome of one exploration run: candidates above the
// threshold, ranked best-first.
type Report struct {
	TotalGenerated int
	Candidates     []*Candidate
	Checked        int
}

// Driver wires the move engine, scorer, and solver into the exploration
// loop. The known-fingerprint set is read-only during a run.
type Driver struct {
	Engine *moves.Engine
	Scorer *scoring.Engine
	Known  map[string]bool
}

// NewDriver builds a driver with the given novelty set.
func NewDriver(known map[string]bool) *Driver {
	return &Driver{
		Engine: moves.NewEngine(),
		Scorer: scoring.NewEngine(),
		Known:  known,
	}
}

// ResolveMoves turns the config's move lists into the set to apply.
func ResolveMoves(cfg Config) ([]moves.Kind, error) {
	kinds := moves.AllKinds
	if len(cfg.Moves) > 0 {
		kinds = nil
		for _, name := range cfg.Moves {
			k, err := moves.ParseKind(name)
			if err != nil {
				return nil, err
			}
			kinds = append(kinds, k)
		}
	}
	if len(cfg.ExcludeMoves) > 0 {
		excluded := map[moves.Kind]bool{}
		for _, name := range cfg.ExcludeMoves {
			k, err := moves.ParseKind(name)
			if err != nil {
				return nil, err
			}
			excluded[k] = true
		}
		var kept []moves.Kind
		for _, k := range kinds {
			if !excluded[k] {
				kept = append(kept, k)
			}
		}
		kinds = kept
	}
	return kinds, nil
}

// ResolveBases loads the seed signatures named in the config, or the
// whole catalog when none are named. Unknown names are a configuration
// error.
func ResolveBases(cfg Config) ([]*core.Signature, error) {
	if len(cfg.Bases) == 0 {
		return library.LoadAllKnown(), nil
	}
	var bases []*core.Signature
	for _, name := range cfg.Bases {
		sig := library.LoadByName(name)
		if sig == nil {
			return nil, fmt.Errorf("unknown base structure %q", name)
		}
		bases = append(bases, sig)
	}
	return bases, nil
}

// Enumerate runs iterative deepening: each depth applies the allowed
// moves to the previous frontier and the produced signatures become the
// next frontier. All results across depths are returned in generation
// order. Every produced signature joins the next frontier; malformed
// candidates are not filtered here, and the caller's scoring pass skips
// them.
func (d *Driver) Enumerate(ctx context.Context, seeds []*core.Signature, depth int, allowed []moves.Kind) []moves.Result {
	log := logging.New("pipeline")
	frontier := seeds
	var all []moves.Result

	for level := 1; level <= depth; level++ {
		if ctx.Err() != nil {
			break
		}
		var results []moves.Result
		for _, kind := range allowed {
			results = append(results, d.Engine.Apply(kind, frontier)...)
		}
		log.Info("depth complete", "depth", level, "generated", len(results), "total", len(all)+len(results))

		all = append(all, results...)
		frontier = frontier[:0:0]
		for _, r := range results {
			frontier = append(frontier, r.Signature)
		}
	}
	return all
}

// Run executes the full two-phase exploration described by cfg.
func (d *Driver) Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	allowed, err := ResolveMoves(cfg)
	if err != nil {
		return nil, err
	}
	seeds, err := ResolveBases(cfg)
	if err != nil {
		return nil, err
	}

	log := logging.New("pipeline")
	results := d.Enumerate(ctx, seeds, cfg.Depth, allowed)
	report := &Report{TotalGenerated: len(results)}

	// Phase 1: structural scoring. Malformed signatures are fatal for the
	// candidate only.
	for _, r := range results {
		if err := r.Signature.Validate(); err != nil {
			log.Warn("dropping malformed candidate", "name", r.Signature.Name, "error", err)
			continue
		}
		breakdown := d.Scorer.Score(r.Signature, nil, d.Known)
		if breakdown.Total < cfg.Threshold {
			continue
		}
		report.Candidates = append(report.Candidates, &Candidate{Result: r, Structural: breakdown})
	}
	sort.SliceStable(report.Candidates, func(i, j int) bool {
		return report.Candidates[i].Structural.Total > report.Candidates[j].Structural.Total
	})

	if !cfg.CheckModels || len(report.Candidates) == 0 {
		return report, nil
	}

	// Phase 2: model-check the top N and re-score with spectra.
	top := report.Candidates
	if len(top) > cfg.TopN {
		top = top[:cfg.TopN]
	}
	jobs := make([]solver.SpectrumJob, len(top))
	for i, c := range top {
		jobs[i] = solver.SpectrumJob{
			Signature:  c.Result.Signature,
			MinSize:    cfg.MinSize,
			MaxSize:    cfg.MaxSize,
			MaxPerSize: cfg.MaxPerSize,
		}
	}
	routerCfg := solver.RouterConfig{
		Timeout:         time.Duration(cfg.TimeoutMS) * time.Millisecond,
		HeavyMultiplier: cfg.HeavyMultiplier,
	}
	spectra := solver.ParallelSpectra(ctx, jobs, cfg.Workers, routerCfg)

	for i, c := range top {
		if spectra[i] == nil {
			continue // cancelled before this job started
		}
		c.Spectrum = spectra[i]
		final := d.Scorer.Score(c.Result.Signature, c.Spectrum, d.Known)
		c.Final = &final
		report.Checked++
	}

	sort.SliceStable(report.Candidates, func(i, j int) bool {
		return report.Candidates[i].Score() > report.Candidates[j].Score()
	})
	return report, nil
}
