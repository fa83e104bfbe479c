package solver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/model"
)

// SpectrumJob is one signature's spectrum request.
type SpectrumJob struct {
	Signature  *core.Signature
	MinSize    int
	MaxSize    int
	MaxPerSize int
}

// ParallelSpectra computes spectra for a batch of signatures with a
// bounded worker pool. Each worker owns its own router (solver instances
// are not shared across goroutines); results come back in input order.
// Cancelling the context stops work between solver calls; spectra already
// in progress keep their partial results.
func ParallelSpectra(ctx context.Context, jobs []SpectrumJob, workers int, cfg RouterConfig) []*model.Spectrum {
	if len(jobs) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}

	spectra := make([]*model.Spectrum, len(jobs))

	// Sequential fast path keeps single-worker runs deterministic and
	// allocation-light.
	if workers == 1 || len(jobs) == 1 {
		router := NewRouter(cfg)
		for i, job := range jobs {
			if ctx.Err() != nil {
				break
			}
			spectra[i] = router.ComputeSpectrum(ctx, job.Signature, job.MinSize, job.MaxSize, job.MaxPerSize)
		}
		return spectra
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			router := NewRouter(cfg)
			spectra[i] = router.ComputeSpectrum(gctx, job.Signature, job.MinSize, job.MaxSize, job.MaxPerSize)
			return nil
		})
	}
	_ = g.Wait() // failures surface per-spectrum, not as errors
	return spectra
}
