package pipeline

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/library"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/logging"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/model"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/scoring"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/solver"
)

// BacktestStatus classifies one discovery's re-verification.
type BacktestStatus string

const (
	BacktestPass BacktestStatus = "PASS"
	BacktestWarn BacktestStatus = "WARN"
	BacktestFail BacktestStatus = "FAIL"
)

// BacktestOptions tune the re-verification run.
type BacktestOptions struct {
	MaxSize     int
	MinScore    float64
	DiscoveryID string
	DryRun      bool
	Workers     int
	TimeoutMS   int
}

// BacktestRow is one discovery's outcome.
type BacktestRow struct {
	ID          string
	Name        string
	OrigScore   float64
	NewScore    float64
	TotalModels int
	SizesWith   int
	TimedOut    []int
	Status      BacktestStatus
	Reason      string
}

// BacktestReport aggregates the run.
type BacktestReport struct {
	Rows     []BacktestRow
	Passed   int
	Warned   int
	Failed   int
	Updated  int
	Archived []string
}

// Backtest re-verifies persisted discoveries: rebuild each signature from
// its document, recompute the spectrum, re-score against known plus
// sibling fingerprints (a discovery is never penalized for its own
// existence), and archive the failures. A discovery fails when the search
// proves the spectrum empty without timing out anywhere, whether or not
// models were claimed. An empty spectrum with timeouts is a warning when
// models were claimed and a pass otherwise.
func Backtest(ctx context.Context, mgr *library.Manager, opts BacktestOptions) (*BacktestReport, error) {
	log := logging.New("backtest")
	if opts.MaxSize < 2 {
		opts.MaxSize = 6
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.TimeoutMS <= 0 {
		opts.TimeoutMS = 30000
	}

	discoveries, err := mgr.ListDiscovered()
	if err != nil {
		return nil, err
	}
	if opts.DiscoveryID != "" {
		var filtered []*library.Discovery
		for _, d := range discoveries {
			if d.ID == opts.DiscoveryID {
				filtered = append(filtered, d)
			}
		}
		if len(filtered) == 0 {
			return nil, fmt.Errorf("discovery %q not found", opts.DiscoveryID)
		}
		discoveries = filtered
	}
	if opts.MinScore > 0 {
		var filtered []*library.Discovery
		for _, d := range discoveries {
			if d.Score >= opts.MinScore {
				filtered = append(filtered, d)
			}
		}
		discoveries = filtered
	}

	report := &BacktestReport{}
	knownFPs := mgr.KnownFingerprints()
	scorer := scoring.NewEngine()

	// Phase 1: reconstruct signatures; parse failures are immediate FAILs.
	type parsed struct {
		disc *library.Discovery
		sig  *core.Signature
	}
	var valid []parsed
	for _, d := range discoveries {
		sig, err := core.FromDoc(d.Signature)
		if err != nil {
			report.Rows = append(report.Rows, BacktestRow{
				ID: d.ID, Name: d.Name, OrigScore: d.Score,
				Status: BacktestFail,
				Reason: fmt.Sprintf("failed to reconstruct signature: %v", err),
			})
			report.Failed++
			continue
		}
		valid = append(valid, parsed{disc: d, sig: sig})
	}

	// Phase 2: spectra in parallel.
	jobs := make([]solver.SpectrumJob, len(valid))
	for i, p := range valid {
		jobs[i] = solver.SpectrumJob{
			Signature: p.sig, MinSize: 2, MaxSize: opts.MaxSize, MaxPerSize: 10,
		}
	}
	spectra := solver.ParallelSpectra(ctx, jobs, opts.Workers, solver.RouterConfig{
		Timeout: time.Duration(opts.TimeoutMS) * time.Millisecond,
	})

	// Phase 3: re-score and classify.
	for i, p := range valid {
		spectrum := spectra[i]
		if spectrum == nil {
			spectrum = model.NewSpectrum(p.sig.Name)
		}

		scoringFPs := map[string]bool{}
		for fp := range knownFPs {
			scoringFPs[fp] = true
		}
		for _, other := range discoveries {
			if other.Fingerprint != "" && other.Fingerprint != p.disc.Fingerprint {
				scoringFPs[other.Fingerprint] = true
			}
		}

		breakdown := scorer.Score(p.sig, spectrum, scoringFPs)
		origHadModels := p.disc.ScoreBreakdown.HasModels > 0
		totalModels := spectrum.TotalModels()

		row := BacktestRow{
			ID:          p.disc.ID,
			Name:        p.disc.Name,
			OrigScore:   p.disc.Score,
			NewScore:    breakdown.Total,
			TotalModels: totalModels,
			SizesWith:   len(spectrum.SizesWithModels()),
			TimedOut:    append([]int(nil), spectrum.TimedOutSizes...),
		}

		switch {
		case totalModels == 0 && origHadModels && !spectrum.AnyTimedOut():
			row.Status = BacktestFail
			row.Reason = "no models found (original had models)"
		case totalModels == 0 && origHadModels:
			row.Status = BacktestWarn
			row.Reason = fmt.Sprintf("no models but solver timed out at sizes %v", spectrum.TimedOutSizes)
		case totalModels == 0 && !spectrum.AnyTimedOut():
			row.Status = BacktestFail
			row.Reason = "no models found"
		default:
			row.Status = BacktestPass
			if !opts.DryRun && math.Abs(breakdown.Total-p.disc.Score) > 0.0001 {
				if err := mgr.UpdateScore(p.disc.ID, breakdown); err != nil {
					log.Warn("score update failed", "id", p.disc.ID, "error", err)
				} else {
					report.Updated++
				}
			}
		}

		switch row.Status {
		case BacktestPass:
			report.Passed++
		case BacktestWarn:
			report.Warned++
		case BacktestFail:
			report.Failed++
		}
		report.Rows = append(report.Rows, row)
	}

	// Phase 4: archive failures.
	if !opts.DryRun {
		for _, row := range report.Rows {
			if row.Status != BacktestFail {
				continue
			}
			dest, err := mgr.ArchiveFailed(row.ID, row.Reason)
			if err != nil {
				log.Warn("archive failed", "id", row.ID, "error", err)
				continue
			}
			if dest != "" {
				report.Archived = append(report.Archived, row.ID)
			}
		}
	}
	return report, nil
}
