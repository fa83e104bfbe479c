package solver

import (
	"context"
	"time"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/logging"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/model"
)

// Result is the outcome of one model search at one domain size.
type Result struct {
	DomainSize int
	Models     []*model.CayleyTable
	TimedOut   bool
	Err        string
}

// Finder is the capability a model-finding backend exposes. Implementations
// are not safe for concurrent use; each worker owns its own instance.
type Finder interface {
	// FindModels returns up to maxModels distinct models of sig at the
	// given domain size, or a timeout marker. Models already collected
	// before a timeout are retained.
	FindModels(ctx context.Context, sig *core.Signature, size, maxModels int) Result
	// Available reports whether the backend can run at all.
	Available() bool
}

// SATFinder searches for finite models by encoding ground equational
// constraints to CNF. Symmetry breaking is applied to heavy signatures.
type SATFinder struct {
	// Timeout bounds each satisfiability check. An exhausted budget marks
	// the size as timed out rather than failing the search.
	Timeout time.Duration
}

// NewSATFinder returns a finder with the given per-check timeout.
func NewSATFinder(timeout time.Duration) *SATFinder {
	return &SATFinder{Timeout: timeout}
}

// Available always holds: the SAT backend is in-process.
func (f *SATFinder) Available() bool { return true }

// FindModels enumerates models by repeated solving: after each satisfying
// assignment a blocking clause forces at least one cell to differ, until
// the theory is unsatisfiable, maxModels are collected, or a check times
// out.
func (f *SATFinder) FindModels(ctx context.Context, sig *core.Signature, size, maxModels int) Result {
	res := Result{DomainSize: size}
	if size <= 0 {
		res.Err = "domain size must be positive"
		return res
	}

	enc, err := newEncoding(sig, size)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	if IsHeavy(sig) {
		enc.addLexLeader(sig)
	}

	log := logging.New("solver")
	for len(res.Models) < maxModels {
		if ctx.Err() != nil {
			res.TimedOut = true
			break
		}
		if enc.unsat {
			break
		}
		switch enc.g.GoSolve().Try(f.Timeout) {
		case 1:
			vals := enc.extract()
			res.Models = append(res.Models, toCayley(size, vals))
			enc.addBlocking(vals)
		case -1:
			return res
		default:
			log.Debug("solver timeout", "signature", sig.Name, "size", size,
				"models_so_far", len(res.Models))
			res.TimedOut = true
			return res
		}
	}
	return res
}

// ComputeSpectrum runs FindModels at every size in [minSize, maxSize],
// strictly ascending, recording counts, tables, timeouts, and errors.
// Cancellation is checked between sizes; partial results are kept.
func ComputeSpectrum(ctx context.Context, f Finder, sig *core.Signature, minSize, maxSize, maxPerSize int) *model.Spectrum {
	spectrum := model.NewSpectrum(sig.Name)
	for size := minSize; size <= maxSize; size++ {
		if ctx.Err() != nil {
			break
		}
		result := f.FindModels(ctx, sig, size, maxPerSize)
		spectrum.Counts[size] = len(result.Models)
		spectrum.ModelsBySize[size] = result.Models
		if result.TimedOut {
			spectrum.TimedOutSizes = append(spectrum.TimedOutSizes, size)
		}
		if result.Err != "" {
			if spectrum.Errors == nil {
				spectrum.Errors = map[int]string{}
			}
			spectrum.Errors[size] = result.Err
		}
	}
	return spectrum
}

// toCayley converts extracted solver values into a Cayley table.
func toCayley(size int, vals modelValues) *model.CayleyTable {
	m := model.NewCayleyTable(size)
	for name, table := range vals.binary {
		m.Tables[name] = table
	}
	for name, vec := range vals.unary {
		m.Unary[name] = vec
	}
	for name, v := range vals.consts {
		m.Constants[name] = v
	}
	return m
}
