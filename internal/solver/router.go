package solver

import (
	"context"
	"time"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/logging"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/model"
)

// Route names the backend chosen for a signature.
type Route string

const (
	RouteExternalHeavy Route = "mace4_heavy"
	RouteSATHeavy      Route = "sat_heavy"
	RouteSATNormal     Route = "sat_normal"
)

// DefaultTimeout bounds one satisfiability check on the normal path.
const DefaultTimeout = 30 * time.Second

// DefaultHeavyMultiplier stretches the timeout for heavy signatures on
// the SAT fallback path.
const DefaultHeavyMultiplier = 2.0

// Router inspects a signature and dispatches model finding to the best
// available backend: heavy equational theories go to the external finder
// when installed, otherwise to the symmetry-broken SAT path with an
// extended timeout. Everything else takes the standard SAT path.
type Router struct {
	sat      *SATFinder
	satHeavy *SATFinder
	external Finder
}

// RouterConfig tunes backend construction. Zero values take defaults.
type RouterConfig struct {
	Timeout         time.Duration
	HeavyMultiplier float64
	Mace4Path       string
}

// NewRouter builds a router, probing external finder availability once.
func NewRouter(cfg RouterConfig) *Router {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HeavyMultiplier <= 0 {
		cfg.HeavyMultiplier = DefaultHeavyMultiplier
	}
	heavyTimeout := time.Duration(float64(cfg.Timeout) * cfg.HeavyMultiplier)
	return &Router{
		sat:      NewSATFinder(cfg.Timeout),
		satHeavy: NewSATFinder(heavyTimeout),
		external: NewMace4Finder(cfg.Mace4Path, cfg.Timeout),
	}
}

// Available reports whether at least one backend can run. The SAT path is
// in-process, so this always holds with a default-constructed router.
func (r *Router) Available() bool {
	return r.sat.Available() || r.external.Available()
}

// Classify picks the route for a signature.
func (r *Router) Classify(sig *core.Signature) Route {
	if HasHeavyAxioms(sig) {
		if r.external.Available() {
			return RouteExternalHeavy
		}
		return RouteSATHeavy
	}
	return RouteSATNormal
}

// FindModels dispatches a single-size search to the classified backend.
func (r *Router) FindModels(ctx context.Context, sig *core.Signature, size, maxModels int) Result {
	log := logging.New("router")
	route := r.Classify(sig)
	log.Debug("routing model search", "signature", sig.Name, "size", size, "route", string(route))

	switch route {
	case RouteExternalHeavy:
		return r.external.FindModels(ctx, sig, size, maxModels)
	case RouteSATHeavy:
		return r.satHeavy.FindModels(ctx, sig, size, maxModels)
	default:
		return r.sat.FindModels(ctx, sig, size, maxModels)
	}
}

// ComputeSpectrum assembles the model spectrum via the routed backend.
func (r *Router) ComputeSpectrum(ctx context.Context, sig *core.Signature, minSize, maxSize, maxPerSize int) *model.Spectrum {
	return ComputeSpectrum(ctx, r, sig, minSize, maxSize, maxPerSize)
}
