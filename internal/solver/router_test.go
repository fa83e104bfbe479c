package solver

import (
	"context"
	"testing"
	"time"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/library"
)

func TestRouterClassify(t *testing.T) {
	r := NewRouter(RouterConfig{Timeout: time.Second})

	route := r.Classify(library.Ring())
	if route != RouteExternalHeavy && route != RouteSATHeavy {
		t.Errorf("Ring route = %s, want a heavy route", route)
	}
	if got := r.Classify(library.Group()); got != RouteSATNormal {
		t.Errorf("Group route = %s, want %s", got, RouteSATNormal)
	}
}

func TestRouterAlwaysAvailable(t *testing.T) {
	if !NewRouter(RouterConfig{}).Available() {
		t.Error("the in-process SAT path makes the router always available")
	}
}

func TestRouterComputeSpectrum(t *testing.T) {
	r := NewRouter(RouterConfig{Timeout: 30 * time.Second, Mace4Path: "definitely-not-installed"})
	spectrum := r.ComputeSpectrum(context.Background(), library.Monoid(), 2, 3, 5)

	for size := 2; size <= 3; size++ {
		if spectrum.Counts[size] < 1 {
			t.Errorf("monoid at size %d: count = %d, want at least 1", size, spectrum.Counts[size])
		}
	}
}

func TestParallelSpectraOrdering(t *testing.T) {
	jobs := []SpectrumJob{
		{Signature: library.Magma(), MinSize: 1, MaxSize: 2, MaxPerSize: 3},
		{Signature: library.Semigroup(), MinSize: 2, MaxSize: 2, MaxPerSize: 3},
		{Signature: library.Monoid(), MinSize: 2, MaxSize: 2, MaxPerSize: 3},
	}
	spectra := ParallelSpectra(context.Background(), jobs, 3,
		RouterConfig{Timeout: 30 * time.Second, Mace4Path: "definitely-not-installed"})

	if len(spectra) != len(jobs) {
		t.Fatalf("got %d spectra, want %d", len(spectra), len(jobs))
	}
	for i, job := range jobs {
		if spectra[i] == nil {
			t.Fatalf("spectrum %d is nil", i)
		}
		if spectra[i].SignatureName != job.Signature.Name {
			t.Errorf("spectrum %d is for %s, want %s", i, spectra[i].SignatureName, job.Signature.Name)
		}
		if spectra[i].IsEmpty() {
			t.Errorf("%s: expected models", job.Signature.Name)
		}
	}
}

func TestParallelSpectraEmptyInput(t *testing.T) {
	if got := ParallelSpectra(context.Background(), nil, 4, RouterConfig{}); got != nil {
		t.Errorf("empty input should return nil, got %v", got)
	}
}

func TestMace4FinderUnavailable(t *testing.T) {
	f := NewMace4Finder("definitely-not-installed", time.Second)
	if f.Available() {
		t.Skip("a binary named definitely-not-installed exists on PATH")
	}
	res := f.FindModels(context.Background(), library.Group(), 2, 1)
	if res.Err == "" {
		t.Error("unavailable finder should surface an error")
	}
}

func TestProver9Unavailable(t *testing.T) {
	p := NewProver9("definitely-not-installed", time.Second)
	if p.Available() {
		t.Skip("a binary named definitely-not-installed exists on PATH")
	}
	res := p.Prove(context.Background(), library.Semigroup(), core.CommEquation("mul"))
	if res.Status != ProofError {
		t.Errorf("status = %s, want %s", res.Status, ProofError)
	}
}
