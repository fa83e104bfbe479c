package pipeline

import (
	"context"
	"testing"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/library"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/scoring"
)

func idempotenceOn(op string) core.Axiom {
	return core.Axiom{
		Kind:       core.Idempotence,
		Equation:   core.IdempotentEquation(op),
		Operations: []string{op},
	}
}

func backtestManager(t *testing.T) *library.Manager {
	t.Helper()
	m, err := library.NewManagerWithStore(t.TempDir(), library.NewMemStore())
	if err != nil {
		t.Fatalf("NewManagerWithStore: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestBacktestEmptyLibrary(t *testing.T) {
	report, err := Backtest(context.Background(), backtestManager(t), BacktestOptions{MaxSize: 2})
	if err != nil {
		t.Fatalf("Backtest: %v", err)
	}
	if len(report.Rows) != 0 {
		t.Errorf("rows = %d, want 0", len(report.Rows))
	}
}

func TestBacktestPassAndScoreUpdate(t *testing.T) {
	m := backtestManager(t)

	// Persist a group discovery with a deliberately stale score; groups
	// exist at sizes 2 and 3, so the backtest passes and refreshes it.
	breakdown := scoring.Breakdown{HasModels: 1.0, Total: 0.123}
	d, _, err := m.AddDiscovery(library.Group(), "GroupRedux", "re-verification target", breakdown)
	if err != nil {
		t.Fatalf("AddDiscovery: %v", err)
	}

	report, err := Backtest(context.Background(), m, BacktestOptions{MaxSize: 3})
	if err != nil {
		t.Fatalf("Backtest: %v", err)
	}
	if report.Passed != 1 || report.Failed != 0 {
		t.Fatalf("pass/fail = %d/%d, want 1/0 (rows: %+v)", report.Passed, report.Failed, report.Rows)
	}
	row := report.Rows[0]
	if row.TotalModels < 2 {
		t.Errorf("total models = %d, want at least 2", row.TotalModels)
	}
	if report.Updated != 1 {
		t.Errorf("updated = %d, want 1 (stale score refreshed)", report.Updated)
	}

	refreshed, err := m.GetDiscovery(d.ID)
	if err != nil || refreshed == nil {
		t.Fatalf("GetDiscovery: %v", err)
	}
	if refreshed.Score == 0.123 {
		t.Error("stale score survived the backtest")
	}
}

func TestBacktestFailArchives(t *testing.T) {
	m := backtestManager(t)

	// An idempotent group has no models at sizes 2..3, so a discovery
	// claiming models must fail and be archived.
	sig := library.Group().Clone("IdempotentGroup")
	sig.Axioms = append(sig.Axioms, idempotenceOn("mul"))

	breakdown := scoring.Breakdown{HasModels: 1.0, Total: 0.5}
	d, _, err := m.AddDiscovery(sig, "IdempotentGroup", "", breakdown)
	if err != nil {
		t.Fatalf("AddDiscovery: %v", err)
	}

	report, err := Backtest(context.Background(), m, BacktestOptions{MaxSize: 3})
	if err != nil {
		t.Fatalf("Backtest: %v", err)
	}
	if report.Failed != 1 {
		t.Fatalf("failed = %d, want 1 (rows: %+v)", report.Failed, report.Rows)
	}
	if len(report.Archived) != 1 || report.Archived[0] != d.ID {
		t.Errorf("archived = %v, want [%s]", report.Archived, d.ID)
	}
	gone, err := m.GetDiscovery(d.ID)
	if err != nil {
		t.Fatalf("GetDiscovery: %v", err)
	}
	if gone != nil {
		t.Error("failed discovery still indexed after archive")
	}
}

func TestBacktestDryRunKeepsFailures(t *testing.T) {
	m := backtestManager(t)

	sig := library.Group().Clone("IdempotentGroup")
	sig.Axioms = append(sig.Axioms, idempotenceOn("mul"))
	d, _, err := m.AddDiscovery(sig, "IdempotentGroup", "", scoring.Breakdown{HasModels: 1.0})
	if err != nil {
		t.Fatalf("AddDiscovery: %v", err)
	}

	report, err := Backtest(context.Background(), m, BacktestOptions{MaxSize: 3, DryRun: true})
	if err != nil {
		t.Fatalf("Backtest: %v", err)
	}
	if report.Failed != 1 {
		t.Fatalf("failed = %d, want 1", report.Failed)
	}
	if len(report.Archived) != 0 {
		t.Errorf("dry run archived %v", report.Archived)
	}
	kept, err := m.GetDiscovery(d.ID)
	if err != nil || kept == nil {
		t.Error("dry run removed the discovery")
	}
}
