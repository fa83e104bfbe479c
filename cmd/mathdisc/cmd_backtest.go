package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/format"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/library"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/pipeline"
)

var backtestFlags struct {
	maxSize     int
	minScore    float64
	discoveryID string
	dryRun      bool
	workers     int
}

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Re-verify persisted discoveries against the model finder",
	Long: "Rebuilds each discovery's signature from its document, recomputes the model\n" +
		"spectrum, re-scores it, updates drifted scores, and archives discoveries whose\n" +
		"spectrum is now proven empty.",
	RunE: runBacktest,
}

func init() {
	f := backtestCmd.Flags()
	f.IntVar(&backtestFlags.maxSize, "max-size", 6, "Maximum domain size to search")
	f.Float64Var(&backtestFlags.minScore, "min-score", 0, "Only backtest discoveries at or above this score")
	f.StringVar(&backtestFlags.discoveryID, "id", "", "Backtest a specific discovery by ID")
	f.BoolVar(&backtestFlags.dryRun, "dry-run", false, "Report without updating scores or archiving")
	f.IntVar(&backtestFlags.workers, "workers", 1, "Parallel workers for model checking")
}

func runBacktest(cmd *cobra.Command, _ []string) error {
	lib, err := library.NewManager(rootFlags.libraryPath)
	if err != nil {
		return fmt.Errorf("open library: %w", err)
	}
	defer lib.Close()

	report, err := pipeline.Backtest(cmd.Context(), lib, pipeline.BacktestOptions{
		MaxSize:     backtestFlags.maxSize,
		MinScore:    backtestFlags.minScore,
		DiscoveryID: backtestFlags.discoveryID,
		DryRun:      backtestFlags.dryRun,
		Workers:     backtestFlags.workers,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(report.Rows) == 0 {
		fmt.Fprintln(out, "No discoveries found.")
		return nil
	}

	t := format.NewTable(format.ASCII)
	t.Header("ID", "Name", "Orig", "New", "Delta", "Models", "Status")
	t.Columns(
		format.ColumnConfig{Number: 2, MaxWidth: 30},
		format.ColumnConfig{Number: 3, Align: format.AlignRight},
		format.ColumnConfig{Number: 4, Align: format.AlignRight},
		format.ColumnConfig{Number: 5, Align: format.AlignRight},
	)
	for _, row := range report.Rows {
		models := fmt.Sprintf("%d (%d sizes)", row.TotalModels, row.SizesWith)
		if len(row.TimedOut) > 0 {
			models += fmt.Sprintf(" T/O@%v", row.TimedOut)
		}
		t.Row(row.ID, format.Truncate(row.Name, 30),
			format.Score(row.OrigScore), format.Score(row.NewScore),
			format.Delta(row.NewScore-row.OrigScore), models, string(row.Status))
	}
	fmt.Fprintln(out, t.String())

	fmt.Fprintf(out, "\nSummary: %d PASS, %d WARN, %d FAIL\n",
		report.Passed, report.Warned, report.Failed)
	if report.Updated > 0 {
		fmt.Fprintf(out, "Updated scores for %d discovery(ies).\n", report.Updated)
	}
	for _, id := range report.Archived {
		fmt.Fprintf(out, "Archived %s to %s/failed/\n", id, rootFlags.libraryPath)
	}

	if report.Failed > 0 {
		return fmt.Errorf("%d discovery(ies) failed verification", report.Failed)
	}
	return nil
}
