package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/format"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/library"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/pipeline"
)

var exploreFlags struct {
	configPath   string
	depth        int
	moves        []string
	excludeMoves string
	bases        []string
	checkModels  bool
	maxSize      int
	threshold    float64
	top          int
	workers      int
	timeoutMS    int
}

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Explore the space of algebraic structures using structural moves",
	RunE:  runExplore,
}

func init() {
	f := exploreCmd.Flags()
	f.StringVar(&exploreFlags.configPath, "config", "", "YAML run config (flags override file values)")
	f.IntVar(&exploreFlags.depth, "depth", 1, "Search depth")
	f.StringSliceVar(&exploreFlags.moves, "moves", nil, "Specific moves to apply")
	f.StringVar(&exploreFlags.excludeMoves, "exclude-moves", "", "Comma-separated moves to exclude (e.g. DEFORM,ABSTRACT)")
	f.StringSliceVar(&exploreFlags.bases, "base", nil, "Base structures to start from")
	f.BoolVar(&exploreFlags.checkModels, "check-models", false, "Check candidates for finite models")
	f.IntVar(&exploreFlags.maxSize, "max-size", 6, "Maximum model size to search")
	f.Float64Var(&exploreFlags.threshold, "threshold", 0, "Minimum score threshold")
	f.IntVar(&exploreFlags.top, "top", 20, "Number of top candidates to display")
	f.IntVar(&exploreFlags.workers, "workers", 1, "Parallel workers for model checking")
	f.IntVar(&exploreFlags.timeoutMS, "timeout-ms", 30000, "Per-check solver timeout in milliseconds")
}

func runExplore(cmd *cobra.Command, _ []string) error {
	cfg := pipeline.DefaultConfig()
	if exploreFlags.configPath != "" {
		loaded, err := pipeline.LoadConfig(exploreFlags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("depth") || cfg.Depth == 0 {
		cfg.Depth = exploreFlags.depth
	}
	if flags.Changed("moves") {
		cfg.Moves = exploreFlags.moves
	}
	if flags.Changed("exclude-moves") {
		cfg.ExcludeMoves = splitCSV(exploreFlags.excludeMoves)
	}
	if flags.Changed("base") {
		cfg.Bases = exploreFlags.bases
	}
	if flags.Changed("check-models") {
		cfg.CheckModels = exploreFlags.checkModels
	}
	if flags.Changed("max-size") {
		cfg.MaxSize = exploreFlags.maxSize
	}
	if flags.Changed("threshold") {
		cfg.Threshold = exploreFlags.threshold
	}
	if flags.Changed("top") {
		cfg.TopN = exploreFlags.top
	}
	if flags.Changed("workers") {
		cfg.Workers = exploreFlags.workers
	}
	if flags.Changed("timeout-ms") {
		cfg.TimeoutMS = exploreFlags.timeoutMS
	}

	lib, err := library.NewManager(rootFlags.libraryPath)
	if err != nil {
		return fmt.Errorf("open library: %w", err)
	}
	defer lib.Close()

	known := lib.KnownFingerprints()
	for fp := range lib.DiscoveredFingerprints() {
		known[fp] = true
	}

	driver := pipeline.NewDriver(known)
	report, err := driver.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated %d candidates; %d above threshold %.2f\n\n",
		report.TotalGenerated, len(report.Candidates), cfg.Threshold)

	t := format.NewTable(format.ASCII)
	t.Header("Name", "Move", "Score", "Sorts", "Ops", "Axioms", "Spectrum")
	t.Columns(
		format.ColumnConfig{Number: 1, MaxWidth: 44},
		format.ColumnConfig{Number: 3, Align: format.AlignRight},
		format.ColumnConfig{Number: 4, Align: format.AlignRight},
		format.ColumnConfig{Number: 5, Align: format.AlignRight},
		format.ColumnConfig{Number: 6, Align: format.AlignRight},
	)
	limit := cfg.TopN
	for i, c := range report.Candidates {
		if i >= limit {
			break
		}
		sig := c.Result.Signature
		spectrumStr := ""
		if c.Spectrum != nil {
			spectrumStr = spectrumSummary(c)
		}
		t.Row(format.Truncate(sig.Name, 44), string(c.Result.Move), format.Score(c.Score()),
			len(sig.Sorts), len(sig.Operations), len(sig.Axioms), spectrumStr)
	}
	fmt.Fprintln(out, t.String())
	return nil
}

func spectrumSummary(c *pipeline.Candidate) string {
	s := c.Spectrum
	sizes := s.SizesWithModels()
	if len(sizes) == 0 {
		if s.AnyTimedOut() {
			return fmt.Sprintf("empty (T/O at %v)", s.TimedOutSizes)
		}
		return "empty"
	}
	var parts []string
	for _, size := range sizes {
		parts = append(parts, fmt.Sprintf("%d:%d", size, s.Counts[size]))
	}
	summary := strings.Join(parts, " ")
	if s.AnyTimedOut() {
		summary += fmt.Sprintf(" T/O@%v", s.TimedOutSizes)
	}
	return summary
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
