package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/format"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/library"
)

var reportFlags struct {
	markdown bool
	save     bool
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize the discovery library",
	RunE:  runReport,
}

func init() {
	f := reportCmd.Flags()
	f.BoolVar(&reportFlags.markdown, "markdown", false, "Render the report as Markdown")
	f.BoolVar(&reportFlags.save, "save", false, "Also write the report under the library's reports directory")
}

func runReport(cmd *cobra.Command, _ []string) error {
	lib, err := library.NewManager(rootFlags.libraryPath)
	if err != nil {
		return fmt.Errorf("open library: %w", err)
	}
	defer lib.Close()

	discovered, err := lib.ListDiscovered()
	if err != nil {
		return err
	}

	mode := format.ASCII
	if reportFlags.markdown {
		mode = format.Markdown
	}
	t := format.NewTable(mode)
	t.Header("ID", "Name", "Score", "Novel", "Fingerprint", "Notes")
	t.Columns(
		format.ColumnConfig{Number: 2, MaxWidth: 36},
		format.ColumnConfig{Number: 3, Align: format.AlignRight},
		format.ColumnConfig{Number: 6, MaxWidth: 40},
	)
	for _, d := range discovered {
		novel := "no"
		if d.ScoreBreakdown.IsNovel > 0 {
			novel = "yes"
		}
		t.Row(d.ID, format.Truncate(d.Name, 36), format.Score(d.Score), novel,
			d.Fingerprint, format.Truncate(d.Notes, 40))
	}

	rendered := t.String()
	fmt.Fprintf(cmd.OutOrStdout(), "%d discoveries in %s\n\n%s\n",
		len(discovered), rootFlags.libraryPath, rendered)

	if reportFlags.save {
		name := fmt.Sprintf("report_%s.md", time.Now().UTC().Format("20060102T150405Z"))
		path, err := lib.WriteReport(name, []byte(rendered))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", path)
	}
	return nil
}
