package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/format"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/library"
)

var listStructuresCmd = &cobra.Command{
	Use:   "list-structures",
	Short: "List the known seed structures",
	RunE:  runListStructures,
}

func runListStructures(cmd *cobra.Command, _ []string) error {
	t := format.NewTable(format.ASCII)
	t.Header("Name", "Sorts", "Ops", "Axioms", "Fingerprint", "Description")
	t.Columns(
		format.ColumnConfig{Number: 2, Align: format.AlignRight},
		format.ColumnConfig{Number: 3, Align: format.AlignRight},
		format.ColumnConfig{Number: 4, Align: format.AlignRight},
		format.ColumnConfig{Number: 6, MaxWidth: 50},
	)
	for _, sig := range library.LoadAllKnown() {
		t.Row(sig.Name, len(sig.Sorts), len(sig.Operations), len(sig.Axioms),
			sig.Fingerprint(), sig.Description)
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return nil
}
