package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/display"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/library"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <name-or-id>",
	Short: "Show a known structure or discovery in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	target := args[0]

	if sig := library.LoadByName(target); sig != nil {
		printSignature(out, sig)
		return nil
	}

	lib, err := library.NewManager(rootFlags.libraryPath)
	if err != nil {
		return fmt.Errorf("open library: %w", err)
	}
	defer lib.Close()

	d, err := lib.GetDiscovery(target)
	if err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("no known structure or discovery named %q", target)
	}

	sig, err := core.FromDoc(d.Signature)
	if err != nil {
		return fmt.Errorf("reconstruct %s: %w", d.ID, err)
	}
	fmt.Fprintf(out, "Discovery %s (score %.3f)\n", d.ID, d.Score)
	if d.Notes != "" {
		fmt.Fprintf(out, "Notes: %s\n", d.Notes)
	}
	fmt.Fprintln(out)
	printSignature(out, sig)
	return nil
}

func printSignature(out io.Writer, sig *core.Signature) {
	fmt.Fprintf(out, "%s\n", sig.Name)
	if sig.Description != "" {
		fmt.Fprintf(out, "  %s\n", sig.Description)
	}
	fmt.Fprintf(out, "  Fingerprint: %s\n\n", sig.Fingerprint())

	fmt.Fprintln(out, "  Sorts:")
	for _, s := range sig.Sorts {
		fmt.Fprintf(out, "    %-12s %s\n", s.Name, s.Description)
	}

	fmt.Fprintln(out, "  Operations:")
	for _, op := range sig.Operations {
		fmt.Fprintf(out, "    %s/%d: %v -> %s\n", op.Name, op.Arity(), op.Domain, op.Codomain)
	}

	fmt.Fprintln(out, "  Axioms:")
	for _, ax := range sig.Axioms {
		fmt.Fprintf(out, "    [%s] %s\n", display.AxiomKind(string(ax.Kind)), ax.Equation)
	}

	if len(sig.DerivationChain) > 0 {
		fmt.Fprintln(out, "  Derivation:")
		for i, step := range sig.DerivationChain {
			fmt.Fprintf(out, "    %d. %s\n", i+1, step)
		}
	}
}
