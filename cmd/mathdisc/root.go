package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	libraryPath string
	logLevel    string
	logFormat   string
}

var rootCmd = &cobra.Command{
	Use:   "mathdisc",
	Short: "Agentic discovery of novel algebraic structures",
	Long: "mathdisc enumerates structural transformations over a library of classical\n" +
		"algebraic structures, grounds candidates in finite model theory, and ranks\n" +
		"them on a multi-dimensional interestingness score.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Init(logging.ParseLevel(rootFlags.logLevel), rootFlags.logFormat)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.libraryPath, "library-path", "library", "Path to the library directory")
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(listStructuresCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(backtestCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
