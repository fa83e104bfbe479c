package main

import (
	"fmt"

	"github.com/spf13/cobra"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	mcpserver "github.com/ClaudeCarlsson/agentic-math-discovery/internal/mcp"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/library"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio for the research agent",
	Long: "Starts an MCP server over stdin/stdout. The LLM research controller connects\n" +
		"and drives exploration through the explore, check_models, prove, score,\n" +
		"search_library, and add_to_library tools.",
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	lib, err := library.NewManager(rootFlags.libraryPath)
	if err != nil {
		return fmt.Errorf("open library: %w", err)
	}
	defer lib.Close()

	srv := mcpserver.NewServer(lib)
	logging.New("mcp").Info("starting mathdisc MCP server over stdio")
	return srv.MCPServer.Run(cmd.Context(), &sdkmcp.StdioTransport{})
}
