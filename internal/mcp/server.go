// Package mcp exposes the agent tool boundary as an MCP server: the LLM
// research controller connects over stdio and drives exploration, model
// checking, proving, scoring, and library access through typed tools. The
// controller itself is an external collaborator.
package mcp

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/library"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/logging"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/pipeline"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/scoring"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/solver"
)

// Server wraps the MCP SDK server around a library manager.
type Server struct {
	MCPServer *sdkmcp.Server
	Library   *library.Manager

	// named holds signatures produced by explore in this session so later
	// tool calls (check_models, prove, score, add_to_library) can
	// reference them by name.
	named map[string]*core.Signature
}

// NewServer creates an MCP server with the discovery tools registered.
func NewServer(lib *library.Manager) *Server {
	s := &Server{
		Library: lib,
		named:   map[string]*core.Signature{},
	}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "mathdisc", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "explore",
		Description: "Apply structural moves to base structures and return scored candidates.",
	}, s.handleExplore)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "check_models",
		Description: "Compute the finite model spectrum of a signature over a size range.",
	}, s.handleCheckModels)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "prove",
		Description: "Attempt to prove a conjecture equation from a signature's axioms.",
	}, s.handleProve)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "score",
		Description: "Score a signature's interestingness across the twelve dimensions.",
	}, s.handleScore)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "search_library",
		Description: "Search known and discovered structures by name or notes.",
	}, s.handleSearchLibrary)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "add_to_library",
		Description: "Persist a candidate from this session as a discovery.",
	}, s.handleAddToLibrary)
}

// resolve finds a signature by name: session candidates first, then the
// known catalog.
func (s *Server) resolve(name string) (*core.Signature, error) {
	if sig, ok := s.named[name]; ok {
		return sig, nil
	}
	if sig := library.LoadByName(name); sig != nil {
		return sig, nil
	}
	return nil, fmt.Errorf("unknown signature %q (not a session candidate or known structure)", name)
}

// --- Tool input/output types ---

type exploreInput struct {
	Bases        []string `json:"bases,omitempty" jsonschema:"base structure names (default: whole catalog)"`
	Depth        int      `json:"depth,omitempty" jsonschema:"search depth (default 1)"`
	Moves        []string `json:"moves,omitempty" jsonschema:"moves to apply (default: all eight)"`
	ExcludeMoves []string `json:"exclude_moves,omitempty" jsonschema:"moves to exclude"`
	Threshold    float64  `json:"threshold,omitempty" jsonschema:"minimum structural score"`
	Top          int      `json:"top,omitempty" jsonschema:"number of candidates to return (default 20)"`
}

type exploreCandidate struct {
	Name        string  `json:"name"`
	Move        string  `json:"move"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	Sorts       int     `json:"sorts"`
	Operations  int     `json:"operations"`
	Axioms      int     `json:"axioms"`
	Fingerprint string  `json:"fingerprint"`
}

type exploreOutput struct {
	TotalGenerated int                `json:"total_generated"`
	Candidates     []exploreCandidate `json:"candidates"`
}

type checkModelsInput struct {
	Name       string `json:"name" jsonschema:"signature name (session candidate or known structure)"`
	MinSize    int    `json:"min_size,omitempty" jsonschema:"smallest domain size (default 2)"`
	MaxSize    int    `json:"max_size,omitempty" jsonschema:"largest domain size (default 6)"`
	MaxPerSize int    `json:"max_models,omitempty" jsonschema:"max models per size (default 10)"`
	TimeoutMS  int    `json:"timeout_ms,omitempty" jsonschema:"per-check solver timeout (default 30000)"`
}

type checkModelsOutput struct {
	Spectrum      map[int]int `json:"spectrum"`
	TotalModels   int         `json:"total_models"`
	TimedOutSizes []int       `json:"timed_out_sizes,omitempty"`
}

type proveInput struct {
	Name       string `json:"name" jsonschema:"signature whose axioms are the assumptions"`
	Conjecture string `json:"conjecture" jsonschema:"equation to prove, e.g. '(x mul y) = (y mul x)'"`
	TimeoutSec int    `json:"timeout_sec,omitempty" jsonschema:"prover timeout in seconds (default 30)"`
}

type proveOutput struct {
	Status    string `json:"status"`
	ProofText string `json:"proof_text,omitempty"`
}

type scoreInput struct {
	Name string `json:"name" jsonschema:"signature name (session candidate or known structure)"`
}

type scoreOutput struct {
	Total     float64            `json:"total"`
	Breakdown map[string]float64 `json:"breakdown"`
}

type searchLibraryInput struct {
	Query    string  `json:"query" jsonschema:"substring to match against names and notes"`
	MinScore float64 `json:"min_score,omitempty" jsonschema:"minimum discovery score"`
}

type searchLibraryOutput struct {
	Results []library.SearchResult `json:"results"`
}

type addToLibraryInput struct {
	Name  string `json:"name" jsonschema:"session candidate name to persist"`
	Notes string `json:"notes,omitempty" jsonschema:"free-form notes on why this is interesting"`
}

type addToLibraryOutput struct {
	Status string  `json:"status"`
	ID     string  `json:"id"`
	Score  float64 `json:"score"`
}

// --- Tool handlers ---

func (s *Server) handleExplore(ctx context.Context, _ *sdkmcp.CallToolRequest, input exploreInput) (*sdkmcp.CallToolResult, exploreOutput, error) {
	cfg := pipeline.DefaultConfig()
	cfg.Bases = input.Bases
	if input.Depth > 0 {
		cfg.Depth = input.Depth
	}
	cfg.Moves = input.Moves
	cfg.ExcludeMoves = input.ExcludeMoves
	cfg.Threshold = input.Threshold
	if input.Top > 0 {
		cfg.TopN = input.Top
	}

	driver := pipeline.NewDriver(s.Library.KnownFingerprints())
	report, err := driver.Run(ctx, cfg)
	if err != nil {
		return nil, exploreOutput{}, fmt.Errorf("explore: %w", err)
	}

	out := exploreOutput{TotalGenerated: report.TotalGenerated}
	for _, c := range report.Candidates {
		if len(out.Candidates) >= cfg.TopN {
			break
		}
		sig := c.Result.Signature
		s.named[sig.Name] = sig
		out.Candidates = append(out.Candidates, exploreCandidate{
			Name:        sig.Name,
			Move:        string(c.Result.Move),
			Description: c.Result.Description,
			Score:       c.Score(),
			Sorts:       len(sig.Sorts),
			Operations:  len(sig.Operations),
			Axioms:      len(sig.Axioms),
			Fingerprint: sig.Fingerprint(),
		})
	}
	logging.New("mcp").Info("explore complete",
		"generated", report.TotalGenerated, "returned", len(out.Candidates))
	return nil, out, nil
}

func (s *Server) handleCheckModels(ctx context.Context, _ *sdkmcp.CallToolRequest, input checkModelsInput) (*sdkmcp.CallToolResult, checkModelsOutput, error) {
	sig, err := s.resolve(input.Name)
	if err != nil {
		return nil, checkModelsOutput{}, err
	}
	minSize, maxSize, maxPer, timeoutMS := input.MinSize, input.MaxSize, input.MaxPerSize, input.TimeoutMS
	if minSize <= 0 {
		minSize = 2
	}
	if maxSize <= 0 {
		maxSize = 6
	}
	if maxPer <= 0 {
		maxPer = 10
	}
	if timeoutMS <= 0 {
		timeoutMS = 30000
	}

	router := solver.NewRouter(solver.RouterConfig{
		Timeout: time.Duration(timeoutMS) * time.Millisecond,
	})
	spectrum := router.ComputeSpectrum(ctx, sig, minSize, maxSize, maxPer)

	return nil, checkModelsOutput{
		Spectrum:      spectrum.Counts,
		TotalModels:   spectrum.TotalModels(),
		TimedOutSizes: spectrum.TimedOutSizes,
	}, nil
}

func (s *Server) handleProve(ctx context.Context, _ *sdkmcp.CallToolRequest, input proveInput) (*sdkmcp.CallToolResult, proveOutput, error) {
	sig, err := s.resolve(input.Name)
	if err != nil {
		return nil, proveOutput{}, err
	}
	constants := map[string]bool{}
	for _, op := range sig.Operations {
		if op.Arity() == 0 {
			constants[op.Name] = true
		}
	}
	conjecture, err := core.ParseEquation(input.Conjecture, constants)
	if err != nil {
		return nil, proveOutput{}, fmt.Errorf("bad conjecture: %w", err)
	}

	timeout := 30 * time.Second
	if input.TimeoutSec > 0 {
		timeout = time.Duration(input.TimeoutSec) * time.Second
	}
	prover := solver.NewProver9("", timeout)
	result := prover.Prove(ctx, sig, conjecture)

	if err := s.Library.AddConjecture(library.Conjecture{
		Signature: sig.Name,
		Statement: conjecture.String(),
		Status:    string(result.Status),
	}); err != nil {
		logging.New("mcp").Warn("record conjecture failed", "error", err)
	}
	return nil, proveOutput{Status: string(result.Status), ProofText: result.ProofText}, nil
}

func (s *Server) handleScore(ctx context.Context, _ *sdkmcp.CallToolRequest, input scoreInput) (*sdkmcp.CallToolResult, scoreOutput, error) {
	sig, err := s.resolve(input.Name)
	if err != nil {
		return nil, scoreOutput{}, err
	}
	breakdown := scoring.NewEngine().Score(sig, nil, s.Library.KnownFingerprints())
	return nil, scoreOutput{Total: breakdown.Total, Breakdown: breakdown.Dimensions()}, nil
}

func (s *Server) handleSearchLibrary(ctx context.Context, _ *sdkmcp.CallToolRequest, input searchLibraryInput) (*sdkmcp.CallToolResult, searchLibraryOutput, error) {
	results, err := s.Library.Search(input.Query, input.MinScore)
	if err != nil {
		return nil, searchLibraryOutput{}, fmt.Errorf("search: %w", err)
	}
	return nil, searchLibraryOutput{Results: results}, nil
}

func (s *Server) handleAddToLibrary(ctx context.Context, _ *sdkmcp.CallToolRequest, input addToLibraryInput) (*sdkmcp.CallToolResult, addToLibraryOutput, error) {
	sig, ok := s.named[input.Name]
	if !ok {
		return nil, addToLibraryOutput{}, fmt.Errorf("signature %q is not a session candidate", input.Name)
	}
	breakdown := scoring.NewEngine().Score(sig, nil, s.Library.KnownFingerprints())

	d, path, err := s.Library.AddDiscovery(sig, input.Name, input.Notes, breakdown)
	if err != nil {
		return nil, addToLibraryOutput{}, fmt.Errorf("add discovery: %w", err)
	}
	logging.New("mcp").Info("discovery persisted", "id", d.ID, "path", path)
	return nil, addToLibraryOutput{Status: "added", ID: d.ID, Score: breakdown.Total}, nil
}
