package solver

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
)

// ProofStatus is the outcome at the prover boundary. Disproved means the
// goal search space was exhausted without a proof; it is not a
// counter-model, which would require running the model finder on the
// negated conjecture.
type ProofStatus string

const (
	Proved       ProofStatus = "proved"
	Disproved    ProofStatus = "disproved"
	ProofTimeout ProofStatus = "timeout"
	ProofError   ProofStatus = "error"
)

// ProofResult carries the status plus whatever proof text was extracted.
type ProofResult struct {
	Status     ProofStatus
	Conjecture string
	ProofText  string
	RawOutput  string
}

// Prover attempts to prove that a signature's axioms imply a conjecture.
type Prover interface {
	Prove(ctx context.Context, sig *core.Signature, conjecture core.Equation) ProofResult
	Available() bool
}

// Prover9 shells out to the Prover9 automated theorem prover.
type Prover9 struct {
	Path    string
	Timeout time.Duration

	available *bool
}

// NewProver9 probes lazily; an empty path means "prover9" on PATH.
func NewProver9(path string, timeout time.Duration) *Prover9 {
	if path == "" {
		path = "prover9"
	}
	return &Prover9{Path: path, Timeout: timeout}
}

// Available reports whether the prover9 binary can be found.
func (p *Prover9) Available() bool {
	if p.available == nil {
		_, err := exec.LookPath(p.Path)
		ok := err == nil
		p.available = &ok
	}
	return *p.available
}

// Prove runs prover9 with the translated problem on stdin and maps its
// output to a ProofStatus.
func (p *Prover9) Prove(ctx context.Context, sig *core.Signature, conjecture core.Equation) ProofResult {
	conj := conjecture.String()
	if !p.Available() {
		return ProofResult{
			Status:     ProofError,
			Conjecture: conj,
			RawOutput:  fmt.Sprintf("prover9 not found at %q", p.Path),
		}
	}

	runCtx, cancel := context.WithTimeout(ctx, p.Timeout+5*time.Second)
	defer cancel()

	cmd := exec.CommandContext(runCtx, p.Path,
		fmt.Sprintf("-t%d", int(p.Timeout.Seconds())))
	cmd.Stdin = strings.NewReader(ToProver9Input(sig, conjecture))

	out, err := cmd.Output()
	output := string(out)

	switch {
	case runCtx.Err() == context.DeadlineExceeded:
		return ProofResult{Status: ProofTimeout, Conjecture: conj, RawOutput: output}
	case strings.Contains(output, "THEOREM PROVED"):
		return ProofResult{
			Status:     Proved,
			Conjecture: conj,
			ProofText:  extractProof(output),
			RawOutput:  output,
		}
	case strings.Contains(output, "SEARCH FAILED"):
		return ProofResult{Status: Disproved, Conjecture: conj, RawOutput: output}
	case err != nil && output == "":
		return ProofResult{Status: ProofError, Conjecture: conj, RawOutput: err.Error()}
	default:
		return ProofResult{Status: ProofTimeout, Conjecture: conj, RawOutput: output}
	}
}

// extractProof pulls the proof section out of prover9 output.
func extractProof(output string) string {
	var proof []string
	inProof := false
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "PROOF") {
			inProof = true
		}
		if inProof {
			proof = append(proof, line)
			if strings.Contains(strings.ToLower(line), "end of proof") {
				break
			}
		}
	}
	return strings.Join(proof, "\n")
}
