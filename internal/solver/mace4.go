package solver

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/model"
)

// Mace4Finder shells out to the Mace4 finite model finder (LADR). It is
// the preferred backend for heavy signatures when installed: Mace4 carries
// its own symmetry breaking and handles O(n^3) theories well.
type Mace4Finder struct {
	Path    string
	Timeout time.Duration

	available *bool
}

// NewMace4Finder probes lazily; an empty path means "mace4" on PATH.
func NewMace4Finder(path string, timeout time.Duration) *Mace4Finder {
	if path == "" {
		path = "mace4"
	}
	return &Mace4Finder{Path: path, Timeout: timeout}
}

// Available reports whether the mace4 binary can be found. The probe runs
// once and is cached for the finder's lifetime.
func (f *Mace4Finder) Available() bool {
	if f.available == nil {
		_, err := exec.LookPath(f.Path)
		ok := err == nil
		f.available = &ok
	}
	return *f.available
}

// FindModels runs mace4 with the translated signature on stdin and parses
// the interpretation blocks out of its output.
func (f *Mace4Finder) FindModels(ctx context.Context, sig *core.Signature, size, maxModels int) Result {
	res := Result{DomainSize: size}
	if !f.Available() {
		res.Err = fmt.Sprintf("mace4 not found at %q", f.Path)
		return res
	}

	runCtx, cancel := context.WithTimeout(ctx, f.Timeout)
	defer cancel()

	args := []string{"-n", strconv.Itoa(size), "-N", strconv.Itoa(size)}
	if maxModels > 1 {
		args = append(args, "-m", strconv.Itoa(maxModels))
	}
	cmd := exec.CommandContext(runCtx, f.Path, args...)
	cmd.Stdin = strings.NewReader(ToMace4Input(sig, size))

	out, err := cmd.Output()
	if runCtx.Err() == context.DeadlineExceeded {
		res.TimedOut = true
		return res
	}
	if err != nil {
		// Mace4 exits non-zero when the search space is exhausted with no
		// model; that is a proven-empty result, not an error.
		if _, isExit := err.(*exec.ExitError); !isExit {
			res.Err = fmt.Sprintf("run mace4: %v", err)
			return res
		}
	}

	res.Models = parseMace4Output(string(out), size)
	if len(res.Models) > maxModels {
		res.Models = res.Models[:maxModels]
	}
	return res
}

var (
	mace4BinaryRe = regexp.MustCompile(`function\((\w+)\(_,_\),\s*\[\s*([\d,\s]+)\]\)`)
	mace4UnaryRe  = regexp.MustCompile(`function\((\w+)\(_\),\s*\[\s*([\d,\s]+)\]\)`)
	mace4ConstRe  = regexp.MustCompile(`function\((\w+),\s*\[\s*(\d+)\s*\]\)`)
	mace4SplitRe  = regexp.MustCompile(`={10,}`)
)

// parseMace4Output extracts Cayley tables from interpretation blocks:
//
//	function(f(_,_), [
//	    0,1,2,
//	    1,2,0,
//	    2,0,1
//	]).
func parseMace4Output(out string, size int) []*model.CayleyTable {
	var models []*model.CayleyTable
	for _, block := range mace4SplitRe.Split(out, -1) {
		if !strings.Contains(block, "interpretation") {
			continue
		}
		m := model.NewCayleyTable(size)

		for _, match := range mace4BinaryRe.FindAllStringSubmatch(block, -1) {
			values := parseInts(match[2])
			if len(values) != size*size {
				continue
			}
			table := make([][]int, size)
			for i := range table {
				table[i] = values[i*size : (i+1)*size]
			}
			m.Tables[match[1]] = table
		}
		for _, match := range mace4UnaryRe.FindAllStringSubmatch(block, -1) {
			values := parseInts(match[2])
			if len(values) != size {
				continue
			}
			m.Unary[match[1]] = values
		}
		for _, match := range mace4ConstRe.FindAllStringSubmatch(block, -1) {
			v, err := strconv.Atoi(match[2])
			if err == nil {
				m.Constants[match[1]] = v
			}
		}

		if len(m.Tables) > 0 || len(m.Unary) > 0 || len(m.Constants) > 0 {
			models = append(models, m)
		}
	}
	return models
}

func parseInts(s string) []int {
	var values []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil
		}
		values = append(values, v)
	}
	return values
}
