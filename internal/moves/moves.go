// Package moves implements the eight structural transformations that
// generate candidate signatures. Moves are the only way the system
// produces new mathematics: each is a pure function from one or two
// signatures to a list of children, and every child deep-copies its
// parent, appends exactly one derivation-chain entry, and preserves the
// signature invariants.
package moves

import (
	"fmt"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
)

// Kind identifies a structural move.
type Kind string

const (
	Abstract    Kind = "ABSTRACT"
	Dualize     Kind = "DUALIZE"
	Complete    Kind = "COMPLETE"
	Quotient    Kind = "QUOTIENT"
	Internalize Kind = "INTERNALIZE"
	Transfer    Kind = "TRANSFER"
	Deform      Kind = "DEFORM"
	SelfDistrib Kind = "SELF_DISTRIB"
)

// AllKinds lists every move. ApplyAll applies the single-signature moves
// to each signature first and the pairwise moves (ABSTRACT, TRANSFER)
// afterwards.
var AllKinds = []Kind{
	Abstract, Dualize, Complete, Quotient,
	Internalize, Transfer, Deform, SelfDistrib,
}

// ParseKind validates a move name.
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown move %q", s)
}

// Pairwise reports whether the move takes two parent signatures.
func (k Kind) Pairwise() bool { return k == Abstract || k == Transfer }

// Result is one produced candidate with its provenance.
type Result struct {
	Signature   *core.Signature
	Move        Kind
	Parents     []string
	Description string
}

// Engine applies structural moves to signatures.
type Engine struct{}

// NewEngine returns a move engine.
func NewEngine() *Engine { return &Engine{} }

// ApplyAll applies every move to the given signatures: single moves to
// each, pairwise moves to each unordered pair (i < j). Result ordering is
// deterministic for a given input ordering.
func (e *Engine) ApplyAll(sigs []*core.Signature) []Result {
	var results []Result
	for _, sig := range sigs {
		results = append(results, e.Dualize(sig)...)
		results = append(results, e.Complete(sig)...)
		results = append(results, e.Quotient(sig)...)
		results = append(results, e.Internalize(sig)...)
		results = append(results, e.Deform(sig)...)
		results = append(results, e.SelfDistrib(sig)...)
	}
	for i, a := range sigs {
		for j, b := range sigs {
			if i < j {
				results = append(results, e.Abstract(a, b)...)
				results = append(results, e.Transfer(a, b)...)
			}
		}
	}
	return results
}

// Apply applies one specific move kind across the input signatures.
func (e *Engine) Apply(kind Kind, sigs []*core.Signature) []Result {
	single := func(fn func(*core.Signature) []Result) []Result {
		var results []Result
		for _, s := range sigs {
			results = append(results, fn(s)...)
		}
		return results
	}
	pairwise := func(fn func(a, b *core.Signature) []Result) []Result {
		var results []Result
		for i, a := range sigs {
			for j, b := range sigs {
				if i < j {
					results = append(results, fn(a, b)...)
				}
			}
		}
		return results
	}

	switch kind {
	case Abstract:
		return pairwise(e.Abstract)
	case Dualize:
		return single(e.Dualize)
	case Complete:
		return single(e.Complete)
	case Quotient:
		return single(e.Quotient)
	case Internalize:
		return single(e.Internalize)
	case Transfer:
		return pairwise(e.Transfer)
	case Deform:
		return single(e.Deform)
	case SelfDistrib:
		return single(e.SelfDistrib)
	default:
		return nil
	}
}

// child clones sig under the new name and records the derivation step.
func child(sig *core.Signature, newName, step string) *core.Signature {
	c := sig.Clone(newName)
	c.DerivationChain = append(c.DerivationChain, step)
	return c
}
