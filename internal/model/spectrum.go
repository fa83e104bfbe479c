package model

import (
	"fmt"
	"sort"
	"strings"
)

// Spectrum maps domain size to the models found there, distinguishing
// sizes proven empty from sizes where the solver gave up. Iteration is
// strictly ascending by size.
type Spectrum struct {
	SignatureName string
	Counts        map[int]int
	ModelsBySize  map[int][]*CayleyTable
	TimedOutSizes []int
	// Errors records solver failures per size (empty model list, error
	// string); callers may treat these as timeouts for scoring.
	Errors map[int]string
}

// NewSpectrum returns an empty spectrum for the named signature.
func NewSpectrum(name string) *Spectrum {
	return &Spectrum{
		SignatureName: name,
		Counts:        map[int]int{},
		ModelsBySize:  map[int][]*CayleyTable{},
	}
}

// Sizes returns every checked size in ascending order.
func (s *Spectrum) Sizes() []int {
	sizes := make([]int, 0, len(s.Counts))
	for size := range s.Counts {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	return sizes
}

// SizesWithModels returns the sizes with at least one model, ascending.
func (s *Spectrum) SizesWithModels() []int {
	var sizes []int
	for size, count := range s.Counts {
		if count > 0 {
			sizes = append(sizes, size)
		}
	}
	sort.Ints(sizes)
	return sizes
}

// TotalModels sums the per-size counts.
func (s *Spectrum) TotalModels() int {
	total := 0
	for _, count := range s.Counts {
		total += count
	}
	return total
}

// IsEmpty reports whether no size produced a model.
func (s *Spectrum) IsEmpty() bool { return s.TotalModels() == 0 }

// AnyTimedOut reports whether any size hit the solver timeout.
func (s *Spectrum) AnyTimedOut() bool { return len(s.TimedOutSizes) > 0 }

func (s *Spectrum) String() string {
	var parts []string
	for _, size := range s.SizesWithModels() {
		parts = append(parts, fmt.Sprintf("%d: %d", size, s.Counts[size]))
	}
	return fmt.Sprintf("Spectrum(%s: {%s})", s.SignatureName, strings.Join(parts, ", "))
}
