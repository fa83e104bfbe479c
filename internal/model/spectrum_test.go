package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSpectrumAccessors(t *testing.T) {
	s := NewSpectrum("Test")
	s.Counts[4] = 0
	s.Counts[2] = 3
	s.Counts[3] = 1
	s.TimedOutSizes = []int{5}

	if diff := cmp.Diff([]int{2, 3, 4}, s.Sizes()); diff != "" {
		t.Errorf("Sizes mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 3}, s.SizesWithModels()); diff != "" {
		t.Errorf("SizesWithModels mismatch:\n%s", diff)
	}
	if got := s.TotalModels(); got != 4 {
		t.Errorf("TotalModels = %d, want 4", got)
	}
	if s.IsEmpty() {
		t.Error("spectrum with models reported empty")
	}
	if !s.AnyTimedOut() {
		t.Error("spectrum with a timed-out size reported no timeouts")
	}
}

func TestSpectrumEmpty(t *testing.T) {
	s := NewSpectrum("Empty")
	s.Counts[2] = 0
	if !s.IsEmpty() {
		t.Error("zero-count spectrum should be empty")
	}
	if s.AnyTimedOut() {
		t.Error("no timeouts recorded")
	}
	if got := len(s.SizesWithModels()); got != 0 {
		t.Errorf("SizesWithModels = %d entries, want 0", got)
	}
}
