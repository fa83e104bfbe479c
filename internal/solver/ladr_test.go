package solver

import (
	"strings"
	"testing"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/library"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/model"
)

func TestToMace4Input(t *testing.T) {
	input := ToMace4Input(library.Group(), 3)

	for _, want := range []string{
		"assign(domain_size, 3).",
		"formulas(assumptions).",
		"mul(mul(x,y),z) = mul(x,mul(y,z)).",
		"mul(x,e) = x.",
		"mul(x,inv(x)) = e.",
		"end_of_list.",
	} {
		if !strings.Contains(input, want) {
			t.Errorf("mace4 input missing %q:\n%s", want, input)
		}
	}
}

func TestToProver9Input(t *testing.T) {
	input := ToProver9Input(library.Semigroup(), core.CommEquation("mul"))

	if !strings.Contains(input, "formulas(goals).") {
		t.Error("missing goals section")
	}
	if !strings.Contains(input, "mul(x,y) = mul(y,x).") {
		t.Errorf("missing conjecture:\n%s", input)
	}
	if strings.Index(input, "formulas(assumptions).") > strings.Index(input, "formulas(goals).") {
		t.Error("assumptions must precede goals")
	}
}

func TestParseMace4Output(t *testing.T) {
	output := `
============================== MODEL =================================

interpretation( 3, [number=1, seconds=0], [

        function(e, [ 0 ]),

        function(inv(_), [ 0, 2, 1 ]),

        function(mul(_,_), [
            0, 1, 2,
            1, 2, 0,
            2, 0, 1 ])
]).

============================== end of model ==========================
`
	models := parseMace4Output(output, 3)
	if len(models) != 1 {
		t.Fatalf("parsed %d models, want 1", len(models))
	}
	m := models[0]
	if m.Constants["e"] != 0 {
		t.Errorf("e = %d, want 0", m.Constants["e"])
	}
	wantInv := []int{0, 2, 1}
	for i, v := range wantInv {
		if m.Unary["inv"][i] != v {
			t.Errorf("inv[%d] = %d, want %d", i, m.Unary["inv"][i], v)
		}
	}
	if m.Tables["mul"][1][2] != 0 {
		t.Errorf("mul[1][2] = %d, want 0", m.Tables["mul"][1][2])
	}
	if !m.IsAssociative("mul") {
		t.Error("parsed Z3 table should be associative")
	}
}

func TestParseMace4OutputNoModels(t *testing.T) {
	if models := parseMace4Output("Exiting with failure.\n", 3); len(models) != 0 {
		t.Errorf("parsed %d models from empty output", len(models))
	}
}

func TestVerifyModelRejectsViolation(t *testing.T) {
	m := model.NewCayleyTable(2)
	m.Tables["mul"] = [][]int{
		{0, 1},
		{0, 0}, // (1*1)*1 != 1*(1*1)
	}
	if err := VerifyModel(library.Semigroup(), m); err == nil {
		t.Fatal("verifier accepted a non-associative table for Semigroup")
	}
}
