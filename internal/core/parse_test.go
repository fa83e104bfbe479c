package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseEquation(t *testing.T) {
	constants := map[string]bool{"e": true, "zero": true}

	tests := []struct {
		name  string
		input string
		want  Equation
	}{
		{
			"commutativity",
			"(x mul y) = (y mul x)",
			CommEquation("mul"),
		},
		{
			"associativity",
			"((x mul y) mul z) = (x mul (y mul z))",
			AssocEquation("mul"),
		},
		{
			"right identity with constant",
			"(x mul e) = x",
			IdentityEquation("mul", "e"),
		},
		{
			"inverse law",
			"(x mul inv(x)) = e",
			InverseEquation("mul", "inv", "e"),
		},
		{
			"positivity marker",
			"norm(x) = norm(x)",
			Equation{LHS: NewApp("norm", Var{"x"}), RHS: NewApp("norm", Var{"x"})},
		},
		{
			"n-ary application",
			"f(a, b, c) = a",
			Equation{LHS: NewApp("f", Var{"a"}, Var{"b"}, Var{"c"}), RHS: Var{"a"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEquation(tt.input, constants)
			if err != nil {
				t.Fatalf("ParseEquation(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parse mismatch:\n%s", diff)
			}
		})
	}
}

func TestParseRenderRoundTrip(t *testing.T) {
	constants := map[string]bool{"e": true}
	equations := []Equation{
		AssocEquation("mul"),
		CommEquation("op"),
		IdentityEquation("mul", "e"),
		InverseEquation("mul", "inv", "e"),
		IdempotentEquation("join"),
		SelfDistribEquation("op"),
		RightSelfDistribEquation("op"),
		DistribEquation("mul", "add"),
		JacobiEquation("bracket"),
	}
	for _, eq := range equations {
		t.Run(eq.String(), func(t *testing.T) {
			parsed, err := ParseEquation(eq.String(), constants)
			if err != nil {
				t.Fatalf("ParseEquation(%q): %v", eq, err)
			}
			if diff := cmp.Diff(eq, parsed); diff != "" {
				t.Errorf("round trip mismatch:\n%s", diff)
			}
		})
	}
}

func TestParseEquationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing equals", "(x mul y)"},
		{"unbalanced paren", "(x mul y = x"},
		{"trailing garbage", "x = y)"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseEquation(tt.input, nil); err == nil {
				t.Errorf("ParseEquation(%q) succeeded, want error", tt.input)
			}
		})
	}
}
