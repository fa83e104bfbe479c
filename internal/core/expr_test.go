package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExprSize(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want int
	}{
		{"variable", Var{"x"}, 1},
		{"constant", Const{"e"}, 1},
		{"unary", NewApp("inv", Var{"x"}), 2},
		{"binary", NewApp("mul", Var{"x"}, Var{"y"}), 3},
		{"nested", NewApp("mul", NewApp("mul", Var{"x"}, Var{"y"}), Var{"z"}), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExprVariables(t *testing.T) {
	expr := NewApp("mul", NewApp("mul", Var{"x"}, Var{"y"}), NewApp("inv", Var{"x"}))
	want := []string{"x", "y"}
	if diff := cmp.Diff(want, expr.Variables()); diff != "" {
		t.Errorf("Variables mismatch:\n%s", diff)
	}

	if got := (Const{"e"}).Variables(); got != nil {
		t.Errorf("constant Variables() = %v, want nil", got)
	}
}

func TestSubstitute(t *testing.T) {
	expr := NewApp("mul", Var{"x"}, Var{"y"})
	sub := map[string]Expr{"x": NewApp("inv", Var{"z"})}

	got := expr.Substitute(sub)
	want := NewApp("mul", NewApp("inv", Var{"z"}), Var{"y"})
	if diff := cmp.Diff(Expr(want), got); diff != "" {
		t.Errorf("Substitute mismatch:\n%s", diff)
	}

	// The original tree is untouched.
	if diff := cmp.Diff(Expr(NewApp("mul", Var{"x"}, Var{"y"})), Expr(expr)); diff != "" {
		t.Errorf("Substitute mutated receiver:\n%s", diff)
	}
}

// Variables of a substituted expression stay within the original
// variables plus those introduced by the substitution images.
func TestSubstituteVariableBound(t *testing.T) {
	expr := NewApp("mul", NewApp("mul", Var{"x"}, Var{"y"}), Var{"z"})
	sub := map[string]Expr{
		"x": NewApp("inv", Var{"u"}),
		"z": Const{"e"},
	}

	allowed := map[string]bool{"y": true, "u": true}
	for _, v := range expr.Substitute(sub).Variables() {
		if !allowed[v] {
			t.Errorf("unexpected variable %q after substitution", v)
		}
	}
}

func TestExprString(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"binary infix", NewApp("mul", Var{"x"}, Var{"y"}), "(x mul y)"},
		{"unary prefix", NewApp("inv", Var{"x"}), "inv(x)"},
		{"ternary", NewApp("f", Var{"a"}, Var{"b"}, Var{"c"}), "f(a, b, c)"},
		{"constant", Const{"zero"}, "zero"},
		{"nested", NewApp("mul", NewApp("mul", Var{"x"}, Var{"y"}), Var{"z"}), "((x mul y) mul z)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEquation(t *testing.T) {
	eq := AssocEquation("mul")
	if got := eq.String(); got != "((x mul y) mul z) = (x mul (y mul z))" {
		t.Errorf("assoc rendering = %q", got)
	}
	if got := eq.Size(); got != 10 {
		t.Errorf("assoc Size() = %d, want 10", got)
	}
	if diff := cmp.Diff([]string{"x", "y", "z"}, eq.Variables()); diff != "" {
		t.Errorf("Variables mismatch:\n%s", diff)
	}
}
