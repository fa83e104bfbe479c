package solver

import (
	"fmt"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/model"
)

// VerifyModel checks post hoc that every axiom's ground instantiation over
// [0, n) holds in the model's tables. A nil return means every instance
// evaluated and held.
func VerifyModel(sig *core.Signature, m *model.CayleyTable) error {
	for _, ax := range sig.Axioms {
		vars := ax.Equation.Variables()
		env := map[string]int{}
		if err := verifyInstances(ax, vars, 0, env, m); err != nil {
			return err
		}
	}
	return nil
}

func verifyInstances(ax core.Axiom, vars []string, i int, env map[string]int, m *model.CayleyTable) error {
	if i == len(vars) {
		lhs, err := evalGround(ax.Equation.LHS, env, m)
		if err != nil {
			return fmt.Errorf("axiom %s: %w", ax.Kind, err)
		}
		rhs, err := evalGround(ax.Equation.RHS, env, m)
		if err != nil {
			return fmt.Errorf("axiom %s: %w", ax.Kind, err)
		}
		if lhs != rhs {
			return fmt.Errorf("axiom %s violated at %v: %s evaluates %d = %d",
				ax.Kind, env, ax.Equation, lhs, rhs)
		}
		return nil
	}
	for v := 0; v < m.Size; v++ {
		env[vars[i]] = v
		if err := verifyInstances(ax, vars, i+1, env, m); err != nil {
			return err
		}
	}
	return nil
}

// evalGround evaluates a fully concrete term against a model's tables.
func evalGround(e core.Expr, env map[string]int, m *model.CayleyTable) (int, error) {
	switch t := e.(type) {
	case core.Var:
		v, ok := env[t.Name]
		if !ok {
			return 0, fmt.Errorf("unbound variable %q", t.Name)
		}
		return v, nil
	case core.Const:
		v, ok := m.Constants[t.Name]
		if !ok {
			return 0, fmt.Errorf("constant %q missing from model", t.Name)
		}
		return v, nil
	case core.App:
		args := make([]int, len(t.Args))
		for i, arg := range t.Args {
			v, err := evalGround(arg, env, m)
			if err != nil {
				return 0, err
			}
			args[i] = v
		}
		switch len(args) {
		case 0:
			v, ok := m.Constants[t.Op]
			if !ok {
				return 0, fmt.Errorf("constant %q missing from model", t.Op)
			}
			return v, nil
		case 1:
			vec, ok := m.Unary[t.Op]
			if !ok {
				return 0, fmt.Errorf("unary %q missing from model", t.Op)
			}
			return vec[args[0]], nil
		case 2:
			table, ok := m.Tables[t.Op]
			if !ok {
				return 0, fmt.Errorf("binary %q missing from model", t.Op)
			}
			return table[args[0]][args[1]], nil
		default:
			return 0, fmt.Errorf("operation %q has unsupported arity %d", t.Op, len(args))
		}
	default:
		return 0, fmt.Errorf("unknown expression node %T", e)
	}
}
