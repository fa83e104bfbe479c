// Package core holds the symbolic representation of algebraic structures:
// expression trees, equations, and signatures (sorts + operations + axioms).
package core

import (
	"fmt"
	"sort"
	"strings"
)

// Expr is an immutable expression tree node. Expressions may be freely
// shared; Substitute returns a new tree and never mutates the receiver.
type Expr interface {
	// Size counts AST nodes.
	Size() int
	// Variables returns the sorted set of free variable names.
	Variables() []string
	// Substitute rewrites variables whose names are keys in m.
	// Variables carry no binders, so substitution is capture-free.
	Substitute(m map[string]Expr) Expr
	// String renders the expression in the canonical display form.
	String() string
}

// Var is a universally quantified variable: x, y, z, ...
type Var struct {
	Name string
}

func (v Var) Size() int           { return 1 }
func (v Var) Variables() []string { return []string{v.Name} }
func (v Var) String() string      { return v.Name }

func (v Var) Substitute(m map[string]Expr) Expr {
	if e, ok := m[v.Name]; ok {
		return e
	}
	return v
}

// Const is a named constant symbol: e (identity), zero, one, ...
type Const struct {
	Name string
}

func (c Const) Size() int                       { return 1 }
func (c Const) Variables() []string             { return nil }
func (c Const) Substitute(map[string]Expr) Expr { return c }
func (c Const) String() string                  { return c.Name }

// App applies an operation to arguments: mul(x, y), inv(x), ...
type App struct {
	Op   string
	Args []Expr
}

// NewApp builds an application node. The argument slice is copied so the
// node stays immutable even if the caller reuses its slice.
func NewApp(op string, args ...Expr) App {
	copied := make([]Expr, len(args))
	copy(copied, args)
	return App{Op: op, Args: copied}
}

func (a App) Size() int {
	n := 1
	for _, arg := range a.Args {
		n += arg.Size()
	}
	return n
}

func (a App) Variables() []string {
	seen := map[string]bool{}
	for _, arg := range a.Args {
		for _, v := range arg.Variables() {
			seen[v] = true
		}
	}
	return sortedKeys(seen)
}

func (a App) Substitute(m map[string]Expr) Expr {
	args := make([]Expr, len(a.Args))
	for i, arg := range a.Args {
		args[i] = arg.Substitute(m)
	}
	return App{Op: a.Op, Args: args}
}

// String renders binary applications infix as "(lhs op rhs)", unary as
// "op(arg)", and everything else as "op(a, b, c)".
func (a App) String() string {
	switch len(a.Args) {
	case 2:
		return fmt.Sprintf("(%s %s %s)", a.Args[0], a.Op, a.Args[1])
	case 1:
		return fmt.Sprintf("%s(%s)", a.Op, a.Args[0])
	case 0:
		return a.Op
	default:
		parts := make([]string, len(a.Args))
		for i, arg := range a.Args {
			parts[i] = arg.String()
		}
		return fmt.Sprintf("%s(%s)", a.Op, strings.Join(parts, ", "))
	}
}

// Equation is a universally closed equational law: lhs = rhs.
type Equation struct {
	LHS Expr
	RHS Expr
}

func (e Equation) Size() int { return e.LHS.Size() + e.RHS.Size() }

func (e Equation) Variables() []string {
	seen := map[string]bool{}
	for _, v := range e.LHS.Variables() {
		seen[v] = true
	}
	for _, v := range e.RHS.Variables() {
		seen[v] = true
	}
	return sortedKeys(seen)
}

// Substitute applies the substitution to both sides.
func (e Equation) Substitute(m map[string]Expr) Equation {
	return Equation{LHS: e.LHS.Substitute(m), RHS: e.RHS.Substitute(m)}
}

func (e Equation) String() string {
	return fmt.Sprintf("%s = %s", e.LHS, e.RHS)
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
