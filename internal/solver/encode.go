package solver

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
)

// encoding is the CNF image of one signature at one domain size. All
// sorts collapse to [0, n). Every operation cell (constant, unary entry,
// binary entry) is a one-hot vector of n value literals; axioms become
// ground clauses over those vectors.
type encoding struct {
	n      int
	g      *gini.Gini
	consts map[string][]z.Lit
	unary  map[string][][]z.Lit
	binary map[string][][][]z.Lit
	// unsat is set when a ground instance is contradictory on its face
	// (two distinct concrete values equated).
	unsat bool
}

// newEncoding builds table variables and axiom constraints for sig at
// domain size n. Operations of arity above 2 are not representable as
// Cayley tables and are rejected.
func newEncoding(sig *core.Signature, n int) (*encoding, error) {
	e := &encoding{
		n:      n,
		g:      gini.New(),
		consts: map[string][]z.Lit{},
		unary:  map[string][][]z.Lit{},
		binary: map[string][][][]z.Lit{},
	}

	for _, op := range sig.Operations {
		switch op.Arity() {
		case 0:
			e.consts[op.Name] = e.freshCell()
		case 1:
			cells := make([][]z.Lit, n)
			for i := range cells {
				cells[i] = e.freshCell()
			}
			e.unary[op.Name] = cells
		case 2:
			rows := make([][][]z.Lit, n)
			for i := range rows {
				rows[i] = make([][]z.Lit, n)
				for j := range rows[i] {
					rows[i][j] = e.freshCell()
				}
			}
			e.binary[op.Name] = rows
		default:
			return nil, fmt.Errorf("operation %s has arity %d; finite tables support arity <= 2", op.Name, op.Arity())
		}
	}

	for _, ax := range sig.Axioms {
		if err := e.addAxiom(ax); err != nil {
			return nil, fmt.Errorf("axiom %s: %w", ax.Kind, err)
		}
	}
	return e, nil
}

// freshCell allocates a one-hot vector of n value literals.
func (e *encoding) freshCell() []z.Lit {
	cell := make([]z.Lit, e.n)
	for v := range cell {
		cell[v] = e.g.Lit()
	}
	e.exactlyOne(cell)
	return cell
}

func (e *encoding) clause(lits ...z.Lit) {
	for _, m := range lits {
		e.g.Add(m)
	}
	e.g.Add(z.LitNull)
}

// exactlyOne asserts the one-hot invariant: at least one value literal
// true, no two true. Pairwise at-most-one is fine at these domain sizes.
func (e *encoding) exactlyOne(cell []z.Lit) {
	e.clause(cell...)
	for i := 0; i < len(cell); i++ {
		for j := i + 1; j < len(cell); j++ {
			e.clause(cell[i].Not(), cell[j].Not())
		}
	}
}

// addAxiom grounds a universally closed equation: one instance per
// assignment of domain elements to its free variables.
func (e *encoding) addAxiom(ax core.Axiom) error {
	vars := ax.Equation.Variables()
	env := map[string]int{}
	var instantiate func(i int) error
	instantiate = func(i int) error {
		if i == len(vars) {
			return e.addInstance(ax.Equation, env)
		}
		for v := 0; v < e.n; v++ {
			env[vars[i]] = v
			if err := instantiate(i + 1); err != nil {
				return err
			}
		}
		return nil
	}
	return instantiate(0)
}

// addInstance asserts lhs = rhs under a concrete variable assignment.
func (e *encoding) addInstance(eq core.Equation, env map[string]int) error {
	lv, llits, err := e.eval(eq.LHS, env)
	if err != nil {
		return err
	}
	rv, rlits, err := e.eval(eq.RHS, env)
	if err != nil {
		return err
	}

	switch {
	case llits == nil && rlits == nil:
		if lv != rv {
			e.unsat = true
		}
	case llits == nil:
		e.clause(rlits[lv])
	case rlits == nil:
		e.clause(llits[rv])
	default:
		for v := 0; v < e.n; v++ {
			e.clause(llits[v].Not(), rlits[v])
			e.clause(rlits[v].Not(), llits[v])
		}
	}
	return nil
}

// eval computes a term's value under env. The result is either a concrete
// domain element (lits nil) or a one-hot vector. Applications over
// symbolic indices get a fresh auxiliary vector tied to the table by
// implication clauses, the CNF counterpart of a conditional-chain lookup.
func (e *encoding) eval(expr core.Expr, env map[string]int) (int, []z.Lit, error) {
	switch t := expr.(type) {
	case core.Var:
		v, ok := env[t.Name]
		if !ok {
			return 0, nil, fmt.Errorf("unbound variable %q", t.Name)
		}
		return v, nil, nil

	case core.Const:
		cell, ok := e.consts[t.Name]
		if !ok {
			return 0, nil, fmt.Errorf("undeclared constant %q", t.Name)
		}
		return 0, cell, nil

	case core.App:
		switch len(t.Args) {
		case 0:
			cell, ok := e.consts[t.Op]
			if !ok {
				return 0, nil, fmt.Errorf("undeclared constant %q", t.Op)
			}
			return 0, cell, nil

		case 1:
			cells, ok := e.unary[t.Op]
			if !ok {
				return 0, nil, fmt.Errorf("undeclared unary operation %q", t.Op)
			}
			av, alits, err := e.eval(t.Args[0], env)
			if err != nil {
				return 0, nil, err
			}
			if alits == nil {
				return 0, cells[av], nil
			}
			out := e.freshCell()
			for a := 0; a < e.n; a++ {
				for v := 0; v < e.n; v++ {
					e.clause(alits[a].Not(), cells[a][v].Not(), out[v])
				}
			}
			return 0, out, nil

		case 2:
			rows, ok := e.binary[t.Op]
			if !ok {
				return 0, nil, fmt.Errorf("undeclared binary operation %q", t.Op)
			}
			av, alits, err := e.eval(t.Args[0], env)
			if err != nil {
				return 0, nil, err
			}
			bv, blits, err := e.eval(t.Args[1], env)
			if err != nil {
				return 0, nil, err
			}
			if alits == nil && blits == nil {
				return 0, rows[av][bv], nil
			}
			out := e.freshCell()
			aLo, aHi := rangeFor(av, alits, e.n)
			for a := aLo; a < aHi; a++ {
				bLo, bHi := rangeFor(bv, blits, e.n)
				for b := bLo; b < bHi; b++ {
					for v := 0; v < e.n; v++ {
						guard := make([]z.Lit, 0, 4)
						if alits != nil {
							guard = append(guard, alits[a].Not())
						}
						if blits != nil {
							guard = append(guard, blits[b].Not())
						}
						guard = append(guard, rows[a][b][v].Not(), out[v])
						e.clause(guard...)
					}
				}
			}
			return 0, out, nil

		default:
			return 0, nil, fmt.Errorf("operation %q applied to %d args; tables support arity <= 2", t.Op, len(t.Args))
		}

	default:
		return 0, nil, fmt.Errorf("unknown expression node %T", expr)
	}
}

// rangeFor yields the index range to enumerate: the single concrete value
// when lits is nil, the whole domain otherwise.
func rangeFor(concrete int, lits []z.Lit, n int) (int, int) {
	if lits == nil {
		return concrete, concrete + 1
	}
	return 0, n
}

// addLexLeader constrains the first row of the first binary operation's
// table to be non-decreasing, selecting one representative per
// element-permutation orbit.
func (e *encoding) addLexLeader(sig *core.Signature) {
	for _, op := range sig.Operations {
		if op.Arity() != 2 {
			continue
		}
		rows := e.binary[op.Name]
		for j := 0; j+1 < e.n; j++ {
			left, right := rows[0][j], rows[0][j+1]
			for a := 1; a < e.n; a++ {
				for b := 0; b < a; b++ {
					e.clause(left[a].Not(), right[b].Not())
				}
			}
		}
		return
	}
}

// addBlocking forbids the model just found: at least one cell or constant
// must take a different value.
func (e *encoding) addBlocking(m modelValues) {
	var block []z.Lit
	for name, cell := range e.consts {
		block = append(block, cell[m.consts[name]].Not())
	}
	for name, cells := range e.unary {
		for i, cell := range cells {
			block = append(block, cell[m.unary[name][i]].Not())
		}
	}
	for name, rows := range e.binary {
		for i, row := range rows {
			for j, cell := range row {
				block = append(block, cell[m.binary[name][i][j]].Not())
			}
		}
	}
	if len(block) > 0 {
		e.clause(block...)
	} else {
		// A signature with no operations has a single vacuous model.
		e.unsat = true
	}
}

// modelValues is the concrete assignment extracted from a SAT model.
type modelValues struct {
	consts map[string]int
	unary  map[string][]int
	binary map[string][][]int
}

// extract reads cell values out of the solver's satisfying assignment.
func (e *encoding) extract() modelValues {
	m := modelValues{
		consts: map[string]int{},
		unary:  map[string][]int{},
		binary: map[string][][]int{},
	}
	for name, cell := range e.consts {
		m.consts[name] = e.cellValue(cell)
	}
	for name, cells := range e.unary {
		vec := make([]int, e.n)
		for i, cell := range cells {
			vec[i] = e.cellValue(cell)
		}
		m.unary[name] = vec
	}
	for name, rows := range e.binary {
		table := make([][]int, e.n)
		for i, row := range rows {
			table[i] = make([]int, e.n)
			for j, cell := range row {
				table[i][j] = e.cellValue(cell)
			}
		}
		m.binary[name] = table
	}
	return m
}

func (e *encoding) cellValue(cell []z.Lit) int {
	for v, lit := range cell {
		if e.g.Value(lit) {
			return v
		}
	}
	return 0
}
