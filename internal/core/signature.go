package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// AxiomKind tags the canonical shape of an equational law. The set is
// closed; dispatch on kind is exhaustive.
type AxiomKind string

const (
	Associativity           AxiomKind = "ASSOCIATIVITY"
	Commutativity           AxiomKind = "COMMUTATIVITY"
	Identity                AxiomKind = "IDENTITY"
	Inverse                 AxiomKind = "INVERSE"
	Distributivity          AxiomKind = "DISTRIBUTIVITY"
	Anticommutativity       AxiomKind = "ANTICOMMUTATIVITY"
	Idempotence             AxiomKind = "IDEMPOTENCE"
	Nilpotence              AxiomKind = "NILPOTENCE"
	Jacobi                  AxiomKind = "JACOBI"
	Positivity              AxiomKind = "POSITIVITY"
	Bilinearity             AxiomKind = "BILINEARITY"
	Homomorphism            AxiomKind = "HOMOMORPHISM"
	Functoriality           AxiomKind = "FUNCTORIALITY"
	Absorption              AxiomKind = "ABSORPTION"
	Modularity              AxiomKind = "MODULARITY"
	SelfDistributivity      AxiomKind = "SELF_DISTRIBUTIVITY"
	RightSelfDistributivity AxiomKind = "RIGHT_SELF_DISTRIBUTIVITY"
	Custom                  AxiomKind = "CUSTOM"
)

// AllAxiomKinds lists every kind, in declaration order.
var AllAxiomKinds = []AxiomKind{
	Associativity, Commutativity, Identity, Inverse, Distributivity,
	Anticommutativity, Idempotence, Nilpotence, Jacobi, Positivity,
	Bilinearity, Homomorphism, Functoriality, Absorption, Modularity,
	SelfDistributivity, RightSelfDistributivity, Custom,
}

// ValidKind reports whether k is a declared axiom kind.
func ValidKind(k AxiomKind) bool {
	for _, known := range AllAxiomKinds {
		if known == k {
			return true
		}
	}
	return false
}

// Sort is a named type in the signature.
type Sort struct {
	Name        string
	Description string
}

// Operation is a typed operation: Domain lists input sort names in order,
// Codomain is the output sort. Nullary operations model constants.
type Operation struct {
	Name        string
	Domain      []string
	Codomain    string
	Description string
}

// Arity is the number of arguments.
func (op Operation) Arity() int { return len(op.Domain) }

// Axiom pairs an equational law with the kind tag and the operations the
// law constrains.
type Axiom struct {
	Kind        AxiomKind
	Equation    Equation
	Operations  []string
	Description string
}

// Mentions reports whether the axiom's operation list contains name.
func (a Axiom) Mentions(name string) bool {
	for _, op := range a.Operations {
		if op == name {
			return true
		}
	}
	return false
}

// Signature is a complete algebraic skeleton: sorts, typed operations, and
// equational axioms, plus provenance. Signatures are owned by their
// producer and mutated in place only during move application.
type Signature struct {
	Name            string
	Sorts           []Sort
	Operations      []Operation
	Axioms          []Axiom
	Description     string
	DerivationChain []string
	Metadata        map[string]string
}

// SortNames returns the declared sort names in order.
func (s *Signature) SortNames() []string {
	names := make([]string, len(s.Sorts))
	for i, so := range s.Sorts {
		names[i] = so.Name
	}
	return names
}

// OpNames returns the declared operation names in order.
func (s *Signature) OpNames() []string {
	names := make([]string, len(s.Operations))
	for i, op := range s.Operations {
		names[i] = op.Name
	}
	return names
}

// Op looks up an operation by name.
func (s *Signature) Op(name string) (Operation, bool) {
	for _, op := range s.Operations {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}

// OpsByArity returns the operations with the given arity, in declaration order.
func (s *Signature) OpsByArity(arity int) []Operation {
	var ops []Operation
	for _, op := range s.Operations {
		if op.Arity() == arity {
			ops = append(ops, op)
		}
	}
	return ops
}

// HasAxiom reports whether an axiom of the given kind mentions the operation.
func (s *Signature) HasAxiom(kind AxiomKind, opName string) bool {
	for _, ax := range s.Axioms {
		if ax.Kind == kind && ax.Mentions(opName) {
			return true
		}
	}
	return false
}

// Clone deep-copies the signature under a new name. Expressions are
// immutable and shared; all slices and the metadata map are copied.
func (s *Signature) Clone(newName string) *Signature {
	c := &Signature{
		Name:            newName,
		Sorts:           append([]Sort(nil), s.Sorts...),
		Operations:      make([]Operation, len(s.Operations)),
		Axioms:          make([]Axiom, len(s.Axioms)),
		Description:     s.Description,
		DerivationChain: append([]string(nil), s.DerivationChain...),
	}
	for i, op := range s.Operations {
		c.Operations[i] = Operation{
			Name:        op.Name,
			Domain:      append([]string(nil), op.Domain...),
			Codomain:    op.Codomain,
			Description: op.Description,
		}
	}
	for i, ax := range s.Axioms {
		c.Axioms[i] = Axiom{
			Kind:        ax.Kind,
			Equation:    ax.Equation,
			Operations:  append([]string(nil), ax.Operations...),
			Description: ax.Description,
		}
	}
	if s.Metadata != nil {
		c.Metadata = make(map[string]string, len(s.Metadata))
		for k, v := range s.Metadata {
			c.Metadata[k] = v
		}
	}
	return c
}

// Validate checks the structural invariants: sort references resolve,
// operation references in axioms resolve with matching arity, names are
// unique, and every axiom constrains at least one operation.
func (s *Signature) Validate() error {
	sorts := map[string]bool{}
	for _, so := range s.Sorts {
		if sorts[so.Name] {
			return fmt.Errorf("signature %s: duplicate sort %q", s.Name, so.Name)
		}
		sorts[so.Name] = true
	}

	arities := map[string]int{}
	for _, op := range s.Operations {
		if _, dup := arities[op.Name]; dup {
			return fmt.Errorf("signature %s: duplicate operation %q", s.Name, op.Name)
		}
		arities[op.Name] = op.Arity()
		for _, d := range op.Domain {
			if !sorts[d] {
				return fmt.Errorf("signature %s: operation %q references undeclared sort %q", s.Name, op.Name, d)
			}
		}
		if !sorts[op.Codomain] {
			return fmt.Errorf("signature %s: operation %q has undeclared codomain %q", s.Name, op.Name, op.Codomain)
		}
	}

	for _, ax := range s.Axioms {
		if !ValidKind(ax.Kind) {
			return fmt.Errorf("signature %s: unknown axiom kind %q", s.Name, ax.Kind)
		}
		if len(ax.Operations) == 0 {
			return fmt.Errorf("signature %s: %s axiom constrains no operations", s.Name, ax.Kind)
		}
		for _, name := range ax.Operations {
			if _, ok := arities[name]; !ok {
				return fmt.Errorf("signature %s: axiom references undeclared operation %q", s.Name, name)
			}
		}
		if err := checkApps(ax.Equation.LHS, arities); err != nil {
			return fmt.Errorf("signature %s: %s axiom: %w", s.Name, ax.Kind, err)
		}
		if err := checkApps(ax.Equation.RHS, arities); err != nil {
			return fmt.Errorf("signature %s: %s axiom: %w", s.Name, ax.Kind, err)
		}
	}
	return nil
}

// checkApps walks an expression verifying every application resolves to a
// declared operation with matching arity. Constants must resolve to
// nullary operations.
func checkApps(e Expr, arities map[string]int) error {
	switch t := e.(type) {
	case Var:
		return nil
	case Const:
		arity, ok := arities[t.Name]
		if !ok {
			return fmt.Errorf("constant %q is not a declared operation", t.Name)
		}
		if arity != 0 {
			return fmt.Errorf("constant %q names an operation of arity %d", t.Name, arity)
		}
		return nil
	case App:
		arity, ok := arities[t.Op]
		if !ok {
			return fmt.Errorf("operation %q is not declared", t.Op)
		}
		if arity != len(t.Args) {
			return fmt.Errorf("operation %q applied to %d args, arity is %d", t.Op, len(t.Args), arity)
		}
		for _, arg := range t.Args {
			if err := checkApps(arg, arities); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown expression node %T", e)
	}
}

// Fingerprint computes the canonical 16-hex-char novelty fingerprint: a
// SHA-256 truncation over (sort count, sorted operation arities, sorted
// axiom kind names). Signatures differing only in naming share a
// fingerprint; distinct equations sharing a kind set collide by design.
func (s *Signature) Fingerprint() string {
	arities := make([]int, len(s.Operations))
	for i, op := range s.Operations {
		arities[i] = op.Arity()
	}
	sort.Ints(arities)

	kinds := make([]string, len(s.Axioms))
	for i, ax := range s.Axioms {
		kinds[i] = string(ax.Kind)
	}
	sort.Strings(kinds)

	// Canonical serialization: keys sorted, ", " and ": " separators.
	var b strings.Builder
	b.WriteString(`{"axiom_kinds": [`)
	for i, k := range kinds {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", k)
	}
	b.WriteString(`], "op_arities": [`)
	for i, a := range arities {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", a)
	}
	fmt.Fprintf(&b, `], "sorts": %d}`, len(s.Sorts))

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])[:16]
}

func (s *Signature) String() string {
	ops := make([]string, len(s.Operations))
	for i, op := range s.Operations {
		ops[i] = fmt.Sprintf("%s/%d", op.Name, op.Arity())
	}
	return fmt.Sprintf("Sig(%s: sorts=[%s], ops=[%s], axioms=%d)",
		s.Name, strings.Join(s.SortNames(), ", "), strings.Join(ops, ", "), len(s.Axioms))
}
