package core

import "fmt"

// The wire representation of a signature: equations serialize as strings
// in the display form, everything else as plain JSON fields. The
// round-trip FromDoc(sig.ToDoc()) reproduces the signature field-wise.

type SortDoc struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type OperationDoc struct {
	Name        string   `json:"name"`
	Domain      []string `json:"domain"`
	Codomain    string   `json:"codomain"`
	Description string   `json:"description"`
}

type AxiomDoc struct {
	Kind        string   `json:"kind"`
	Equation    string   `json:"equation"`
	Operations  []string `json:"operations"`
	Description string   `json:"description"`
}

type SignatureDoc struct {
	Name            string         `json:"name"`
	Sorts           []SortDoc      `json:"sorts"`
	Operations      []OperationDoc `json:"operations"`
	Axioms          []AxiomDoc     `json:"axioms"`
	Description     string         `json:"description"`
	DerivationChain []string       `json:"derivation_chain"`
	Fingerprint     string         `json:"fingerprint"`
}

// ToDoc converts the signature to its wire form.
func (s *Signature) ToDoc() SignatureDoc {
	doc := SignatureDoc{
		Name:            s.Name,
		Description:     s.Description,
		DerivationChain: append([]string(nil), s.DerivationChain...),
		Fingerprint:     s.Fingerprint(),
	}
	for _, so := range s.Sorts {
		doc.Sorts = append(doc.Sorts, SortDoc{Name: so.Name, Description: so.Description})
	}
	for _, op := range s.Operations {
		doc.Operations = append(doc.Operations, OperationDoc{
			Name:        op.Name,
			Domain:      append([]string(nil), op.Domain...),
			Codomain:    op.Codomain,
			Description: op.Description,
		})
	}
	for _, ax := range s.Axioms {
		doc.Axioms = append(doc.Axioms, AxiomDoc{
			Kind:        string(ax.Kind),
			Equation:    ax.Equation.String(),
			Operations:  append([]string(nil), ax.Operations...),
			Description: ax.Description,
		})
	}
	return doc
}

// FromDoc reconstructs a signature from its wire form, parsing the
// serialized equation strings back into ASTs. Nullary operations are
// treated as constants by the parser.
func FromDoc(doc SignatureDoc) (*Signature, error) {
	sig := &Signature{
		Name:            doc.Name,
		Description:     doc.Description,
		DerivationChain: append([]string(nil), doc.DerivationChain...),
	}
	for _, sd := range doc.Sorts {
		sig.Sorts = append(sig.Sorts, Sort{Name: sd.Name, Description: sd.Description})
	}

	constants := map[string]bool{}
	for _, od := range doc.Operations {
		op := Operation{
			Name:        od.Name,
			Domain:      append([]string(nil), od.Domain...),
			Codomain:    od.Codomain,
			Description: od.Description,
		}
		sig.Operations = append(sig.Operations, op)
		if op.Arity() == 0 {
			constants[op.Name] = true
		}
	}

	for _, ad := range doc.Axioms {
		kind := AxiomKind(ad.Kind)
		if !ValidKind(kind) {
			return nil, fmt.Errorf("signature %s: unknown axiom kind %q", doc.Name, ad.Kind)
		}
		eq, err := ParseEquation(ad.Equation, constants)
		if err != nil {
			return nil, fmt.Errorf("signature %s: %w", doc.Name, err)
		}
		sig.Axioms = append(sig.Axioms, Axiom{
			Kind:        kind,
			Equation:    eq,
			Operations:  append([]string(nil), ad.Operations...),
			Description: ad.Description,
		})
	}
	return sig, nil
}
