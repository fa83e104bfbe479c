package core

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func monoidSig() *Signature {
	return &Signature{
		Name:  "Monoid",
		Sorts: []Sort{{Name: "S", Description: "carrier set"}},
		Operations: []Operation{
			{Name: "mul", Domain: []string{"S", "S"}, Codomain: "S", Description: "associative binary operation"},
			{Name: "e", Codomain: "S", Description: "identity element"},
		},
		Axioms: []Axiom{
			{Kind: Associativity, Equation: AssocEquation("mul"), Operations: []string{"mul"}},
			{Kind: Identity, Equation: IdentityEquation("mul", "e"), Operations: []string{"mul", "e"}},
		},
		Description:     "A semigroup with an identity element.",
		DerivationChain: []string{"seed"},
	}
}

func TestDocRoundTrip(t *testing.T) {
	sig := monoidSig()
	back, err := FromDoc(sig.ToDoc())
	if err != nil {
		t.Fatalf("FromDoc: %v", err)
	}
	if diff := cmp.Diff(sig, back); diff != "" {
		t.Errorf("round trip mismatch:\n%s", diff)
	}
}

func TestDocRoundTripThroughJSON(t *testing.T) {
	sig := monoidSig()

	data, err := json.Marshal(sig.ToDoc())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc SignatureDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	back, err := FromDoc(doc)
	if err != nil {
		t.Fatalf("FromDoc: %v", err)
	}
	if diff := cmp.Diff(sig, back); diff != "" {
		t.Errorf("JSON round trip mismatch:\n%s", diff)
	}
}

func TestDocFingerprint(t *testing.T) {
	sig := monoidSig()
	doc := sig.ToDoc()
	if doc.Fingerprint != sig.Fingerprint() {
		t.Errorf("doc fingerprint %q != signature fingerprint %q", doc.Fingerprint, sig.Fingerprint())
	}
}

func TestDocEquationForm(t *testing.T) {
	doc := monoidSig().ToDoc()
	if got := doc.Axioms[1].Equation; got != "(x mul e) = x" {
		t.Errorf("identity axiom serialized as %q", got)
	}
}

func TestFromDocRejectsUnknownKind(t *testing.T) {
	doc := monoidSig().ToDoc()
	doc.Axioms[0].Kind = "NOT_A_KIND"
	if _, err := FromDoc(doc); err == nil {
		t.Fatal("FromDoc accepted an unknown axiom kind")
	}
}
