package library

import (
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/scoring"
)

// DefaultDBPath is the default relative path of the discovery index,
// resolved against the library base directory.
const DefaultDBPath = "index.db"

// Discovery is one persisted discovery document.
type Discovery struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Signature       core.SignatureDoc `json:"signature"`
	DerivationChain []string          `json:"derivation_chain"`
	Score           float64           `json:"score"`
	ScoreBreakdown  scoring.Breakdown `json:"score_breakdown"`
	Fingerprint     string            `json:"fingerprint"`
	Notes           string            `json:"notes"`
}

// Conjecture is one recorded conjecture about a signature.
type Conjecture struct {
	Signature string `json:"signature"`
	Statement string `json:"statement"`
	Status    string `json:"status"`
	Details   string `json:"details"`
}

// Store indexes discoveries for fast listing and lookup. The JSON
// documents on disk stay the source of truth; the index makes search and
// ordering cheap. Implementations: SQLite or in-memory.
type Store interface {
	SaveDiscovery(d *Discovery) error
	GetDiscovery(id string) (*Discovery, error)
	ListDiscoveries() ([]*Discovery, error)
	DeleteDiscovery(id string) error
	// Fingerprints returns every indexed fingerprint.
	Fingerprints() ([]string, error)
	Close() error
}
