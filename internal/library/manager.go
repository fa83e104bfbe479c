package library

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/core"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/logging"
	"github.com/ClaudeCarlsson/agentic-math-discovery/internal/scoring"
)

// Manager owns the library directory: known seeds, discovered JSON
// documents, conjecture records, reports, and the failed archive, plus
// the store index alongside them.
type Manager struct {
	BasePath string
	store    Store
}

// NewManager creates the directory layout under basePath and opens the
// SQLite index. The JSON documents remain the source of truth; the index
// is re-synced from them every time a manager is opened.
func NewManager(basePath string) (*Manager, error) {
	for _, sub := range []string{"known", "discovered", "conjectures", "reports", "failed"} {
		if err := os.MkdirAll(filepath.Join(basePath, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create library dir: %w", err)
		}
	}
	store, err := OpenSQLStore(filepath.Join(basePath, DefaultDBPath))
	if err != nil {
		return nil, err
	}
	m := &Manager{BasePath: basePath, store: store}
	if err := m.reindex(); err != nil {
		logging.New("library").Warn("reindex failed", "error", err)
	}
	return m, nil
}

// NewManagerWithStore wires an explicit store (tests use MemStore).
func NewManagerWithStore(basePath string, store Store) (*Manager, error) {
	for _, sub := range []string{"known", "discovered", "conjectures", "reports", "failed"} {
		if err := os.MkdirAll(filepath.Join(basePath, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create library dir: %w", err)
		}
	}
	return &Manager{BasePath: basePath, store: store}, nil
}

// Close releases the store.
func (m *Manager) Close() error { return m.store.Close() }

// KnownFingerprints returns the catalog fingerprint set.
func (m *Manager) KnownFingerprints() map[string]bool {
	return KnownFingerprints()
}

// DiscoveredFingerprints returns the indexed discovery fingerprints.
func (m *Manager) DiscoveredFingerprints() map[string]bool {
	fps := map[string]bool{}
	indexed, err := m.store.Fingerprints()
	if err != nil {
		return fps
	}
	for _, fp := range indexed {
		fps[fp] = true
	}
	return fps
}

// ListDiscovered loads every discovery document, ordered by ID.
func (m *Manager) ListDiscovered() ([]*Discovery, error) {
	return m.store.ListDiscoveries()
}

// GetDiscovery fetches one discovery by ID; nil when absent.
func (m *Manager) GetDiscovery(id string) (*Discovery, error) {
	return m.store.GetDiscovery(id)
}

// AddDiscovery persists a new discovery: a JSON document under
// discovered/ plus an index row. Returns the discovery and its document
// path.
func (m *Manager) AddDiscovery(sig *core.Signature, name, notes string, score scoring.Breakdown) (*Discovery, string, error) {
	existing, err := m.ListDiscovered()
	if err != nil {
		return nil, "", err
	}
	id := fmt.Sprintf("disc_%04d", len(existing)+1)

	d := &Discovery{
		ID:              id,
		Name:            name,
		Signature:       sig.ToDoc(),
		DerivationChain: append([]string(nil), sig.DerivationChain...),
		Score:           score.Total,
		ScoreBreakdown:  score,
		Fingerprint:     sig.Fingerprint(),
		Notes:           notes,
	}

	path := filepath.Join(m.BasePath, "discovered",
		fmt.Sprintf("%s_%s.json", id, safeName(name)))
	if err := writeJSON(path, d); err != nil {
		return nil, "", err
	}
	if err := m.store.SaveDiscovery(d); err != nil {
		return nil, "", err
	}
	return d, path, nil
}

// UpdateScore rewrites a discovery's score in both the document and the
// index (backtest drift correction).
func (m *Manager) UpdateScore(id string, score scoring.Breakdown) error {
	d, err := m.store.GetDiscovery(id)
	if err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("discovery %s not found", id)
	}
	d.Score = score.Total
	d.ScoreBreakdown = score

	path, err := m.documentPath(id)
	if err != nil {
		return err
	}
	if path != "" {
		if err := writeJSON(path, d); err != nil {
			return err
		}
	}
	return m.store.SaveDiscovery(d)
}

// ArchiveFailed moves a discovery document to failed/ and drops it from
// the index. Returns the destination path, or "" when the document was
// not found.
func (m *Manager) ArchiveFailed(id, reason string) (string, error) {
	path, err := m.documentPath(id)
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", nil
	}
	dest := filepath.Join(m.BasePath, "failed", filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		return "", fmt.Errorf("archive %s: %w", id, err)
	}
	logging.New("library").Info("archived failed discovery", "id", id, "reason", reason)
	return dest, m.store.DeleteDiscovery(id)
}

// AddConjecture appends a conjecture record to the per-status file.
func (m *Manager) AddConjecture(c Conjecture) error {
	path := filepath.Join(m.BasePath, "conjectures", c.Status+".json")

	var existing []Conjecture
	if data, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(data, &existing) // a corrupt file starts fresh
	}
	existing = append(existing, c)
	return writeJSON(path, existing)
}

// SearchResult is one search hit over known or discovered structures.
type SearchResult struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"` // "known" or "discovered"
	Score       float64 `json:"score,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Search matches the query case-insensitively against known structure
// names and discovered names/notes, filtering by minimum score.
func (m *Manager) Search(query string, minScore float64) ([]SearchResult, error) {
	q := strings.ToLower(query)
	var results []SearchResult

	for _, name := range KnownNames() {
		if strings.Contains(strings.ToLower(name), q) {
			results = append(results, SearchResult{Name: name, Type: "known"})
		}
	}

	discovered, err := m.ListDiscovered()
	if err != nil {
		return nil, err
	}
	for _, d := range discovered {
		if minScore > 0 && d.Score < minScore {
			continue
		}
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Notes), q) {
			results = append(results, SearchResult{
				Name:        d.Name,
				Type:        "discovered",
				Score:       d.Score,
				Description: d.Notes,
			})
		}
	}
	return results, nil
}

// WriteReport drops a report document under reports/.
func (m *Manager) WriteReport(name string, content []byte) (string, error) {
	path := filepath.Join(m.BasePath, "reports", safeName(name))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// reindex rebuilds the store from the JSON documents on disk, so a fresh
// index catches up with an existing library directory.
func (m *Manager) reindex() error {
	paths, err := filepath.Glob(filepath.Join(m.BasePath, "discovered", "disc_*.json"))
	if err != nil {
		return err
	}
	sort.Strings(paths)
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var d Discovery
		if err := json.Unmarshal(data, &d); err != nil || d.ID == "" {
			continue
		}
		if err := m.store.SaveDiscovery(&d); err != nil {
			return err
		}
	}
	return nil
}

// documentPath finds the JSON document for a discovery ID.
func (m *Manager) documentPath(id string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(m.BasePath, "discovered", id+"_*.json"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", nil
	}
	sort.Strings(matches)
	return matches[0], nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// safeName converts a structure name to a filesystem-safe fragment.
func safeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	s := b.String()
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}
