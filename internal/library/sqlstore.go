package library

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL);
CREATE TABLE IF NOT EXISTS discoveries (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	score       REAL NOT NULL,
	fingerprint TEXT NOT NULL,
	payload     BLOB NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_discoveries_fingerprint ON discoveries(fingerprint);
`

const schemaVersion = 1

// SQLStore is the SQLite-backed discovery index.
type SQLStore struct {
	db *sql.DB
}

// OpenSQLStore opens (creating if needed) the index at path. The parent
// directory is created as well.
func OpenSQLStore(path string) (*SQLStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM schema_version`).Scan(&count); err == nil && count == 0 {
		_, _ = db.Exec(`INSERT INTO schema_version (version) VALUES (?)`, schemaVersion)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Close() error { return s.db.Close() }

func (s *SQLStore) SaveDiscovery(d *Discovery) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal discovery %s: %w", d.ID, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO discoveries (id, name, score, fingerprint, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			score = excluded.score,
			fingerprint = excluded.fingerprint,
			payload = excluded.payload`,
		d.ID, d.Name, d.Score, d.Fingerprint, payload, nowUTC())
	if err != nil {
		return fmt.Errorf("save discovery %s: %w", d.ID, err)
	}
	return nil
}

func (s *SQLStore) GetDiscovery(id string) (*Discovery, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM discoveries WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get discovery %s: %w", id, err)
	}
	var d Discovery
	if err := json.Unmarshal(payload, &d); err != nil {
		return nil, fmt.Errorf("decode discovery %s: %w", id, err)
	}
	return &d, nil
}

func (s *SQLStore) ListDiscoveries() ([]*Discovery, error) {
	rows, err := s.db.Query(`SELECT payload FROM discoveries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list discoveries: %w", err)
	}
	defer rows.Close()

	var out []*Discovery
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var d Discovery
		if err := json.Unmarshal(payload, &d); err != nil {
			continue // skip corrupt rows; documents on disk are the source of truth
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

func (s *SQLStore) DeleteDiscovery(id string) error {
	_, err := s.db.Exec(`DELETE FROM discoveries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete discovery %s: %w", id, err)
	}
	return nil
}

func (s *SQLStore) Fingerprints() ([]string, error) {
	rows, err := s.db.Query(`SELECT fingerprint FROM discoveries`)
	if err != nil {
		return nil, fmt.Errorf("list fingerprints: %w", err)
	}
	defer rows.Close()

	var fps []string
	for rows.Next() {
		var fp string
		if err := rows.Scan(&fp); err != nil {
			return nil, err
		}
		fps = append(fps, fp)
	}
	return fps, rows.Err()
}

// nowUTC returns the current UTC time as an ISO 8601 string.
func nowUTC() string { return time.Now().UTC().Format(time.RFC3339) }
