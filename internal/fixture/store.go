// Package fixture implements a sqlite-backed development backend serving
// the envelope API for the built-in resources. It exists for `gridview
// serve` and the integration tests, not as a production backend.
package fixture

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/fathomline/gridview/pkg/schema"
	"github.com/fathomline/gridview/pkg/types"
)

// Store persists fixture records in SQLite, one generic table per resource
// with the record held as a JSON document.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the fixture database under dataDir and
// creates one table per built-in resource.
func OpenStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "fixture.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open fixture db: %w", err)
	}

	for _, resource := range schema.Resources() {
		ddl := fmt.Sprintf(
			`CREATE TABLE IF NOT EXISTS %q (id TEXT PRIMARY KEY, data TEXT NOT NULL)`,
			resource)
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("create table %s: %w", resource, err)
		}
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put inserts or replaces one record. The record must carry an id.
func (s *Store) Put(resource string, rec types.Record) error {
	id := rec.ID()
	if id == "" {
		return types.ErrInvalidID
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record %s: %w", id, err)
	}
	_, err = s.db.Exec(
		fmt.Sprintf(`INSERT OR REPLACE INTO %q (id, data) VALUES (?, ?)`, resource),
		id, string(data))
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", resource, id, err)
	}
	return nil
}

// List returns every record of the resource in insertion order.
func (s *Store) List(resource string) ([]types.Record, error) {
	rows, err := s.db.Query(
		fmt.Sprintf(`SELECT data FROM %q ORDER BY rowid`, resource))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", resource, err)
	}
	defer rows.Close()

	records := []types.Record{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan %s: %w", resource, err)
		}
		var rec types.Record
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", resource, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Get returns the record with the given id.
// Returns ErrNotFound if no record exists with that id.
func (s *Store) Get(resource, id string) (types.Record, error) {
	row := s.db.QueryRow(
		fmt.Sprintf(`SELECT data FROM %q WHERE id = ?`, resource), id)
	var data string
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", resource, id, err)
	}
	var rec types.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("unmarshal %s/%s: %w", resource, id, err)
	}
	return rec, nil
}

// GetMany returns the records matching the given ids; missing ids are
// skipped, not errors.
func (s *Store) GetMany(resource string, ids []string) ([]types.Record, error) {
	records := make([]types.Record, 0, len(ids))
	for _, id := range ids {
		rec, err := s.Get(resource, id)
		if err == types.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
