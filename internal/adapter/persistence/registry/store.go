// Package registry persists the per-client "my posts" / "my pledges" markers in SQLite.
//
// Entries only decide what a client is shown. Nothing here is consulted when
// authorizing a mutation.
package registry

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"athwela/internal/domain/entities"
	"athwela/internal/usecase/interfaces"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - registry_entries with (client_id, record_id, role) primary key
const currentSchemaVersion = 1

// Fixed-width UTC timestamps so recorded_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

type Store struct {
	db *sql.DB
}

var _ interfaces.IRegistryStore = (*Store)(nil)

// Open creates or opens the registry database at path and applies the schema.
// Safe to call on an existing file.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to registry database: %w", err)
	}

	// SQLite has a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}

// Record inserts the entry. A repeated (client, record, role) keeps the first timestamp.
func (s *Store) Record(ctx context.Context, e entities.RegistryEntry) error {
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO registry_entries (client_id, record_id, role, recorded_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (client_id, record_id, role) DO NOTHING`,
		e.ClientID, e.RecordID, string(e.Role), e.RecordedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("record registry entry: %w", err)
	}
	return nil
}

func (s *Store) Forget(ctx context.Context, clientID, recordID string, role entities.RegistryRole) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM registry_entries WHERE client_id = ? AND record_id = ? AND role = ?`,
		clientID, recordID, string(role),
	)
	if err != nil {
		return fmt.Errorf("forget registry entry: %w", err)
	}
	return nil
}

func (s *Store) Contains(ctx context.Context, clientID, recordID string, role entities.RegistryRole) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM registry_entries WHERE client_id = ? AND record_id = ? AND role = ?`,
		clientID, recordID, string(role),
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query registry entry: %w", err)
	}
	return true, nil
}

// List returns the client's entries for role, oldest first.
func (s *Store) List(ctx context.Context, clientID string, role entities.RegistryRole) ([]entities.RegistryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT client_id, record_id, role, recorded_at
		FROM registry_entries
		WHERE client_id = ? AND role = ?
		ORDER BY recorded_at ASC, record_id ASC`,
		clientID, string(role),
	)
	if err != nil {
		return nil, fmt.Errorf("list registry entries: %w", err)
	}
	defer rows.Close()

	entries := []entities.RegistryEntry{}
	for rows.Next() {
		var e entities.RegistryEntry
		var r, recorded string
		if err := rows.Scan(&e.ClientID, &e.RecordID, &r, &recorded); err != nil {
			return nil, fmt.Errorf("scan registry entry: %w", err)
		}
		e.Role = entities.RegistryRole(r)
		e.RecordedAt, _ = time.Parse(timeLayout, recorded)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate registry entries: %w", err)
	}
	return entries, nil
}

// Clients lists every client id with at least one entry.
func (s *Store) Clients(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT client_id FROM registry_entries ORDER BY client_id`)
	if err != nil {
		return nil, fmt.Errorf("list registry clients: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan registry client: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
