package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/runger/lume/internal/result"
)

const schema = `
CREATE TABLE IF NOT EXISTS history_entries (
	id               TEXT PRIMARY KEY,
	position         INTEGER NOT NULL,
	command          TEXT NOT NULL,
	display          TEXT NOT NULL DEFAULT '',
	subtitle         TEXT NOT NULL DEFAULT '',
	target_kind      INTEGER,
	target_name      TEXT NOT NULL DEFAULT '',
	target_path      TEXT NOT NULL DEFAULT '',
	target_bundle_id TEXT NOT NULL DEFAULT '',
	target_token     TEXT NOT NULL DEFAULT '',
	target_url       TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_history_position ON history_entries(position);
`

// SQLitePersister stores the history list in a SQLite database. The list is
// small (a couple hundred rows) so Save rewrites it wholesale inside one
// transaction; ordering is carried by an explicit position column.
type SQLitePersister struct {
	db *sql.DB
}

// NewSQLitePersister opens (creating if needed) the database at path.
func NewSQLitePersister(path string) (*SQLitePersister, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	// modernc.org/sqlite uses _pragma=name(value) DSN syntax.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	// SQLite behaves best with a single writer connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history database: %w", err)
	}
	return &SQLitePersister{db: db}, nil
}

// Close closes the underlying database.
func (p *SQLitePersister) Close() error {
	return p.db.Close()
}

// Load returns the stored entries ordered most recent first.
func (p *SQLitePersister) Load() ([]Entry, error) {
	rows, err := p.db.QueryContext(context.Background(), `
		SELECT id, command, display, subtitle,
		       target_kind, target_name, target_path, target_bundle_id, target_token, target_url
		FROM history_entries ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var kind sql.NullInt64
		var name, path, bundleID, token, url string
		if err := rows.Scan(&e.ID, &e.Command, &e.Display, &e.Subtitle,
			&kind, &name, &path, &bundleID, &token, &url); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		if kind.Valid {
			e.Target = &result.TargetRef{
				Kind:     result.Kind(kind.Int64),
				Name:     name,
				Path:     path,
				BundleID: bundleID,
				Token:    token,
				URL:      url,
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return entries, nil
}

// Save rewrites the whole list in one transaction, entries[0] first.
func (p *SQLitePersister) Save(entries []Entry) error {
	tx, err := p.db.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("begin history save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM history_entries`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO history_entries (
			id, position, command, display, subtitle,
			target_kind, target_name, target_path, target_bundle_id, target_token, target_url
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare history insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		var kind any
		var name, path, bundleID, token, url string
		if e.Target != nil {
			kind = int64(e.Target.Kind)
			name = e.Target.Name
			path = e.Target.Path
			bundleID = e.Target.BundleID
			token = e.Target.Token
			url = e.Target.URL
		}
		if _, err := stmt.Exec(e.ID, i, e.Command, e.Display, e.Subtitle,
			kind, name, path, bundleID, token, url); err != nil {
			return fmt.Errorf("insert history entry: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit history save: %w", err)
	}
	return nil
}
