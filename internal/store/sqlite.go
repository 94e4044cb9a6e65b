package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/atomicstack/chatmenu/internal/logging/events"
)

const sqliteBackend = "sqlite"

const schema = `
CREATE TABLE IF NOT EXISTS chat_sessions (
	chat_id TEXT PRIMARY KEY,
	state TEXT NOT NULL,
	message_id INTEGER NOT NULL DEFAULT 0,
	pending TEXT NOT NULL DEFAULT '',
	fingerprint TEXT NOT NULL DEFAULT '',
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

// SQLite stores records in a SQLite database file.
type SQLite struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens or creates the database at path, creating parent
// directories as needed.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	events.Store.Open(sqliteBackend, path)
	return &SQLite{db: db, path: path}, nil
}

// Path returns the database file location.
func (s *SQLite) Path() string { return s.path }

func (s *SQLite) Load(ctx context.Context, chatID string) (Record, bool, error) {
	var enc encodedRecord
	err := s.db.QueryRowContext(ctx,
		`SELECT state, message_id, pending, fingerprint FROM chat_sessions WHERE chat_id = ?`,
		chatID,
	).Scan(&enc.state, &enc.messageID, &enc.pending, &enc.fingerprint)
	if errors.Is(err, sql.ErrNoRows) {
		events.Store.Load(sqliteBackend, chatID, false)
		return Record{}, false, nil
	}
	if err != nil {
		events.Store.Error(sqliteBackend, "load", err)
		return Record{}, false, fmt.Errorf("load chat %s: %w", chatID, err)
	}
	events.Store.Load(sqliteBackend, chatID, true)
	rec, err := decode(enc)
	if err != nil {
		return Record{}, false, fmt.Errorf("load chat %s: %w", chatID, err)
	}
	return rec, true, nil
}

func (s *SQLite) Save(ctx context.Context, chatID string, rec Record) error {
	enc, err := encode(rec)
	if err != nil {
		return fmt.Errorf("save chat %s: %w", chatID, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO chat_sessions (chat_id, state, message_id, pending, fingerprint, updated_at)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(chat_id) DO UPDATE SET
		 state = excluded.state,
		 message_id = excluded.message_id,
		 pending = excluded.pending,
		 fingerprint = excluded.fingerprint,
		 updated_at = CURRENT_TIMESTAMP`,
		chatID, enc.state, enc.messageID, enc.pending, enc.fingerprint,
	)
	if err != nil {
		events.Store.Error(sqliteBackend, "save", err)
		return fmt.Errorf("save chat %s: %w", chatID, err)
	}
	events.Store.Save(sqliteBackend, chatID)
	return nil
}

func (s *SQLite) Delete(ctx context.Context, chatID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM chat_sessions WHERE chat_id = ?`, chatID); err != nil {
		return fmt.Errorf("delete chat %s: %w", chatID, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
