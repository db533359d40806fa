package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/kayaomerr/ytsummarizer/youtube"
)

const (
	keyAccessToken = "access_token"
	keyPlaylists   = "playlists"
)

// SQLiteStore implements Store over a two-row key/value table.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates the store and its schema.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("[NewSQLiteStore] enable WAL mode: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS session_state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("[NewSQLiteStore] create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load reads both entries. A missing token means no session. A
// playlist snapshot that fails to decode is dropped rather than
// failing the load, mirroring how the token is the authoritative half
// of the pair.
func (s *SQLiteStore) Load(ctx context.Context) (string, []youtube.Playlist, error) {
	var token string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM session_state WHERE key = ?`, keyAccessToken,
	).Scan(&token)
	if err == sql.ErrNoRows {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("[SQLiteStore.Load] read token: %w", err)
	}

	var raw string
	err = s.db.QueryRowContext(ctx,
		`SELECT value FROM session_state WHERE key = ?`, keyPlaylists,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return token, nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("[SQLiteStore.Load] read playlists: %w", err)
	}

	var playlists []youtube.Playlist
	if err := json.Unmarshal([]byte(raw), &playlists); err != nil {
		return token, nil, nil
	}
	return token, playlists, nil
}

// Save upserts both entries in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, token string, playlists []youtube.Playlist) error {
	raw, err := json.Marshal(playlists)
	if err != nil {
		return fmt.Errorf("[SQLiteStore.Save] encode playlists: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("[SQLiteStore.Save] begin: %w", err)
	}
	defer tx.Rollback()

	upsert := `
	INSERT INTO session_state (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := tx.ExecContext(ctx, upsert, keyAccessToken, token); err != nil {
		return fmt.Errorf("[SQLiteStore.Save] write token: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsert, keyPlaylists, string(raw)); err != nil {
		return fmt.Errorf("[SQLiteStore.Save] write playlists: %w", err)
	}
	return tx.Commit()
}

// Clear deletes both entries in one transaction.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("[SQLiteStore.Clear] begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM session_state WHERE key IN (?, ?)`,
		keyAccessToken, keyPlaylists,
	); err != nil {
		return fmt.Errorf("[SQLiteStore.Clear] delete: %w", err)
	}
	return tx.Commit()
}

var _ Store = (*SQLiteStore)(nil)
