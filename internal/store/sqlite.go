package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/chatlens/chatlens/pkg/parser"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS sessions (
    key        TEXT PRIMARY KEY,
    filename   TEXT NOT NULL DEFAULT '',
    language   TEXT NOT NULL DEFAULT 'en',
    messages   TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    expires_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);
`

// SQLite is a file-backed session store.
type SQLite struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// OpenSQLite opens or creates the session database at path.
func OpenSQLite(path string, ttl time.Duration) (*SQLite, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SQLite{db: db, ttl: ttl, now: time.Now}, nil
}

// Put saves a session under its key.
func (s *SQLite) Put(ctx context.Context, sess *Session) error {
	payload, err := json.Marshal(sess.Messages)
	if err != nil {
		return fmt.Errorf("encode messages: %w", err)
	}

	now := s.now()
	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO sessions (key, filename, language, messages, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sess.Key, sess.Filename, sess.Language, string(payload),
		sess.CreatedAt.Unix(), now.Add(s.ttl).Unix())
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	// opportunistic sweep of expired rows
	s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < ?`, now.Unix())

	return nil
}

// Get returns the session for a key, or ErrNotFound.
func (s *SQLite) Get(ctx context.Context, key string) (*Session, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT key, filename, language, messages, created_at, expires_at
		FROM sessions WHERE key = ?`, key)

	var sess Session
	var payload string
	var createdAt, expiresAt int64
	err := row.Scan(&sess.Key, &sess.Filename, &sess.Language, &payload, &createdAt, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	if s.now().Unix() > expiresAt {
		s.db.ExecContext(ctx, `DELETE FROM sessions WHERE key = ?`, key)
		return nil, ErrNotFound
	}

	var messages []parser.Message
	if err := json.Unmarshal([]byte(payload), &messages); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	sess.Messages = messages
	sess.CreatedAt = time.Unix(createdAt, 0).UTC()

	return &sess, nil
}

// Delete removes a session.
func (s *SQLite) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
