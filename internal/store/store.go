// Package store persists parsed transcript sessions between API calls.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chatlens/chatlens/pkg/config"
	"github.com/chatlens/chatlens/pkg/parser"
)

// ErrNotFound is returned when a session key is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Session is a parsed transcript held for follow-up queries.
type Session struct {
	Key       string           `json:"key"`
	Filename  string           `json:"filename"`
	Language  string           `json:"language"`
	Messages  []parser.Message `json:"messages"`
	CreatedAt time.Time        `json:"created_at"`
}

// Store persists sessions with a fixed retention window.
type Store interface {
	// Put saves a session under its key.
	Put(ctx context.Context, sess *Session) error

	// Get returns the session for a key, or ErrNotFound.
	Get(ctx context.Context, key string) (*Session, error)

	// Delete removes a session. Deleting an unknown key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases store resources.
	Close() error
}

// Open constructs the store selected by the configuration.
func Open(cfg config.StoreConfig) (Store, error) {
	switch cfg.Backend {
	case config.StoreBackendSQLite:
		return OpenSQLite(cfg.Path, cfg.TTL)
	case config.StoreBackendMemory, "":
		return NewMemory(cfg.TTL), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
