// Package store persists the game records to a local key-value store
package store

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/ayoisaiah/goaltime/internal/models"
)

// SessionsKey is the single entry under which all sessions are kept.
const SessionsKey = "sessions"

// ErrNotFound is returned by a Backend when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Backend is a durable key-value store.
type Backend interface {
	// Get returns the value stored under key, or ErrNotFound
	Get(key string) ([]byte, error)
	// Put overwrites the value stored under key
	Put(key string, value []byte) error
	// Name identifies the backend in logs
	Name() string
	// Close ends the database connection
	Close() error
}

// Adapter loads and saves the list of sessions. Failures are logged and never
// returned: a corrupt or unreadable entry loads as empty and a failed write is
// dropped.
type Adapter struct {
	backend Backend
}

// NewAdapter wraps a backend.
func NewAdapter(b Backend) *Adapter {
	return &Adapter{backend: b}
}

// Load returns the stored sessions, most recent first.
func (a *Adapter) Load() []models.GameSession {
	b, err := a.backend.Get(SessionsKey)
	if errors.Is(err, ErrNotFound) {
		return []models.GameSession{}
	}

	if err != nil {
		slog.Error(
			"failed to load sessions",
			slog.String("backend", a.backend.Name()),
			slog.Any("error", err),
		)

		return []models.GameSession{}
	}

	var sessions []models.GameSession

	err = json.Unmarshal(b, &sessions)
	if err != nil {
		slog.Error(
			"failed to parse stored sessions",
			slog.String("backend", a.backend.Name()),
			slog.Any("error", err),
		)

		return []models.GameSession{}
	}

	if sessions == nil {
		sessions = []models.GameSession{}
	}

	return sessions
}

// Save overwrites the stored sessions.
func (a *Adapter) Save(sessions []models.GameSession) {
	if sessions == nil {
		sessions = []models.GameSession{}
	}

	b, err := json.Marshal(sessions)
	if err != nil {
		slog.Error(
			"failed to encode sessions",
			slog.String("backend", a.backend.Name()),
			slog.Any("error", err),
		)

		return
	}

	err = a.backend.Put(SessionsKey, b)
	if err != nil {
		slog.Error(
			"failed to save sessions",
			slog.String("backend", a.backend.Name()),
			slog.Any("error", err),
		)
	}
}

// Close releases the underlying backend.
func (a *Adapter) Close() error {
	return a.backend.Close()
}
