// Package session tracks per-browser word histories. Each session is keyed
// by an opaque identifier carried in a cookie and expires after a period of
// inactivity.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/phrazzld/wonderwords/internal/store"
)

// Manager hands out the History belonging to a session ID, creating it on
// first use. Sessions idle for longer than the TTL are evicted, and the
// oldest are dropped once more than the configured maximum are live.
type Manager struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *store.History]
	logger   *slog.Logger
}

// NewManager creates a Manager holding at most maxSessions live sessions,
// each expiring after ttl without use.
func NewManager(maxSessions int, ttl time.Duration, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{logger: logger.With("component", "session_manager")}
	m.sessions = expirable.NewLRU[string, *store.History](maxSessions, m.onEvict, ttl)
	return m
}

// NewID returns a fresh random session identifier.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like an identifier produced by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// History returns the History for id, creating an empty one when the
// session is unknown or has expired. Every call refreshes the session TTL.
func (m *Manager) History(id string) *store.History {
	m.mu.Lock()
	defer m.mu.Unlock()

	history, ok := m.sessions.Get(id)
	if !ok {
		history = store.NewHistory()
		m.logger.Debug("session created", slog.String("session_id", id))
	}
	// Add resets the expiry; Get alone does not.
	m.sessions.Add(id, history)
	return history
}

// Peek returns the History for id without creating or refreshing it.
func (m *Manager) Peek(id string) (*store.History, bool) {
	return m.sessions.Peek(id)
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	return m.sessions.Len()
}

func (m *Manager) onEvict(id string, history *store.History) {
	m.logger.Debug("session evicted",
		slog.String("session_id", id),
		slog.Int("words", history.Len()))
}

// Purge drops every session. Used on shutdown.
func (m *Manager) Purge() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions.Purge()
}
