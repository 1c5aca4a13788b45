package session

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"novacart-support/internal/model"
)

const defaultCacheSize = 4096

// Entry is a live session slot. Its mutex serializes turns belonging to
// the same session; turns on different sessions run in parallel.
type Entry struct {
	mu sync.Mutex
	s  Session
}

// Lock acquires the per-session turn lock.
func (e *Entry) Lock() { e.mu.Lock() }

// Unlock releases the per-session turn lock.
func (e *Entry) Unlock() { e.mu.Unlock() }

// Snapshot returns a copy of the session state. Caller must hold the lock.
func (e *Entry) Snapshot() Session {
	s := e.s
	s.Turns = append([]model.Turn(nil), e.s.Turns...)
	return s
}

// Store writes back updated session state. Caller must hold the lock.
func (e *Entry) Store(s Session) { e.s = s }

// Manager keeps live sessions in an LRU cache keyed by session ID.
// Evicted sessions lose in-process state (pending intent, order lock);
// conversation history survives in the memory repository.
type Manager struct {
	mu    sync.Mutex
	cache *lru.Cache[string, *Entry]
}

// NewManager creates a session manager with the given cache size.
func NewManager(size int) (*Manager, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[string, *Entry](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}
	return &Manager{cache: cache}, nil
}

// NewSessionID generates a session identifier.
func NewSessionID() string {
	return "sess_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Create registers a fresh session for the user and returns it.
func (m *Manager) Create(userID string) Session {
	s := Session{ID: NewSessionID(), UserID: userID}
	m.cache.Add(s.ID, &Entry{s: s})
	return s
}

// Acquire returns the live entry for a session ID, re-creating an empty
// one if it was evicted or the process restarted.
func (m *Manager) Acquire(sessionID, userID string) *Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.cache.Get(sessionID); ok {
		return e
	}
	e := &Entry{s: Session{ID: sessionID, UserID: userID}}
	m.cache.Add(sessionID, e)
	return e
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	return m.cache.Len()
}
