// Package session tracks independent editing sessions, each owning its own
// editor and history pair. Undo/redo state is never shared between
// sessions; concurrent callers each operate on their own session.
package session

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/reviso/internal/editor"
	"github.com/dshills/reviso/internal/snapshot"
)

// Session is one editing session with exclusive ownership of its editor.
type Session struct {
	// ID uniquely identifies the session.
	ID uuid.UUID

	// CreatedAt is when the session was opened.
	CreatedAt time.Time

	// Editor holds the session's state and history. It must only be
	// driven by the session's owner.
	Editor *editor.Editor

	// seq orders sessions by creation; CreatedAt can tie.
	seq uint64
}

// Manager tracks open sessions. It is safe for concurrent use; the editors
// it hands out are not shared and stay single-owner.
type Manager struct {
	mu sync.RWMutex

	sessions map[uuid.UUID]*Session
	nextSeq  uint64

	// History bound applied to new sessions
	maxHistory int
}

// Option configures a Manager.
type Option func(*Manager)

// WithMaxHistory sets the undo depth bound for sessions the manager
// creates.
func WithMaxHistory(n int) Option {
	return func(m *Manager) {
		m.maxHistory = n
	}
}

// NewManager creates an empty session manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		sessions:   make(map[uuid.UUID]*Session),
		maxHistory: -1,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Create opens a new session seeded with the given fields. With no fields
// the session starts unseeded and the first edit initializes it.
func (m *Manager) Create(fields ...snapshot.Field) *Session {
	s := &Session{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
	}

	// Bound read and map insert share one critical section, so a
	// concurrent SetMaxHistory either supplies the bound here or finds
	// the session already registered.
	m.mu.Lock()
	edOpts := []editor.Option{editor.WithMaxHistory(m.maxHistory)}
	if len(fields) > 0 {
		edOpts = append(edOpts, editor.WithState(fields...))
	}
	s.Editor = editor.New(edOpts...)
	s.seq = m.nextSeq
	m.nextSeq++
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s
}

// Get returns the session with the given ID.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	return s, ok
}

// Close removes a session. Returns false if the session does not exist.
func (m *Manager) Close(id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// CloseAll removes every session.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions = make(map[uuid.UUID]*Session)
}

// List returns the open sessions, ordered by creation time.
func (m *Manager) List() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].seq < result[j].seq
	})
	return result
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// SetMaxHistory changes the undo depth bound for future sessions and
// re-applies it to every open session.
func (m *Manager) SetMaxHistory(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.maxHistory = n
	for _, s := range m.sessions {
		s.Editor.SetMaxHistory(n)
	}
}

// MaxHistory returns the bound applied to new sessions.
func (m *Manager) MaxHistory() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.maxHistory
}
