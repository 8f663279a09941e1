package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager is the in-memory registry of live booking sessions, keyed by a
// generated session id. Each mobile client owns exactly one entry.
type Manager struct {
	api RentalAPI

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(api RentalAPI) *Manager {
	return &Manager{
		api:      api,
		sessions: make(map[string]*Session),
	}
}

// Create registers a fresh, uninitialized session and returns it.
func (m *Manager) Create() *Session {
	s := newSession(uuid.New().String(), m.api)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session for the given id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Drop resets and removes a session; used when the client abandons the flow.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		s.Reset()
	}
}
