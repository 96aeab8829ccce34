package session

import "sync"

// Store keeps live sessions for the process lifetime.
type Store interface {
	// Get retrieves a session by id.
	Get(id string) (*Session, bool)

	// GetOrCreate retrieves a session, creating it on first use.
	GetOrCreate(id string) *Session

	// List returns the ids of all live sessions.
	List() []string

	// Remove drops a session from the store.
	Remove(id string)
}

// MemoryStore is an in-memory session store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

// Get retrieves a session by id.
func (m *MemoryStore) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// GetOrCreate retrieves a session, creating it on first use. An empty id
// creates a session with a generated id.
func (m *MemoryStore) GetOrCreate(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id != "" {
		if s, ok := m.sessions[id]; ok {
			return s
		}
	}
	s := New(id)
	m.sessions[s.ID] = s
	return s
}

// List returns the ids of all live sessions.
func (m *MemoryStore) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return ids
}

// Remove drops a session from the store.
func (m *MemoryStore) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Count returns the number of live sessions.
func (m *MemoryStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
