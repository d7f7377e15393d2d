package quizsession

import (
	"sync"

	"github.com/google/uuid"
)

type Store interface {
	Get(id uuid.UUID) (Session, bool)
	Put(s Session)
	// Update applies fn to the stored session under the store's write lock
	// and returns the resulting snapshot. All mutation of session state must
	// go through here; snapshots returned by Get and Update own their
	// Selections map, so readers never share it with writers.
	Update(id uuid.UUID, fn func(*Session)) (Session, bool)
	Delete(id uuid.UUID)
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]Session
}

func NewInMemoryStore() Store {
	return &memoryStore{
		sessions: map[uuid.UUID]Session{},
	}
}

func (m *memoryStore) Get(id uuid.UUID) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, false
	}
	return snapshot(s), true
}

func (m *memoryStore) Put(s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = snapshot(s)
}

func (m *memoryStore) Update(id uuid.UUID, fn func(*Session)) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, false
	}
	fn(&s)
	m.sessions[id] = s
	return snapshot(s), true
}

func (m *memoryStore) Delete(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func snapshot(s Session) Session {
	selections := make(map[int]string, len(s.Selections))
	for k, v := range s.Selections {
		selections[k] = v
	}
	s.Selections = selections
	return s
}
