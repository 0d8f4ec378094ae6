package session

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryPersister keeps sessions in-process. Used by tests and by
// development runs without Redis or a session database.
type MemoryPersister struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{data: make(map[string][]byte)}
}

func (m *MemoryPersister) Load(_ context.Context, sessionID string) (*State, error) {
	m.mu.RLock()
	raw, ok := m.data[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (m *MemoryPersister) Save(_ context.Context, state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[state.SessionID] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryPersister) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.data, sessionID)
	m.mu.Unlock()
	return nil
}
