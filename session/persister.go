package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Persister when no state exists for the
// session id.
var ErrNotFound = errors.New("session state not found")

// Persister is the storage adapter for session state. Adapters exist for
// Redis (hot path, TTL) and SQLite (durable single-node deployments); the
// in-memory adapter backs tests and Redis-less development.
type Persister interface {
	Load(ctx context.Context, sessionID string) (*State, error)
	Save(ctx context.Context, state *State) error
	Delete(ctx context.Context, sessionID string) error
}

// Manager pairs a Persister with the create-on-first-use rule the HTTP
// layer needs.
type Manager struct {
	store Persister
}

func NewManager(store Persister) *Manager {
	return &Manager{store: store}
}

// Get loads a session's state, creating a fresh one when none is stored.
// The returned state keeps the requested id so the caller's cookie stays
// valid.
func (m *Manager) Get(ctx context.Context, sessionID string) (*State, error) {
	state, err := m.store.Load(ctx, sessionID)
	if errors.Is(err, ErrNotFound) {
		state = NewState()
		state.SessionID = sessionID
		return state, nil
	}
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (m *Manager) Put(ctx context.Context, state *State) error {
	return m.store.Save(ctx, state)
}

func (m *Manager) Drop(ctx context.Context, sessionID string) error {
	return m.store.Delete(ctx, sessionID)
}
