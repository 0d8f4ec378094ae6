package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultSessionTTL matches how long an idle shopper session survives.
const DefaultSessionTTL = 30 * 24 * time.Hour

// RedisPersister stores each session as a JSON blob under sess:<id> with a
// sliding TTL.
type RedisPersister struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPersister(client *redis.Client, ttl time.Duration) *RedisPersister {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &RedisPersister{client: client, ttl: ttl}
}

func (r *RedisPersister) key(sessionID string) string {
	return "sess:" + sessionID
}

func (r *RedisPersister) Load(ctx context.Context, sessionID string) (*State, error) {
	raw, err := r.client.Get(ctx, r.key(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return &state, nil
}

func (r *RedisPersister) Save(ctx context.Context, state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", state.SessionID, err)
	}
	if err := r.client.Set(ctx, r.key(state.SessionID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", state.SessionID, err)
	}
	return nil
}

func (r *RedisPersister) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.key(sessionID)).Err()
}
