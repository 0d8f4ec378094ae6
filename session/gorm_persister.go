package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRecord is the SQLite row shape: one row per session holding the
// JSON-encoded state.
type SessionRecord struct {
	SessionID string    `gorm:"primaryKey;size:64"`
	Payload   []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index"`
}

func (SessionRecord) TableName() string {
	return "shopper_sessions"
}

// GormPersister is the durable adapter for single-node deployments that
// run without Redis.
type GormPersister struct {
	db *gorm.DB
}

func NewGormPersister(db *gorm.DB) (*GormPersister, error) {
	if err := db.AutoMigrate(&SessionRecord{}); err != nil {
		return nil, fmt.Errorf("migrate session table: %w", err)
	}
	return &GormPersister{db: db}, nil
}

func (g *GormPersister) Load(ctx context.Context, sessionID string) (*State, error) {
	var rec SessionRecord
	err := g.db.WithContext(ctx).First(&rec, "session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	var state State
	if err := json.Unmarshal(rec.Payload, &state); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return &state, nil
}

func (g *GormPersister) Save(ctx context.Context, state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", state.SessionID, err)
	}
	rec := SessionRecord{SessionID: state.SessionID, Payload: raw}
	err = g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save session %s: %w", state.SessionID, err)
	}
	return nil
}

func (g *GormPersister) Delete(ctx context.Context, sessionID string) error {
	return g.db.WithContext(ctx).
		Delete(&SessionRecord{}, "session_id = ?", sessionID).Error
}
