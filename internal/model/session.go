package model

import "time"

// SessionID identifies a server-held local game
type SessionID string

// Session is the in-memory adapter's record of a single-player game
type Session struct {
	ID        SessionID    `json:"id"`
	Owner     PlayerID     `json:"owner"`
	State     *EngineState `json:"state"`
	Directive Directive    `json:"directive"`
	Notes     Notes        `json:"notes"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
