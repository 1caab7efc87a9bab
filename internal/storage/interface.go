package storage

import (
	"context"

	"github.com/jax2600/warpstery/internal/model"
)

// Storage defines the interface for session persistence
type Storage interface {
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	SessionExists(ctx context.Context, id model.SessionID) (bool, error)

	// ListSessions returns the ids of every stored session owned by the player
	ListSessions(ctx context.Context, owner model.PlayerID) ([]model.SessionID, error)
}
