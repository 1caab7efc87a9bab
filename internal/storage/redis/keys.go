package redis

import (
	"fmt"

	"github.com/jax2600/warpstery/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "warpstery"

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// ownerSessionsIndexKey returns the Redis key for the SET of session ids owned by a player
func ownerSessionsIndexKey(owner model.PlayerID) string {
	return fmt.Sprintf("%s:idx:owner_sessions:%d", keyPrefix, owner)
}
