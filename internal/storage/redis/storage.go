package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jax2600/warpstery/internal/model"
	"github.com/jax2600/warpstery/internal/storage"
)

// Storage keeps each session as a JSON string with a sliding TTL, plus a
// per-owner SET of session ids for listing.
type Storage struct {
	client *redis.Client
	cfg    Config
}

var _ storage.Storage = (*Storage)(nil)

// New connects to cfg.URL and fails fast if the server does not answer PING
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient wraps an existing client, e.g. one pointed at miniredis
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{client: client, cfg: cfg}
}

func (s *Storage) Close() error {
	return s.client.Close()
}

// SaveSession writes the session and refreshes both TTLs in one round trip
func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}

	index := ownerSessionsIndexKey(session.Owner)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(session.ID), data, s.cfg.SessionTTL)
		pipe.SAdd(ctx, index, string(session.ID))
		if s.cfg.SessionTTL > 0 {
			pipe.Expire(ctx, index, s.cfg.SessionTTL)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, model.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &session, nil
}

// DeleteSession is a no-op for unknown ids
func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	session, err := s.GetSession(ctx, id)
	if errors.Is(err, model.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, sessionKey(id))
		pipe.SRem(ctx, ownerSessionsIndexKey(session.Owner), string(id))
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}

func (s *Storage) SessionExists(ctx context.Context, id model.SessionID) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(id)).Result()
	if err != nil {
		return false, fmt.Errorf("check session %s: %w", id, err)
	}
	return n > 0, nil
}

// ListSessions reads the owner index, pruning ids whose session expired
// while the index lived on.
func (s *Storage) ListSessions(ctx context.Context, owner model.PlayerID) ([]model.SessionID, error) {
	index := ownerSessionsIndexKey(owner)
	members, err := s.client.SMembers(ctx, index).Result()
	if err != nil {
		return nil, fmt.Errorf("list sessions for %d: %w", owner, err)
	}
	if len(members) == 0 {
		return []model.SessionID{}, nil
	}

	checks := make([]*redis.IntCmd, len(members))
	_, err = s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, m := range members {
			checks[i] = pipe.Exists(ctx, sessionKey(model.SessionID(m)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list sessions for %d: %w", owner, err)
	}

	ids := make([]model.SessionID, 0, len(members))
	var stale []any
	for i, m := range members {
		if checks[i].Val() == 0 {
			stale = append(stale, m)
			continue
		}
		ids = append(ids, model.SessionID(m))
	}
	if len(stale) > 0 {
		if err := s.client.SRem(ctx, index, stale...).Err(); err != nil {
			return nil, fmt.Errorf("prune sessions for %d: %w", owner, err)
		}
	}

	slices.Sort(ids)
	return ids, nil
}
