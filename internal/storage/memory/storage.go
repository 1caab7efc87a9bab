package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jax2600/warpstery/internal/model"
	"github.com/jax2600/warpstery/internal/storage"
)

// Storage keeps sessions in a map guarded by an RWMutex. Sessions never
// expire; callers get copies, never the stored values.
type Storage struct {
	mu       sync.RWMutex
	sessions map[model.SessionID]*model.Session
}

var _ storage.Storage = (*Storage)(nil)

func New() *Storage {
	return &Storage{sessions: make(map[model.SessionID]*model.Session)}
}

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stored := copySession(session)

	s.mu.Lock()
	s.sessions[session.ID] = stored
	s.mu.Unlock()
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return copySession(session), nil
}

func (s *Storage) DeleteSession(_ context.Context, id model.SessionID) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func (s *Storage) SessionExists(_ context.Context, id model.SessionID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[id]
	return ok, nil
}

// ListSessions scans every session; fine for a single-process dev store
func (s *Storage) ListSessions(_ context.Context, owner model.PlayerID) ([]model.SessionID, error) {
	s.mu.RLock()
	ids := []model.SessionID{}
	for id, session := range s.sessions {
		if session.Owner == owner {
			ids = append(ids, id)
		}
	}
	s.mu.RUnlock()

	slices.Sort(ids)
	return ids, nil
}

// copySession keeps callers from mutating stored sessions through shared slices
func copySession(session *model.Session) *model.Session {
	out := *session
	if session.State != nil {
		out.State = session.State.Clone()
	}
	out.Directive.Buttons = slices.Clone(session.Directive.Buttons)
	out.Notes.Suspects = slices.Clone(session.Notes.Suspects)
	out.Notes.Weapons = slices.Clone(session.Notes.Weapons)
	out.Notes.Rooms = slices.Clone(session.Notes.Rooms)
	return &out
}
