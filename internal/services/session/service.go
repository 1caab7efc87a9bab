package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jax2600/warpstery/internal/dependencies/clock"
	"github.com/jax2600/warpstery/internal/model"
	"github.com/jax2600/warpstery/internal/services/game"
	"github.com/jax2600/warpstery/internal/services/notes"
	"github.com/jax2600/warpstery/internal/storage"
)

// Progress is the round counter shown alongside a session
type Progress struct {
	Round      int  `json:"round"`
	MaxRounds  int  `json:"max_rounds"`
	FinalRound bool `json:"final_round"`
}

// ActResult is the outcome of one button press in a session
type ActResult struct {
	Session  *model.Session
	Revealed []model.CardRevealed
	Illegal  bool
}

// Service runs single-player games held on the server
type Service struct {
	storage    storage.Storage
	controller *game.Controller
	notes      *notes.Service
	clock      clock.Clock
	logger     *slog.Logger
}

// New creates a new session Service
func New(
	storage storage.Storage,
	controller *game.Controller,
	notes *notes.Service,
	clock clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage:    storage,
		controller: controller,
		notes:      notes,
		clock:      clock,
		logger:     logger,
	}
}

// Create starts a session in the lobby with the owner already joined
func (s *Service) Create(ctx context.Context, owner model.PlayerID) (*model.Session, error) {
	if !owner.IsReal() {
		return nil, fmt.Errorf("%w: %d", model.ErrInvalidPlayer, owner)
	}

	state := model.NewEngineState()
	state.Join(owner)
	now := s.clock.Now()

	session := &model.Session{
		ID:        model.SessionID(uuid.NewString()),
		Owner:     owner,
		State:     state,
		Directive: s.controller.View(state),
		Notes:     s.notes.Fresh(owner, model.Hand{}),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("session created",
		slog.String("session_id", string(session.ID)),
		slog.Int64("owner", int64(owner)),
	)
	return session, nil
}

// Get retrieves a session by id
func (s *Service) Get(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return s.storage.GetSession(ctx, id)
}

// List returns the ids of the player's sessions
func (s *Service) List(ctx context.Context, owner model.PlayerID) ([]model.SessionID, error) {
	return s.storage.ListSessions(ctx, owner)
}

// Delete removes a session
func (s *Service) Delete(ctx context.Context, id model.SessionID) error {
	exists, err := s.storage.SessionExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrSessionNotFound
	}
	if err := s.storage.DeleteSession(ctx, id); err != nil {
		return err
	}

	s.logger.Info("session deleted", slog.String("session_id", string(id)))
	return nil
}

// Act presses a button on behalf of the session owner.
// A new deal resets the owner's notes; revealed cards are crossed off.
func (s *Service) Act(ctx context.Context, id model.SessionID, button int, inputText string) (*ActResult, error) {
	session, err := s.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	prior := session.State
	result, err := s.controller.Apply(prior, model.Action{
		ButtonIndex: button,
		PlayerID:    session.Owner,
		InputText:   inputText,
	})
	if err != nil {
		return nil, err
	}

	if dealt(prior, result.State) {
		session.Notes = s.notes.Fresh(session.Owner, result.State.Hands[session.Owner])
	}
	session.Notes = s.notes.Apply(session.Notes, result.Revealed)
	session.State = result.State
	session.Directive = result.Directive
	session.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Debug("session action applied",
		slog.String("session_id", string(id)),
		slog.Int("button", button),
		slog.String("stage", string(session.State.Stage)),
		slog.Bool("illegal", result.Illegal),
	)

	return &ActResult{
		Session:  session,
		Revealed: result.Revealed,
		Illegal:  result.Illegal,
	}, nil
}

// CycleNote advances the owner's mark on a single card
func (s *Service) CycleNote(ctx context.Context, id model.SessionID, card model.Card) (*model.Session, error) {
	session, err := s.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	n, err := s.notes.Cycle(session.Notes, card)
	if err != nil {
		return nil, err
	}
	session.Notes = n
	session.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetNoteText replaces the owner's free-form notes
func (s *Service) SetNoteText(ctx context.Context, id model.SessionID, text string) (*model.Session, error) {
	session, err := s.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Notes = s.notes.SetText(session.Notes, text)
	session.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Progress returns the round counter for the session's current game
func (s *Service) Progress(session *model.Session) Progress {
	return Progress{
		Round:      session.State.Round,
		MaxRounds:  s.controller.MaxRounds(session.State),
		FinalRound: s.controller.IsFinalRound(session.State),
	}
}

// dealt reports whether the transition started a new game
func dealt(prior, next *model.EngineState) bool {
	if next.Stage != model.StagePlaying || next.Round != 1 {
		return false
	}
	return prior == nil || prior.Stage == model.StageLobby || prior.Stage.IsTerminal()
}
