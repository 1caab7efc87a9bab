package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/jax2600/warpstery/internal/dependencies/mocks"
	"github.com/jax2600/warpstery/internal/model"
	"github.com/jax2600/warpstery/internal/services/deal"
	"github.com/jax2600/warpstery/internal/services/game"
	"github.com/jax2600/warpstery/internal/services/notes"
	"github.com/jax2600/warpstery/internal/services/resolver"
	"github.com/jax2600/warpstery/internal/services/rounds"
	"github.com/jax2600/warpstery/internal/storage/memory"
	"github.com/jax2600/warpstery/internal/testutil"
)

const owner = model.PlayerID(42)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	logger := testutil.NopLogger()
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	controller := game.NewController(
		deal.New(s.random, logger),
		resolver.New(logger),
		rounds.New(),
		s.random,
		logger,
	)
	s.service = New(s.storage, controller, notes.New(), s.clock, logger)
	s.ctx = context.Background()
}

func (s *ServiceSuite) act(id model.SessionID, buttons ...int) *ActResult {
	s.T().Helper()
	var result *ActResult
	for _, b := range buttons {
		var err error
		result, err = s.service.Act(s.ctx, id, b, "")
		s.Require().NoError(err)
	}
	return result
}

// started creates a session and deals Ted not lasso / Social Hack / Secret Den
func (s *ServiceSuite) started() *model.Session {
	session, err := s.service.Create(s.ctx, owner)
	s.Require().NoError(err)
	s.random.QueueIntn(2, 3, 4)
	return s.act(session.ID, game.ButtonStart).Session
}

func (s *ServiceSuite) TestCreate() {
	session, err := s.service.Create(s.ctx, owner)
	s.Require().NoError(err)

	s.NotEmpty(session.ID)
	s.Equal(owner, session.Owner)
	s.Equal(model.StageLobby, session.State.Stage)
	s.Equal([]model.PlayerID{owner}, session.State.Players)
	s.Equal(model.SceneTitle, session.Directive.Scene)
	s.Equal(s.clock.Now(), session.CreatedAt)

	stored, err := s.storage.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(session.ID, stored.ID)
}

func (s *ServiceSuite) TestCreateRejectsReservedPlayer() {
	_, err := s.service.Create(s.ctx, model.NoOne)
	s.ErrorIs(err, model.ErrInvalidPlayer)

	_, err = s.service.Create(s.ctx, model.PhantomPlayer(1))
	s.ErrorIs(err, model.ErrInvalidPlayer)
}

func (s *ServiceSuite) TestCreateGivesDistinctIDs() {
	a, err := s.service.Create(s.ctx, owner)
	s.Require().NoError(err)
	b, err := s.service.Create(s.ctx, owner)
	s.Require().NoError(err)

	s.NotEqual(a.ID, b.ID)

	ids, err := s.service.List(s.ctx, owner)
	s.Require().NoError(err)
	s.ElementsMatch([]model.SessionID{a.ID, b.ID}, ids)
}

func (s *ServiceSuite) TestStartDealsWithPhantoms() {
	session := s.started()

	s.Equal(model.StagePlaying, session.State.Stage)
	s.Len(session.State.Seating, 1+model.PhantomCount)
	s.Equal(model.MarkYours, session.Notes.Suspects[0])
	s.Equal(model.MarkNone, session.Notes.Suspects[2])
}

func (s *ServiceSuite) TestRevealedCardsAreCrossedOff() {
	session := s.started()

	result := s.act(session.ID, game.ButtonSuggest, 1, 1, 1)

	s.Require().Len(result.Revealed, 1)
	s.Equal(model.MarkX, result.Session.Notes.Weapons[0])

	stored, err := s.service.Get(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(model.MarkX, stored.Notes.Weapons[0])
	s.Len(stored.State.QuestionLog, 1)
}

func (s *ServiceSuite) TestPlayAgainResetsNotes() {
	session := s.started()
	_, err := s.service.CycleNote(s.ctx, session.ID, model.Card{Category: model.CategoryRoom, Index: 0})
	s.Require().NoError(err)

	result := s.act(session.ID, game.ButtonAccuse, 3, game.ButtonMore, 1, game.ButtonMore, 2)
	s.Require().Equal(model.StageSolved, result.Session.State.Stage)
	s.Equal(model.MarkMaybe, result.Session.Notes.Rooms[0])

	result = s.act(session.ID, game.ButtonReplay)
	s.Equal(model.StagePlaying, result.Session.State.Stage)
	s.Equal(model.MarkNone, result.Session.Notes.Rooms[0])
}

func (s *ServiceSuite) TestIllegalActionIsReported() {
	session := s.started()

	result := s.act(session.ID, 4)

	s.True(result.Illegal)
	s.Equal(model.SceneTitle, result.Session.Directive.Scene)
	s.Equal(session.State, result.Session.State)
}

func (s *ServiceSuite) TestActUpdatesTimestamp() {
	session := s.started()
	s.clock.Advance(time.Minute)

	result := s.act(session.ID, game.ButtonRoll)

	s.Equal(s.clock.Now(), result.Session.UpdatedAt)
	s.True(result.Session.CreatedAt.Before(result.Session.UpdatedAt))
}

func (s *ServiceSuite) TestActOnMissingSession() {
	_, err := s.service.Act(s.ctx, "missing", 1, "")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ServiceSuite) TestCycleNote() {
	session := s.started()
	card := model.Card{Category: model.CategoryRoom, Index: 0}

	updated, err := s.service.CycleNote(s.ctx, session.ID, card)
	s.Require().NoError(err)
	s.Equal(model.MarkMaybe, updated.Notes.Get(card))

	updated, err = s.service.CycleNote(s.ctx, session.ID, card)
	s.Require().NoError(err)
	s.Equal(model.MarkConfirmed, updated.Notes.Get(card))
}

func (s *ServiceSuite) TestCycleOwnCardIsUnchanged() {
	session := s.started()
	card := model.Card{Category: model.CategorySuspect, Index: 0}

	updated, err := s.service.CycleNote(s.ctx, session.ID, card)
	s.Require().NoError(err)
	s.Equal(model.MarkYours, updated.Notes.Get(card))
}

func (s *ServiceSuite) TestCycleInvalidCard() {
	session := s.started()

	_, err := s.service.CycleNote(s.ctx, session.ID, model.Card{Category: model.CategoryWeapon, Index: 6})
	s.ErrorIs(err, model.ErrInvalidCard)
}

func (s *ServiceSuite) TestSetNoteText() {
	session := s.started()

	updated, err := s.service.SetNoteText(s.ctx, session.ID, "not the farm")
	s.Require().NoError(err)
	s.Equal("not the farm", updated.Notes.Text)
}

func (s *ServiceSuite) TestDelete() {
	session := s.started()

	s.Require().NoError(s.service.Delete(s.ctx, session.ID))

	_, err := s.service.Get(s.ctx, session.ID)
	s.ErrorIs(err, model.ErrSessionNotFound)
	s.ErrorIs(s.service.Delete(s.ctx, session.ID), model.ErrSessionNotFound)
}

func (s *ServiceSuite) TestProgress() {
	session := s.started()

	p := s.service.Progress(session)
	s.Equal(Progress{Round: 1, MaxRounds: rounds.SinglePlayerMaxRounds}, p)

	for range rounds.SinglePlayerMaxRounds - 1 {
		session = s.act(session.ID, game.ButtonSuggest, 1, 1, 1).Session
	}
	p = s.service.Progress(session)
	s.Equal(rounds.SinglePlayerMaxRounds, p.Round)
	s.True(p.FinalRound)
}
