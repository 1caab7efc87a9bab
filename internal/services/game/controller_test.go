package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/jax2600/warpstery/internal/dependencies/mocks"
	"github.com/jax2600/warpstery/internal/dependencies/random"
	"github.com/jax2600/warpstery/internal/model"
	"github.com/jax2600/warpstery/internal/services/deal"
	"github.com/jax2600/warpstery/internal/services/resolver"
	"github.com/jax2600/warpstery/internal/services/rounds"
	"github.com/jax2600/warpstery/internal/testutil"
)

const (
	alice = model.PlayerID(7)
	bob   = model.PlayerID(8)
	carol = model.PlayerID(9)
)

type ControllerSuite struct {
	suite.Suite
	random     *mocks.MockRandom
	controller *Controller
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func newController(r random.Random) *Controller {
	logger := testutil.NopLogger()
	return NewController(deal.New(r, logger), resolver.New(logger), rounds.New(), r, logger)
}

func (s *ControllerSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.controller = newController(s.random)
}

// press applies a sequence of button presses from one player
func (s *ControllerSuite) press(state *model.EngineState, player model.PlayerID, buttons ...int) *Result {
	s.T().Helper()
	var result *Result
	for _, b := range buttons {
		var err error
		result, err = s.controller.Apply(state, model.Action{ButtonIndex: b, PlayerID: player})
		s.Require().NoError(err)
		state = result.State
	}
	return result
}

// started returns a playing state with the solution Ted not lasso / Social Hack / Secret Den
func (s *ControllerSuite) started(players ...model.PlayerID) *model.EngineState {
	s.random.QueueIntn(2, 3, 4)

	var state *model.EngineState
	last := len(players) - 1
	for _, p := range players[:last] {
		state = s.press(state, p, 2).State
	}
	result := s.press(state, players[last], ButtonStart)
	s.Require().Equal(model.StagePlaying, result.State.Stage)
	return result.State
}

func labels(buttons []model.Button) []string {
	out := make([]string, len(buttons))
	for i, b := range buttons {
		out[i] = b.Label
	}
	return out
}

func (s *ControllerSuite) TestStartFromLobby() {
	result := s.press(nil, alice, ButtonStart)

	s.Equal(model.StagePlaying, result.State.Stage)
	s.Equal(1, result.State.Round)
	s.Equal([]model.PlayerID{alice}, result.State.Players)
	s.NotNil(result.State.Solution)
	s.NotEmpty(result.State.CurrentEvent)
	s.Equal(model.SceneGameBoard, result.Directive.Scene)
	s.Equal([]string{"Roll Dice", "Suggest", "Accuse"}, labels(result.Directive.Buttons))
	s.False(result.Illegal)
}

func (s *ControllerSuite) TestStartDealsPhantomsForSinglePlayer() {
	state := s.started(alice)

	s.Equal([]model.PlayerID{alice, -1, -2, -3}, state.Seating)
	s.Len(state.Hands, 4)
	s.Equal(6, state.Hands[alice].Size())
	s.Equal([]int{0, 1, 3, 4, 5, 6}, state.Hands[alice].Suspects)
}

func (s *ControllerSuite) TestStartWithNoPlayerFails() {
	_, err := s.controller.Apply(nil, model.Action{ButtonIndex: ButtonStart, PlayerID: model.NoOne})
	s.ErrorIs(err, model.ErrInvalidPlayerCount)
}

func (s *ControllerSuite) TestJoinIsAppendOnly() {
	state := s.press(nil, alice, 2).State
	state = s.press(state, bob, 2).State
	state = s.press(state, alice, 2).State

	s.Equal([]model.PlayerID{alice, bob}, state.Players)
}

func (s *ControllerSuite) TestRollDoesNotChangeState() {
	state := s.started(alice)
	s.random.QueueIntn(3)

	result := s.press(state, alice, ButtonRoll)

	s.Equal(model.SceneKey("roll-4"), result.Directive.Scene)
	s.Equal([]string{"Move", "Suggest", "Accuse"}, labels(result.Directive.Buttons))
	s.Equal(state, result.State)
}

func (s *ControllerSuite) TestApplyDoesNotModifyPriorState() {
	state := s.started(alice)
	before := state.Clone()

	s.press(state, alice, ButtonSuggest, 1, 1, 1)

	s.Equal(before, state)
}

func (s *ControllerSuite) TestSuggestionDialogue() {
	state := s.started(alice)

	result := s.press(state, alice, ButtonSuggest)
	s.Equal(model.StageQuestioning, result.State.Stage)
	s.Equal(2, result.State.Round)
	s.Equal(model.SceneKey("question-suspect"), result.Directive.Scene)
	s.Equal([]string{"DWR", "V", "Ted not lasso", "More Suspects"}, labels(result.Directive.Buttons))

	result = s.press(result.State, alice, ButtonMore)
	s.Equal(model.SceneKey("question-suspect-more"), result.Directive.Scene)
	s.Equal([]string{"Linda", "Horsefacts", "woj", "More Suspects"}, labels(result.Directive.Buttons))

	result = s.press(result.State, alice, ButtonMore)
	s.Equal([]string{"gt", "sds", "deodad", "Back"}, labels(result.Directive.Buttons))

	result = s.press(result.State, alice, ButtonMore)
	s.Equal(model.SceneKey("question-suspect"), result.Directive.Scene)

	result = s.press(result.State, alice, 1)
	s.Equal(model.SceneKey("question-weapon"), result.Directive.Scene)
	s.Equal(0, *result.State.Pending.Suspect)
	s.Equal(0, result.State.Pending.Page)

	result = s.press(result.State, alice, ButtonMore)
	s.Equal([]string{"Social Hack", "NFT Rug", "Bad Take", "Back"}, labels(result.Directive.Buttons))
}

func (s *ControllerSuite) TestSuggestionIsLogged() {
	state := s.started(alice)

	// DWR / Gas Fee / Farm; alice holds DWR, the first phantom holds Gas Fee
	result := s.press(state, alice, ButtonSuggest, 1, 1, 1)

	s.Equal(model.StagePlaying, result.State.Stage)
	s.Equal(model.SceneQuestionResult, result.Directive.Scene)
	s.Equal(model.Pending{}, result.State.Pending)
	s.Require().Len(result.State.QuestionLog, 1)

	entry := result.State.QuestionLog[0]
	s.Equal(alice, entry.Asker)
	s.Equal(model.PhantomPlayer(1), entry.AnsweredBy)
	s.Equal(&model.Card{Category: model.CategoryWeapon, Index: 0}, entry.Disclosed)

	s.Require().Len(result.Revealed, 1)
	s.Equal(alice, result.Revealed[0].RevealedTo)
	s.Equal([]model.Card{{Category: model.CategoryWeapon, Index: 0}}, result.State.Revealed)
}

func (s *ControllerSuite) TestUnrefutedSuggestion() {
	state := s.started(alice)

	// Ted not lasso / Social Hack / Secret Den is the solution
	result := s.press(state, alice, ButtonSuggest, 3, ButtonMore, 1, ButtonMore, 2)

	s.Require().Len(result.State.QuestionLog, 1)
	s.Equal(model.NoOne, result.State.QuestionLog[0].AnsweredBy)
	s.Nil(result.State.QuestionLog[0].Disclosed)
	s.Empty(result.Revealed)
}

func (s *ControllerSuite) TestCorrectAccusation() {
	state := s.started(alice)

	result := s.press(state, alice, ButtonAccuse, 3, ButtonMore, 1, ButtonMore, 2)

	s.Equal(model.StageSolved, result.State.Stage)
	s.Equal(model.OutcomeSolved, result.State.Outcome)
	s.Equal(1, result.State.Round)
	s.Equal(model.SceneSolved, result.Directive.Scene)
	s.Contains(result.Directive.ShareText, "Ted not lasso")
	s.Contains(result.Directive.ShareText, "Social Hack")
	s.Contains(result.Directive.ShareText, "Secret Den")
	s.Require().Len(result.Directive.Buttons, 2)
	s.Equal(model.ActionShare, result.Directive.Buttons[1].Kind)
}

func (s *ControllerSuite) TestWrongAccusationCostsARound() {
	state := s.started(alice)

	result := s.press(state, alice, ButtonAccuse, 1, 1, 1)

	s.Equal(model.StagePlaying, result.State.Stage)
	s.Equal(2, result.State.Round)
	s.Equal(model.SceneWrongGuess, result.Directive.Scene)
	s.Equal(model.OutcomeNone, result.State.Outcome)
}

func (s *ControllerSuite) TestAccusationMissingOneCategory() {
	// The solution is suspect 2, weapon 3, room 4; each case changes one pick
	tests := []struct {
		name    string
		buttons []int
	}{
		{"wrong suspect", []int{ButtonAccuse, 1, ButtonMore, 1, ButtonMore, 2}},
		{"wrong weapon", []int{ButtonAccuse, 3, 1, ButtonMore, 2}},
		{"wrong room", []int{ButtonAccuse, 3, ButtonMore, 1, 1}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			state := s.started(alice)

			result := s.press(state, alice, tt.buttons...)

			s.Equal(model.StagePlaying, result.State.Stage)
			s.NotEqual(model.OutcomeSolved, result.State.Outcome)
			s.Equal(state.Round+1, result.State.Round)
			s.Equal(model.SceneWrongGuess, result.Directive.Scene)
		})
	}
}

func (s *ControllerSuite) TestSinglePlayerRoundCap() {
	state := s.started(alice)

	for round := 2; round <= rounds.SinglePlayerMaxRounds; round++ {
		state = s.press(state, alice, ButtonSuggest, 1, 1, 1).State
		s.Equal(round, state.Round)
		s.Equal(model.StagePlaying, state.Stage)
	}
	s.True(s.controller.IsFinalRound(state))

	result := s.press(state, alice, ButtonSuggest)
	s.Equal(model.StageGameOver, result.State.Stage)
	s.Equal(model.OutcomeOutOfRounds, result.State.Outcome)
	s.Equal(model.SceneGameOver, result.Directive.Scene)
}

func (s *ControllerSuite) TestMultiplayerRoundCap() {
	state := s.started(alice, bob, carol)
	s.Equal(rounds.MultiplayerMaxRounds, s.controller.MaxRounds(state))

	for range rounds.MultiplayerMaxRounds - 1 {
		state = s.press(state, bob, ButtonSuggest, 1, 1, 1).State
		s.Equal(model.StagePlaying, state.Stage)
	}

	result := s.press(state, carol, ButtonSuggest)
	s.Equal(model.StageGameOver, result.State.Stage)
}

func (s *ControllerSuite) TestWrongAccusationOnFinalRoundEndsGame() {
	state := s.started(alice, bob)
	state.Round = rounds.MultiplayerMaxRounds

	result := s.press(state, bob, ButtonAccuse, 1, 1, 1)

	s.Equal(model.StageGameOver, result.State.Stage)
	s.Equal(model.OutcomeOutOfRounds, result.State.Outcome)
}

func (s *ControllerSuite) TestIllegalActionShowsTitle() {
	tests := []struct {
		name    string
		state   func() *model.EngineState
		button  int
		buttons []string
	}{
		{
			name:    "lobby",
			state:   func() *model.EngineState { return nil },
			button:  3,
			buttons: []string{"Start Game"},
		},
		{
			name:    "playing",
			state:   func() *model.EngineState { return s.started(alice) },
			button:  4,
			buttons: []string{"Roll Dice", "Suggest", "Accuse"},
		},
		{
			name: "selection",
			state: func() *model.EngineState {
				return s.press(s.started(alice), alice, ButtonSuggest).State
			},
			button:  5,
			buttons: []string{"DWR", "V", "Ted not lasso", "More Suspects"},
		},
		{
			name: "game over",
			state: func() *model.EngineState {
				st := s.started(alice)
				st.Stage = model.StageGameOver
				return st
			},
			button:  2,
			buttons: []string{"Play Again"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.random.Reset()
			state := tt.state()

			result, err := s.controller.Apply(state, model.Action{ButtonIndex: tt.button, PlayerID: alice})
			s.Require().NoError(err)

			s.True(result.Illegal)
			s.Equal(model.SceneTitle, result.Directive.Scene)
			s.Equal(tt.buttons, labels(result.Directive.Buttons))
			if state != nil {
				s.Equal(state, result.State)
			}
		})
	}
}

func (s *ControllerSuite) TestPlayAgainKeepsPlayers() {
	state := s.started(alice, bob)
	state = s.press(state, alice, ButtonAccuse, 3, ButtonMore, 1, ButtonMore, 2).State
	s.Require().Equal(model.StageSolved, state.Stage)

	result := s.press(state, carol, ButtonReplay)

	s.Equal(model.StagePlaying, result.State.Stage)
	s.Equal(1, result.State.Round)
	s.Equal([]model.PlayerID{alice, bob, carol}, result.State.Players)
	s.Empty(result.State.QuestionLog)
	s.Empty(result.State.Revealed)
	s.Equal(model.OutcomeNone, result.State.Outcome)
}

func (s *ControllerSuite) TestViewMatchesStage() {
	s.Equal(model.SceneTitle, s.controller.View(nil).Scene)

	state := s.started(alice)
	s.Equal(model.SceneGameBoard, s.controller.View(state).Scene)

	state = s.press(state, alice, ButtonAccuse).State
	s.Equal(model.SceneKey("accuse-suspect"), s.controller.View(state).Scene)
}

func TestSeededGamesAreDeterministic(t *testing.T) {
	play := func() *Result {
		c := newController(random.NewSeeded(42))
		var state *model.EngineState
		var result *Result
		for _, action := range []model.Action{
			{ButtonIndex: 2, PlayerID: bob},
			{ButtonIndex: ButtonStart, PlayerID: alice},
			{ButtonIndex: ButtonRoll, PlayerID: alice},
			{ButtonIndex: ButtonSuggest, PlayerID: alice},
			{ButtonIndex: 2, PlayerID: alice},
			{ButtonIndex: 3, PlayerID: alice},
			{ButtonIndex: 1, PlayerID: alice},
		} {
			var err error
			result, err = c.Apply(state, action)
			require.NoError(t, err)
			state = result.State
		}
		return result
	}

	first, second := play(), play()
	require.Equal(t, first.State, second.State)
	require.Equal(t, first.Directive, second.Directive)
	require.Len(t, first.State.QuestionLog, 1)
}
