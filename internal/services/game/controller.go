package game

import (
	"fmt"
	"log/slog"

	"github.com/jax2600/warpstery/internal/dependencies/random"
	"github.com/jax2600/warpstery/internal/model"
	"github.com/jax2600/warpstery/internal/services/deal"
	"github.com/jax2600/warpstery/internal/services/resolver"
	"github.com/jax2600/warpstery/internal/services/rounds"
)

// Button indices are 1-based, as pressed on a frame
const (
	ButtonStart   = 1
	ButtonRoll    = 1
	ButtonSuggest = 2
	ButtonAccuse  = 3
	ButtonMore    = 4
	ButtonReplay  = 1
)

// OptionsPerPage is how many catalog entries fit on one selection screen
const OptionsPerPage = 3

// Result is the outcome of applying one action
type Result struct {
	State     *model.EngineState
	Directive model.Directive
	Revealed  []model.CardRevealed
	Illegal   bool // The action was not valid and the state is unchanged
}

// Controller manages the game state machine
type Controller struct {
	dealer   *deal.Service
	resolver *resolver.Service
	rounds   *rounds.Tracker
	random   random.Random
	logger   *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	dealer *deal.Service,
	resolver *resolver.Service,
	rounds *rounds.Tracker,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		dealer:   dealer,
		resolver: resolver,
		rounds:   rounds,
		random:   random,
		logger:   logger,
	}
}

// Apply validates the action against the current stage and returns the next state.
// A nil prior state starts from the lobby. The prior state is never modified.
// Only ErrInvalidPlayerCount is returned as an error; illegal actions are recovered.
func (c *Controller) Apply(prior *model.EngineState, action model.Action) (*Result, error) {
	state := model.NewEngineState()
	if prior != nil {
		state = prior.Clone()
	}
	state.Join(action.PlayerID)

	switch state.Stage {
	case model.StageLobby:
		if action.ButtonIndex == ButtonStart {
			return c.start(state)
		}

	case model.StagePlaying:
		switch action.ButtonIndex {
		case ButtonRoll:
			return c.roll(state), nil
		case ButtonSuggest:
			return c.beginSuggestion(state), nil
		case ButtonAccuse:
			return c.beginAccusation(state), nil
		}

	case model.StageQuestioning, model.StageGuessing:
		if result, ok := c.choose(state, action); ok {
			return result, nil
		}

	case model.StageSolved, model.StageGameOver:
		if action.ButtonIndex == ButtonReplay {
			return c.start(state)
		}
	}

	return c.illegal(state, action), nil
}

// View returns the directive for the current stage without changing anything
func (c *Controller) View(state *model.EngineState) model.Directive {
	if state == nil {
		state = model.NewEngineState()
	}

	switch state.Stage {
	case model.StagePlaying:
		return model.Directive{Scene: model.SceneGameBoard, Buttons: boardButtons("Roll Dice")}
	case model.StageQuestioning, model.StageGuessing:
		return selectionDirective(state)
	case model.StageSolved:
		return c.solvedDirective(state)
	case model.StageGameOver:
		return gameOverDirective()
	default:
		return titleDirective()
	}
}

// MaxRounds returns the round cap for the state's players
func (c *Controller) MaxRounds(state *model.EngineState) int {
	return c.rounds.MaxRounds(state.PlayerCount())
}

// IsFinalRound reports whether the state is in its last allowed round
func (c *Controller) IsFinalRound(state *model.EngineState) bool {
	return state.Round > 0 && c.rounds.IsFinalRound(state.Round, state.PlayerCount())
}

// start deals a new game; used from the lobby and to play again
func (c *Controller) start(state *model.EngineState) (*Result, error) {
	d, err := c.dealer.Deal(state.Players)
	if err != nil {
		c.logger.Error("failed to deal game",
			slog.Int("player_count", state.PlayerCount()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("start game: %w", err)
	}

	next := &model.EngineState{
		Stage:        model.StagePlaying,
		Round:        1,
		Players:      state.Players,
		Seating:      d.Seating,
		Hands:        d.Hands,
		Solution:     &d.Solution,
		CurrentEvent: c.randomEvent(),
	}

	c.logger.Info("game started",
		slog.Int("player_count", next.PlayerCount()),
		slog.Int("seat_count", len(next.Seating)),
		slog.Int("max_rounds", c.MaxRounds(next)),
	)

	return &Result{
		State:     next,
		Directive: model.Directive{Scene: model.SceneGameBoard, Buttons: boardButtons("Roll Dice")},
	}, nil
}

// roll is cosmetic and never changes the state
func (c *Controller) roll(state *model.EngineState) *Result {
	roll := c.random.Intn(6) + 1
	return &Result{
		State:     state,
		Directive: model.Directive{Scene: model.RollScene(roll), Buttons: boardButtons("Move")},
	}
}

// beginSuggestion consumes a round; the cap is checked immediately
func (c *Controller) beginSuggestion(state *model.EngineState) *Result {
	next, exhausted := c.rounds.Advance(state.Round, state.PlayerCount())
	state.Round = next
	if exhausted {
		return c.exhaust(state)
	}

	state.Stage = model.StageQuestioning
	state.Pending = model.Pending{}
	return &Result{State: state, Directive: selectionDirective(state)}
}

func (c *Controller) beginAccusation(state *model.EngineState) *Result {
	state.Stage = model.StageGuessing
	state.Pending = model.Pending{}
	return &Result{State: state, Directive: selectionDirective(state)}
}

// choose handles a press inside the three-step selection dialogue
func (c *Controller) choose(state *model.EngineState, action model.Action) (*Result, bool) {
	cat, ok := state.Pending.NextCategory()
	if !ok {
		return nil, false
	}
	pages := pageCount(cat)
	page := state.Pending.Page % pages

	options := min(OptionsPerPage, cat.Size()-page*OptionsPerPage)

	// The "more" button follows the options, which is ButtonMore on every full page
	if action.ButtonIndex == options+1 && pages > 1 {
		state.Pending.Page = (page + 1) % pages
		return &Result{State: state, Directive: selectionDirective(state)}, true
	}

	if action.ButtonIndex < 1 || action.ButtonIndex > options {
		return nil, false
	}
	state.Pending.Set(cat, page*OptionsPerPage+action.ButtonIndex-1)

	triple, complete := state.Pending.Triple()
	if !complete {
		return &Result{State: state, Directive: selectionDirective(state)}, true
	}
	if state.Stage == model.StageQuestioning {
		return c.resolveSuggestion(state, action.PlayerID, triple), true
	}
	if state.Solution == nil {
		return nil, false
	}
	return c.resolveAccusation(state, triple), true
}

func (c *Controller) resolveSuggestion(state *model.EngineState, asker model.PlayerID, triple model.Triple) *Result {
	suggestion := c.resolver.Suggest(asker, triple, state.Seating, state.Hands)

	state.QuestionLog = append(state.QuestionLog, model.QuestionLogEntry{
		Asker:      asker,
		Suspect:    triple.Suspect,
		Weapon:     triple.Weapon,
		Room:       triple.Room,
		AnsweredBy: suggestion.AnsweredBy,
		Disclosed:  suggestion.Disclosed,
	})
	for _, e := range suggestion.Events {
		if !state.IsRevealed(e.Card) {
			state.Revealed = append(state.Revealed, e.Card)
		}
	}
	state.CurrentEvent = c.randomEvent()
	state.Stage = model.StagePlaying
	state.Pending = model.Pending{}

	c.logger.Info("suggestion resolved",
		slog.Int64("asker", int64(asker)),
		slog.Int64("answered_by", int64(suggestion.AnsweredBy)),
		slog.Int("round", state.Round),
	)

	return &Result{
		State:     state,
		Directive: model.Directive{Scene: model.SceneQuestionResult, Buttons: boardButtons("Roll Dice")},
		Revealed:  suggestion.Events,
	}
}

// resolveAccusation ends the game on a match; a miss costs one round
func (c *Controller) resolveAccusation(state *model.EngineState, triple model.Triple) *Result {
	state.Pending = model.Pending{}

	if c.resolver.Accuse(triple, *state.Solution) {
		state.Stage = model.StageSolved
		state.Outcome = model.OutcomeSolved
		c.logger.Info("case solved",
			slog.Int("round", state.Round),
			slog.Int("questions", len(state.QuestionLog)),
		)
		return &Result{State: state, Directive: c.solvedDirective(state)}
	}

	next, exhausted := c.rounds.Advance(state.Round, state.PlayerCount())
	state.Round = next
	if exhausted {
		return c.exhaust(state)
	}

	state.Stage = model.StagePlaying
	return &Result{
		State:     state,
		Directive: model.Directive{Scene: model.SceneWrongGuess, Buttons: boardButtons("Roll Dice")},
	}
}

func (c *Controller) exhaust(state *model.EngineState) *Result {
	state.Stage = model.StageGameOver
	state.Outcome = model.OutcomeOutOfRounds
	state.Pending = model.Pending{}

	c.logger.Info("game over: out of rounds",
		slog.Int("round", state.Round),
		slog.Int("max_rounds", c.MaxRounds(state)),
	)

	return &Result{State: state, Directive: gameOverDirective()}
}

// illegal shows the neutral title scene with the buttons that are valid right now
func (c *Controller) illegal(state *model.EngineState, action model.Action) *Result {
	c.logger.Warn("illegal action",
		slog.String("stage", string(state.Stage)),
		slog.Int("button", action.ButtonIndex),
		slog.String("error", model.ErrIllegalAction.Error()),
	)

	view := c.View(state)
	return &Result{
		State: state,
		Directive: model.Directive{
			Scene:     model.SceneTitle,
			Buttons:   view.Buttons,
			ShareText: view.ShareText,
		},
		Illegal: true,
	}
}

func (c *Controller) randomEvent() string {
	return model.RandomEvents[c.random.Intn(len(model.RandomEvents))]
}

func (c *Controller) solvedDirective(state *model.EngineState) model.Directive {
	d := model.Directive{
		Scene: model.SceneSolved,
		Buttons: []model.Button{
			model.PostButton("Play Again"),
			{Label: "Share Victory", Kind: model.ActionShare},
		},
	}
	if state.Solution != nil {
		d.ShareText = c.resolver.ShareText(*state.Solution)
	}
	return d
}

func titleDirective() model.Directive {
	return model.Directive{Scene: model.SceneTitle, Buttons: []model.Button{model.PostButton("Start Game")}}
}

func gameOverDirective() model.Directive {
	return model.Directive{Scene: model.SceneGameOver, Buttons: []model.Button{model.PostButton("Play Again")}}
}

func boardButtons(first string) []model.Button {
	return []model.Button{
		model.PostButton(first),
		model.PostButton("Suggest"),
		model.PostButton("Accuse"),
	}
}

// selectionDirective shows the current page of the next unfilled category
func selectionDirective(state *model.EngineState) model.Directive {
	cat, ok := state.Pending.NextCategory()
	if !ok {
		return model.Directive{Scene: model.SceneGameBoard, Buttons: boardButtons("Roll Dice")}
	}
	pages := pageCount(cat)
	page := state.Pending.Page % pages
	names := cat.Names()

	buttons := make([]model.Button, 0, OptionsPerPage+1)
	for i := page * OptionsPerPage; i < min((page+1)*OptionsPerPage, len(names)); i++ {
		buttons = append(buttons, model.PostButton(names[i]))
	}
	if pages > 1 {
		label := "More " + cat.Plural()
		if page == pages-1 {
			label = "Back"
		}
		buttons = append(buttons, model.PostButton(label))
	}

	return model.Directive{
		Scene:   model.SelectionScene(state.Stage, cat, page),
		Buttons: buttons,
	}
}

func pageCount(cat model.Category) int {
	return max(1, (cat.Size()+OptionsPerPage-1)/OptionsPerPage)
}
