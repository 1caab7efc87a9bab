package frame

import (
	"errors"
	"log/slog"

	"github.com/jax2600/warpstery/internal/model"
	"github.com/jax2600/warpstery/internal/services/codec"
	"github.com/jax2600/warpstery/internal/services/game"
)

// Adapter runs the engine statelessly; every press carries its own encoded state
type Adapter struct {
	controller *game.Controller
	codec      *codec.Codec
	builder    *Builder
	logger     *slog.Logger
}

// NewAdapter creates a new frame Adapter
func NewAdapter(controller *game.Controller, codec *codec.Codec, builder *Builder, logger *slog.Logger) *Adapter {
	return &Adapter{
		controller: controller,
		codec:      codec,
		builder:    builder,
		logger:     logger,
	}
}

// Initial returns the title frame for a brand new game
func (a *Adapter) Initial() (Meta, error) {
	state := model.NewEngineState()
	return a.builder.Build(a.controller.View(state), state)
}

// Press applies one button press to the state in token.
// An empty or undecodable token starts from a fresh lobby.
func (a *Adapter) Press(action model.Action, token string) (Meta, error) {
	state := a.decode(token)

	result, err := a.controller.Apply(state, action)
	if errors.Is(err, model.ErrInvalidPlayerCount) {
		a.logger.Warn("frame press could not start a game",
			slog.Int64("player_id", int64(action.PlayerID)),
			slog.String("error", err.Error()),
		)
		return a.builder.Build(model.ErrorDirective(), state)
	}
	if err != nil {
		return Meta{}, err
	}

	return a.builder.Build(result.Directive, result.State)
}

func (a *Adapter) decode(token string) *model.EngineState {
	if token == "" {
		return model.NewEngineState()
	}
	state, err := a.codec.Decode(token)
	if err != nil {
		a.logger.Warn("discarding frame state",
			slog.String("error", err.Error()),
		)
		return model.NewEngineState()
	}
	return state
}
