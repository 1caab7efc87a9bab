package resolver

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/jax2600/warpstery/internal/model"
)

// Suggestion is the outcome of resolving a suggestion
type Suggestion struct {
	AnsweredBy model.PlayerID
	Disclosed  *model.Card
	Events     []model.CardRevealed
}

// Service evaluates suggestions and accusations
type Service struct {
	logger *slog.Logger
}

// New creates a new resolver Service
func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// Suggest finds the single card disclosed in response to a suggestion.
// Categories are checked suspect, weapon, room; within a category the seating
// is scanned starting after the asker. The asker never answers their own suggestion.
func (s *Service) Suggest(asker model.PlayerID, triple model.Triple, seating []model.PlayerID, hands model.Hands) Suggestion {
	order := answerOrder(asker, seating, hands)

	for _, card := range triple.Cards() {
		for _, id := range order {
			if !hands[id].Holds(card) {
				continue
			}
			disclosed := card
			s.logger.Debug("suggestion refuted",
				slog.Int64("asker", int64(asker)),
				slog.Int64("answered_by", int64(id)),
				slog.String("category", string(card.Category)),
			)
			return Suggestion{
				AnsweredBy: id,
				Disclosed:  &disclosed,
				Events: []model.CardRevealed{{
					Card:       card,
					RevealedTo: asker,
					RevealedBy: id,
				}},
			}
		}
	}

	return Suggestion{AnsweredBy: model.NoOne}
}

// Accuse reports whether the accusation matches the solution exactly
func (s *Service) Accuse(triple model.Triple, solution model.Triple) bool {
	return triple == solution
}

// ShareText returns the victory message for a solved case
func (s *Service) ShareText(solution model.Triple) string {
	suspect, weapon, room := solution.Names()
	return fmt.Sprintf("I solved the Warpstery case in the Farverse! The culprit was %s with the %s in the %s", suspect, weapon, room)
}

// answerOrder returns every holder except the asker, starting with the seat after the asker.
// Holders missing from the seating are appended in ascending id order.
func answerOrder(asker model.PlayerID, seating []model.PlayerID, hands model.Hands) []model.PlayerID {
	order := make([]model.PlayerID, 0, len(hands))
	start := slices.Index(seating, asker) + 1
	for i := range seating {
		id := seating[(start+i)%len(seating)]
		if id != asker {
			order = append(order, id)
		}
	}

	var extra []model.PlayerID
	for id := range hands {
		if id != asker && !slices.Contains(order, id) {
			extra = append(extra, id)
		}
	}
	slices.Sort(extra)
	return append(order, extra...)
}
