package notes

import (
	"github.com/jax2600/warpstery/internal/model"
)

// Service maintains detective notes from dealt hands and revealed cards
type Service struct{}

// New creates a new notes Service
func New() *Service {
	return &Service{}
}

// Fresh returns a blank sheet with the owner's own cards marked
func (s *Service) Fresh(owner model.PlayerID, hand model.Hand) model.Notes {
	n := model.Notes{
		Owner:    owner,
		Suspects: blank(len(model.Suspects)),
		Weapons:  blank(len(model.Weapons)),
		Rooms:    blank(len(model.Rooms)),
	}
	for _, c := range hand.Cards() {
		n.Marks(c.Category)[c.Index] = model.MarkYours
	}
	return n
}

// Apply marks every card revealed to the owner as eliminated
func (s *Service) Apply(n model.Notes, events []model.CardRevealed) model.Notes {
	out := clone(n)
	for _, e := range events {
		if e.RevealedTo != out.Owner || !e.Card.Valid() {
			continue
		}
		marks := out.Marks(e.Card.Category)
		if marks[e.Card.Index] != model.MarkYours {
			marks[e.Card.Index] = model.MarkX
		}
	}
	return out
}

// Cycle advances the mark on a card. The owner's own cards cannot be changed.
func (s *Service) Cycle(n model.Notes, card model.Card) (model.Notes, error) {
	if !card.Valid() {
		return n, model.ErrInvalidCard
	}
	out := clone(n)
	marks := out.Marks(card.Category)
	marks[card.Index] = marks[card.Index].Next()
	return out, nil
}

// SetText replaces the free-form notes
func (s *Service) SetText(n model.Notes, text string) model.Notes {
	out := clone(n)
	out.Text = text
	return out
}

func blank(n int) []model.Mark {
	marks := make([]model.Mark, n)
	for i := range marks {
		marks[i] = model.MarkNone
	}
	return marks
}

func clone(n model.Notes) model.Notes {
	out := n
	out.Suspects = append([]model.Mark(nil), n.Suspects...)
	out.Weapons = append([]model.Mark(nil), n.Weapons...)
	out.Rooms = append([]model.Mark(nil), n.Rooms...)
	if len(out.Suspects) != len(model.Suspects) {
		out.Suspects = blank(len(model.Suspects))
	}
	if len(out.Weapons) != len(model.Weapons) {
		out.Weapons = blank(len(model.Weapons))
	}
	if len(out.Rooms) != len(model.Rooms) {
		out.Rooms = blank(len(model.Rooms))
	}
	return out
}
