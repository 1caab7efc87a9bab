package model

// Mark is a detective-notes annotation on a single card
type Mark string

const (
	MarkNone      Mark = "none"
	MarkMaybe     Mark = "maybe"
	MarkConfirmed Mark = "confirmed"
	MarkX         Mark = "x"
	MarkYours     Mark = "yours" // Card is in the owner's hand; never cycled
)

// Next returns the mark that follows m when cycled by hand
func (m Mark) Next() Mark {
	switch m {
	case MarkNone:
		return MarkMaybe
	case MarkMaybe:
		return MarkConfirmed
	case MarkConfirmed:
		return MarkX
	case MarkX:
		return MarkNone
	default:
		return m
	}
}

// Notes is one player's detective sheet
type Notes struct {
	Owner    PlayerID `json:"owner"`
	Suspects []Mark   `json:"suspects"`
	Weapons  []Mark   `json:"weapons"`
	Rooms    []Mark   `json:"rooms"`
	Text     string   `json:"text,omitempty"`
}

// Marks returns the mark slice for a category
func (n *Notes) Marks(c Category) []Mark {
	switch c {
	case CategorySuspect:
		return n.Suspects
	case CategoryWeapon:
		return n.Weapons
	case CategoryRoom:
		return n.Rooms
	default:
		return nil
	}
}

// Get returns the mark for a card, or MarkNone if the card is invalid
func (n *Notes) Get(c Card) Mark {
	marks := n.Marks(c.Category)
	if c.Index < 0 || c.Index >= len(marks) {
		return MarkNone
	}
	return marks[c.Index]
}
