package model

// CardRevealed is returned by the resolver whenever a card is disclosed.
// Renderers of detective notes consume these directly.
type CardRevealed struct {
	Card       Card     `json:"card"`
	RevealedTo PlayerID `json:"revealed_to"`
	RevealedBy PlayerID `json:"revealed_by"`
}
