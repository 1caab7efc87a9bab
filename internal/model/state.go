package model

import "slices"

// Stage represents the current phase of the state machine
type Stage string

const (
	StageLobby       Stage = "lobby"       // Waiting for someone to start
	StagePlaying     Stage = "playing"     // Board shown, roll/suggest/accuse offered
	StageQuestioning Stage = "questioning" // Collecting a suggestion
	StageGuessing    Stage = "guessing"    // Collecting an accusation
	StageSolved      Stage = "solved"      // Correct accusation made
	StageGameOver    Stage = "game_over"   // Round cap exhausted
)

// Valid reports whether s is a known stage
func (s Stage) Valid() bool {
	switch s {
	case StageLobby, StagePlaying, StageQuestioning, StageGuessing, StageSolved, StageGameOver:
		return true
	}
	return false
}

// IsTerminal reports whether the stage ends the game
func (s Stage) IsTerminal() bool {
	return s == StageSolved || s == StageGameOver
}

// Outcome records why a game ended
type Outcome string

const (
	OutcomeNone        Outcome = ""
	OutcomeSolved      Outcome = "solved"
	OutcomeOutOfRounds Outcome = "out_of_rounds"
)

// Hand is the set of card indices a player holds, per category
type Hand struct {
	Suspects []int `json:"suspects"`
	Weapons  []int `json:"weapons"`
	Rooms    []int `json:"rooms"`
}

// Add returns a copy of the hand with the card appended
func (h Hand) Add(c Card) Hand {
	out := h.Clone()
	switch c.Category {
	case CategorySuspect:
		out.Suspects = append(out.Suspects, c.Index)
	case CategoryWeapon:
		out.Weapons = append(out.Weapons, c.Index)
	case CategoryRoom:
		out.Rooms = append(out.Rooms, c.Index)
	}
	return out
}

// Holds reports whether the hand contains the card
func (h Hand) Holds(c Card) bool {
	switch c.Category {
	case CategorySuspect:
		return slices.Contains(h.Suspects, c.Index)
	case CategoryWeapon:
		return slices.Contains(h.Weapons, c.Index)
	case CategoryRoom:
		return slices.Contains(h.Rooms, c.Index)
	}
	return false
}

// Cards returns the hand flattened in category order
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.Size())
	for _, i := range h.Suspects {
		cards = append(cards, Card{Category: CategorySuspect, Index: i})
	}
	for _, i := range h.Weapons {
		cards = append(cards, Card{Category: CategoryWeapon, Index: i})
	}
	for _, i := range h.Rooms {
		cards = append(cards, Card{Category: CategoryRoom, Index: i})
	}
	return cards
}

// Size returns the number of cards held
func (h Hand) Size() int {
	return len(h.Suspects) + len(h.Weapons) + len(h.Rooms)
}

// Clone returns a deep copy of the hand
func (h Hand) Clone() Hand {
	return Hand{
		Suspects: slices.Clone(h.Suspects),
		Weapons:  slices.Clone(h.Weapons),
		Rooms:    slices.Clone(h.Rooms),
	}
}

// Hands maps each seated player to their dealt cards
type Hands map[PlayerID]Hand

// Holder returns the player holding the card, or NoOne
func (h Hands) Holder(c Card) PlayerID {
	for id, hand := range h {
		if hand.Holds(c) {
			return id
		}
	}
	return NoOne
}

// Clone returns a deep copy of the mapping
func (h Hands) Clone() Hands {
	if h == nil {
		return nil
	}
	out := make(Hands, len(h))
	for id, hand := range h {
		out[id] = hand.Clone()
	}
	return out
}

// QuestionLogEntry is a resolved suggestion; never modified after it is appended
type QuestionLogEntry struct {
	Asker      PlayerID `json:"asker"`
	Suspect    int      `json:"suspect"`
	Weapon     int      `json:"weapon"`
	Room       int      `json:"room"`
	AnsweredBy PlayerID `json:"answered_by"`
	Disclosed  *Card    `json:"disclosed,omitempty"`
}

// Triple returns the suggested cards
func (e QuestionLogEntry) Triple() Triple {
	return Triple{Suspect: e.Suspect, Weapon: e.Weapon, Room: e.Room}
}

// Pending holds the scratch selections of a suggestion or accusation dialogue
type Pending struct {
	Suspect *int `json:"suspect,omitempty"`
	Weapon  *int `json:"weapon,omitempty"`
	Room    *int `json:"room,omitempty"`
	Page    int  `json:"page,omitempty"`
}

// NextCategory returns the first category not yet selected, or false when complete
func (p Pending) NextCategory() (Category, bool) {
	switch {
	case p.Suspect == nil:
		return CategorySuspect, true
	case p.Weapon == nil:
		return CategoryWeapon, true
	case p.Room == nil:
		return CategoryRoom, true
	}
	return "", false
}

// Set records a selection for the category and resets pagination
func (p *Pending) Set(c Category, index int) {
	v := index
	switch c {
	case CategorySuspect:
		p.Suspect = &v
	case CategoryWeapon:
		p.Weapon = &v
	case CategoryRoom:
		p.Room = &v
	}
	p.Page = 0
}

// Triple returns the completed selection; ok is false while any slot is empty
func (p Pending) Triple() (Triple, bool) {
	if p.Suspect == nil || p.Weapon == nil || p.Room == nil {
		return Triple{}, false
	}
	return Triple{Suspect: *p.Suspect, Weapon: *p.Weapon, Room: *p.Room}, true
}

// EngineState is the whole mutable aggregate of one game
type EngineState struct {
	Stage        Stage              `json:"stage"`
	Round        int                `json:"round"`
	Players      []PlayerID         `json:"players"`
	Seating      []PlayerID         `json:"seating,omitempty"`
	Hands        Hands              `json:"hands,omitempty"`
	Solution     *Triple            `json:"solution,omitempty"`
	QuestionLog  []QuestionLogEntry `json:"question_log,omitempty"`
	CurrentEvent string             `json:"current_event,omitempty"`
	Revealed     []Card             `json:"revealed,omitempty"`
	Outcome      Outcome            `json:"outcome,omitempty"`
	Pending      Pending            `json:"pending"`
}

// NewEngineState returns a fresh lobby state
func NewEngineState() *EngineState {
	return &EngineState{
		Stage:   StageLobby,
		Players: []PlayerID{},
	}
}

// HasPlayer reports whether the player has joined
func (s *EngineState) HasPlayer(id PlayerID) bool {
	return slices.Contains(s.Players, id)
}

// Join appends the player if not already present; the list is append-only
func (s *EngineState) Join(id PlayerID) bool {
	if !id.IsReal() || s.HasPlayer(id) {
		return false
	}
	s.Players = append(s.Players, id)
	return true
}

// PlayerCount returns the number of real players
func (s *EngineState) PlayerCount() int {
	return len(s.Players)
}

// Clone returns a deep copy so that callers never alias a previous state
func (s *EngineState) Clone() *EngineState {
	out := *s
	out.Players = slices.Clone(s.Players)
	out.Seating = slices.Clone(s.Seating)
	out.Hands = s.Hands.Clone()
	if s.Solution != nil {
		sol := *s.Solution
		out.Solution = &sol
	}
	out.QuestionLog = slices.Clone(s.QuestionLog)
	out.Revealed = slices.Clone(s.Revealed)
	out.Pending = clonePending(s.Pending)
	return &out
}

// IsRevealed reports whether the card was disclosed earlier in the game
func (s *EngineState) IsRevealed(c Card) bool {
	return slices.Contains(s.Revealed, c)
}

func clonePending(p Pending) Pending {
	out := Pending{Page: p.Page}
	if p.Suspect != nil {
		v := *p.Suspect
		out.Suspect = &v
	}
	if p.Weapon != nil {
		v := *p.Weapon
		out.Weapon = &v
	}
	if p.Room != nil {
		v := *p.Room
		out.Room = &v
	}
	return out
}
