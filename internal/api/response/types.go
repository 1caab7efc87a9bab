package response

import (
	"time"

	"github.com/jax2600/warpstery/internal/frame"
	"github.com/jax2600/warpstery/internal/model"
	"github.com/jax2600/warpstery/internal/services/session"
)

// FrameResponse is returned to frame clients
type FrameResponse struct {
	Frame map[string]string `json:"frame"`
}

// FrameResponseFromMeta flattens frame metadata into its tag map
func FrameResponseFromMeta(m frame.Meta) FrameResponse {
	return FrameResponse{Frame: m.Map()}
}

// Button represents a directive button
type Button struct {
	Label string `json:"label"`
	Kind  string `json:"kind"`
}

// Directive represents what the client should display
type Directive struct {
	Scene     string   `json:"scene"`
	Image     string   `json:"image"`
	Buttons   []Button `json:"buttons"`
	ShareText string   `json:"share_text,omitempty"`
	ShareURL  string   `json:"share_url,omitempty"`
}

// DirectiveFromModel converts a model.Directive, resolving its image and share link
func DirectiveFromModel(d model.Directive, builder *frame.Builder) Directive {
	out := Directive{
		Scene:     string(d.Scene),
		Image:     builder.SceneImage(d.Scene),
		Buttons:   make([]Button, len(d.Buttons)),
		ShareText: d.ShareText,
	}
	for i, b := range d.Buttons {
		out.Buttons[i] = Button{Label: b.Label, Kind: string(b.Kind)}
	}
	if d.ShareText != "" {
		out.ShareURL = builder.ShareURL(d.ShareText)
	}
	return out
}

// Triple is a suspect, weapon and room by name
type Triple struct {
	Suspect string `json:"suspect"`
	Weapon  string `json:"weapon"`
	Room    string `json:"room"`
}

// TripleFromModel converts a model.Triple
func TripleFromModel(t model.Triple) Triple {
	suspect, weapon, room := t.Names()
	return Triple{Suspect: suspect, Weapon: weapon, Room: room}
}

// Card is a single card by name
type Card struct {
	Category string `json:"category"`
	Index    int    `json:"index"`
	Name     string `json:"name"`
}

// CardFromModel converts a model.Card
func CardFromModel(c model.Card) Card {
	return Card{Category: string(c.Category), Index: c.Index, Name: c.Name()}
}

// QuestionLogEntry represents a resolved suggestion
type QuestionLogEntry struct {
	Asker      string `json:"asker"`
	Suspect    string `json:"suspect"`
	Weapon     string `json:"weapon"`
	Room       string `json:"room"`
	AnsweredBy string `json:"answered_by"`
}

// QuestionLogFromModel converts the question log. Disclosed cards are left out;
// only the asker learns them, through notes.
func QuestionLogFromModel(entries []model.QuestionLogEntry) []QuestionLogEntry {
	out := make([]QuestionLogEntry, len(entries))
	for i, e := range entries {
		suspect, weapon, room := e.Triple().Names()
		out[i] = QuestionLogEntry{
			Asker:      e.Asker.Label(),
			Suspect:    suspect,
			Weapon:     weapon,
			Room:       room,
			AnsweredBy: e.AnsweredBy.Label(),
		}
	}
	return out
}

// Session represents a local session in API responses
type Session struct {
	ID           string             `json:"id"`
	Owner        int64              `json:"owner"`
	Stage        string             `json:"stage"`
	Outcome      string             `json:"outcome,omitempty"`
	Round        int                `json:"round"`
	MaxRounds    int                `json:"max_rounds"`
	FinalRound   bool               `json:"final_round"`
	CurrentEvent string             `json:"current_event,omitempty"`
	Hand         []Card             `json:"hand"`
	QuestionLog  []QuestionLogEntry `json:"question_log"`
	Solution     *Triple            `json:"solution,omitempty"`
	Directive    Directive          `json:"directive"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// SessionFromModel converts a model.Session. The solution is only shown once the game is over.
func SessionFromModel(s *model.Session, progress session.Progress, builder *frame.Builder) Session {
	out := Session{
		ID:           string(s.ID),
		Owner:        int64(s.Owner),
		Stage:        string(s.State.Stage),
		Outcome:      string(s.State.Outcome),
		Round:        progress.Round,
		MaxRounds:    progress.MaxRounds,
		FinalRound:   progress.FinalRound,
		CurrentEvent: s.State.CurrentEvent,
		Hand:         []Card{},
		QuestionLog:  QuestionLogFromModel(s.State.QuestionLog),
		Directive:    DirectiveFromModel(s.Directive, builder),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
	if hand, ok := s.State.Hands[s.Owner]; ok {
		for _, c := range hand.Cards() {
			out.Hand = append(out.Hand, CardFromModel(c))
		}
	}
	if s.State.Stage.IsTerminal() && s.State.Solution != nil {
		sol := TripleFromModel(*s.State.Solution)
		out.Solution = &sol
	}
	return out
}

// Revealed is a card shown to the session owner
type Revealed struct {
	Card       Card   `json:"card"`
	RevealedBy string `json:"revealed_by"`
}

// ActionResponse is the response for pressing a button
type ActionResponse struct {
	Session  Session    `json:"session"`
	Revealed []Revealed `json:"revealed"`
	Illegal  bool       `json:"illegal"`
}

// ActionResponseFromResult converts a session.ActResult
func ActionResponseFromResult(r *session.ActResult, progress session.Progress, builder *frame.Builder) ActionResponse {
	out := ActionResponse{
		Session:  SessionFromModel(r.Session, progress, builder),
		Revealed: make([]Revealed, len(r.Revealed)),
		Illegal:  r.Illegal,
	}
	for i, e := range r.Revealed {
		out.Revealed[i] = Revealed{Card: CardFromModel(e.Card), RevealedBy: e.RevealedBy.Label()}
	}
	return out
}

// SessionList is the response for listing a player's sessions
type SessionList struct {
	Sessions []string `json:"sessions"`
}

// NoteEntry is one card on the detective sheet
type NoteEntry struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Mark  string `json:"mark"`
}

// Notes represents the detective sheet
type Notes struct {
	Owner    int64       `json:"owner"`
	Suspects []NoteEntry `json:"suspects"`
	Weapons  []NoteEntry `json:"weapons"`
	Rooms    []NoteEntry `json:"rooms"`
	Text     string      `json:"text"`
}

// NotesFromModel converts model.Notes
func NotesFromModel(n model.Notes) Notes {
	entries := func(c model.Category) []NoteEntry {
		out := make([]NoteEntry, c.Size())
		for i := range out {
			card := model.Card{Category: c, Index: i}
			out[i] = NoteEntry{Index: i, Name: card.Name(), Mark: string(n.Get(card))}
		}
		return out
	}
	return Notes{
		Owner:    int64(n.Owner),
		Suspects: entries(model.CategorySuspect),
		Weapons:  entries(model.CategoryWeapon),
		Rooms:    entries(model.CategoryRoom),
		Text:     n.Text,
	}
}

// Health is the response for the health check
type Health struct {
	Status string `json:"status"`
}
