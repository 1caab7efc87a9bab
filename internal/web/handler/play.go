package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/jax2600/warpstery/internal/frame"
	"github.com/jax2600/warpstery/internal/model"
	"github.com/jax2600/warpstery/internal/services/session"
	"github.com/jax2600/warpstery/internal/web/middleware"
	"github.com/jax2600/warpstery/internal/web/pages"
)

// PlayHandler serves local sessions
type PlayHandler struct {
	sessions *session.Service
	builder  *frame.Builder
	logger   *slog.Logger
}

// NewPlayHandler creates a new PlayHandler
func NewPlayHandler(sessions *session.Service, builder *frame.Builder, logger *slog.Logger) *PlayHandler {
	return &PlayHandler{
		sessions: sessions,
		builder:  builder,
		logger:   logger,
	}
}

func playPath(id model.SessionID) string {
	return "/play/" + string(id)
}

// View renders GET /play/{id}
func (h *PlayHandler) View(w http.ResponseWriter, r *http.Request) {
	s := middleware.GetSession(r.Context())
	render(w, r, http.StatusOK, pages.Play(h.playData(r, s)))
}

// Press handles POST /play/{id}/press
func (h *PlayHandler) Press(w http.ResponseWriter, r *http.Request) {
	s := middleware.GetSession(r.Context())

	button, err := strconv.Atoi(r.FormValue("button"))
	if err != nil || button < 1 {
		middleware.SetFlash(w, middleware.FlashError, "Unknown button")
		redirect(w, r, playPath(s.ID))
		return
	}

	result, err := h.sessions.Act(r.Context(), s.ID, button, r.FormValue("input_text"))
	if err != nil {
		h.fail(w, r, s.ID, err)
		return
	}

	switch {
	case result.Illegal:
		middleware.SetFlash(w, middleware.FlashInfo, "That move isn't available right now")
	case len(result.Revealed) > 0:
		shown := make([]string, 0, len(result.Revealed))
		for _, e := range result.Revealed {
			shown = append(shown, fmt.Sprintf("%s showed you %s", e.RevealedBy.Label(), e.Card.Name()))
		}
		middleware.SetFlash(w, middleware.FlashSuccess, strings.Join(shown, "; "))
	}
	redirect(w, r, playPath(s.ID))
}

// CycleNote handles POST /play/{id}/notes/{category}/{index}
func (h *PlayHandler) CycleNote(w http.ResponseWriter, r *http.Request) {
	s := middleware.GetSession(r.Context())
	vars := mux.Vars(r)

	category, err := model.ParseCategory(vars["category"])
	if err != nil {
		h.fail(w, r, s.ID, err)
		return
	}
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		h.fail(w, r, s.ID, model.ErrInvalidCard)
		return
	}

	if _, err := h.sessions.CycleNote(r.Context(), s.ID, model.Card{Category: category, Index: index}); err != nil {
		h.fail(w, r, s.ID, err)
		return
	}
	redirect(w, r, playPath(s.ID))
}

// SaveNotes handles POST /play/{id}/notes/text
func (h *PlayHandler) SaveNotes(w http.ResponseWriter, r *http.Request) {
	s := middleware.GetSession(r.Context())

	if _, err := h.sessions.SetNoteText(r.Context(), s.ID, r.FormValue("text")); err != nil {
		h.fail(w, r, s.ID, err)
		return
	}
	middleware.SetFlash(w, middleware.FlashSuccess, "Notes saved")
	redirect(w, r, playPath(s.ID))
}

// Delete handles POST /play/{id}/delete
func (h *PlayHandler) Delete(w http.ResponseWriter, r *http.Request) {
	s := middleware.GetSession(r.Context())

	if err := h.sessions.Delete(r.Context(), s.ID); err != nil && !errors.Is(err, model.ErrSessionNotFound) {
		h.fail(w, r, s.ID, err)
		return
	}
	middleware.SetFlash(w, middleware.FlashInfo, "Game abandoned")
	redirect(w, r, "/")
}

func (h *PlayHandler) fail(w http.ResponseWriter, r *http.Request, id model.SessionID, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidCard):
		middleware.SetFlash(w, middleware.FlashError, "Unknown card")
	case errors.Is(err, model.ErrSessionNotFound):
		middleware.SetFlash(w, middleware.FlashError, "That game no longer exists")
		redirect(w, r, "/")
		return
	default:
		h.logger.Error("session request failed",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		middleware.SetFlash(w, middleware.FlashError, "Something went wrong")
	}
	redirect(w, r, playPath(id))
}

func (h *PlayHandler) playData(r *http.Request, s *model.Session) pages.PlayData {
	progress := h.sessions.Progress(s)
	d := s.Directive

	data := pages.PlayData{
		PageData: pages.PageData{
			Title: "Case " + string(s.ID),
			Flash: middleware.GetFlash(r.Context()),
		},
		SessionID:    string(s.ID),
		Stage:        string(s.State.Stage),
		Image:        h.builder.SceneImage(d.Scene),
		Round:        progress.Round,
		MaxRounds:    progress.MaxRounds,
		FinalRound:   progress.FinalRound,
		CurrentEvent: s.State.CurrentEvent,
		NotesText:    s.Notes.Text,
	}
	if d.ShareText != "" {
		data.ShareURL = h.builder.ShareURL(d.ShareText)
	}

	for i, b := range d.Buttons {
		data.Buttons = append(data.Buttons, pages.Button{Index: i + 1, Label: b.Label, Share: b.Kind == model.ActionShare})
	}

	if hand, ok := s.State.Hands[s.Owner]; ok {
		for _, c := range hand.Cards() {
			data.Hand = append(data.Hand, c.Name())
		}
	}

	for _, e := range s.State.QuestionLog {
		suspect, weapon, room := e.Triple().Names()
		data.Log = append(data.Log, pages.LogRow{
			Asker:      e.Asker.Label(),
			Suggestion: fmt.Sprintf("%s with the %s in the %s", suspect, weapon, room),
			AnsweredBy: e.AnsweredBy.Label(),
		})
	}

	for _, c := range model.Categories {
		section := pages.NoteSection{Title: c.Plural()}
		for i, name := range c.Names() {
			card := model.Card{Category: c, Index: i}
			section.Cells = append(section.Cells, pages.NoteCell{
				Category: string(c),
				Index:    i,
				Name:     name,
				Mark:     string(s.Notes.Get(card)),
			})
		}
		data.Notes = append(data.Notes, section)
	}

	if s.State.Stage.IsTerminal() && s.State.Solution != nil {
		suspect, weapon, room := s.State.Solution.Names()
		data.Solution = fmt.Sprintf("It was %s with the %s in the %s", suspect, weapon, room)
	}

	return data
}
