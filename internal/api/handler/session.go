package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jax2600/warpstery/internal/api/request"
	"github.com/jax2600/warpstery/internal/api/response"
	"github.com/jax2600/warpstery/internal/frame"
	"github.com/jax2600/warpstery/internal/model"
	"github.com/jax2600/warpstery/internal/services/session"
)

// SessionHandler handles local session endpoints
type SessionHandler struct {
	sessions *session.Service
	builder  *frame.Builder
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *session.Service, builder *frame.Builder) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		builder:  builder,
	}
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(mux.Vars(r)["id"])
}

func (h *SessionHandler) toResponse(s *model.Session) response.Session {
	return response.SessionFromModel(s, h.sessions.Progress(s), h.builder)
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	s, err := h.sessions.Create(r.Context(), model.PlayerID(req.PlayerID))
	if err != nil {
		writeError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, h.toResponse(s))
}

// List handles GET /api/v1/sessions?owner={player_id}
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, err := strconv.ParseInt(r.URL.Query().Get("owner"), 10, 64)
	if err != nil {
		badRequest(w, "owner must be a player id")
		return
	}

	ids, err := h.sessions.List(r.Context(), model.PlayerID(owner))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := response.SessionList{Sessions: make([]string, len(ids))}
	for i, id := range ids {
		resp.Sessions[i] = string(id)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Get(r.Context(), sessionID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.toResponse(s))
}

// Delete handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(r.Context(), sessionID(r)); err != nil {
		writeError(w, err)
		return
	}

	response.NoContent(w)
}

// Act handles POST /api/v1/sessions/{id}/actions
func (h *SessionHandler) Act(w http.ResponseWriter, r *http.Request) {
	var req request.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.ButtonIndex < 1 {
		badRequest(w, "button_index must be at least 1")
		return
	}

	result, err := h.sessions.Act(r.Context(), sessionID(r), req.ButtonIndex, req.InputText)
	if err != nil {
		writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ActionResponseFromResult(result, h.sessions.Progress(result.Session), h.builder))
}

// Notes handles GET /api/v1/sessions/{id}/notes
func (h *SessionHandler) Notes(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Get(r.Context(), sessionID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.NotesFromModel(s.Notes))
}

// CycleNote handles POST /api/v1/sessions/{id}/notes/{category}/{index}/cycle
func (h *SessionHandler) CycleNote(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	category, err := model.ParseCategory(vars["category"])
	if err != nil {
		writeError(w, err)
		return
	}
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		badRequest(w, "index must be an integer")
		return
	}

	s, err := h.sessions.CycleNote(r.Context(), sessionID(r), model.Card{Category: category, Index: index})
	if err != nil {
		writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.NotesFromModel(s.Notes))
}

// SetNoteText handles PUT /api/v1/sessions/{id}/notes/text
func (h *SessionHandler) SetNoteText(w http.ResponseWriter, r *http.Request) {
	var req request.NotesTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	s, err := h.sessions.SetNoteText(r.Context(), sessionID(r), req.Text)
	if err != nil {
		writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.NotesFromModel(s.Notes))
}
