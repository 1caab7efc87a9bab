package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jax2600/warpstery/internal/frame"
	"github.com/jax2600/warpstery/internal/model"
	"github.com/jax2600/warpstery/internal/services/session"
	"github.com/jax2600/warpstery/internal/web/middleware"
	"github.com/jax2600/warpstery/internal/web/pages"
)

// HomeHandler handles the frame entry page and starting local games
type HomeHandler struct {
	adapter  *frame.Adapter
	sessions *session.Service
	logger   *slog.Logger
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(adapter *frame.Adapter, sessions *session.Service, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{
		adapter:  adapter,
		sessions: sessions,
		logger:   logger,
	}
}

// Home renders the home page, which doubles as the frame entry point
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	meta, err := h.adapter.Initial()
	if err != nil {
		h.logger.Error("failed to build title frame", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pages.HomeData{
		PageData: pages.PageData{
			Title: "Home",
			Flash: middleware.GetFlash(r.Context()),
			Frame: meta.Tags(),
		},
		Image: meta.Image,
	}

	render(w, r, http.StatusOK, pages.Home(data))
}

// NewSession handles POST /play
func (h *HomeHandler) NewSession(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		redirect(w, r, "/")
		return
	}

	playerID, err := strconv.ParseInt(r.FormValue("player_id"), 10, 64)
	if err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Player id must be a number")
		redirect(w, r, "/")
		return
	}

	s, err := h.sessions.Create(r.Context(), model.PlayerID(playerID))
	if err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Could not start a game: player id must be positive")
		redirect(w, r, "/")
		return
	}

	redirect(w, r, "/play/"+string(s.ID))
}
