package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/jax2600/warpstery/internal/api/apierr"
	"github.com/jax2600/warpstery/internal/api/handler"
	"github.com/jax2600/warpstery/internal/api/middleware"
	"github.com/jax2600/warpstery/internal/api/response"
	"github.com/jax2600/warpstery/internal/frame"
	"github.com/jax2600/warpstery/internal/services/session"
)

type RouterConfig struct {
	Logger         *slog.Logger
	FrameAdapter   *frame.Adapter
	FrameBuilder   *frame.Builder
	SessionService *session.Service

	// AllowedOrigins may post frames cross-origin; empty allows any origin
	AllowedOrigins []string
}

// NewRouter serves the stateless frame endpoint under /api/frames and the
// session API under /api/v1
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	})

	common := []mux.MiddlewareFunc{
		middleware.RequestID(),
		middleware.Recovery(cfg.Logger),
		middleware.Logging(cfg.Logger),
	}

	frames := handler.NewFrameHandler(cfg.FrameAdapter)
	fr := r.PathPrefix("/api/frames").Subrouter()
	fr.Use(common...)
	fr.Use(frameCORS(cfg.AllowedOrigins))
	fr.HandleFunc("", frames.Get).Methods(http.MethodGet)
	fr.HandleFunc("", frames.Post).Methods(http.MethodPost, http.MethodOptions)

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.Use(common...)
	v1.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	sessions := handler.NewSessionHandler(cfg.SessionService, cfg.FrameBuilder)
	sr := v1.PathPrefix("/sessions").Subrouter()
	sr.HandleFunc("", sessions.Create).Methods(http.MethodPost)
	sr.HandleFunc("", sessions.List).Methods(http.MethodGet)
	sr.HandleFunc("/{id}", sessions.Get).Methods(http.MethodGet)
	sr.HandleFunc("/{id}", sessions.Delete).Methods(http.MethodDelete)
	sr.HandleFunc("/{id}/actions", sessions.Act).Methods(http.MethodPost)
	sr.HandleFunc("/{id}/notes", sessions.Notes).Methods(http.MethodGet)
	sr.HandleFunc("/{id}/notes/text", sessions.SetNoteText).Methods(http.MethodPut)
	sr.HandleFunc("/{id}/notes/{category}/{index:[0-9]+}/cycle", sessions.CycleNote).Methods(http.MethodPost)

	return r
}

// frameCORS lets frame clients hosted elsewhere post button presses
func frameCORS(origins []string) mux.MiddlewareFunc {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", middleware.RequestIDHeader}),
		handlers.ExposedHeaders([]string{middleware.RequestIDHeader}),
	)
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
