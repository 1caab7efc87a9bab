package web

import (
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"github.com/jax2600/warpstery/internal/frame"
	"github.com/jax2600/warpstery/internal/services/session"
	"github.com/jax2600/warpstery/internal/web/handler"
	"github.com/jax2600/warpstery/internal/web/middleware"
)

type RouterConfig struct {
	Logger         *slog.Logger
	FrameAdapter   *frame.Adapter
	FrameBuilder   *frame.Builder
	SessionService *session.Service

	// StaticDir holds stylesheets and, under images/, the scene PNGs the
	// frame metadata points at. Empty disables file serving.
	StaticDir string
}

// NewRouter serves the frame entry page and the browser play pages
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestID(), middleware.Recovery(cfg.Logger), middleware.Logging(cfg.Logger))

	if cfg.StaticDir != "" {
		mountDir(r, "/static/", cfg.StaticDir)
		mountDir(r, "/images/", filepath.Join(cfg.StaticDir, "images"))
	}

	home := handler.NewHomeHandler(cfg.FrameAdapter, cfg.SessionService, cfg.Logger)
	play := handler.NewPlayHandler(cfg.SessionService, cfg.FrameBuilder, cfg.Logger)

	public := r.NewRoute().Subrouter()
	public.Use(middleware.Flash())
	public.HandleFunc("/", home.Home).Methods(http.MethodGet)
	public.HandleFunc("/play", home.NewSession).Methods(http.MethodPost)

	// Everything under /play/{id} has the session loaded into the context
	game := r.PathPrefix("/play/{id}").Subrouter()
	game.Use(middleware.Flash(), middleware.LoadSession(cfg.SessionService, cfg.Logger))
	game.HandleFunc("", play.View).Methods(http.MethodGet)
	game.HandleFunc("/press", play.Press).Methods(http.MethodPost)
	game.HandleFunc("/notes/text", play.SaveNotes).Methods(http.MethodPost)
	game.HandleFunc("/notes/{category}/{index:[0-9]+}", play.CycleNote).Methods(http.MethodPost)
	game.HandleFunc("/delete", play.Delete).Methods(http.MethodPost)

	return r
}

func mountDir(r *mux.Router, prefix, dir string) {
	r.PathPrefix(prefix).Handler(http.StripPrefix(prefix, http.FileServer(http.Dir(dir))))
}
