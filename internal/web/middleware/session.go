package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jax2600/warpstery/internal/model"
	"github.com/jax2600/warpstery/internal/services/session"
)

type contextKey string

const (
	sessionContextKey contextKey = "session"
)

// GetSession retrieves the session loaded for this request
// Returns nil outside routes using LoadSession
func GetSession(ctx context.Context) *model.Session {
	s, _ := ctx.Value(sessionContextKey).(*model.Session)
	return s
}

// LoadSession returns middleware that loads the {id} session into the context.
// Unknown sessions redirect home with an error flash.
func LoadSession(sessions *session.Service, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := model.SessionID(mux.Vars(r)["id"])

			s, err := sessions.Get(r.Context(), id)
			if errors.Is(err, model.ErrSessionNotFound) {
				SetFlash(w, FlashError, "That game no longer exists")
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			if err != nil {
				logger.Error("failed to load session",
					slog.String("session_id", string(id)),
					slog.String("error", err.Error()),
				)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
