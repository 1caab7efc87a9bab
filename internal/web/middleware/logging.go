package middleware

import (
	"log/slog"
	"net/http"

	"github.com/jax2600/warpstery/internal/middleware"
)

// Logging creates logging middleware for the web interface
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("surface", "web")))
}

// RequestID tags each web request with an id for log correlation
func RequestID() func(http.Handler) http.Handler {
	return middleware.RequestID()
}
