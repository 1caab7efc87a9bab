package middleware

import (
	"log/slog"
	"net/http"

	"github.com/jax2600/warpstery/internal/middleware"
)

// Logging creates request logging middleware for the API
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("surface", "api")))
}

// RequestID tags each API request with an id for log correlation
func RequestID() func(http.Handler) http.Handler {
	return middleware.RequestID()
}

// RequestIDHeader is echoed on every API response
const RequestIDHeader = middleware.RequestIDHeader
