package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// PanicHandler renders the response after a handler panicked
type PanicHandler func(w http.ResponseWriter, r *http.Request, err any)

// Recovery turns a handler panic into a logged error and a rendered
// response, leaving the server running.
func Recovery(logger *slog.Logger, render PanicHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if p == http.ErrAbortHandler {
					panic(p)
				}
				attrs := append(requestAttrs(r),
					slog.Any("error", p),
					slog.String("stack", string(debug.Stack())),
				)
				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)
				render(w, r, p)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
