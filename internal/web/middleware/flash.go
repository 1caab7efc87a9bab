package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jax2600/warpstery/internal/web/pages"
)

// Flash kinds, used as CSS modifiers on the notice
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

const flashCookie = "warpstery_flash"

type flashKey struct{}

// GetFlash returns the notice carried into this request, or nil
func GetFlash(ctx context.Context) *pages.FlashMessage {
	f, _ := ctx.Value(flashKey{}).(*pages.FlashMessage)
	return f
}

// SetFlash queues a notice for the page the client lands on next.
// A later call in the same response replaces an earlier one.
func SetFlash(w http.ResponseWriter, kind, message string) {
	v := url.Values{"k": {kind}, "m": {message}}
	http.SetCookie(w, flashCookieWith(v.Encode(), 60))
}

// Flash moves a queued notice from its cookie into the request context
// and expires the cookie, so each notice is shown once.
func Flash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(flashCookie)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			http.SetCookie(w, flashCookieWith("", -1))
			ctx := r.Context()
			if f := decodeFlash(c.Value); f != nil {
				ctx = context.WithValue(ctx, flashKey{}, f)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func flashCookieWith(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func decodeFlash(raw string) *pages.FlashMessage {
	v, err := url.ParseQuery(raw)
	if err != nil || v.Get("m") == "" {
		return nil
	}
	kind := v.Get("k")
	switch kind {
	case FlashSuccess, FlashError, FlashInfo:
	default:
		kind = FlashInfo
	}
	return &pages.FlashMessage{Type: kind, Message: v.Get("m")}
}
