package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ErrorData describes an error page
type ErrorData struct {
	PageData
	Heading string
	Message string
}

// Error renders a simple error page with a way back home
func Error(data ErrorData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.f(`<section class="error"><h1>%s</h1><p>%s</p>`, esc(data.Heading), esc(data.Message))
		p.raw(`<p><a href="/">Return to home</a></p></section>`)
		return p.err
	})
	return Layout(data.PageData, body)
}
