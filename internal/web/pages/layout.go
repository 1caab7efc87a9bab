package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/jax2600/warpstery/internal/frame"
)

// FlashMessage is a one-shot notice shown at the top of a page
type FlashMessage struct {
	Type    string // success, error, info
	Message string
}

// PageData is shared by every page
type PageData struct {
	Title string
	Flash *FlashMessage
	// Frame tags are emitted as <meta property> so the page embeds as a frame
	Frame []frame.Tag
}

// printer accumulates the first write error so templates read top to bottom
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) raw(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *printer) f(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

func (p *printer) text(s string) {
	p.raw(templ.EscapeString(s))
}

func (p *printer) component(ctx context.Context, c templ.Component) {
	if p.err == nil {
		p.err = c.Render(ctx, p.w)
	}
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// Layout wraps a page body in the document shell
func Layout(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw("<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\">")
		p.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		p.f("<title>%s | Warpstery</title>", esc(data.Title))
		p.raw(`<meta property="og:title" content="Warpstery">`)
		for _, tag := range data.Frame {
			p.f(`<meta property="%s" content="%s">`, esc(tag.Property), esc(tag.Content))
		}
		p.raw(`<link rel="stylesheet" href="/static/css/warpstery.css"></head><body>`)
		p.raw(`<header><a href="/" class="brand">Warpstery</a></header><main>`)
		if data.Flash != nil {
			p.f(`<div class="flash flash-%s" role="alert">%s</div>`, esc(data.Flash.Type), esc(data.Flash.Message))
		}
		p.component(ctx, body)
		p.raw("</main></body></html>")
		return p.err
	})
}
