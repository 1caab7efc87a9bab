package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HomeData is the frame entry page
type HomeData struct {
	PageData
	Image string
}

// Home renders the frame entry point and the local play form
func Home(data HomeData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<section class="hero">`)
		p.f(`<img class="scene" src="%s" alt="Warpstery">`, esc(data.Image))
		p.raw(`<h1>Warpstery</h1>`)
		p.raw(`<p>A murder mystery in the Farverse. Find who did it, with what, and where.</p>`)
		p.raw(`</section>`)
		p.raw(`<section class="local-play"><h2>Play locally</h2>`)
		p.raw(`<form method="post" action="/play" id="new-session">`)
		p.raw(`<label for="player_id">Player id</label>`)
		p.raw(`<input type="number" min="1" name="player_id" id="player_id" required>`)
		p.raw(`<button type="submit">New Game</button>`)
		p.raw(`</form></section>`)
		return p.err
	})
	return Layout(data.PageData, body)
}
