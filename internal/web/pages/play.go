package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Button is one action on the play page
type Button struct {
	Index int
	Label string
	Share bool
}

// LogRow is one line of the question log
type LogRow struct {
	Asker      string
	Suggestion string
	AnsweredBy string
}

// NoteCell is a single card on the detective sheet
type NoteCell struct {
	Category string
	Index    int
	Name     string
	Mark     string
}

// NoteSection is one category of the detective sheet
type NoteSection struct {
	Title string
	Cells []NoteCell
}

// PlayData is everything shown for a local session
type PlayData struct {
	PageData
	SessionID    string
	Stage        string
	Image        string
	Buttons      []Button
	ShareURL     string
	Round        int
	MaxRounds    int
	FinalRound   bool
	CurrentEvent string
	Hand         []string
	Log          []LogRow
	Notes        []NoteSection
	NotesText    string
	Solution     string
}

// Play renders a local session
func Play(data PlayData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		base := "/play/" + data.SessionID

		p.f(`<section class="board" data-stage="%s">`, esc(data.Stage))
		p.f(`<img class="scene" src="%s" alt="%s">`, esc(data.Image), esc(data.Stage))
		if data.Round > 0 {
			p.f(`<div class="round">Round: %d of %d`, data.Round, data.MaxRounds)
			if data.FinalRound {
				p.raw(` <span class="final-round">Final Round!</span>`)
			}
			p.raw(`</div>`)
		}
		if data.CurrentEvent != "" {
			p.raw(`<div class="event">Random event: `)
			p.text(data.CurrentEvent)
			p.raw(`</div>`)
		}
		if data.Solution != "" {
			p.raw(`<div class="solution">`)
			p.text(data.Solution)
			p.raw(`</div>`)
		}

		p.raw(`<div class="buttons">`)
		for _, b := range data.Buttons {
			if b.Share {
				p.f(`<a class="button share" href="%s" target="_blank" rel="noopener">%s</a>`,
					esc(data.ShareURL), esc(b.Label))
				continue
			}
			p.f(`<form method="post" action="%s/press"><input type="hidden" name="button" value="%d">`,
				esc(base), b.Index)
			p.f(`<button type="submit" data-button="%d">%s</button></form>`, b.Index, esc(b.Label))
		}
		p.raw(`</div></section>`)

		if len(data.Hand) > 0 {
			p.raw(`<section class="hand"><h2>Your cards</h2><ul>`)
			for _, c := range data.Hand {
				p.f(`<li>%s</li>`, esc(c))
			}
			p.raw(`</ul></section>`)
		}

		p.raw(`<section class="question-log"><h2>Question log</h2>`)
		if len(data.Log) == 0 {
			p.raw(`<p class="empty">No questions asked yet.</p>`)
		} else {
			p.raw(`<table><thead><tr><th>Asker</th><th>Suggestion</th><th>Answered by</th></tr></thead><tbody>`)
			for _, row := range data.Log {
				p.f(`<tr><td>%s</td><td>%s</td><td>%s</td></tr>`, esc(row.Asker), esc(row.Suggestion), esc(row.AnsweredBy))
			}
			p.raw(`</tbody></table>`)
		}
		p.raw(`</section>`)

		p.component(ctx, notes(base, data.Notes, data.NotesText))

		p.f(`<form method="post" action="%s/delete" class="delete"><button type="submit">Abandon game</button></form>`, esc(base))
		return p.err
	})
	return Layout(data.PageData, body)
}

func notes(base string, sections []NoteSection, text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<section class="notes"><h2>Detective notes</h2>`)
		for _, s := range sections {
			p.f(`<div class="note-section"><h3>%s</h3><ul>`, esc(s.Title))
			for _, c := range s.Cells {
				action := fmt.Sprintf("%s/notes/%s/%d", base, c.Category, c.Index)
				p.f(`<li class="mark-%s"><form method="post" action="%s">`, esc(c.Mark), esc(action))
				p.f(`<button type="submit" %s>%s</button>`, disabledIf(c.Mark == "yours"), esc(c.Name))
				p.f(` <span class="mark">%s</span></form></li>`, esc(c.Mark))
			}
			p.raw(`</ul></div>`)
		}
		p.f(`<form method="post" action="%s/notes/text" class="notes-text">`, esc(base))
		p.f(`<textarea name="text" rows="4">%s</textarea>`, esc(text))
		p.raw(`<button type="submit">Save notes</button></form></section>`)
		return p.err
	})
}

func disabledIf(b bool) string {
	if b {
		return "disabled"
	}
	return ""
}
