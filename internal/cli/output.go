package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/jax2600/warpstery/internal/api/response"
)

var palette = struct {
	Header, Info, Warn, Good, Bad, Maybe *color.Color
}{
	Header: color.New(color.FgWhite, color.Bold),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Good:   color.New(color.FgGreen),
	Bad:    color.New(color.FgRed),
	Maybe:  color.New(color.FgYellow),
}

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to stdout
func NewOutput(format string) *Output {
	return &Output{format: format, w: os.Stdout}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "%s %s\n", palette.Bad.Sprint("Error:"), err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Session:
		o.printSession(v)
	case response.ActionResponse:
		o.printAction(v)
	case response.SessionList:
		o.printSessionList(v)
	case response.Notes:
		o.printNotes(v)
	case response.FrameResponse:
		o.printFrame(v)
	case response.Health:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) newTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(o.w)
	if title != "" {
		t.SetTitle(title)
		t.Style().Title.Align = text.AlignCenter
	}
	t.SetStyle(table.StyleRounded)
	return t
}

func (o *Output) printSession(s response.Session) {
	fmt.Fprintf(o.w, "%s %s\n", palette.Header.Sprint("Session:"), s.ID)
	fmt.Fprintf(o.w, "Player: %d\n", s.Owner)
	fmt.Fprintf(o.w, "Stage: %s\n", s.Stage)
	if s.Round > 0 {
		fmt.Fprintf(o.w, "Round: %d of %d", s.Round, s.MaxRounds)
		if s.FinalRound {
			fmt.Fprint(o.w, " ", palette.Warn.Sprint("Final Round!"))
		}
		fmt.Fprintln(o.w)
	}
	if s.CurrentEvent != "" {
		fmt.Fprintf(o.w, "Random event: %s\n", palette.Info.Sprint(s.CurrentEvent))
	}

	if len(s.Hand) > 0 {
		names := make([]string, len(s.Hand))
		for i, c := range s.Hand {
			names[i] = c.Name
		}
		fmt.Fprintf(o.w, "Your cards: %s\n", strings.Join(names, ", "))
	}

	if len(s.QuestionLog) > 0 {
		t := o.newTable("Question Log")
		t.AppendHeader(table.Row{"#", "Asker", "Suspect", "Weapon", "Room", "Answered by"})
		for i, e := range s.QuestionLog {
			t.AppendRow(table.Row{i + 1, e.Asker, e.Suspect, e.Weapon, e.Room, e.AnsweredBy})
		}
		t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
		t.Render()
	}

	if s.Solution != nil {
		fmt.Fprintf(o.w, "Solution: %s with the %s in the %s\n", s.Solution.Suspect, s.Solution.Weapon, s.Solution.Room)
	}

	o.printDirective(s.Directive)
}

func (o *Output) printDirective(d response.Directive) {
	fmt.Fprintf(o.w, "\nScene: %s\n", palette.Header.Sprint(d.Scene))
	for i, b := range d.Buttons {
		label := b.Label
		if b.Kind == "share" {
			label += " " + palette.Info.Sprint("(share)")
		}
		fmt.Fprintf(o.w, "  [%d] %s\n", i+1, label)
	}
	if d.ShareURL != "" {
		fmt.Fprintf(o.w, "Share: %s\n", d.ShareURL)
	}
}

func (o *Output) printAction(a response.ActionResponse) {
	if a.Illegal {
		fmt.Fprintln(o.w, palette.Warn.Sprint("That move isn't available right now"))
	}
	for _, r := range a.Revealed {
		fmt.Fprintf(o.w, "%s showed you %s\n", r.RevealedBy, palette.Good.Sprint(r.Card.Name))
	}
	o.printSession(a.Session)
}

func (o *Output) printSessionList(l response.SessionList) {
	if len(l.Sessions) == 0 {
		fmt.Fprintln(o.w, "No sessions")
		return
	}
	for _, id := range l.Sessions {
		fmt.Fprintf(o.w, "  - %s\n", id)
	}
}

func markSymbol(mark string) string {
	switch mark {
	case "yours":
		return palette.Good.Sprint("mine")
	case "confirmed":
		return palette.Good.Sprint("✔")
	case "x":
		return palette.Bad.Sprint("✖")
	case "maybe":
		return palette.Maybe.Sprint("?")
	default:
		return ""
	}
}

func (o *Output) printNotes(n response.Notes) {
	t := o.newTable(fmt.Sprintf("Player %d's Detective Notes", n.Owner))
	t.AppendHeader(table.Row{"#", "Card", "Type", "Mark"})

	sections := []struct {
		kind    string
		entries []response.NoteEntry
	}{
		{"suspect", n.Suspects},
		{"weapon", n.Weapons},
		{"room", n.Rooms},
	}
	for i, s := range sections {
		if i > 0 {
			t.AppendSeparator()
		}
		for _, e := range s.entries {
			t.AppendRow(table.Row{e.Index, e.Name, s.kind, markSymbol(e.Mark)})
		}
	}

	t.Style().Options.SeparateRows = false
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	t.Render()

	if n.Text != "" {
		fmt.Fprintf(o.w, "\n%s\n%s\n", palette.Header.Sprint("Notes:"), n.Text)
	}
}

func (o *Output) printFrame(f response.FrameResponse) {
	keys := make([]string, 0, len(f.Frame))
	for k := range f.Frame {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := o.newTable("Frame")
	t.AppendHeader(table.Row{"Property", "Content"})
	for _, k := range keys {
		t.AppendRow(table.Row{k, f.Frame[k]})
	}
	t.Render()
}
