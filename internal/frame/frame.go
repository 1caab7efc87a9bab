package frame

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jax2600/warpstery/internal/model"
	"github.com/jax2600/warpstery/internal/services/codec"
)

// Version is the frame protocol version advertised in fc:frame
const Version = "vNext"

// PostPath is where frame button presses are sent
const PostPath = "/api/frames"

// ComposeURL is the share target for post_redirect buttons
const ComposeURL = "https://warpcast.com/~/compose"

// Button actions understood by frame clients
const (
	ActionPost         = "post"
	ActionPostRedirect = "post_redirect"
	ActionLink         = "link"
)

// Button is one rendered frame button
type Button struct {
	Label  string `json:"label"`
	Action string `json:"action"`
	Target string `json:"target,omitempty"`
}

// Meta describes a single frame screen
type Meta struct {
	Version string   `json:"version"`
	Image   string   `json:"image"`
	PostURL string   `json:"post_url"`
	State   string   `json:"state,omitempty"`
	Buttons []Button `json:"buttons"`
}

// Tag is a single <meta property content> pair
type Tag struct {
	Property string
	Content  string
}

// Builder turns engine directives into frame metadata
type Builder struct {
	baseURL string
	codec   *codec.Codec
}

// NewBuilder creates a Builder; relative asset paths are resolved against baseURL
func NewBuilder(baseURL string, codec *codec.Codec) *Builder {
	return &Builder{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		codec:   codec,
	}
}

// BaseURL returns the configured public origin
func (b *Builder) BaseURL() string {
	return b.baseURL
}

// Absolute prefixes a relative path with the base URL
func (b *Builder) Absolute(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return b.baseURL + path
}

// SceneImage returns the absolute image URL for a scene
func (b *Builder) SceneImage(scene model.SceneKey) string {
	name := string(scene)
	if scene == model.SceneTitle {
		name = "warpstery-title"
	}
	return b.Absolute(fmt.Sprintf("/images/%s.png", name))
}

// ShareURL returns the compose link used by share buttons
func (b *Builder) ShareURL(text string) string {
	q := url.Values{}
	q.Set("text", text)
	if b.baseURL != "" {
		q.Set("embeds[]", b.baseURL)
	}
	return ComposeURL + "?" + q.Encode()
}

// Build renders a directive, encoding state into the frame. A nil state omits fc:frame:state.
func (b *Builder) Build(d model.Directive, state *model.EngineState) (Meta, error) {
	m := Meta{
		Version: Version,
		Image:   b.SceneImage(d.Scene),
		PostURL: b.Absolute(PostPath),
		Buttons: make([]Button, 0, len(d.Buttons)),
	}

	if state != nil {
		token, err := b.codec.Encode(state)
		if err != nil {
			return Meta{}, err
		}
		m.State = token
	}

	for _, btn := range d.Buttons {
		fb := Button{Label: btn.Label, Action: ActionPost}
		if btn.Kind == model.ActionShare {
			fb.Action = ActionPostRedirect
			fb.Target = b.ShareURL(d.ShareText)
		}
		m.Buttons = append(m.Buttons, fb)
	}

	return m, nil
}

// Tags flattens the metadata in the order frame clients expect
func (m Meta) Tags() []Tag {
	tags := []Tag{
		{Property: "fc:frame", Content: m.Version},
		{Property: "fc:frame:image", Content: m.Image},
		{Property: "fc:frame:post_url", Content: m.PostURL},
	}
	if m.State != "" {
		tags = append(tags, Tag{Property: "fc:frame:state", Content: m.State})
	}
	for i, btn := range m.Buttons {
		prefix := fmt.Sprintf("fc:frame:button:%d", i+1)
		tags = append(tags, Tag{Property: prefix, Content: btn.Label})
		if btn.Action != "" {
			tags = append(tags, Tag{Property: prefix + ":action", Content: btn.Action})
		}
		if btn.Target != "" {
			tags = append(tags, Tag{Property: prefix + ":target", Content: btn.Target})
		}
	}
	return tags
}

// Map returns the tags keyed by property
func (m Meta) Map() map[string]string {
	out := make(map[string]string)
	for _, t := range m.Tags() {
		out[t.Property] = t.Content
	}
	return out
}
