package model

import "fmt"

// SceneKey names the background image a renderer should display
type SceneKey string

const (
	SceneTitle          SceneKey = "title"
	SceneGameBoard      SceneKey = "game-board"
	SceneQuestionResult SceneKey = "question-result"
	SceneWrongGuess     SceneKey = "wrong-guess"
	SceneSolved         SceneKey = "solved"
	SceneGameOver       SceneKey = "game-over"
	SceneError          SceneKey = "error"
)

// RollScene returns the scene for a dice roll outcome
func RollScene(roll int) SceneKey {
	return SceneKey(fmt.Sprintf("roll-%d", roll))
}

// SelectionScene returns the scene for a category page of a dialogue.
// Pages after the first get a "-more" suffix.
func SelectionScene(stage Stage, c Category, page int) SceneKey {
	prefix := "question"
	if stage == StageGuessing {
		prefix = "accuse"
	}
	key := fmt.Sprintf("%s-%s", prefix, c)
	if page > 0 {
		key += "-more"
	}
	return SceneKey(key)
}

// ActionKind tells the transport what a button press does
type ActionKind string

const (
	ActionPost  ActionKind = "post"  // Submit back to the engine
	ActionShare ActionKind = "share" // Leave the game to share the directive's ShareText
)

// Button is a single button label with its action kind
type Button struct {
	Label string     `json:"label"`
	Kind  ActionKind `json:"kind"`
}

// PostButton returns a button that submits back to the engine
func PostButton(label string) Button {
	return Button{Label: label, Kind: ActionPost}
}

// Directive is what the engine asks the UI to show next
type Directive struct {
	Scene     SceneKey `json:"scene"`
	Buttons   []Button `json:"buttons"`
	ShareText string   `json:"share_text,omitempty"`
}

// ErrorDirective is shown when a request cannot produce a game screen
func ErrorDirective() Directive {
	return Directive{
		Scene:   SceneError,
		Buttons: []Button{PostButton("Try Again")},
	}
}

// Action is a single button press submitted by a player
type Action struct {
	ButtonIndex int      `json:"button_index"`
	PlayerID    PlayerID `json:"player_id"`
	InputText   string   `json:"input_text,omitempty"`
}
