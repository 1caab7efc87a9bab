package request

// FrameRequest is the body a frame client posts when a button is pressed
type FrameRequest struct {
	UntrustedData UntrustedData `json:"untrustedData"`
	TrustedData   *TrustedData  `json:"trustedData,omitempty"`
}

// UntrustedData carries the press itself; nothing here is verified
type UntrustedData struct {
	FID         int64  `json:"fid"`
	URL         string `json:"url,omitempty"`
	MessageHash string `json:"messageHash,omitempty"`
	Timestamp   int64  `json:"timestamp,omitempty"`
	Network     int    `json:"network,omitempty"`
	ButtonIndex int    `json:"buttonIndex"`
	InputText   string `json:"inputText,omitempty"`
	State       string `json:"state,omitempty"`
}

// TrustedData is the signed message; accepted but not verified
type TrustedData struct {
	MessageBytes string `json:"messageBytes"`
}

// CreateSessionRequest is the request body for creating a local session
type CreateSessionRequest struct {
	PlayerID int64 `json:"player_id"`
}

// ActionRequest is the request body for pressing a button in a session
type ActionRequest struct {
	ButtonIndex int    `json:"button_index"`
	InputText   string `json:"input_text,omitempty"`
}

// NotesTextRequest is the request body for replacing free-form notes
type NotesTextRequest struct {
	Text string `json:"text"`
}
