package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jax2600/warpstery/internal/api/request"
	"github.com/jax2600/warpstery/internal/api/response"
	"github.com/jax2600/warpstery/internal/frame"
	"github.com/jax2600/warpstery/internal/model"
)

// FrameHandler serves the stateless frame endpoint
type FrameHandler struct {
	adapter *frame.Adapter
}

// NewFrameHandler creates a new frame handler
func NewFrameHandler(adapter *frame.Adapter) *FrameHandler {
	return &FrameHandler{
		adapter: adapter,
	}
}

// Get handles GET /api/frames
func (h *FrameHandler) Get(w http.ResponseWriter, r *http.Request) {
	meta, err := h.adapter.Initial()
	if err != nil {
		writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FrameResponseFromMeta(meta))
}

// Post handles POST /api/frames
func (h *FrameHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req request.FrameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	data := req.UntrustedData
	meta, err := h.adapter.Press(model.Action{
		ButtonIndex: data.ButtonIndex,
		PlayerID:    model.PlayerID(data.FID),
		InputText:   data.InputText,
	}, data.State)
	if err != nil {
		writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FrameResponseFromMeta(meta))
}
