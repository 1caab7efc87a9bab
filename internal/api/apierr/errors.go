// Package apierr renders errors in the JSON envelope shared by the frame
// and session endpoints: {"error":{"code":"...","message":"..."}}.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jax2600/warpstery/internal/model"
)

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}

const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidPlayer      = "INVALID_PLAYER"
	CodeInvalidCard        = "INVALID_CARD"
	CodeInvalidPlayerCount = "INVALID_PLAYER_COUNT"
	CodeDecodeFailure      = "DECODE_FAILURE"
	CodeSessionNotFound    = "SESSION_NOT_FOUND"
	CodeNotFound           = "NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"
)

// statusError is an APIError that already knows its HTTP status
type statusError struct {
	status int
	body   APIError
}

func (e *statusError) Error() string {
	return e.body.Message
}

var internalError = &statusError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}

// modelErrors maps engine sentinels onto responses; first match wins
var modelErrors = []struct {
	target error
	resp   *statusError
}{
	{model.ErrSessionNotFound, &statusError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}},
	{model.ErrInvalidPlayer, &statusError{http.StatusBadRequest, APIError{CodeInvalidPlayer, "Player id must be a positive integer"}}},
	{model.ErrInvalidCard, &statusError{http.StatusBadRequest, APIError{CodeInvalidCard, "Unknown card"}}},
	{model.ErrInvalidPlayerCount, &statusError{http.StatusUnprocessableEntity, APIError{CodeInvalidPlayerCount, "A game needs at least one player"}}},
	{model.ErrDecodeFailure, &statusError{http.StatusBadRequest, APIError{CodeDecodeFailure, "Game state could not be decoded"}}},
}

// WriteError writes err as a JSON error envelope. Unrecognised errors
// become a 500 without leaking their text.
func WriteError(w http.ResponseWriter, err error) {
	se := lookup(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(se.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: se.body})
}

// Status returns the HTTP status WriteError would use for err
func Status(err error) int {
	return lookup(err).status
}

func lookup(err error) *statusError {
	var se *statusError
	if errors.As(err, &se) {
		return se
	}
	for _, m := range modelErrors {
		if errors.Is(err, m.target) {
			return m.resp
		}
	}
	return internalError
}

func NewInvalidRequestError(message string) error {
	return &statusError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotFoundError is returned for unknown API routes
func NewNotFoundError() error {
	return &statusError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
}

func NewInternalError() error {
	return internalError
}
