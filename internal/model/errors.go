package model

import "errors"

// Common errors used across the application
var (
	// Engine errors
	ErrDecodeFailure      = errors.New("could not decode game state")
	ErrIllegalAction      = errors.New("action is not valid for the current stage")
	ErrInvalidPlayerCount = errors.New("cannot deal without players")

	// Catalog errors
	ErrInvalidCard = errors.New("invalid card")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidPlayer   = errors.New("invalid player id")
)
