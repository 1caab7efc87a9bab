package model

import "fmt"

// PlayerID is an opaque numeric player identity supplied by the caller.
// Real players are positive; zero and negative values are reserved.
type PlayerID int64

// NoOne marks a suggestion that nobody could refute
const NoOne PlayerID = 0

// PhantomCount is the number of synthetic players added to a single-player deal
const PhantomCount = 3

// PhantomPlayer returns the identifier of the n-th phantom player (1-based)
func PhantomPlayer(n int) PlayerID {
	return PlayerID(-n)
}

// IsPhantom reports whether the id belongs to a synthesized player
func (p PlayerID) IsPhantom() bool {
	return p < 0
}

// IsReal reports whether the id can belong to an external player
func (p PlayerID) IsReal() bool {
	return p > 0
}

// Label returns a display label that does not depend on identity resolution
func (p PlayerID) Label() string {
	switch {
	case p == NoOne:
		return "No one"
	case p.IsPhantom():
		return fmt.Sprintf("Phantom %d", -p)
	default:
		return fmt.Sprintf("Player %d", int64(p))
	}
}
