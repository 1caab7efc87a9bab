package codec

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/jax2600/warpstery/internal/model"
	"github.com/jax2600/warpstery/internal/services/rounds"
)

// KeySize is the length of a sealing secret in bytes
const KeySize = 32

const nonceSize = 24

// ErrInvalidKey is returned when a secret has the wrong length or encoding
var ErrInvalidKey = errors.New("state secret must be 32 bytes of hex")

// Codec converts engine state to and from an opaque transport token.
// With a key, the JSON is sealed so players cannot read the solution from the token.
type Codec struct {
	key   *[KeySize]byte
	nonce io.Reader
}

// New creates a Codec that emits plain base64-encoded JSON
func New() *Codec {
	return &Codec{nonce: rand.Reader}
}

// NewSealed creates a Codec that seals tokens with the given key
func NewSealed(key [KeySize]byte) *Codec {
	return &Codec{key: &key, nonce: rand.Reader}
}

// ParseKey decodes a hex secret; an empty string yields no key
func ParseKey(secret string) (*[KeySize]byte, error) {
	if secret == "" {
		return nil, nil
	}
	raw, err := hex.DecodeString(secret)
	if err != nil || len(raw) != KeySize {
		return nil, ErrInvalidKey
	}
	var key [KeySize]byte
	copy(key[:], raw)
	return &key, nil
}

// Sealed reports whether tokens are encrypted
func (c *Codec) Sealed() bool {
	return c.key != nil
}

// Encode serializes state into a token
func (c *Codec) Encode(state *model.EngineState) (string, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("encode state: %w", err)
	}

	if c.key != nil {
		var nonce [nonceSize]byte
		if _, err := io.ReadFull(c.nonce, nonce[:]); err != nil {
			return "", fmt.Errorf("encode state: %w", err)
		}
		data = secretbox.Seal(nonce[:], data, &nonce, c.key)
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

// Decode parses a token produced by Encode. Every failure wraps ErrDecodeFailure.
func (c *Codec) Decode(token string) (*model.EngineState, error) {
	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDecodeFailure, err)
	}

	if c.key != nil {
		if len(data) < nonceSize+secretbox.Overhead {
			return nil, fmt.Errorf("%w: token too short", model.ErrDecodeFailure)
		}
		var nonce [nonceSize]byte
		copy(nonce[:], data[:nonceSize])
		opened, ok := secretbox.Open(nil, data[nonceSize:], &nonce, c.key)
		if !ok {
			return nil, fmt.Errorf("%w: seal check failed", model.ErrDecodeFailure)
		}
		data = opened
	}

	var state model.EngineState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDecodeFailure, err)
	}
	if err := Validate(&state); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDecodeFailure, err)
	}
	if state.Players == nil {
		state.Players = []model.PlayerID{}
	}
	return &state, nil
}

// MaxRound is the highest round a game can reach: the single-player cap plus
// the round that exhausted it
const MaxRound = rounds.SinglePlayerMaxRounds + 1

// Validate rejects states the engine could not have produced
func Validate(state *model.EngineState) error {
	if !state.Stage.Valid() {
		return fmt.Errorf("unknown stage %q", state.Stage)
	}
	if state.Round < 0 {
		return errors.New("negative round")
	}
	if state.Round > MaxRound {
		return fmt.Errorf("round %d beyond any cap", state.Round)
	}
	if state.Stage != model.StageLobby && state.Solution == nil {
		return errors.New("game in progress without a solution")
	}
	if state.Solution != nil && !state.Solution.Valid() {
		return errors.New("solution out of range")
	}

	p := state.Pending
	for _, slot := range []struct {
		cat   model.Category
		index *int
	}{
		{model.CategorySuspect, p.Suspect},
		{model.CategoryWeapon, p.Weapon},
		{model.CategoryRoom, p.Room},
	} {
		if slot.index != nil && !(model.Card{Category: slot.cat, Index: *slot.index}).Valid() {
			return fmt.Errorf("pending %s out of range", slot.cat)
		}
	}
	if p.Page < 0 {
		return errors.New("negative page")
	}
	if state.Stage == model.StageQuestioning || state.Stage == model.StageGuessing {
		if _, open := p.NextCategory(); !open {
			return fmt.Errorf("%s with every selection already made", state.Stage)
		}
	}

	for id, hand := range state.Hands {
		for _, c := range hand.Cards() {
			if !c.Valid() {
				return fmt.Errorf("player %d holds invalid card", id)
			}
		}
	}
	return nil
}
