package codec

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jax2600/warpstery/internal/model"
)

func playingState() *model.EngineState {
	suspect := 2
	return &model.EngineState{
		Stage:   model.StageQuestioning,
		Round:   2,
		Players: []model.PlayerID{11},
		Seating: []model.PlayerID{11, -1, -2, -3},
		Hands: model.Hands{
			11: {Suspects: []int{1}, Weapons: []int{}, Rooms: []int{4}},
			-1: {Suspects: []int{3}, Weapons: []int{2}, Rooms: []int{}},
		},
		Solution:     &model.Triple{Suspect: 0, Weapon: 1, Room: 2},
		CurrentEvent: "Airdrop rumors",
		QuestionLog: []model.QuestionLogEntry{
			{Asker: 11, Suspect: 3, Weapon: 2, Room: 1, AnsweredBy: -1, Disclosed: &model.Card{Category: model.CategorySuspect, Index: 3}},
		},
		Pending: model.Pending{Suspect: &suspect, Page: 1},
	}
}

func testKey() [KeySize]byte {
	var key [KeySize]byte
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func TestPlainRoundTrip(t *testing.T) {
	c := New()
	state := playingState()

	token, err := c.Encode(state)
	require.NoError(t, err)

	decoded, err := c.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, state, decoded)
}

func TestPlainTokenIsBase64JSON(t *testing.T) {
	token, err := New().Encode(playingState())
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "{"))
	assert.Contains(t, string(raw), `"stage":"questioning"`)
}

func TestSealedRoundTripHidesSolution(t *testing.T) {
	c := NewSealed(testKey())
	state := playingState()

	token, err := c.Encode(state)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "solution")

	decoded, err := c.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, state, decoded)
}

func TestSealedRejectsOtherKey(t *testing.T) {
	token, err := NewSealed(testKey()).Encode(playingState())
	require.NoError(t, err)

	var other [KeySize]byte
	_, err = NewSealed(other).Decode(token)
	assert.ErrorIs(t, err, model.ErrDecodeFailure)
}

func TestDecodeFailures(t *testing.T) {
	good, err := New().Encode(playingState())
	require.NoError(t, err)

	cases := map[string]string{
		"not base64":     "%%%",
		"truncated":      good[:len(good)/2],
		"not json":       base64.StdEncoding.EncodeToString([]byte("hello")),
		"unknown stage":  base64.StdEncoding.EncodeToString([]byte(`{"stage":"finished"}`)),
		"no solution":    base64.StdEncoding.EncodeToString([]byte(`{"stage":"playing","round":1}`)),
		"bad solution":   base64.StdEncoding.EncodeToString([]byte(`{"stage":"playing","round":1,"solution":{"suspect":9,"weapon":0,"room":0}}`)),
		"bad pending":    base64.StdEncoding.EncodeToString([]byte(`{"stage":"lobby","pending":{"weapon":6}}`)),
		"negative round": base64.StdEncoding.EncodeToString([]byte(`{"stage":"lobby","round":-1}`)),
		"huge round":     base64.StdEncoding.EncodeToString([]byte(`{"stage":"playing","round":9223372036854775807,"solution":{"suspect":0,"weapon":0,"room":0}}`)),
		"questioning with every pick made": base64.StdEncoding.EncodeToString([]byte(
			`{"stage":"questioning","round":1,"solution":{"suspect":0,"weapon":0,"room":0},"pending":{"suspect":1,"weapon":1,"room":1}}`)),
		"guessing with every pick made": base64.StdEncoding.EncodeToString([]byte(
			`{"stage":"guessing","round":1,"solution":{"suspect":0,"weapon":0,"room":0},"pending":{"suspect":1,"weapon":1,"room":1}}`)),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New().Decode(token)
			assert.ErrorIs(t, err, model.ErrDecodeFailure)
		})
	}
}

func TestDecodeAcceptsExhaustedRound(t *testing.T) {
	state := playingState()
	state.Stage = model.StageGameOver
	state.Outcome = model.OutcomeOutOfRounds
	state.Pending = model.Pending{}
	state.Round = MaxRound

	token, err := New().Encode(state)
	require.NoError(t, err)
	decoded, err := New().Decode(token)
	require.NoError(t, err)
	assert.Equal(t, MaxRound, decoded.Round)
}

func TestDecodeLobbyDefaultsPlayers(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte(`{"stage":"lobby","round":0}`))

	state, err := New().Decode(token)
	require.NoError(t, err)
	assert.NotNil(t, state.Players)
}

func TestParseKey(t *testing.T) {
	key, err := ParseKey("")
	require.NoError(t, err)
	assert.Nil(t, key)

	_, err = ParseKey("abcd")
	assert.ErrorIs(t, err, ErrInvalidKey)

	key, err = ParseKey(strings.Repeat("0f", KeySize))
	require.NoError(t, err)
	assert.Equal(t, byte(0x0f), key[0])
}
