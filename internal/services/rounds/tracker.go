package rounds

// Round limits by participant count
const (
	SinglePlayerMaxRounds = 7
	MultiplayerMaxRounds  = 5
)

// Tracker enforces the round cap
type Tracker struct{}

// New creates a new round Tracker
func New() *Tracker {
	return &Tracker{}
}

// MaxRounds returns the cap for the given number of real players
func (t *Tracker) MaxRounds(playerCount int) int {
	if playerCount <= 1 {
		return SinglePlayerMaxRounds
	}
	return MultiplayerMaxRounds
}

// Advance increments the round and reports whether the cap is now exceeded
func (t *Tracker) Advance(round, playerCount int) (next int, exhausted bool) {
	next = round + 1
	return next, next > t.MaxRounds(playerCount)
}

// IsFinalRound reports whether round is the last one allowed
func (t *Tracker) IsFinalRound(round, playerCount int) bool {
	return round >= t.MaxRounds(playerCount)
}
