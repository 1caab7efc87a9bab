package deal

import (
	"log/slog"
	"slices"

	"github.com/jax2600/warpstery/internal/dependencies/random"
	"github.com/jax2600/warpstery/internal/model"
)

// Deal is the result of dealing a new game
type Deal struct {
	Solution model.Triple
	Seating  []model.PlayerID // Real players in join order, then phantoms
	Hands    model.Hands
}

// Service picks solutions and distributes the remaining cards
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new deal Service
func New(random random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: random,
		logger: logger,
	}
}

// Deal chooses a solution and splits the rest of the catalog between the players.
// A single player is joined by PhantomCount phantom players.
func (s *Service) Deal(players []model.PlayerID) (*Deal, error) {
	if len(players) == 0 {
		return nil, model.ErrInvalidPlayerCount
	}

	solution := model.Triple{
		Suspect: s.random.Intn(len(model.Suspects)),
		Weapon:  s.random.Intn(len(model.Weapons)),
		Room:    s.random.Intn(len(model.Rooms)),
	}

	pool := make([]model.Card, 0, len(model.FullDeck())-3)
	solutionCards := solution.Cards()
	for _, c := range model.FullDeck() {
		if !slices.Contains(solutionCards, c) {
			pool = append(pool, c)
		}
	}
	s.random.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	seating := Seating(players)
	hands := make(model.Hands, len(seating))
	offset := 0
	for i, id := range seating {
		n := ShareSize(len(pool), len(seating), i)
		hand := model.Hand{Suspects: []int{}, Weapons: []int{}, Rooms: []int{}}
		for _, c := range pool[offset : offset+n] {
			hand = hand.Add(c)
		}
		hands[id] = hand
		offset += n
	}

	s.logger.Debug("cards dealt",
		slog.Int("player_count", len(players)),
		slog.Int("seat_count", len(seating)),
		slog.Int("pool_size", len(pool)),
	)

	return &Deal{
		Solution: solution,
		Seating:  seating,
		Hands:    hands,
	}, nil
}

// Seating returns the deal order for the given players, adding phantoms for a lone player
func Seating(players []model.PlayerID) []model.PlayerID {
	seating := slices.Clone(players)
	if len(players) == 1 {
		for n := 1; n <= model.PhantomCount; n++ {
			seating = append(seating, model.PhantomPlayer(n))
		}
	}
	return seating
}

// ShareSize returns how many cards seat i receives when pool cards go to seats players.
// The first pool%seats seats get one extra card.
func ShareSize(pool, seats, i int) int {
	n := pool / seats
	if i < pool%seats {
		n++
	}
	return n
}
