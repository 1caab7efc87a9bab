package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullDeckCoversCatalog(t *testing.T) {
	deck := FullDeck()

	require.Len(t, deck, len(Suspects)+len(Weapons)+len(Rooms))
	assert.Equal(t, Card{Category: CategorySuspect, Index: 0}, deck[0])
	assert.Equal(t, Card{Category: CategoryRoom, Index: len(Rooms) - 1}, deck[len(deck)-1])
	for _, c := range deck {
		assert.True(t, c.Valid(), "%+v", c)
	}
}

func TestCardValidity(t *testing.T) {
	assert.Equal(t, "Warp Pub", Card{Category: CategoryRoom, Index: 8}.Name())
	assert.False(t, Card{Category: CategoryWeapon, Index: 6}.Valid())
	assert.False(t, Card{Category: "gadget", Index: 0}.Valid())
	assert.Empty(t, Card{Category: CategorySuspect, Index: -1}.Name())

	_, err := ParseCategory("gadget")
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestPlayerLabels(t *testing.T) {
	assert.Equal(t, "No one", NoOne.Label())
	assert.Equal(t, "Phantom 2", PhantomPlayer(2).Label())
	assert.Equal(t, "Player 42", PlayerID(42).Label())
	assert.True(t, PhantomPlayer(1).IsPhantom())
	assert.False(t, NoOne.IsReal())
}

func TestJoinIgnoresDuplicatesAndReservedIDs(t *testing.T) {
	s := NewEngineState()

	assert.True(t, s.Join(7))
	assert.False(t, s.Join(7))
	assert.False(t, s.Join(NoOne))
	assert.False(t, s.Join(PhantomPlayer(1)))
	assert.True(t, s.Join(3))

	assert.Equal(t, []PlayerID{7, 3}, s.Players)
}

func TestCloneDoesNotAlias(t *testing.T) {
	s := NewEngineState()
	s.Join(7)
	s.Hands = Hands{7: Hand{Suspects: []int{1}}}
	s.Solution = &Triple{Suspect: 2, Weapon: 3, Room: 4}
	s.Pending.Set(CategorySuspect, 5)

	c := s.Clone()
	c.Join(8)
	c.Hands[7] = c.Hands[7].Add(Card{Category: CategoryRoom, Index: 0})
	c.Solution.Room = 0
	*c.Pending.Suspect = 1

	assert.Equal(t, []PlayerID{7}, s.Players)
	assert.Equal(t, 1, s.Hands[7].Size())
	assert.Equal(t, 4, s.Solution.Room)
	assert.Equal(t, 5, *s.Pending.Suspect)
}

func TestPendingFillsInOrder(t *testing.T) {
	var p Pending
	p.Page = 2

	cat, ok := p.NextCategory()
	require.True(t, ok)
	assert.Equal(t, CategorySuspect, cat)

	p.Set(CategorySuspect, 1)
	assert.Equal(t, 0, p.Page)
	cat, _ = p.NextCategory()
	assert.Equal(t, CategoryWeapon, cat)

	p.Set(CategoryWeapon, 2)
	_, complete := p.Triple()
	assert.False(t, complete)

	p.Set(CategoryRoom, 3)
	triple, complete := p.Triple()
	require.True(t, complete)
	assert.Equal(t, Triple{Suspect: 1, Weapon: 2, Room: 3}, triple)
	_, ok = p.NextCategory()
	assert.False(t, ok)
}

func TestHandsHolder(t *testing.T) {
	hands := Hands{
		7:                Hand{Weapons: []int{0}},
		PhantomPlayer(1): Hand{Rooms: []int{4}},
	}

	assert.Equal(t, PhantomPlayer(1), hands.Holder(Card{Category: CategoryRoom, Index: 4}))
	assert.Equal(t, NoOne, hands.Holder(Card{Category: CategorySuspect, Index: 0}))
}

func TestMarkCycle(t *testing.T) {
	m := MarkNone
	seen := []Mark{}
	for range 4 {
		m = m.Next()
		seen = append(seen, m)
	}

	assert.Equal(t, []Mark{MarkMaybe, MarkConfirmed, MarkX, MarkNone}, seen)
	assert.Equal(t, MarkYours, MarkYours.Next())
}

func TestSelectionScenes(t *testing.T) {
	assert.Equal(t, SceneKey("question-weapon"), SelectionScene(StageQuestioning, CategoryWeapon, 0))
	assert.Equal(t, SceneKey("accuse-room-more"), SelectionScene(StageGuessing, CategoryRoom, 2))
	assert.Equal(t, SceneKey("roll-6"), RollScene(6))
}
