package model

import "fmt"

// Category identifies one of the three card decks
type Category string

const (
	CategorySuspect Category = "suspect"
	CategoryWeapon  Category = "weapon"
	CategoryRoom    Category = "room"
)

// Categories lists the decks in resolution priority order
var Categories = []Category{CategorySuspect, CategoryWeapon, CategoryRoom}

// Suspects is the fixed suspect catalog
var Suspects = []string{"DWR", "V", "Ted not lasso", "Linda", "Horsefacts", "woj", "gt", "sds", "deodad"}

// Weapons is the fixed weapon catalog
var Weapons = []string{"Gas Fee", "Toxic Meme", "Private Key", "Social Hack", "NFT Rug", "Bad Take"}

// Rooms is the fixed room catalog
var Rooms = []string{
	"Farm",
	"Beach Cove",
	"Blacksmith",
	"Market",
	"Secret Den",
	"Watchtower",
	"Library",
	"Town Square",
	"Warp Pub",
}

// RandomEvents are flavor-text markers shown on the board
var RandomEvents = []string{
	"DAQ price fluctuation",
	"Warplet connection issues",
	"Memecoin rugpull",
	"Controversial cast",
	"Verification drama",
	"Frame exploit discovered",
	"Channel spam attack",
	"Purple checkmark debate",
	"FID registry glitch",
	"Airdrop rumors",
}

// Names returns the catalog for the category, or nil if unknown
func (c Category) Names() []string {
	switch c {
	case CategorySuspect:
		return Suspects
	case CategoryWeapon:
		return Weapons
	case CategoryRoom:
		return Rooms
	default:
		return nil
	}
}

// Size returns the number of cards in the category
func (c Category) Size() int {
	return len(c.Names())
}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	return c.Names() != nil
}

// Plural returns the display name used on "more" buttons
func (c Category) Plural() string {
	switch c {
	case CategorySuspect:
		return "Suspects"
	case CategoryWeapon:
		return "Weapons"
	case CategoryRoom:
		return "Rooms"
	default:
		return ""
	}
}

// ParseCategory converts a string to a Category
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidCard, s)
	}
	return c, nil
}

// Card is a single card identified by its deck and catalog position
type Card struct {
	Category Category `json:"category"`
	Index    int      `json:"index"`
}

// Valid reports whether the card exists in the catalog
func (c Card) Valid() bool {
	return c.Category.Valid() && c.Index >= 0 && c.Index < c.Category.Size()
}

// Name returns the display name of the card
func (c Card) Name() string {
	if !c.Valid() {
		return ""
	}
	return c.Category.Names()[c.Index]
}

// FullDeck returns every card in the catalog, suspects first, then weapons, then rooms
func FullDeck() []Card {
	deck := make([]Card, 0, len(Suspects)+len(Weapons)+len(Rooms))
	for _, cat := range Categories {
		for i := range cat.Size() {
			deck = append(deck, Card{Category: cat, Index: i})
		}
	}
	return deck
}

// Triple is one card index per category, used for solutions, suggestions and accusations
type Triple struct {
	Suspect int `json:"suspect"`
	Weapon  int `json:"weapon"`
	Room    int `json:"room"`
}

// Cards returns the triple as cards in resolution priority order
func (t Triple) Cards() []Card {
	return []Card{
		{Category: CategorySuspect, Index: t.Suspect},
		{Category: CategoryWeapon, Index: t.Weapon},
		{Category: CategoryRoom, Index: t.Room},
	}
}

// Valid reports whether every index is inside its catalog
func (t Triple) Valid() bool {
	for _, c := range t.Cards() {
		if !c.Valid() {
			return false
		}
	}
	return true
}

// Index returns the triple's index for the given category
func (t Triple) Index(c Category) int {
	switch c {
	case CategorySuspect:
		return t.Suspect
	case CategoryWeapon:
		return t.Weapon
	default:
		return t.Room
	}
}

// Names returns the suspect, weapon and room display names
func (t Triple) Names() (suspect, weapon, room string) {
	cards := t.Cards()
	return cards[0].Name(), cards[1].Name(), cards[2].Name()
}
