package entities

import "fmt"

// Suit represents a card suit
type Suit string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits lists the suits in deck construction order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	switch s {
	case Hearts, Diamonds, Clubs, Spades:
		return true
	}
	return false
}

// Color returns "red" or "black"
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Color groups suits
type Color string

const (
	Red   Color = "red"
	Black Color = "black"
)

// Rank represents a card rank
type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

// Ranks lists the ranks in deck construction order
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Valid reports whether r is a known rank
func (r Rank) Valid() bool {
	for _, rank := range Ranks {
		if rank == r {
			return true
		}
	}
	return false
}

// Card represents a playing card. Cards are values and never change.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the string representation of the card
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// IsAce reports whether the card is an ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// CardValue returns the legal values of a card. Number ranks return their
// numeral, J/Q/K return 10 and an ace returns both 1 and 11; picking between
// the ace values is left to scoring.
func CardValue(c Card) []int {
	switch c.Rank {
	case Ace:
		return []int{1, 11}
	case Jack, Queen, King:
		return []int{10}
	case Two:
		return []int{2}
	case Three:
		return []int{3}
	case Four:
		return []int{4}
	case Five:
		return []int{5}
	case Six:
		return []int{6}
	case Seven:
		return []int{7}
	case Eight:
		return []int{8}
	case Nine:
		return []int{9}
	case Ten:
		return []int{10}
	}
	return []int{0}
}
