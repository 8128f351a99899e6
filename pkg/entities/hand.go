package entities

import "strings"

// Hand is an ordered sequence of cards. During a hand it only ever grows.
type Hand []Card

// String lists the cards in the hand
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// CountSuit returns how many cards in the hand have the suit
func (h Hand) CountSuit(s Suit) int {
	n := 0
	for _, c := range h {
		if c.Suit == s {
			n++
		}
	}
	return n
}

// CountRanks returns how many cards in the hand have any of the ranks
func (h Hand) CountRanks(ranks ...Rank) int {
	n := 0
	for _, c := range h {
		for _, r := range ranks {
			if c.Rank == r {
				n++
				break
			}
		}
	}
	return n
}

// CountColor returns how many cards in the hand have the color
func (h Hand) CountColor(color Color) int {
	n := 0
	for _, c := range h {
		if c.Suit.Color() == color {
			n++
		}
	}
	return n
}

// HandScore is derived from a Hand and the rules; it is recomputed rather
// than edited, except when a bust override replaces it.
type HandScore struct {
	Value       int  `json:"value"`
	Soft        bool `json:"soft"`
	Busted      bool `json:"busted"`
	IsBlackjack bool `json:"isBlackjack"`
}

// BustOverride is what a bust hook returns to un-bust a hand. EffectiveScore
// becomes the hand's comparison score.
type BustOverride struct {
	Busted         bool `json:"busted"`
	EffectiveScore int  `json:"effectiveScore"`
}

// Winner of a hand
type Winner string

const (
	WinnerPlayer Winner = "player"
	WinnerDealer Winner = "dealer"
	WinnerPush   Winner = "push"
)

// DamageTarget names who took damage in a hand
type DamageTarget string

const (
	TargetPlayer DamageTarget = "player"
	TargetDealer DamageTarget = "dealer"
	TargetNone   DamageTarget = "none"
)

// HandResult is produced once per resolved hand
type HandResult struct {
	PlayerScore     int          `json:"playerScore"`
	DealerScore     int          `json:"dealerScore"`
	Winner          Winner       `json:"winner"`
	DamageDealt     int          `json:"damageDealt"`
	DamageTarget    DamageTarget `json:"damageTarget"`
	Dodged          bool         `json:"dodged"`
	DamageBreakdown string       `json:"damageBreakdown"`
}
