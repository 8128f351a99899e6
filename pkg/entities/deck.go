package entities

import "github.com/fadedpez/roguejack/pkg/rng"

// BuildDeck returns 52*decks cards shuffled with r. Before shuffling the
// cards are ordered suit-major, rank-minor.
func BuildDeck(r *rng.RNG, decks int) []Card {
	if decks < 1 {
		decks = 1
	}

	cards := make([]Card, 0, 52*decks)
	for d := 0; d < decks; d++ {
		for _, suit := range Suits {
			for _, rank := range Ranks {
				cards = append(cards, NewCard(rank, suit))
			}
		}
	}

	return rng.Shuffle(r, cards)
}
