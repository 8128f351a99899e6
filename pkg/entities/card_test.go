package entities

import (
	"testing"

	"github.com/fadedpez/roguejack/pkg/rng"
	"github.com/stretchr/testify/suite"
)

type CardsTestSuite struct {
	suite.Suite
}

func TestCardsSuite(t *testing.T) {
	suite.Run(t, new(CardsTestSuite))
}

func (s *CardsTestSuite) TestCardString() {
	testCases := []struct {
		name     string
		card     Card
		expected string
	}{
		{name: "ace of hearts", card: NewCard(Ace, Hearts), expected: "A of hearts"},
		{name: "ten of diamonds", card: NewCard(Ten, Diamonds), expected: "10 of diamonds"},
		{name: "king of clubs", card: NewCard(King, Clubs), expected: "K of clubs"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.card.String())
		})
	}
}

func (s *CardsTestSuite) TestCardValue() {
	s.Equal([]int{1, 11}, CardValue(NewCard(Ace, Spades)), "ace keeps both values")
	s.Equal([]int{10}, CardValue(NewCard(Jack, Hearts)))
	s.Equal([]int{10}, CardValue(NewCard(Queen, Hearts)))
	s.Equal([]int{10}, CardValue(NewCard(King, Hearts)))
	s.Equal([]int{7}, CardValue(NewCard(Seven, Clubs)))
	s.Equal([]int{10}, CardValue(NewCard(Ten, Clubs)))
}

func (s *CardsTestSuite) TestColors() {
	s.Equal(Red, Hearts.Color())
	s.Equal(Red, Diamonds.Color())
	s.Equal(Black, Clubs.Color())
	s.Equal(Black, Spades.Color())
}

func (s *CardsTestSuite) TestBuildDeck() {
	for _, decks := range []int{1, 2, 6} {
		cards := BuildDeck(rng.New(rng.NumberSeed(7)), decks)
		s.Len(cards, 52*decks)

		counts := map[Card]int{}
		for _, c := range cards {
			counts[c]++
		}
		s.Len(counts, 52, "every distinct card is present")
		for card, n := range counts {
			s.Equal(decks, n, "%s appears once per deck", card)
		}
	}
}

func (s *CardsTestSuite) TestBuildDeckDeterministic() {
	a := BuildDeck(rng.New(rng.StringSeed("same")), 1)
	b := BuildDeck(rng.New(rng.StringSeed("same")), 1)
	c := BuildDeck(rng.New(rng.StringSeed("other")), 1)

	s.Equal(a, b)
	s.NotEqual(a, c)
}

func (s *CardsTestSuite) TestBuildDeckConsumesShuffleDraws() {
	r := rng.New(rng.NumberSeed(3))
	BuildDeck(r, 2)
	s.Equal(103, r.CallCount())
}

func (s *CardsTestSuite) TestHandCounts() {
	hand := Hand{NewCard(Ace, Hearts), NewCard(King, Hearts), NewCard(Two, Spades), NewCard(King, Diamonds)}

	s.Equal(2, hand.CountSuit(Hearts))
	s.Equal(0, hand.CountSuit(Clubs))
	s.Equal(2, hand.CountRanks(King))
	s.Equal(3, hand.CountRanks(King, Ace))
	s.Equal(3, hand.CountColor(Red))
	s.Equal(1, hand.CountColor(Black))
}
