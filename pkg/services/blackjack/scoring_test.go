package blackjack

import (
	"testing"

	"github.com/fadedpez/roguejack/pkg/entities"
	"github.com/stretchr/testify/assert"
)

func card(rank entities.Rank) entities.Card {
	return entities.NewCard(rank, entities.Spades)
}

func hand(ranks ...entities.Rank) entities.Hand {
	h := make(entities.Hand, 0, len(ranks))
	for _, r := range ranks {
		h = append(h, card(r))
	}
	return h
}

func TestScoreHand(t *testing.T) {
	rules := entities.DefaultRules()

	testCases := []struct {
		name     string
		hand     entities.Hand
		expected entities.HandScore
	}{
		{"ace king is blackjack", hand(entities.Ace, entities.King), entities.HandScore{Value: 21, Soft: true, IsBlackjack: true}},
		{"three card 21 is not blackjack", hand(entities.Ace, entities.Ace, entities.Nine), entities.HandScore{Value: 21, Soft: true}},
		{"hard 21", hand(entities.Seven, entities.Seven, entities.Seven), entities.HandScore{Value: 21}},
		{"soft 17", hand(entities.Ace, entities.Six), entities.HandScore{Value: 17, Soft: true}},
		{"ace demoted to hard", hand(entities.Ace, entities.Six, entities.Nine), entities.HandScore{Value: 16}},
		{"two aces", hand(entities.Ace, entities.Ace), entities.HandScore{Value: 12, Soft: true}},
		{"bust", hand(entities.King, entities.Queen, entities.Five), entities.HandScore{Value: 25, Busted: true}},
		{"bust with forced low aces", hand(entities.Ace, entities.King, entities.Queen, entities.Five), entities.HandScore{Value: 26, Busted: true}},
		{"empty", hand(), entities.HandScore{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ScoreHand(tc.hand, rules))
		})
	}
}

func TestScoreHandRuleParameters(t *testing.T) {
	t.Run("raised bust threshold", func(t *testing.T) {
		rules := entities.DefaultRules()
		rules.Scoring.BustThreshold = 25
		score := ScoreHand(hand(entities.Ace, entities.King, entities.Three), rules)
		assert.Equal(t, entities.HandScore{Value: 24, Soft: true}, score, "ace stays high under the higher threshold")
	})

	t.Run("bust save threshold rescues", func(t *testing.T) {
		rules := entities.DefaultRules()
		save := 23
		rules.Scoring.BustSaveThreshold = &save

		assert.False(t, ScoreHand(hand(entities.King, entities.Queen, entities.Three), rules).Busted)
		saved := ScoreHand(hand(entities.King, entities.Queen, entities.Two), rules)
		assert.Equal(t, 22, saved.Value)
		assert.False(t, saved.Busted)
		assert.True(t, ScoreHand(hand(entities.King, entities.Queen, entities.Four), rules).Busted)
	})

	t.Run("additional blackjack value", func(t *testing.T) {
		rules := entities.DefaultRules()
		rules.Scoring.AdditionalBlackjackValues = []int{20}
		assert.True(t, ScoreHand(hand(entities.King, entities.Queen), rules).IsBlackjack)
		assert.False(t, ScoreHand(hand(entities.King, entities.Five, entities.Five), rules).IsBlackjack)
	})
}

func TestCompareHands(t *testing.T) {
	rules := entities.DefaultRules()
	score := func(v int) entities.HandScore { return entities.HandScore{Value: v} }
	bust := func(v int) entities.HandScore { return entities.HandScore{Value: v, Busted: true} }
	natural := entities.HandScore{Value: 21, Soft: true, IsBlackjack: true}

	assert.Equal(t, entities.WinnerPlayer, CompareHands(score(20), score(18), rules))
	assert.Equal(t, entities.WinnerDealer, CompareHands(score(17), score(19), rules))
	assert.Equal(t, entities.WinnerPush, CompareHands(score(19), score(19), rules))
	assert.Equal(t, entities.WinnerDealer, CompareHands(bust(24), score(12), rules))
	assert.Equal(t, entities.WinnerPlayer, CompareHands(score(12), bust(22), rules))
	assert.Equal(t, entities.WinnerPush, CompareHands(bust(23), bust(22), rules))
	assert.Equal(t, entities.WinnerPlayer, CompareHands(natural, score(21), rules))
	assert.Equal(t, entities.WinnerDealer, CompareHands(score(21), natural, rules))
	assert.Equal(t, entities.WinnerPush, CompareHands(natural, natural, rules))

	rules.WinConditions.TieResolution = entities.WinnerPlayer
	rules.WinConditions.DoubleBustResolution = entities.WinnerDealer
	assert.Equal(t, entities.WinnerPlayer, CompareHands(score(19), score(19), rules))
	assert.Equal(t, entities.WinnerDealer, CompareHands(bust(23), bust(22), rules))
}

func TestCalculateBaseDamage(t *testing.T) {
	testCases := []struct {
		name     string
		winner   entities.HandScore
		loser    entities.HandScore
		mutate   func(r *entities.GameRules)
		expected int
	}{
		{
			name:     "score difference",
			winner:   entities.HandScore{Value: 20},
			loser:    entities.HandScore{Value: 17},
			expected: 3,
		},
		{
			name:     "busted loser takes whole score",
			winner:   entities.HandScore{Value: 18},
			loser:    entities.HandScore{Value: 25, Busted: true},
			expected: 18,
		},
		{
			name:     "blackjack payout floors",
			winner:   entities.HandScore{Value: 21, Soft: true, IsBlackjack: true},
			loser:    entities.HandScore{Value: 18},
			expected: 4,
		},
		{
			name:     "base multiplier floors before clamp",
			winner:   entities.HandScore{Value: 20},
			loser:    entities.HandScore{Value: 15},
			mutate:   func(r *entities.GameRules) { r.Damage.BaseMultiplier = 1.3 },
			expected: 6,
		},
		{
			name:     "minimum damage",
			winner:   entities.HandScore{Value: 20},
			loser:    entities.HandScore{Value: 19},
			mutate:   func(r *entities.GameRules) { r.Damage.MinimumDamage = 5 },
			expected: 5,
		},
		{
			name:     "maximum damage before flat bonus",
			winner:   entities.HandScore{Value: 21},
			loser:    entities.HandScore{Value: 30, Busted: true},
			mutate:   func(r *entities.GameRules) { r.Damage.MaximumDamage = 10; r.Damage.FlatBonusDamage = 2 },
			expected: 12,
		},
		{
			name:   "flat then percent bonus",
			winner: entities.HandScore{Value: 20},
			loser:  entities.HandScore{Value: 15},
			mutate: func(r *entities.GameRules) {
				r.Damage.FlatBonusDamage = 2
				r.Damage.PercentBonusDamage = 0.5
			},
			expected: 10,
		},
		{
			name:   "blackjack bonus added before payout",
			winner: entities.HandScore{Value: 21, IsBlackjack: true},
			loser:  entities.HandScore{Value: 18},
			mutate: func(r *entities.GameRules) {
				r.Damage.BlackjackBonusDamage = 2
			},
			expected: 7,
		},
		{
			name:   "never negative",
			winner: entities.HandScore{Value: 20},
			loser:  entities.HandScore{Value: 18},
			mutate: func(r *entities.GameRules) {
				r.Damage.FlatBonusDamage = -10
			},
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rules := entities.DefaultRules()
			if tc.mutate != nil {
				tc.mutate(&rules)
			}
			assert.Equal(t, tc.expected, CalculateBaseDamage(tc.winner, tc.loser, rules))
		})
	}
}

func TestBaseDamageMatchesFormula(t *testing.T) {
	rules := entities.DefaultRules()
	rules.Damage.BaseMultiplier = 1.75
	rules.Damage.MinimumDamage = 0

	for w := 2; w <= 21; w++ {
		for l := 2; l < w; l++ {
			got := CalculateBaseDamage(entities.HandScore{Value: w}, entities.HandScore{Value: l}, rules)
			assert.Equal(t, entities.ScaleFloor(w-l, 1.75), got)
		}
		busted := CalculateBaseDamage(entities.HandScore{Value: w}, entities.HandScore{Value: 25, Busted: true}, rules)
		assert.Equal(t, entities.ScaleFloor(w, 1.75), busted)
	}
}
