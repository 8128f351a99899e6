package effects

import (
	"testing"

	"github.com/fadedpez/roguejack/pkg/entities"
	"github.com/stretchr/testify/assert"
)

func hearts(ranks ...entities.Rank) []entities.Card {
	out := make([]entities.Card, len(ranks))
	for i, r := range ranks {
		out[i] = entities.NewCard(r, entities.Hearts)
	}
	return out
}

func TestEvalDamageDealt(t *testing.T) {
	hand := append(hearts(entities.Ace, entities.Five), entities.NewCard(entities.Five, entities.Spades))
	base := entities.ModifierContext{
		PlayerHand:  entities.Hand(hand),
		PlayerScore: entities.HandScore{Value: 21, Soft: true},
		Player:      &entities.PlayerState{HP: 10, MaxHP: 50},
		HandNumber:  2,
	}

	testCases := []struct {
		effect   entities.ComponentEffect
		ctx      func(c *entities.ModifierContext)
		expected int
	}{
		{effect: entities.ComponentEffect{Type: entities.EffectFlatDamageBonus, Value: 3}, expected: 13},
		{effect: entities.ComponentEffect{Type: entities.EffectFlatDamageBonus, Value: -3}, expected: 7},
		{effect: entities.ComponentEffect{Type: entities.EffectPercentDamageBonus, Value: 0.25}, expected: 12},
		{effect: entities.ComponentEffect{Type: entities.EffectDamageMultiplier, Value: 1.5}, expected: 15},
		{effect: entities.ComponentEffect{Type: entities.EffectBlackjackDamageBonus, Value: 5}, expected: 10},
		{
			effect:   entities.ComponentEffect{Type: entities.EffectBlackjackDamageBonus, Value: 5},
			ctx:      func(c *entities.ModifierContext) { c.PlayerScore.IsBlackjack = true },
			expected: 15,
		},
		{effect: entities.ComponentEffect{Type: entities.EffectSuitDamageBonus, Value: 2, Suit: entities.Hearts}, expected: 14},
		{effect: entities.ComponentEffect{Type: entities.EffectSuitDamageBonus, Value: 2, Suit: entities.Hearts, Max: 3}, expected: 13},
		{effect: entities.ComponentEffect{Type: entities.EffectRankDamageBonus, Value: 1, Rank: entities.Five}, expected: 12},
		{effect: entities.ComponentEffect{Type: entities.EffectRankDamageBonus, Value: 1, Ranks: []entities.Rank{entities.Ace, entities.Five}}, expected: 13},
		{effect: entities.ComponentEffect{Type: entities.EffectColorDamageBonus, Value: 1, Color: entities.Black}, expected: 11},
		{effect: entities.ComponentEffect{Type: entities.EffectSoftHandDamageBonus, Value: 3}, expected: 13},
		{effect: entities.ComponentEffect{Type: entities.EffectLowScoreDamageBonus, Value: 3, MaxScore: 15}, expected: 10},
		{effect: entities.ComponentEffect{Type: entities.EffectHighScoreDamageBonus, Value: 3, MinScore: 20}, expected: 13},
		{effect: entities.ComponentEffect{Type: entities.EffectExactScoreDamageBonus, Value: 7, Threshold: 21}, expected: 17},
		{effect: entities.ComponentEffect{Type: entities.EffectCardCountDamageBonus, Value: 1}, expected: 13},
		{effect: entities.ComponentEffect{Type: entities.EffectDealerBustDamageBonus, Value: 4}, expected: 10},
		{
			effect:   entities.ComponentEffect{Type: entities.EffectDealerBustDamageBonus, Value: 4},
			ctx:      func(c *entities.ModifierContext) { c.DealerScore.Busted = true },
			expected: 14,
		},
		{effect: entities.ComponentEffect{Type: entities.EffectDoubleDownDamageBonus, Value: 0.5}, expected: 10},
		{
			effect:   entities.ComponentEffect{Type: entities.EffectDoubleDownDamageBonus, Value: 0.5},
			ctx:      func(c *entities.ModifierContext) { c.DoubledDown = true },
			expected: 15,
		},
		{effect: entities.ComponentEffect{Type: entities.EffectLowHPDamageBonus, Value: 1}, expected: 20},
		{effect: entities.ComponentEffect{Type: entities.EffectLowHPDamageBonus, Value: 1, Threshold: 0.1}, expected: 10},
		{effect: entities.ComponentEffect{Type: entities.EffectFirstHandDamageBonus, Value: 5}, expected: 10},
		{
			effect:   entities.ComponentEffect{Type: entities.EffectFirstHandDamageBonus, Value: 5},
			ctx:      func(c *entities.ModifierContext) { c.HandNumber = 1 },
			expected: 15,
		},
	}

	for _, tc := range testCases {
		t.Run(string(tc.effect.Type), func(t *testing.T) {
			ctx := base
			if tc.ctx != nil {
				tc.ctx(&ctx)
			}
			assert.Equal(t, tc.expected, evalDamageDealt(tc.effect, 10, &ctx))
		})
	}
}

func TestEvalDamageReceived(t *testing.T) {
	base := entities.ModifierContext{
		PlayerHand: entities.Hand(hearts(entities.Two, entities.Three)),
		Player:     &entities.PlayerState{HP: 40, MaxHP: 50},
	}

	testCases := []struct {
		effect   entities.ComponentEffect
		ctx      func(c *entities.ModifierContext)
		expected int
	}{
		{effect: entities.ComponentEffect{Type: entities.EffectFlatDamageReduction, Value: 3}, expected: 7},
		{effect: entities.ComponentEffect{Type: entities.EffectFlatDamageReduction, Value: 20}, expected: 0},
		{effect: entities.ComponentEffect{Type: entities.EffectPercentDamageReduction, Value: 0.4}, expected: 6},
		{effect: entities.ComponentEffect{Type: entities.EffectBustDamageReduction, Value: 0.8}, expected: 10},
		{
			effect:   entities.ComponentEffect{Type: entities.EffectBustDamageReduction, Value: 0.8},
			ctx:      func(c *entities.ModifierContext) { c.PlayerScore.Busted = true },
			expected: 2,
		},
		{effect: entities.ComponentEffect{Type: entities.EffectBlackjackDamageReduction, Value: 0.5}, expected: 10},
		{
			effect:   entities.ComponentEffect{Type: entities.EffectBlackjackDamageReduction, Value: 0.5},
			ctx:      func(c *entities.ModifierContext) { c.DealerScore.IsBlackjack = true },
			expected: 5,
		},
		{effect: entities.ComponentEffect{Type: entities.EffectSuitDamageReduction, Value: 2, Suit: entities.Hearts}, expected: 6},
		{effect: entities.ComponentEffect{Type: entities.EffectSuitDamageReduction, Value: 2, Suit: entities.Clubs}, expected: 10},
		{effect: entities.ComponentEffect{Type: entities.EffectDamageCap, Value: 7}, expected: 7},
		{effect: entities.ComponentEffect{Type: entities.EffectDamageCap, Value: 70}, expected: 10},
		{effect: entities.ComponentEffect{Type: entities.EffectLowHPDamageReduction, Value: 0.5}, expected: 10},
		{
			effect:   entities.ComponentEffect{Type: entities.EffectLowHPDamageReduction, Value: 0.5},
			ctx:      func(c *entities.ModifierContext) { c.Player = &entities.PlayerState{HP: 5, MaxHP: 50} },
			expected: 5,
		},
		{effect: entities.ComponentEffect{Type: entities.EffectFlatDamageTakenIncrease, Value: 2}, expected: 12},
		{effect: entities.ComponentEffect{Type: entities.EffectPercentDamageTakenIncrease, Value: 0.2}, expected: 12},
	}

	for _, tc := range testCases {
		t.Run(string(tc.effect.Type), func(t *testing.T) {
			ctx := base
			if tc.ctx != nil {
				tc.ctx(&ctx)
			}
			assert.Equal(t, tc.expected, evalDamageReceived(tc.effect, 10, &ctx))
		})
	}
}

func TestEvalBust(t *testing.T) {
	busted := entities.HandScore{Value: 24, Busted: true}
	ctx := &entities.ModifierContext{Rules: entities.DefaultRules()}

	assert.Equal(t, &entities.BustOverride{EffectiveScore: 15}, evalBust(entities.ComponentEffect{Type: entities.EffectBustSave, Value: 15}, busted, ctx))
	assert.Nil(t, evalBust(entities.ComponentEffect{Type: entities.EffectBustSave, Value: 15, Threshold: 23}, busted, ctx))
	assert.Equal(t, &entities.BustOverride{EffectiveScore: 12}, evalBust(entities.ComponentEffect{Type: entities.EffectBustImmunity, Value: 12}, busted, ctx))
	assert.Equal(t, &entities.BustOverride{EffectiveScore: 21}, evalBust(entities.ComponentEffect{Type: entities.EffectBustScoreReduction, Value: 3}, busted, ctx))
	assert.Nil(t, evalBust(entities.ComponentEffect{Type: entities.EffectBustScoreReduction, Value: 2}, busted, ctx))
	assert.Nil(t, evalBust(entities.ComponentEffect{Type: entities.EffectFlatDamageBonus, Value: 2}, busted, ctx))
}

func TestEvalRules(t *testing.T) {
	testCases := []struct {
		effect entities.ComponentEffect
		check  func(t *testing.T, r entities.GameRules)
	}{
		{entities.ComponentEffect{Type: entities.EffectBustThresholdBonus, Value: 2}, func(t *testing.T, r entities.GameRules) {
			assert.Equal(t, 23, r.Scoring.BustThreshold)
		}},
		{entities.ComponentEffect{Type: entities.EffectDealerStandsOn, Value: 16}, func(t *testing.T, r entities.GameRules) {
			assert.Equal(t, 16, r.Dealer.StandsOn)
		}},
		{entities.ComponentEffect{Type: entities.EffectDealerHitsSoft17, Value: 1}, func(t *testing.T, r entities.GameRules) {
			assert.False(t, r.Dealer.StandsOnSoft17)
		}},
		{entities.ComponentEffect{Type: entities.EffectDoubleDownMultiplier, Value: 3}, func(t *testing.T, r entities.GameRules) {
			assert.Equal(t, 3.0, r.Actions.DoubleDownMultiplier)
		}},
		{entities.ComponentEffect{Type: entities.EffectAdditionalBlackjackValue, Value: 20}, func(t *testing.T, r entities.GameRules) {
			assert.Equal(t, []int{20}, r.Scoring.AdditionalBlackjackValues)
		}},
		{entities.ComponentEffect{Type: entities.EffectBustSaveThreshold, Value: 23}, func(t *testing.T, r entities.GameRules) {
			if assert.NotNil(t, r.Scoring.BustSaveThreshold) {
				assert.Equal(t, 23, *r.Scoring.BustSaveThreshold)
			}
		}},
		{entities.ComponentEffect{Type: entities.EffectBlackjackMultiplierBonus, Value: 0.5}, func(t *testing.T, r entities.GameRules) {
			assert.Equal(t, 2.0, r.Damage.BlackjackPayoutMultiplier)
		}},
		{entities.ComponentEffect{Type: entities.EffectBaseDamageMultiplierBonus, Value: 0.25}, func(t *testing.T, r entities.GameRules) {
			assert.Equal(t, 1.25, r.Damage.BaseMultiplier)
		}},
		{entities.ComponentEffect{Type: entities.EffectMinimumDamage, Value: 4}, func(t *testing.T, r entities.GameRules) {
			assert.Equal(t, 4, r.Damage.MinimumDamage)
		}},
		{entities.ComponentEffect{Type: entities.EffectArmorRating, Value: 2}, func(t *testing.T, r entities.GameRules) {
			assert.Equal(t, 2, r.Damage.FlatDamageReduction)
		}},
		{entities.ComponentEffect{Type: entities.EffectWard, Value: 0.5}, func(t *testing.T, r entities.GameRules) {
			assert.Equal(t, 0.5, r.Damage.PercentDamageReduction)
		}},
		{entities.ComponentEffect{Type: entities.EffectTiesFavorPlayer, Value: 1}, func(t *testing.T, r entities.GameRules) {
			assert.Equal(t, entities.WinnerPlayer, r.WinConditions.TieResolution)
		}},
		{entities.ComponentEffect{Type: entities.EffectExtraInitialCard, Value: 1}, func(t *testing.T, r entities.GameRules) {
			assert.Equal(t, 3, r.TurnOrder.InitialPlayerCards)
		}},
		{entities.ComponentEffect{Type: entities.EffectDisableDoubleDown, Value: 1}, func(t *testing.T, r entities.GameRules) {
			assert.False(t, r.Actions.CanDoubleDown)
		}},
		{entities.ComponentEffect{Type: entities.EffectShopDiscount, Value: 0.25}, func(t *testing.T, r entities.GameRules) {
			assert.Equal(t, 0.75, r.Economy.ShopPriceMultiplier)
		}},
		{entities.ComponentEffect{Type: entities.EffectGoldPerWinBonus, Value: 5}, func(t *testing.T, r entities.GameRules) {
			assert.Equal(t, 15, r.Economy.GoldPerBattle)
			assert.Equal(t, 30, r.Economy.GoldPerBossBattle)
		}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.effect.Type), func(t *testing.T) {
			tc.check(t, evalRules(tc.effect, entities.DefaultRules()))
		})
	}
}

func TestEveryTypeCompilesToAHook(t *testing.T) {
	for _, typ := range Types() {
		family, _ := FamilyOf(typ)
		if family == FamilyInstant {
			continue
		}
		bound, _ := BoundOf(typ)
		m := compileOne(entities.ComponentEffect{Type: typ, Value: bound.Default})

		hooks := 0
		for _, set := range []bool{
			m.ModifyRules != nil,
			m.ModifyDamageDealt != nil,
			m.ModifyDamageReceived != nil,
			m.ModifyBust != nil,
			m.DodgeCheck != nil,
			m.ModifyGoldEarned != nil,
			m.OnBattleStart != nil,
			m.OnHandStart != nil,
			m.OnHandEnd != nil,
		} {
			if set {
				hooks++
			}
		}
		assert.Equal(t, 1, hooks, "%s should compile into exactly one hook", typ)
	}
}
