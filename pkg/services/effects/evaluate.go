package effects

import "github.com/fadedpez/roguejack/pkg/entities"

// Hooks read the hand from the player's side: PlayerHand and PlayerScore
// are the player's, DealerHand and DealerScore the enemy's.

// defaultLowHPThreshold is the hp fraction used when a low hp effect has no threshold
const defaultLowHPThreshold = 0.3

func orEmpty(ctx *entities.ModifierContext) *entities.ModifierContext {
	if ctx == nil {
		return &entities.ModifierContext{}
	}
	return ctx
}

func flat(e entities.ComponentEffect) int {
	return entities.FloorInt(e.Value)
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// perCard scales the effect value by count, capped at Max when set
func perCard(e entities.ComponentEffect, count int) int {
	bonus := entities.FloorInt(e.Value * float64(count))
	if e.Max > 0 && bonus > entities.FloorInt(e.Max) {
		return entities.FloorInt(e.Max)
	}
	return bonus
}

func ranksOf(e entities.ComponentEffect) []entities.Rank {
	if len(e.Ranks) > 0 {
		return e.Ranks
	}
	if e.Rank != "" {
		return []entities.Rank{e.Rank}
	}
	return nil
}

func lowHP(e entities.ComponentEffect, ctx *entities.ModifierContext) bool {
	p := ctx.Player
	if p == nil || p.MaxHP <= 0 {
		return false
	}
	threshold := e.Threshold
	if threshold <= 0 {
		threshold = defaultLowHPThreshold
	}
	return float64(p.HP) <= threshold*float64(p.MaxHP)
}

func conditionHolds(condition string, ctx *entities.ModifierContext) bool {
	if condition == "" {
		return true
	}
	if ctx == nil {
		return false
	}

	switch condition {
	case entities.ConditionPlayerBlackjack:
		return ctx.PlayerScore.IsBlackjack
	case entities.ConditionPlayerSoft:
		return ctx.PlayerScore.Soft
	case entities.ConditionPlayerBusted:
		return ctx.PlayerScore.Busted
	case entities.ConditionDealerBusted:
		return ctx.DealerScore.Busted
	case entities.ConditionDealerBlackjack:
		return ctx.DealerScore.IsBlackjack
	case entities.ConditionDoubledDown:
		return ctx.DoubledDown
	case entities.ConditionFirstHand:
		return ctx.HandNumber == 1
	}
	return false
}

func evalDamageDealt(e entities.ComponentEffect, damage int, ctx *entities.ModifierContext) int {
	ctx = orEmpty(ctx)
	score := ctx.PlayerScore

	switch e.Type {
	case entities.EffectFlatDamageBonus:
		return damage + flat(e)
	case entities.EffectPercentDamageBonus:
		return entities.ScaleFloor(damage, 1+e.Value)
	case entities.EffectDamageMultiplier:
		return entities.ScaleFloor(damage, e.Value)
	case entities.EffectBlackjackDamageBonus:
		if score.IsBlackjack {
			return damage + flat(e)
		}
	case entities.EffectSuitDamageBonus:
		return damage + perCard(e, ctx.PlayerHand.CountSuit(e.Suit))
	case entities.EffectRankDamageBonus:
		return damage + perCard(e, ctx.PlayerHand.CountRanks(ranksOf(e)...))
	case entities.EffectColorDamageBonus:
		return damage + perCard(e, ctx.PlayerHand.CountColor(e.Color))
	case entities.EffectSoftHandDamageBonus:
		if score.Soft {
			return damage + flat(e)
		}
	case entities.EffectLowScoreDamageBonus:
		if score.Value <= e.MaxScore {
			return damage + flat(e)
		}
	case entities.EffectHighScoreDamageBonus:
		if score.Value >= e.MinScore {
			return damage + flat(e)
		}
	case entities.EffectExactScoreDamageBonus:
		if score.Value == entities.FloorInt(e.Threshold) {
			return damage + flat(e)
		}
	case entities.EffectCardCountDamageBonus:
		return damage + perCard(e, len(ctx.PlayerHand))
	case entities.EffectDealerBustDamageBonus:
		if ctx.DealerScore.Busted {
			return damage + flat(e)
		}
	case entities.EffectDoubleDownDamageBonus:
		if ctx.DoubledDown {
			return entities.ScaleFloor(damage, 1+e.Value)
		}
	case entities.EffectLowHPDamageBonus:
		if lowHP(e, ctx) {
			return entities.ScaleFloor(damage, 1+e.Value)
		}
	case entities.EffectFirstHandDamageBonus:
		if ctx.HandNumber == 1 {
			return damage + flat(e)
		}
	}
	return damage
}

func evalDamageReceived(e entities.ComponentEffect, damage int, ctx *entities.ModifierContext) int {
	ctx = orEmpty(ctx)

	switch e.Type {
	case entities.EffectFlatDamageReduction:
		return nonNegative(damage - flat(e))
	case entities.EffectPercentDamageReduction:
		return nonNegative(entities.ScaleFloor(damage, 1-e.Value))
	case entities.EffectBustDamageReduction:
		if ctx.PlayerScore.Busted {
			return nonNegative(entities.ScaleFloor(damage, 1-e.Value))
		}
	case entities.EffectBlackjackDamageReduction:
		if ctx.DealerScore.IsBlackjack {
			return nonNegative(entities.ScaleFloor(damage, 1-e.Value))
		}
	case entities.EffectSuitDamageReduction:
		return nonNegative(damage - perCard(e, ctx.PlayerHand.CountSuit(e.Suit)))
	case entities.EffectDamageCap:
		if limit := flat(e); damage > limit {
			return limit
		}
	case entities.EffectLowHPDamageReduction:
		if lowHP(e, ctx) {
			return nonNegative(entities.ScaleFloor(damage, 1-e.Value))
		}
	case entities.EffectFlatDamageTakenIncrease:
		return damage + flat(e)
	case entities.EffectPercentDamageTakenIncrease:
		return entities.ScaleFloor(damage, 1+e.Value)
	}
	return damage
}

// evalDodge draws from the RNG only when the effect's own gate is open
func evalDodge(e entities.ComponentEffect, ctx *entities.ModifierContext) bool {
	if ctx == nil || ctx.RNG == nil {
		return false
	}

	switch e.Type {
	case entities.EffectDodgeChance:
		return ctx.RNG.Chance(e.Value)
	case entities.EffectLowHPDodgeChance:
		return lowHP(e, ctx) && ctx.RNG.Chance(e.Value)
	case entities.EffectBustDodgeChance:
		return ctx.PlayerScore.Busted && ctx.RNG.Chance(e.Value)
	}
	return false
}

func evalBust(e entities.ComponentEffect, score entities.HandScore, ctx *entities.ModifierContext) *entities.BustOverride {
	switch e.Type {
	case entities.EffectBustSave:
		if e.Threshold <= 0 || float64(score.Value) <= e.Threshold {
			return &entities.BustOverride{Busted: false, EffectiveScore: flat(e)}
		}
	case entities.EffectBustImmunity:
		return &entities.BustOverride{Busted: false, EffectiveScore: flat(e)}
	case entities.EffectBustScoreReduction:
		threshold := entities.DefaultRules().Scoring.BustThreshold
		if ctx != nil && ctx.Rules.Scoring.BustThreshold > 0 {
			threshold = ctx.Rules.Scoring.BustThreshold
		}
		if reduced := score.Value - flat(e); reduced <= threshold {
			return &entities.BustOverride{Busted: false, EffectiveScore: reduced}
		}
	}
	return nil
}

func evalRules(e entities.ComponentEffect, rules entities.GameRules) entities.GameRules {
	v := flat(e)

	switch e.Type {
	case entities.EffectBustThresholdBonus:
		rules.Scoring.BustThreshold += v
	case entities.EffectDealerStandsOn:
		rules.Dealer.StandsOn = v
	case entities.EffectDealerHitsSoft17:
		rules.Dealer.StandsOnSoft17 = false
	case entities.EffectDoubleDownMultiplier:
		rules.Actions.DoubleDownMultiplier = e.Value
	case entities.EffectAdditionalBlackjackValue:
		rules.Scoring.AdditionalBlackjackValues = append(rules.Scoring.AdditionalBlackjackValues, v)
	case entities.EffectBustSaveThreshold:
		if rules.Scoring.BustSaveThreshold == nil || *rules.Scoring.BustSaveThreshold < v {
			rules.Scoring.BustSaveThreshold = &v
		}
	case entities.EffectBlackjackMultiplierBonus:
		rules.Damage.BlackjackPayoutMultiplier = max(rules.Damage.BlackjackPayoutMultiplier+e.Value, 0)
	case entities.EffectBaseDamageMultiplierBonus:
		rules.Damage.BaseMultiplier = max(rules.Damage.BaseMultiplier+e.Value, 0)
	case entities.EffectMinimumDamage:
		rules.Damage.MinimumDamage = min(max(rules.Damage.MinimumDamage, v), rules.Damage.MaximumDamage)
	case entities.EffectArmorRating:
		rules.Damage.FlatDamageReduction += v
	case entities.EffectWard:
		rules.Damage.PercentDamageReduction = min(rules.Damage.PercentDamageReduction+e.Value, 0.9)
	case entities.EffectTiesFavorPlayer:
		rules.WinConditions.TieResolution = entities.WinnerPlayer
	case entities.EffectExtraInitialCard:
		rules.TurnOrder.InitialPlayerCards += v
	case entities.EffectDisableDoubleDown:
		rules.Actions.CanDoubleDown = false
	case entities.EffectShopDiscount:
		rules.Economy.ShopPriceMultiplier *= 1 - e.Value
	case entities.EffectGoldPerWinBonus:
		rules.Economy.GoldPerBattle += v
		rules.Economy.GoldPerBossBattle += v
	}
	return rules
}

func evalGold(e entities.ComponentEffect, gold int) int {
	switch e.Type {
	case entities.EffectFlatGoldBonus:
		return gold + flat(e)
	case entities.EffectPercentGoldBonus:
		return entities.ScaleFloor(gold, 1+e.Value)
	case entities.EffectGoldPenalty:
		return gold - flat(e)
	}
	return gold
}

type phase int

const (
	phaseNone phase = iota
	phaseBattleStart
	phaseHandStart
	phaseHandEnd
)

func lifecyclePhase(t entities.EffectType) phase {
	switch t {
	case entities.EffectMaxHPBonus, entities.EffectHealOnBattleStart:
		return phaseBattleStart
	case entities.EffectHealPerHand, entities.EffectDamagePerHand, entities.EffectSelfDamagePerHand, entities.EffectGoldPerHand:
		return phaseHandStart
	case entities.EffectHealOnWin, entities.EffectHealOnBlackjack, entities.EffectLifesteal:
		return phaseHandEnd
	}
	return phaseNone
}

func evalLifecycle(e entities.ComponentEffect, ctx *entities.ModifierContext) {
	if ctx == nil {
		return
	}
	player, enemy := ctx.Player, ctx.Enemy
	v := flat(e)

	switch e.Type {
	case entities.EffectMaxHPBonus:
		if player == nil {
			return
		}
		player.MaxHP = max(player.MaxHP+v, 1)
		if v > 0 {
			player.HP += v
		}
		player.HP = min(player.HP, player.MaxHP)
	case entities.EffectHealOnBattleStart, entities.EffectHealPerHand:
		if player != nil {
			player.Heal(v)
		}
	case entities.EffectDamagePerHand:
		if enemy != nil {
			enemy.TakeDamage(v)
		}
	case entities.EffectSelfDamagePerHand:
		// self damage never finishes the player
		if player != nil {
			player.TakeDamage(min(v, player.HP-1))
		}
	case entities.EffectGoldPerHand:
		if player != nil {
			player.Gold += v
		}
	case entities.EffectHealOnWin:
		if player != nil && playerWon(ctx) {
			player.Heal(v)
		}
	case entities.EffectHealOnBlackjack:
		if player != nil && ctx.PlayerScore.IsBlackjack {
			player.Heal(v)
		}
	case entities.EffectLifesteal:
		if player == nil || !playerWon(ctx) {
			return
		}
		margin := ctx.PlayerScore.Value - ctx.DealerScore.Value
		if ctx.DealerScore.Busted {
			margin = ctx.PlayerScore.Value
		}
		player.Heal(entities.FloorInt(float64(margin) * e.Value))
	}
}

func playerWon(ctx *entities.ModifierContext) bool {
	return ctx.Result != nil && ctx.Result.Winner == entities.WinnerPlayer
}
