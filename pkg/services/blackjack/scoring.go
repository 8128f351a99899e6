package blackjack

import "github.com/fadedpez/roguejack/pkg/entities"

// ScoreHand evaluates a hand under the rules. Every ace starts at the high
// value and aces are demoted one at a time while the total is over the bust
// threshold. A hand over the threshold is still not busted when the rules
// carry a bust save threshold that the total does not exceed.
func ScoreHand(hand entities.Hand, rules entities.GameRules) entities.HandScore {
	scoring := rules.Scoring
	total := 0
	highAces := 0

	for _, card := range hand {
		if card.IsAce() {
			total += scoring.AceHighValue
			highAces++
			continue
		}
		total += entities.CardValue(card)[0]
	}

	for total > scoring.BustThreshold && highAces > 0 {
		total -= scoring.AceHighValue - scoring.AceLowValue
		highAces--
	}

	busted := total > scoring.BustThreshold
	if busted && scoring.BustSaveThreshold != nil && total <= *scoring.BustSaveThreshold {
		busted = false
	}

	return entities.HandScore{
		Value:       total,
		Soft:        highAces > 0,
		Busted:      busted,
		IsBlackjack: len(hand) == 2 && rules.IsBlackjackValue(total),
	}
}

// CompareHands decides the winner of a hand from both scores
func CompareHands(player, dealer entities.HandScore, rules entities.GameRules) entities.Winner {
	switch {
	case player.Busted && dealer.Busted:
		return rules.WinConditions.DoubleBustResolution
	case player.Busted:
		return entities.WinnerDealer
	case dealer.Busted:
		return entities.WinnerPlayer
	case player.Value > dealer.Value:
		return entities.WinnerPlayer
	case player.Value < dealer.Value:
		return entities.WinnerDealer
	}

	if rules.WinConditions.NaturalBeatsTwentyOne && player.IsBlackjack != dealer.IsBlackjack {
		if player.IsBlackjack {
			return entities.WinnerPlayer
		}
		return entities.WinnerDealer
	}
	return rules.WinConditions.TieResolution
}

// CalculateBaseDamage computes the damage the winner deals before any
// modifier runs. A busted loser takes the winner's whole score, otherwise
// the score difference. Multiplicative steps floor.
func CalculateBaseDamage(winner, loser entities.HandScore, rules entities.GameRules) int {
	dmg := rules.Damage

	damage := winner.Value - loser.Value
	if loser.Busted {
		damage = winner.Value
	}

	damage = entities.ScaleFloor(damage, dmg.BaseMultiplier)
	if damage < dmg.MinimumDamage {
		damage = dmg.MinimumDamage
	}
	if damage > dmg.MaximumDamage {
		damage = dmg.MaximumDamage
	}

	damage += dmg.FlatBonusDamage
	damage = entities.ScaleFloor(damage, 1+dmg.PercentBonusDamage)

	if winner.IsBlackjack {
		damage += dmg.BlackjackBonusDamage
		damage = entities.ScaleFloor(damage, dmg.BlackjackPayoutMultiplier)
	}

	if damage < 0 {
		return 0
	}
	return damage
}
