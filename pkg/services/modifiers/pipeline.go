package modifiers

import (
	"fmt"
	"strings"

	"github.com/fadedpez/roguejack/pkg/entities"
)

// BreakdownSeparator joins the parts of a damage trace
const BreakdownSeparator = " | "

// DamageResult is the outcome of running base damage through both modifier sets
type DamageResult struct {
	FinalDamage int
	Dodged      bool
	Breakdown   string
}

// ApplyModifierPipeline folds every ModifyRules hook over a clone of rules in
// list order. Each hook receives its own clone of the accumulator so no hook
// can reach a value another hook holds.
func ApplyModifierPipeline(mods []*entities.Modifier, rules entities.GameRules) entities.GameRules {
	acc := rules.Clone()
	for _, m := range mods {
		if m == nil || m.ModifyRules == nil {
			continue
		}
		acc = m.ModifyRules(acc.Clone())
	}
	return acc
}

// ApplyDamageModifiers runs base damage through the attacker's dealt hooks,
// the defender's received hooks, the rules' flat and percent reductions and
// finally the defender's dodge checks. The rules are derived from the
// player's modifiers, so their reductions only apply when target is the
// player. The first dodge check that succeeds stops the scan, later checks
// are never called.
func ApplyDamageModifiers(baseDamage int, target entities.DamageTarget, attacker, defender []*entities.Modifier, ctx *entities.ModifierContext) DamageResult {
	if ctx == nil {
		ctx = &entities.ModifierContext{}
	}

	trace := []string{fmt.Sprintf("Base: %d", baseDamage)}
	damage := baseDamage

	for _, m := range attacker {
		if m == nil || m.ModifyDamageDealt == nil {
			continue
		}
		next := m.ModifyDamageDealt(damage, ctx)
		trace = appendDelta(trace, m.Name, next-damage)
		damage = next
	}

	for _, m := range defender {
		if m == nil || m.ModifyDamageReceived == nil {
			continue
		}
		next := m.ModifyDamageReceived(damage, ctx)
		trace = appendDelta(trace, m.Name, next-damage)
		damage = next
	}

	if target == entities.TargetPlayer {
		next := damage - ctx.Rules.Damage.FlatDamageReduction
		if next < 0 {
			next = 0
		}
		trace = appendDelta(trace, "Flat reduction", next-damage)
		damage = next

		next = entities.ScaleFloor(damage, 1-ctx.Rules.Damage.PercentDamageReduction)
		if next < 0 {
			next = 0
		}
		trace = appendDelta(trace, "Percent reduction", next-damage)
		damage = next
	}

	dodged := false
	for _, m := range defender {
		if m == nil || m.DodgeCheck == nil {
			continue
		}
		if m.DodgeCheck(ctx) {
			dodged = true
			break
		}
	}

	if dodged {
		damage = 0
		trace = append(trace, "DODGED")
	}

	return DamageResult{
		FinalDamage: damage,
		Dodged:      dodged,
		Breakdown:   strings.Join(trace, BreakdownSeparator),
	}
}

func appendDelta(trace []string, name string, delta int) []string {
	if delta == 0 {
		return trace
	}
	return append(trace, fmt.Sprintf("%s: %+d", name, delta))
}

// ApplyBustModifiers consults ModifyBust hooks for a busted score. The first
// hook that returns an override wins and the remaining hooks are skipped.
// The override's effective score replaces the score's value.
func ApplyBustModifiers(hand entities.Hand, score entities.HandScore, mods []*entities.Modifier, ctx *entities.ModifierContext) entities.HandScore {
	if !score.Busted {
		return score
	}
	for _, m := range mods {
		if m == nil || m.ModifyBust == nil {
			continue
		}
		override := m.ModifyBust(hand, score, ctx)
		if override == nil {
			continue
		}
		score.Busted = override.Busted
		score.Value = override.EffectiveScore
		return score
	}
	return score
}

// ApplyGoldModifiers folds ModifyGoldEarned hooks in list order. Gold earned
// never goes below zero.
func ApplyGoldModifiers(gold int, mods []*entities.Modifier, ctx *entities.ModifierContext) int {
	for _, m := range mods {
		if m == nil || m.ModifyGoldEarned == nil {
			continue
		}
		gold = m.ModifyGoldEarned(gold, ctx)
	}
	if gold < 0 {
		return 0
	}
	return gold
}

// RunBattleStart calls every OnBattleStart hook in order
func RunBattleStart(mods []*entities.Modifier, ctx *entities.ModifierContext) {
	for _, m := range mods {
		if m != nil && m.OnBattleStart != nil {
			m.OnBattleStart(ctx)
		}
	}
}

// RunHandStart calls every OnHandStart hook in order
func RunHandStart(mods []*entities.Modifier, ctx *entities.ModifierContext) {
	for _, m := range mods {
		if m != nil && m.OnHandStart != nil {
			m.OnHandStart(ctx)
		}
	}
}

// RunHandEnd calls every OnHandEnd hook in order
func RunHandEnd(mods []*entities.Modifier, ctx *entities.ModifierContext) {
	for _, m := range mods {
		if m != nil && m.OnHandEnd != nil {
			m.OnHandEnd(ctx)
		}
	}
}
