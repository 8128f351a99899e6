package effects

import "github.com/fadedpez/roguejack/pkg/entities"

// Compile turns an ordered effect list into one Modifier. Effects are
// validated first, then split by family. Each hook folds its family's
// effects in declaration order through that family's evaluator, so two
// effects on the same hook chain rather than sum. Instant effects are not
// compiled.
func Compile(id, name string, source entities.ModifierSource, effects []entities.ComponentEffect) *entities.Modifier {
	valid := ValidateAll(effects)
	m := &entities.Modifier{
		ID:      id,
		Name:    name,
		Source:  source,
		Effects: valid,
	}

	byFamily := make(map[Family][]entities.ComponentEffect)
	for _, e := range valid {
		family, _ := FamilyOf(e.Type)
		byFamily[family] = append(byFamily[family], e)
	}

	if list := byFamily[FamilyRules]; len(list) > 0 {
		m.ModifyRules = func(rules entities.GameRules) entities.GameRules {
			for _, e := range list {
				rules = evalRules(e, rules)
			}
			return rules
		}
	}

	if list := byFamily[FamilyDamageDealt]; len(list) > 0 {
		m.ModifyDamageDealt = func(damage int, ctx *entities.ModifierContext) int {
			for _, e := range list {
				if conditionHolds(e.Condition, ctx) {
					damage = evalDamageDealt(e, damage, ctx)
				}
			}
			return damage
		}
	}

	if list := byFamily[FamilyDamageReceived]; len(list) > 0 {
		m.ModifyDamageReceived = func(damage int, ctx *entities.ModifierContext) int {
			for _, e := range list {
				if conditionHolds(e.Condition, ctx) {
					damage = evalDamageReceived(e, damage, ctx)
				}
			}
			return damage
		}
	}

	if list := byFamily[FamilyBust]; len(list) > 0 {
		m.ModifyBust = func(_ entities.Hand, score entities.HandScore, ctx *entities.ModifierContext) *entities.BustOverride {
			for _, e := range list {
				if override := evalBust(e, score, ctx); override != nil {
					return override
				}
			}
			return nil
		}
	}

	if list := byFamily[FamilyDodge]; len(list) > 0 {
		m.DodgeCheck = func(ctx *entities.ModifierContext) bool {
			for _, e := range list {
				if conditionHolds(e.Condition, ctx) && evalDodge(e, ctx) {
					return true
				}
			}
			return false
		}
	}

	if list := byFamily[FamilyGold]; len(list) > 0 {
		m.ModifyGoldEarned = func(gold int, ctx *entities.ModifierContext) int {
			for _, e := range list {
				gold = evalGold(e, gold)
			}
			return gold
		}
	}

	compileLifecycle(m, byFamily[FamilyLifecycle])
	return m
}

func compileLifecycle(m *entities.Modifier, list []entities.ComponentEffect) {
	var battleStart, handStart, handEnd []entities.ComponentEffect
	for _, e := range list {
		switch lifecyclePhase(e.Type) {
		case phaseBattleStart:
			battleStart = append(battleStart, e)
		case phaseHandStart:
			handStart = append(handStart, e)
		case phaseHandEnd:
			handEnd = append(handEnd, e)
		}
	}

	if len(battleStart) > 0 {
		// max hp bonuses belong to the modifier, not to each battle
		maxHPApplied := false
		m.OnBattleStart = func(ctx *entities.ModifierContext) {
			for _, e := range battleStart {
				if e.Type == entities.EffectMaxHPBonus && maxHPApplied {
					continue
				}
				evalLifecycle(e, ctx)
			}
			maxHPApplied = true
		}
	}
	if len(handStart) > 0 {
		m.OnHandStart = func(ctx *entities.ModifierContext) {
			for _, e := range handStart {
				evalLifecycle(e, ctx)
			}
		}
	}
	if len(handEnd) > 0 {
		m.OnHandEnd = func(ctx *entities.ModifierContext) {
			for _, e := range handEnd {
				evalLifecycle(e, ctx)
			}
		}
	}
}
