package catalog

import (
	"fmt"

	"github.com/fadedpez/roguejack/internal/types"
	"github.com/fadedpez/roguejack/pkg/entities"
	"github.com/fadedpez/roguejack/pkg/services/effects"
)

type curse struct {
	Name    string
	Effects []entities.ComponentEffect
}

var curses = map[string]curse{
	"brittle_bones": {"Brittle Bones", []effect{{Type: entities.EffectPercentDamageTakenIncrease, Value: 0.2}}},
	"dull_blade":    {"Dull Blade", []effect{{Type: entities.EffectFlatDamageBonus, Value: -2}}},
	"greed":         {"Greed", []effect{{Type: entities.EffectGoldPenalty, Value: 5}}},
	"cursed_blood":  {"Cursed Blood", []effect{{Type: entities.EffectSelfDamagePerHand, Value: 1}}},
	"frailty":       {"Frailty", []effect{{Type: entities.EffectMaxHPBonus, Value: -10}}},
	"shaky_hands":   {"Shaky Hands", []effect{{Type: entities.EffectDisableDoubleDown, Value: 1}}},
	"narrow_path":   {"Narrow Path", []effect{{Type: entities.EffectBustThresholdBonus, Value: -1}}},
	"house_edge":    {"House Edge", []effect{{Type: entities.EffectDealerStandsOn, Value: 16}}},
}

// Curse compiles a curse modifier. wishID keeps the modifier id unique per wish.
func Curse(id, wishID string) (*entities.Modifier, error) {
	def, ok := curses[id]
	if !ok {
		return nil, types.NewGameError(types.ErrUnknownCurse, fmt.Sprintf("unknown curse %q", id))
	}
	return effects.Compile(wishID+":"+id, def.Name, entities.SourceWishCurse, cloneEffects(def.Effects)), nil
}

// CurseIDs lists every curse id, sorted
func CurseIDs() []string {
	return sortedKeys(curses)
}
