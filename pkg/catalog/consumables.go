package catalog

import (
	"fmt"

	"github.com/fadedpez/roguejack/internal/types"
	"github.com/fadedpez/roguejack/pkg/entities"
)

var consumables = map[string]entities.Consumable{
	"health_potion": {
		Name: "Health Potion", Cost: 10,
		Description: "Heal 20 hp",
		Effects:     []effect{{Type: entities.EffectInstantHeal, Value: 20}},
	},
	"damage_potion": {
		Name: "Damage Potion", Cost: 15,
		Description: "Deal 10 damage to the enemy",
		Effects:     []effect{{Type: entities.EffectInstantDamage, Value: 10}},
	},
	"strength_elixir": {
		Name: "Strength Elixir", Cost: 20,
		Description: "+3 damage for 3 hands",
		Effects:     []effect{{Type: entities.EffectFlatDamageBonus, Value: 3, Duration: 3}},
	},
	"armor_elixir": {
		Name: "Armor Elixir", Cost: 20,
		Description: "-2 damage taken for 3 hands",
		Effects:     []effect{{Type: entities.EffectFlatDamageReduction, Value: 2, Duration: 3}},
	},
	"dodge_brew": {
		Name: "Dodge Brew", Cost: 25,
		Description: "25% dodge chance for 2 hands",
		Effects:     []effect{{Type: entities.EffectDodgeChance, Value: 0.25, Duration: 2}},
	},
	"regeneration_potion": {
		Name: "Regeneration Potion", Cost: 20,
		Description: "Heal 3 hp at the start of each of the next 4 hands",
		Effects:     []effect{{Type: entities.EffectHealPerHand, Value: 3, Duration: 4}},
	},
	"gold_charm": {
		Name: "Gold Charm", Cost: 15,
		Description: "+50% gold from battles won in the next 5 hands",
		Effects:     []effect{{Type: entities.EffectPercentGoldBonus, Value: 0.5, Duration: 5}},
	},
	"cleansing_draught": {
		Name: "Cleansing Draught", Cost: 10,
		Description: "Remove every active effect",
		Effects:     []effect{{Type: entities.EffectCleanse, Value: 1}},
	},
}

// Consumable returns a consumable definition by id
func Consumable(id string) (entities.Consumable, error) {
	def, ok := consumables[id]
	if !ok {
		return entities.Consumable{}, types.NewGameError(types.ErrUnknownItem, fmt.Sprintf("unknown consumable %q", id))
	}
	def.ID = id
	def.Effects = cloneEffects(def.Effects)
	return def, nil
}

// ConsumableIDs lists every consumable id, sorted
func ConsumableIDs() []string {
	return sortedKeys(consumables)
}
