package catalog

import (
	"fmt"
	"sort"

	"github.com/fadedpez/roguejack/internal/types"
	"github.com/fadedpez/roguejack/pkg/entities"
	"github.com/fadedpez/roguejack/pkg/services/effects"
)

type effect = entities.ComponentEffect

var equipment = map[string]entities.Equipment{
	// Weapons
	"cloth_weapon": {
		Name: "Wooden Club", Slot: entities.SlotWeapon, Tier: 1, Cost: 15,
		Description: "+1 damage",
		Effects:     []effect{{Type: entities.EffectFlatDamageBonus, Value: 1}},
	},
	"bronze_weapon": {
		Name: "Bronze Sword", Slot: entities.SlotWeapon, Tier: 2, Cost: 30,
		Description: "+3 damage",
		Effects:     []effect{{Type: entities.EffectFlatDamageBonus, Value: 3}},
	},
	"iron_weapon": {
		Name: "Iron Sword", Slot: entities.SlotWeapon, Tier: 3, Cost: 60,
		Description: "+3 damage, +5 on blackjack",
		Effects: []effect{
			{Type: entities.EffectFlatDamageBonus, Value: 3},
			{Type: entities.EffectBlackjackDamageBonus, Value: 5},
		},
	},

	// Helms
	"cloth_helm": {
		Name: "Cloth Hood", Slot: entities.SlotHelm, Tier: 1, Cost: 15,
		Description: "-1 damage taken",
		Effects:     []effect{{Type: entities.EffectFlatDamageReduction, Value: 1}},
	},
	"bronze_helm": {
		Name: "Bronze Helm", Slot: entities.SlotHelm, Tier: 2, Cost: 30,
		Description: "-50% damage taken when you bust",
		Effects:     []effect{{Type: entities.EffectBustDamageReduction, Value: 0.5}},
	},
	"iron_helm": {
		Name: "Iron Helm", Slot: entities.SlotHelm, Tier: 3, Cost: 60,
		Description: "-80% damage taken when you bust",
		Effects:     []effect{{Type: entities.EffectBustDamageReduction, Value: 0.8}},
	},

	// Armor
	"cloth_armor": {
		Name: "Padded Vest", Slot: entities.SlotArmor, Tier: 1, Cost: 15,
		Description: "-10% damage taken",
		Effects:     []effect{{Type: entities.EffectPercentDamageReduction, Value: 0.1}},
	},
	"bronze_armor": {
		Name: "Bronze Armor", Slot: entities.SlotArmor, Tier: 2, Cost: 35,
		Description: "-40% damage taken",
		Effects:     []effect{{Type: entities.EffectPercentDamageReduction, Value: 0.4}},
	},
	"iron_armor": {
		Name: "Iron Armor", Slot: entities.SlotArmor, Tier: 3, Cost: 70,
		Description: "-2 damage taken, then -40%",
		Effects: []effect{
			{Type: entities.EffectFlatDamageReduction, Value: 2},
			{Type: entities.EffectPercentDamageReduction, Value: 0.4},
		},
	},

	// Boots
	"cloth_boots": {
		Name: "Cloth Shoes", Slot: entities.SlotBoots, Tier: 1, Cost: 15,
		Description: "5% dodge chance",
		Effects:     []effect{{Type: entities.EffectDodgeChance, Value: 0.05}},
	},
	"bronze_boots": {
		Name: "Bronze Greaves", Slot: entities.SlotBoots, Tier: 2, Cost: 30,
		Description: "10% dodge chance",
		Effects:     []effect{{Type: entities.EffectDodgeChance, Value: 0.1}},
	},
	"iron_boots": {
		Name: "Iron Boots", Slot: entities.SlotBoots, Tier: 3, Cost: 60,
		Description: "15% dodge chance, 30% when you bust",
		Effects: []effect{
			{Type: entities.EffectDodgeChance, Value: 0.15},
			{Type: entities.EffectBustDodgeChance, Value: 0.3},
		},
	},

	// Trinkets
	"cloth_trinket": {
		Name: "Lucky Coin", Slot: entities.SlotTrinket, Tier: 1, Cost: 15,
		Description: "+3 gold per battle",
		Effects:     []effect{{Type: entities.EffectFlatGoldBonus, Value: 3}},
	},
	"bronze_trinket": {
		Name: "Bronze Charm", Slot: entities.SlotTrinket, Tier: 2, Cost: 35,
		Description: "a bust of 22 counts as 10",
		Effects:     []effect{{Type: entities.EffectBustSave, Value: 10, Threshold: 22}},
	},
	"iron_trinket": {
		Name: "Iron Trinket", Slot: entities.SlotTrinket, Tier: 3, Cost: 70,
		Description: "any bust counts as 10",
		Effects:     []effect{{Type: entities.EffectBustImmunity, Value: 10}},
	},
}

// Equipment returns a fresh copy of an equipment item with its modifier compiled
func Equipment(id string) (*entities.Equipment, error) {
	def, ok := equipment[id]
	if !ok {
		return nil, types.NewGameError(types.ErrUnknownItem, fmt.Sprintf("unknown equipment %q", id))
	}
	return buildEquipment(id, def, entities.SourceEquipment), nil
}

func buildEquipment(id string, def entities.Equipment, source entities.ModifierSource) *entities.Equipment {
	item := def
	item.ID = id
	item.Effects = cloneEffects(def.Effects)
	item.Modifier = effects.Compile(id, def.Name, source, item.Effects)
	return &item
}

// EquipmentIDs lists every equipment id, sorted
func EquipmentIDs() []string {
	return sortedKeys(equipment)
}

func cloneEffects(list []entities.ComponentEffect) []entities.ComponentEffect {
	out := make([]entities.ComponentEffect, len(list))
	for i, eff := range list {
		out[i] = eff.Clone()
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
