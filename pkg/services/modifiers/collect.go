package modifiers

import "github.com/fadedpez/roguejack/pkg/entities"

// CollectPlayerModifiers returns the player's modifiers in canonical order:
// equipment by slot, active effects in acquisition order, wish blessings,
// then wish curses. Curses come last so nothing the player equips can fold
// after them. Rules, gold and damage folds all use this order.
func CollectPlayerModifiers(player *entities.PlayerState) []*entities.Modifier {
	if player == nil {
		return nil
	}

	var mods []*entities.Modifier
	for _, slot := range entities.EquipmentSlots {
		if item := player.Equipment[slot]; item != nil && item.Modifier != nil {
			mods = append(mods, item.Modifier)
		}
	}
	for _, effect := range player.ActiveEffects {
		if effect.Modifier != nil {
			mods = append(mods, effect.Modifier)
		}
	}
	for _, wish := range player.Wishes {
		if wish.Blessing != nil {
			mods = append(mods, wish.Blessing)
		}
	}
	for _, wish := range player.Wishes {
		if wish.Curse != nil {
			mods = append(mods, wish.Curse)
		}
	}
	return mods
}

// CollectEnemyModifiers returns the enemy's equipment modifiers in list order
func CollectEnemyModifiers(enemy *entities.EnemyState) []*entities.Modifier {
	if enemy == nil {
		return nil
	}

	var mods []*entities.Modifier
	for _, item := range enemy.Equipment {
		if item != nil && item.Modifier != nil {
			mods = append(mods, item.Modifier)
		}
	}
	return mods
}
