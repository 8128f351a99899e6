package consumables

import (
	"fmt"
	"strings"

	"github.com/fadedpez/roguejack/internal/types"
	"github.com/fadedpez/roguejack/pkg/entities"
	"github.com/fadedpez/roguejack/pkg/services/effects"
)

// Use spends one of the player's consumables. Instant effects apply at once;
// the remaining effects are compiled into a single ActiveEffect lasting the
// longest declared duration. Using an item whose effect is still active
// refreshes that effect instead of stacking a second one.
func Use(player *entities.PlayerState, enemy *entities.EnemyState, item entities.Consumable) types.ActionResult {
	if player == nil {
		return types.Fail("No player to use %s", item.Name)
	}
	if player.Consumables[item.ID] <= 0 {
		return types.Fail("You don't have any %s", item.Name)
	}

	player.Consumables[item.ID]--
	if player.Consumables[item.ID] == 0 {
		delete(player.Consumables, item.ID)
	}

	var durational []entities.ComponentEffect
	var applied []string
	duration := 0

	for _, e := range effects.ValidateAll(item.Effects) {
		if family, _ := effects.FamilyOf(e.Type); family != effects.FamilyInstant {
			durational = append(durational, e)
			duration = max(duration, e.Duration)
			continue
		}
		if msg := applyInstant(e, player, enemy); msg != "" {
			applied = append(applied, msg)
		}
	}

	if len(durational) > 0 {
		duration = max(duration, 1)
		activate(player, item, durational, duration)
		applied = append(applied, fmt.Sprintf("active for %d hands", duration))
	}

	if len(applied) == 0 {
		return types.Ok("Used %s", item.Name)
	}
	return types.Ok("Used %s: %s", item.Name, strings.Join(applied, ", "))
}

func activate(player *entities.PlayerState, item entities.Consumable, list []entities.ComponentEffect, duration int) {
	for i := range player.ActiveEffects {
		if player.ActiveEffects[i].ID == item.ID {
			player.ActiveEffects[i].RemainingHands = max(player.ActiveEffects[i].RemainingHands, duration)
			return
		}
	}

	player.ActiveEffects = append(player.ActiveEffects, entities.ActiveEffect{
		ID:             item.ID,
		Name:           item.Name,
		RemainingHands: duration,
		Modifier:       effects.Compile(item.ID, item.Name, entities.SourceConsumable, list),
	})
}

func applyInstant(e entities.ComponentEffect, player *entities.PlayerState, enemy *entities.EnemyState) string {
	v := entities.FloorInt(e.Value)

	switch e.Type {
	case entities.EffectInstantHeal:
		return fmt.Sprintf("healed %d", player.Heal(v))
	case entities.EffectInstantDamage:
		if enemy == nil {
			return ""
		}
		before := enemy.HP
		enemy.TakeDamage(v)
		return fmt.Sprintf("dealt %d damage", before-enemy.HP)
	case entities.EffectInstantGold:
		player.Gold += v
		return fmt.Sprintf("gained %d gold", v)
	case entities.EffectCleanse:
		removed := len(player.ActiveEffects)
		player.ActiveEffects = nil
		return fmt.Sprintf("cleansed %d effects", removed)
	case entities.EffectMaxHPPotion:
		player.MaxHP += v
		player.HP += v
		return fmt.Sprintf("max hp +%d", v)
	}
	return ""
}

// Tick counts every active effect down by one hand and drops the ones that
// reach zero, keeping acquisition order. It returns the expired effects.
func Tick(player *entities.PlayerState) []entities.ActiveEffect {
	if player == nil || len(player.ActiveEffects) == 0 {
		return nil
	}

	var expired []entities.ActiveEffect
	kept := player.ActiveEffects[:0]
	for _, effect := range player.ActiveEffects {
		effect.RemainingHands--
		if effect.RemainingHands <= 0 {
			expired = append(expired, effect)
			continue
		}
		kept = append(kept, effect)
	}
	player.ActiveEffects = kept
	return expired
}
