package battle

import (
	"github.com/fadedpez/roguejack/internal/types"
	"github.com/fadedpez/roguejack/pkg/catalog"
	"github.com/fadedpez/roguejack/pkg/entities"
)

// Price applies the rules' shop multiplier to a catalog cost
func Price(cost int, rules entities.GameRules) int {
	price := entities.ScaleFloor(cost, rules.Economy.ShopPriceMultiplier)
	if price < 0 {
		return 0
	}
	return price
}

// Buy spends gold on a catalog item. Equipment replaces whatever is in its
// slot and consumables go into the inventory. Not having enough gold is a
// failed result; an id the catalog doesn't know is an error.
func Buy(player *entities.PlayerState, itemID string, rules entities.GameRules) (types.ActionResult, error) {
	if player == nil {
		return types.ActionResult{}, types.NewGameError(types.ErrInvalidState, "no player to buy for")
	}

	if item, err := catalog.Equipment(itemID); err == nil {
		price := Price(item.Cost, rules)
		if player.Gold < price {
			return types.Fail("%s costs %d gold, you have %d", item.Name, price, player.Gold), nil
		}
		player.Gold -= price
		replaced := player.Equipment[item.Slot]
		player.Equipment[item.Slot] = item
		if replaced != nil {
			return types.Ok("Bought %s for %d gold, replacing %s", item.Name, price, replaced.Name), nil
		}
		return types.Ok("Bought %s for %d gold", item.Name, price), nil
	}

	item, err := catalog.Consumable(itemID)
	if err != nil {
		return types.ActionResult{}, err
	}
	price := Price(item.Cost, rules)
	if player.Gold < price {
		return types.Fail("%s costs %d gold, you have %d", item.Name, price, player.Gold), nil
	}
	player.Gold -= price
	if player.Consumables == nil {
		player.Consumables = make(map[string]int)
	}
	player.Consumables[item.ID]++
	return types.Ok("Bought %s for %d gold", item.Name, price), nil
}
