package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadedpez/roguejack/internal/types"
	"github.com/fadedpez/roguejack/pkg/entities"
)

func TestPrice(t *testing.T) {
	rules := entities.DefaultRules()
	assert.Equal(t, 35, Price(35, rules))

	rules.Economy.ShopPriceMultiplier = 0.8
	assert.Equal(t, 28, Price(35, rules))

	rules.Economy.ShopPriceMultiplier = 0.5
	assert.Equal(t, 7, Price(15, rules), "floored")
}

func TestBuyEquipmentReplacesSlot(t *testing.T) {
	rules := entities.DefaultRules()
	player := entities.NewPlayerState(rules)
	player.Gold = 50

	result, err := Buy(player, "cloth_armor", rules)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 35, player.Gold)

	result, err = Buy(player, "bronze_armor", rules)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Bought Bronze Armor for 35 gold, replacing Padded Vest", result.Message)
	assert.Equal(t, 0, player.Gold)
	require.NotNil(t, player.Equipment[entities.SlotArmor])
	assert.Equal(t, "bronze_armor", player.Equipment[entities.SlotArmor].ID)
	assert.NotNil(t, player.Equipment[entities.SlotArmor].Modifier)
}

func TestBuyConsumable(t *testing.T) {
	rules := entities.DefaultRules()
	player := entities.NewPlayerState(rules)
	player.Gold = 25

	for i := 0; i < 2; i++ {
		result, err := Buy(player, "health_potion", rules)
		require.NoError(t, err)
		assert.True(t, result.Success)
	}
	assert.Equal(t, 2, player.Consumables["health_potion"])
	assert.Equal(t, 5, player.Gold)
}

func TestBuyWithoutEnoughGold(t *testing.T) {
	rules := entities.DefaultRules()
	player := entities.NewPlayerState(rules)
	player.Gold = 20

	result, err := Buy(player, "iron_weapon", rules)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Iron Sword costs 60 gold, you have 20", result.Message)
	assert.Equal(t, 20, player.Gold)
	assert.Empty(t, player.Equipment)
}

func TestBuyUnknownItem(t *testing.T) {
	rules := entities.DefaultRules()
	_, err := Buy(entities.NewPlayerState(rules), "mithril_armor", rules)
	assert.True(t, types.IsGameError(err, types.ErrUnknownItem))
}

func TestHitBelow(t *testing.T) {
	policy := HitBelow(17)
	canHit := []entities.ActionType{entities.ActionHit, entities.ActionStand}

	assert.Equal(t, Hit, policy(GameView{Actions: canHit, PlayerScore: entities.HandScore{Value: 12}}))
	assert.Equal(t, Stand, policy(GameView{Actions: canHit, PlayerScore: entities.HandScore{Value: 17}}))
	assert.Equal(t, Stand, policy(GameView{Actions: []entities.ActionType{entities.ActionStand}, PlayerScore: entities.HandScore{Value: 4}}))
}
