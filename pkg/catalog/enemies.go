package catalog

import (
	"fmt"

	"github.com/fadedpez/roguejack/internal/types"
	"github.com/fadedpez/roguejack/pkg/entities"
	"github.com/fadedpez/roguejack/pkg/rng"
)

type enemy struct {
	Name        string
	Description string
	HP          int
	Boss        bool
	Gear        []gear
}

type gear struct {
	Name    string
	Effects []entities.ComponentEffect
}

// Enemy gear only uses effects that read the same from either side of the table.
var enemies = map[string]enemy{
	"rat":         {"Giant Rat", "Quick and hard to pin down", 15, false, []gear{{"Quick Feet", []effect{{Type: entities.EffectDodgeChance, Value: 0.05}}}}},
	"goblin":      {"Goblin", "Sharp teeth, sharper knife", 20, false, []gear{{"Rusty Knife", []effect{{Type: entities.EffectFlatDamageBonus, Value: 1}}}}},
	"skeleton":    {"Skeleton", "Blows pass between its ribs", 25, false, []gear{{"Hollow Frame", []effect{{Type: entities.EffectPercentDamageReduction, Value: 0.1}}}}},
	"goblin_king": {"Goblin King", "Rules the warrens", 45, true, []gear{{"Crown", []effect{{Type: entities.EffectFlatDamageBonus, Value: 2}, {Type: entities.EffectPercentDamageReduction, Value: 0.1}}}}},

	"orc":    {"Orc", "Hits hard", 35, false, []gear{{"War Axe", []effect{{Type: entities.EffectFlatDamageBonus, Value: 2}}}}},
	"wraith": {"Wraith", "Half in this world", 30, false, []gear{{"Shroud", []effect{{Type: entities.EffectDodgeChance, Value: 0.15}}}}},
	"knight": {"Fallen Knight", "Still wears the plate", 40, false, []gear{{"Plate", []effect{{Type: entities.EffectFlatDamageReduction, Value: 2}}}}},
	"troll":  {"Troll", "Shrugs off anything", 70, true, []gear{{"Club", []effect{{Type: entities.EffectFlatDamageBonus, Value: 3}}}, {"Thick Hide", []effect{{Type: entities.EffectDamageCap, Value: 15}}}}},

	"vampire": {"Vampire", "Thirsty", 50, false, []gear{{"Fangs", []effect{{Type: entities.EffectFlatDamageBonus, Value: 3}}}}},
	"golem":   {"Stone Golem", "Slow but solid", 60, false, []gear{{"Stone Skin", []effect{{Type: entities.EffectPercentDamageReduction, Value: 0.25}}}}},
	"demon":   {"Demon", "Burns", 55, false, []gear{{"Hellfire", []effect{{Type: entities.EffectPercentDamageBonus, Value: 0.25}}}}},
	"dragon":  {"Dragon", "The end of the road", 100, true, []gear{{"Claws", []effect{{Type: entities.EffectFlatDamageBonus, Value: 4}}}, {"Scales", []effect{{Type: entities.EffectPercentDamageReduction, Value: 0.2}}}}},
}

var stages = []struct {
	Regular []string
	Boss    string
}{
	{Regular: []string{"rat", "goblin", "skeleton"}, Boss: "goblin_king"},
	{Regular: []string{"orc", "wraith", "knight"}, Boss: "troll"},
	{Regular: []string{"vampire", "golem", "demon"}, Boss: "dragon"},
}

// Enemy builds a fresh enemy with hp scaled by the rules
func Enemy(id string, rules entities.GameRules) (*entities.EnemyState, error) {
	def, ok := enemies[id]
	if !ok {
		return nil, types.NewGameError(types.ErrUnknownEnemy, fmt.Sprintf("unknown enemy %q", id))
	}

	hp := max(entities.ScaleFloor(def.HP, rules.Health.EnemyHPMultiplier), 1)
	state := &entities.EnemyState{
		ID:          id,
		Name:        def.Name,
		Description: def.Description,
		HP:          hp,
		MaxHP:       hp,
		IsBoss:      def.Boss,
	}
	for i, g := range def.Gear {
		gearID := fmt.Sprintf("%s:gear:%d", id, i)
		state.Equipment = append(state.Equipment, buildEquipment(gearID, entities.Equipment{Name: g.Name, Effects: g.Effects}, entities.SourceEnemy))
	}
	return state, nil
}

// PickEnemy chooses an enemy for a 1-based stage. Bosses are fixed per
// stage; regular enemies take one RNG draw.
func PickEnemy(r *rng.RNG, stage int, boss bool, rules entities.GameRules) (*entities.EnemyState, error) {
	if stage < 1 || stage > len(stages) {
		return nil, types.NewGameError(types.ErrUnknownEnemy, fmt.Sprintf("no enemies for stage %d", stage))
	}

	pool := stages[stage-1]
	if boss {
		return Enemy(pool.Boss, rules)
	}
	return Enemy(pool.Regular[r.NextInt(0, len(pool.Regular)-1)], rules)
}

// EnemyIDs lists every enemy id, sorted
func EnemyIDs() []string {
	return sortedKeys(enemies)
}
