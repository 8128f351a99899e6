package entities

import "github.com/fadedpez/roguejack/pkg/rng"

// ModifierSource names what granted a modifier
type ModifierSource string

const (
	SourceEquipment    ModifierSource = "equipment"
	SourceConsumable   ModifierSource = "consumable"
	SourceWishBlessing ModifierSource = "wish_blessing"
	SourceWishCurse    ModifierSource = "wish_curse"
	SourceEnemy        ModifierSource = "enemy"
)

// Modifier is a bundle of optional hooks contributed by one source. A nil
// hook means the modifier does not take part in that step. The pipeline only
// borrows modifiers for the length of one computation; they are owned by the
// equipment, active effect or wish that granted them.
type Modifier struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Source ModifierSource `json:"source"`

	// Effects is the declarative list the hooks were compiled from. It is
	// empty for hand-written modifiers.
	Effects []ComponentEffect `json:"effects,omitempty"`

	ModifyRules          func(rules GameRules) GameRules                                      `json:"-"`
	ModifyDamageDealt    func(damage int, ctx *ModifierContext) int                           `json:"-"`
	ModifyDamageReceived func(damage int, ctx *ModifierContext) int                           `json:"-"`
	ModifyBust           func(hand Hand, score HandScore, ctx *ModifierContext) *BustOverride `json:"-"`
	DodgeCheck           func(ctx *ModifierContext) bool                                      `json:"-"`
	ModifyGoldEarned     func(gold int, ctx *ModifierContext) int                             `json:"-"`
	OnHandStart          func(ctx *ModifierContext)                                           `json:"-"`
	OnHandEnd            func(ctx *ModifierContext)                                           `json:"-"`
	OnBattleStart        func(ctx *ModifierContext)                                           `json:"-"`
}

// ModifierContext is the snapshot handed to every hook. Damage, bust, dodge
// and gold hooks only answer through their return value (and the RNG call
// counter). Lifecycle hooks are the only hooks that change Player or Enemy.
type ModifierContext struct {
	PlayerHand  Hand
	DealerHand  Hand
	PlayerScore HandScore
	DealerScore HandScore
	Player      *PlayerState
	Enemy       *EnemyState
	Rules       GameRules
	RNG         *rng.RNG

	Stage       int
	Battle      int
	HandNumber  int
	DoubledDown bool

	// Result is set for OnHandEnd hooks
	Result *HandResult
}
