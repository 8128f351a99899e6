package entities

// EquipmentSlot is where an item is worn
type EquipmentSlot string

const (
	SlotWeapon  EquipmentSlot = "weapon"
	SlotHelm    EquipmentSlot = "helm"
	SlotArmor   EquipmentSlot = "armor"
	SlotBoots   EquipmentSlot = "boots"
	SlotTrinket EquipmentSlot = "trinket"
)

// EquipmentSlots is the canonical slot order used when collecting modifiers
var EquipmentSlots = []EquipmentSlot{SlotWeapon, SlotHelm, SlotArmor, SlotBoots, SlotTrinket}

// Equipment is a worn item. Modifier is compiled from Effects.
type Equipment struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Slot        EquipmentSlot     `json:"slot"`
	Tier        int               `json:"tier"`
	Cost        int               `json:"cost"`
	Effects     []ComponentEffect `json:"effects"`
	Modifier    *Modifier         `json:"-"`
}

// Consumable is a single-use item definition
type Consumable struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Cost        int               `json:"cost"`
	Effects     []ComponentEffect `json:"effects"`
}

// ActiveEffect is a durational consumable effect. RemainingHands counts
// down once per hand and the effect is dropped when it reaches zero.
type ActiveEffect struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	RemainingHands int       `json:"remainingHands"`
	Modifier       *Modifier `json:"-"`
}

// Wish pairs the blessing and curse granted by one wish
type Wish struct {
	Text     string    `json:"text"`
	Blessing *Modifier `json:"-"`
	Curse    *Modifier `json:"-"`
}

// PlayerState is the player's side of a run
type PlayerState struct {
	HP            int                          `json:"hp"`
	MaxHP         int                          `json:"maxHp"`
	Gold          int                          `json:"gold"`
	Equipment     map[EquipmentSlot]*Equipment `json:"equipment"`
	Consumables   map[string]int               `json:"consumables"`
	ActiveEffects []ActiveEffect               `json:"activeEffects"`
	Wishes        []Wish                       `json:"wishes"`
}

// NewPlayerState creates a player with the rules' starting hp and gold
func NewPlayerState(rules GameRules) *PlayerState {
	return &PlayerState{
		HP:          rules.Health.PlayerStartingHP,
		MaxHP:       rules.Health.PlayerMaxHP,
		Gold:        rules.Economy.StartingGold,
		Equipment:   make(map[EquipmentSlot]*Equipment),
		Consumables: make(map[string]int),
	}
}

// Heal restores hp without exceeding MaxHP and returns the amount healed
func (p *PlayerState) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := p.HP
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	return p.HP - before
}

// TakeDamage lowers hp, never below zero
func (p *PlayerState) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	p.HP -= amount
	if p.HP < 0 {
		p.HP = 0
	}
}

// IsDefeated reports whether the player has no hp left
func (p *PlayerState) IsDefeated() bool {
	return p.HP <= 0
}

// EnemyState is the opponent of one battle
type EnemyState struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	HP          int          `json:"hp"`
	MaxHP       int          `json:"maxHp"`
	IsBoss      bool         `json:"isBoss"`
	Equipment   []*Equipment `json:"equipment"`
}

// TakeDamage lowers hp, never below zero
func (e *EnemyState) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	e.HP -= amount
	if e.HP < 0 {
		e.HP = 0
	}
}

// Heal restores hp without exceeding MaxHP
func (e *EnemyState) Heal(amount int) {
	if amount <= 0 {
		return
	}
	e.HP += amount
	if e.HP > e.MaxHP {
		e.HP = e.MaxHP
	}
}

// IsDefeated reports whether the enemy has no hp left
func (e *EnemyState) IsDefeated() bool {
	return e.HP <= 0
}
