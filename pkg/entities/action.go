package entities

// ActionType names a player command
type ActionType string

const (
	ActionHit        ActionType = "hit"
	ActionStand      ActionType = "stand"
	ActionDoubleDown ActionType = "double_down"
	ActionUseItem    ActionType = "use_item"
)

// PlayerAction is one command from the player. ItemID is only read for
// ActionUseItem.
type PlayerAction struct {
	Type   ActionType `json:"type"`
	ItemID string     `json:"itemId,omitempty"`
}
