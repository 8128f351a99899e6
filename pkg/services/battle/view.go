package battle

import "github.com/fadedpez/roguejack/pkg/entities"

// UseItem builds the action that spends one consumable
func UseItem(id string) entities.PlayerAction {
	return entities.PlayerAction{Type: entities.ActionUseItem, ItemID: id}
}

// Hit, Stand and DoubleDown are the card actions
var (
	Hit        = entities.PlayerAction{Type: entities.ActionHit}
	Stand      = entities.PlayerAction{Type: entities.ActionStand}
	DoubleDown = entities.PlayerAction{Type: entities.ActionDoubleDown}
)

// Status of the battle as a whole
type Status string

const (
	StatusPlayerTurn Status = "player_turn"
	StatusVictory    Status = "victory"
	StatusDefeat     Status = "defeat"
)

// ActiveEffectView is the visible part of an active effect
type ActiveEffectView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	RemainingHands int    `json:"remainingHands"`
}

// GameView is the read model handed to whatever renders or drives the
// battle. The dealer's cards after the first stay hidden until revealed.
type GameView struct {
	Stage      int    `json:"stage"`
	Battle     int    `json:"battle"`
	HandNumber int    `json:"handNumber"`
	Status     Status `json:"status"`
	Phase      string `json:"phase"`

	PlayerHand        []entities.Card    `json:"playerHand"`
	PlayerScore       entities.HandScore `json:"playerScore"`
	DealerHand        []entities.Card    `json:"dealerHand"`
	DealerHiddenCards int                `json:"dealerHiddenCards"`
	DealerScore       entities.HandScore `json:"dealerScore"`

	PlayerHP    int    `json:"playerHp"`
	PlayerMaxHP int    `json:"playerMaxHp"`
	Gold        int    `json:"gold"`
	EnemyID     string `json:"enemyId"`
	EnemyName   string `json:"enemyName"`
	EnemyHP     int    `json:"enemyHp"`
	EnemyMaxHP  int    `json:"enemyMaxHp"`

	Consumables   map[string]int        `json:"consumables"`
	ActiveEffects []ActiveEffectView    `json:"activeEffects"`
	Actions       []entities.ActionType `json:"actions"`
	LastResult    *entities.HandResult  `json:"lastResult,omitempty"`
	GoldEarned    int                   `json:"goldEarned"`
}
