package entities

import (
	"time"

	"github.com/fadedpez/roguejack/pkg/rng"
)

// RunOutcome is how a recorded battle ended
type RunOutcome string

const (
	OutcomeVictory   RunOutcome = "victory"
	OutcomeDefeat    RunOutcome = "defeat"
	OutcomeAbandoned RunOutcome = "abandoned"
)

// BlessingDefinition is what an external author hands back for a wish. It is
// untrusted until sanitized.
type BlessingDefinition struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Effects     []ComponentEffect `json:"effects"`
}

// WishSetup is a granted wish as recorded: the wish text, the blessing the
// author returned and the id of the curse paid for it
type WishSetup struct {
	Text     string             `json:"text"`
	Blessing BlessingDefinition `json:"blessing"`
	CurseID  string             `json:"curseId,omitempty"`
}

// RunSetup is everything besides the seed needed to rebuild a battle
type RunSetup struct {
	Stage       int            `json:"stage"`
	Boss        bool           `json:"boss"`
	Equipment   []string       `json:"equipment"`
	Consumables map[string]int `json:"consumables"`
	Wishes      []WishSetup    `json:"wishes,omitempty"`
	Rules       GameRules      `json:"rules"`
}

// FinalState is the end state a replay must reproduce
type FinalState struct {
	PlayerHP    int       `json:"playerHp"`
	PlayerMaxHP int       `json:"playerMaxHp"`
	Gold        int       `json:"gold"`
	EnemyID     string    `json:"enemyId"`
	EnemyHP     int       `json:"enemyHp"`
	RNGState    rng.State `json:"rngState"`
}

// RunRecord is a seed plus action log and what it produced
type RunRecord struct {
	ID        string         `json:"id"`
	Seed      rng.Seed       `json:"seed"`
	Setup     RunSetup       `json:"setup"`
	Actions   []PlayerAction `json:"actions"`
	Results   []HandResult   `json:"results"`
	Outcome   RunOutcome     `json:"outcome"`
	Final     FinalState     `json:"final"`
	CreatedAt time.Time      `json:"createdAt"`
}
