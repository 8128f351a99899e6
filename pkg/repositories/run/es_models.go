package run

import "time"

// ESRun is the run summary document
type ESRun struct {
	RunID     string    `json:"run_id"`
	Seed      string    `json:"seed"`
	Outcome   string    `json:"outcome"`
	Stage     int       `json:"stage"`
	Boss      bool      `json:"boss"`
	EnemyID   string    `json:"enemy_id"`
	Hands     int       `json:"hands"`
	PlayerHP  int       `json:"player_hp"`
	Gold      int       `json:"gold"`
	CreatedAt time.Time `json:"created_at"`
}

// ESHandResult is one resolved hand, flattened for aggregation
type ESHandResult struct {
	RunID        string    `json:"run_id"`
	HandNumber   int       `json:"hand_number"`
	EnemyID      string    `json:"enemy_id"`
	Stage        int       `json:"stage"`
	Winner       string    `json:"winner"`
	PlayerScore  int       `json:"player_score"`
	DealerScore  int       `json:"dealer_score"`
	DamageDealt  int       `json:"damage_dealt"`
	DamageTarget string    `json:"damage_target"`
	Dodged       bool      `json:"dodged"`
	Breakdown    string    `json:"breakdown"`
	CreatedAt    time.Time `json:"created_at"`
}
