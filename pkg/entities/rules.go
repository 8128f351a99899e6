package entities

import (
	"errors"
	"fmt"
)

// ScoringRules control hand evaluation
type ScoringRules struct {
	BustThreshold             int   `json:"bustThreshold"`
	BlackjackTarget           int   `json:"blackjackTarget"`
	AdditionalBlackjackValues []int `json:"additionalBlackjackValues"`
	// BustSaveThreshold, when set, un-busts any hand whose raw total does not exceed it
	BustSaveThreshold *int `json:"bustSaveThreshold"`
	AceHighValue      int  `json:"aceHighValue"`
	AceLowValue       int  `json:"aceLowValue"`
}

// TurnOrderRules control the initial deal
type TurnOrderRules struct {
	PlayerFirst        bool `json:"playerFirst"`
	InitialPlayerCards int  `json:"initialPlayerCards"`
	InitialDealerCards int  `json:"initialDealerCards"`
}

// DealerRules control how the dealer draws
type DealerRules struct {
	StandsOn       int  `json:"standsOn"`
	StandsOnSoft17 bool `json:"standsOnSoft17"`
}

// WinConditionRules resolve ties and double busts
type WinConditionRules struct {
	TieResolution         Winner `json:"tieResolution"`
	DoubleBustResolution  Winner `json:"doubleBustResolution"`
	NaturalBeatsTwentyOne bool   `json:"naturalBeatsTwentyOne"`
}

// DamageRules parameterize the damage formula
type DamageRules struct {
	BaseMultiplier            float64 `json:"baseMultiplier"`
	MinimumDamage             int     `json:"minimumDamage"`
	MaximumDamage             int     `json:"maximumDamage"`
	FlatBonusDamage           int     `json:"flatBonusDamage"`
	PercentBonusDamage        float64 `json:"percentBonusDamage"`
	FlatDamageReduction       int     `json:"flatDamageReduction"`
	PercentDamageReduction    float64 `json:"percentDamageReduction"`
	BlackjackBonusDamage      int     `json:"blackjackBonusDamage"`
	BlackjackPayoutMultiplier float64 `json:"blackjackPayoutMultiplier"`
}

// ActionRules list what the player may do
type ActionRules struct {
	CanHit               bool    `json:"canHit"`
	CanStand             bool    `json:"canStand"`
	CanDoubleDown        bool    `json:"canDoubleDown"`
	DoubleDownMultiplier float64 `json:"doubleDownMultiplier"`
}

// DeckRules control deck composition
type DeckRules struct {
	NumberOfDecks int `json:"numberOfDecks"`
}

// EconomyRules control gold
type EconomyRules struct {
	StartingGold        int     `json:"startingGold"`
	GoldPerBattle       int     `json:"goldPerBattle"`
	GoldPerBossBattle   int     `json:"goldPerBossBattle"`
	ShopPriceMultiplier float64 `json:"shopPriceMultiplier"`
}

// HealthRules control hit points
type HealthRules struct {
	PlayerMaxHP        int     `json:"playerMaxHp"`
	PlayerStartingHP   int     `json:"playerStartingHp"`
	EnemyHPMultiplier  float64 `json:"enemyHpMultiplier"`
	HealBetweenBattles int     `json:"healBetweenBattles"`
}

// ProgressionRules control run length
type ProgressionRules struct {
	BattlesPerStage int `json:"battlesPerStage"`
	TotalStages     int `json:"totalStages"`
}

// GameRules is the complete configuration of one game. Modifiers never edit
// a shared GameRules; they receive a copy and return a new value.
type GameRules struct {
	Scoring       ScoringRules      `json:"scoring"`
	TurnOrder     TurnOrderRules    `json:"turnOrder"`
	Dealer        DealerRules       `json:"dealer"`
	WinConditions WinConditionRules `json:"winConditions"`
	Damage        DamageRules       `json:"damage"`
	Actions       ActionRules       `json:"actions"`
	Deck          DeckRules         `json:"deck"`
	Economy       EconomyRules      `json:"economy"`
	Health        HealthRules       `json:"health"`
	Progression   ProgressionRules  `json:"progression"`
}

// DefaultRules returns classic 21-point rules with a 1.5x blackjack payout
func DefaultRules() GameRules {
	return GameRules{
		Scoring: ScoringRules{
			BustThreshold:             21,
			BlackjackTarget:           21,
			AdditionalBlackjackValues: []int{},
			AceHighValue:              11,
			AceLowValue:               1,
		},
		TurnOrder: TurnOrderRules{
			PlayerFirst:        true,
			InitialPlayerCards: 2,
			InitialDealerCards: 2,
		},
		Dealer: DealerRules{
			StandsOn:       17,
			StandsOnSoft17: true,
		},
		WinConditions: WinConditionRules{
			TieResolution:         WinnerPush,
			DoubleBustResolution:  WinnerPush,
			NaturalBeatsTwentyOne: true,
		},
		Damage: DamageRules{
			BaseMultiplier:            1,
			MinimumDamage:             1,
			MaximumDamage:             999,
			BlackjackPayoutMultiplier: 1.5,
		},
		Actions: ActionRules{
			CanHit:               true,
			CanStand:             true,
			CanDoubleDown:        true,
			DoubleDownMultiplier: 2,
		},
		Deck: DeckRules{
			NumberOfDecks: 1,
		},
		Economy: EconomyRules{
			StartingGold:        0,
			GoldPerBattle:       10,
			GoldPerBossBattle:   25,
			ShopPriceMultiplier: 1,
		},
		Health: HealthRules{
			PlayerMaxHP:        50,
			PlayerStartingHP:   50,
			EnemyHPMultiplier:  1,
			HealBetweenBattles: 0,
		},
		Progression: ProgressionRules{
			BattlesPerStage: 3,
			TotalStages:     3,
		},
	}
}

// Clone returns a deep copy that shares no memory with r
func (r GameRules) Clone() GameRules {
	out := r
	out.Scoring.AdditionalBlackjackValues = append([]int{}, r.Scoring.AdditionalBlackjackValues...)
	if r.Scoring.BustSaveThreshold != nil {
		v := *r.Scoring.BustSaveThreshold
		out.Scoring.BustSaveThreshold = &v
	}
	return out
}

// IsBlackjackValue reports whether total counts as a blackjack total
func (r GameRules) IsBlackjackValue(total int) bool {
	if total == r.Scoring.BlackjackTarget {
		return true
	}
	for _, v := range r.Scoring.AdditionalBlackjackValues {
		if v == total {
			return true
		}
	}
	return false
}

var errInvalidRules = errors.New("invalid rules")

// Validate rejects incomplete or contradictory configurations
func (r GameRules) Validate() error {
	switch {
	case r.Scoring.BustThreshold <= 0:
		return fmt.Errorf("%w: bust threshold must be positive", errInvalidRules)
	case r.Scoring.AceLowValue <= 0 || r.Scoring.AceHighValue < r.Scoring.AceLowValue:
		return fmt.Errorf("%w: ace values %d/%d", errInvalidRules, r.Scoring.AceLowValue, r.Scoring.AceHighValue)
	case r.TurnOrder.InitialPlayerCards < 1 || r.TurnOrder.InitialDealerCards < 1:
		return fmt.Errorf("%w: both sides need at least one initial card", errInvalidRules)
	case r.Deck.NumberOfDecks < 1:
		return fmt.Errorf("%w: at least one deck is required", errInvalidRules)
	case r.Damage.BaseMultiplier < 0 || r.Damage.BlackjackPayoutMultiplier < 0 || r.Actions.DoubleDownMultiplier < 0:
		return fmt.Errorf("%w: multipliers cannot be negative", errInvalidRules)
	case r.Damage.MinimumDamage > r.Damage.MaximumDamage:
		return fmt.Errorf("%w: minimum damage %d exceeds maximum %d", errInvalidRules, r.Damage.MinimumDamage, r.Damage.MaximumDamage)
	}

	for _, w := range []Winner{r.WinConditions.TieResolution, r.WinConditions.DoubleBustResolution} {
		if w != WinnerPlayer && w != WinnerDealer && w != WinnerPush {
			return fmt.Errorf("%w: unknown resolution %q", errInvalidRules, w)
		}
	}
	return nil
}

// IsInvalidRules reports whether err came from Validate
func IsInvalidRules(err error) bool {
	return errors.Is(err, errInvalidRules)
}
