package entities

// EffectType tags one declarative effect. The vocabulary is closed: every
// tag has a declared numeric bound and a compiler case.
type EffectType string

// Damage dealt
const (
	EffectFlatDamageBonus       EffectType = "flat_damage_bonus"
	EffectPercentDamageBonus    EffectType = "percent_damage_bonus"
	EffectDamageMultiplier      EffectType = "damage_multiplier"
	EffectBlackjackDamageBonus  EffectType = "blackjack_damage_bonus"
	EffectSuitDamageBonus       EffectType = "suit_damage_bonus"
	EffectRankDamageBonus       EffectType = "rank_damage_bonus"
	EffectColorDamageBonus      EffectType = "color_damage_bonus"
	EffectSoftHandDamageBonus   EffectType = "soft_hand_damage_bonus"
	EffectLowScoreDamageBonus   EffectType = "low_score_damage_bonus"
	EffectHighScoreDamageBonus  EffectType = "high_score_damage_bonus"
	EffectExactScoreDamageBonus EffectType = "exact_score_damage_bonus"
	EffectCardCountDamageBonus  EffectType = "card_count_damage_bonus"
	EffectDealerBustDamageBonus EffectType = "dealer_bust_damage_bonus"
	EffectDoubleDownDamageBonus EffectType = "double_down_damage_bonus"
	EffectLowHPDamageBonus      EffectType = "low_hp_damage_bonus"
	EffectFirstHandDamageBonus  EffectType = "first_hand_damage_bonus"
)

// Damage received
const (
	EffectFlatDamageReduction        EffectType = "flat_damage_reduction"
	EffectPercentDamageReduction     EffectType = "percent_damage_reduction"
	EffectBustDamageReduction        EffectType = "bust_damage_reduction"
	EffectBlackjackDamageReduction   EffectType = "blackjack_damage_reduction"
	EffectSuitDamageReduction        EffectType = "suit_damage_reduction"
	EffectDamageCap                  EffectType = "damage_cap"
	EffectLowHPDamageReduction       EffectType = "low_hp_damage_reduction"
	EffectFlatDamageTakenIncrease    EffectType = "flat_damage_taken_increase"
	EffectPercentDamageTakenIncrease EffectType = "percent_damage_taken_increase"
)

// Dodge
const (
	EffectDodgeChance      EffectType = "dodge_chance"
	EffectLowHPDodgeChance EffectType = "low_hp_dodge_chance"
	EffectBustDodgeChance  EffectType = "bust_dodge_chance"
)

// Bust override
const (
	EffectBustSave           EffectType = "bust_save"
	EffectBustImmunity       EffectType = "bust_immunity"
	EffectBustScoreReduction EffectType = "bust_score_reduction"
)

// Rule rewrites
const (
	EffectBustThresholdBonus        EffectType = "bust_threshold_bonus"
	EffectDealerStandsOn            EffectType = "dealer_stands_on"
	EffectDealerHitsSoft17          EffectType = "dealer_hits_soft_17"
	EffectDoubleDownMultiplier      EffectType = "double_down_multiplier"
	EffectAdditionalBlackjackValue  EffectType = "additional_blackjack_value"
	EffectBustSaveThreshold         EffectType = "bust_save_threshold"
	EffectBlackjackMultiplierBonus  EffectType = "blackjack_multiplier_bonus"
	EffectBaseDamageMultiplierBonus EffectType = "base_damage_multiplier_bonus"
	EffectMinimumDamage             EffectType = "minimum_damage"
	EffectArmorRating               EffectType = "armor_rating"
	EffectWard                      EffectType = "ward"
	EffectTiesFavorPlayer           EffectType = "ties_favor_player"
	EffectExtraInitialCard          EffectType = "extra_initial_card"
	EffectDisableDoubleDown         EffectType = "disable_double_down"
	EffectShopDiscount              EffectType = "shop_discount"
	EffectGoldPerWinBonus           EffectType = "gold_per_win_bonus"
)

// Gold
const (
	EffectFlatGoldBonus    EffectType = "flat_gold_bonus"
	EffectPercentGoldBonus EffectType = "percent_gold_bonus"
	EffectGoldPenalty      EffectType = "gold_penalty"
)

// Lifecycle
const (
	EffectMaxHPBonus        EffectType = "max_hp_bonus"
	EffectHealPerHand       EffectType = "heal_per_hand"
	EffectHealOnWin         EffectType = "heal_on_win"
	EffectHealOnBlackjack   EffectType = "heal_on_blackjack"
	EffectLifesteal         EffectType = "lifesteal"
	EffectDamagePerHand     EffectType = "damage_per_hand"
	EffectSelfDamagePerHand EffectType = "self_damage_per_hand"
	EffectHealOnBattleStart EffectType = "heal_on_battle_start"
	EffectGoldPerHand       EffectType = "gold_per_hand"
)

// Instant, applied once when a consumable is used
const (
	EffectInstantHeal   EffectType = "instant_heal"
	EffectInstantDamage EffectType = "instant_damage"
	EffectInstantGold   EffectType = "instant_gold"
	EffectCleanse       EffectType = "cleanse"
	EffectMaxHPPotion   EffectType = "max_hp_potion"
)

// Conditions gate damage effects on the state of the hand
const (
	ConditionPlayerBlackjack = "player_blackjack"
	ConditionPlayerSoft      = "player_soft"
	ConditionPlayerBusted    = "player_busted"
	ConditionDealerBusted    = "dealer_busted"
	ConditionDealerBlackjack = "dealer_blackjack"
	ConditionDoubledDown     = "doubled_down"
	ConditionFirstHand       = "first_hand"
)

// Conditions lists every condition an effect may carry
var Conditions = []string{
	ConditionPlayerBlackjack,
	ConditionPlayerSoft,
	ConditionPlayerBusted,
	ConditionDealerBusted,
	ConditionDealerBlackjack,
	ConditionDoubledDown,
	ConditionFirstHand,
}

// ComponentEffect is the wire format for one effect. It is compiled into
// hooks, never interpreted directly.
type ComponentEffect struct {
	Type       EffectType `json:"type"`
	Value      float64    `json:"value"`
	Suit       Suit       `json:"suit,omitempty"`
	Rank       Rank       `json:"rank,omitempty"`
	Ranks      []Rank     `json:"ranks,omitempty"`
	Color      Color      `json:"color,omitempty"`
	Condition  string     `json:"condition,omitempty"`
	BonusValue float64    `json:"bonusValue,omitempty"`
	Threshold  float64    `json:"threshold,omitempty"`
	Max        float64    `json:"max,omitempty"`
	MinScore   int        `json:"minScore,omitempty"`
	MaxScore   int        `json:"maxScore,omitempty"`
	Duration   int        `json:"duration,omitempty"`
}

// Clone copies the effect including its rank list
func (e ComponentEffect) Clone() ComponentEffect {
	out := e
	if e.Ranks != nil {
		out.Ranks = append([]Rank(nil), e.Ranks...)
	}
	return out
}
