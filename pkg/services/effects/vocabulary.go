package effects

import (
	"math"

	"github.com/fadedpez/roguejack/pkg/entities"
)

// Family is the hook an effect type compiles into
type Family string

const (
	FamilyDamageDealt    Family = "damage_dealt"
	FamilyDamageReceived Family = "damage_received"
	FamilyDodge          Family = "dodge"
	FamilyBust           Family = "bust"
	FamilyRules          Family = "rules"
	FamilyGold           Family = "gold"
	FamilyLifecycle      Family = "lifecycle"
	FamilyInstant        Family = "instant"
)

// Bound is the accepted numeric range of an effect value. Default replaces
// a value that is not a number.
type Bound struct {
	Min     float64
	Max     float64
	Default float64
}

// Clamp forces v into the bound
func (b Bound) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return b.Default
	}
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

type definition struct {
	Type   entities.EffectType
	Family Family
	Bound  Bound
}

// vocabulary is the closed list of effect types. A new type needs an entry
// here and a case in the evaluator of its family.
var vocabulary = []definition{
	{entities.EffectFlatDamageBonus, FamilyDamageDealt, Bound{-20, 50, 1}},
	{entities.EffectPercentDamageBonus, FamilyDamageDealt, Bound{-0.9, 3, 0.1}},
	{entities.EffectDamageMultiplier, FamilyDamageDealt, Bound{0, 5, 1}},
	{entities.EffectBlackjackDamageBonus, FamilyDamageDealt, Bound{0, 50, 5}},
	{entities.EffectSuitDamageBonus, FamilyDamageDealt, Bound{0, 10, 1}},
	{entities.EffectRankDamageBonus, FamilyDamageDealt, Bound{0, 10, 1}},
	{entities.EffectColorDamageBonus, FamilyDamageDealt, Bound{0, 10, 1}},
	{entities.EffectSoftHandDamageBonus, FamilyDamageDealt, Bound{0, 30, 3}},
	{entities.EffectLowScoreDamageBonus, FamilyDamageDealt, Bound{0, 30, 3}},
	{entities.EffectHighScoreDamageBonus, FamilyDamageDealt, Bound{0, 30, 3}},
	{entities.EffectExactScoreDamageBonus, FamilyDamageDealt, Bound{0, 50, 5}},
	{entities.EffectCardCountDamageBonus, FamilyDamageDealt, Bound{0, 10, 1}},
	{entities.EffectDealerBustDamageBonus, FamilyDamageDealt, Bound{0, 30, 3}},
	{entities.EffectDoubleDownDamageBonus, FamilyDamageDealt, Bound{0, 3, 0.5}},
	{entities.EffectLowHPDamageBonus, FamilyDamageDealt, Bound{0, 3, 0.5}},
	{entities.EffectFirstHandDamageBonus, FamilyDamageDealt, Bound{0, 30, 5}},

	{entities.EffectFlatDamageReduction, FamilyDamageReceived, Bound{0, 20, 1}},
	{entities.EffectPercentDamageReduction, FamilyDamageReceived, Bound{0, 0.9, 0.1}},
	{entities.EffectBustDamageReduction, FamilyDamageReceived, Bound{0, 1, 0.5}},
	{entities.EffectBlackjackDamageReduction, FamilyDamageReceived, Bound{0, 1, 0.5}},
	{entities.EffectSuitDamageReduction, FamilyDamageReceived, Bound{0, 10, 1}},
	{entities.EffectDamageCap, FamilyDamageReceived, Bound{1, 999, 20}},
	{entities.EffectLowHPDamageReduction, FamilyDamageReceived, Bound{0, 0.9, 0.25}},
	{entities.EffectFlatDamageTakenIncrease, FamilyDamageReceived, Bound{0, 20, 1}},
	{entities.EffectPercentDamageTakenIncrease, FamilyDamageReceived, Bound{0, 3, 0.1}},

	{entities.EffectDodgeChance, FamilyDodge, Bound{0, 0.75, 0.1}},
	{entities.EffectLowHPDodgeChance, FamilyDodge, Bound{0, 0.9, 0.2}},
	{entities.EffectBustDodgeChance, FamilyDodge, Bound{0, 0.75, 0.25}},

	{entities.EffectBustSave, FamilyBust, Bound{0, 21, 15}},
	{entities.EffectBustImmunity, FamilyBust, Bound{0, 21, 10}},
	{entities.EffectBustScoreReduction, FamilyBust, Bound{1, 10, 2}},

	{entities.EffectBustThresholdBonus, FamilyRules, Bound{-5, 10, 1}},
	{entities.EffectDealerStandsOn, FamilyRules, Bound{12, 21, 17}},
	{entities.EffectDealerHitsSoft17, FamilyRules, Bound{0, 1, 1}},
	{entities.EffectDoubleDownMultiplier, FamilyRules, Bound{1, 5, 2}},
	{entities.EffectAdditionalBlackjackValue, FamilyRules, Bound{2, 31, 20}},
	{entities.EffectBustSaveThreshold, FamilyRules, Bound{21, 31, 22}},
	{entities.EffectBlackjackMultiplierBonus, FamilyRules, Bound{-1, 3, 0.5}},
	{entities.EffectBaseDamageMultiplierBonus, FamilyRules, Bound{-0.9, 3, 0.25}},
	{entities.EffectMinimumDamage, FamilyRules, Bound{0, 20, 2}},
	{entities.EffectArmorRating, FamilyRules, Bound{0, 20, 1}},
	{entities.EffectWard, FamilyRules, Bound{0, 0.9, 0.1}},
	{entities.EffectTiesFavorPlayer, FamilyRules, Bound{0, 1, 1}},
	{entities.EffectExtraInitialCard, FamilyRules, Bound{1, 3, 1}},
	{entities.EffectDisableDoubleDown, FamilyRules, Bound{0, 1, 1}},
	{entities.EffectShopDiscount, FamilyRules, Bound{0, 0.9, 0.1}},
	{entities.EffectGoldPerWinBonus, FamilyRules, Bound{-10, 50, 5}},

	{entities.EffectFlatGoldBonus, FamilyGold, Bound{0, 100, 5}},
	{entities.EffectPercentGoldBonus, FamilyGold, Bound{0, 3, 0.25}},
	{entities.EffectGoldPenalty, FamilyGold, Bound{0, 100, 5}},

	{entities.EffectMaxHPBonus, FamilyLifecycle, Bound{-40, 100, 10}},
	{entities.EffectHealPerHand, FamilyLifecycle, Bound{0, 20, 1}},
	{entities.EffectHealOnWin, FamilyLifecycle, Bound{0, 30, 3}},
	{entities.EffectHealOnBlackjack, FamilyLifecycle, Bound{0, 50, 5}},
	{entities.EffectLifesteal, FamilyLifecycle, Bound{0, 2, 0.5}},
	{entities.EffectDamagePerHand, FamilyLifecycle, Bound{0, 20, 1}},
	{entities.EffectSelfDamagePerHand, FamilyLifecycle, Bound{0, 20, 1}},
	{entities.EffectHealOnBattleStart, FamilyLifecycle, Bound{0, 100, 10}},
	{entities.EffectGoldPerHand, FamilyLifecycle, Bound{0, 20, 1}},

	{entities.EffectInstantHeal, FamilyInstant, Bound{0, 200, 20}},
	{entities.EffectInstantDamage, FamilyInstant, Bound{0, 200, 10}},
	{entities.EffectInstantGold, FamilyInstant, Bound{0, 500, 10}},
	{entities.EffectCleanse, FamilyInstant, Bound{0, 1, 1}},
	{entities.EffectMaxHPPotion, FamilyInstant, Bound{0, 100, 10}},
}

// MaxHandScore is the highest score any score field may name
const MaxHandScore = 31

// fields lists the optional fields a type reads besides Value. Validate
// clamps those into their bounds and clears the rest.
type fields struct {
	Threshold *Bound
	Max       *Bound
	Scores    bool
}

var (
	lowHPFraction = &Bound{0, 1, defaultLowHPThreshold}
	perCardCap    = &Bound{0, 50, 0}
)

var auxiliary = map[entities.EffectType]fields{
	entities.EffectSuitDamageBonus:       {Max: perCardCap},
	entities.EffectRankDamageBonus:       {Max: perCardCap},
	entities.EffectColorDamageBonus:      {Max: perCardCap},
	entities.EffectCardCountDamageBonus:  {Max: perCardCap},
	entities.EffectSuitDamageReduction:   {Max: perCardCap},
	entities.EffectLowScoreDamageBonus:   {Scores: true},
	entities.EffectHighScoreDamageBonus:  {Scores: true},
	entities.EffectExactScoreDamageBonus: {Threshold: &Bound{2, MaxHandScore, 21}},
	entities.EffectLowHPDamageBonus:      {Threshold: lowHPFraction},
	entities.EffectLowHPDamageReduction:  {Threshold: lowHPFraction},
	entities.EffectLowHPDodgeChance:      {Threshold: lowHPFraction},
	entities.EffectBustSave:              {Threshold: &Bound{0, MaxHandScore, 22}},
}

var byType = func() map[entities.EffectType]definition {
	m := make(map[entities.EffectType]definition, len(vocabulary))
	for _, d := range vocabulary {
		m[d.Type] = d
	}
	return m
}()

// Types lists every known effect type grouped by family
func Types() []entities.EffectType {
	out := make([]entities.EffectType, len(vocabulary))
	for i, d := range vocabulary {
		out[i] = d.Type
	}
	return out
}

// Known reports whether t is part of the vocabulary
func Known(t entities.EffectType) bool {
	_, ok := byType[t]
	return ok
}

// FamilyOf returns the hook family of t
func FamilyOf(t entities.EffectType) (Family, bool) {
	d, ok := byType[t]
	return d.Family, ok
}

// BoundOf returns the declared bound of t
func BoundOf(t entities.EffectType) (Bound, bool) {
	d, ok := byType[t]
	return d.Bound, ok
}
