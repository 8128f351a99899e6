package effects

import (
	"github.com/fadedpez/roguejack/pkg/entities"
)

// MaxDuration caps how many hands a durational effect may last
const MaxDuration = 20

// fallback replaces an effect whose type is not in the vocabulary
var fallback = entities.ComponentEffect{Type: entities.EffectFlatDamageBonus, Value: 1}

// Validate returns a copy of e that the compiler accepts. Unknown types
// become a +1 flat damage bonus. The value and the optional fields the type
// reads are clamped into their bounds, optional fields it does not read are
// cleared, and suit, rank, color and condition values outside their
// whitelists are dropped. It never fails.
func Validate(e entities.ComponentEffect) entities.ComponentEffect {
	def, ok := byType[e.Type]
	if !ok {
		return fallback.Clone()
	}

	out := e.Clone()
	out.Value = def.Bound.Clamp(e.Value)

	aux := auxiliary[e.Type]
	out.Threshold = clampField(aux.Threshold, e.Threshold)
	out.Max = clampField(aux.Max, e.Max)
	out.MinScore, out.MaxScore = 0, 0
	if aux.Scores {
		out.MinScore = min(max(e.MinScore, 0), MaxHandScore)
		out.MaxScore = min(max(e.MaxScore, 0), MaxHandScore)
	}
	// nothing reads it
	out.BonusValue = 0

	if out.Suit != "" && !out.Suit.Valid() {
		out.Suit = ""
	}
	if out.Rank != "" && !out.Rank.Valid() {
		out.Rank = ""
	}
	if out.Ranks != nil {
		ranks := out.Ranks[:0]
		for _, r := range out.Ranks {
			if r.Valid() {
				ranks = append(ranks, r)
			}
		}
		out.Ranks = ranks
	}
	if out.Color != "" && out.Color != entities.Red && out.Color != entities.Black {
		out.Color = ""
	}
	if out.Condition != "" && !knownCondition(out.Condition) {
		out.Condition = ""
	}

	if out.Duration < 0 {
		out.Duration = 0
	}
	if out.Duration > MaxDuration {
		out.Duration = MaxDuration
	}
	return out
}

// ValidateAll validates every effect in order
func ValidateAll(effects []entities.ComponentEffect) []entities.ComponentEffect {
	out := make([]entities.ComponentEffect, len(effects))
	for i, e := range effects {
		out[i] = Validate(e)
	}
	return out
}

func clampField(b *Bound, v float64) float64 {
	if b == nil {
		return 0
	}
	return b.Clamp(v)
}

func knownCondition(c string) bool {
	for _, known := range entities.Conditions {
		if c == known {
			return true
		}
	}
	return false
}
