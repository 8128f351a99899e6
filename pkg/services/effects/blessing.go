package effects

import (
	"strings"
	"unicode/utf8"

	"github.com/fadedpez/roguejack/pkg/entities"
)

const (
	MaxBlessingNameLength        = 40
	MaxBlessingDescriptionLength = 200
	MaxBlessingEffects           = 3

	defaultBlessingName = "Nameless Blessing"
)

// BlessingDefinition is the untrusted blessing an author returns for a wish
type BlessingDefinition = entities.BlessingDefinition

// SanitizeBlessing trims an untrusted definition down to something safe to
// compile: capped name and description, no instant effects, at most
// MaxBlessingEffects validated effects.
func SanitizeBlessing(def BlessingDefinition) BlessingDefinition {
	out := BlessingDefinition{
		Name:        truncate(strings.TrimSpace(def.Name), MaxBlessingNameLength),
		Description: truncate(strings.TrimSpace(def.Description), MaxBlessingDescriptionLength),
	}
	if out.Name == "" {
		out.Name = defaultBlessingName
	}

	for _, e := range def.Effects {
		if len(out.Effects) == MaxBlessingEffects {
			break
		}
		if family, _ := FamilyOf(e.Type); family == FamilyInstant {
			continue
		}
		out.Effects = append(out.Effects, Validate(e))
	}
	return out
}

// CompileBlessing sanitizes def and compiles it into a wish blessing modifier
func CompileBlessing(id string, def BlessingDefinition) *entities.Modifier {
	clean := SanitizeBlessing(def)
	return Compile(id, clean.Name, entities.SourceWishBlessing, clean.Effects)
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
