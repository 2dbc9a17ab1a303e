package generation

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/entities/wfrp"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/parser"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/pkg/textnorm"
)

var orSeparator = regexp.MustCompile(`(?i)\s+or\s+`)

// BuildEntry turns one row group into a normalized entry: the raw name is
// inflected to its demonym form, the id and display name derive from it,
// skills are normalized, deduplicated and sorted, talents keep source order.
func BuildEntry(group parser.Group) wfrp.Entry {
	name := textnorm.TransformNameWithSuffix(group.Name)

	return wfrp.Entry{
		ID:      wfrp.EntryIDPrefix + textnorm.IDSlug(name),
		Name:    wfrp.MarkerGlyph + name,
		Skills:  parseSkills(group.Skills),
		Talents: parseTalents(group.Talents),
	}
}

func parseSkills(raw string) []string {
	seen := make(map[string]struct{})
	skills := make([]string, 0)

	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		skill := textnorm.FormatSkill(token)
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		skills = append(skills, skill)
	}

	sort.Strings(skills)
	return skills
}

func parseTalents(raw string) wfrp.TalentList {
	talents := make(wfrp.TalentList, 0)

	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if orSeparator.MatchString(token) {
			alternatives := orSeparator.Split(token, -1)
			for i, alternative := range alternatives {
				alternatives[i] = formatTalentValue(alternative)
			}
			talents = append(talents, strings.Join(alternatives, ", "))
			continue
		}

		talents = append(talents, formatTalentValue(token))
	}

	return talents
}

// formatTalentValue resolves one talent value to either the random-talent
// sentinel or its normalized name
func formatTalentValue(value string) string {
	if n, ok := textnorm.ParseRandomTalentValue(value); ok {
		return wfrp.RandomTalent(n)
	}
	return textnorm.FormatTalent(value)
}
