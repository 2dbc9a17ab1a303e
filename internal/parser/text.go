package parser

import (
	"strings"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
)

// Section markers in scraped rulebook text
const (
	skillsMarker  = "Skills:"
	talentsMarker = "Talents:"
)

// ParseText converts a scraped plain-text source into the five-row cadence.
// Entry names are bracketed by bullet glyphs; the "Skills:" and "Talents:"
// markers delimit the two data sections. Everything before the first bullet
// line is preamble and is discarded.
func ParseText(raw string) ([][]string, error) {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	var blocks [][]string
	var current []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if bulletNamePattern.MatchString(trimmed) {
			if current != nil {
				blocks = append(blocks, current)
			}
			current = []string{trimmed}
			continue
		}

		// Preamble before the first bullet
		if current == nil {
			continue
		}

		current = append(current, trimmed)
	}
	if current != nil {
		blocks = append(blocks, current)
	}

	rows := make([][]string, 0, len(blocks)*rowsPerEntry)
	for _, block := range blocks {
		skills, talents, err := splitBlockSections(block)
		if err != nil {
			return nil, err
		}

		rows = append(rows,
			[]string{block[0]},
			[]string{skillsMarker},
			[]string{skills},
			[]string{talentsMarker},
			[]string{talents},
		)
	}

	return rows, nil
}

// splitBlockSections slices one entry block into its skills and talents
// content, dropping the marker lines themselves
func splitBlockSections(block []string) (skills, talents string, err error) {
	var skillLines, talentLines []string
	section := ""

	for _, line := range block[1:] {
		switch {
		case strings.HasPrefix(line, skillsMarker):
			section = skillsMarker
			if rest := strings.TrimSpace(strings.TrimPrefix(line, skillsMarker)); rest != "" {
				skillLines = append(skillLines, rest)
			}
		case strings.HasPrefix(line, talentsMarker):
			section = talentsMarker
			if rest := strings.TrimSpace(strings.TrimPrefix(line, talentsMarker)); rest != "" {
				talentLines = append(talentLines, rest)
			}
		case section == skillsMarker:
			skillLines = append(skillLines, line)
		case section == talentsMarker:
			talentLines = append(talentLines, line)
		default:
			return "", "", errors.InvalidArgumentf("unexpected content before %q marker: %q", skillsMarker, line)
		}
	}

	if section == "" {
		return "", "", errors.InvalidArgumentf("entry %q has no section markers", block[0])
	}

	return strings.Join(skillLines, " "), strings.Join(talentLines, " "), nil
}
