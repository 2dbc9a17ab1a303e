package textnorm

import (
	"regexp"
	"strconv"
	"strings"
)

var randomTalentPattern = regexp.MustCompile(`(?i)^(\d+)?(?:\s*one)?(?:\s*additional)?\s*random(?:\s*talents?)?$`)

// ParseRandomTalentValue recognizes "N random talents" expressions such as
// "Random", "Additional Random Talent" or "3 Random Talents". It returns the
// talent count and true on a match (1 when no leading integer is present),
// or 0 and false when the value is not a random-talent expression.
func ParseRandomTalentValue(value string) (int, bool) {
	match := randomTalentPattern.FindStringSubmatch(strings.TrimSpace(value))
	if match == nil {
		return 0, false
	}

	if match[1] == "" {
		return 1, true
	}

	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
