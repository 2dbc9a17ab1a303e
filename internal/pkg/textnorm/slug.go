package textnorm

import (
	"regexp"
	"strings"
)

var (
	apostropheRunPattern = regexp.MustCompile(`'+`)
	nonSlugPattern       = regexp.MustCompile(`[^a-zA-Z0-9]+`)
	lowerUpperBoundary   = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	acronymWordBoundary  = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
)

// IDSlug derives a stable identifier slug from a display name: apostrophes
// stripped, internal whitespace collapsed to single underscores, lowercase.
// It is a pure function of the name.
func IDSlug(name string) string {
	s := strings.TrimSpace(name)
	s = apostropheRunPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, "_")
	return strings.ToLower(s)
}

// KebabCase derives a kebab-case slug, splitting on whitespace, punctuation
// and word-case boundaries: "  Imperial  HUMANS " and "ImperialHumans" both
// become "imperial-humans".
func KebabCase(s string) string {
	s = strings.TrimSpace(s)
	s = acronymWordBoundary.ReplaceAllString(s, "$1 $2")
	s = lowerUpperBoundary.ReplaceAllString(s, "$1 $2")
	s = nonSlugPattern.ReplaceAllString(s, "-")
	return strings.ToLower(strings.Trim(s, "-"))
}
