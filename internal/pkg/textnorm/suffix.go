package textnorm

import "strings"

// suffixEdgeCases holds irregular demonym forms looked up before any suffix
// rule is tried. Tribe names inflect to themselves.
var suffixEdgeCases = map[string]string{
	// Tribe names
	"Strigany": "Strigany",
	"Gospodar": "Gospodar",
	"Ropsmenn": "Ropsmenn",
	"Ungol":    "Ungol",

	// Bretonnian
	"Artois":     "Artoin",
	"Bordeleaux": "Bordelen",
	"Gisoreux":   "Gisoren",
	"Lyonesse":   "Lyonen",
	"Quenelles":  "Queneller",
}

// genericCases are already-inflected names passed through unchanged
var genericCases = []string{"Bretonnian", "Estalian", "Kislevite", "Tilean"}

// suffixRules are tried in order; the first matching suffix wins
var suffixRules = []struct {
	suffix  string
	trim    int
	replace string
}{
	{suffix: "lle", trim: 3, replace: "llian"},
	{suffix: "nia", trim: 3, replace: "nian"},
	{suffix: "ine", trim: 3, replace: "inian"},
	{suffix: "nne", trim: 3, replace: "nnian"},
	{suffix: "fort", trim: 0, replace: "ian"},
	{suffix: "llon", trim: 0, replace: "ian"},
	{suffix: "von", trim: 3, replace: "vonese"},
	{suffix: "e", trim: 0, replace: "r"},
}

// TransformNameWithSuffix derives the demonym or adjectival form of a place
// or tribe name: irregular lookup first, then passthrough names, then the
// suffix rules, falling back to appending "er".
func TransformNameWithSuffix(raw string) string {
	name := strings.TrimSpace(raw)

	if out, ok := suffixEdgeCases[name]; ok {
		return out
	}

	for _, generic := range genericCases {
		if name == generic {
			return name
		}
	}

	for _, rule := range suffixRules {
		if strings.HasSuffix(name, rule.suffix) {
			return name[:len(name)-rule.trim] + rule.replace
		}
	}

	return name + "er"
}
