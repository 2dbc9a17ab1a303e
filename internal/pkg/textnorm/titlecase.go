// Package textnorm provides the string normalization primitives shared by
// the generation pipeline: title casing, choice-token rewriting, demonym
// suffix inflection, random-talent parsing, and slug derivation.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	digitRunPattern       = regexp.MustCompile(`(\d+)`)
	acronymPattern        = regexp.MustCompile(`[A-Z]{2,}`)
	caseTransitionPattern = regexp.MustCompile(`[^A-Z/-][A-Z]`)
	apostrophePattern     = regexp.MustCompile(`\s*'\s*`)
	bracketGroupPattern   = regexp.MustCompile(`\s*([(\[])\s*([^({\[]+)\s*([)\]])\s*`)
	wordStartPattern      = regexp.MustCompile(`\s+.`)
	whitespacePattern     = regexp.MustCompile(`\s+`)
	openingBracketPattern = regexp.MustCompile(`\s*([(\[])\s*`)
	closingBracketPattern = regexp.MustCompile(`\s*([)\]])\s*`)
	chooseOnePattern      = regexp.MustCompile(`(?i)\(\s*choose\s*one\s*\)`)
)

// TitleCase normalizes a skill or talent token to display casing. It runs an
// ordered list of independent passes; applying it to its own output is a
// no-op.
func TitleCase(s string) string {
	s = strings.TrimSpace(s)
	s = spaceDigitRuns(s)
	s = lowerAcronyms(s)
	s = splitCaseTransitions(s)
	s = loosenApostrophes(s)
	s = loosenFirstBracketGroup(s)
	s = upperWordStarts(s)
	s = upperFirst(s)
	s = collapseWhitespace(s)
	s = tightenApostrophes(s)
	s = tightenBrackets(s)
	return strings.TrimSpace(s)
}

// ChooseOneToAny rewrites a "(choose one)" clause, with arbitrary internal
// whitespace and casing, to the literal "(Any)".
func ChooseOneToAny(s string) string {
	return replaceFirst(chooseOnePattern, s, "(Any)")
}

// FormatSkill normalizes one skill cell token
func FormatSkill(s string) string {
	return TitleCase(ChooseOneToAny(strings.TrimSpace(s)))
}

// FormatTalent normalizes one talent cell token
func FormatTalent(s string) string {
	return TitleCase(ChooseOneToAny(strings.TrimSpace(s)))
}

// spaceDigitRuns isolates runs of digits with surrounding spaces so "Sailor2"
// reads "Sailor 2"
func spaceDigitRuns(s string) string {
	return digitRunPattern.ReplaceAllString(s, " $1 ")
}

// lowerAcronyms downcases runs of 2+ uppercase letters and isolates them as
// their own word, so later word-start capitalization applies at the group
// level
func lowerAcronyms(s string) string {
	return acronymPattern.ReplaceAllStringFunc(s, func(m string) string {
		return " " + strings.ToLower(m) + " "
	})
}

// splitCaseTransitions inserts a space on lower-to-upper transitions, leaving
// hyphenated and slashed compounds ("Stout-hearted", "Read/Write") alone
func splitCaseTransitions(s string) string {
	return caseTransitionPattern.ReplaceAllStringFunc(s, func(m string) string {
		r := []rune(m)
		return string(r[:len(r)-1]) + " " + string(r[len(r)-1:])
	})
}

func loosenApostrophes(s string) string {
	return apostrophePattern.ReplaceAllString(s, " ' ")
}

// loosenFirstBracketGroup spaces out the first parenthesized or bracketed
// clause so its contents are treated as standalone words
func loosenFirstBracketGroup(s string) string {
	return replaceFirst(bracketGroupPattern, s, " $1 $2 $3")
}

// upperWordStarts uppercases the first letter after any run of whitespace
func upperWordStarts(s string) string {
	return wordStartPattern.ReplaceAllStringFunc(s, strings.ToUpper)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func collapseWhitespace(s string) string {
	return whitespacePattern.ReplaceAllString(s, " ")
}

// tightenApostrophes joins apostrophes back to their neighbors: Foo'Bar
func tightenApostrophes(s string) string {
	return apostrophePattern.ReplaceAllString(s, "'")
}

// tightenBrackets normalizes bracket spacing to loose-before, tight-inside:
// Foo (Bar)
func tightenBrackets(s string) string {
	s = openingBracketPattern.ReplaceAllString(s, " $1")
	return closingBracketPattern.ReplaceAllString(s, "$1 ")
}

// replaceFirst applies repl to the first match of re only
func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + string(re.ExpandString(nil, repl, s, loc)) + s[loc[1]:]
}
