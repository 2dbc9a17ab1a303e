// Package parser converts raw source documents into the ordered row groups
// consumed by the generation pipeline. Three adapters (delimited text, CSV,
// spreadsheet rows) feed one normalized shape.
package parser

import (
	"regexp"
	"strings"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
)

// rowsPerEntry is the fixed cadence of logical rows per entry: name, label,
// skills, label, talents. Only offsets 0, 2 and 4 carry data; the label rows
// are header noise and are skipped.
const rowsPerEntry = 5

const (
	nameRowOffset    = 0
	skillsRowOffset  = 2
	talentsRowOffset = 4
)

var (
	bulletNamePattern = regexp.MustCompile(`\s*•\s*([^•]+)•`)
	internalSpace     = regexp.MustCompile(`\s+`)
)

// Group is one entry's worth of source rows
type Group struct {
	Name    string
	Skills  string
	Talents string
}

// GroupRows applies the five-row cadence to a flat row sequence. A row count
// not divisible by five means the source is truncated or misaligned; the
// whole dataset is rejected rather than partially emitted.
func GroupRows(rows [][]string) ([]Group, error) {
	if len(rows)%rowsPerEntry != 0 {
		return nil, errors.FailedPrecondition("incomplete dataset")
	}

	groups := make([]Group, 0, len(rows)/rowsPerEntry)
	for i := 0; i < len(rows); i += rowsPerEntry {
		name, err := ParseName(dataCell(rows[i+nameRowOffset]))
		if err != nil {
			return nil, err
		}

		groups = append(groups, Group{
			Name:    name,
			Skills:  dataCell(rows[i+skillsRowOffset]),
			Talents: dataCell(rows[i+talentsRowOffset]),
		})
	}

	return groups, nil
}

// ParseName extracts the text strictly between two bullet glyphs, trimmed,
// with internal whitespace collapsed
func ParseName(raw string) (string, error) {
	match := bulletNamePattern.FindStringSubmatch(raw)
	if match == nil {
		return "", errors.InvalidArgumentf("no bullet-delimited name in %q", raw)
	}
	return internalSpace.ReplaceAllString(strings.TrimSpace(match[1]), " "), nil
}

// dataCell returns the row's payload: the last non-empty cell. Spreadsheet
// exports pad data rows with leading empty columns; text and CSV rows carry
// a single cell.
func dataCell(row []string) string {
	for i := len(row) - 1; i >= 0; i-- {
		if strings.TrimSpace(row[i]) != "" {
			return row[i]
		}
	}
	return ""
}
