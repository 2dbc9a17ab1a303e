package parser

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
)

// ParseCSV reads an RFC-4180 CSV export into the five-row cadence. The
// header row is skipped, as are fully-empty rows and rows with any empty
// field; all values are trimmed.
func ParseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed csv")
	}

	if len(records) == 0 {
		return nil, nil
	}

	var rows [][]string
	for _, record := range records[1:] {
		trimmed := make([]string, len(record))
		empty := true
		partial := false
		for i, value := range record {
			trimmed[i] = strings.TrimSpace(value)
			if trimmed[i] == "" {
				partial = true
			} else {
				empty = false
			}
		}

		if empty || partial {
			continue
		}

		rows = append(rows, trimmed)
	}

	return rows, nil
}
