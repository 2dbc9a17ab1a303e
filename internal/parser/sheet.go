package parser

// ParseSheetRows filters already-tabular spreadsheet rows into the five-row
// cadence, dropping rows with no content
func ParseSheetRows(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if dataCell(row) == "" {
			continue
		}
		out = append(out, row)
	}
	return out
}
