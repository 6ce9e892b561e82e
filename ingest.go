package textab

import (
	"encoding/csv"
	"regexp"
	"strings"
)

// DelimitedFormat identifies how a pasted block of text is delimited.
type DelimitedFormat int

const (
	FormatEmpty DelimitedFormat = iota // nothing but whitespace
	FormatText                         // free text, one row per line
	FormatCSV                          // comma-separated values
	FormatTSV                          // tab-separated values, the spreadsheet default
)

func (f DelimitedFormat) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatCSV:
		return "csv"
	case FormatTSV:
		return "tsv"
	default:
		return "empty"
	}
}

// DetectDelimited inspects the first line of data and decides which
// delimiter convention it follows. Tabs win over commas because
// spreadsheet applications copy cells tab-separated.
func DetectDelimited(data string) DelimitedFormat {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" {
		return FormatEmpty
	}
	firstLine, _, _ := strings.Cut(trimmed, "\n")
	if strings.Contains(firstLine, "\t") {
		return FormatTSV
	}
	if strings.Contains(firstLine, ",") {
		return FormatCSV
	}
	return FormatText
}

// ParseDelimited splits pasted text into rows of cells according to its
// detected format. Every row in the result has the same length.
func ParseDelimited(data string) ([][]string, DelimitedFormat) {
	format := DetectDelimited(data)
	var rows [][]string
	switch format {
	case FormatTSV:
		rows = parseTSV(data)
	case FormatCSV:
		rows = parseCSV(data)
	case FormatText:
		rows = parseText(data)
	}
	return padRows(rows), format
}

func parseTSV(data string) [][]string {
	lines := strings.Split(strings.TrimSpace(data), "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		fields := strings.Split(line, "\t")
		cells := make([]string, len(fields))
		for i, field := range fields {
			cells[i] = cleanQuoted(field)
		}
		rows = append(rows, cells)
	}
	return rows
}

// cleanQuoted trims whitespace, strips one pair of surrounding double
// quotes, and unescapes doubled quotes the way spreadsheets emit them.
func cleanQuoted(cell string) string {
	cell = strings.TrimSpace(cell)
	if len(cell) > 1 && strings.HasPrefix(cell, `"`) && strings.HasSuffix(cell, `"`) {
		cell = cell[1 : len(cell)-1]
	}
	return strings.ReplaceAll(cell, `""`, `"`)
}

func parseCSV(data string) [][]string {
	reader := csv.NewReader(strings.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		// Malformed quoting falls back to a naive comma split.
		lines := strings.Split(strings.TrimSpace(data), "\n")
		records = make([][]string, 0, len(lines))
		for _, line := range lines {
			fields := strings.Split(line, ",")
			for i := range fields {
				fields[i] = strings.TrimSpace(fields[i])
			}
			records = append(records, fields)
		}
		return records
	}
	for _, record := range records {
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
	}
	return records
}

// Runs of two or more spaces separate column-aligned text. A line with
// more than ten single spaces reads as prose, not columns.
var columnGap = regexp.MustCompile(`\s{2,}`)

func parseText(data string) [][]string {
	lines := strings.Split(strings.TrimSpace(data), "\n")
	if len(lines) > 1 {
		rows := make([][]string, 0, len(lines))
		for _, line := range lines {
			if line = strings.TrimSpace(line); line != "" {
				rows = append(rows, []string{line})
			}
		}
		return rows
	}
	line := strings.TrimSpace(lines[0])
	if n := strings.Count(line, " "); n > 0 && n <= 10 {
		if cells := columnGap.Split(line, -1); len(cells) > 1 {
			for i := range cells {
				cells[i] = strings.TrimSpace(cells[i])
			}
			return [][]string{cells}
		}
	}
	return [][]string{{line}}
}

// padRows extends every row with empty cells to the longest row's width.
func padRows(rows [][]string) [][]string {
	maxCols := 0
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}
	for i, row := range rows {
		for len(row) < maxCols {
			row = append(row, "")
		}
		rows[i] = row
	}
	return rows
}

// NormalizeRows pads rows out to a rectangle of at least minRows by
// minCols so the result can size a grid directly.
func NormalizeRows(rows [][]string, minRows, minCols int) [][]string {
	if minRows < 1 {
		minRows = 1
	}
	if minCols < 1 {
		minCols = 1
	}
	cols := minCols
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		padded := make([]string, cols)
		copy(padded, row)
		out = append(out, padded)
	}
	for len(out) < minRows {
		out = append(out, make([]string, cols))
	}
	return out
}

// GridFromRows builds a grid sized to hold the given rows with their
// content applied. Empty input yields a default-sized grid.
func GridFromRows(rows [][]string) *Grid {
	if len(rows) == 0 {
		return NewDefault()
	}
	norm := NormalizeRows(rows, 1, 1)
	g := New(len(norm), len(norm[0]))
	g.ApplyRows(norm, 0, 0)
	return g
}

// ApplyRows writes parsed rows into the grid starting at the given
// anchor, clipping at the grid edges. Cells that refuse content, such
// as merged continuations, are skipped. Returns the number of cells
// written.
func (g *Grid) ApplyRows(rows [][]string, startRow, startCol int) int {
	applied := 0
	for r, row := range rows {
		for c, content := range row {
			if g.SetContent(startRow+r, startCol+c, content) {
				applied++
			}
		}
	}
	return applied
}
