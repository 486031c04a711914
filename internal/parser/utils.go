package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeLabel trims, collapses inner whitespace and lowercases for comparison.
func NormalizeLabel(s string) string {
	s = strings.TrimSpace(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.ToLower(s)
}

// LabelsEqual compares two labels under normalization.
func LabelsEqual(a, b string) bool {
	return NormalizeLabel(a) == NormalizeLabel(b)
}

// ParseNumber parses a loosely formatted spreadsheet number.
// Tolerates "$1,234.50", "(123)" negatives, "12%" and blanks (-> 0).
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" || s == "—" {
		return 0
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	if negative {
		f = -f
	}
	return f
}

// Cell bounds-checked cell access
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// FindRowByLabel locates the first row whose cell in column col equals label
// (normalized). Returns -1 when absent.
func FindRowByLabel(rows [][]string, col int, label string) int {
	for i, row := range rows {
		if LabelsEqual(Cell(row, col), label) {
			return i
		}
	}
	return -1
}

// FindRowAnyCol locates a label within the first maxCols columns of any row.
// The finance sheets move row labels between columns A and B depending on the
// export; probing the leading columns absorbs that drift.
func FindRowAnyCol(rows [][]string, label string, maxCols int) (rowIdx, colIdx int) {
	for i, row := range rows {
		limit := maxCols
		if limit > len(row) {
			limit = len(row)
		}
		for c := 0; c < limit; c++ {
			if LabelsEqual(Cell(row, c), label) {
				return i, c
			}
		}
	}
	return -1, -1
}

// FindRowContaining like FindRowAnyCol but with substring matching, for
// sheets whose labels carry prefixes ("Total Revenue" for "Revenue").
func FindRowContaining(rows [][]string, label string, maxCols int) (rowIdx, colIdx int) {
	want := NormalizeLabel(label)
	for i, row := range rows {
		limit := maxCols
		if limit > len(row) {
			limit = len(row)
		}
		for c := 0; c < limit; c++ {
			if cell := NormalizeLabel(Cell(row, c)); cell != "" && strings.Contains(cell, want) {
				return i, c
			}
		}
	}
	return -1, -1
}

// FindLabelColumn locates the column that holds the given label anywhere in
// the first maxRows rows. The placement report shifts its label column between
// sheet revisions, so the column is probed instead of assumed.
func FindLabelColumn(rows [][]string, label string, maxRows int) int {
	if maxRows <= 0 || maxRows > len(rows) {
		maxRows = len(rows)
	}
	for _, row := range rows[:maxRows] {
		for c := range row {
			if LabelsEqual(Cell(row, c), label) {
				return c
			}
		}
	}
	return -1
}

var monthNames = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

var monthFullNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// monthHeaderRe matches "Jan", "Jan 25", "Jan-25", "January 2025"
var monthHeaderRe = regexp.MustCompile(`^([A-Za-z]{3,9})[\s-]*(\d{2,4})?$`)

// MonthIndex parses a header cell as a month, 1-based. Accepts short and full
// month names with an optional 2 or 4 digit year suffix. The name must match
// exactly; arbitrary words that happen to start like a month ("Margin",
// "Decrease") are not headers.
func MonthIndex(header string) (int, bool) {
	header = strings.TrimSpace(header)
	m := monthHeaderRe.FindStringSubmatch(header)
	if m == nil {
		// datetime-style headers: "2025-01" / "2025-01-01 00:00:00"
		if len(header) >= 7 && header[4] == '-' {
			if idx, err := strconv.Atoi(header[5:7]); err == nil && idx >= 1 && idx <= 12 {
				return idx, true
			}
		}
		return 0, false
	}
	name := strings.ToLower(m[1])
	if name == "sept" {
		return 9, true
	}
	for i, mn := range monthNames {
		if name == mn || name == monthFullNames[i] {
			return i + 1, true
		}
	}
	return 0, false
}

// MonthColumns maps month number (1-based) -> column index from a header row.
// When a month appears more than once the first column wins.
func MonthColumns(header []string) map[int]int {
	cols := make(map[int]int)
	for c, cell := range header {
		if m, ok := MonthIndex(cell); ok {
			if _, seen := cols[m]; !seen {
				cols[m] = c
			}
		}
	}
	return cols
}

// FindMonthHeaderRow scans the first maxRows rows for the row carrying the
// most month headers. Header rows drift between report revisions.
func FindMonthHeaderRow(rows [][]string, maxRows int) (rowIdx int, cols map[int]int) {
	if maxRows <= 0 || maxRows > len(rows) {
		maxRows = len(rows)
	}
	best := -1
	var bestCols map[int]int
	for i := 0; i < maxRows; i++ {
		c := MonthColumns(rows[i])
		if len(c) > len(bestCols) {
			best = i
			bestCols = c
		}
	}
	if len(bestCols) < 2 {
		return -1, nil
	}
	return best, bestCols
}
