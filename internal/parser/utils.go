package parser

import (
	"strconv"
	"strings"
)

// normalizeCell trims whitespace and maps pandas' literal "nan" to empty.
func normalizeCell(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "nan") {
		return ""
	}
	return s
}

// parseNumber parses a numeric cell, tolerating thousands separators.
// The second return is false for empty or unparseable cells.
func parseNumber(s string) (float64, bool) {
	s = normalizeCell(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// containsFold reports whether text contains sub, case-insensitively.
func containsFold(text, sub string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(sub))
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
