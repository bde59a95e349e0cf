package parser

import (
	"github.com/bandhitl/prod-plan/internal/model"
)

// headerScanRows limits how deep the target-header scan looks.
const headerScanRows = 5

// Rows between the header row and the first data row. Fixed structural
// offset of the known target-file layout.
const targetDataOffset = 2

// Fallback column positions used when neither period token is found.
const (
	fallbackPeriodACol = 1
	fallbackPeriodBCol = 2
)

// totalMarker ends the data region when it appears in the first column.
const totalMarker = "total"

// TargetOptions carries the tokens that identify the two forecast-period
// columns in the target-file header.
type TargetOptions struct {
	PeriodAToken string
	PeriodBToken string
}

// DefaultTargetOptions matches the planning team's file layout: a month
// column ("May") and a first-week sub-target column ("W1").
func DefaultTargetOptions() TargetOptions {
	return TargetOptions{PeriodAToken: "may", PeriodBToken: "w1"}
}

// TargetStats reports how the target header was located.
type TargetStats struct {
	PeriodACol   int  `json:"periodACol"`
	PeriodBCol   int  `json:"periodBCol"`
	HeaderRow    int  `json:"headerRow"`
	UsedFallback bool `json:"usedFallback"`
	RowsKept     int  `json:"rowsKept"`
	RowsSkipped  int  `json:"rowsSkipped"`
}

// ParseTargets extracts the category → target mapping from a raw target
// sheet. The file has no reliable header names, only structural
// conventions: the two target columns are found by scanning the first
// few rows for the period tokens, and data starts a fixed two rows
// below the header. A repeated category overwrites the earlier row.
func ParseTargets(rows [][]string, opts TargetOptions) (map[string]model.CategoryTarget, TargetStats, error) {
	stats := TargetStats{PeriodACol: -1, PeriodBCol: -1, HeaderRow: 0}

	if len(rows) < 3 {
		return nil, stats, &Error{Kind: InsufficientData}
	}

	if opts.PeriodAToken == "" || opts.PeriodBToken == "" {
		def := DefaultTargetOptions()
		if opts.PeriodAToken == "" {
			opts.PeriodAToken = def.PeriodAToken
		}
		if opts.PeriodBToken == "" {
			opts.PeriodBToken = def.PeriodBToken
		}
	}

	scan := len(rows)
	if scan > headerScanRows {
		scan = headerScanRows
	}
	for r := 0; r < scan; r++ {
		for c, cell := range rows[r] {
			text := normalizeCell(cell)
			if text == "" {
				continue
			}
			if stats.PeriodACol < 0 && containsFold(text, opts.PeriodAToken) {
				stats.PeriodACol = c
				if r > stats.HeaderRow {
					stats.HeaderRow = r
				}
			}
			if stats.PeriodBCol < 0 && c != stats.PeriodACol && containsFold(text, opts.PeriodBToken) {
				stats.PeriodBCol = c
				if r > stats.HeaderRow {
					stats.HeaderRow = r
				}
			}
		}
	}

	if stats.PeriodACol < 0 || stats.PeriodBCol < 0 {
		stats.PeriodACol = fallbackPeriodACol
		stats.PeriodBCol = fallbackPeriodBCol
		stats.HeaderRow = 0
		stats.UsedFallback = true
	}

	targets := make(map[string]model.CategoryTarget)

	start := stats.HeaderRow + targetDataOffset
	for r := start; r < len(rows); r++ {
		row := rows[r]
		category := normalizeCell(getCell(row, 0))
		if containsFold(category, totalMarker) {
			break
		}
		if category == "" {
			stats.RowsSkipped++
			continue
		}

		targetA, _ := parseNumber(getCell(row, stats.PeriodACol))
		targetB, _ := parseNumber(getCell(row, stats.PeriodBCol))

		targets[category] = model.CategoryTarget{
			Category: category,
			TargetA:  targetA,
			TargetB:  targetB,
		}
		stats.RowsKept++
	}

	if len(targets) == 0 {
		return nil, stats, &Error{Kind: NoCategories}
	}

	return targets, stats, nil
}
