package parser

import (
	"strings"

	"github.com/bandhitl/prod-plan/internal/model"
)

// Canonical column keys of the historical shipment file.
const (
	colBrand   = "BRANDPRODUCT"
	colSkuCode = "Item Code"
	colTonnage = "TON"
	colSkuName = "Item Name"
)

// requiredColumns in scoring order. A candidate header row qualifies
// when at least minHeaderHits of them match.
var requiredColumns = []string{colBrand, colSkuCode, colTonnage, colSkuName}

const minHeaderHits = 3

// headerOffsets are the candidate header-row positions, tried in order.
var headerOffsets = []int{0, 1, 2}

// HistoricalStats reports how ingestion treated the raw rows. The
// counts are informational; they do not affect the records returned.
type HistoricalStats struct {
	HeaderRow   int `json:"headerRow"`
	RowsKept    int `json:"rowsKept"`
	RowsDropped int `json:"rowsDropped"`
}

// ParseHistorical normalizes a raw historical sheet into shipment
// records. The header row may sit at offset 0, 1 or 2; each candidate
// offset is scored by how many required column labels it matches
// (case-insensitive prefix/substring) and the first offset with at
// least 3 of 4 hits wins.
func ParseHistorical(rows [][]string) ([]model.HistoricalRecord, HistoricalStats, error) {
	stats := HistoricalStats{HeaderRow: -1}

	headerRow := -1
	var colIndex map[string]int
	for _, offset := range headerOffsets {
		if offset >= len(rows) {
			break
		}
		idx := matchHeader(rows[offset])
		if len(idx) >= minHeaderHits {
			headerRow = offset
			colIndex = idx
			break
		}
	}
	if headerRow < 0 {
		return nil, stats, &Error{Kind: NoValidHeader}
	}
	stats.HeaderRow = headerRow

	missing := []string{}
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, stats, &Error{Kind: MissingColumns, Columns: missing}
	}

	records := make([]model.HistoricalRecord, 0, len(rows)-headerRow-1)
	for _, row := range rows[headerRow+1:] {
		brand := normalizeCell(getCell(row, colIndex[colBrand]))
		skuCode := normalizeCell(getCell(row, colIndex[colSkuCode]))
		skuName := normalizeCell(getCell(row, colIndex[colSkuName]))
		tonnage, ok := parseNumber(getCell(row, colIndex[colTonnage]))

		if brand == "" || skuCode == "" || !ok || tonnage <= 0 {
			stats.RowsDropped++
			continue
		}

		records = append(records, model.HistoricalRecord{
			Brand:   brand,
			SkuCode: skuCode,
			SkuName: skuName,
			Tonnage: tonnage,
		})
		stats.RowsKept++
	}

	if len(records) == 0 {
		return nil, stats, &Error{Kind: NoValidRecords}
	}

	return records, stats, nil
}

// matchHeader maps each required column to its index in the candidate
// header row. A cell matches when it starts with or contains the label.
func matchHeader(header []string) map[string]int {
	idx := make(map[string]int, len(requiredColumns))
	for _, col := range requiredColumns {
		want := strings.ToLower(col)
		for i, cell := range header {
			got := strings.ToLower(strings.TrimSpace(cell))
			if got == "" {
				continue
			}
			if strings.HasPrefix(got, want) || strings.Contains(got, want) {
				idx[col] = i
				break
			}
		}
	}
	return idx
}
