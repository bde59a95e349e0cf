// Package exporter writes an analysis result as an Excel workbook:
// one summary sheet plus one SKU-breakdown sheet per predicted brand.
package exporter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/bandhitl/prod-plan/internal/model"
)

// growthSaturation replaces an infinite growth ratio (no historical
// tonnage) in exported cells.
const growthSaturation = 999.99

// sheetNameLimit is Excel's hard cap on sheet-name length.
const sheetNameLimit = 31

var summaryHeader = []interface{}{
	"Brand", "May Target (tons)", "W1 Target (tons)", "Historical (tons)",
	"Growth Ratio", "SKU Count", "Risk",
}

var skuHeader = []interface{}{
	"SKU Code", "Product Name", "Predicted (tons)", "Historical (tons)",
	"Growth Ratio", "Share (%)",
}

// BuildWorkbook renders the result into a new workbook. Brands and
// SKUs are emitted in sorted order so identical results export to
// identical workbooks.
func BuildWorkbook(result *model.AnalysisResult) (*excelize.File, error) {
	f := excelize.NewFile()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(summary, "A1", &summaryHeader); err != nil {
		return nil, err
	}

	brands := make([]string, 0, len(result.BrandTargets))
	for brand := range result.BrandTargets {
		brands = append(brands, brand)
	}
	sort.Strings(brands)

	metricsByBrand := make(map[string]model.ProductionMetric, len(result.Metrics))
	for _, m := range result.Metrics {
		metricsByBrand[m.Brand] = m
	}

	for i, brand := range brands {
		bt := result.BrandTargets[brand]
		m := metricsByBrand[brand]

		skuCount := 0
		if pred := result.Predictions[brand]; pred != nil {
			skuCount = len(pred.MayDistribution)
		}

		row := []interface{}{
			brand, bt.MayTarget, bt.W1Target, bt.HistoricalTonnage,
			m.GrowthRatio, skuCount, m.RiskCategory,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(summary, cell, &row); err != nil {
			return nil, err
		}
	}

	for _, brand := range brands {
		pred := result.Predictions[brand]
		if pred == nil {
			continue
		}
		if err := writeBrandSheet(f, brand, pred); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// writeBrandSheet emits one sheet with the May-period SKU breakdown.
func writeBrandSheet(f *excelize.File, brand string, pred *model.Prediction) error {
	name := sheetName(brand)
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	if err := f.SetSheetRow(name, "A1", &skuHeader); err != nil {
		return err
	}

	codes := make([]string, 0, len(pred.MayDistribution))
	for code := range pred.MayDistribution {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for i, code := range codes {
		alloc := pred.MayDistribution[code]

		growth := growthSaturation
		if alloc.HistoricalTonnage > 0 {
			growth = alloc.PredictedTonnage / alloc.HistoricalTonnage
		}

		row := []interface{}{
			code, alloc.SkuName, alloc.PredictedTonnage, alloc.HistoricalTonnage,
			growth, alloc.Percentage * 100,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}

	return nil
}

// sheetName makes a brand code safe as an Excel sheet name.
func sheetName(brand string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", "?", "", "*", "", "[", "(", "]", ")", ":", "-")
	name := replacer.Replace(brand)
	if len(name) > sheetNameLimit {
		name = name[:sheetNameLimit]
	}
	return name
}
