package exporter

import (
	"testing"

	"github.com/bandhitl/prod-plan/internal/model"
)

func sampleResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		BrandTargets: map[string]*model.BrandTarget{
			"SCG-PI": {Brand: "SCG-PI", MayTarget: 200, W1Target: 50, HistoricalTonnage: 100},
		},
		Predictions: map[string]*model.Prediction{
			"SCG-PI": {
				Brand: "SCG-PI",
				MayDistribution: map[string]model.SkuAllocation{
					"P-001": {PredictedTonnage: 120, Percentage: 0.6, SkuName: "Pipe A", HistoricalTonnage: 60},
					"P-002": {PredictedTonnage: 80, Percentage: 0.4, SkuName: "Pipe B"},
				},
			},
		},
		Metrics: []model.ProductionMetric{
			{Brand: "SCG-PI", GrowthRatio: 2, RiskCategory: model.RiskMedium},
		},
	}
}

func TestBuildWorkbook_Layout(t *testing.T) {
	t.Parallel()

	f, err := BuildWorkbook(sampleResult())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Summary" {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	brand, err := f.GetCellValue("Summary", "A2")
	if err != nil || brand != "SCG-PI" {
		t.Fatalf("summary brand cell: %q %v", brand, err)
	}
	risk, _ := f.GetCellValue("Summary", "G2")
	if risk != "Medium" {
		t.Fatalf("summary risk cell want=Medium got=%q", risk)
	}

	rows, err := f.GetRows("SCG-PI")
	if err != nil {
		t.Fatalf("brand sheet rows: %v", err)
	}
	// header plus two SKUs, sorted by code
	if len(rows) != 3 {
		t.Fatalf("brand sheet rows want=3 got=%d", len(rows))
	}
	if rows[1][0] != "P-001" || rows[2][0] != "P-002" {
		t.Fatalf("SKU order: %v, %v", rows[1][0], rows[2][0])
	}
}

func TestBuildWorkbook_GrowthSaturation(t *testing.T) {
	t.Parallel()

	f, err := BuildWorkbook(sampleResult())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	// P-002 has no historical tonnage; its growth cell saturates
	growth, err := f.GetCellValue("SCG-PI", "E3")
	if err != nil {
		t.Fatalf("growth cell: %v", err)
	}
	if growth != "999.99" {
		t.Fatalf("growth saturation want=999.99 got=%q", growth)
	}
}

func TestSheetName_Sanitizes(t *testing.T) {
	t.Parallel()

	if got := sheetName("A/B:C"); got != "A-B-C" {
		t.Fatalf("sanitize want=A-B-C got=%q", got)
	}
	long := sheetName("VERY-LONG-BRAND-CODE-THAT-OVERFLOWS-THE-LIMIT")
	if len(long) != 31 {
		t.Fatalf("length cap want=31 got=%d", len(long))
	}
}
