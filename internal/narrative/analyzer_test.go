package narrative

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bandhitl/prod-plan/internal/model"
)

type stubProvider struct {
	response string
	err      error
}

func (s *stubProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return s.response, s.err
}

func sampleMetrics() []model.ProductionMetric {
	return []model.ProductionMetric{
		{Brand: "SCG-PI", MayTarget: 200, GrowthRatio: 2, TotalCost: 256000, SetupComplexity: 4, CapacityUtilization: 20, RiskCategory: model.RiskMedium},
		{Brand: "MIZU-PI", MayTarget: 40, GrowthRatio: 4, TotalCost: 50000, SetupComplexity: 3, CapacityUtilization: 4, RiskCategory: model.RiskHigh},
	}
}

func TestAnalyze_ParsesFencedResponse(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{response: "```json\n" + `{
		"executive_summary": {
			"production_feasibility": "High",
			"overall_assessment": "Looks achievable.",
			"confidence_level": "High"
		}
	}` + "\n```"}

	analysis, err := NewAnalyzer(provider).Analyze(context.Background(), sampleMetrics())
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if analysis.ExecutiveSummary.ProductionFeasibility != "High" {
		t.Fatalf("unexpected analysis: %+v", analysis.ExecutiveSummary)
	}
}

func TestAnalyze_RepairsAlmostJSON(t *testing.T) {
	t.Parallel()

	// trailing comma is invalid JSON but repairable
	provider := &stubProvider{response: `{
		"executive_summary": {
			"production_feasibility": "Medium",
			"key_success_factors": ["a", "b",],
		},
	}`}

	analysis, err := NewAnalyzer(provider).Analyze(context.Background(), sampleMetrics())
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if analysis.ExecutiveSummary.ProductionFeasibility != "Medium" {
		t.Fatalf("unexpected analysis: %+v", analysis.ExecutiveSummary)
	}
}

func TestAnalyze_ProviderErrorFallsBack(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("rate limited")
	provider := &stubProvider{err: wantErr}

	analysis, err := NewAnalyzer(provider).Analyze(context.Background(), sampleMetrics())
	if !errors.Is(err, wantErr) {
		t.Fatalf("cause must surface, got %v", err)
	}
	if analysis == nil || analysis.ExecutiveSummary.OverallAssessment == "" {
		t.Fatalf("fallback must still be usable: %+v", analysis)
	}
}

func TestAnalyze_NilProviderFallsBack(t *testing.T) {
	t.Parallel()

	analysis, err := NewAnalyzer(nil).Analyze(context.Background(), sampleMetrics())
	if !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("want ErrNoAPIKey got %v", err)
	}
	if analysis == nil {
		t.Fatalf("fallback must still be returned")
	}
}

func TestBuildPrompt_Overview(t *testing.T) {
	t.Parallel()

	prompt := BuildPrompt(sampleMetrics())

	for _, want := range []string{
		"PRODUCTION OVERVIEW:",
		"Total Production Target: 240.0 tons",
		"Number of Brands: 2",
		"High Risk Brands: 1",
		"DETAILED BRAND METRICS:",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestFallback_FeasibilityByGrowth(t *testing.T) {
	t.Parallel()

	low := Fallback([]model.ProductionMetric{{GrowthRatio: 1.5}})
	if low.ExecutiveSummary.ProductionFeasibility != "High" {
		t.Fatalf("modest growth want=High got=%q", low.ExecutiveSummary.ProductionFeasibility)
	}

	high := Fallback([]model.ProductionMetric{{GrowthRatio: 4}})
	if high.ExecutiveSummary.ProductionFeasibility != "Medium" {
		t.Fatalf("aggressive growth want=Medium got=%q", high.ExecutiveSummary.ProductionFeasibility)
	}

	if high.CostOptimization.CostBreakdownAnalysis.MaterialCostPercentage != "65%" {
		t.Fatalf("fixed breakdown: %+v", high.CostOptimization.CostBreakdownAnalysis)
	}
}
