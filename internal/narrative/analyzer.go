// Package narrative turns computed production metrics into a strategic
// analysis document, via an LLM when one is configured and via a
// deterministic fallback otherwise. The rest of the system never
// depends on the LLM being present, reachable, or well-behaved.
package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"

	"github.com/bandhitl/prod-plan/internal/model"
)

// Analysis is the structured narrative. Field names mirror the JSON
// schema the model is asked for; unknown blocks in the response are
// ignored.
type Analysis struct {
	ExecutiveSummary ExecutiveSummary `json:"executive_summary"`
	CapacityPlanning CapacityPlanning `json:"capacity_planning"`
	CostOptimization CostOptimization `json:"cost_optimization"`
}

type ExecutiveSummary struct {
	ProductionFeasibility string   `json:"production_feasibility"`
	OverallAssessment     string   `json:"overall_assessment"`
	KeySuccessFactors     []string `json:"key_success_factors"`
	CriticalChallenges    []string `json:"critical_challenges"`
	ConfidenceLevel       string   `json:"confidence_level"`
}

type CapacityPlanning struct {
	UtilizationAnalysis      string   `json:"utilization_analysis"`
	BottleneckIdentification []string `json:"bottleneck_identification"`
	CapacityRecommendations  []string `json:"capacity_recommendations"`
	ScalabilityAssessment    string   `json:"scalability_assessment"`
}

type CostOptimization struct {
	CostBreakdownAnalysis      CostBreakdown  `json:"cost_breakdown_analysis"`
	CostReductionOpportunities []string       `json:"cost_reduction_opportunities"`
	ROIProjections             ROIProjections `json:"roi_projections"`
}

type CostBreakdown struct {
	MaterialCostPercentage string `json:"material_cost_percentage"`
	LaborCostPercentage    string `json:"labor_cost_percentage"`
	OverheadPercentage     string `json:"overhead_percentage"`
}

type ROIProjections struct {
	ExpectedMargin        string `json:"expected_margin"`
	BreakEvenAnalysis     string `json:"break_even_analysis"`
	ProfitabilityTimeline string `json:"profitability_timeline"`
}

const systemPrompt = "You are a senior production planning expert with deep knowledge of " +
	"manufacturing operations, cost optimization, and strategic planning. Provide " +
	"comprehensive, actionable insights. Return only valid JSON without markdown formatting."

// promptBrandLimit caps how many brand rows go into the prompt.
const promptBrandLimit = 5

// Analyzer builds prompts from metrics and parses the responses.
type Analyzer struct {
	provider Provider
}

// NewAnalyzer creates an analyzer. provider may be nil, in which case
// Analyze always returns the fallback.
func NewAnalyzer(provider Provider) *Analyzer {
	return &Analyzer{provider: provider}
}

// Analyze requests an AI narrative for the metrics. On any failure
// (no provider, transport error, unusable JSON) it returns the
// deterministic fallback and the cause; the analysis is always usable.
func (a *Analyzer) Analyze(ctx context.Context, metrics []model.ProductionMetric) (*Analysis, error) {
	if a.provider == nil {
		return Fallback(metrics), ErrNoAPIKey
	}

	resp, err := a.provider.Generate(ctx, systemPrompt, BuildPrompt(metrics))
	if err != nil {
		return Fallback(metrics), err
	}

	analysis, err := parseAnalysis(resp)
	if err != nil {
		return Fallback(metrics), err
	}
	return analysis, nil
}

// BuildPrompt renders the portfolio overview plus the leading brand
// metric rows as the user prompt.
func BuildPrompt(metrics []model.ProductionMetric) string {
	var (
		totalTarget float64
		totalCost   float64
		sumGrowth   float64
		sumComplex  float64
		highRisk    int
	)
	for _, m := range metrics {
		totalTarget += m.MayTarget
		totalCost += m.TotalCost
		sumGrowth += m.GrowthRatio
		sumComplex += m.SetupComplexity
		if m.RiskCategory == model.RiskHigh {
			highRisk++
		}
	}
	avgGrowth, avgComplex := 0.0, 0.0
	if len(metrics) > 0 {
		avgGrowth = sumGrowth / float64(len(metrics))
		avgComplex = sumComplex / float64(len(metrics))
	}

	sample := metrics
	if len(sample) > promptBrandLimit {
		sample = sample[:promptBrandLimit]
	}
	detail, _ := json.MarshalIndent(sample, "", "  ")

	var b strings.Builder
	b.WriteString("Analyze this comprehensive production planning data and provide detailed strategic insights.\n\n")
	b.WriteString("PRODUCTION OVERVIEW:\n")
	fmt.Fprintf(&b, "- Total Production Target: %.1f tons\n", totalTarget)
	fmt.Fprintf(&b, "- Number of Brands: %d\n", len(metrics))
	fmt.Fprintf(&b, "- Average Growth Rate: %.1fx\n", avgGrowth)
	fmt.Fprintf(&b, "- High Risk Brands: %d\n", highRisk)
	fmt.Fprintf(&b, "- Total Estimated Cost: $%.0f\n", totalCost)
	fmt.Fprintf(&b, "- Average Setup Complexity: %.1f/10\n", avgComplex)
	b.WriteString("\nDETAILED BRAND METRICS:\n")
	b.Write(detail)
	b.WriteString("\n\nProvide analysis as JSON with keys executive_summary, capacity_planning " +
		"and cost_optimization, matching the schema of those blocks exactly.\n")
	return b.String()
}

// parseAnalysis decodes the model response, stripping markdown fences
// and repairing almost-JSON before giving up.
func parseAnalysis(resp string) (*Analysis, error) {
	cleaned := strings.TrimSpace(resp)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var analysis Analysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err == nil {
		return &analysis, nil
	}

	repaired, err := jsonrepair.RepairJSON(cleaned)
	if err != nil {
		return nil, fmt.Errorf("narrative response is not JSON: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), &analysis); err != nil {
		return nil, fmt.Errorf("narrative response unusable after repair: %w", err)
	}
	return &analysis, nil
}

// Fallback produces the deterministic analysis used when no AI
// narrative is available.
func Fallback(metrics []model.ProductionMetric) *Analysis {
	var (
		totalTarget float64
		sumGrowth   float64
		sumCapacity float64
		highRisk    int
	)
	for _, m := range metrics {
		totalTarget += m.MayTarget
		sumGrowth += m.GrowthRatio
		sumCapacity += m.CapacityUtilization
		if m.RiskCategory == model.RiskHigh {
			highRisk++
		}
	}
	avgGrowth, avgCapacity := 0.0, 0.0
	if len(metrics) > 0 {
		avgGrowth = sumGrowth / float64(len(metrics))
		avgCapacity = sumCapacity / float64(len(metrics))
	}

	feasibility := "High"
	if avgGrowth > 2 {
		feasibility = "Medium"
	}

	return &Analysis{
		ExecutiveSummary: ExecutiveSummary{
			ProductionFeasibility: feasibility,
			OverallAssessment: fmt.Sprintf(
				"Production target of %.0f tons across %d brands requires careful planning and resource allocation.",
				totalTarget, len(metrics)),
			KeySuccessFactors: []string{
				"Effective capacity planning and utilization",
				"Quality control for high-growth products",
				"Efficient resource allocation and scheduling",
			},
			CriticalChallenges: []string{
				fmt.Sprintf("Managing %d high-risk brands", highRisk),
				"Coordinating complex multi-brand production",
				"Maintaining quality standards during scale-up",
			},
			ConfidenceLevel: "Medium",
		},
		CapacityPlanning: CapacityPlanning{
			UtilizationAnalysis: fmt.Sprintf(
				"Average capacity utilization of %.1f%% indicates moderate to high production load",
				avgCapacity),
			BottleneckIdentification: []string{
				"Machine changeover time between SKUs",
				"Quality inspection capacity",
			},
			CapacityRecommendations: []string{
				"Optimize setup procedures",
				"Consider additional production lines",
				"Implement parallel processing",
			},
			ScalabilityAssessment: "Current capacity sufficient with optimization",
		},
		CostOptimization: CostOptimization{
			CostBreakdownAnalysis: CostBreakdown{
				MaterialCostPercentage: "65%",
				LaborCostPercentage:    "20%",
				OverheadPercentage:     "15%",
			},
			CostReductionOpportunities: []string{
				"Bulk material purchasing",
				"Setup time reduction",
				"Process automation",
			},
			ROIProjections: ROIProjections{
				ExpectedMargin:        "15-20%",
				BreakEvenAnalysis:     "Break-even expected within 6 months",
				ProfitabilityTimeline: "Full profitability by month 8",
			},
		},
	}
}
