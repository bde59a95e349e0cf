package calculator

import (
	"github.com/bandhitl/prod-plan/internal/model"
)

// Indicator is one dashboard figure.
type Indicator struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// IndicatorGroup groups related indicators for display.
type IndicatorGroup struct {
	Name       string      `json:"name"`
	Indicators []Indicator `json:"indicators"`
}

// Summarize rolls the per-brand metrics up into the portfolio-level
// dashboard groups.
func Summarize(metrics []model.ProductionMetric) []IndicatorGroup {
	var (
		totalTarget     float64
		totalCost       float64
		totalOperators  float64
		totalLaborHours float64
		totalMachine    float64
		sumGrowth       float64
		sumComplexity   float64
		sumLeadTime     float64
		highRisk        float64
	)

	for _, m := range metrics {
		totalTarget += m.MayTarget
		totalCost += m.TotalCost
		totalOperators += m.OperatorsNeeded
		totalLaborHours += m.LaborHours
		totalMachine += m.MachineHours
		sumGrowth += m.GrowthRatio
		sumComplexity += m.SetupComplexity
		sumLeadTime += m.LeadTimeDays
		if m.RiskCategory == model.RiskHigh {
			highRisk++
		}
	}

	n := float64(len(metrics))
	avg := func(sum float64) float64 {
		if n == 0 {
			return 0
		}
		return sum / n
	}

	return []IndicatorGroup{
		{
			Name: "Production Overview",
			Indicators: []Indicator{
				{ID: "total_target", Name: "Total Target", Value: totalTarget, Unit: "tons"},
				{ID: "brand_count", Name: "Brands", Value: n, Unit: ""},
				{ID: "avg_growth", Name: "Average Growth", Value: avg(sumGrowth), Unit: "x"},
				{ID: "high_risk_brands", Name: "High Risk Brands", Value: highRisk, Unit: ""},
				{ID: "avg_lead_time", Name: "Average Lead Time", Value: avg(sumLeadTime), Unit: "days"},
			},
		},
		{
			Name: "Resources",
			Indicators: []Indicator{
				{ID: "total_operators", Name: "Total Operators Needed", Value: totalOperators, Unit: ""},
				{ID: "total_labor_hours", Name: "Total Labor Hours", Value: totalLaborHours, Unit: "h"},
				{ID: "total_machine_hours", Name: "Total Machine Hours", Value: totalMachine, Unit: "h"},
				{ID: "avg_setup_complexity", Name: "Average Setup Complexity", Value: avg(sumComplexity), Unit: "/10"},
			},
		},
		{
			Name: "Cost",
			Indicators: []Indicator{
				{ID: "total_cost", Name: "Total Estimated Cost", Value: totalCost, Unit: "$"},
			},
		},
	}
}
