// Package calculator derives per-brand production feasibility metrics
// from aggregated targets and SKU distributions. Everything here is a
// pure function of its inputs and the named planning constants.
package calculator

import (
	"fmt"
	"math"
	"sort"

	"github.com/bandhitl/prod-plan/internal/config"
	"github.com/bandhitl/prod-plan/internal/model"
)

// Calculator computes production metrics with a fixed set of planning
// constants.
type Calculator struct {
	planning config.PlanningConfig
}

// New creates a calculator.
func New(planning config.PlanningConfig) *Calculator {
	return &Calculator{planning: planning}
}

// ComputeMetrics derives a ProductionMetric for every brand target.
// A brand whose computation fails is skipped with a warning; the other
// brands still compute. Results are sorted by brand code.
func (c *Calculator) ComputeMetrics(brandTargets map[string]*model.BrandTarget, predictions map[string]*model.Prediction) ([]model.ProductionMetric, []model.Warning) {
	brands := make([]string, 0, len(brandTargets))
	totalMay := 0.0
	for brand, bt := range brandTargets {
		brands = append(brands, brand)
		totalMay += bt.MayTarget
	}
	sort.Strings(brands)

	metrics := make([]model.ProductionMetric, 0, len(brands))
	warnings := []model.Warning{}

	for _, brand := range brands {
		bt := brandTargets[brand]
		if bt == nil {
			warnings = append(warnings, model.Warning{
				Code:    model.WarnMetricsSkipped,
				Brand:   brand,
				Message: fmt.Sprintf("metrics skipped for brand %s: missing target data", brand),
			})
			continue
		}

		skuCount := 0
		if pred := predictions[brand]; pred != nil {
			skuCount = len(pred.MayDistribution)
		}

		metrics = append(metrics, c.compute(bt, skuCount, totalMay))
	}

	return metrics, warnings
}

// compute derives the metric set for one brand.
func (c *Calculator) compute(bt *model.BrandTarget, skuCount int, totalMay float64) model.ProductionMetric {
	p := c.planning

	growth := p.GrowthSentinel
	if bt.HistoricalTonnage > 0 {
		growth = bt.MayTarget / bt.HistoricalTonnage
	}

	capacity := 0.0
	if bt.MayTarget > 0 {
		capacity = math.Min(bt.MayTarget/p.CapacityPerBrand*100, 100)
	}

	complexity := clamp(2+float64(skuCount)/10+growth/2, 0, 10)

	laborHours := bt.MayTarget * p.LaborHoursPerTon
	machineHours := bt.MayTarget * p.MachineHoursPerTon
	operators := math.Max(2, laborHours/p.OperatorHoursPerMonth)

	leadTime := p.BaseLeadTimeDays * (1 + complexity/10 + math.Min(bt.MayTarget/500, 2))

	riskCategory, riskScore := c.assessRisk(growth)

	materialCost := bt.MayTarget * p.MaterialCostPerTon
	laborCost := laborHours * p.LaborCostPerHour
	overheadCost := bt.MayTarget * (p.OverheadBasePerTon + complexity*p.OverheadPerComplexity)
	totalCost := materialCost + laborCost + overheadCost

	costPerTon := 0.0
	if bt.MayTarget > 0 {
		costPerTon = totalCost / bt.MayTarget
	}

	marketShare := 0.0
	if totalMay > 0 {
		marketShare = bt.MayTarget / totalMay * 100
	}

	return model.ProductionMetric{
		Brand:               bt.Brand,
		MayTarget:           bt.MayTarget,
		W1Target:            bt.W1Target,
		HistoricalTonnage:   bt.HistoricalTonnage,
		SkuCount:            skuCount,
		GrowthRatio:         growth,
		CapacityUtilization: capacity,
		SetupComplexity:     complexity,
		RiskCategory:        riskCategory,
		RiskScore:           riskScore,
		LaborHours:          laborHours,
		MachineHours:        machineHours,
		OperatorsNeeded:     operators,
		LeadTimeDays:        leadTime,
		MaterialCost:        materialCost,
		LaborCost:           laborCost,
		OverheadCost:        overheadCost,
		TotalCost:           totalCost,
		CostPerTon:          costPerTon,
		MarketShare:         marketShare,
	}
}

// assessRisk classifies the growth ratio against the planning
// thresholds and scores it on a 1-10 scale.
func (c *Calculator) assessRisk(growth float64) (string, float64) {
	switch {
	case growth > c.planning.RiskHighThreshold:
		return model.RiskHigh, math.Min(8+(growth-c.planning.RiskHighThreshold), 10)
	case growth > c.planning.RiskMediumThreshold:
		return model.RiskMedium, 4 + (growth-c.planning.RiskMediumThreshold)*2
	default:
		return model.RiskLow, math.Max(1, growth)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
