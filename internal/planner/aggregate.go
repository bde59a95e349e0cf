package planner

import (
	"errors"
	"sort"

	"github.com/bandhitl/prod-plan/internal/classifier"
	"github.com/bandhitl/prod-plan/internal/model"
)

// ErrNoBrandsProduced means both inputs parsed cleanly but the target
// file contained no manufacturing categories, so there is nothing to
// plan. Surfaced distinctly from parse errors.
var ErrNoBrandsProduced = errors.New("no brand targets produced from target categories")

// AggregateHistorical summarizes shipment records into per-brand totals
// and each SKU's share of its brand. Duplicate rows for the same
// (brand, SKU) are summed before shares are computed, so repeated
// source rows cannot inflate a SKU's percentage.
func AggregateHistorical(records []model.HistoricalRecord) (map[string]float64, map[string]map[string]model.SkuShare) {
	type skuKey struct {
		brand, code string
	}
	skuTonnage := make(map[skuKey]float64)
	skuNames := make(map[skuKey]string)
	brandTotals := make(map[string]float64)

	for _, r := range records {
		k := skuKey{r.Brand, r.SkuCode}
		skuTonnage[k] += r.Tonnage
		if skuNames[k] == "" {
			skuNames[k] = r.SkuName
		}
		brandTotals[r.Brand] += r.Tonnage
	}

	shares := make(map[string]map[string]model.SkuShare)
	for k, tonnage := range skuTonnage {
		total := brandTotals[k.brand]
		if total <= 0 {
			// cannot happen while ingestion enforces positive tonnage,
			// but never divide by zero
			continue
		}
		if shares[k.brand] == nil {
			shares[k.brand] = make(map[string]model.SkuShare)
		}
		shares[k.brand][k.code] = model.SkuShare{
			SkuName:           skuNames[k],
			Percentage:        tonnage / total,
			HistoricalTonnage: tonnage,
		}
	}

	return brandTotals, shares
}

// AggregateTargets classifies every category and accumulates its two
// period targets onto the owning brand. Trading categories are skipped.
// Each brand carries its historical total (0 when the brand never
// shipped) for growth-ratio computation later.
func AggregateTargets(targets map[string]model.CategoryTarget, brandTotals map[string]float64) (map[string]*model.BrandTarget, error) {
	brandTargets := make(map[string]*model.BrandTarget)

	// Deterministic accumulation order: identical inputs must yield
	// bit-identical results regardless of map iteration order.
	categories := make([]string, 0, len(targets))
	for category := range targets {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		target := targets[category]
		brand, ok := classifier.Classify(category)
		if !ok {
			continue
		}

		bt := brandTargets[brand]
		if bt == nil {
			bt = &model.BrandTarget{
				Brand:             brand,
				HistoricalTonnage: brandTotals[brand],
			}
			brandTargets[brand] = bt
		}
		bt.MayTarget += target.TargetA
		bt.W1Target += target.TargetB
		bt.Categories = append(bt.Categories, category)
	}

	if len(brandTargets) == 0 {
		return nil, ErrNoBrandsProduced
	}

	return brandTargets, nil
}
