package planner

import (
	"fmt"
	"sort"

	"github.com/bandhitl/prod-plan/internal/model"
)

// Distribute allocates each brand's period targets down to its SKUs in
// proportion to historical mix. SKUs whose share falls below minShare
// are dropped from both periods; a brand with no historical SKUs at all
// produces a warning instead of a Prediction, and the remaining brands
// are unaffected.
func Distribute(brandTargets map[string]*model.BrandTarget, shares map[string]map[string]model.SkuShare, minShare float64) (map[string]*model.Prediction, []model.Warning) {
	predictions := make(map[string]*model.Prediction)
	warnings := []model.Warning{}

	brands := make([]string, 0, len(brandTargets))
	for brand := range brandTargets {
		brands = append(brands, brand)
	}
	sort.Strings(brands)

	for _, brand := range brands {
		bt := brandTargets[brand]
		brandShares := shares[brand]
		if len(brandShares) == 0 {
			warnings = append(warnings, model.Warning{
				Code:    model.WarnNoHistoricalBasis,
				Brand:   brand,
				Message: fmt.Sprintf("brand %s has a target but no historical SKU data; no SKU-level breakdown", brand),
			})
			continue
		}

		pred := &model.Prediction{
			Brand:           brand,
			Target:          *bt,
			MayDistribution: make(map[string]model.SkuAllocation),
			W1Distribution:  make(map[string]model.SkuAllocation),
		}

		for code, share := range brandShares {
			if share.Percentage < minShare {
				continue
			}
			pred.MayDistribution[code] = model.SkuAllocation{
				PredictedTonnage:  bt.MayTarget * share.Percentage,
				Percentage:        share.Percentage,
				SkuName:           share.SkuName,
				HistoricalTonnage: share.HistoricalTonnage,
			}
			pred.W1Distribution[code] = model.SkuAllocation{
				PredictedTonnage:  bt.W1Target * share.Percentage,
				Percentage:        share.Percentage,
				SkuName:           share.SkuName,
				HistoricalTonnage: share.HistoricalTonnage,
			}
		}

		predictions[brand] = pred
	}

	return predictions, warnings
}
