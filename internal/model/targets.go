package model

// BrandTarget accumulates target values for one canonical brand code
// across all categories mapped to it. HistoricalTonnage is 0 for a
// brand that never shipped; that is a valid, flagged state.
type BrandTarget struct {
	Brand             string   `json:"brand"`
	MayTarget         float64  `json:"mayTarget"`
	W1Target          float64  `json:"w1Target"`
	Categories        []string `json:"categories"`
	HistoricalTonnage float64  `json:"historicalTonnage"`
}

// SkuShare is one SKU's slice of its brand's historical tonnage.
// Within a brand the percentages sum to 1 (floating-point tolerance).
type SkuShare struct {
	SkuName           string  `json:"skuName"`
	Percentage        float64 `json:"percentage"`
	HistoricalTonnage float64 `json:"historicalTonnage"`
}

// SkuAllocation is one SKU's slice of a distributed brand target.
type SkuAllocation struct {
	PredictedTonnage  float64 `json:"predictedTonnage"`
	Percentage        float64 `json:"percentage"`
	SkuName           string  `json:"skuName"`
	HistoricalTonnage float64 `json:"historicalTonnage"`
}

// Prediction carries the per-SKU distribution of one brand's targets,
// computed independently for the two forecast periods.
type Prediction struct {
	Brand           string                   `json:"brand"`
	Target          BrandTarget              `json:"target"`
	MayDistribution map[string]SkuAllocation `json:"mayDistribution"`
	W1Distribution  map[string]SkuAllocation `json:"w1Distribution"`
}
