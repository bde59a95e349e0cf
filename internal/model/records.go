package model

// HistoricalRecord is one normalized row of shipped tonnage from the
// historical file. Rows with non-positive tonnage or a blank brand/SKU
// never survive ingestion, so Tonnage > 0 holds for every record.
type HistoricalRecord struct {
	Brand   string  `json:"brand"`
	SkuCode string  `json:"skuCode"`
	SkuName string  `json:"skuName"`
	Tonnage float64 `json:"tonnage"`
}

// CategoryTarget is one parsed row of the target file: a free-text
// category with two forecast-period values (monthly target and
// first-week sub-target).
type CategoryTarget struct {
	Category string  `json:"category"`
	TargetA  float64 `json:"targetA"`
	TargetB  float64 `json:"targetB"`
}
