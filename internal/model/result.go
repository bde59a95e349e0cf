package model

// Warning is a non-fatal, per-brand condition collected during a run.
type Warning struct {
	Code    string `json:"code"`
	Brand   string `json:"brand,omitempty"`
	Message string `json:"message"`
}

// Warning codes.
const (
	WarnNoHistoricalBasis = "NoHistoricalBasis"
	WarnHeaderFallback    = "TargetHeaderFallback"
	WarnMetricsSkipped    = "MetricsSkipped"
)

// AnalysisResult is the immutable envelope one pipeline run produces.
// All maps are freshly constructed per run; nothing is shared between runs.
type AnalysisResult struct {
	Historical   []HistoricalRecord             `json:"historical"`
	Targets      map[string]CategoryTarget      `json:"targets"`
	BrandTargets map[string]*BrandTarget        `json:"brandTargets"`
	SkuShares    map[string]map[string]SkuShare `json:"skuShares"`
	Predictions  map[string]*Prediction         `json:"predictions"`
	Metrics      []ProductionMetric             `json:"metrics"`
	Warnings     []Warning                      `json:"warnings"`
}
