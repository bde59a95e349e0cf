package model

// Risk categories derived from the growth ratio.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// ProductionMetric is the derived feasibility snapshot for one brand.
// Pure function of the brand's target, historical tonnage and SKU count;
// recomputed on demand, never persisted on its own.
type ProductionMetric struct {
	Brand               string  `json:"brand"`
	MayTarget           float64 `json:"mayTarget"`
	W1Target            float64 `json:"w1Target"`
	HistoricalTonnage   float64 `json:"historicalTonnage"`
	SkuCount            int     `json:"skuCount"`
	GrowthRatio         float64 `json:"growthRatio"`
	CapacityUtilization float64 `json:"capacityUtilization"`
	SetupComplexity     float64 `json:"setupComplexity"`
	RiskCategory        string  `json:"riskCategory"`
	RiskScore           float64 `json:"riskScore"`
	LaborHours          float64 `json:"laborHours"`
	MachineHours        float64 `json:"machineHours"`
	OperatorsNeeded     float64 `json:"operatorsNeeded"`
	LeadTimeDays        float64 `json:"leadTimeDays"`
	MaterialCost        float64 `json:"materialCost"`
	LaborCost           float64 `json:"laborCost"`
	OverheadCost        float64 `json:"overheadCost"`
	TotalCost           float64 `json:"totalCost"`
	CostPerTon          float64 `json:"costPerTon"`
	MarketShare         float64 `json:"marketShare"`
}
