package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bandhitl/prod-plan/internal/config"
)

// ConfigResponse is the effective planning configuration: file/coded
// defaults with stored overrides applied, plus the raw override set.
type ConfigResponse struct {
	Planning  map[string]float64 `json:"planning"`
	Overrides map[string]string  `json:"overrides"`
}

// UpdateConfigRequest carries partial planning-constant updates, keyed
// by the same names used in config.toml.
type UpdateConfigRequest struct {
	Updates map[string]float64 `json:"updates"`
}

// setPlanningValue writes one constant by its config key. Returns
// false for unknown keys.
func setPlanningValue(p *config.PlanningConfig, key string, value float64) bool {
	switch key {
	case "min_sku_share":
		p.MinSkuShare = value
	case "capacity_per_brand":
		p.CapacityPerBrand = value
	case "labor_hours_per_ton":
		p.LaborHoursPerTon = value
	case "machine_hours_per_ton":
		p.MachineHoursPerTon = value
	case "operator_hours_per_month":
		p.OperatorHoursPerMonth = value
	case "base_lead_time_days":
		p.BaseLeadTimeDays = value
	case "material_cost_per_ton":
		p.MaterialCostPerTon = value
	case "labor_cost_per_hour":
		p.LaborCostPerHour = value
	case "overhead_base_per_ton":
		p.OverheadBasePerTon = value
	case "overhead_per_complexity":
		p.OverheadPerComplexity = value
	case "growth_sentinel":
		p.GrowthSentinel = value
	case "risk_high_threshold":
		p.RiskHighThreshold = value
	case "risk_medium_threshold":
		p.RiskMediumThreshold = value
	default:
		return false
	}
	return true
}

func planningValues(p config.PlanningConfig) map[string]float64 {
	return map[string]float64{
		"min_sku_share":            p.MinSkuShare,
		"capacity_per_brand":       p.CapacityPerBrand,
		"labor_hours_per_ton":      p.LaborHoursPerTon,
		"machine_hours_per_ton":    p.MachineHoursPerTon,
		"operator_hours_per_month": p.OperatorHoursPerMonth,
		"base_lead_time_days":      p.BaseLeadTimeDays,
		"material_cost_per_ton":    p.MaterialCostPerTon,
		"labor_cost_per_hour":      p.LaborCostPerHour,
		"overhead_base_per_ton":    p.OverheadBasePerTon,
		"overhead_per_complexity":  p.OverheadPerComplexity,
		"growth_sentinel":          p.GrowthSentinel,
		"risk_high_threshold":      p.RiskHighThreshold,
		"risk_medium_threshold":    p.RiskMediumThreshold,
	}
}

// effectiveConfig overlays the stored overrides onto the loaded
// configuration. Unparseable or unknown stored keys are ignored.
func (h *Handler) effectiveConfig() *config.AppConfig {
	cfg := *h.cfg

	overrides, err := h.store.GetAllConfig()
	if err != nil {
		return &cfg
	}
	for key, value := range overrides {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			continue
		}
		setPlanningValue(&cfg.Planning, key, f)
	}
	return &cfg
}

// GetConfig returns the effective planning constants.
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	overrides, err := h.store.GetAllConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ConfigResponse{
		Planning:  planningValues(h.effectiveConfig().Planning),
		Overrides: overrides,
	})
}

// UpdateConfig stores planning-constant overrides. Unknown keys are
// rejected so a typo cannot silently change nothing.
// PATCH /api/config
func (h *Handler) UpdateConfig(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var scratch config.PlanningConfig
	for key := range req.Updates {
		if !setPlanningValue(&scratch, key, 0) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown planning constant: " + key})
			return
		}
	}

	for key, value := range req.Updates {
		if err := h.store.SetConfigFloat(key, value); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store " + key})
			return
		}
	}

	overrides, _ := h.store.GetAllConfig()
	c.JSON(http.StatusOK, ConfigResponse{
		Planning:  planningValues(h.effectiveConfig().Planning),
		Overrides: overrides,
	})
}
