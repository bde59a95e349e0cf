package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bandhitl/prod-plan/internal/narrative"
)

// NarrativeResponse wraps the analysis with its provenance. Source is
// "ai" when the model response was used, "fallback" otherwise.
type NarrativeResponse struct {
	Source   string              `json:"source"`
	Reason   string              `json:"reason,omitempty"`
	Analysis *narrative.Analysis `json:"analysis"`
}

// GenerateNarrative produces the strategic analysis for a stored run.
// Always returns 200 with a usable analysis; failures only change the
// source to the deterministic fallback.
// POST /api/runs/:id/narrative
func (h *Handler) GenerateNarrative(c *gin.Context) {
	_, result, err := h.store.GetRun(c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var analyzer *narrative.Analyzer
	provider, err := narrative.NewOpenAIProvider(h.cfg.AI)
	if err != nil {
		analyzer = narrative.NewAnalyzer(nil)
	} else {
		analyzer = narrative.NewAnalyzer(provider)
	}

	analysis, genErr := analyzer.Analyze(c.Request.Context(), result.Metrics)

	resp := NarrativeResponse{Source: "ai", Analysis: analysis}
	if genErr != nil {
		log.Warn().Err(genErr).Str("runId", c.Param("id")).Msg("narrative fell back to basic analysis")
		resp.Source = "fallback"
		resp.Reason = genErr.Error()
	}
	c.JSON(http.StatusOK, resp)
}
