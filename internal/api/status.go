package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// StatusResponse describes the running instance.
type StatusResponse struct {
	Version      string `json:"version"`
	RunCount     int    `json:"runCount"`
	AIConfigured bool   `json:"aiConfigured"`
	AIModel      string `json:"aiModel"`
}

// GetStatus reports version, run history size and AI availability.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	runCount, err := h.store.CountRuns()
	if err != nil {
		runCount = 0
	}

	c.JSON(http.StatusOK, StatusResponse{
		Version:      Version,
		RunCount:     runCount,
		AIConfigured: os.Getenv("OPENAI_API_KEY") != "",
		AIModel:      h.cfg.AI.Model,
	})
}
