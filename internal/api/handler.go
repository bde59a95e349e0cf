// Package api exposes the analysis pipeline over HTTP.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bandhitl/prod-plan/internal/config"
	"github.com/bandhitl/prod-plan/internal/parser"
	"github.com/bandhitl/prod-plan/internal/planner"
	"github.com/bandhitl/prod-plan/internal/store"
)

// Handler carries the dependencies shared by all routes.
type Handler struct {
	store *store.Store
	cfg   *config.AppConfig
}

// NewHandler creates the API handler.
func NewHandler(st *store.Store, cfg *config.AppConfig) *Handler {
	return &Handler{
		store: st,
		cfg:   cfg,
	}
}

// RegisterRoutes registers all API routes on the group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)

	router.POST("/analyze", h.Analyze)

	router.GET("/runs", h.ListRuns)
	router.GET("/runs/:id", h.GetRun)
	router.DELETE("/runs/:id", h.DeleteRun)
	router.GET("/runs/:id/export", h.ExportRun)
	router.POST("/runs/:id/narrative", h.GenerateNarrative)
}

// errorStatus maps pipeline errors to an HTTP status. Structural parse
// failures are the client's data problem, not the server's.
func errorStatus(err error) int {
	var pe *parser.Error
	if errors.As(err, &pe) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, planner.ErrNoBrandsProduced) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// errorBody builds a JSON error payload, attaching the parse-error
// kind when one is available.
func errorBody(err error) gin.H {
	body := gin.H{"error": err.Error()}
	var pe *parser.Error
	if errors.As(err, &pe) {
		body["kind"] = string(pe.Kind)
		if len(pe.Columns) > 0 {
			body["columns"] = pe.Columns
		}
	}
	return body
}
