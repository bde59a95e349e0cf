package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bandhitl/prod-plan/internal/calculator"
	"github.com/bandhitl/prod-plan/internal/exporter"
)

// ListRuns returns run metadata, newest first.
// GET /api/runs?limit=N
func (h *Handler) ListRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	runs, err := h.store.ListRuns(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// GetRun returns one run with its full result and indicator summary.
// GET /api/runs/:id
func (h *Handler) GetRun(c *gin.Context) {
	run, result, err := h.store.GetRun(c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"run":        run,
		"result":     result,
		"indicators": calculator.Summarize(result.Metrics),
	})
}

// DeleteRun removes a run from history.
// DELETE /api/runs/:id
func (h *Handler) DeleteRun(c *gin.Context) {
	if err := h.store.DeleteRun(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ExportRun streams a run's result as an Excel workbook.
// GET /api/runs/:id/export
func (h *Handler) ExportRun(c *gin.Context) {
	id := c.Param("id")
	run, result, err := h.store.GetRun(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	workbook, err := exporter.BuildWorkbook(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build workbook: " + err.Error()})
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("production_plan_%s.xlsx", run.CreatedAt.Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := workbook.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
