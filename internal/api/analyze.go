package api

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bandhitl/prod-plan/internal/calculator"
	"github.com/bandhitl/prod-plan/internal/model"
	"github.com/bandhitl/prod-plan/internal/parser"
	"github.com/bandhitl/prod-plan/internal/planner"
)

// AnalyzeResponse is the envelope returned by a successful analysis.
type AnalyzeResponse struct {
	RunID      string                      `json:"runId"`
	Result     *model.AnalysisResult       `json:"result"`
	Indicators []calculator.IndicatorGroup `json:"indicators"`
}

// Analyze runs the full pipeline over two uploaded workbooks.
// POST /api/analyze  (multipart fields: historical, targets)
func (h *Handler) Analyze(c *gin.Context) {
	historicalFile, err := c.FormFile("historical")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing upload field: historical"})
		return
	}
	targetFile, err := c.FormFile("targets")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing upload field: targets"})
		return
	}

	historicalRows, err := loadRows(historicalFile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read historical workbook: " + err.Error()})
		return
	}
	targetRows, err := loadRows(targetFile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read target workbook: " + err.Error()})
		return
	}

	result, err := planner.Run(historicalRows, targetRows, h.effectiveConfig())
	if err != nil {
		log.Warn().Err(err).
			Str("historical", historicalFile.Filename).
			Str("targets", targetFile.Filename).
			Msg("analysis failed")
		c.JSON(errorStatus(err), errorBody(err))
		return
	}

	runID, err := h.store.SaveRun(historicalFile.Filename, targetFile.Filename, result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist run: " + err.Error()})
		return
	}

	log.Info().
		Str("runId", runID).
		Int("brands", len(result.BrandTargets)).
		Int("warnings", len(result.Warnings)).
		Msg("analysis completed")

	c.JSON(http.StatusOK, AnalyzeResponse{
		RunID:      runID,
		Result:     result,
		Indicators: calculator.Summarize(result.Metrics),
	})
}

// loadRows opens an uploaded workbook and extracts the first sheet.
func loadRows(fh *multipart.FileHeader) ([][]string, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parser.LoadSheetRows(f, "")
}
