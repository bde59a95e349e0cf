package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bandhitl/prod-plan/internal/model"
)

// Run is one persisted analysis, with the full result serialized as
// JSON in the database.
type Run struct {
	ID             string    `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	HistoricalFile string    `json:"historical_file"`
	TargetFile     string    `json:"target_file"`
	BrandCount     int       `json:"brand_count"`
	WarningCount   int       `json:"warning_count"`
}

// SaveRun stores a completed analysis and returns its generated id.
func (s *Store) SaveRun(historicalFile, targetFile string, result *model.AnalysisResult) (string, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to serialize result: %w", err)
	}

	id := uuid.New().String()
	_, err = s.db.Exec(`
		INSERT INTO runs (id, historical_file, target_file, brand_count, warning_count, result)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, historicalFile, targetFile, len(result.BrandTargets), len(result.Warnings), string(payload))
	if err != nil {
		return "", fmt.Errorf("failed to save run: %w", err)
	}
	return id, nil
}

// GetRun loads one run with its deserialized result. Returns
// sql.ErrNoRows when the id is unknown.
func (s *Store) GetRun(id string) (*Run, *model.AnalysisResult, error) {
	var (
		run     Run
		payload string
	)
	err := s.db.QueryRow(`
		SELECT id, created_at, historical_file, target_file, brand_count, warning_count, result
		FROM runs WHERE id = ?
	`, id).Scan(&run.ID, &run.CreatedAt, &run.HistoricalFile, &run.TargetFile, &run.BrandCount, &run.WarningCount, &payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("failed to load run %s: %w", id, err)
	}

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, nil, fmt.Errorf("failed to deserialize run %s: %w", id, err)
	}
	return &run, &result, nil
}

// ListRuns returns run metadata, newest first, capped at limit.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, created_at, historical_file, target_file, brand_count, warning_count
		FROM runs ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.CreatedAt, &run.HistoricalFile, &run.TargetFile, &run.BrandCount, &run.WarningCount); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// CountRuns returns the size of the run history.
func (s *Store) CountRuns() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return count, nil
}

// DeleteRun removes a run from history.
func (s *Store) DeleteRun(id string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete run %s: %w", id, err)
	}
	return nil
}
