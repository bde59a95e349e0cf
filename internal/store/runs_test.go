package store

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/bandhitl/prod-plan/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		BrandTargets: map[string]*model.BrandTarget{
			"SCG-PI": {Brand: "SCG-PI", MayTarget: 200, HistoricalTonnage: 100},
		},
		Warnings: []model.Warning{
			{Code: model.WarnNoHistoricalBasis, Brand: "NEW-BRD", Message: "no history"},
		},
	}
}

func TestRuns_SaveGetRoundtrip(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	id, err := s.SaveRun("hist.xlsx", "targets.xlsx", sampleResult())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id == "" {
		t.Fatalf("empty run id")
	}

	run, result, err := s.GetRun(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if run.HistoricalFile != "hist.xlsx" || run.BrandCount != 1 || run.WarningCount != 1 {
		t.Fatalf("unexpected run meta: %+v", run)
	}
	if result.BrandTargets["SCG-PI"].MayTarget != 200 {
		t.Fatalf("result did not roundtrip: %+v", result.BrandTargets)
	}
}

func TestRuns_GetUnknown(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	_, _, err := s.GetRun("no-such-run")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("want sql.ErrNoRows got %v", err)
	}
}

func TestRuns_ListAndDelete(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	first, err := s.SaveRun("a.xlsx", "b.xlsx", sampleResult())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := s.SaveRun("c.xlsx", "d.xlsx", sampleResult()); err != nil {
		t.Fatalf("save: %v", err)
	}

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs want=2 got=%d", len(runs))
	}

	count, err := s.CountRuns()
	if err != nil || count != 2 {
		t.Fatalf("count want=2 got=%d err=%v", count, err)
	}

	if err := s.DeleteRun(first); err != nil {
		t.Fatalf("delete: %v", err)
	}
	count, _ = s.CountRuns()
	if count != 1 {
		t.Fatalf("count after delete want=1 got=%d", count)
	}
}

func TestConfig_Overrides(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	if err := s.SetConfigFloat("capacity_per_brand", 1200); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := s.GetConfigFloat("capacity_per_brand")
	if err != nil || got != 1200 {
		t.Fatalf("get want=1200 got=%v err=%v", got, err)
	}

	// upsert
	if err := s.SetConfigFloat("capacity_per_brand", 900); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, _ = s.GetConfigFloat("capacity_per_brand")
	if got != 900 {
		t.Fatalf("upsert want=900 got=%v", got)
	}

	all, err := s.GetAllConfig()
	if err != nil || len(all) != 1 {
		t.Fatalf("all config: %v err=%v", all, err)
	}
}
