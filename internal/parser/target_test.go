package parser

import "testing"

func TestParseTargets_TokenScan(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Category", "May Target", "W1 Target"},
		{"", "(tons)", "(tons)"},
		{"SCG Pipe (MFG)", "500", "125"},
		{"MIZU Fitting (MFG)", "80.5", "20"},
		{"Total", "580.5", "145"},
	}

	targets, stats, err := ParseTargets(rows, DefaultTargetOptions())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if stats.UsedFallback {
		t.Fatalf("token scan should not fall back")
	}
	if stats.PeriodACol != 1 || stats.PeriodBCol != 2 {
		t.Fatalf("columns want=(1,2) got=(%d,%d)", stats.PeriodACol, stats.PeriodBCol)
	}
	if len(targets) != 2 {
		t.Fatalf("targets want=2 got=%d", len(targets))
	}
	got := targets["SCG Pipe (MFG)"]
	if got.TargetA != 500 || got.TargetB != 125 {
		t.Fatalf("unexpected target: %+v", got)
	}
}

func TestParseTargets_ShiftedColumns(t *testing.T) {
	t.Parallel()

	// an extra leading column shifts the period columns right; the
	// token scan must follow them
	rows := [][]string{
		{"No.", "Category", "Remark", "MAY", "W1"},
		{"", "", "", "", ""},
		{"1", "SCG Pipe (MFG)", "", "300", "75"},
	}

	targets, stats, err := ParseTargets(rows, DefaultTargetOptions())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if stats.PeriodACol != 3 || stats.PeriodBCol != 4 {
		t.Fatalf("columns want=(3,4) got=(%d,%d)", stats.PeriodACol, stats.PeriodBCol)
	}
	// category still comes from the first column
	if _, ok := targets["1"]; !ok {
		t.Fatalf("expected first-column category, got %v", targets)
	}
}

func TestParseTargets_FallbackColumns(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Category", "Month", "Week"},
		{"", "", ""},
		{"SCG Valve (MFG)", "60", "15"},
	}

	targets, stats, err := ParseTargets(rows, DefaultTargetOptions())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !stats.UsedFallback {
		t.Fatalf("expected fallback")
	}
	if stats.PeriodACol != 1 || stats.PeriodBCol != 2 {
		t.Fatalf("fallback columns want=(1,2) got=(%d,%d)", stats.PeriodACol, stats.PeriodBCol)
	}
	got := targets["SCG Valve (MFG)"]
	if got.TargetA != 60 || got.TargetB != 15 {
		t.Fatalf("unexpected target: %+v", got)
	}
}

func TestParseTargets_TotalRowStopsScan(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Category", "May", "W1"},
		{"", "", ""},
		{"SCG Pipe (MFG)", "100", "25"},
		{"Grand Total", "100", "25"},
		{"After Total (MFG)", "999", "999"},
	}

	targets, _, err := ParseTargets(rows, DefaultTargetOptions())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(targets) != 1 {
		t.Fatalf("scan should stop at total row, got %v", targets)
	}
}

func TestParseTargets_DuplicateCategoryOverwrites(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Category", "May", "W1"},
		{"", "", ""},
		{"SCG Pipe (MFG)", "100", "25"},
		{"SCG Pipe (MFG)", "200", "50"},
	}

	targets, stats, err := ParseTargets(rows, DefaultTargetOptions())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := targets["SCG Pipe (MFG)"]; got.TargetA != 200 {
		t.Fatalf("duplicate should overwrite: %+v", got)
	}
	if stats.RowsKept != 2 {
		t.Fatalf("both rows count as kept, got %d", stats.RowsKept)
	}
}

func TestParseTargets_InsufficientData(t *testing.T) {
	t.Parallel()

	_, _, err := ParseTargets([][]string{{"a"}, {"b"}}, DefaultTargetOptions())
	if !IsKind(err, InsufficientData) {
		t.Fatalf("want InsufficientData got %v", err)
	}
}

func TestParseTargets_NoCategories(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Category", "May", "W1"},
		{"", "", ""},
		{"", "100", "25"},
		{"", "50", "10"},
	}

	_, _, err := ParseTargets(rows, DefaultTargetOptions())
	if !IsKind(err, NoCategories) {
		t.Fatalf("want NoCategories got %v", err)
	}
}
