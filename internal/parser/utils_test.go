package parser

import "testing"

func TestParseNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"120.5", 120.5, true},
		{"1,234.5", 1234.5, true},
		{" 42 ", 42, true},
		{"", 0, false},
		{"abc", 0, false},
		{"nan", 0, false},
	}

	for _, tc := range cases {
		got, ok := parseNumber(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("%q: want=(%v,%v) got=(%v,%v)", tc.in, tc.want, tc.ok, got, ok)
		}
	}
}

func TestNormalizeCell(t *testing.T) {
	t.Parallel()

	if got := normalizeCell("  SCG-PI  "); got != "SCG-PI" {
		t.Fatalf("trim: %q", got)
	}
	if got := normalizeCell("NaN"); got != "" {
		t.Fatalf("excel nan must normalize to empty, got %q", got)
	}
	if got := normalizeCell("nan"); got != "" {
		t.Fatalf("excel nan must normalize to empty, got %q", got)
	}
}

func TestGetCell_OutOfRange(t *testing.T) {
	t.Parallel()

	row := []string{"a", "b"}
	if got := getCell(row, 5); got != "" {
		t.Fatalf("out of range cell must be empty, got %q", got)
	}
}
