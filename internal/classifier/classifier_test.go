package classifier

import "testing"

func TestClassify_Rules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		category string
		brand    string
		ok       bool
	}{
		{"SCG Pipe (MFG)", BrandSCGPipe, true},
		{"SCG Conduit (MFG)", BrandSCGPipe, true},
		{"SCG Fitting (MFG)", BrandSCGFitting, true},
		{"SCG Ball Valve (MFG)", BrandSCGValve, true},
		{"SCG Other (MFG)", BrandSCGPipe, true},
		{"MIZU Pipe (MFG)", BrandMizuPipe, true},
		{"MIZU (MFG)", BrandMizuPipe, true},
		{"MIZU Fitting (MFG)", BrandMizuFitting, true},
		{"ICON Pipe (MFG)", BrandIconPipe, true},
		{"MICON (MFG)", BrandIconPipe, true},
		{"Generic Pipe (MFG)", BrandSCGPipe, true},
		{"Generic Fitting (MFG)", BrandSCGFitting, true},
		{"Generic Valve (MFG)", BrandSCGValve, true},
		{"scg pipe (mfg)", BrandSCGPipe, true},

		// trading categories carry no production volume
		{"SCG Pipe (Trading)", "", false},
		{"Imported Valve", "", false},
	}

	for _, tc := range cases {
		brand, ok := Classify(tc.category)
		if ok != tc.ok || brand != tc.brand {
			t.Fatalf("%q: want=(%q,%v) got=(%q,%v)", tc.category, tc.brand, tc.ok, brand, ok)
		}
	}
}

func TestClassify_DerivedFallbackBucket(t *testing.T) {
	t.Parallel()

	brand, ok := Classify("Steel Bracket (MFG)")
	if !ok {
		t.Fatalf("manufacturing category must classify")
	}
	if brand != "STEEL-BRACKET-MFG" {
		t.Fatalf("derived code want=STEEL-BRACKET-MFG got=%q", brand)
	}
}

func TestClassify_RuleOrder(t *testing.T) {
	t.Parallel()

	// scg wins over the generic product-word rules
	brand, ok := Classify("SCG Fitting Pipe (MFG)")
	if !ok || brand != BrandSCGPipe {
		t.Fatalf("pipe beats fitting inside the scg bucket: got=(%q,%v)", brand, ok)
	}

	// mizu wins over a later icon mention
	brand, ok = Classify("MIZU x ICON collab (MFG)")
	if !ok || brand != BrandMizuPipe {
		t.Fatalf("mizu beats icon: got=(%q,%v)", brand, ok)
	}
}
