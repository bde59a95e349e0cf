// Package classifier maps free-text target-file categories onto the
// closed taxonomy of canonical brand codes used for production planning.
package classifier

import (
	"strings"
)

// Canonical brand codes.
const (
	BrandSCGPipe     = "SCG-PI"
	BrandSCGFitting  = "SCG-FT"
	BrandSCGValve    = "SCG-BV"
	BrandMizuPipe    = "MIZU-PI"
	BrandMizuFitting = "MIZU-FT"
	BrandIconPipe    = "ICON-PI"
)

// mfgMarker distinguishes in-house manufacturing categories from
// trading (resale) categories, which carry no production volume.
const mfgMarker = "mfg"

// Classify maps a category string to a canonical brand code. The second
// return is false for trading categories, which are excluded from the
// analysis entirely. Rules are evaluated in order on the lower-cased
// text; the first match wins. Every manufacturing category lands in
// some bucket: unrecognized ones get a code derived from their own
// text so downstream aggregation never silently loses volume.
func Classify(category string) (string, bool) {
	text := strings.ToLower(category)

	if !strings.Contains(text, mfgMarker) {
		return "", false
	}

	switch {
	case strings.Contains(text, "scg"):
		switch {
		case strings.Contains(text, "pipe") || strings.Contains(text, "conduit"):
			return BrandSCGPipe, true
		case strings.Contains(text, "fitting"):
			return BrandSCGFitting, true
		case strings.Contains(text, "valve"):
			return BrandSCGValve, true
		default:
			return BrandSCGPipe, true
		}
	case strings.Contains(text, "mizu"):
		if strings.Contains(text, "fitting") {
			return BrandMizuFitting, true
		}
		return BrandMizuPipe, true
	case strings.Contains(text, "icon") || strings.Contains(text, "micon"):
		return BrandIconPipe, true
	case strings.Contains(text, "pipe"):
		return BrandSCGPipe, true
	case strings.Contains(text, "fitting"):
		return BrandSCGFitting, true
	case strings.Contains(text, "valve"):
		return BrandSCGValve, true
	}

	return deriveBrandCode(category), true
}

// deriveBrandCode builds a fallback bucket code from the category text:
// upper-cased, parentheses stripped, spaces collapsed to hyphens.
func deriveBrandCode(category string) string {
	s := strings.ToUpper(category)
	s = strings.ReplaceAll(s, "(", "")
	s = strings.ReplaceAll(s, ")", "")
	return strings.Join(strings.Fields(s), "-")
}
