package rawmatch

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	countPctPattern      = regexp.MustCompile(`(\d+)\s*\((\d+(?:\.\d+)?)%\)`)
	leadingNumberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// verboseDateLayout matches dates like "Saturday, August 12, 2023". The
// weekday is parsed but not cross-checked against the calendar date.
const verboseDateLayout = "Monday, January 2, 2006"

// ParseCountPct splits a combined cell like "408 (85%)" into the count and
// the percentage as a fraction (0.85). A bare number yields (n, 0). Empty or
// unparseable input yields (0, 0); this function never fails.
func ParseCountPct(raw string) (int, float64) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, 0
	}
	if m := countPctPattern.FindStringSubmatch(s); m != nil {
		count, _ := strconv.Atoi(m[1])
		pct, _ := strconv.ParseFloat(m[2], 64)
		return count, pct / 100
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, 0
	}
	return int(f), 0
}

// ParsePercent extracts the numeric portion of a percentage cell such as
// "55%" or "55.4 %". The value is returned on its source scale (55.0, not
// 0.55). Empty or unparseable input yields 0.
func ParsePercent(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	m := leadingNumberPattern.FindString(s)
	if m == "" {
		return 0
	}
	f, _ := strconv.ParseFloat(m, 64)
	return f
}

// ParseVerboseDate parses the provider's long date form, e.g.
// "Saturday, August 12, 2023". ok is false when the cell does not match;
// callers treat such dates as absent, never as an error.
func ParseVerboseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(verboseDateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseNumber coerces a plain numeric cell to a float. Empty cells and
// unparseable cells both coerce to 0; ok is false only for non-empty input
// that did not parse, so callers can count real degradations without
// treating absent values as bad ones.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
