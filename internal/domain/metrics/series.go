package metrics

import "github.com/matchdaylabs/matchmetrics/internal/domain/match"

// SeriesPoint is one round's value in a per-round series.
type SeriesPoint struct {
	Round int
	Value float64
}

// RollingPoint carries the rolling means for one round.
type RollingPoint struct {
	Round int
	XG    float64
	Goals float64
}

// CumulativePoints returns the running points total per round, in canonical
// order.
func CumulativePoints(records []match.Record) []SeriesPoint {
	if len(records) == 0 {
		return nil
	}
	out := make([]SeriesPoint, 0, len(records))
	total := 0
	for _, rec := range records {
		total += rec.Points
		out = append(out, SeriesPoint{Round: rec.Round, Value: float64(total)})
	}
	return out
}

// RollingXGGoals returns trailing-window means of xG and goals per round.
// Before the window fills, the mean covers however many matches exist, so
// the series starts at round one instead of waiting for `window` matches.
func RollingXGGoals(records []match.Record, window int) []RollingPoint {
	if len(records) == 0 || window <= 0 {
		return nil
	}
	out := make([]RollingPoint, 0, len(records))
	for i, rec := range records {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		var xg, goals float64
		for _, prev := range records[start : i+1] {
			xg += prev.ExpectedGoals
			goals += float64(prev.GoalsScored)
		}
		n := float64(i + 1 - start)
		out = append(out, RollingPoint{
			Round: rec.Round,
			XG:    xg / n,
			Goals: goals / n,
		})
	}
	return out
}
