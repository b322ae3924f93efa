package metrics

import "github.com/matchdaylabs/matchmetrics/internal/domain/match"

// PossessionEffectiveness relates how much of the ball a team has to what it
// gets out of it, split across the low/medium/high possession buckets.
type PossessionEffectiveness struct {
	Matches           int
	HighPossMatches   int
	MediumPossMatches int
	LowPossMatches    int

	HighPossPPG   float64
	MediumPossPPG float64
	LowPossPPG    float64

	HighPossWinRate   float64
	MediumPossWinRate float64
	LowPossWinRate    float64

	XGPerPossessionPct     float64
	TouchesPerXG           float64
	BetterWithPossession   bool
	PossessionDifferential float64
}

// PossessionResultsRow is one bracket of the possession-vs-results view.
type PossessionResultsRow struct {
	Bracket       string
	Matches       int
	PointsPerGame float64
	WinRatePct    float64
	GoalsPerGame  float64
}

// PossessionResultsBrackets lists the view's brackets in display order.
func PossessionResultsBrackets() []string {
	return []string{"Very Low", "Low", "Medium", "High", "Very High"}
}

func ComputePossessionEffectiveness(records []match.Record) PossessionEffectiveness {
	out := PossessionEffectiveness{Matches: len(records)}
	if len(records) == 0 {
		return out
	}

	type bucketAgg struct {
		matches int
		points  int
		wins    int
	}
	var high, medium, low bucketAgg
	var possessionSum, totalXG float64
	var touches int
	for _, rec := range records {
		agg := &medium
		switch rec.Possession {
		case match.PossessionHigh:
			agg = &high
		case match.PossessionLow:
			agg = &low
		}
		agg.matches++
		agg.points += rec.Points
		if rec.IsWin {
			agg.wins++
		}
		possessionSum += rec.PossessionPct
		totalXG += rec.ExpectedGoals
		touches += rec.TouchesInBox
	}

	out.HighPossMatches = high.matches
	out.MediumPossMatches = medium.matches
	out.LowPossMatches = low.matches

	out.HighPossPPG = round2(safeDiv(float64(high.points), float64(high.matches)))
	out.MediumPossPPG = round2(safeDiv(float64(medium.points), float64(medium.matches)))
	out.LowPossPPG = round2(safeDiv(float64(low.points), float64(low.matches)))

	out.HighPossWinRate = round1(pct(float64(high.wins), float64(high.matches)))
	out.MediumPossWinRate = round1(pct(float64(medium.wins), float64(medium.matches)))
	out.LowPossWinRate = round1(pct(float64(low.wins), float64(low.matches)))

	avgPossession := possessionSum / float64(len(records))
	out.XGPerPossessionPct = round3(safeDiv(totalXG, avgPossession*float64(len(records))))
	out.TouchesPerXG = round1(safeDiv(float64(touches), totalXG))
	out.BetterWithPossession = out.HighPossPPG > out.LowPossPPG
	out.PossessionDifferential = round2(avgPossession - 50)

	return out
}

// ComputePossessionResults groups matches into five possession brackets and
// reports results per bracket. Brackets are right-closed, mirroring the
// source binning: (0,40], (40,45], (45,55], (55,60], (60,100]. A record with
// zero possession falls outside every bracket and is skipped. Empty input
// yields nil; otherwise all five brackets appear, zero-filled when unused.
func ComputePossessionResults(records []match.Record) []PossessionResultsRow {
	if len(records) == 0 {
		return nil
	}

	type bracketAgg struct {
		matches int
		points  int
		wins    int
		goals   int
	}
	aggs := make(map[string]*bracketAgg)
	for _, name := range PossessionResultsBrackets() {
		aggs[name] = &bracketAgg{}
	}

	for _, rec := range records {
		name, ok := possessionResultsBracket(rec.PossessionPct)
		if !ok {
			continue
		}
		agg := aggs[name]
		agg.matches++
		agg.points += rec.Points
		if rec.IsWin {
			agg.wins++
		}
		agg.goals += rec.GoalsScored
	}

	rows := make([]PossessionResultsRow, 0, len(aggs))
	for _, name := range PossessionResultsBrackets() {
		agg := aggs[name]
		rows = append(rows, PossessionResultsRow{
			Bracket:       name,
			Matches:       agg.matches,
			PointsPerGame: round2(safeDiv(float64(agg.points), float64(agg.matches))),
			WinRatePct:    round1(pct(float64(agg.wins), float64(agg.matches))),
			GoalsPerGame:  round2(safeDiv(float64(agg.goals), float64(agg.matches))),
		})
	}
	return rows
}

func possessionResultsBracket(p float64) (string, bool) {
	switch {
	case p <= 0 || p > 100:
		return "", false
	case p <= 40:
		return "Very Low", true
	case p <= 45:
		return "Low", true
	case p <= 55:
		return "Medium", true
	case p <= 60:
		return "High", true
	default:
		return "Very High", true
	}
}
