package metrics

import "github.com/matchdaylabs/matchmetrics/internal/domain/match"

// Attacking is the offensive output profile of one team over a set of
// matches. Zero matches produces a fully zero-filled result, not an error.
type Attacking struct {
	Matches               int
	TotalGoals            int
	TotalShots            int
	TotalShotsOnTarget    int
	TotalBigChances       int
	TotalBigChancesMissed int
	TotalXG               float64

	GoalsPerGame             float64
	XGPerGame                float64
	XGOverperformance        float64
	XGOverperformancePerGame float64
	ShotsPerGame             float64
	ShotsOnTargetPerGame     float64
	BigChancesPerGame        float64
	XGOTPerGame              float64

	ShotConversionPct      float64
	ShotsOnTargetPct       float64
	BigChanceConversionPct float64
	ShotsInsideBoxPct      float64
}

// ComputeAttacking reduces one team's records to attacking metrics.
// Conversion rates divide summed numerators by summed denominators; they are
// not means of per-match percentages.
func ComputeAttacking(records []match.Record) Attacking {
	out := Attacking{Matches: len(records)}
	if len(records) == 0 {
		return out
	}

	var goals, shots, onTarget, insideBox, bigChances, bigMissed int
	var xg, xgot float64
	for _, rec := range records {
		goals += rec.GoalsScored
		shots += rec.TotalShots
		onTarget += rec.ShotsOnTarget
		insideBox += rec.ShotsInsideBox
		bigChances += rec.BigChances
		bigMissed += rec.BigChancesMissed
		xg += rec.ExpectedGoals
		xgot += rec.XGOnTarget
	}

	games := float64(len(records))
	out.TotalGoals = goals
	out.TotalShots = shots
	out.TotalShotsOnTarget = onTarget
	out.TotalBigChances = bigChances
	out.TotalBigChancesMissed = bigMissed
	out.TotalXG = round2(xg)

	out.GoalsPerGame = round2(float64(goals) / games)
	out.XGPerGame = round2(xg / games)
	out.XGOverperformance = round2(float64(goals) - xg)
	out.XGOverperformancePerGame = round2((float64(goals) - xg) / games)
	out.ShotsPerGame = round1(float64(shots) / games)
	out.ShotsOnTargetPerGame = round1(float64(onTarget) / games)
	out.BigChancesPerGame = round2(float64(bigChances) / games)
	out.XGOTPerGame = round2(xgot / games)

	out.ShotConversionPct = round1(pct(float64(goals), float64(shots)))
	out.ShotsOnTargetPct = round1(pct(float64(onTarget), float64(shots)))
	out.BigChanceConversionPct = round1(pct(float64(bigChances-bigMissed), float64(bigChances)))
	out.ShotsInsideBoxPct = round1(pct(float64(insideBox), float64(shots)))

	return out
}
