package metrics

import "github.com/matchdaylabs/matchmetrics/internal/domain/match"

// Possession is the ball-retention and distribution profile of one team.
// Accuracy percentages average each match's own accuracy figure, matching
// how the source reports them.
type Possession struct {
	Matches          int
	AvgPossessionPct float64
	TotalPasses      int
	PassesPerGame    float64
	PassAccuracyPct  float64

	OppositionHalfPerGame float64
	OwnHalfPerGame        float64
	LongBallAccuracyPct   float64
	CrossAccuracyPct      float64
	TouchesInBoxPerGame   float64
	CornersPerGame        float64
	DribblesPerGame       float64
}

func ComputePossession(records []match.Record) Possession {
	out := Possession{Matches: len(records)}
	if len(records) == 0 {
		return out
	}

	var passes, oppHalf, ownHalf, touches, corners, dribbles int
	var possessionSum, passPctSum, longBallPctSum, crossPctSum float64
	for _, rec := range records {
		passes += rec.Passes
		oppHalf += rec.OppositionHalfPasses
		ownHalf += rec.OwnHalfPasses
		touches += rec.TouchesInBox
		corners += rec.Corners
		dribbles += rec.SuccessfulDribblesCount
		possessionSum += rec.PossessionPct
		passPctSum += rec.AccuratePassesPct
		longBallPctSum += rec.AccurateLongBallsPct
		crossPctSum += rec.AccurateCrossesPct
	}

	games := float64(len(records))
	out.AvgPossessionPct = round1(possessionSum / games)
	out.TotalPasses = passes
	out.PassesPerGame = round0(float64(passes) / games)
	out.PassAccuracyPct = round1(passPctSum / games * 100)

	out.OppositionHalfPerGame = round0(float64(oppHalf) / games)
	out.OwnHalfPerGame = round0(float64(ownHalf) / games)
	out.LongBallAccuracyPct = round1(longBallPctSum / games * 100)
	out.CrossAccuracyPct = round1(crossPctSum / games * 100)
	out.TouchesInBoxPerGame = round1(float64(touches) / games)
	out.CornersPerGame = round1(float64(corners) / games)
	out.DribblesPerGame = round1(float64(dribbles) / games)

	return out
}
