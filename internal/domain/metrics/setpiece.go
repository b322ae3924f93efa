package metrics

import "github.com/matchdaylabs/matchmetrics/internal/domain/match"

// SetPiece splits a team's chance creation between set plays and open play.
// Matches is 0 when no records were supplied; callers render that as an
// empty breakdown.
type SetPiece struct {
	Matches           int
	SetPieceXG        float64
	OpenPlayXG        float64
	SetPieceXGPct     float64
	OpenPlayXGPct     float64
	SetPieceXGPerGame float64
	OpenPlayXGPerGame float64
	TotalCorners      int
	CornersPerGame    float64
	XGPerCorner       float64
}

func ComputeSetPiece(records []match.Record) SetPiece {
	out := SetPiece{Matches: len(records)}
	if len(records) == 0 {
		return out
	}

	var setXG, openXG, totalXG float64
	var corners int
	for _, rec := range records {
		setXG += rec.XGSetPlay
		openXG += rec.XGOpenPlay
		totalXG += rec.ExpectedGoals
		corners += rec.Corners
	}

	games := float64(len(records))
	out.SetPieceXG = round2(setXG)
	out.OpenPlayXG = round2(openXG)
	out.SetPieceXGPct = round1(pct(setXG, totalXG))
	out.OpenPlayXGPct = round1(pct(openXG, totalXG))
	out.SetPieceXGPerGame = round2(setXG / games)
	out.OpenPlayXGPerGame = round2(openXG / games)
	out.TotalCorners = corners
	out.CornersPerGame = round1(float64(corners) / games)
	out.XGPerCorner = round3(safeDiv(setXG, float64(corners)))

	return out
}
