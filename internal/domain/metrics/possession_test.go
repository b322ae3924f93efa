package metrics

import (
	"testing"

	"github.com/matchdaylabs/matchmetrics/internal/domain/match"
)

func TestComputePossession(t *testing.T) {
	t.Parallel()

	r1 := withPossession(testRecord(1, 3, 2, 0), 58)
	r1.Passes = 520
	r1.OppositionHalfPasses = 280
	r1.OwnHalfPasses = 240
	r1.TouchesInBox = 24
	r1.Corners = 7
	r1.SuccessfulDribblesCount = 9
	r1.AccuratePassesPct = 0.88
	r1.AccurateLongBallsPct = 0.55
	r1.AccurateCrossesPct = 0.3

	r2 := withPossession(testRecord(2, 0, 0, 1), 46)
	r2.Passes = 380
	r2.OppositionHalfPasses = 150
	r2.OwnHalfPasses = 230
	r2.TouchesInBox = 12
	r2.Corners = 3
	r2.SuccessfulDribblesCount = 5
	r2.AccuratePassesPct = 0.8
	r2.AccurateLongBallsPct = 0.45
	r2.AccurateCrossesPct = 0.2

	got := ComputePossession([]match.Record{r1, r2})

	if got.AvgPossessionPct != 52.0 {
		t.Fatalf("unexpected avg possession: got=%v want=52.0", got.AvgPossessionPct)
	}
	if got.TotalPasses != 900 || got.PassesPerGame != 450 {
		t.Fatalf("unexpected passes: total=%d perGame=%v", got.TotalPasses, got.PassesPerGame)
	}
	if got.PassAccuracyPct != 84.0 {
		t.Fatalf("unexpected pass accuracy: got=%v want=84.0", got.PassAccuracyPct)
	}
	if got.OppositionHalfPerGame != 215 || got.OwnHalfPerGame != 235 {
		t.Fatalf("unexpected half splits: opp=%v own=%v", got.OppositionHalfPerGame, got.OwnHalfPerGame)
	}
	if got.LongBallAccuracyPct != 50.0 || got.CrossAccuracyPct != 25.0 {
		t.Fatalf("unexpected accuracy: long=%v cross=%v", got.LongBallAccuracyPct, got.CrossAccuracyPct)
	}
	if got.TouchesInBoxPerGame != 18.0 || got.CornersPerGame != 5.0 || got.DribblesPerGame != 7.0 {
		t.Fatalf("unexpected per-game: touches=%v corners=%v dribbles=%v", got.TouchesInBoxPerGame, got.CornersPerGame, got.DribblesPerGame)
	}
}
