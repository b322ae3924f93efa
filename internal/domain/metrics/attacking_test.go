package metrics

import (
	"testing"

	"github.com/matchdaylabs/matchmetrics/internal/domain/match"
)

func TestComputeAttacking(t *testing.T) {
	t.Parallel()

	r1 := testRecord(1, 3, 2, 0)
	r1.TotalShots = 10
	r1.ShotsOnTarget = 6
	r1.ShotsInsideBox = 7
	r1.BigChances = 4
	r1.BigChancesMissed = 2
	r1.ExpectedGoals = 1.5
	r1.XGOnTarget = 1.8

	r2 := testRecord(2, 1, 1, 1)
	r2.TotalShots = 8
	r2.ShotsOnTarget = 3
	r2.ShotsInsideBox = 4
	r2.BigChances = 2
	r2.BigChancesMissed = 1
	r2.ExpectedGoals = 1.2
	r2.XGOnTarget = 0.9

	r3 := testRecord(3, 0, 0, 2)
	r3.TotalShots = 5
	r3.ShotsOnTarget = 1
	r3.ShotsInsideBox = 2
	r3.BigChances = 1
	r3.BigChancesMissed = 1
	r3.ExpectedGoals = 0.8
	r3.XGOnTarget = 0.3

	got := ComputeAttacking([]match.Record{r1, r2, r3})

	if got.Matches != 3 || got.TotalGoals != 3 || got.TotalShots != 23 {
		t.Fatalf("unexpected totals: %+v", got)
	}
	if got.GoalsPerGame != 1.0 {
		t.Fatalf("unexpected goals per game: got=%v want=1.0", got.GoalsPerGame)
	}
	if got.TotalXG != 3.5 || got.XGPerGame != 1.17 {
		t.Fatalf("unexpected xg: total=%v perGame=%v", got.TotalXG, got.XGPerGame)
	}
	if got.XGOverperformance != -0.5 {
		t.Fatalf("unexpected overperformance: got=%v want=-0.5", got.XGOverperformance)
	}
	if got.ShotConversionPct != 13.0 {
		t.Fatalf("unexpected shot conversion: got=%v want=13.0", got.ShotConversionPct)
	}
	if got.ShotsOnTargetPct != 43.5 {
		t.Fatalf("unexpected on-target pct: got=%v want=43.5", got.ShotsOnTargetPct)
	}
	if got.BigChanceConversionPct != 42.9 {
		t.Fatalf("unexpected big chance conversion: got=%v want=42.9", got.BigChanceConversionPct)
	}
	if got.XGOTPerGame != 1.0 {
		t.Fatalf("unexpected xgot per game: got=%v want=1.0", got.XGOTPerGame)
	}
}

func TestComputeAttackingSafeDivision(t *testing.T) {
	t.Parallel()

	r := testRecord(1, 0, 0, 1)
	got := ComputeAttacking([]match.Record{r})

	if got.ShotConversionPct != 0 || got.ShotsOnTargetPct != 0 || got.BigChanceConversionPct != 0 {
		t.Fatalf("expected zero rates with zero denominators: %+v", got)
	}
}
