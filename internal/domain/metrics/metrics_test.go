package metrics

import (
	"reflect"
	"testing"

	"github.com/matchdaylabs/matchmetrics/internal/domain/match"
)

// testRecord builds a canonical record with the outcome flags derived the
// same way the normalizer derives them. Stat fields default to zero and are
// set per test.
func testRecord(round, points, scored, conceded int) match.Record {
	r := match.Record{
		Season:        "2024-2025",
		Team:          "Arsenal",
		Round:         round,
		Points:        points,
		GoalsScored:   scored,
		GoalsConceded: conceded,
	}
	r.IsWin = points == 3
	r.IsDraw = points == 1
	r.IsLoss = !r.IsWin && !r.IsDraw
	r.IsCleanSheet = conceded == 0
	r.GoalDifference = scored - conceded
	return r
}

func withPossession(r match.Record, pctValue float64) match.Record {
	r.PossessionPct = pctValue
	r.Possession = match.BucketForPossession(pctValue)
	return r
}

func TestEnginesZeroFilledOnEmptyInput(t *testing.T) {
	t.Parallel()

	if got := ComputeAttacking(nil); !reflect.DeepEqual(got, Attacking{}) {
		t.Fatalf("attacking not zero-filled: %+v", got)
	}
	if got := ComputeDefensive(nil); !reflect.DeepEqual(got, Defensive{}) {
		t.Fatalf("defensive not zero-filled: %+v", got)
	}
	if got := ComputePossession(nil); !reflect.DeepEqual(got, Possession{}) {
		t.Fatalf("possession not zero-filled: %+v", got)
	}
	if got := ComputeSetPiece(nil); !reflect.DeepEqual(got, SetPiece{}) {
		t.Fatalf("set piece not empty: %+v", got)
	}
	if got := ComputeShotQuality(nil); !reflect.DeepEqual(got, ShotQuality{}) {
		t.Fatalf("shot quality not empty: %+v", got)
	}
	if got := ComputeShotOutcomes(nil); got.Matches != 0 || len(got.Outcomes) != 0 {
		t.Fatalf("shot outcomes not empty: %+v", got)
	}
	if got := ComputeSeasonSummary(nil); !reflect.DeepEqual(got, SeasonSummary{}) {
		t.Fatalf("summary not empty: %+v", got)
	}
	if got := ComputePossessionEffectiveness(nil); !reflect.DeepEqual(got, PossessionEffectiveness{}) {
		t.Fatalf("effectiveness not empty: %+v", got)
	}
	if got := ComputePossessionResults(nil); got != nil {
		t.Fatalf("possession results should be nil on empty input: %+v", got)
	}
}
