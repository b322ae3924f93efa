package metrics

import (
	"testing"

	"github.com/matchdaylabs/matchmetrics/internal/domain/match"
)

func TestComputeForm(t *testing.T) {
	t.Parallel()

	records := []match.Record{
		testRecord(1, 3, 2, 0),
		testRecord(2, 1, 1, 1),
		testRecord(3, 0, 0, 2),
	}

	t.Run("window larger than season keeps full denominator", func(t *testing.T) {
		got := ComputeForm(records, 5)
		if got.FormString != "WDL" {
			t.Fatalf("unexpected form string: got=%s want=WDL", got.FormString)
		}
		if got.Matches != 3 {
			t.Fatalf("unexpected match count: got=%d want=3", got.Matches)
		}
		if got.Points != 4 || got.MaxPoints != 15 {
			t.Fatalf("unexpected points: got=%d/%d want=4/15", got.Points, got.MaxPoints)
		}
		if got.GoalsFor != 3 || got.GoalsAgainst != 3 {
			t.Fatalf("unexpected goals: for=%d against=%d", got.GoalsFor, got.GoalsAgainst)
		}
	})

	t.Run("window trims to most recent matches", func(t *testing.T) {
		got := ComputeForm(records, 2)
		if got.FormString != "DL" {
			t.Fatalf("unexpected form string: got=%s want=DL", got.FormString)
		}
		if got.Points != 1 || got.MaxPoints != 6 {
			t.Fatalf("unexpected points: got=%d/%d want=1/6", got.Points, got.MaxPoints)
		}
	})

	t.Run("non-positive window yields empty form", func(t *testing.T) {
		if got := ComputeForm(records, 0); got.MaxPoints != 0 || got.FormString != "" {
			t.Fatalf("unexpected form for zero window: %+v", got)
		}
	})
}
