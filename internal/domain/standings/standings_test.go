package standings

import (
	"testing"

	"github.com/matchdaylabs/matchmetrics/internal/domain/match"
)

func result(team string, points, scored, conceded int) match.Record {
	r := match.Record{
		Season:        "2024-2025",
		Team:          team,
		Points:        points,
		GoalsScored:   scored,
		GoalsConceded: conceded,
	}
	r.IsWin = points == 3
	r.IsDraw = points == 1
	r.IsLoss = !r.IsWin && !r.IsDraw
	return r
}

func TestComputeOrdersByPointsThenGoalDifference(t *testing.T) {
	t.Parallel()

	// A and B tie on 30 points; A's goal difference is +10 vs B's +5.
	var records []match.Record
	for i := 0; i < 10; i++ {
		records = append(records, result("Team A", 3, 2, 1))
		records = append(records, result("Team B", 3, 2, 1))
	}
	for i := 0; i < 5; i++ {
		records = append(records, result("Team B", 0, 0, 1))
	}
	for i := 0; i < 9; i++ {
		records = append(records, result("Team C", 3, 1, 0))
	}
	records = append(records, result("Team C", 1, 1, 1))

	rows := Compute(records)
	if len(rows) != 3 {
		t.Fatalf("unexpected row count: got=%d want=3", len(rows))
	}

	wantOrder := []string{"Team A", "Team B", "Team C"}
	for i, want := range wantOrder {
		if rows[i].Team != want {
			t.Fatalf("unexpected team at %d: got=%s want=%s", i, rows[i].Team, want)
		}
		if rows[i].Position != i+1 {
			t.Fatalf("positions must be dense 1..n: got=%d want=%d", rows[i].Position, i+1)
		}
	}

	if rows[0].Points != 30 || rows[1].Points != 30 || rows[2].Points != 28 {
		t.Fatalf("unexpected points: %d %d %d", rows[0].Points, rows[1].Points, rows[2].Points)
	}
	if rows[0].GoalDifference != 10 || rows[1].GoalDifference != 5 {
		t.Fatalf("unexpected goal difference: a=%d b=%d", rows[0].GoalDifference, rows[1].GoalDifference)
	}
}

func TestComputeFullTiesKeepAlphabeticalOrder(t *testing.T) {
	t.Parallel()

	records := []match.Record{
		result("Everton", 3, 2, 1),
		result("Brentford", 3, 2, 1),
		result("Arsenal", 3, 2, 1),
	}

	rows := Compute(records)
	wantOrder := []string{"Arsenal", "Brentford", "Everton"}
	for i, want := range wantOrder {
		if rows[i].Team != want {
			t.Fatalf("unexpected team at %d: got=%s want=%s", i, rows[i].Team, want)
		}
	}
	if rows[0].Position != 1 || rows[1].Position != 2 || rows[2].Position != 3 {
		t.Fatalf("tied teams must still get distinct positions: %+v", rows)
	}
}

func TestComputeRecomputesFromScratch(t *testing.T) {
	t.Parallel()

	records := []match.Record{result("Arsenal", 3, 2, 0)}
	first := Compute(records)
	second := Compute(records)

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("unexpected row counts: %d %d", len(first), len(second))
	}
	if first[0] != second[0] {
		t.Fatalf("repeated computation should be identical: %+v vs %+v", first[0], second[0])
	}
}
