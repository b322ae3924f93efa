package metrics

import (
	"testing"

	"github.com/matchdaylabs/matchmetrics/internal/domain/match"
)

func TestComputeSetPiece(t *testing.T) {
	t.Parallel()

	r1 := testRecord(1, 3, 2, 0)
	r1.XGSetPlay = 0.6
	r1.XGOpenPlay = 1.2
	r1.ExpectedGoals = 1.8
	r1.Corners = 6

	r2 := testRecord(2, 0, 0, 1)
	r2.XGSetPlay = 0.5
	r2.XGOpenPlay = 0.9
	r2.ExpectedGoals = 1.4
	r2.Corners = 4

	got := ComputeSetPiece([]match.Record{r1, r2})

	if got.SetPieceXG != 1.1 || got.OpenPlayXG != 2.1 {
		t.Fatalf("unexpected xg split: set=%v open=%v", got.SetPieceXG, got.OpenPlayXG)
	}
	if got.SetPieceXGPct != 34.4 {
		t.Fatalf("unexpected set piece share: got=%v want=34.4", got.SetPieceXGPct)
	}
	if got.OpenPlayXGPct != 65.6 {
		t.Fatalf("unexpected open play share: got=%v want=65.6", got.OpenPlayXGPct)
	}
	if got.TotalCorners != 10 || got.CornersPerGame != 5.0 {
		t.Fatalf("unexpected corners: total=%d perGame=%v", got.TotalCorners, got.CornersPerGame)
	}
	if got.XGPerCorner != 0.11 {
		t.Fatalf("unexpected xg per corner: got=%v want=0.11", got.XGPerCorner)
	}
}

func TestComputeSetPieceNoCorners(t *testing.T) {
	t.Parallel()

	r := testRecord(1, 3, 1, 0)
	r.XGSetPlay = 0.4
	r.ExpectedGoals = 1.0

	got := ComputeSetPiece([]match.Record{r})
	if got.XGPerCorner != 0 {
		t.Fatalf("expected 0 xg per corner without corners, got %v", got.XGPerCorner)
	}
}
