package match

import (
	"math"
	"reflect"
	"strconv"
	"testing"

	"github.com/matchdaylabs/matchmetrics/internal/domain/rawmatch"
)

func testRow(season, team string, round int, overrides map[string]string) rawmatch.Row {
	values := make(map[string]string)
	values[rawmatch.ColTeam] = team
	values[rawmatch.ColOpponent] = "Opponent FC"
	values[rawmatch.ColSide] = "Home"
	values[rawmatch.ColRound] = strconv.Itoa(round)
	values[rawmatch.ColMatch] = team + " vs Opponent FC"
	values[rawmatch.ColScore] = "2 - 0"
	values[rawmatch.ColDate] = "Saturday, August 12, 2023"
	values[rawmatch.ColPoints] = "3"
	values[rawmatch.ColGoalScored] = "2"
	values[rawmatch.ColGoalConceded] = "0"
	values[rawmatch.ColBallPossession] = "55%"
	values[rawmatch.ColAccuratePasses] = "408 (85%)"
	values[rawmatch.ColExpectedGoals] = "1.8"
	values[rawmatch.ColXGOpenPlay] = "1.2"
	values[rawmatch.ColXGSetPlay] = "0.6"
	values[rawmatch.ColTotalShots] = "10"
	values[rawmatch.ColShotsOnTarget] = "5"
	values[rawmatch.ColShotsInsideBox] = "7"
	values[rawmatch.ColBigChances] = "4"
	values[rawmatch.ColBigChancesMissed] = "2"
	values[rawmatch.ColPasses] = "480"
	values[rawmatch.ColOppositionHalf] = "240"
	values[rawmatch.ColTackles] = "12"
	values[rawmatch.ColInterceptions] = "8"
	values[rawmatch.ColBlocks] = "3"
	values[rawmatch.ColClearances] = "15"
	values[rawmatch.ColCorners] = "6"
	for col, v := range overrides {
		values[col] = v
	}
	return rawmatch.Row{Season: season, Values: values}
}

func TestNormalizeDerivesPerMatchFields(t *testing.T) {
	t.Parallel()

	records, report := Normalize([]rawmatch.Row{testRow("2023-2024", "Arsenal", 1, nil)})
	if len(records) != 1 {
		t.Fatalf("unexpected record count: got=%d want=1", len(records))
	}
	rec := records[0]

	if !rec.IsWin || rec.IsDraw || rec.IsLoss {
		t.Fatalf("unexpected outcome flags: win=%v draw=%v loss=%v", rec.IsWin, rec.IsDraw, rec.IsLoss)
	}
	if !rec.IsCleanSheet {
		t.Fatalf("expected clean sheet for 0 conceded")
	}
	if rec.Date == nil {
		t.Fatalf("expected parsed date")
	}
	if rec.AccuratePassesCount != 408 || math.Abs(rec.AccuratePassesPct-0.85) > 1e-9 {
		t.Fatalf("unexpected accurate passes: count=%d pct=%v", rec.AccuratePassesCount, rec.AccuratePassesPct)
	}
	if math.Abs(rec.ShotConversionPct-20) > 1e-9 {
		t.Fatalf("unexpected shot conversion: got=%v want=20", rec.ShotConversionPct)
	}
	if math.Abs(rec.BigChanceConversionPct-50) > 1e-9 {
		t.Fatalf("unexpected big chance conversion: got=%v want=50", rec.BigChanceConversionPct)
	}
	if rec.DefensiveActions != 38 {
		t.Fatalf("unexpected defensive actions: got=%d want=38", rec.DefensiveActions)
	}
	if math.Abs(rec.OppositionHalfShare-50) > 1e-9 {
		t.Fatalf("unexpected opposition half share: got=%v want=50", rec.OppositionHalfShare)
	}
	if math.Abs(rec.XGDifference-0.2) > 1e-9 {
		t.Fatalf("unexpected xg difference: got=%v want=0.2", rec.XGDifference)
	}
	if rec.Possession != PossessionHigh {
		t.Fatalf("unexpected possession bucket: got=%s want=%s", rec.Possession, PossessionHigh)
	}

	rep := report.Seasons["2023-2024"]
	if rep.Rows != 1 || rep.Records != 1 || rep.MissingDates != 0 {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

func TestNormalizeOutcomeExclusivity(t *testing.T) {
	t.Parallel()

	rows := []rawmatch.Row{
		testRow("2023-2024", "Arsenal", 1, map[string]string{rawmatch.ColPoints: "3"}),
		testRow("2023-2024", "Arsenal", 2, map[string]string{rawmatch.ColPoints: "1"}),
		testRow("2023-2024", "Arsenal", 3, map[string]string{rawmatch.ColPoints: "0"}),
		testRow("2023-2024", "Arsenal", 4, map[string]string{rawmatch.ColPoints: ""}),
		testRow("2023-2024", "Arsenal", 5, map[string]string{rawmatch.ColPoints: "junk"}),
	}
	records, _ := Normalize(rows)
	for _, rec := range records {
		flags := 0
		for _, f := range []bool{rec.IsWin, rec.IsDraw, rec.IsLoss} {
			if f {
				flags++
			}
		}
		if flags != 1 {
			t.Fatalf("round %d: expected exactly one outcome flag, got %d", rec.Round, flags)
		}
	}
}

func TestNormalizeSafeDivision(t *testing.T) {
	t.Parallel()

	row := testRow("2023-2024", "Arsenal", 1, map[string]string{
		rawmatch.ColTotalShots:    "0",
		rawmatch.ColShotsOnTarget: "0",
		rawmatch.ColBigChances:    "0",
		rawmatch.ColPasses:        "0",
		rawmatch.ColExpectedGoals: "0",
	})
	records, _ := Normalize([]rawmatch.Row{row})
	rec := records[0]

	for name, v := range map[string]float64{
		"shot conversion":       rec.ShotConversionPct,
		"shots on target":       rec.ShotsOnTargetPct,
		"big chance conversion": rec.BigChanceConversionPct,
		"opposition half share": rec.OppositionHalfShare,
		"xg per shot":           rec.XGPerShot,
		"open play ratio":       rec.XGOpenPlayRatio,
	} {
		if v != 0 || math.IsNaN(v) {
			t.Fatalf("%s: expected 0 with zero denominator, got %v", name, v)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	rows := []rawmatch.Row{
		testRow("2023-2024", "Chelsea", 2, nil),
		testRow("2023-2024", "Arsenal", 1, map[string]string{rawmatch.ColDate: "bad date"}),
		testRow("2024-2025", "Arsenal", 1, nil),
	}

	first, firstReport := Normalize(rows)
	second, secondReport := Normalize(rows)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("normalize is not idempotent")
	}
	if !reflect.DeepEqual(firstReport, secondReport) {
		t.Fatalf("normalize reports differ between runs")
	}
}

func TestNormalizeOrdersAndDedupes(t *testing.T) {
	t.Parallel()

	rows := []rawmatch.Row{
		testRow("2024-2025", "Arsenal", 2, nil),
		testRow("2023-2024", "Arsenal", 5, nil),
		testRow("2023-2024", "Arsenal", 1, map[string]string{rawmatch.ColGoalScored: "4"}),
		testRow("2023-2024", "Arsenal", 1, map[string]string{rawmatch.ColGoalScored: "9"}),
	}
	records, report := Normalize(rows)

	if len(records) != 3 {
		t.Fatalf("unexpected record count after dedupe: got=%d want=3", len(records))
	}
	if records[0].Season != "2023-2024" || records[0].Round != 1 {
		t.Fatalf("unexpected first record: season=%s round=%d", records[0].Season, records[0].Round)
	}
	if records[0].GoalsScored != 4 {
		t.Fatalf("dedupe should keep the first occurrence: got goals=%d", records[0].GoalsScored)
	}
	if records[2].Season != "2024-2025" {
		t.Fatalf("seasons should sort ascending, last record season=%s", records[2].Season)
	}
	if report.Seasons["2023-2024"].DuplicateKeys != 1 {
		t.Fatalf("expected one duplicate key, got %d", report.Seasons["2023-2024"].DuplicateKeys)
	}
}

func TestBucketForPossession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pct  float64
		want PossessionBucket
	}{
		{pct: 0, want: PossessionLow},
		{pct: 44.9, want: PossessionLow},
		{pct: 45, want: PossessionMedium},
		{pct: 54.9, want: PossessionMedium},
		{pct: 55, want: PossessionHigh},
		{pct: 100, want: PossessionHigh},
	}
	for _, tc := range tests {
		if got := BucketForPossession(tc.pct); got != tc.want {
			t.Fatalf("bucket for %v: got=%s want=%s", tc.pct, got, tc.want)
		}
	}
}
