package match

import (
	"sort"
	"strings"
	"time"

	"github.com/matchdaylabs/matchmetrics/internal/domain/rawmatch"
)

// SeasonReport counts what the normalizer had to degrade while building one
// season's records. None of these stop a load; they feed dataset health.
type SeasonReport struct {
	Rows          int
	Records       int
	MissingDates  int
	CoercedFields int
	DuplicateKeys int
}

// Report aggregates normalization counters per season.
type Report struct {
	Seasons map[string]SeasonReport
}

// Normalize converts raw rows into canonical records: field parsing, numeric
// coercion, derived flags and rates, identity dedupe, canonical ordering.
// Unparseable cells degrade to zero values and are counted in the report;
// rows repeating an already-seen (season, team, round) identity are dropped,
// first occurrence wins. The result is sorted by (season, round, date)
// ascending with absent dates last, which is the iteration order every
// rolling-window and last-N consumer relies on.
func Normalize(rows []rawmatch.Row) ([]Record, Report) {
	report := Report{Seasons: make(map[string]SeasonReport)}
	records := make([]Record, 0, len(rows))

	type identity struct {
		season string
		team   string
		round  int
	}
	seen := make(map[identity]struct{}, len(rows))

	for _, row := range rows {
		rep := report.Seasons[row.Season]
		rep.Rows++

		rec := normalizeRow(row, &rep)

		key := identity{season: rec.Season, team: rec.Team, round: rec.Round}
		if _, dup := seen[key]; dup {
			rep.DuplicateKeys++
			report.Seasons[row.Season] = rep
			continue
		}
		seen[key] = struct{}{}

		rep.Records++
		report.Seasons[row.Season] = rep
		records = append(records, rec)
	}

	SortCanonical(records)
	return records, report
}

func normalizeRow(row rawmatch.Row, rep *SeasonReport) Record {
	num := func(col string) float64 {
		v, ok := rawmatch.ParseNumber(row.Field(col))
		if !ok {
			rep.CoercedFields++
		}
		return v
	}
	count := func(col string) int {
		return int(num(col))
	}

	rec := Record{
		Season:   row.Season,
		Team:     row.Field(rawmatch.ColTeam),
		Opponent: row.Field(rawmatch.ColOpponent),
		Side:     normalizeSide(row.Field(rawmatch.ColSide)),
		Round:    count(rawmatch.ColRound),
		Match:    row.Field(rawmatch.ColMatch),
		Score:    row.Field(rawmatch.ColScore),

		Points:        count(rawmatch.ColPoints),
		GoalsScored:   count(rawmatch.ColGoalScored),
		GoalsConceded: count(rawmatch.ColGoalConceded),

		PossessionPct: rawmatch.ParsePercent(row.Field(rawmatch.ColBallPossession)),

		ExpectedGoals: num(rawmatch.ColExpectedGoals),
		XGOpenPlay:    num(rawmatch.ColXGOpenPlay),
		XGSetPlay:     num(rawmatch.ColXGSetPlay),
		NonPenaltyXG:  num(rawmatch.ColNonPenaltyXG),
		XGOnTarget:    num(rawmatch.ColXGOnTarget),

		TotalShots:       count(rawmatch.ColTotalShots),
		ShotsOnTarget:    count(rawmatch.ColShotsOnTarget),
		ShotsOffTarget:   count(rawmatch.ColShotsOffTarget),
		BlockedShots:     count(rawmatch.ColBlockedShots),
		HitWoodwork:      count(rawmatch.ColHitWoodwork),
		ShotsInsideBox:   count(rawmatch.ColShotsInsideBox),
		ShotsOutsideBox:  count(rawmatch.ColShotsOutsideBox),
		BigChances:       count(rawmatch.ColBigChances),
		BigChancesMissed: count(rawmatch.ColBigChancesMissed),

		Passes:               count(rawmatch.ColPasses),
		OwnHalfPasses:        count(rawmatch.ColOwnHalf),
		OppositionHalfPasses: count(rawmatch.ColOppositionHalf),
		Throws:               count(rawmatch.ColThrows),
		TouchesInBox:         count(rawmatch.ColTouchesInBox),
		Offsides:             count(rawmatch.ColOffsides),
		FoulsCommitted:       count(rawmatch.ColFoulsCommitted),
		YellowCards:          count(rawmatch.ColYellowCards),
		RedCards:             count(rawmatch.ColRedCards),

		Tackles:       count(rawmatch.ColTackles),
		Interceptions: count(rawmatch.ColInterceptions),
		Blocks:        count(rawmatch.ColBlocks),
		Clearances:    count(rawmatch.ColClearances),
		KeeperSaves:   count(rawmatch.ColKeeperSaves),
		Corners:       count(rawmatch.ColCorners),
	}

	if parsed, ok := rawmatch.ParseVerboseDate(row.Field(rawmatch.ColDate)); ok {
		rec.Date = &parsed
	} else {
		rep.MissingDates++
	}

	rec.AccuratePassesCount, rec.AccuratePassesPct = rawmatch.ParseCountPct(row.Field(rawmatch.ColAccuratePasses))
	rec.AccurateLongBallsCount, rec.AccurateLongBallsPct = rawmatch.ParseCountPct(row.Field(rawmatch.ColAccurateLongBalls))
	rec.AccurateCrossesCount, rec.AccurateCrossesPct = rawmatch.ParseCountPct(row.Field(rawmatch.ColAccurateCrosses))
	rec.DuelsWonCount, rec.DuelsWonPct = rawmatch.ParseCountPct(row.Field(rawmatch.ColDuelsWon))
	rec.GroundDuelsWonCount, rec.GroundDuelsWonPct = rawmatch.ParseCountPct(row.Field(rawmatch.ColGroundDuelsWon))
	rec.AerialDuelsWonCount, rec.AerialDuelsWonPct = rawmatch.ParseCountPct(row.Field(rawmatch.ColAerialDuelsWon))
	rec.SuccessfulDribblesCount, rec.SuccessfulDribblesPct = rawmatch.ParseCountPct(row.Field(rawmatch.ColSuccessfulDribbles))

	deriveFields(&rec)
	return rec
}

// deriveFields fills every computed per-match figure. Division by a zero
// denominator always yields 0, never NaN.
func deriveFields(rec *Record) {
	rec.IsWin = rec.Points == 3
	rec.IsDraw = rec.Points == 1
	rec.IsLoss = !rec.IsWin && !rec.IsDraw
	rec.IsCleanSheet = rec.GoalsConceded == 0

	rec.GoalDifference = rec.GoalsScored - rec.GoalsConceded
	rec.XGDifference = float64(rec.GoalsScored) - rec.ExpectedGoals

	shots := float64(rec.TotalShots)
	rec.ShotConversionPct = safeDiv(float64(rec.GoalsScored), shots) * 100
	rec.ShotsOnTargetPct = safeDiv(float64(rec.ShotsOnTarget), shots) * 100
	rec.ShotsInsideBoxPct = safeDiv(float64(rec.ShotsInsideBox), shots) * 100
	rec.BigChanceConversionPct = safeDiv(float64(rec.BigChances-rec.BigChancesMissed), float64(rec.BigChances)) * 100

	rec.DefensiveActions = rec.Tackles + rec.Interceptions + rec.Blocks + rec.Clearances
	rec.OppositionHalfShare = safeDiv(float64(rec.OppositionHalfPasses), float64(rec.Passes)) * 100

	rec.XGOpenPlayRatio = safeDiv(rec.XGOpenPlay, rec.ExpectedGoals)
	rec.XGSetPlayRatio = safeDiv(rec.XGSetPlay, rec.ExpectedGoals)
	rec.XGPerShot = safeDiv(rec.ExpectedGoals, shots)

	rec.WoodworkRate = safeDiv(float64(rec.HitWoodwork), shots) * 100
	rec.BlockedShotsRate = safeDiv(float64(rec.BlockedShots), shots) * 100
	rec.OffTargetRate = safeDiv(float64(rec.ShotsOffTarget), shots) * 100

	rec.Possession = BucketForPossession(rec.PossessionPct)
}

func normalizeSide(raw string) Side {
	switch {
	case strings.EqualFold(raw, string(SideHome)):
		return SideHome
	case strings.EqualFold(raw, string(SideAway)):
		return SideAway
	default:
		return Side(raw)
	}
}

// SortCanonical orders records by (season, round, date) ascending, keeping
// input order for ties and pushing records without a parsed date to the end
// of their round.
func SortCanonical(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Season != b.Season {
			return a.Season < b.Season
		}
		if a.Round != b.Round {
			return a.Round < b.Round
		}
		return dateBefore(a.Date, b.Date)
	})
}

func dateBefore(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.Before(*b)
	}
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
