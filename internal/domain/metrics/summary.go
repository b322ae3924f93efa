package metrics

import "github.com/matchdaylabs/matchmetrics/internal/domain/match"

// SeasonSummary is the headline view of one team's season.
type SeasonSummary struct {
	Matches  int
	Wins     int
	Draws    int
	Losses   int
	HomeWins int
	AwayWins int

	TotalPoints   int
	PointsPerGame float64
	WinPct        float64

	GoalsScored     int
	GoalsConceded   int
	GoalDifference  int
	GoalsPerGame    float64
	ConcededPerGame float64
	CleanSheets     int
	CleanSheetPct   float64

	AvgPossessionPct float64
	TotalXG          float64
	XGPerGame        float64
}

// SideSplit is one venue's slice of the home/away comparison.
type SideSplit struct {
	Matches          int
	Wins             int
	Draws            int
	Losses           int
	Points           int
	PointsPerGame    float64
	GoalsFor         int
	GoalsAgainst     int
	CleanSheets      int
	AvgPossessionPct float64
}

// HomeAway pairs both venue splits for one team.
type HomeAway struct {
	Home SideSplit
	Away SideSplit
}

func ComputeSeasonSummary(records []match.Record) SeasonSummary {
	out := SeasonSummary{Matches: len(records)}
	if len(records) == 0 {
		return out
	}

	var possessionSum, xg float64
	for _, rec := range records {
		switch {
		case rec.IsWin:
			out.Wins++
			if rec.Side == match.SideHome {
				out.HomeWins++
			}
			if rec.Side == match.SideAway {
				out.AwayWins++
			}
		case rec.IsDraw:
			out.Draws++
		default:
			out.Losses++
		}
		out.TotalPoints += rec.Points
		out.GoalsScored += rec.GoalsScored
		out.GoalsConceded += rec.GoalsConceded
		if rec.IsCleanSheet {
			out.CleanSheets++
		}
		possessionSum += rec.PossessionPct
		xg += rec.ExpectedGoals
	}

	games := float64(len(records))
	out.GoalDifference = out.GoalsScored - out.GoalsConceded
	out.PointsPerGame = round2(float64(out.TotalPoints) / games)
	out.WinPct = round1(pct(float64(out.Wins), games))
	out.GoalsPerGame = round2(float64(out.GoalsScored) / games)
	out.ConcededPerGame = round2(float64(out.GoalsConceded) / games)
	out.CleanSheetPct = round1(pct(float64(out.CleanSheets), games))
	out.AvgPossessionPct = round1(possessionSum / games)
	out.TotalXG = round2(xg)
	out.XGPerGame = round2(xg / games)

	return out
}

func ComputeHomeAway(records []match.Record) HomeAway {
	return HomeAway{
		Home: computeSideSplit(match.FilterSide(records, match.SideHome)),
		Away: computeSideSplit(match.FilterSide(records, match.SideAway)),
	}
}

func computeSideSplit(records []match.Record) SideSplit {
	out := SideSplit{Matches: len(records)}
	if len(records) == 0 {
		return out
	}

	var possessionSum float64
	for _, rec := range records {
		switch {
		case rec.IsWin:
			out.Wins++
		case rec.IsDraw:
			out.Draws++
		default:
			out.Losses++
		}
		out.Points += rec.Points
		out.GoalsFor += rec.GoalsScored
		out.GoalsAgainst += rec.GoalsConceded
		if rec.IsCleanSheet {
			out.CleanSheets++
		}
		possessionSum += rec.PossessionPct
	}

	games := float64(len(records))
	out.PointsPerGame = round2(float64(out.Points) / games)
	out.AvgPossessionPct = round1(possessionSum / games)
	return out
}
