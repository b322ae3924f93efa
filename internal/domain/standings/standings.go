package standings

import (
	"sort"

	"github.com/matchdaylabs/matchmetrics/internal/domain/match"
)

// Row is one team's line in the league table.
type Row struct {
	Position       int
	Team           string
	Played         int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

// Compute builds the table from one season's records, from scratch on every
// call. Ordering is strictly points, then goal difference, then goals for,
// all descending; no further tie-break is applied, teams fully tied keep a
// stable alphabetical order. Positions are 1-based ranks in sorted order,
// tied teams still get distinct adjacent positions.
func Compute(records []match.Record) []Row {
	byTeam := make(map[string]*Row)
	for _, rec := range records {
		row, ok := byTeam[rec.Team]
		if !ok {
			row = &Row{Team: rec.Team}
			byTeam[rec.Team] = row
		}
		row.Played++
		switch {
		case rec.IsWin:
			row.Wins++
		case rec.IsDraw:
			row.Draws++
		default:
			row.Losses++
		}
		row.GoalsFor += rec.GoalsScored
		row.GoalsAgainst += rec.GoalsConceded
		row.Points += rec.Points
	}

	teams := make([]string, 0, len(byTeam))
	for team := range byTeam {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	rows := make([]Row, 0, len(byTeam))
	for _, team := range teams {
		row := *byTeam[team]
		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalDifference != rows[j].GoalDifference {
			return rows[i].GoalDifference > rows[j].GoalDifference
		}
		return rows[i].GoalsFor > rows[j].GoalsFor
	})

	for i := range rows {
		rows[i].Position = i + 1
	}
	return rows
}
