package metrics

import (
	"strings"

	"github.com/matchdaylabs/matchmetrics/internal/domain/match"
)

// Form summarizes the trailing window of a team's season. MaxPoints is
// always window times three, even when fewer matches exist, so form reads
// as "7/15" rather than shrinking the denominator.
type Form struct {
	Window     int
	Matches    int
	FormString string
	Points     int
	MaxPoints  int

	Wins   int
	Draws  int
	Losses int

	GoalsFor     int
	GoalsAgainst int
}

// ComputeForm reduces the last `window` records, which must already be in
// canonical order. The form string reads chronologically, oldest first.
func ComputeForm(records []match.Record, window int) Form {
	if window <= 0 {
		return Form{}
	}

	recent := match.LastN(records, window)
	out := Form{
		Window:    window,
		Matches:   len(recent),
		MaxPoints: window * 3,
	}

	var letters strings.Builder
	for _, rec := range recent {
		letters.WriteString(rec.FormLetter())
		out.Points += rec.Points
		switch {
		case rec.IsWin:
			out.Wins++
		case rec.IsDraw:
			out.Draws++
		default:
			out.Losses++
		}
		out.GoalsFor += rec.GoalsScored
		out.GoalsAgainst += rec.GoalsConceded
	}
	out.FormString = letters.String()

	return out
}
