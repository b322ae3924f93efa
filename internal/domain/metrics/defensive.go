package metrics

import "github.com/matchdaylabs/matchmetrics/internal/domain/match"

// Defensive is the defensive workload and outcome profile of one team.
// DuelsWonPct follows the mean-of-percentages convention: it averages each
// match's duel success rate rather than dividing summed duel counts.
type Defensive struct {
	Matches         int
	TotalConceded   int
	ConcededPerGame float64
	CleanSheets     int
	CleanSheetPct   float64

	TacklesPerGame          float64
	InterceptionsPerGame    float64
	BlocksPerGame           float64
	ClearancesPerGame       float64
	DefensiveActionsPerGame float64
	SavesPerGame            float64
	DuelsWonPct             float64

	TotalTackles       int
	TotalInterceptions int
	TotalBlocks        int
	TotalClearances    int
	TotalSaves         int
}

func ComputeDefensive(records []match.Record) Defensive {
	out := Defensive{Matches: len(records)}
	if len(records) == 0 {
		return out
	}

	var conceded, cleanSheets, tackles, interceptions, blocks, clearances, saves int
	var duelsPctSum float64
	for _, rec := range records {
		conceded += rec.GoalsConceded
		if rec.IsCleanSheet {
			cleanSheets++
		}
		tackles += rec.Tackles
		interceptions += rec.Interceptions
		blocks += rec.Blocks
		clearances += rec.Clearances
		saves += rec.KeeperSaves
		duelsPctSum += rec.DuelsWonPct
	}

	games := float64(len(records))
	out.TotalConceded = conceded
	out.ConcededPerGame = round2(float64(conceded) / games)
	out.CleanSheets = cleanSheets
	out.CleanSheetPct = round1(pct(float64(cleanSheets), games))

	out.TacklesPerGame = round1(float64(tackles) / games)
	out.InterceptionsPerGame = round1(float64(interceptions) / games)
	out.BlocksPerGame = round1(float64(blocks) / games)
	out.ClearancesPerGame = round1(float64(clearances) / games)
	out.DefensiveActionsPerGame = round1(float64(tackles+interceptions+blocks+clearances) / games)
	out.SavesPerGame = round1(float64(saves) / games)
	out.DuelsWonPct = round1(duelsPctSum / games * 100)

	out.TotalTackles = tackles
	out.TotalInterceptions = interceptions
	out.TotalBlocks = blocks
	out.TotalClearances = clearances
	out.TotalSaves = saves

	return out
}
