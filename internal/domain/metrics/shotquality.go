package metrics

import "github.com/matchdaylabs/matchmetrics/internal/domain/match"

// ShotQuality profiles where a team's shots end up and how good they are on
// average. EstimatedUnluckyGoals is a fixed heuristic: woodwork hits are
// weighted at half a goal each.
type ShotQuality struct {
	Matches               int
	AvgXGPerShot          float64
	WoodworkHits          int
	WoodworkRate          float64
	BlockedShots          int
	BlockedRate           float64
	OffTarget             int
	OffTargetRate         float64
	OnTargetRate          float64
	GoalRate              float64
	EstimatedUnluckyGoals float64
}

// ShotOutcome is one slice of the shot outcome breakdown.
type ShotOutcome struct {
	Outcome string
	Count   int
	Pct     float64
}

// ShotOutcomes partitions total shots into outcome categories. The source
// tracks woodwork and blocked shots independently of the on/off target
// split, so the percentages can overlap and need not sum to 100. The
// breakdown carries the source numbers through unchanged.
type ShotOutcomes struct {
	Matches    int
	TotalShots int
	Outcomes   []ShotOutcome
}

func ComputeShotQuality(records []match.Record) ShotQuality {
	out := ShotQuality{Matches: len(records)}
	if len(records) == 0 {
		return out
	}

	var goals, shots, onTarget, offTarget, blocked, woodwork int
	var xg float64
	for _, rec := range records {
		goals += rec.GoalsScored
		shots += rec.TotalShots
		onTarget += rec.ShotsOnTarget
		offTarget += rec.ShotsOffTarget
		blocked += rec.BlockedShots
		woodwork += rec.HitWoodwork
		xg += rec.ExpectedGoals
	}

	out.AvgXGPerShot = round3(safeDiv(xg, float64(shots)))
	out.WoodworkHits = woodwork
	out.WoodworkRate = round1(pct(float64(woodwork), float64(shots)))
	out.BlockedShots = blocked
	out.BlockedRate = round1(pct(float64(blocked), float64(shots)))
	out.OffTarget = offTarget
	out.OffTargetRate = round1(pct(float64(offTarget), float64(shots)))
	out.OnTargetRate = round1(pct(float64(onTarget), float64(shots)))
	out.GoalRate = round1(pct(float64(goals), float64(shots)))
	out.EstimatedUnluckyGoals = round1(float64(woodwork) * 0.5)

	return out
}

func ComputeShotOutcomes(records []match.Record) ShotOutcomes {
	out := ShotOutcomes{Matches: len(records)}
	if len(records) == 0 {
		return out
	}

	var goals, shots, onTarget, offTarget, blocked, woodwork int
	for _, rec := range records {
		goals += rec.GoalsScored
		shots += rec.TotalShots
		onTarget += rec.ShotsOnTarget
		offTarget += rec.ShotsOffTarget
		blocked += rec.BlockedShots
		woodwork += rec.HitWoodwork
	}

	out.TotalShots = shots
	saved := onTarget - goals
	for _, oc := range []struct {
		name  string
		count int
	}{
		{name: "Goals", count: goals},
		{name: "Saved", count: saved},
		{name: "Blocked", count: blocked},
		{name: "Off Target", count: offTarget},
		{name: "Woodwork", count: woodwork},
	} {
		out.Outcomes = append(out.Outcomes, ShotOutcome{
			Outcome: oc.name,
			Count:   oc.count,
			Pct:     round1(pct(float64(oc.count), float64(shots))),
		})
	}

	return out
}
