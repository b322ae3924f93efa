package match

import "sort"

// FilterTeam returns the records belonging to one team, preserving canonical
// order.
func FilterTeam(records []Record, team string) []Record {
	var out []Record
	for _, rec := range records {
		if rec.Team == team {
			out = append(out, rec)
		}
	}
	return out
}

// FilterSide returns the records played on one side, preserving canonical
// order.
func FilterSide(records []Record, side Side) []Record {
	var out []Record
	for _, rec := range records {
		if rec.Side == side {
			out = append(out, rec)
		}
	}
	return out
}

// LastN returns the trailing n records in canonical order, or all of them
// when fewer exist. The slice aliases the input; callers treat records as
// read-only.
func LastN(records []Record, n int) []Record {
	if n <= 0 {
		return nil
	}
	if len(records) <= n {
		return records
	}
	return records[len(records)-n:]
}

// Teams lists the distinct team names present in the records, sorted.
func Teams(records []Record) []string {
	set := make(map[string]struct{})
	for _, rec := range records {
		set[rec.Team] = struct{}{}
	}
	teams := make([]string, 0, len(set))
	for team := range set {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams
}

// FindRound returns a team's record for one round within records already
// filtered to that team.
func FindRound(records []Record, round int) (Record, bool) {
	for _, rec := range records {
		if rec.Round == round {
			return rec, true
		}
	}
	return Record{}, false
}

// OpponentRow finds the mirrored stat line for a record: the row where the
// opponent is the team, for the same season and round.
func OpponentRow(seasonRecords []Record, rec Record) (Record, bool) {
	for _, other := range seasonRecords {
		if other.Season == rec.Season &&
			other.Round == rec.Round &&
			other.Team == rec.Opponent &&
			other.Opponent == rec.Team {
			return other, true
		}
	}
	return Record{}, false
}
