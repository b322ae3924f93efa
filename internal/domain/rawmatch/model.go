package rawmatch

import "strings"

// Row is one team's stat line for one fixture, exactly as exported by the
// data provider, tagged with the season it was loaded from. Cells keep their
// source encoding: plain numbers, "408 (85%)" count-and-percentage pairs,
// "55%" bare percentages, verbose dates.
type Row struct {
	Season string
	Values map[string]string
}

// Field returns the trimmed cell for a column, or "" when the column is
// absent from the row.
func (r Row) Field(col string) string {
	return strings.TrimSpace(r.Values[col])
}
