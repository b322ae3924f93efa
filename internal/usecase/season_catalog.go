package usecase

import (
	"fmt"
	"sort"
	"strings"
)

// SeasonCatalog is the configured set of seasons the service knows about.
// Season selection is validated here, before any repository read.
type SeasonCatalog struct {
	seasons []string
	known   map[string]struct{}
	winners map[string]string
}

func NewSeasonCatalog(seasons []string, winners map[string]string) *SeasonCatalog {
	ordered := make([]string, 0, len(seasons))
	known := make(map[string]struct{}, len(seasons))
	for _, season := range seasons {
		season = strings.TrimSpace(season)
		if season == "" {
			continue
		}
		if _, ok := known[season]; ok {
			continue
		}
		known[season] = struct{}{}
		ordered = append(ordered, season)
	}
	sort.Strings(ordered)

	copied := make(map[string]string, len(winners))
	for season, winner := range winners {
		copied[season] = winner
	}

	return &SeasonCatalog{
		seasons: ordered,
		known:   known,
		winners: copied,
	}
}

func (c *SeasonCatalog) List() []string {
	return append([]string(nil), c.seasons...)
}

func (c *SeasonCatalog) Has(season string) bool {
	_, ok := c.known[season]
	return ok
}

// Winner returns the configured league winner for a season, when known.
func (c *SeasonCatalog) Winner(season string) (string, bool) {
	winner, ok := c.winners[season]
	return winner, ok
}

func (c *SeasonCatalog) requireSeason(season string) error {
	if !c.Has(season) {
		return fmt.Errorf("%w: unknown season %q", ErrInvalidInput, season)
	}
	return nil
}
