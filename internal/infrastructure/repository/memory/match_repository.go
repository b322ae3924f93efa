package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/matchdaylabs/matchmetrics/internal/domain/match"
	"github.com/matchdaylabs/matchmetrics/internal/domain/rawmatch"
)

// MatchRepository holds the normalized dataset in memory. The whole dataset
// is swapped atomically on load, so readers either see the previous
// generation or the new one, never a mix.
type MatchRepository struct {
	mu       sync.RWMutex
	seasons  []string
	bySeason map[string][]match.Record
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{
		bySeason: make(map[string][]match.Record),
	}
}

// StoreDataset implements the dataset sink. Raw rows are not retained in
// memory, only the normalized records.
func (r *MatchRepository) StoreDataset(ctx context.Context, _ []rawmatch.Row, records []match.Record) error {
	r.Replace(ctx, records)
	return nil
}

// Replace swaps in a new dataset. Records are expected in canonical order.
func (r *MatchRepository) Replace(_ context.Context, records []match.Record) {
	bySeason := make(map[string][]match.Record)
	for _, rec := range records {
		bySeason[rec.Season] = append(bySeason[rec.Season], rec)
	}
	seasons := make([]string, 0, len(bySeason))
	for season := range bySeason {
		seasons = append(seasons, season)
	}
	sort.Strings(seasons)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.seasons = seasons
	r.bySeason = bySeason
}

func (r *MatchRepository) Seasons(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.seasons...), nil
}

func (r *MatchRepository) Teams(_ context.Context, season string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return match.Teams(r.bySeason[season]), nil
}

func (r *MatchRepository) ListBySeason(_ context.Context, season string) ([]match.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]match.Record(nil), r.bySeason[season]...), nil
}

func (r *MatchRepository) ListBySeasonTeam(_ context.Context, season, team string) ([]match.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return match.FilterTeam(r.bySeason[season], team), nil
}
