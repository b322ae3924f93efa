package cache

import (
	"context"

	"github.com/matchdaylabs/matchmetrics/internal/domain/match"
	basecache "github.com/matchdaylabs/matchmetrics/internal/platform/cache"
)

// MatchRepository caches another match repository. Useful in front of the
// Postgres archive, where every read re-normalizes raw payloads.
type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) Seasons(ctx context.Context) ([]string, error) {
	v, err := r.cache.GetOrLoad(ctx, matchSeasonsKey, func(ctx context.Context) (any, error) {
		items, err := r.next.Seasons(ctx)
		if err != nil {
			return nil, err
		}
		return append([]string(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]string)
	return append([]string(nil), items...), nil
}

func (r *MatchRepository) Teams(ctx context.Context, season string) ([]string, error) {
	v, err := r.cache.GetOrLoad(ctx, matchTeamsKey(season), func(ctx context.Context) (any, error) {
		items, err := r.next.Teams(ctx, season)
		if err != nil {
			return nil, err
		}
		return append([]string(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]string)
	return append([]string(nil), items...), nil
}

func (r *MatchRepository) ListBySeason(ctx context.Context, season string) ([]match.Record, error) {
	v, err := r.cache.GetOrLoad(ctx, matchSeasonKey(season), func(ctx context.Context) (any, error) {
		items, err := r.next.ListBySeason(ctx, season)
		if err != nil {
			return nil, err
		}
		return append([]match.Record(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Record)
	return append([]match.Record(nil), items...), nil
}

func (r *MatchRepository) ListBySeasonTeam(ctx context.Context, season, team string) ([]match.Record, error) {
	v, err := r.cache.GetOrLoad(ctx, matchSeasonTeamKey(season, team), func(ctx context.Context) (any, error) {
		items, err := r.next.ListBySeasonTeam(ctx, season, team)
		if err != nil {
			return nil, err
		}
		return append([]match.Record(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Record)
	return append([]match.Record(nil), items...), nil
}

// InvalidateDataset drops every cached read. Called after a dataset reload.
func (r *MatchRepository) InvalidateDataset(ctx context.Context) {
	r.cache.DeletePrefix(ctx, matchKeyPrefix)
}

const (
	matchKeyPrefix  = "match:"
	matchSeasonsKey = "match:seasons"
)

func matchTeamsKey(season string) string {
	return "match:teams:" + season
}

func matchSeasonKey(season string) string {
	return "match:season:" + season
}

func matchSeasonTeamKey(season, team string) string {
	return "match:season:" + season + ":team:" + team
}
