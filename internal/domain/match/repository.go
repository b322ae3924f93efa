package match

import "context"

// Repository serves canonical records. Implementations return records in
// canonical order and callers never mutate what they get back.
type Repository interface {
	Seasons(ctx context.Context) ([]string, error)
	Teams(ctx context.Context, season string) ([]string, error)
	ListBySeason(ctx context.Context, season string) ([]Record, error)
	ListBySeasonTeam(ctx context.Context, season string, team string) ([]Record, error)
}
