package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matchdaylabs/matchmetrics/internal/domain/match"
	"github.com/matchdaylabs/matchmetrics/internal/domain/standings"
)

type StandingsService struct {
	matchRepo match.Repository
	catalog   *SeasonCatalog
}

func NewStandingsService(matchRepo match.Repository, catalog *SeasonCatalog) *StandingsService {
	return &StandingsService{
		matchRepo: matchRepo,
		catalog:   catalog,
	}
}

// Standings recomputes the league table from match records on every call.
func (s *StandingsService) Standings(ctx context.Context, season string) ([]standings.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Standings")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if err := s.catalog.requireSeason(season); err != nil {
		return nil, err
	}

	records, err := s.matchRepo.ListBySeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("list matches season=%s: %w", season, err)
	}
	return standings.Compute(records), nil
}
