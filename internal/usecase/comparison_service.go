package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/matchdaylabs/matchmetrics/internal/domain/match"
	"github.com/matchdaylabs/matchmetrics/internal/domain/metrics"
)

const (
	maxComparisonTeams    = 8
	comparisonWorkerLimit = 4
)

type ComparisonInput struct {
	Season string
	Teams  []string
}

type TeamComparison struct {
	Team       string
	Summary    metrics.SeasonSummary
	Attacking  metrics.Attacking
	Defensive  metrics.Defensive
	Possession metrics.Possession
}

type ComparisonResult struct {
	Season string
	Teams  []TeamComparison
}

// ComparisonService runs the full engine set for several teams side by
// side. Teams are computed concurrently, results keep request order.
type ComparisonService struct {
	matchRepo match.Repository
	catalog   *SeasonCatalog
}

func NewComparisonService(matchRepo match.Repository, catalog *SeasonCatalog) *ComparisonService {
	return &ComparisonService{
		matchRepo: matchRepo,
		catalog:   catalog,
	}
}

func (s *ComparisonService) Compare(ctx context.Context, input ComparisonInput) (ComparisonResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ComparisonService.Compare")
	defer span.End()

	season := strings.TrimSpace(input.Season)
	if season == "" {
		return ComparisonResult{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if err := s.catalog.requireSeason(season); err != nil {
		return ComparisonResult{}, err
	}

	teams := dedupeTeams(input.Teams)
	if len(teams) < 2 {
		return ComparisonResult{}, fmt.Errorf("%w: comparison needs at least two teams", ErrInvalidInput)
	}
	if len(teams) > maxComparisonTeams {
		return ComparisonResult{}, fmt.Errorf("%w: comparison supports at most %d teams", ErrInvalidInput, maxComparisonTeams)
	}

	workerCount := len(teams)
	if workerCount > comparisonWorkerLimit {
		workerCount = comparisonWorkerLimit
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return ComparisonResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]TeamComparison, len(teams))
	taskErrs := make([]error, len(teams))

	var workers sync.WaitGroup
	for i, team := range teams {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			records, err := seasonTeamRecords(ctx, s.matchRepo, s.catalog, season, team)
			if err != nil {
				taskErrs[i] = err
				return
			}
			results[i] = TeamComparison{
				Team:       team,
				Summary:    metrics.ComputeSeasonSummary(records),
				Attacking:  metrics.ComputeAttacking(records),
				Defensive:  metrics.ComputeDefensive(records),
				Possession: metrics.ComputePossession(records),
			}
		}); err != nil {
			workers.Done()
			return ComparisonResult{}, fmt.Errorf("submit comparison task: %w", err)
		}
	}
	workers.Wait()

	for _, err := range taskErrs {
		if err != nil {
			return ComparisonResult{}, err
		}
	}

	return ComparisonResult{
		Season: season,
		Teams:  results,
	}, nil
}

func dedupeTeams(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, team := range raw {
		team = strings.TrimSpace(team)
		if team == "" {
			continue
		}
		if _, ok := seen[team]; ok {
			continue
		}
		seen[team] = struct{}{}
		out = append(out, team)
	}
	return out
}
