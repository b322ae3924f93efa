package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matchdaylabs/matchmetrics/internal/domain/match"
	"github.com/matchdaylabs/matchmetrics/internal/domain/metrics"
)

// TeamMetricsService answers every per-team metric question for one season.
// All engines run on demand over the normalized records; results carry
// display-ready rounded values.
type TeamMetricsService struct {
	matchRepo match.Repository
	catalog   *SeasonCatalog
}

func NewTeamMetricsService(matchRepo match.Repository, catalog *SeasonCatalog) *TeamMetricsService {
	return &TeamMetricsService{
		matchRepo: matchRepo,
		catalog:   catalog,
	}
}

// SeasonInfo pairs a season key with its configured league winner.
type SeasonInfo struct {
	Season       string
	LeagueWinner string
}

func (s *TeamMetricsService) ListSeasons(ctx context.Context) ([]SeasonInfo, error) {
	_, span := startUsecaseSpan(ctx, "usecase.TeamMetricsService.ListSeasons")
	defer span.End()

	seasons := s.catalog.List()
	out := make([]SeasonInfo, 0, len(seasons))
	for _, season := range seasons {
		winner, _ := s.catalog.Winner(season)
		out = append(out, SeasonInfo{
			Season:       season,
			LeagueWinner: winner,
		})
	}
	return out, nil
}

func (s *TeamMetricsService) ListTeams(ctx context.Context, season string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamMetricsService.ListTeams")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if err := s.catalog.requireSeason(season); err != nil {
		return nil, err
	}

	teams, err := s.matchRepo.Teams(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *TeamMetricsService) Attacking(ctx context.Context, season, team string) (metrics.Attacking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamMetricsService.Attacking")
	defer span.End()

	records, err := seasonTeamRecords(ctx, s.matchRepo, s.catalog, season, team)
	if err != nil {
		return metrics.Attacking{}, err
	}
	return metrics.ComputeAttacking(records), nil
}

func (s *TeamMetricsService) Defensive(ctx context.Context, season, team string) (metrics.Defensive, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamMetricsService.Defensive")
	defer span.End()

	records, err := seasonTeamRecords(ctx, s.matchRepo, s.catalog, season, team)
	if err != nil {
		return metrics.Defensive{}, err
	}
	return metrics.ComputeDefensive(records), nil
}

func (s *TeamMetricsService) Possession(ctx context.Context, season, team string) (metrics.Possession, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamMetricsService.Possession")
	defer span.End()

	records, err := seasonTeamRecords(ctx, s.matchRepo, s.catalog, season, team)
	if err != nil {
		return metrics.Possession{}, err
	}
	return metrics.ComputePossession(records), nil
}

func (s *TeamMetricsService) SetPiece(ctx context.Context, season, team string) (metrics.SetPiece, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamMetricsService.SetPiece")
	defer span.End()

	records, err := seasonTeamRecords(ctx, s.matchRepo, s.catalog, season, team)
	if err != nil {
		return metrics.SetPiece{}, err
	}
	return metrics.ComputeSetPiece(records), nil
}

func (s *TeamMetricsService) ShotQuality(ctx context.Context, season, team string) (metrics.ShotQuality, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamMetricsService.ShotQuality")
	defer span.End()

	records, err := seasonTeamRecords(ctx, s.matchRepo, s.catalog, season, team)
	if err != nil {
		return metrics.ShotQuality{}, err
	}
	return metrics.ComputeShotQuality(records), nil
}

func (s *TeamMetricsService) ShotOutcomes(ctx context.Context, season, team string) (metrics.ShotOutcomes, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamMetricsService.ShotOutcomes")
	defer span.End()

	records, err := seasonTeamRecords(ctx, s.matchRepo, s.catalog, season, team)
	if err != nil {
		return metrics.ShotOutcomes{}, err
	}
	return metrics.ComputeShotOutcomes(records), nil
}

func (s *TeamMetricsService) Summary(ctx context.Context, season, team string) (metrics.SeasonSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamMetricsService.Summary")
	defer span.End()

	records, err := seasonTeamRecords(ctx, s.matchRepo, s.catalog, season, team)
	if err != nil {
		return metrics.SeasonSummary{}, err
	}
	return metrics.ComputeSeasonSummary(records), nil
}

func (s *TeamMetricsService) HomeAway(ctx context.Context, season, team string) (metrics.HomeAway, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamMetricsService.HomeAway")
	defer span.End()

	records, err := seasonTeamRecords(ctx, s.matchRepo, s.catalog, season, team)
	if err != nil {
		return metrics.HomeAway{}, err
	}
	return metrics.ComputeHomeAway(records), nil
}

func (s *TeamMetricsService) Form(ctx context.Context, season, team string, window int) (metrics.Form, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamMetricsService.Form")
	defer span.End()

	if window <= 0 {
		return metrics.Form{}, fmt.Errorf("%w: form window must be greater than zero", ErrInvalidInput)
	}

	records, err := seasonTeamRecords(ctx, s.matchRepo, s.catalog, season, team)
	if err != nil {
		return metrics.Form{}, err
	}
	return metrics.ComputeForm(records, window), nil
}

func (s *TeamMetricsService) Effectiveness(ctx context.Context, season, team string) (metrics.PossessionEffectiveness, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamMetricsService.Effectiveness")
	defer span.End()

	records, err := seasonTeamRecords(ctx, s.matchRepo, s.catalog, season, team)
	if err != nil {
		return metrics.PossessionEffectiveness{}, err
	}
	return metrics.ComputePossessionEffectiveness(records), nil
}

func (s *TeamMetricsService) PossessionResults(ctx context.Context, season, team string) ([]metrics.PossessionResultsRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamMetricsService.PossessionResults")
	defer span.End()

	records, err := seasonTeamRecords(ctx, s.matchRepo, s.catalog, season, team)
	if err != nil {
		return nil, err
	}
	return metrics.ComputePossessionResults(records), nil
}

func (s *TeamMetricsService) PointsSeries(ctx context.Context, season, team string) ([]metrics.SeriesPoint, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamMetricsService.PointsSeries")
	defer span.End()

	records, err := seasonTeamRecords(ctx, s.matchRepo, s.catalog, season, team)
	if err != nil {
		return nil, err
	}
	return metrics.CumulativePoints(records), nil
}

func (s *TeamMetricsService) XGSeries(ctx context.Context, season, team string, window int) ([]metrics.RollingPoint, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamMetricsService.XGSeries")
	defer span.End()

	if window <= 0 {
		return nil, fmt.Errorf("%w: rolling window must be greater than zero", ErrInvalidInput)
	}

	records, err := seasonTeamRecords(ctx, s.matchRepo, s.catalog, season, team)
	if err != nil {
		return nil, err
	}
	return metrics.RollingXGGoals(records, window), nil
}

// seasonTeamRecords fetches one team's season. An unknown season is an
// input error, a team with no matches in a known season is not found.
func seasonTeamRecords(ctx context.Context, repo match.Repository, catalog *SeasonCatalog, season, team string) ([]match.Record, error) {
	season = strings.TrimSpace(season)
	team = strings.TrimSpace(team)
	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if team == "" {
		return nil, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}
	if err := catalog.requireSeason(season); err != nil {
		return nil, err
	}

	records, err := repo.ListBySeasonTeam(ctx, season, team)
	if err != nil {
		return nil, fmt.Errorf("list matches season=%s team=%s: %w", season, team, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: team %q has no matches in season %s", ErrNotFound, team, season)
	}
	return records, nil
}
