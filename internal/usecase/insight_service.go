package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matchdaylabs/matchmetrics/internal/domain/insight"
	"github.com/matchdaylabs/matchmetrics/internal/domain/match"
	"github.com/matchdaylabs/matchmetrics/internal/domain/metrics"
)

type InsightReport struct {
	Season     string
	Team       string
	Comparison string
	Findings   []insight.Finding
}

// InsightService profiles two teams and runs the tactical rule set over
// the pair.
type InsightService struct {
	matchRepo match.Repository
	catalog   *SeasonCatalog
}

func NewInsightService(matchRepo match.Repository, catalog *SeasonCatalog) *InsightService {
	return &InsightService{
		matchRepo: matchRepo,
		catalog:   catalog,
	}
}

func (s *InsightService) Insights(ctx context.Context, season, team, comparison string) (InsightReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InsightService.Insights")
	defer span.End()

	team = strings.TrimSpace(team)
	comparison = strings.TrimSpace(comparison)
	if team != "" && team == comparison {
		return InsightReport{}, fmt.Errorf("%w: comparison team must differ from the subject team", ErrInvalidInput)
	}

	subject, err := s.profile(ctx, season, team)
	if err != nil {
		return InsightReport{}, err
	}
	rival, err := s.profile(ctx, season, comparison)
	if err != nil {
		return InsightReport{}, err
	}

	return InsightReport{
		Season:     strings.TrimSpace(season),
		Team:       team,
		Comparison: comparison,
		Findings:   insight.Evaluate(subject, rival),
	}, nil
}

func (s *InsightService) profile(ctx context.Context, season, team string) (insight.TeamProfile, error) {
	records, err := seasonTeamRecords(ctx, s.matchRepo, s.catalog, season, team)
	if err != nil {
		return insight.TeamProfile{}, err
	}

	return insight.TeamProfile{
		Team:          strings.TrimSpace(team),
		SetPiece:      metrics.ComputeSetPiece(records),
		ShotQuality:   metrics.ComputeShotQuality(records),
		Effectiveness: metrics.ComputePossessionEffectiveness(records),
	}, nil
}
