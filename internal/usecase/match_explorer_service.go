package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matchdaylabs/matchmetrics/internal/domain/match"
)

// MatchSummary is one row of a team's season, labelled for listing.
type MatchSummary struct {
	Round    int
	Label    string
	Match    string
	Opponent string
	Side     match.Side
	Score    string
	Date     *time.Time
	Points   int
	Result   string
}

// MatchDetail is one match with its opponent mirror row and the
// surrounding stretch of the team's season.
type MatchDetail struct {
	Match    match.Record
	Opponent *match.Record
	Context  []MatchSummary
}

const (
	matchContextBefore = 2
	matchContextAfter  = 3
)

type MatchExplorerService struct {
	matchRepo match.Repository
	catalog   *SeasonCatalog
}

func NewMatchExplorerService(matchRepo match.Repository, catalog *SeasonCatalog) *MatchExplorerService {
	return &MatchExplorerService{
		matchRepo: matchRepo,
		catalog:   catalog,
	}
}

func (s *MatchExplorerService) ListMatches(ctx context.Context, season, team string) ([]MatchSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchExplorerService.ListMatches")
	defer span.End()

	records, err := seasonTeamRecords(ctx, s.matchRepo, s.catalog, season, team)
	if err != nil {
		return nil, err
	}

	out := make([]MatchSummary, 0, len(records))
	for _, rec := range records {
		out = append(out, matchSummaryFromRecord(rec))
	}
	return out, nil
}

func (s *MatchExplorerService) MatchDetail(ctx context.Context, season, team string, round int) (MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchExplorerService.MatchDetail")
	defer span.End()

	records, err := seasonTeamRecords(ctx, s.matchRepo, s.catalog, season, team)
	if err != nil {
		return MatchDetail{}, err
	}

	idx := -1
	for i, rec := range records {
		if rec.Round == round {
			idx = i
			break
		}
	}
	if idx < 0 {
		return MatchDetail{}, fmt.Errorf("%w: team %q has no match in round %d of season %s", ErrNotFound, strings.TrimSpace(team), round, strings.TrimSpace(season))
	}
	selected := records[idx]

	seasonRecords, err := s.matchRepo.ListBySeason(ctx, selected.Season)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("list matches season=%s: %w", selected.Season, err)
	}

	detail := MatchDetail{Match: selected}
	if mirror, ok := match.OpponentRow(seasonRecords, selected); ok {
		detail.Opponent = &mirror
	}

	from := idx - matchContextBefore
	if from < 0 {
		from = 0
	}
	to := idx + matchContextAfter + 1
	if to > len(records) {
		to = len(records)
	}
	detail.Context = make([]MatchSummary, 0, to-from)
	for _, rec := range records[from:to] {
		detail.Context = append(detail.Context, matchSummaryFromRecord(rec))
	}

	return detail, nil
}

func matchSummaryFromRecord(rec match.Record) MatchSummary {
	return MatchSummary{
		Round:    rec.Round,
		Label:    fmt.Sprintf("R%d (%s) - %s", rec.Round, rec.Season, rec.Match),
		Match:    rec.Match,
		Opponent: rec.Opponent,
		Side:     rec.Side,
		Score:    rec.Score,
		Date:     rec.Date,
		Points:   rec.Points,
		Result:   rec.FormLetter(),
	}
}
