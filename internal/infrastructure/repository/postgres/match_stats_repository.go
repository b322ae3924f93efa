package postgres

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/matchdaylabs/matchmetrics/internal/domain/match"
	"github.com/matchdaylabs/matchmetrics/internal/domain/rawmatch"
	qb "github.com/matchdaylabs/matchmetrics/internal/platform/querybuilder"
)

// MatchStatsRepository archives raw provider rows in Postgres and serves
// them back as normalized records. The payload column keeps the original
// cell values untouched, so normalization rules can change without a
// re-ingest.
type MatchStatsRepository struct {
	db *sqlx.DB
}

func NewMatchStatsRepository(db *sqlx.DB) *MatchStatsRepository {
	return &MatchStatsRepository{db: db}
}

func (r *MatchStatsRepository) Seasons(ctx context.Context) ([]string, error) {
	query, args, err := qb.Select("DISTINCT season").From("match_stats").
		Where(qb.IsNull("deleted_at")).
		OrderBy("season").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list seasons query: %w", err)
	}

	var seasons []string
	if err := r.db.SelectContext(ctx, &seasons, query, args...); err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return seasons, nil
}

func (r *MatchStatsRepository) Teams(ctx context.Context, season string) ([]string, error) {
	query, args, err := qb.Select("DISTINCT team").From("match_stats").
		Where(
			qb.Eq("season", season),
			qb.IsNull("deleted_at"),
		).
		OrderBy("team").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var teams []string
	if err := r.db.SelectContext(ctx, &teams, query, args...); err != nil {
		return nil, fmt.Errorf("list teams season=%s: %w", season, err)
	}
	return teams, nil
}

func (r *MatchStatsRepository) ListBySeason(ctx context.Context, season string) ([]match.Record, error) {
	rows, err := r.listRawBySeason(ctx, season)
	if err != nil {
		return nil, err
	}

	records, _ := match.Normalize(rows)
	return records, nil
}

func (r *MatchStatsRepository) ListBySeasonTeam(ctx context.Context, season, team string) ([]match.Record, error) {
	records, err := r.ListBySeason(ctx, season)
	if err != nil {
		return nil, err
	}
	return match.FilterTeam(records, team), nil
}

// StoreDataset replaces the live archive with a new load. The previous
// generation is soft deleted, duplicate identities within the batch keep
// their first occurrence.
func (r *MatchStatsRepository) StoreDataset(ctx context.Context, rows []rawmatch.Row, _ []match.Record) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx store match stats: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("match_stats").
		SetExpr("deleted_at", "NOW()").
		Where(qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear match stats query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear match stats: %w", err)
	}

	for _, row := range rows {
		payload, err := sonic.Marshal(row.Values)
		if err != nil {
			return fmt.Errorf("encode match stats payload season=%s team=%s: %w", row.Season, row.Field(rawmatch.ColTeam), err)
		}

		round, _ := rawmatch.ParseNumber(row.Field(rawmatch.ColRound))
		insertModel := matchStatInsertModel{
			Season:  row.Season,
			Team:    row.Field(rawmatch.ColTeam),
			Round:   int(round),
			Payload: string(payload),
		}
		query, args, err := qb.InsertModel("match_stats", insertModel,
			`ON CONFLICT (season, team, round) WHERE deleted_at IS NULL DO NOTHING`)
		if err != nil {
			return fmt.Errorf("build insert match stats query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert match stats season=%s team=%s round=%d: %w", insertModel.Season, insertModel.Team, insertModel.Round, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit store match stats tx: %w", err)
	}
	return nil
}

func (r *MatchStatsRepository) listRawBySeason(ctx context.Context, season string) ([]rawmatch.Row, error) {
	query, args, err := qb.Select("*").From("match_stats").
		Where(
			qb.Eq("season", season),
			qb.IsNull("deleted_at"),
		).
		OrderBy("round", "team", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list match stats query: %w", err)
	}

	var rows []matchStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list match stats season=%s: %w", season, err)
	}

	out := make([]rawmatch.Row, 0, len(rows))
	for _, row := range rows {
		values := make(map[string]string)
		if err := sonic.Unmarshal([]byte(row.Payload), &values); err != nil {
			return nil, fmt.Errorf("decode match stats payload id=%d: %w", row.ID, err)
		}
		out = append(out, rawmatch.Row{Season: row.Season, Values: values})
	}
	return out, nil
}
