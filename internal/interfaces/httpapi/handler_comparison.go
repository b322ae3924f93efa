package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/matchdaylabs/matchmetrics/internal/domain/metrics"
	"github.com/matchdaylabs/matchmetrics/internal/usecase"
)

func (h *Handler) CompareTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompareTeams")
	defer span.End()

	season := r.PathValue("season")

	var req comparisonRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		err = fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
		h.logger.WarnContext(ctx, "comparison decode failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	if err := h.validateRequest(ctx, req); err != nil {
		h.logger.WarnContext(ctx, "comparison validation failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	engine := req.Engine
	if engine == "" {
		engine = "summary"
	}

	result, err := h.comparisonService.Compare(ctx, usecase.ComparisonInput{
		Season: season,
		Teams:  req.Teams,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "comparison failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, comparisonToDTO(ctx, engine, result))
}

func comparisonToDTO(ctx context.Context, engine string, result usecase.ComparisonResult) comparisonDTO {
	ctx, span := startSpan(ctx, "httpapi.comparisonToDTO")
	defer span.End()

	out := comparisonDTO{
		Season: result.Season,
		Engine: engine,
		Teams:  make([]comparisonTeamDTO, 0, len(result.Teams)),
	}

	if engine == "radar" {
		for i := range result.Teams {
			out.Teams = append(out.Teams, comparisonTeamDTO{
				Team:    result.Teams[i].Team,
				Metrics: radarTeamToDTO(ctx, result.Teams, i),
			})
		}
		return out
	}

	for _, tc := range result.Teams {
		out.Teams = append(out.Teams, comparisonTeamDTO{
			Team:    tc.Team,
			Metrics: comparisonMetricsPayload(ctx, engine, tc),
		})
	}
	return out
}

func comparisonMetricsPayload(ctx context.Context, engine string, tc usecase.TeamComparison) any {
	switch engine {
	case "attacking":
		return attackingToDTO(ctx, tc.Attacking)
	case "defensive":
		return defensiveToDTO(ctx, tc.Defensive)
	case "possession":
		return possessionToDTO(ctx, tc.Possession)
	default:
		return summaryToDTO(ctx, tc.Summary)
	}
}

type radarAxisDTO struct {
	Axis  string  `json:"axis"`
	Value float64 `json:"value"`
	Score float64 `json:"score"`
}

// radarAxisOrder fixes the axis order so every team's polygon lines up.
var radarAxisOrder = []string{
	"goals_per_game",
	"xg_per_game",
	"shots_per_game",
	"shots_on_target_pct",
	"big_chances_per_game",
	"shot_conversion_pct",
}

func radarAxisValue(axis string, m metrics.Attacking) float64 {
	switch axis {
	case "goals_per_game":
		return m.GoalsPerGame
	case "xg_per_game":
		return m.XGPerGame
	case "shots_per_game":
		return m.ShotsPerGame
	case "shots_on_target_pct":
		return m.ShotsOnTargetPct
	case "big_chances_per_game":
		return m.BigChancesPerGame
	case "shot_conversion_pct":
		return m.ShotConversionPct
	default:
		return 0
	}
}

// radarTeamToDTO scores one team against the best value per axis across the
// whole comparison, 0 to 100.
func radarTeamToDTO(ctx context.Context, teams []usecase.TeamComparison, idx int) []radarAxisDTO {
	ctx, span := startSpan(ctx, "httpapi.radarTeamToDTO")
	defer span.End()

	out := make([]radarAxisDTO, 0, len(radarAxisOrder))
	for _, axis := range radarAxisOrder {
		max := 0.0
		for _, tc := range teams {
			if v := radarAxisValue(axis, tc.Attacking); v > max {
				max = v
			}
		}

		value := radarAxisValue(axis, teams[idx].Attacking)
		score := 0.0
		if max > 0 {
			score = round1(ctx, value/max*100)
		}
		out = append(out, radarAxisDTO{
			Axis:  axis,
			Value: round2(ctx, value),
			Score: score,
		})
	}
	return out
}
