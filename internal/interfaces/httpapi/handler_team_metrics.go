package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/matchdaylabs/matchmetrics/internal/usecase"
)

// GetTeamMetrics serves the per-engine metric breakdowns. The engine is part
// of the path so every breakdown shares one route shape.
func (h *Handler) GetTeamMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamMetrics")
	defer span.End()

	season := r.PathValue("season")
	team := r.PathValue("team")
	engine := r.PathValue("engine")

	payload, err := h.teamMetricsPayload(ctx, season, team, engine)
	if err != nil {
		h.logger.WarnContext(ctx, "team metrics failed",
			"season", season,
			"team", team,
			"engine", engine,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamMetricsDTO{
		Season:  season,
		Team:    team,
		Engine:  engine,
		Metrics: payload,
	})
}

func (h *Handler) teamMetricsPayload(ctx context.Context, season, team, engine string) (any, error) {
	switch engine {
	case "attacking":
		m, err := h.teamMetricsService.Attacking(ctx, season, team)
		if err != nil {
			return nil, err
		}
		return attackingToDTO(ctx, m), nil
	case "defensive":
		m, err := h.teamMetricsService.Defensive(ctx, season, team)
		if err != nil {
			return nil, err
		}
		return defensiveToDTO(ctx, m), nil
	case "possession":
		m, err := h.teamMetricsService.Possession(ctx, season, team)
		if err != nil {
			return nil, err
		}
		return possessionToDTO(ctx, m), nil
	case "set-pieces":
		m, err := h.teamMetricsService.SetPiece(ctx, season, team)
		if err != nil {
			return nil, err
		}
		return breakdownPayload(m.Matches, setPieceToDTO(ctx, m)), nil
	case "shot-quality":
		m, err := h.teamMetricsService.ShotQuality(ctx, season, team)
		if err != nil {
			return nil, err
		}
		return breakdownPayload(m.Matches, shotQualityToDTO(ctx, m)), nil
	case "shot-outcomes":
		m, err := h.teamMetricsService.ShotOutcomes(ctx, season, team)
		if err != nil {
			return nil, err
		}
		return breakdownPayload(m.Matches, shotOutcomesToDTO(ctx, m)), nil
	default:
		return nil, fmt.Errorf("%w: unknown metrics engine %q", usecase.ErrInvalidInput, engine)
	}
}
