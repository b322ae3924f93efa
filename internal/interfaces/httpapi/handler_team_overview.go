package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/matchdaylabs/matchmetrics/internal/usecase"
)

func (h *Handler) GetSeasonSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonSummary")
	defer span.End()

	season := r.PathValue("season")
	team := r.PathValue("team")
	m, err := h.teamMetricsService.Summary(ctx, season, team)
	if err != nil {
		h.logger.WarnContext(ctx, "season summary failed", "season", season, "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamSummaryDTO{
		Season:  season,
		Team:    team,
		Summary: breakdownPayload(m.Matches, summaryToDTO(ctx, m)),
	})
}

func (h *Handler) GetHomeAway(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHomeAway")
	defer span.End()

	season := r.PathValue("season")
	team := r.PathValue("team")
	m, err := h.teamMetricsService.HomeAway(ctx, season, team)
	if err != nil {
		h.logger.WarnContext(ctx, "home away split failed", "season", season, "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, homeAwayDTO{
		Season: season,
		Team:   team,
		Home:   sideSplitToDTO(m.Home),
		Away:   sideSplitToDTO(m.Away),
	})
}

func (h *Handler) GetForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetForm")
	defer span.End()

	season := r.PathValue("season")
	team := r.PathValue("team")
	window, err := h.windowParam(r)
	if err != nil {
		h.logger.WarnContext(ctx, "form failed", "season", season, "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	m, err := h.teamMetricsService.Form(ctx, season, team, window)
	if err != nil {
		h.logger.WarnContext(ctx, "form failed", "season", season, "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formDTO{
		Season:       season,
		Team:         team,
		Window:       m.Window,
		Matches:      m.Matches,
		Form:         m.FormString,
		Points:       m.Points,
		MaxPoints:    m.MaxPoints,
		Wins:         m.Wins,
		Draws:        m.Draws,
		Losses:       m.Losses,
		GoalsFor:     m.GoalsFor,
		GoalsAgainst: m.GoalsAgainst,
	})
}

func (h *Handler) GetPossessionEffectiveness(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPossessionEffectiveness")
	defer span.End()

	season := r.PathValue("season")
	team := r.PathValue("team")
	m, err := h.teamMetricsService.Effectiveness(ctx, season, team)
	if err != nil {
		h.logger.WarnContext(ctx, "possession effectiveness failed", "season", season, "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamEffectivenessDTO{
		Season:        season,
		Team:          team,
		Effectiveness: breakdownPayload(m.Matches, effectivenessToDTO(ctx, m)),
	})
}

func (h *Handler) GetPossessionResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPossessionResults")
	defer span.End()

	season := r.PathValue("season")
	team := r.PathValue("team")
	rows, err := h.teamMetricsService.PossessionResults(ctx, season, team)
	if err != nil {
		h.logger.WarnContext(ctx, "possession results failed", "season", season, "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, possessionResultsToDTO(ctx, season, team, rows))
}

func (h *Handler) GetPointsSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPointsSeries")
	defer span.End()

	season := r.PathValue("season")
	team := r.PathValue("team")
	points, err := h.teamMetricsService.PointsSeries(ctx, season, team)
	if err != nil {
		h.logger.WarnContext(ctx, "points series failed", "season", season, "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := pointsSeriesDTO{
		Season: season,
		Team:   team,
		Points: make([]seriesPointDTO, 0, len(points)),
	}
	for _, p := range points {
		out.Points = append(out.Points, seriesPointDTO{Round: p.Round, Value: p.Value})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetXGSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetXGSeries")
	defer span.End()

	season := r.PathValue("season")
	team := r.PathValue("team")
	window, err := h.windowParam(r)
	if err != nil {
		h.logger.WarnContext(ctx, "xg series failed", "season", season, "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	points, err := h.teamMetricsService.XGSeries(ctx, season, team, window)
	if err != nil {
		h.logger.WarnContext(ctx, "xg series failed", "season", season, "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := xgSeriesDTO{
		Season: season,
		Team:   team,
		Window: window,
		Points: make([]rollingPointDTO, 0, len(points)),
	}
	for _, p := range points {
		out.Points = append(out.Points, rollingPointDTO{
			Round: p.Round,
			XG:    round2(ctx, p.XG),
			Goals: round2(ctx, p.Goals),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

// windowParam reads the optional ?window=N query parameter, falling back to
// the configured default window.
func (h *Handler) windowParam(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("window"))
	if raw == "" {
		return h.defaults.FormWindow, nil
	}

	window, err := strconv.Atoi(raw)
	if err != nil || window < 1 {
		return 0, fmt.Errorf("%w: window must be a positive integer", usecase.ErrInvalidInput)
	}
	return window, nil
}
