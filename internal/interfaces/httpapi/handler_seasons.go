package httpapi

import "net/http"

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	seasons, err := h.teamMetricsService.ListSeasons(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonListToDTO(ctx, seasons, h.defaults))
}

func (h *Handler) ListSeasonTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonTeams")
	defer span.End()

	season := r.PathValue("season")
	teams, err := h.teamMetricsService.ListTeams(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list season teams failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamListDTO{Season: season, Teams: teams})
}
