package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/matchdaylabs/matchmetrics/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	season := r.PathValue("season")
	team := r.PathValue("team")
	matches, err := h.matchExplorerService.ListMatches(ctx, season, team)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "season", season, "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := matchListDTO{
		Season:  season,
		Team:    team,
		Matches: make([]matchSummaryDTO, 0, len(matches)),
	}
	for _, m := range matches {
		out.Matches = append(out.Matches, matchSummaryToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	season := r.PathValue("season")
	team := r.PathValue("team")
	round, err := strconv.Atoi(r.PathValue("round"))
	if err != nil {
		err = fmt.Errorf("%w: round must be an integer", usecase.ErrInvalidInput)
		h.logger.WarnContext(ctx, "match detail failed", "season", season, "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	detail, err := h.matchExplorerService.MatchDetail(ctx, season, team, round)
	if err != nil {
		h.logger.WarnContext(ctx, "match detail failed",
			"season", season,
			"team", team,
			"round", round,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	out := matchDetailDTO{
		Season:  season,
		Team:    team,
		Match:   matchStatsToDTO(ctx, detail.Match),
		Context: make([]matchSummaryDTO, 0, len(detail.Context)),
	}
	if detail.Opponent != nil {
		opponent := matchStatsToDTO(ctx, *detail.Opponent)
		out.Opponent = &opponent
	}
	for _, m := range detail.Context {
		out.Context = append(out.Context, matchSummaryToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
