package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
)

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	if strings.EqualFold(r.URL.Query().Get("export"), "csv") {
		h.ExportStandings(w, r)
		return
	}

	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	season := r.PathValue("season")
	rows, err := h.standingsService.Standings(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "standings failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	champion, _ := h.catalog.Winner(season)
	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(ctx, season, rows, champion))
}

func (h *Handler) ExportStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportStandings")
	defer span.End()

	season := r.PathValue("season")
	rows, err := h.standingsService.Standings(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "standings export failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString("position,team,played,wins,draws,losses,goals_for,goals_against,goal_difference,points\n")
	for _, row := range rows {
		fields := []string{
			strconv.Itoa(row.Position),
			csvField(row.Team),
			strconv.Itoa(row.Played),
			strconv.Itoa(row.Wins),
			strconv.Itoa(row.Draws),
			strconv.Itoa(row.Losses),
			strconv.Itoa(row.GoalsFor),
			strconv.Itoa(row.GoalsAgainst),
			strconv.Itoa(row.GoalDifference),
			strconv.Itoa(row.Points),
		}
		buf.WriteString(strings.Join(fields, ","))
		buf.WriteByte('\n')
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("standings_%s.csv", season)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.WarnContext(ctx, "standings export write failed", "season", season, "error", err)
	}
}

func csvField(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
}
