package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/matchdaylabs/matchmetrics/internal/usecase"
)

func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetInsights")
	defer span.End()

	season := r.PathValue("season")
	team := strings.TrimSpace(r.URL.Query().Get("team"))
	if team == "" {
		team = h.defaults.Team
	}
	comparison := strings.TrimSpace(r.URL.Query().Get("comparison"))
	if comparison == "" {
		comparison = h.defaults.ComparisonTeam
	}

	report, err := h.insightService.Insights(ctx, season, team, comparison)
	if err != nil {
		h.logger.WarnContext(ctx, "insights failed",
			"season", season,
			"team", team,
			"comparison", comparison,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, insightReportToDTO(ctx, report))
}

func insightReportToDTO(ctx context.Context, report usecase.InsightReport) insightReportDTO {
	ctx, span := startSpan(ctx, "httpapi.insightReportToDTO")
	defer span.End()

	out := insightReportDTO{
		Season:     report.Season,
		Team:       report.Team,
		Comparison: report.Comparison,
		Findings:   make([]findingDTO, 0, len(report.Findings)),
	}
	for _, f := range report.Findings {
		out.Findings = append(out.Findings, findingToDTO(f))
	}
	return out
}
