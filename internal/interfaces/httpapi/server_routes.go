package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/{season}/teams", handler.ListSeasonTeams)
	mux.HandleFunc("GET /v1/seasons/{season}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/seasons/{season}/standings/export", handler.ExportStandings)
	mux.HandleFunc("GET /v1/seasons/{season}/teams/{team}/metrics/{engine}", handler.GetTeamMetrics)
	mux.HandleFunc("GET /v1/seasons/{season}/teams/{team}/summary", handler.GetSeasonSummary)
	mux.HandleFunc("GET /v1/seasons/{season}/teams/{team}/home-away", handler.GetHomeAway)
	mux.HandleFunc("GET /v1/seasons/{season}/teams/{team}/form", handler.GetForm)
	mux.HandleFunc("GET /v1/seasons/{season}/teams/{team}/possession-effectiveness", handler.GetPossessionEffectiveness)
	mux.HandleFunc("GET /v1/seasons/{season}/teams/{team}/possession-results", handler.GetPossessionResults)
	mux.HandleFunc("GET /v1/seasons/{season}/teams/{team}/series/points", handler.GetPointsSeries)
	mux.HandleFunc("GET /v1/seasons/{season}/teams/{team}/series/xg", handler.GetXGSeries)
	mux.HandleFunc("GET /v1/seasons/{season}/teams/{team}/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/seasons/{season}/teams/{team}/matches/{round}", handler.GetMatch)
	mux.HandleFunc("POST /v1/seasons/{season}/comparison", handler.CompareTeams)
	mux.HandleFunc("GET /v1/seasons/{season}/insights", handler.GetInsights)
	mux.HandleFunc("GET /v1/dataset/health", handler.GetDatasetHealth)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/dataset/reload", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ReloadDataset)))
}
