package httpapi

import (
	"net/http"
	"testing"
)

func TestRouterComparisonSummary(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testInternalJobToken)
	rec := doRequest(t, router, http.MethodPost, "/v1/seasons/2024-2025/comparison",
		`{"teams":["Arsenal","Chelsea"]}`)
	requireStatus(t, rec, http.StatusOK)

	data := decodeData(t, rec)
	if data["engine"] != "summary" {
		t.Fatalf("expected summary engine by default: %v", data["engine"])
	}
	teams, _ := data["teams"].([]any)
	if len(teams) != 2 {
		t.Fatalf("unexpected team count: %v", data["teams"])
	}
	first, _ := teams[0].(map[string]any)
	if first["team"] != "Arsenal" {
		t.Fatalf("comparison must keep request order: %v", first)
	}
	metrics, _ := first["metrics"].(map[string]any)
	if points, _ := metrics["total_points"].(float64); points != 4 {
		t.Fatalf("unexpected summary metrics: %v", metrics)
	}
}

func TestRouterComparisonRadar(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testInternalJobToken)
	rec := doRequest(t, router, http.MethodPost, "/v1/seasons/2024-2025/comparison",
		`{"teams":["Arsenal","Chelsea"],"engine":"radar"}`)
	requireStatus(t, rec, http.StatusOK)

	data := decodeData(t, rec)
	teams, _ := data["teams"].([]any)
	if len(teams) != 2 {
		t.Fatalf("unexpected team count: %v", data["teams"])
	}

	axisScore := func(entry map[string]any, axis string) float64 {
		axes, _ := entry["metrics"].([]any)
		for _, raw := range axes {
			a, _ := raw.(map[string]any)
			if a["axis"] == axis {
				score, _ := a["score"].(float64)
				return score
			}
		}
		t.Fatalf("axis %q missing: %v", axis, entry["metrics"])
		return 0
	}

	arsenal, _ := teams[0].(map[string]any)
	chelsea, _ := teams[1].(map[string]any)
	if got := axisScore(arsenal, "goals_per_game"); got != 100 {
		t.Fatalf("best team must score 100 on its axis: got=%v", got)
	}
	if got := axisScore(chelsea, "goals_per_game"); got != 33.3 {
		t.Fatalf("unexpected normalized score: got=%v", got)
	}
}

func TestRouterComparisonValidation(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testInternalJobToken)
	cases := []string{
		`{"teams":["Arsenal"]}`,
		`{"teams":["Arsenal","Chelsea"],"engine":"bogus"}`,
		`{"teams":["Arsenal","Chelsea"],"extra":true}`,
		`not json`,
	}
	for _, payload := range cases {
		rec := doRequest(t, router, http.MethodPost, "/v1/seasons/2024-2025/comparison", payload)
		requireStatus(t, rec, http.StatusBadRequest)
	}
}

func TestRouterInsightsDefaults(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testInternalJobToken)
	rec := doRequest(t, router, http.MethodGet, "/v1/seasons/2024-2025/insights", "")
	requireStatus(t, rec, http.StatusOK)

	data := decodeData(t, rec)
	if data["team"] != "Arsenal" || data["comparison"] != "Chelsea" {
		t.Fatalf("expected configured defaults: %v", data)
	}
	if _, ok := data["findings"].([]any); !ok {
		t.Fatalf("expected findings array: %v", data["findings"])
	}
}

func TestRouterInsightsRejectsSameTeam(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testInternalJobToken)
	rec := doRequest(t, router, http.MethodGet,
		"/v1/seasons/2024-2025/insights?team=Arsenal&comparison=Arsenal", "")
	requireStatus(t, rec, http.StatusBadRequest)
}
