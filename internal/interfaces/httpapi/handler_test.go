package httpapi

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/matchdaylabs/matchmetrics/internal/domain/match"
	"github.com/matchdaylabs/matchmetrics/internal/domain/rawmatch"
	"github.com/matchdaylabs/matchmetrics/internal/infrastructure/repository/memory"
	"github.com/matchdaylabs/matchmetrics/internal/infrastructure/seasonfile"
	idgen "github.com/matchdaylabs/matchmetrics/internal/platform/id"
	"github.com/matchdaylabs/matchmetrics/internal/platform/logging"
	"github.com/matchdaylabs/matchmetrics/internal/usecase"
)

const testInternalJobToken = "test-job-token"

func seedRecord(team, opponent string, round int, side match.Side, gf, ga int) match.Record {
	points := 0
	switch {
	case gf > ga:
		points = 3
	case gf == ga:
		points = 1
	}

	date := time.Date(2024, time.August, 10+round, 15, 0, 0, 0, time.UTC)
	home, away := team, opponent
	if side == match.SideAway {
		home, away = opponent, team
	}

	return match.Record{
		Season:            "2024-2025",
		Team:              team,
		Opponent:          opponent,
		Side:              side,
		Round:             round,
		Match:             home + " - " + away,
		Score:             fmt.Sprintf("%d-%d", gf, ga),
		Date:              &date,
		Points:            points,
		GoalsScored:       gf,
		GoalsConceded:     ga,
		PossessionPct:     55,
		ExpectedGoals:     1.8,
		XGOpenPlay:        1.2,
		XGSetPlay:         0.6,
		XGOnTarget:        1.1,
		TotalShots:        14,
		ShotsOnTarget:     6,
		ShotsOffTarget:    5,
		ShotsInsideBox:    9,
		BigChances:        3,
		BigChancesMissed:  1,
		Passes:            520,
		AccuratePassesPct: 86,
		Corners:           6,
		TouchesInBox:      24,
		Tackles:           15,
		Interceptions:     9,
		Blocks:            4,
		Clearances:        18,
		KeeperSaves:       3,
		DuelsWonPct:       51,
		IsWin:             gf > ga,
		IsDraw:            gf == ga,
		IsCleanSheet:      ga == 0,
	}
}

// seedRecords is a two-team mini season: Arsenal beat Chelsea 2-0 in round
// one and drew 1-1 away in round two.
func seedRecords() []match.Record {
	return []match.Record{
		seedRecord("Arsenal", "Chelsea", 1, match.SideHome, 2, 0),
		seedRecord("Chelsea", "Arsenal", 1, match.SideAway, 0, 2),
		seedRecord("Arsenal", "Chelsea", 2, match.SideAway, 1, 1),
		seedRecord("Chelsea", "Arsenal", 2, match.SideHome, 1, 1),
	}
}

func writeSeasonCSV(t *testing.T, dir, name string, teams []string) {
	t.Helper()

	header := rawmatch.RequiredColumns()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		t.Fatalf("write header: %v", err)
	}
	for i, team := range teams {
		record := make([]string, len(header))
		for idx, col := range header {
			switch col {
			case rawmatch.ColTeam:
				record[idx] = team
			case rawmatch.ColRound:
				record[idx] = "1"
			case rawmatch.ColPoints:
				record[idx] = "3"
			case rawmatch.ColGoalScored:
				record[idx] = "2"
			case rawmatch.ColGoalConceded:
				record[idx] = "0"
			case rawmatch.ColOpponent:
				record[idx] = teams[(i+1)%len(teams)]
			}
		}
		if err := w.Write(record); err != nil {
			t.Fatalf("write row: %v", err)
		}
	}
	w.Flush()

	if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write season file: %v", err)
	}
}

func newTestRouter(t *testing.T, internalJobToken string) http.Handler {
	t.Helper()

	repo := memory.NewMatchRepository()
	repo.Replace(context.Background(), seedRecords())

	dir := t.TempDir()
	writeSeasonCSV(t, dir, "2024-2025.csv", []string{"Arsenal", "Chelsea"})
	store, err := seasonfile.NewStore(dir, map[string]string{"2024-2025": "2024-2025.csv"})
	if err != nil {
		t.Fatalf("new season store: %v", err)
	}

	catalog := usecase.NewSeasonCatalog(
		[]string{"2024-2025"},
		map[string]string{"2024-2025": "Arsenal"},
	)
	defaults := Defaults{
		Season:         "2024-2025",
		Team:           "Arsenal",
		ComparisonTeam: "Chelsea",
		FormWindow:     5,
	}
	handler := NewHandler(
		usecase.NewTeamMetricsService(repo, catalog),
		usecase.NewStandingsService(repo, catalog),
		usecase.NewComparisonService(repo, catalog),
		usecase.NewInsightService(repo, catalog),
		usecase.NewMatchExplorerService(repo, catalog),
		usecase.NewDatasetService(store, []usecase.DatasetSink{repo}, nil, idgen.NewRandomGenerator()),
		catalog,
		defaults,
		logging.NewNop(),
	)

	return NewRouter(handler, logging.NewNop(), false, []string{"*"}, internalJobToken)
}

func doRequest(t *testing.T, router http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func newReloadRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/internal/dataset/reload", nil)
	if token != "" {
		req.Header.Set("X-Internal-Job-Token", token)
	}
	return req
}

func serveRequest(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		APIVersion string         `json:"apiVersion"`
		Data       map[string]any `json:"data"`
		Error      map[string]any `json:"error"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if envelope.APIVersion != "2.0" {
		t.Fatalf("unexpected apiVersion: %q", envelope.APIVersion)
	}
	if envelope.Error != nil {
		t.Fatalf("unexpected error payload: %v", envelope.Error)
	}
	return envelope.Data
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()

	if rec.Code != want {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, want, rec.Body.String())
	}
}

func TestRouterListSeasons(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testInternalJobToken)
	rec := doRequest(t, router, http.MethodGet, "/v1/seasons", "")
	requireStatus(t, rec, http.StatusOK)

	data := decodeData(t, rec)
	seasons, _ := data["seasons"].([]any)
	if len(seasons) != 1 {
		t.Fatalf("unexpected seasons: %v", data["seasons"])
	}
	first, _ := seasons[0].(map[string]any)
	if first["season"] != "2024-2025" || first["league_winner"] != "Arsenal" {
		t.Fatalf("unexpected season entry: %v", first)
	}

	defaults, _ := data["defaults"].(map[string]any)
	if defaults["team"] != "Arsenal" || defaults["comparison_team"] != "Chelsea" {
		t.Fatalf("unexpected defaults: %v", defaults)
	}
	if window, _ := defaults["form_window"].(float64); window != 5 {
		t.Fatalf("unexpected form window: %v", defaults["form_window"])
	}
}

func TestRouterListSeasonTeams(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testInternalJobToken)
	rec := doRequest(t, router, http.MethodGet, "/v1/seasons/2024-2025/teams", "")
	requireStatus(t, rec, http.StatusOK)

	data := decodeData(t, rec)
	teams, _ := data["teams"].([]any)
	if len(teams) != 2 || teams[0] != "Arsenal" || teams[1] != "Chelsea" {
		t.Fatalf("unexpected teams: %v", data["teams"])
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/seasons/1999-2000/teams", "")
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestRouterStandings(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testInternalJobToken)
	rec := doRequest(t, router, http.MethodGet, "/v1/seasons/2024-2025/standings", "")
	requireStatus(t, rec, http.StatusOK)

	data := decodeData(t, rec)
	rows, _ := data["rows"].([]any)
	if len(rows) != 2 {
		t.Fatalf("unexpected row count: %v", data["rows"])
	}
	top, _ := rows[0].(map[string]any)
	if top["team"] != "Arsenal" {
		t.Fatalf("unexpected leader: %v", top)
	}
	if points, _ := top["points"].(float64); points != 4 {
		t.Fatalf("unexpected leader points: %v", top["points"])
	}
	if champion, _ := top["is_champion"].(bool); !champion {
		t.Fatalf("expected configured winner to be flagged: %v", top)
	}
	second, _ := rows[1].(map[string]any)
	if champion, _ := second["is_champion"].(bool); champion {
		t.Fatalf("runner-up must not be flagged champion: %v", second)
	}
}

func TestRouterStandingsCSVExport(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testInternalJobToken)
	for _, target := range []string{
		"/v1/seasons/2024-2025/standings/export",
		"/v1/seasons/2024-2025/standings?export=csv",
	} {
		rec := doRequest(t, router, http.MethodGet, target, "")
		requireStatus(t, rec, http.StatusOK)

		if got := rec.Header().Get("Content-Type"); got != "text/csv; charset=utf-8" {
			t.Fatalf("unexpected content type for %s: %q", target, got)
		}
		if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "standings_2024-2025.csv") {
			t.Fatalf("unexpected content disposition for %s: %q", target, got)
		}

		lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("unexpected csv line count for %s: %v", target, lines)
		}
		if lines[0] != "position,team,played,wins,draws,losses,goals_for,goals_against,goal_difference,points" {
			t.Fatalf("unexpected csv header: %q", lines[0])
		}
		if !strings.HasPrefix(lines[1], "1,Arsenal,") {
			t.Fatalf("unexpected first csv row: %q", lines[1])
		}
	}
}

func TestRouterTeamMetricsEngines(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testInternalJobToken)
	engines := []string{"attacking", "defensive", "possession", "set-pieces", "shot-quality", "shot-outcomes"}
	for _, engine := range engines {
		rec := doRequest(t, router, http.MethodGet, "/v1/seasons/2024-2025/teams/Arsenal/metrics/"+engine, "")
		requireStatus(t, rec, http.StatusOK)

		data := decodeData(t, rec)
		if data["engine"] != engine || data["team"] != "Arsenal" {
			t.Fatalf("unexpected payload for engine %s: %v", engine, data)
		}
		metrics, _ := data["metrics"].(map[string]any)
		if matches, _ := metrics["matches"].(float64); matches != 2 {
			t.Fatalf("unexpected match count for engine %s: %v", engine, metrics["matches"])
		}
	}
}

func TestRouterTeamMetricsRejectsUnknownEngine(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testInternalJobToken)
	rec := doRequest(t, router, http.MethodGet, "/v1/seasons/2024-2025/teams/Arsenal/metrics/passing", "")
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestRouterTeamMetricsUnknownTeam(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testInternalJobToken)
	rec := doRequest(t, router, http.MethodGet, "/v1/seasons/2024-2025/teams/Sunderland/metrics/attacking", "")
	requireStatus(t, rec, http.StatusNotFound)
}

func TestRouterSeasonSummary(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testInternalJobToken)
	rec := doRequest(t, router, http.MethodGet, "/v1/seasons/2024-2025/teams/Arsenal/summary", "")
	requireStatus(t, rec, http.StatusOK)

	data := decodeData(t, rec)
	summary, _ := data["summary"].(map[string]any)
	if wins, _ := summary["wins"].(float64); wins != 1 {
		t.Fatalf("unexpected wins: %v", summary["wins"])
	}
	if points, _ := summary["total_points"].(float64); points != 4 {
		t.Fatalf("unexpected points: %v", summary["total_points"])
	}
}

func TestRouterHomeAway(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testInternalJobToken)
	rec := doRequest(t, router, http.MethodGet, "/v1/seasons/2024-2025/teams/Arsenal/home-away", "")
	requireStatus(t, rec, http.StatusOK)

	data := decodeData(t, rec)
	home, _ := data["home"].(map[string]any)
	away, _ := data["away"].(map[string]any)
	if wins, _ := home["wins"].(float64); wins != 1 {
		t.Fatalf("unexpected home wins: %v", home)
	}
	if draws, _ := away["draws"].(float64); draws != 1 {
		t.Fatalf("unexpected away draws: %v", away)
	}
}

func TestRouterForm(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testInternalJobToken)
	rec := doRequest(t, router, http.MethodGet, "/v1/seasons/2024-2025/teams/Arsenal/form", "")
	requireStatus(t, rec, http.StatusOK)

	data := decodeData(t, rec)
	if data["form"] != "WD" {
		t.Fatalf("unexpected form string: %v", data["form"])
	}
	if points, _ := data["points"].(float64); points != 4 {
		t.Fatalf("unexpected form points: %v", data["points"])
	}

	for _, target := range []string{
		"/v1/seasons/2024-2025/teams/Arsenal/form?window=abc",
		"/v1/seasons/2024-2025/teams/Arsenal/form?window=0",
	} {
		rec := doRequest(t, router, http.MethodGet, target, "")
		requireStatus(t, rec, http.StatusBadRequest)
	}
}

func TestRouterSeries(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testInternalJobToken)
	rec := doRequest(t, router, http.MethodGet, "/v1/seasons/2024-2025/teams/Arsenal/series/points", "")
	requireStatus(t, rec, http.StatusOK)

	data := decodeData(t, rec)
	points, _ := data["points"].([]any)
	if len(points) != 2 {
		t.Fatalf("unexpected points series: %v", data["points"])
	}
	last, _ := points[1].(map[string]any)
	if value, _ := last["value"].(float64); value != 4 {
		t.Fatalf("unexpected cumulative points: %v", last)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/seasons/2024-2025/teams/Arsenal/series/xg?window=2", "")
	requireStatus(t, rec, http.StatusOK)

	data = decodeData(t, rec)
	if window, _ := data["window"].(float64); window != 2 {
		t.Fatalf("unexpected window: %v", data["window"])
	}
	xg, _ := data["points"].([]any)
	if len(xg) != 2 {
		t.Fatalf("unexpected xg series: %v", data["points"])
	}
	first, _ := xg[0].(map[string]any)
	if value, _ := first["xg"].(float64); value != 1.8 {
		t.Fatalf("unexpected rolling xg: %v", first)
	}
}

func TestRouterMatches(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testInternalJobToken)
	rec := doRequest(t, router, http.MethodGet, "/v1/seasons/2024-2025/teams/Arsenal/matches", "")
	requireStatus(t, rec, http.StatusOK)

	data := decodeData(t, rec)
	matches, _ := data["matches"].([]any)
	if len(matches) != 2 {
		t.Fatalf("unexpected match count: %v", data["matches"])
	}
	first, _ := matches[0].(map[string]any)
	if first["result"] != "W" || first["opponent"] != "Chelsea" {
		t.Fatalf("unexpected first match: %v", first)
	}
}

func TestRouterMatchDetail(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, testInternalJobToken)
	rec := doRequest(t, router, http.MethodGet, "/v1/seasons/2024-2025/teams/Arsenal/matches/1", "")
	requireStatus(t, rec, http.StatusOK)

	data := decodeData(t, rec)
	detail, _ := data["match"].(map[string]any)
	if round, _ := detail["round"].(float64); round != 1 {
		t.Fatalf("unexpected round: %v", detail)
	}
	opponent, _ := data["opponent"].(map[string]any)
	if opponent["score"] != "0-2" {
		t.Fatalf("expected opponent mirror row: %v", data["opponent"])
	}
	contextRows, _ := data["context"].([]any)
	if len(contextRows) != 2 {
		t.Fatalf("unexpected context window: %v", data["context"])
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/seasons/2024-2025/teams/Arsenal/matches/99", "")
	requireStatus(t, rec, http.StatusNotFound)

	rec = doRequest(t, router, http.MethodGet, "/v1/seasons/2024-2025/teams/Arsenal/matches/first", "")
	requireStatus(t, rec, http.StatusBadRequest)
}
