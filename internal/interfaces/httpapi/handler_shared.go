package httpapi

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/matchdaylabs/matchmetrics/internal/domain/insight"
	"github.com/matchdaylabs/matchmetrics/internal/domain/match"
	"github.com/matchdaylabs/matchmetrics/internal/domain/metrics"
	"github.com/matchdaylabs/matchmetrics/internal/domain/standings"
	"github.com/matchdaylabs/matchmetrics/internal/platform/logging"
	"github.com/matchdaylabs/matchmetrics/internal/usecase"
)

// Defaults are the fallback selections applied when a request omits an
// optional team, comparison team or window parameter.
type Defaults struct {
	Season         string
	Team           string
	ComparisonTeam string
	FormWindow     int
}

type Handler struct {
	teamMetricsService   *usecase.TeamMetricsService
	standingsService     *usecase.StandingsService
	comparisonService    *usecase.ComparisonService
	insightService       *usecase.InsightService
	matchExplorerService *usecase.MatchExplorerService
	datasetService       *usecase.DatasetService
	catalog              *usecase.SeasonCatalog
	defaults             Defaults
	logger               *logging.Logger
	validator            *validator.Validate
}

func NewHandler(
	teamMetricsService *usecase.TeamMetricsService,
	standingsService *usecase.StandingsService,
	comparisonService *usecase.ComparisonService,
	insightService *usecase.InsightService,
	matchExplorerService *usecase.MatchExplorerService,
	datasetService *usecase.DatasetService,
	catalog *usecase.SeasonCatalog,
	defaults Defaults,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamMetricsService:   teamMetricsService,
		standingsService:     standingsService,
		comparisonService:    comparisonService,
		insightService:       insightService,
		matchExplorerService: matchExplorerService,
		datasetService:       datasetService,
		catalog:              catalog,
		defaults:             defaults,
		logger:               logger,
		validator:            validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type comparisonRequest struct {
	Teams  []string `json:"teams" validate:"required,min=2,max=8,dive,required"`
	Engine string   `json:"engine" validate:"omitempty,oneof=summary attacking defensive possession radar"`
}

type seasonDTO struct {
	Season       string `json:"season"`
	LeagueWinner string `json:"league_winner,omitempty"`
}

type seasonDefaultsDTO struct {
	Season         string `json:"season"`
	Team           string `json:"team"`
	ComparisonTeam string `json:"comparison_team"`
	FormWindow     int    `json:"form_window"`
}

type seasonListDTO struct {
	Seasons  []seasonDTO       `json:"seasons"`
	Defaults seasonDefaultsDTO `json:"defaults"`
}

type teamListDTO struct {
	Season string   `json:"season"`
	Teams  []string `json:"teams"`
}

type standingRowDTO struct {
	Position       int    `json:"position"`
	Team           string `json:"team"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
	IsChampion     bool   `json:"is_champion"`
}

type standingsDTO struct {
	Season string           `json:"season"`
	Rows   []standingRowDTO `json:"rows"`
}

type attackingDTO struct {
	Matches                  int     `json:"matches"`
	TotalGoals               int     `json:"total_goals"`
	TotalShots               int     `json:"total_shots"`
	TotalShotsOnTarget       int     `json:"total_shots_on_target"`
	TotalBigChances          int     `json:"total_big_chances"`
	TotalBigChancesMissed    int     `json:"total_big_chances_missed"`
	TotalXG                  float64 `json:"total_xg"`
	GoalsPerGame             float64 `json:"goals_per_game"`
	XGPerGame                float64 `json:"xg_per_game"`
	XGOverperformance        float64 `json:"xg_overperformance"`
	XGOverperformancePerGame float64 `json:"xg_overperformance_per_game"`
	ShotsPerGame             float64 `json:"shots_per_game"`
	ShotsOnTargetPerGame     float64 `json:"shots_on_target_per_game"`
	BigChancesPerGame        float64 `json:"big_chances_per_game"`
	XGOTPerGame              float64 `json:"xgot_per_game"`
	ShotConversionPct        float64 `json:"shot_conversion_pct"`
	ShotsOnTargetPct         float64 `json:"shots_on_target_pct"`
	BigChanceConversionPct   float64 `json:"big_chance_conversion_pct"`
	ShotsInsideBoxPct        float64 `json:"shots_inside_box_pct"`
}

type defensiveDTO struct {
	Matches                 int     `json:"matches"`
	TotalConceded           int     `json:"total_conceded"`
	ConcededPerGame         float64 `json:"conceded_per_game"`
	CleanSheets             int     `json:"clean_sheets"`
	CleanSheetPct           float64 `json:"clean_sheet_pct"`
	TacklesPerGame          float64 `json:"tackles_per_game"`
	InterceptionsPerGame    float64 `json:"interceptions_per_game"`
	BlocksPerGame           float64 `json:"blocks_per_game"`
	ClearancesPerGame       float64 `json:"clearances_per_game"`
	DefensiveActionsPerGame float64 `json:"defensive_actions_per_game"`
	SavesPerGame            float64 `json:"saves_per_game"`
	DuelsWonPct             float64 `json:"duels_won_pct"`
	TotalTackles            int     `json:"total_tackles"`
	TotalInterceptions      int     `json:"total_interceptions"`
	TotalBlocks             int     `json:"total_blocks"`
	TotalClearances         int     `json:"total_clearances"`
	TotalSaves              int     `json:"total_saves"`
}

type possessionDTO struct {
	Matches               int     `json:"matches"`
	AvgPossessionPct      float64 `json:"avg_possession_pct"`
	TotalPasses           int     `json:"total_passes"`
	PassesPerGame         float64 `json:"passes_per_game"`
	PassAccuracyPct       float64 `json:"pass_accuracy_pct"`
	OppositionHalfPerGame float64 `json:"opposition_half_per_game"`
	OwnHalfPerGame        float64 `json:"own_half_per_game"`
	LongBallAccuracyPct   float64 `json:"long_ball_accuracy_pct"`
	CrossAccuracyPct      float64 `json:"cross_accuracy_pct"`
	TouchesInBoxPerGame   float64 `json:"touches_in_box_per_game"`
	CornersPerGame        float64 `json:"corners_per_game"`
	DribblesPerGame       float64 `json:"dribbles_per_game"`
}

type setPieceDTO struct {
	Matches           int     `json:"matches"`
	SetPieceXG        float64 `json:"set_piece_xg"`
	OpenPlayXG        float64 `json:"open_play_xg"`
	SetPieceXGPct     float64 `json:"set_piece_xg_pct"`
	OpenPlayXGPct     float64 `json:"open_play_xg_pct"`
	SetPieceXGPerGame float64 `json:"set_piece_xg_per_game"`
	OpenPlayXGPerGame float64 `json:"open_play_xg_per_game"`
	TotalCorners      int     `json:"total_corners"`
	CornersPerGame    float64 `json:"corners_per_game"`
	XGPerCorner       float64 `json:"xg_per_corner"`
}

type shotQualityDTO struct {
	Matches               int     `json:"matches"`
	AvgXGPerShot          float64 `json:"avg_xg_per_shot"`
	WoodworkHits          int     `json:"woodwork_hits"`
	WoodworkRate          float64 `json:"woodwork_rate"`
	BlockedShots          int     `json:"blocked_shots"`
	BlockedRate           float64 `json:"blocked_rate"`
	OffTarget             int     `json:"off_target"`
	OffTargetRate         float64 `json:"off_target_rate"`
	OnTargetRate          float64 `json:"on_target_rate"`
	GoalRate              float64 `json:"goal_rate"`
	EstimatedUnluckyGoals float64 `json:"estimated_unlucky_goals"`
}

type shotOutcomeDTO struct {
	Outcome string  `json:"outcome"`
	Count   int     `json:"count"`
	Pct     float64 `json:"pct"`
}

type shotOutcomesDTO struct {
	Matches    int              `json:"matches"`
	TotalShots int              `json:"total_shots"`
	Outcomes   []shotOutcomeDTO `json:"outcomes"`
}

type teamMetricsDTO struct {
	Season  string `json:"season"`
	Team    string `json:"team"`
	Engine  string `json:"engine"`
	Metrics any    `json:"metrics"`
}

type summaryDTO struct {
	Matches          int     `json:"matches"`
	Wins             int     `json:"wins"`
	Draws            int     `json:"draws"`
	Losses           int     `json:"losses"`
	HomeWins         int     `json:"home_wins"`
	AwayWins         int     `json:"away_wins"`
	TotalPoints      int     `json:"total_points"`
	PointsPerGame    float64 `json:"points_per_game"`
	WinPct           float64 `json:"win_pct"`
	GoalsScored      int     `json:"goals_scored"`
	GoalsConceded    int     `json:"goals_conceded"`
	GoalDifference   int     `json:"goal_difference"`
	GoalsPerGame     float64 `json:"goals_per_game"`
	ConcededPerGame  float64 `json:"conceded_per_game"`
	CleanSheets      int     `json:"clean_sheets"`
	CleanSheetPct    float64 `json:"clean_sheet_pct"`
	AvgPossessionPct float64 `json:"avg_possession_pct"`
	TotalXG          float64 `json:"total_xg"`
	XGPerGame        float64 `json:"xg_per_game"`
}

type teamSummaryDTO struct {
	Season  string `json:"season"`
	Team    string `json:"team"`
	Summary any    `json:"summary"`
}

type sideSplitDTO struct {
	Matches          int     `json:"matches"`
	Wins             int     `json:"wins"`
	Draws            int     `json:"draws"`
	Losses           int     `json:"losses"`
	Points           int     `json:"points"`
	PointsPerGame    float64 `json:"points_per_game"`
	GoalsFor         int     `json:"goals_for"`
	GoalsAgainst     int     `json:"goals_against"`
	CleanSheets      int     `json:"clean_sheets"`
	AvgPossessionPct float64 `json:"avg_possession_pct"`
}

type homeAwayDTO struct {
	Season string       `json:"season"`
	Team   string       `json:"team"`
	Home   sideSplitDTO `json:"home"`
	Away   sideSplitDTO `json:"away"`
}

type formDTO struct {
	Season       string `json:"season"`
	Team         string `json:"team"`
	Window       int    `json:"window"`
	Matches      int    `json:"matches"`
	Form         string `json:"form"`
	Points       int    `json:"points"`
	MaxPoints    int    `json:"max_points"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
}

type possessionEffectivenessDTO struct {
	Matches                int     `json:"matches"`
	HighPossMatches        int     `json:"high_poss_matches"`
	MediumPossMatches      int     `json:"medium_poss_matches"`
	LowPossMatches         int     `json:"low_poss_matches"`
	HighPossPPG            float64 `json:"high_poss_ppg"`
	MediumPossPPG          float64 `json:"medium_poss_ppg"`
	LowPossPPG             float64 `json:"low_poss_ppg"`
	HighPossWinRate        float64 `json:"high_poss_win_rate"`
	MediumPossWinRate      float64 `json:"medium_poss_win_rate"`
	LowPossWinRate         float64 `json:"low_poss_win_rate"`
	XGPerPossessionPct     float64 `json:"xg_per_possession_pct"`
	TouchesPerXG           float64 `json:"touches_per_xg"`
	BetterWithPossession   bool    `json:"better_with_possession"`
	PossessionDifferential float64 `json:"possession_differential"`
}

type teamEffectivenessDTO struct {
	Season        string `json:"season"`
	Team          string `json:"team"`
	Effectiveness any    `json:"effectiveness"`
}

type possessionResultsRowDTO struct {
	Bracket       string  `json:"bracket"`
	Matches       int     `json:"matches"`
	PointsPerGame float64 `json:"points_per_game"`
	WinRatePct    float64 `json:"win_rate_pct"`
	GoalsPerGame  float64 `json:"goals_per_game"`
}

type possessionResultsDTO struct {
	Season   string                    `json:"season"`
	Team     string                    `json:"team"`
	Brackets []possessionResultsRowDTO `json:"brackets"`
}

type seriesPointDTO struct {
	Round int     `json:"round"`
	Value float64 `json:"value"`
}

type pointsSeriesDTO struct {
	Season string           `json:"season"`
	Team   string           `json:"team"`
	Points []seriesPointDTO `json:"points"`
}

type rollingPointDTO struct {
	Round int     `json:"round"`
	XG    float64 `json:"xg"`
	Goals float64 `json:"goals"`
}

type xgSeriesDTO struct {
	Season string            `json:"season"`
	Team   string            `json:"team"`
	Window int               `json:"window"`
	Points []rollingPointDTO `json:"points"`
}

type matchSummaryDTO struct {
	Round    int    `json:"round"`
	Label    string `json:"label"`
	Match    string `json:"match"`
	Opponent string `json:"opponent"`
	Side     string `json:"side"`
	Score    string `json:"score"`
	Date     string `json:"date,omitempty"`
	Points   int    `json:"points"`
	Result   string `json:"result"`
}

type matchListDTO struct {
	Season  string            `json:"season"`
	Team    string            `json:"team"`
	Matches []matchSummaryDTO `json:"matches"`
}

type matchStatsDTO struct {
	Round            int     `json:"round"`
	Match            string  `json:"match"`
	Opponent         string  `json:"opponent"`
	Side             string  `json:"side"`
	Score            string  `json:"score"`
	Date             string  `json:"date,omitempty"`
	Points           int     `json:"points"`
	Result           string  `json:"result"`
	GoalsScored      int     `json:"goals_scored"`
	GoalsConceded    int     `json:"goals_conceded"`
	PossessionPct    float64 `json:"possession_pct"`
	XG               float64 `json:"xg"`
	XGOpenPlay       float64 `json:"xg_open_play"`
	XGSetPlay        float64 `json:"xg_set_play"`
	XGOnTarget       float64 `json:"xg_on_target"`
	TotalShots       int     `json:"total_shots"`
	ShotsOnTarget    int     `json:"shots_on_target"`
	ShotsInsideBox   int     `json:"shots_inside_box"`
	BigChances       int     `json:"big_chances"`
	BigChancesMissed int     `json:"big_chances_missed"`
	Passes           int     `json:"passes"`
	PassAccuracyPct  float64 `json:"pass_accuracy_pct"`
	Corners          int     `json:"corners"`
	TouchesInBox     int     `json:"touches_in_box"`
	Tackles          int     `json:"tackles"`
	Interceptions    int     `json:"interceptions"`
	Blocks           int     `json:"blocks"`
	Clearances       int     `json:"clearances"`
	Saves            int     `json:"saves"`
	DuelsWonPct      float64 `json:"duels_won_pct"`
	CleanSheet       bool    `json:"clean_sheet"`
}

type matchDetailDTO struct {
	Season   string            `json:"season"`
	Team     string            `json:"team"`
	Match    matchStatsDTO     `json:"match"`
	Opponent *matchStatsDTO    `json:"opponent,omitempty"`
	Context  []matchSummaryDTO `json:"context"`
}

type comparisonTeamDTO struct {
	Team    string `json:"team"`
	Metrics any    `json:"metrics"`
}

type comparisonDTO struct {
	Season string              `json:"season"`
	Engine string              `json:"engine"`
	Teams  []comparisonTeamDTO `json:"teams"`
}

type findingDTO struct {
	Title    string `json:"title"`
	Finding  string `json:"finding"`
	Action   string `json:"action"`
	Severity string `json:"severity"`
}

type insightReportDTO struct {
	Season     string       `json:"season"`
	Team       string       `json:"team"`
	Comparison string       `json:"comparison"`
	Findings   []findingDTO `json:"findings"`
}

type datasetSeasonHealthDTO struct {
	Season        string `json:"season"`
	File          string `json:"file"`
	RawRows       int    `json:"raw_rows"`
	Records       int    `json:"records"`
	Teams         int    `json:"teams"`
	FirstDate     string `json:"first_date,omitempty"`
	LastDate      string `json:"last_date,omitempty"`
	SkippedLines  int    `json:"skipped_lines"`
	MissingDates  int    `json:"missing_dates"`
	CoercedFields int    `json:"coerced_fields"`
	DuplicateKeys int    `json:"duplicate_keys"`
}

type datasetHealthDTO struct {
	Generation   string                   `json:"generation"`
	LoadedAt     string                   `json:"loaded_at"`
	TotalRecords int                      `json:"total_records"`
	Seasons      []datasetSeasonHealthDTO `json:"seasons"`
	Caveats      []string                 `json:"caveats"`
}

func seasonListToDTO(ctx context.Context, seasons []usecase.SeasonInfo, defaults Defaults) seasonListDTO {
	ctx, span := startSpan(ctx, "httpapi.seasonListToDTO")
	defer span.End()

	out := seasonListDTO{
		Seasons: make([]seasonDTO, 0, len(seasons)),
		Defaults: seasonDefaultsDTO{
			Season:         defaults.Season,
			Team:           defaults.Team,
			ComparisonTeam: defaults.ComparisonTeam,
			FormWindow:     defaults.FormWindow,
		},
	}
	for _, info := range seasons {
		out.Seasons = append(out.Seasons, seasonDTO{
			Season:       info.Season,
			LeagueWinner: info.LeagueWinner,
		})
	}
	return out
}

func standingsToDTO(ctx context.Context, season string, rows []standings.Row, champion string) standingsDTO {
	ctx, span := startSpan(ctx, "httpapi.standingsToDTO")
	defer span.End()

	out := standingsDTO{
		Season: season,
		Rows:   make([]standingRowDTO, 0, len(rows)),
	}
	for _, row := range rows {
		out.Rows = append(out.Rows, standingRowDTO{
			Position:       row.Position,
			Team:           row.Team,
			Played:         row.Played,
			Wins:           row.Wins,
			Draws:          row.Draws,
			Losses:         row.Losses,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
			Points:         row.Points,
			IsChampion:     champion != "" && row.Team == champion,
		})
	}
	return out
}

func attackingToDTO(ctx context.Context, m metrics.Attacking) attackingDTO {
	ctx, span := startSpan(ctx, "httpapi.attackingToDTO")
	defer span.End()

	return attackingDTO{
		Matches:                  m.Matches,
		TotalGoals:               m.TotalGoals,
		TotalShots:               m.TotalShots,
		TotalShotsOnTarget:       m.TotalShotsOnTarget,
		TotalBigChances:          m.TotalBigChances,
		TotalBigChancesMissed:    m.TotalBigChancesMissed,
		TotalXG:                  m.TotalXG,
		GoalsPerGame:             m.GoalsPerGame,
		XGPerGame:                m.XGPerGame,
		XGOverperformance:        m.XGOverperformance,
		XGOverperformancePerGame: m.XGOverperformancePerGame,
		ShotsPerGame:             m.ShotsPerGame,
		ShotsOnTargetPerGame:     m.ShotsOnTargetPerGame,
		BigChancesPerGame:        m.BigChancesPerGame,
		XGOTPerGame:              m.XGOTPerGame,
		ShotConversionPct:        m.ShotConversionPct,
		ShotsOnTargetPct:         m.ShotsOnTargetPct,
		BigChanceConversionPct:   m.BigChanceConversionPct,
		ShotsInsideBoxPct:        m.ShotsInsideBoxPct,
	}
}

func defensiveToDTO(ctx context.Context, m metrics.Defensive) defensiveDTO {
	ctx, span := startSpan(ctx, "httpapi.defensiveToDTO")
	defer span.End()

	return defensiveDTO{
		Matches:                 m.Matches,
		TotalConceded:           m.TotalConceded,
		ConcededPerGame:         m.ConcededPerGame,
		CleanSheets:             m.CleanSheets,
		CleanSheetPct:           m.CleanSheetPct,
		TacklesPerGame:          m.TacklesPerGame,
		InterceptionsPerGame:    m.InterceptionsPerGame,
		BlocksPerGame:           m.BlocksPerGame,
		ClearancesPerGame:       m.ClearancesPerGame,
		DefensiveActionsPerGame: m.DefensiveActionsPerGame,
		SavesPerGame:            m.SavesPerGame,
		DuelsWonPct:             m.DuelsWonPct,
		TotalTackles:            m.TotalTackles,
		TotalInterceptions:      m.TotalInterceptions,
		TotalBlocks:             m.TotalBlocks,
		TotalClearances:         m.TotalClearances,
		TotalSaves:              m.TotalSaves,
	}
}

func possessionToDTO(ctx context.Context, m metrics.Possession) possessionDTO {
	ctx, span := startSpan(ctx, "httpapi.possessionToDTO")
	defer span.End()

	return possessionDTO{
		Matches:               m.Matches,
		AvgPossessionPct:      m.AvgPossessionPct,
		TotalPasses:           m.TotalPasses,
		PassesPerGame:         m.PassesPerGame,
		PassAccuracyPct:       m.PassAccuracyPct,
		OppositionHalfPerGame: m.OppositionHalfPerGame,
		OwnHalfPerGame:        m.OwnHalfPerGame,
		LongBallAccuracyPct:   m.LongBallAccuracyPct,
		CrossAccuracyPct:      m.CrossAccuracyPct,
		TouchesInBoxPerGame:   m.TouchesInBoxPerGame,
		CornersPerGame:        m.CornersPerGame,
		DribblesPerGame:       m.DribblesPerGame,
	}
}

func setPieceToDTO(ctx context.Context, m metrics.SetPiece) setPieceDTO {
	ctx, span := startSpan(ctx, "httpapi.setPieceToDTO")
	defer span.End()

	return setPieceDTO{
		Matches:           m.Matches,
		SetPieceXG:        m.SetPieceXG,
		OpenPlayXG:        m.OpenPlayXG,
		SetPieceXGPct:     m.SetPieceXGPct,
		OpenPlayXGPct:     m.OpenPlayXGPct,
		SetPieceXGPerGame: m.SetPieceXGPerGame,
		OpenPlayXGPerGame: m.OpenPlayXGPerGame,
		TotalCorners:      m.TotalCorners,
		CornersPerGame:    m.CornersPerGame,
		XGPerCorner:       m.XGPerCorner,
	}
}

func shotQualityToDTO(ctx context.Context, m metrics.ShotQuality) shotQualityDTO {
	ctx, span := startSpan(ctx, "httpapi.shotQualityToDTO")
	defer span.End()

	return shotQualityDTO{
		Matches:               m.Matches,
		AvgXGPerShot:          m.AvgXGPerShot,
		WoodworkHits:          m.WoodworkHits,
		WoodworkRate:          m.WoodworkRate,
		BlockedShots:          m.BlockedShots,
		BlockedRate:           m.BlockedRate,
		OffTarget:             m.OffTarget,
		OffTargetRate:         m.OffTargetRate,
		OnTargetRate:          m.OnTargetRate,
		GoalRate:              m.GoalRate,
		EstimatedUnluckyGoals: m.EstimatedUnluckyGoals,
	}
}

func shotOutcomesToDTO(ctx context.Context, m metrics.ShotOutcomes) shotOutcomesDTO {
	ctx, span := startSpan(ctx, "httpapi.shotOutcomesToDTO")
	defer span.End()

	out := shotOutcomesDTO{
		Matches:    m.Matches,
		TotalShots: m.TotalShots,
		Outcomes:   make([]shotOutcomeDTO, 0, len(m.Outcomes)),
	}
	for _, oc := range m.Outcomes {
		out.Outcomes = append(out.Outcomes, shotOutcomeDTO{
			Outcome: oc.Outcome,
			Count:   oc.Count,
			Pct:     oc.Pct,
		})
	}
	return out
}

func summaryToDTO(ctx context.Context, m metrics.SeasonSummary) summaryDTO {
	ctx, span := startSpan(ctx, "httpapi.summaryToDTO")
	defer span.End()

	return summaryDTO{
		Matches:          m.Matches,
		Wins:             m.Wins,
		Draws:            m.Draws,
		Losses:           m.Losses,
		HomeWins:         m.HomeWins,
		AwayWins:         m.AwayWins,
		TotalPoints:      m.TotalPoints,
		PointsPerGame:    m.PointsPerGame,
		WinPct:           m.WinPct,
		GoalsScored:      m.GoalsScored,
		GoalsConceded:    m.GoalsConceded,
		GoalDifference:   m.GoalDifference,
		GoalsPerGame:     m.GoalsPerGame,
		ConcededPerGame:  m.ConcededPerGame,
		CleanSheets:      m.CleanSheets,
		CleanSheetPct:    m.CleanSheetPct,
		AvgPossessionPct: m.AvgPossessionPct,
		TotalXG:          m.TotalXG,
		XGPerGame:        m.XGPerGame,
	}
}

func sideSplitToDTO(m metrics.SideSplit) sideSplitDTO {
	return sideSplitDTO{
		Matches:          m.Matches,
		Wins:             m.Wins,
		Draws:            m.Draws,
		Losses:           m.Losses,
		Points:           m.Points,
		PointsPerGame:    m.PointsPerGame,
		GoalsFor:         m.GoalsFor,
		GoalsAgainst:     m.GoalsAgainst,
		CleanSheets:      m.CleanSheets,
		AvgPossessionPct: m.AvgPossessionPct,
	}
}

func effectivenessToDTO(ctx context.Context, m metrics.PossessionEffectiveness) possessionEffectivenessDTO {
	ctx, span := startSpan(ctx, "httpapi.effectivenessToDTO")
	defer span.End()

	return possessionEffectivenessDTO{
		Matches:                m.Matches,
		HighPossMatches:        m.HighPossMatches,
		MediumPossMatches:      m.MediumPossMatches,
		LowPossMatches:         m.LowPossMatches,
		HighPossPPG:            m.HighPossPPG,
		MediumPossPPG:          m.MediumPossPPG,
		LowPossPPG:             m.LowPossPPG,
		HighPossWinRate:        m.HighPossWinRate,
		MediumPossWinRate:      m.MediumPossWinRate,
		LowPossWinRate:         m.LowPossWinRate,
		XGPerPossessionPct:     m.XGPerPossessionPct,
		TouchesPerXG:           m.TouchesPerXG,
		BetterWithPossession:   m.BetterWithPossession,
		PossessionDifferential: m.PossessionDifferential,
	}
}

func possessionResultsToDTO(ctx context.Context, season, team string, rows []metrics.PossessionResultsRow) possessionResultsDTO {
	ctx, span := startSpan(ctx, "httpapi.possessionResultsToDTO")
	defer span.End()

	out := possessionResultsDTO{
		Season:   season,
		Team:     team,
		Brackets: make([]possessionResultsRowDTO, 0, len(rows)),
	}
	for _, row := range rows {
		out.Brackets = append(out.Brackets, possessionResultsRowDTO{
			Bracket:       row.Bracket,
			Matches:       row.Matches,
			PointsPerGame: row.PointsPerGame,
			WinRatePct:    row.WinRatePct,
			GoalsPerGame:  row.GoalsPerGame,
		})
	}
	return out
}

func matchSummaryToDTO(v usecase.MatchSummary) matchSummaryDTO {
	return matchSummaryDTO{
		Round:    v.Round,
		Label:    v.Label,
		Match:    v.Match,
		Opponent: v.Opponent,
		Side:     string(v.Side),
		Score:    v.Score,
		Date:     formatOptionalTime(v.Date),
		Points:   v.Points,
		Result:   v.Result,
	}
}

func matchStatsToDTO(ctx context.Context, rec match.Record) matchStatsDTO {
	ctx, span := startSpan(ctx, "httpapi.matchStatsToDTO")
	defer span.End()

	return matchStatsDTO{
		Round:            rec.Round,
		Match:            rec.Match,
		Opponent:         rec.Opponent,
		Side:             string(rec.Side),
		Score:            rec.Score,
		Date:             formatOptionalTime(rec.Date),
		Points:           rec.Points,
		Result:           rec.FormLetter(),
		GoalsScored:      rec.GoalsScored,
		GoalsConceded:    rec.GoalsConceded,
		PossessionPct:    rec.PossessionPct,
		XG:               rec.ExpectedGoals,
		XGOpenPlay:       rec.XGOpenPlay,
		XGSetPlay:        rec.XGSetPlay,
		XGOnTarget:       rec.XGOnTarget,
		TotalShots:       rec.TotalShots,
		ShotsOnTarget:    rec.ShotsOnTarget,
		ShotsInsideBox:   rec.ShotsInsideBox,
		BigChances:       rec.BigChances,
		BigChancesMissed: rec.BigChancesMissed,
		Passes:           rec.Passes,
		PassAccuracyPct:  rec.AccuratePassesPct,
		Corners:          rec.Corners,
		TouchesInBox:     rec.TouchesInBox,
		Tackles:          rec.Tackles,
		Interceptions:    rec.Interceptions,
		Blocks:           rec.Blocks,
		Clearances:       rec.Clearances,
		Saves:            rec.KeeperSaves,
		DuelsWonPct:      rec.DuelsWonPct,
		CleanSheet:       rec.IsCleanSheet,
	}
}

func findingToDTO(f insight.Finding) findingDTO {
	return findingDTO{
		Title:    f.Title,
		Finding:  f.Finding,
		Action:   f.Action,
		Severity: string(f.Severity),
	}
}

func datasetHealthToDTO(ctx context.Context, status usecase.DatasetStatus, caveats []string) datasetHealthDTO {
	ctx, span := startSpan(ctx, "httpapi.datasetHealthToDTO")
	defer span.End()

	out := datasetHealthDTO{
		Generation:   status.Generation,
		LoadedAt:     status.LoadedAt.UTC().Format(time.RFC3339),
		TotalRecords: status.TotalRecords,
		Seasons:      make([]datasetSeasonHealthDTO, 0, len(status.Seasons)),
		Caveats:      append([]string(nil), caveats...),
	}
	for _, season := range status.Seasons {
		out.Seasons = append(out.Seasons, datasetSeasonHealthDTO{
			Season:        season.Season,
			File:          season.File,
			RawRows:       season.RawRows,
			Records:       season.Records,
			Teams:         season.Teams,
			FirstDate:     formatOptionalTime(season.FirstDate),
			LastDate:      formatOptionalTime(season.LastDate),
			SkippedLines:  season.SkippedLines,
			MissingDates:  season.MissingDates,
			CoercedFields: season.CoercedFields,
			DuplicateKeys: season.DuplicateKeys,
		})
	}
	return out
}

// breakdownPayload keeps the empty-input contract of the breakdown views:
// with no matches behind them they render as an empty object instead of a
// zero-filled one.
func breakdownPayload(matches int, dto any) any {
	if matches == 0 {
		return struct{}{}
	}
	return dto
}

func round1(ctx context.Context, v float64) float64 {
	ctx, span := startSpan(ctx, "httpapi.round1")
	defer span.End()

	return float64(int(v*10+0.5)) / 10.0
}

func round2(ctx context.Context, v float64) float64 {
	ctx, span := startSpan(ctx, "httpapi.round2")
	defer span.End()

	return float64(int(v*100+0.5)) / 100.0
}

func formatOptionalTime(v *time.Time) string {
	if v == nil || v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
