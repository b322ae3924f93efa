package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/matchdaylabs/matchmetrics/internal/config"
	"github.com/matchdaylabs/matchmetrics/internal/domain/match"
	"github.com/matchdaylabs/matchmetrics/internal/infrastructure/repository/cache"
	"github.com/matchdaylabs/matchmetrics/internal/infrastructure/repository/memory"
	"github.com/matchdaylabs/matchmetrics/internal/infrastructure/repository/postgres"
	"github.com/matchdaylabs/matchmetrics/internal/infrastructure/seasonfile"
	"github.com/matchdaylabs/matchmetrics/internal/interfaces/httpapi"
	basecache "github.com/matchdaylabs/matchmetrics/internal/platform/cache"
	idgen "github.com/matchdaylabs/matchmetrics/internal/platform/id"
	"github.com/matchdaylabs/matchmetrics/internal/platform/logging"
	"github.com/matchdaylabs/matchmetrics/internal/usecase"
)

// NewHTTPServer wires repositories, services and the HTTP layer from
// configuration. It also performs the initial dataset load, so a missing or
// malformed season file fails startup instead of the first request.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	store, err := seasonfile.NewStore(cfg.DataDir, cfg.SeasonFiles)
	if err != nil {
		return nil, fmt.Errorf("init season file store: %w", err)
	}

	var (
		matchRepo match.Repository
		sinks     []usecase.DatasetSink
		seeded    bool
	)
	if cfg.DBEnabled {
		db, err := openPostgres(cfg)
		if err != nil {
			return nil, err
		}

		archive := postgres.NewMatchStatsRepository(db)
		matchRepo = archive
		sinks = []usecase.DatasetSink{archive}

		seasons, err := archive.Seasons(ctx)
		if err != nil {
			return nil, fmt.Errorf("probe match stats archive: %w", err)
		}
		seeded = len(seasons) > 0
	} else {
		mem := memory.NewMatchRepository()
		matchRepo = mem
		sinks = []usecase.DatasetSink{mem}
	}

	var invalidator usecase.DatasetCacheInvalidator
	if cfg.CacheEnabled {
		cached := cache.NewMatchRepository(matchRepo, basecache.NewStore(cfg.CacheTTL))
		matchRepo = cached
		invalidator = cached
	}

	catalog := usecase.NewSeasonCatalog(store.Seasons(), cfg.LeagueWinners)
	datasetSvc := usecase.NewDatasetService(store, sinks, invalidator, idgen.NewRandomGenerator())

	if seeded {
		logger.InfoContext(ctx, "initial dataset load skipped", "reason", "match stats archive already seeded")
	} else {
		status, err := datasetSvc.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("initial dataset load: %w", err)
		}
		logger.InfoContext(ctx, "dataset loaded",
			"generation", status.Generation,
			"records", status.TotalRecords,
			"seasons", len(status.Seasons),
		)
	}

	handler := httpapi.NewHandler(
		usecase.NewTeamMetricsService(matchRepo, catalog),
		usecase.NewStandingsService(matchRepo, catalog),
		usecase.NewComparisonService(matchRepo, catalog),
		usecase.NewInsightService(matchRepo, catalog),
		usecase.NewMatchExplorerService(matchRepo, catalog),
		datasetSvc,
		catalog,
		httpapi.Defaults{
			Season:         cfg.DefaultSeason,
			Team:           cfg.DefaultTeam,
			ComparisonTeam: cfg.DefaultComparisonTeam,
			FormWindow:     cfg.FormWindow,
		},
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

func openPostgres(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}
