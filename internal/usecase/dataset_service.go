package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/matchdaylabs/matchmetrics/internal/domain/match"
	"github.com/matchdaylabs/matchmetrics/internal/domain/rawmatch"
	"github.com/matchdaylabs/matchmetrics/internal/infrastructure/seasonfile"
	idgen "github.com/matchdaylabs/matchmetrics/internal/platform/id"
)

// DatasetSink receives a freshly loaded dataset. The memory repository
// keeps the normalized records, the Postgres archive keeps the raw rows.
type DatasetSink interface {
	StoreDataset(ctx context.Context, rows []rawmatch.Row, records []match.Record) error
}

// DatasetCacheInvalidator drops cached repository reads after a reload.
type DatasetCacheInvalidator interface {
	InvalidateDataset(ctx context.Context)
}

// DatasetSeasonStatus reports one season of a load generation: coverage
// counts plus everything the normalizer degraded rather than rejected.
type DatasetSeasonStatus struct {
	Season        string
	File          string
	RawRows       int
	Records       int
	Teams         int
	FirstDate     *time.Time
	LastDate      *time.Time
	SkippedLines  int
	MissingDates  int
	CoercedFields int
	DuplicateKeys int
}

type DatasetStatus struct {
	Generation   string
	LoadedAt     time.Time
	TotalRecords int
	Seasons      []DatasetSeasonStatus
}

// DatasetService owns the load lifecycle: read season files, normalize,
// hand the generation to every sink, invalidate caches, remember the
// status for the health endpoint. Loads are serialized.
type DatasetService struct {
	store       *seasonfile.Store
	sinks       []DatasetSink
	invalidator DatasetCacheInvalidator
	ids         idgen.Generator

	loadMu sync.Mutex

	mu     sync.RWMutex
	last   DatasetStatus
	loaded bool
}

func NewDatasetService(store *seasonfile.Store, sinks []DatasetSink, invalidator DatasetCacheInvalidator, ids idgen.Generator) *DatasetService {
	return &DatasetService{
		store:       store,
		sinks:       sinks,
		invalidator: invalidator,
		ids:         ids,
	}
}

// Load reads every season file and replaces the dataset in all sinks.
// Called at startup and again by the internal reload endpoint.
func (s *DatasetService) Load(ctx context.Context) (DatasetStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DatasetService.Load")
	defer span.End()

	if s.store == nil || len(s.sinks) == 0 {
		return DatasetStatus{}, fmt.Errorf("%w: dataset loading is not configured", ErrDependencyUnavailable)
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	rows, loadReport, err := s.store.LoadAll(ctx)
	if err != nil {
		return DatasetStatus{}, fmt.Errorf("load season files: %w", err)
	}

	records, report := match.Normalize(rows)

	generation, err := s.ids.NewID()
	if err != nil {
		return DatasetStatus{}, fmt.Errorf("new load generation id: %w", err)
	}

	for _, sink := range s.sinks {
		if err := sink.StoreDataset(ctx, rows, records); err != nil {
			return DatasetStatus{}, fmt.Errorf("store dataset generation=%s: %w", generation, err)
		}
	}
	if s.invalidator != nil {
		s.invalidator.InvalidateDataset(ctx)
	}

	status := buildDatasetStatus(generation, time.Now().UTC(), s.store.Seasons(), loadReport, report, records)

	s.mu.Lock()
	s.last = status
	s.loaded = true
	s.mu.Unlock()

	return status, nil
}

// Status returns the last load generation.
func (s *DatasetService) Status(ctx context.Context) (DatasetStatus, error) {
	_, span := startUsecaseSpan(ctx, "usecase.DatasetService.Status")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return DatasetStatus{}, fmt.Errorf("%w: dataset has not been loaded", ErrNotFound)
	}
	return s.last, nil
}

func buildDatasetStatus(
	generation string,
	loadedAt time.Time,
	seasons []string,
	loadReport seasonfile.LoadReport,
	report match.Report,
	records []match.Record,
) DatasetStatus {
	type coverage struct {
		teams map[string]struct{}
		first *time.Time
		last  *time.Time
	}
	bySeason := make(map[string]*coverage, len(seasons))
	for _, rec := range records {
		cov, ok := bySeason[rec.Season]
		if !ok {
			cov = &coverage{teams: make(map[string]struct{})}
			bySeason[rec.Season] = cov
		}
		cov.teams[rec.Team] = struct{}{}
		if rec.Date == nil {
			continue
		}
		if cov.first == nil || rec.Date.Before(*cov.first) {
			cov.first = rec.Date
		}
		if cov.last == nil || rec.Date.After(*cov.last) {
			cov.last = rec.Date
		}
	}

	status := DatasetStatus{
		Generation:   generation,
		LoadedAt:     loadedAt,
		TotalRecords: len(records),
		Seasons:      make([]DatasetSeasonStatus, 0, len(seasons)),
	}
	for _, season := range seasons {
		fileReport := loadReport.Files[season]
		seasonReport := report.Seasons[season]
		seasonStatus := DatasetSeasonStatus{
			Season:        season,
			File:          fileReport.Path,
			RawRows:       fileReport.Rows,
			Records:       seasonReport.Records,
			SkippedLines:  fileReport.SkippedLines,
			MissingDates:  seasonReport.MissingDates,
			CoercedFields: seasonReport.CoercedFields,
			DuplicateKeys: seasonReport.DuplicateKeys,
		}
		if cov, ok := bySeason[season]; ok {
			seasonStatus.Teams = len(cov.teams)
			seasonStatus.FirstDate = cov.first
			seasonStatus.LastDate = cov.last
		}
		status.Seasons = append(status.Seasons, seasonStatus)
	}
	return status
}
