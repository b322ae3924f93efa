package seasonfile

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sort"

	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"

	"github.com/matchdaylabs/matchmetrics/internal/domain/rawmatch"
)

// Store reads the configured per-season CSV exports. Files-on-disk are the
// system of record: every canonical table is re-derivable from them at any
// time, so loads always read from scratch.
type Store struct {
	dataDir string
	files   map[string]string
	seasons []string
}

// FileReport describes one season file after a load.
type FileReport struct {
	Path         string
	Rows         int
	SkippedLines int
}

// LoadReport maps season keys to their file reports.
type LoadReport struct {
	Files map[string]FileReport
}

// NewStore validates the season catalogue. files maps a season key to a
// CSV filename inside dataDir.
func NewStore(dataDir string, files map[string]string) (*Store, error) {
	if len(files) == 0 {
		return nil, crerr.New("no season files configured")
	}

	seasons := make([]string, 0, len(files))
	for season, name := range files {
		if season == "" || name == "" {
			return nil, crerr.Newf("invalid season file mapping: season=%q file=%q", season, name)
		}
		seasons = append(seasons, season)
	}
	sort.Strings(seasons)

	return &Store{
		dataDir: dataDir,
		files:   files,
		seasons: seasons,
	}, nil
}

// Seasons returns the configured season keys, sorted.
func (s *Store) Seasons() []string {
	return append([]string(nil), s.seasons...)
}

// LoadAll reads every configured season file, in parallel, and returns the
// concatenated raw rows in season order. A missing file or a file whose
// header lacks required columns fails the whole load; individual lines with
// the wrong field count are skipped and counted instead.
func (s *Store) LoadAll(ctx context.Context) ([]rawmatch.Row, LoadReport, error) {
	type seasonRows struct {
		rows   []rawmatch.Row
		report FileReport
	}
	results := make([]seasonRows, len(s.seasons))

	p := pool.New().WithContext(ctx).WithCancelOnError()
	for i, season := range s.seasons {
		p.Go(func(context.Context) error {
			rows, report, err := s.loadSeason(season)
			if err != nil {
				return err
			}
			results[i] = seasonRows{rows: rows, report: report}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, LoadReport{}, err
	}

	report := LoadReport{Files: make(map[string]FileReport, len(s.seasons))}
	var rows []rawmatch.Row
	for i, season := range s.seasons {
		rows = append(rows, results[i].rows...)
		report.Files[season] = results[i].report
	}
	return rows, report, nil
}

func (s *Store) loadSeason(season string) ([]rawmatch.Row, FileReport, error) {
	path := filepath.Join(s.dataDir, s.files[season])
	report := FileReport{Path: path}

	f, err := os.Open(path)
	if err != nil {
		return nil, report, crerr.Wrapf(err, "open season file for %s", season)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, report, crerr.Wrapf(err, "read header of season file for %s", season)
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[name] = i
	}
	var missing []string
	for _, col := range rawmatch.RequiredColumns() {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, report, crerr.Newf("season file for %s has the wrong schema, missing columns: %v", season, missing)
	}

	var rows []rawmatch.Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, report, crerr.Wrapf(err, "read season file for %s", season)
		}
		if len(record) != len(header) {
			report.SkippedLines++
			continue
		}

		values := make(map[string]string, len(header))
		for i, name := range header {
			values[name] = record[i]
		}
		rows = append(rows, rawmatch.Row{Season: season, Values: values})
		report.Rows++
	}

	return rows, report, nil
}
