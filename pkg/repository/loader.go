package repository

import (
	"context"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dcmsstats/statsdash/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Options configures how an aggregate table file is read
type Options struct {
	ValueColumn string // header of the value column, "gva" when empty
	Encoding    string // CSV character set, "utf-8" when empty
	Sheet       string // XLSX sheet name, first sheet when empty
}

// OptionsFromSource builds loader options from a dashboard data source
func OptionsFromSource(src model.DataSource) Options {
	return Options{
		ValueColumn: src.ValueColumn,
		Encoding:    src.Encoding,
		Sheet:       src.Sheet,
	}
}

// Load reads the aggregate table at path. The format is chosen by file
// extension (.csv, .xlsx, .parquet). Any read or parse problem fails the
// whole load.
func Load(ctx context.Context, path string, opts Options) (*model.ObservationSet, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, goerr.Wrap(err, "data file is not readable",
			goerr.T(model.ErrTagInvalidData),
			goerr.V("path", path))
	}

	var (
		rows []model.Observation
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		rows, err = loadCSV(path, opts)
	case ".xlsx":
		rows, err = loadXLSX(path, opts)
	case ".parquet":
		rows, err = loadParquet(path)
	default:
		return nil, goerr.New("unsupported data file format",
			goerr.T(model.ErrTagInvalidData),
			goerr.V("path", path),
			goerr.V("ext", ext))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load data file",
			goerr.T(model.ErrTagInvalidData),
			goerr.V("path", path))
	}

	set, err := model.NewObservationSet(rows)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid data file",
			goerr.T(model.ErrTagInvalidData),
			goerr.V("path", path))
	}

	ctxlog.From(ctx).Debug("Loaded aggregate table",
		slog.String("path", path),
		slog.Int("rows", set.Len()),
		slog.Any("years", set.Years()),
	)
	return set, nil
}

// columns maps the required fields to header positions
type columns struct {
	sector    int
	subSector int
	year      int
	value     int
}

var subSectorHeaders = []string{"sub_sector", "subsector"}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, "-", "_")
	return strings.ReplaceAll(h, " ", "_")
}

func resolveColumns(header []string, valueColumn string) (*columns, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := normalizeHeader(h)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	find := func(names ...string) int {
		for _, name := range names {
			if i, ok := index[name]; ok {
				return i
			}
		}
		return -1
	}

	if valueColumn == "" {
		valueColumn = model.DefaultValueColumn
	}

	cols := &columns{
		sector:    find("sector"),
		subSector: find(subSectorHeaders...),
		year:      find("year"),
		value:     find(normalizeHeader(valueColumn), "value"),
	}

	missing := []string{}
	if cols.sector < 0 {
		missing = append(missing, "sector")
	}
	if cols.subSector < 0 {
		missing = append(missing, "sub_sector")
	}
	if cols.year < 0 {
		missing = append(missing, "year")
	}
	if cols.value < 0 {
		missing = append(missing, valueColumn)
	}
	if len(missing) > 0 {
		return nil, goerr.New("required columns are missing",
			goerr.V("missing", missing),
			goerr.V("header", header))
	}
	return cols, nil
}

// parseRecords converts header + data records into observations. Blank
// lines and rows with a blank value cell are skipped; anything else that
// does not parse is an error.
func parseRecords(records [][]string, valueColumn string) ([]model.Observation, error) {
	if len(records) == 0 {
		return nil, goerr.New("data file has no header")
	}

	cols, err := resolveColumns(records[0], valueColumn)
	if err != nil {
		return nil, err
	}

	rows := make([]model.Observation, 0, len(records)-1)
	for i, record := range records[1:] {
		line := i + 2
		if isBlank(record) {
			continue
		}

		get := func(col int) string {
			if col >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[col])
		}

		rawValue := get(cols.value)
		if rawValue == "" {
			continue
		}

		year, err := parseYear(get(cols.year))
		if err != nil {
			return nil, goerr.Wrap(err, "invalid year", goerr.V("line", line))
		}

		value, err := parseValue(rawValue)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid value", goerr.V("line", line))
		}

		rows = append(rows, model.Observation{
			Sector:    get(cols.sector),
			SubSector: get(cols.subSector),
			Year:      year,
			Value:     value,
		})
	}

	return rows, nil
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// parseYear accepts "2016" and spreadsheet renderings such as "2016.0"
func parseYear(s string) (int, error) {
	if year, err := strconv.Atoi(s); err == nil {
		return year, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "year is not a number", goerr.V("year", s))
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != float64(int(f)) {
		return 0, goerr.New("year is not an integer", goerr.V("year", s))
	}
	return int(f), nil
}

// parseValue accepts plain and thousands-separated numbers
func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, goerr.Wrap(err, "value is not a number", goerr.V("value", s))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, goerr.New("value is not finite", goerr.V("value", s))
	}
	return v, nil
}
