package repository

import (
	"encoding/csv"
	"os"

	"github.com/dcmsstats/statsdash/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func loadCSV(path string, opts Options) ([]model.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "csv: open file")
	}
	defer f.Close()

	charset := opts.Encoding
	if charset == "" {
		charset = "utf-8"
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, goerr.Wrap(err, "csv: unsupported charset", goerr.V("charset", charset))
	}

	// A byte order mark wins over the configured charset
	decoded := transform.NewReader(f, unicode.BOMOverride(enc.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, goerr.Wrap(err, "csv: read rows")
	}

	return parseRecords(records, opts.ValueColumn)
}
