package repository

import (
	"io"
	"os"

	"github.com/dcmsstats/statsdash/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/parquet-go/parquet-go"
)

// parquetRow is the on-disk schema of a parquet aggregate table. The value
// column is always named "value" regardless of the dashboard's CSV header.
type parquetRow struct {
	Sector    string  `parquet:"sector,snappy,dict"`
	SubSector string  `parquet:"sub_sector,snappy,dict"`
	Year      int32   `parquet:"year,snappy"`
	Value     float64 `parquet:"value,snappy"`
}

func loadParquet(path string) ([]model.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "parquet: open file")
	}
	defer f.Close()

	reader := parquet.NewGenericReader[parquetRow](f)
	defer func() { _ = reader.Close() }()

	rows := make([]model.Observation, 0, reader.NumRows())
	buf := make([]parquetRow, 256)
	for {
		n, err := reader.Read(buf)
		for _, r := range buf[:n] {
			rows = append(rows, model.Observation{
				Sector:    r.Sector,
				SubSector: r.SubSector,
				Year:      int(r.Year),
				Value:     r.Value,
			})
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "parquet: read rows")
		}
		if n == 0 {
			break
		}
	}

	return rows, nil
}

// WriteParquet exports an observation set to a parquet file readable by Load
func WriteParquet(set *model.ObservationSet, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return goerr.Wrap(err, "failed to create output file", goerr.V("path", outputPath))
	}

	if err := writeParquetRows(file, set); err != nil {
		_ = file.Close()
		return goerr.Wrap(err, "failed to write parquet file", goerr.V("path", outputPath))
	}
	if err := file.Close(); err != nil {
		return goerr.Wrap(err, "failed to close output file", goerr.V("path", outputPath))
	}

	return nil
}

func writeParquetRows(w io.Writer, set *model.ObservationSet) error {
	data := make([]parquetRow, 0, set.Len())
	set.Each(func(o model.Observation) {
		data = append(data, parquetRow{
			Sector:    o.Sector,
			SubSector: o.SubSector,
			Year:      int32(o.Year),
			Value:     o.Value,
		})
	})

	writer := parquet.NewGenericWriter[parquetRow](w)
	if _, err := writer.Write(data); err != nil {
		return goerr.Wrap(err, "failed to write parquet rows")
	}
	if err := writer.Close(); err != nil {
		return goerr.Wrap(err, "failed to close parquet writer")
	}
	return nil
}
