package repository

import (
	"github.com/dcmsstats/statsdash/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tealeg/xlsx/v2"
)

func loadXLSX(path string, opts Options) ([]model.Observation, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "xlsx: open file")
	}

	sheet, err := getSheet(f, opts.Sheet)
	if err != nil {
		return nil, err
	}

	records := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		if row == nil {
			continue
		}
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		records = append(records, cells)
	}

	return parseRecords(records, opts.ValueColumn)
}

func getSheet(f *xlsx.File, name string) (*xlsx.Sheet, error) {
	if name != "" {
		sheet, ok := f.Sheet[name]
		if !ok {
			return nil, goerr.New("xlsx: sheet not found", goerr.V("sheet", name))
		}
		return sheet, nil
	}

	if len(f.Sheets) == 0 {
		return nil, goerr.New("xlsx: workbook has no sheets")
	}
	return f.Sheets[0], nil
}
