package model

import (
	"encoding/json"
	"math"

	"github.com/dcmsstats/statsdash/pkg/domain/types"
)

// Table is a reshaped, row-ordered matrix of yearly values. Missing cells
// hold NaN.
type Table struct {
	Breakdown types.Breakdown
	Mode      types.Mode
	Rows      []string
	Years     []int
	Cells     [][]float64

	// Dropped lists data labels that are not part of the row order
	Dropped []string
	// Missing lists row order labels that have no data at all
	Missing []string
}

// Cell returns the value for a row label and year. ok is false when the row
// or year is unknown; a known but missing cell returns NaN and true.
func (t *Table) Cell(row string, year int) (float64, bool) {
	r := indexOf(t.Rows, row)
	if r < 0 {
		return math.NaN(), false
	}
	for c, y := range t.Years {
		if y == year {
			return t.Cells[r][c], true
		}
	}
	return math.NaN(), false
}

// Row returns the cells of a row label, or nil when the label is unknown
func (t *Table) Row(row string) []float64 {
	r := indexOf(t.Rows, row)
	if r < 0 {
		return nil
	}
	return t.Cells[r]
}

// HasDrift reports whether the row order and the data disagree
func (t *Table) HasDrift() bool {
	return len(t.Dropped) > 0 || len(t.Missing) > 0
}

type tableRowJSON struct {
	Label  string     `json:"label"`
	Values []*float64 `json:"values"`
}

type tableJSON struct {
	Breakdown types.Breakdown `json:"breakdown"`
	Mode      types.Mode      `json:"mode"`
	Years     []int           `json:"years"`
	Rows      []tableRowJSON  `json:"rows"`
}

// MarshalJSON encodes missing cells as null
func (t *Table) MarshalJSON() ([]byte, error) {
	out := tableJSON{
		Breakdown: t.Breakdown,
		Mode:      t.Mode,
		Years:     t.Years,
		Rows:      make([]tableRowJSON, len(t.Rows)),
	}
	for i, label := range t.Rows {
		out.Rows[i] = tableRowJSON{Label: label, Values: NullableValues(t.Cells[i])}
	}
	return json.Marshal(out)
}

// NullableValues maps NaN cells to nil so they encode as JSON null
func NullableValues(cells []float64) []*float64 {
	result := make([]*float64, len(cells))
	for i, v := range cells {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		value := v
		result[i] = &value
	}
	return result
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

// Drift records a mismatch between a breakdown's row order and the data
type Drift struct {
	Breakdown types.Breakdown
	Dropped   []string
	Missing   []string
}
