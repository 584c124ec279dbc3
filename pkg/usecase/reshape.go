package usecase

import (
	"math"
	"sort"

	"github.com/dcmsstats/statsdash/pkg/domain/model"
	"github.com/dcmsstats/statsdash/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Reshape pivots the observations of one breakdown into a row-ordered
// year matrix. Rows follow the configured row order exactly; labels without
// data become all-NaN rows and data labels outside the order are dropped
// (both are reported on the table). When indexed is set every row is rebased
// so the base year equals 100. Cells are rounded to the dashboard precision.
func Reshape(set *model.ObservationSet, cfg *model.DashboardConfig, breakdown types.Breakdown, indexed bool) (*model.Table, error) {
	bc, err := cfg.FindBreakdown(breakdown)
	if err != nil {
		return nil, err
	}

	years := set.Years()
	column := make(map[int]int, len(years))
	for i, y := range years {
		column[y] = i
	}

	sums := make(map[string][]float64)
	set.Each(func(o model.Observation) {
		var key string
		switch {
		case bc.Aggregate && o.IsSectorTotal():
			key = o.Sector
		case !bc.Aggregate && o.Sector == breakdown.String() && !o.IsSectorTotal():
			key = o.SubSector
		default:
			return
		}

		row, ok := sums[key]
		if !ok {
			row = nanRow(len(years))
			sums[key] = row
		}
		c := column[o.Year]
		v := o.Value / bc.Scale
		if math.IsNaN(row[c]) {
			row[c] = v
		} else {
			row[c] += v
		}
	})

	table := &model.Table{
		Breakdown: breakdown,
		Mode:      types.ModeValue,
		Rows:      make([]string, len(bc.RowOrder)),
		Years:     years,
		Cells:     make([][]float64, len(bc.RowOrder)),
	}
	if indexed {
		table.Mode = types.ModeIndexed
	}

	ordered := make(map[string]bool, len(bc.RowOrder))
	for i, label := range bc.RowOrder {
		ordered[label] = true
		table.Rows[i] = label

		raw, ok := sums[label]
		if !ok {
			table.Missing = append(table.Missing, label)
			table.Cells[i] = nanRow(len(years))
			continue
		}
		cells := make([]float64, len(raw))
		copy(cells, raw)
		table.Cells[i] = cells
	}

	for label := range sums {
		if !ordered[label] {
			table.Dropped = append(table.Dropped, label)
		}
	}
	sort.Strings(table.Dropped)

	if indexed {
		base, ok := column[cfg.Chart.BaseYear]
		for i, cells := range table.Cells {
			if !ok {
				table.Cells[i] = nanRow(len(years))
				continue
			}
			table.Cells[i] = rebase(cells, base)
		}
	}

	for _, cells := range table.Cells {
		roundCells(cells, cfg.Precision())
	}

	return table, nil
}

// rebase returns cells relative to cells[base] = 100. A zero or missing
// base value makes the whole row missing.
func rebase(cells []float64, base int) []float64 {
	denominator := cells[base]
	if math.IsNaN(denominator) || denominator == 0 {
		return nanRow(len(cells))
	}

	result := make([]float64, len(cells))
	for i, v := range cells {
		result[i] = v / denominator * 100
	}
	result[base] = 100
	return result
}

func roundCells(cells []float64, precision int) {
	scale := math.Pow10(precision)
	for i, v := range cells {
		if math.IsNaN(v) {
			continue
		}
		cells[i] = math.Round(v*scale) / scale
	}
}

func nanRow(n int) []float64 {
	row := make([]float64, n)
	for i := range row {
		row[i] = math.NaN()
	}
	return row
}

// Coverage reshapes every breakdown of a dashboard and returns the ones
// whose row order disagrees with the data
func Coverage(set *model.ObservationSet, cfg *model.DashboardConfig) ([]model.Drift, error) {
	var drifts []model.Drift
	for _, bc := range cfg.Breakdowns {
		table, err := Reshape(set, cfg, bc.Value, false)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to reshape breakdown", goerr.V("breakdown", bc.Value))
		}
		if table.HasDrift() {
			drifts = append(drifts, model.Drift{
				Breakdown: bc.Value,
				Dropped:   table.Dropped,
				Missing:   table.Missing,
			})
		}
	}
	return drifts, nil
}
