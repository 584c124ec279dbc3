package usecase

import (
	"strconv"

	"github.com/dcmsstats/statsdash/pkg/domain/model"
	"github.com/google/uuid"
)

const (
	seriesType = "scatter"
	seriesMode = "lines+markers"
)

// seriesNamespace scopes series UIDs so the same label on two dashboards
// gets different identities
var seriesNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/dcmsstats/statsdash/series"))

// Render maps a reshaped table to a line chart: one series per row, gaps for
// missing cells, and an axis title that depends on the mode and breakdown
func Render(table *model.Table, cfg *model.DashboardConfig) (*model.ChartSpec, error) {
	bc, err := cfg.FindBreakdown(table.Breakdown)
	if err != nil {
		return nil, err
	}

	spec := &model.ChartSpec{
		Data: make([]model.Series, len(table.Rows)),
		Layout: model.Layout{
			Title:  cfg.Chart.Title,
			Height: cfg.Chart.Height,
			Margin: model.Margin{L: 80, R: 0, T: 80, B: 100, Pad: 0},
			YAxis: model.YAxis{
				Title:      bc.Unit,
				TickFormat: ",",
			},
			XAxis:  xAxis(table.Years, cfg.ProvisionalCount(), cfg.ProvisionalSuffix()),
			Legend: model.Legend{X: .01, Y: -0.8},
		},
	}
	if table.Mode.Indexed() {
		spec.Layout.YAxis.Title = ""
	}

	for i, label := range table.Rows {
		x := make([]int, len(table.Years))
		copy(x, table.Years)

		spec.Data[i] = model.Series{
			Type: seriesType,
			Mode: seriesMode,
			Name: label,
			UID:  seriesUID(cfg, label),
			X:    x,
			Y:    model.NullableValues(table.Cells[i]),
		}
	}

	return spec, nil
}

// xAxis labels every year and suffixes the latest provisional ones
func xAxis(years []int, provisional int, suffix string) model.XAxis {
	axis := model.XAxis{
		TickMode: "array",
		TickVals: make([]int, len(years)),
		TickText: make([]string, len(years)),
	}
	firstProvisional := len(years) - provisional
	for i, y := range years {
		axis.TickVals[i] = y
		axis.TickText[i] = strconv.Itoa(y)
		if i >= firstProvisional {
			axis.TickText[i] += suffix
		}
	}
	return axis
}

func seriesUID(cfg *model.DashboardConfig, label string) string {
	return uuid.NewSHA1(seriesNamespace, []byte(cfg.ID.String()+"\x00"+label)).String()
}
