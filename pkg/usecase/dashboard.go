package usecase

import (
	"github.com/dcmsstats/statsdash/pkg/domain/model"
	"github.com/dcmsstats/statsdash/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Dashboard binds a dashboard configuration to its loaded data. Every
// method is a pure function of the selector state.
type Dashboard struct {
	config *model.DashboardConfig
	data   *model.ObservationSet
}

// NewDashboard creates a new Dashboard instance
func NewDashboard(config *model.DashboardConfig, data *model.ObservationSet) *Dashboard {
	return &Dashboard{
		config: config,
		data:   data,
	}
}

// ID returns the dashboard ID
func (d *Dashboard) ID() types.DashboardID {
	return d.config.ID
}

// Config returns the dashboard configuration
func (d *Dashboard) Config() *model.DashboardConfig {
	return d.config
}

// Table reshapes the data for the given selector state
func (d *Dashboard) Table(breakdown types.Breakdown, mode types.Mode) (*model.Table, error) {
	if !mode.IsValid() {
		return nil, goerr.Wrap(model.ErrUnknownMode, "mode is not offered by dashboard",
			goerr.V("dashboard", d.config.ID),
			goerr.V("mode", mode))
	}

	table, err := Reshape(d.data, d.config, breakdown, mode.Indexed())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to reshape table")
	}
	return table, nil
}

// Figure computes the chart for the given selector state
func (d *Dashboard) Figure(breakdown types.Breakdown, mode types.Mode) (*model.ChartSpec, error) {
	table, err := d.Table(breakdown, mode)
	if err != nil {
		return nil, err
	}

	spec, err := Render(table, d.config)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render chart")
	}
	return spec, nil
}

// Options returns the dropdown options in configuration order
func (d *Dashboard) Options() model.DashboardOptions {
	opts := model.DashboardOptions{
		Breakdowns:       make([]model.SelectOption, len(d.config.Breakdowns)),
		Modes:            make([]model.SelectOption, len(types.AllModes)),
		DefaultBreakdown: d.config.DefaultBreakdown.String(),
		DefaultMode:      d.config.DefaultMode.String(),
	}
	for i, b := range d.config.Breakdowns {
		opts.Breakdowns[i] = model.SelectOption{Label: b.Label, Value: b.Value.String()}
	}
	for i, m := range types.AllModes {
		opts.Modes[i] = model.SelectOption{Label: m.String(), Value: m.String()}
	}
	return opts
}

// Coverage reports row order mismatches against the loaded data
func (d *Dashboard) Coverage() ([]model.Drift, error) {
	return Coverage(d.data, d.config)
}

// LatestYear returns the most recent year in the data
func (d *Dashboard) LatestYear() int {
	return d.data.LatestYear()
}
