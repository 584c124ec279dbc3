package usecase_test

import (
	"errors"
	"testing"

	"github.com/dcmsstats/statsdash/pkg/domain/model"
	"github.com/dcmsstats/statsdash/pkg/domain/types"
	"github.com/dcmsstats/statsdash/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestDashboard_Options(t *testing.T) {
	d := usecase.NewDashboard(newTestConfig(), loadSample(t))

	opts := d.Options()
	gt.Equal(t, opts.Breakdowns, []model.SelectOption{
		{Label: "DCMS Sectors", Value: "All"},
		{Label: "Creative Industries sub-sectors", Value: "Creative Industries"},
		{Label: "Digital sub-sectors", Value: "Digital Sector"},
		{Label: "Cultural sub-sectors", Value: "Cultural Sector"},
	})
	gt.Equal(t, opts.Modes, []model.SelectOption{
		{Label: "Value", Value: "Value"},
		{Label: "Indexed", Value: "Indexed"},
	})
	gt.Equal(t, opts.DefaultBreakdown, "Creative Industries")
	gt.Equal(t, opts.DefaultMode, "Value")
}

func TestDashboard_Figure(t *testing.T) {
	d := usecase.NewDashboard(newTestConfig(), loadSample(t))
	gt.Equal(t, d.ID(), types.DashboardID("gva"))
	gt.Equal(t, d.LatestYear(), 2016)

	for _, b := range []types.Breakdown{
		types.BreakdownAll,
		types.BreakdownCreativeIndustries,
		types.BreakdownDigitalSector,
		types.BreakdownCulturalSector,
	} {
		for _, m := range types.AllModes {
			spec, err := d.Figure(b, m)
			gt.NoError(t, err).Required()
			gt.A(t, spec.Data).Longer(0)
		}
	}
}

func TestDashboard_FigureIsPure(t *testing.T) {
	d := usecase.NewDashboard(newTestConfig(), loadSample(t))

	first, err := d.Figure(types.BreakdownDigitalSector, types.ModeIndexed)
	gt.NoError(t, err).Required()
	_, err = d.Figure(types.BreakdownAll, types.ModeValue)
	gt.NoError(t, err).Required()
	second, err := d.Figure(types.BreakdownDigitalSector, types.ModeIndexed)
	gt.NoError(t, err).Required()

	gt.Equal(t, first, second)
}

func TestDashboard_InvalidSelection(t *testing.T) {
	d := usecase.NewDashboard(newTestConfig(), loadSample(t))

	testCases := []struct {
		name      string
		breakdown types.Breakdown
		mode      types.Mode
		target    error
	}{
		{name: "unknown mode", breakdown: types.BreakdownAll, mode: "Percent", target: model.ErrUnknownMode},
		{name: "empty mode", breakdown: types.BreakdownAll, mode: "", target: model.ErrUnknownMode},
		{name: "unknown breakdown", breakdown: "Gambling", mode: types.ModeValue, target: model.ErrUnknownBreakdown},
		{name: "empty breakdown", breakdown: "", mode: types.ModeIndexed, target: model.ErrUnknownBreakdown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := d.Figure(tc.breakdown, tc.mode)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, tc.target))

			_, err = d.Table(tc.breakdown, tc.mode)
			gt.True(t, errors.Is(err, tc.target))
		})
	}
}

func TestDashboard_Coverage(t *testing.T) {
	cfg := newTestConfig()
	cfg.Breakdowns[2].RowOrder = append(cfg.Breakdowns[2].RowOrder, "Quantum computing")

	d := usecase.NewDashboard(cfg, loadSample(t))
	drifts, err := d.Coverage()
	gt.NoError(t, err).Required()
	gt.Equal(t, drifts, []model.Drift{
		{Breakdown: types.BreakdownDigitalSector, Missing: []string{"Quantum computing"}},
	})
}
