package usecase_test

import (
	"context"
	"testing"

	"github.com/dcmsstats/statsdash/pkg/domain/model"
	"github.com/dcmsstats/statsdash/pkg/domain/types"
	"github.com/dcmsstats/statsdash/pkg/repository"
	"github.com/m-mizutani/gt"
)

// newTestConfig returns a GVA-style dashboard with the published row orders
func newTestConfig() *model.DashboardConfig {
	cfg := &model.DashboardConfig{
		ID:     "gva",
		Title:  "DCMS Economic Estimates - GVA",
		Prefix: "/dash2",
		Data:   model.DataSource{Path: "../../testdata/gva_aggregate_sample.csv"},
		Chart:  model.ChartConfig{Title: "Current Price (not adjusted for inflation)"},
		Breakdowns: []model.BreakdownConfig{
			{
				Value: types.BreakdownAll,
				Label: "DCMS Sectors",
				Scale: 1000,
				Unit:  "£bn",
				RowOrder: []string{
					"Civil Society (Non-market charities)",
					"Creative Industries",
					"Cultural Sector",
					"Digital Sector",
					"Gambling",
					"Sport",
					"Telecoms",
					"Tourism",
					"All DCMS sectors",
					"UK",
				},
			},
			{
				Value: types.BreakdownCreativeIndustries,
				Label: "Creative Industries sub-sectors",
				Unit:  "£m",
				RowOrder: []string{
					"Advertising and marketing",
					"Architecture",
					"Crafts",
					"Design and designer fashion",
					"Film, TV, video, radio and photography",
					"IT, software and computer services",
					"Publishing",
					"Museums, galleries and Libraries",
					"Music, performing and visual arts",
				},
			},
			{
				Value: types.BreakdownDigitalSector,
				Label: "Digital sub-sectors",
				Unit:  "£m",
				RowOrder: []string{
					"Manufacturing of electronics and computers",
					"Wholesale of computers and electronics",
					"Publishing (excluding translation and interpretation activities)",
					"Software publishing",
					"Film, TV, video, radio and music",
					"Telecommunications",
					"Computer programming, consultancy and related activities",
					"Information service activities",
					"Repair of computers and communication equipment",
				},
			},
			{
				Value: types.BreakdownCulturalSector,
				Label: "Cultural sub-sectors",
				Unit:  "£m",
				RowOrder: []string{
					"Arts",
					"Film, TV and music",
					"Radio",
					"Photography",
					"Crafts",
					"Museums and galleries",
					"Library and archives",
					"Cultural education",
					"Heritage",
				},
			},
		},
		DefaultBreakdown: types.BreakdownCreativeIndustries,
	}
	cfg.ApplyDefaults()
	return cfg
}

func loadSample(t *testing.T) *model.ObservationSet {
	t.Helper()
	set, err := repository.Load(context.Background(), "../../testdata/gva_aggregate_sample.csv", repository.Options{})
	gt.NoError(t, err).Required()
	return set
}

func newSet(t *testing.T, rows ...model.Observation) *model.ObservationSet {
	t.Helper()
	set, err := model.NewObservationSet(rows)
	gt.NoError(t, err).Required()
	return set
}
