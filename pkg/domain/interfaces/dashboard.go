package interfaces

//go:generate moq -out mocks/dashboard_mock.go -pkg mocks . Dashboard

import (
	"github.com/dcmsstats/statsdash/pkg/domain/model"
	"github.com/dcmsstats/statsdash/pkg/domain/types"
)

// Dashboard computes everything a mounted dashboard serves. Implementations
// must be safe for concurrent use; usecase.Dashboard is read-only.
type Dashboard interface {
	ID() types.DashboardID
	Config() *model.DashboardConfig
	Options() model.DashboardOptions
	Table(breakdown types.Breakdown, mode types.Mode) (*model.Table, error)
	Figure(breakdown types.Breakdown, mode types.Mode) (*model.ChartSpec, error)
}
