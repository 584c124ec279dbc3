package model

import (
	"strings"

	"github.com/dcmsstats/statsdash/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultBaseYear          = 2010
	DefaultPrecision         = 5
	DefaultProvisionalCount  = 1
	DefaultProvisionalSuffix = " (p)"
	DefaultChartHeight       = 600
	DefaultValueColumn       = "gva"
)

// DashboardsConfig is the root of the dashboards YAML file
type DashboardsConfig struct {
	Dashboards []DashboardConfig `yaml:"dashboards"`
}

// DashboardConfig describes one mounted dashboard
type DashboardConfig struct {
	ID           types.DashboardID `yaml:"id"`
	Title        string            `yaml:"title"`
	Prefix       string            `yaml:"prefix"`
	RedirectFrom []string          `yaml:"redirect_from,omitempty"`

	Data  DataSource  `yaml:"data"`
	Chart ChartConfig `yaml:"chart"`

	Preamble        string `yaml:"preamble,omitempty"` // markdown
	Footer          string `yaml:"footer,omitempty"`   // markdown
	FeedbackEmail   string `yaml:"feedback_email,omitempty"`
	FeedbackSubject string `yaml:"feedback_subject,omitempty"`

	DefaultBreakdown types.Breakdown   `yaml:"default_breakdown,omitempty"`
	DefaultMode      types.Mode        `yaml:"default_mode,omitempty"`
	Breakdowns       []BreakdownConfig `yaml:"breakdowns"`
}

// DataSource locates the aggregate table of a dashboard
type DataSource struct {
	Path        string `yaml:"path"`
	ValueColumn string `yaml:"value_column,omitempty"`
	Encoding    string `yaml:"encoding,omitempty"` // CSV only
	Sheet       string `yaml:"sheet,omitempty"`    // XLSX only
}

// ChartConfig holds chart layout and indexation settings
type ChartConfig struct {
	Title             string  `yaml:"title,omitempty"`
	Height            int     `yaml:"height,omitempty"`
	BaseYear          int     `yaml:"base_year,omitempty"`
	Precision         *int    `yaml:"precision,omitempty"`
	ProvisionalCount  *int    `yaml:"provisional_count,omitempty"`
	ProvisionalSuffix *string `yaml:"provisional_suffix,omitempty"`
}

// BreakdownConfig is one entry of the breakdown dropdown
type BreakdownConfig struct {
	Value     types.Breakdown `yaml:"value"`
	Label     string          `yaml:"label"`
	Aggregate bool            `yaml:"aggregate,omitempty"`
	Scale     float64         `yaml:"scale,omitempty"`
	Unit      string          `yaml:"unit,omitempty"`
	RowOrder  []string        `yaml:"row_order"`
}

// Validate validates the dashboards configuration
func (c *DashboardsConfig) Validate() error {
	if len(c.Dashboards) == 0 {
		return goerr.New("at least one dashboard is required", goerr.T(ErrTagInvalidConfig))
	}

	ids := make(map[types.DashboardID]bool)
	paths := make(map[string]types.DashboardID)
	for i := range c.Dashboards {
		d := &c.Dashboards[i]
		if err := d.Validate(); err != nil {
			return goerr.Wrap(err, "invalid dashboard at index",
				goerr.T(ErrTagInvalidConfig),
				goerr.V("index", i),
				goerr.V("id", d.ID))
		}

		if ids[d.ID] {
			return goerr.New("duplicate dashboard ID",
				goerr.T(ErrTagInvalidConfig),
				goerr.V("id", d.ID))
		}
		ids[d.ID] = true

		for _, p := range append([]string{d.Prefix}, d.RedirectFrom...) {
			if owner, ok := paths[p]; ok {
				return goerr.New("path is used by more than one dashboard",
					goerr.T(ErrTagInvalidConfig),
					goerr.V("path", p),
					goerr.V("id", d.ID),
					goerr.V("other", owner))
			}
			paths[p] = d.ID
		}
	}

	return nil
}

// FindDashboard finds a dashboard by its ID
func (c *DashboardsConfig) FindDashboard(id types.DashboardID) *DashboardConfig {
	for i := range c.Dashboards {
		if c.Dashboards[i].ID == id {
			return &c.Dashboards[i]
		}
	}
	return nil
}

// ApplyDefaults fills unset optional fields and trims row labels. It is
// called by the config loader before Validate.
func (d *DashboardConfig) ApplyDefaults() {
	d.Prefix = strings.TrimRight(strings.TrimSpace(d.Prefix), "/")
	if d.Data.ValueColumn == "" {
		d.Data.ValueColumn = DefaultValueColumn
	}
	if d.Chart.Height == 0 {
		d.Chart.Height = DefaultChartHeight
	}
	if d.Chart.BaseYear == 0 {
		d.Chart.BaseYear = DefaultBaseYear
	}
	if d.DefaultMode == "" {
		d.DefaultMode = types.ModeValue
	}

	for i := range d.Breakdowns {
		b := &d.Breakdowns[i]
		if b.Value.IsAll() {
			b.Aggregate = true
		}
		if b.Scale == 0 {
			b.Scale = 1
		}
		if b.Label == "" {
			b.Label = b.Value.String()
		}
		for j, label := range b.RowOrder {
			b.RowOrder[j] = strings.TrimSpace(label)
		}
	}

	if d.DefaultBreakdown == "" && len(d.Breakdowns) > 0 {
		d.DefaultBreakdown = d.Breakdowns[0].Value
	}
}

// Validate validates a single dashboard
func (d *DashboardConfig) Validate() error {
	if !d.ID.IsValid() {
		return goerr.New("invalid dashboard ID", goerr.V("id", d.ID))
	}
	if !strings.HasPrefix(d.Prefix, "/") || len(d.Prefix) < 2 {
		return goerr.New("prefix must be a non-root absolute path", goerr.V("prefix", d.Prefix))
	}
	for _, p := range d.RedirectFrom {
		if !strings.HasPrefix(p, "/") {
			return goerr.New("redirect path must be absolute", goerr.V("path", p))
		}
	}
	if d.Data.Path == "" {
		return goerr.New("data path is required")
	}
	if d.Precision() < 0 {
		return goerr.New("precision must not be negative", goerr.V("precision", d.Precision()))
	}
	if d.ProvisionalCount() < 0 {
		return goerr.New("provisional count must not be negative", goerr.V("count", d.ProvisionalCount()))
	}
	if len(d.Breakdowns) == 0 {
		return goerr.New("at least one breakdown is required")
	}

	values := make(map[types.Breakdown]bool)
	aggregates := 0
	for i := range d.Breakdowns {
		b := &d.Breakdowns[i]
		if err := b.Validate(); err != nil {
			return goerr.Wrap(err, "invalid breakdown at index",
				goerr.V("index", i),
				goerr.V("value", b.Value))
		}
		if values[b.Value] {
			return goerr.New("duplicate breakdown", goerr.V("value", b.Value))
		}
		values[b.Value] = true
		if b.Aggregate {
			aggregates++
		}
	}
	if aggregates > 1 {
		return goerr.New("only one aggregate breakdown is allowed", goerr.V("count", aggregates))
	}

	if !values[d.DefaultBreakdown] {
		return goerr.New("default breakdown is not offered", goerr.V("breakdown", d.DefaultBreakdown))
	}
	if !d.DefaultMode.IsValid() {
		return goerr.New("invalid default mode", goerr.V("mode", d.DefaultMode))
	}

	return nil
}

// Validate validates the breakdown
func (b *BreakdownConfig) Validate() error {
	if b.Value == "" {
		return goerr.New("breakdown value is required")
	}
	if b.Scale <= 0 {
		return goerr.New("scale must be positive", goerr.V("scale", b.Scale))
	}
	if len(b.RowOrder) == 0 {
		return goerr.New("row order is required")
	}

	seen := make(map[string]bool)
	for _, label := range b.RowOrder {
		if label == "" {
			return goerr.New("row order contains an empty label")
		}
		if seen[label] {
			return goerr.New("duplicate row label", goerr.V("label", label))
		}
		seen[label] = true
	}
	return nil
}

// FindBreakdown finds a breakdown by its value
func (d *DashboardConfig) FindBreakdown(value types.Breakdown) (*BreakdownConfig, error) {
	for i := range d.Breakdowns {
		if d.Breakdowns[i].Value == value {
			result := d.Breakdowns[i]
			return &result, nil
		}
	}
	return nil, goerr.Wrap(ErrUnknownBreakdown, "breakdown is not offered by dashboard",
		goerr.V("dashboard", d.ID),
		goerr.V("breakdown", value))
}

// Precision returns the number of decimals cells are rounded to
func (d *DashboardConfig) Precision() int {
	if d.Chart.Precision == nil {
		return DefaultPrecision
	}
	return *d.Chart.Precision
}

// ProvisionalCount returns how many of the latest years are provisional
func (d *DashboardConfig) ProvisionalCount() int {
	if d.Chart.ProvisionalCount == nil {
		return DefaultProvisionalCount
	}
	return *d.Chart.ProvisionalCount
}

// ProvisionalSuffix returns the tick label suffix for provisional years
func (d *DashboardConfig) ProvisionalSuffix() string {
	if d.Chart.ProvisionalSuffix == nil {
		return DefaultProvisionalSuffix
	}
	return *d.Chart.ProvisionalSuffix
}
