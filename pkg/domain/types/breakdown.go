package types

import "strings"

// Breakdown selects the level of sector granularity shown on a dashboard.
// Valid values are defined per dashboard by its configuration.
type Breakdown string

const (
	// BreakdownAll is the aggregate breakdown: one row per sector, built from
	// the sector-level totals.
	BreakdownAll Breakdown = "All"

	BreakdownCreativeIndustries Breakdown = "Creative Industries"
	BreakdownDigitalSector      Breakdown = "Digital Sector"
	BreakdownCulturalSector     Breakdown = "Cultural Sector"
)

// SubSectorAll is the sub-sector sentinel marking a sector-level total row
const SubSectorAll = "All"

// String returns the string representation
func (b Breakdown) String() string {
	return string(b)
}

// IsAll reports whether b is the aggregate breakdown
func (b Breakdown) IsAll() bool {
	return b == BreakdownAll
}

// DashboardID identifies a mounted dashboard instance
type DashboardID string

// String returns the string representation
func (id DashboardID) String() string {
	return string(id)
}

// IsValid checks that the ID is usable as a flag key and log value
func (id DashboardID) IsValid() bool {
	if id == "" {
		return false
	}
	return !strings.ContainsAny(string(id), " =/")
}
