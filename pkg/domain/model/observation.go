package model

import (
	"math"
	"sort"
	"strings"

	"github.com/dcmsstats/statsdash/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Observation is one row of the aggregate table
type Observation struct {
	Sector    string
	SubSector string
	Year      int
	Value     float64
}

// IsSectorTotal reports whether the row is a sector-level total
func (o Observation) IsSectorTotal() bool {
	return o.SubSector == types.SubSectorAll
}

// ObservationSet is the read-only table loaded at startup
type ObservationSet struct {
	rows  []Observation
	years []int
}

// NewObservationSet normalises labels and builds the set. Empty sub-sectors
// are treated as sector totals.
func NewObservationSet(rows []Observation) (*ObservationSet, error) {
	if len(rows) == 0 {
		return nil, goerr.New("observation set is empty", goerr.T(ErrTagInvalidData))
	}

	normalized := make([]Observation, len(rows))
	seenYears := make(map[int]bool)
	for i, row := range rows {
		row.Sector = strings.TrimSpace(row.Sector)
		row.SubSector = strings.TrimSpace(row.SubSector)
		if row.SubSector == "" {
			row.SubSector = types.SubSectorAll
		}
		if row.Sector == "" {
			return nil, goerr.New("sector is empty",
				goerr.T(ErrTagInvalidData),
				goerr.V("index", i),
				goerr.V("year", row.Year))
		}
		if math.IsNaN(row.Value) || math.IsInf(row.Value, 0) {
			return nil, goerr.New("value is not finite",
				goerr.T(ErrTagInvalidData),
				goerr.V("index", i),
				goerr.V("sector", row.Sector),
				goerr.V("year", row.Year))
		}
		normalized[i] = row
		seenYears[row.Year] = true
	}

	years := make([]int, 0, len(seenYears))
	for y := range seenYears {
		years = append(years, y)
	}
	sort.Ints(years)

	return &ObservationSet{rows: normalized, years: years}, nil
}

// Len returns the number of observations
func (s *ObservationSet) Len() int {
	return len(s.rows)
}

// Rows returns a copy of the observations
func (s *ObservationSet) Rows() []Observation {
	result := make([]Observation, len(s.rows))
	copy(result, s.rows)
	return result
}

// Each calls fn for every observation in load order
func (s *ObservationSet) Each(fn func(Observation)) {
	for _, row := range s.rows {
		fn(row)
	}
}

// Years returns every observed year in ascending order
func (s *ObservationSet) Years() []int {
	result := make([]int, len(s.years))
	copy(result, s.years)
	return result
}

// LatestYear returns the most recent observed year
func (s *ObservationSet) LatestYear() int {
	return s.years[len(s.years)-1]
}

// Sectors returns the distinct sectors in ascending order
func (s *ObservationSet) Sectors() []string {
	seen := make(map[string]bool)
	for _, row := range s.rows {
		seen[row.Sector] = true
	}
	return sortedKeys(seen)
}

// SectorTotals returns the sectors that carry sector-level total rows
func (s *ObservationSet) SectorTotals() []string {
	seen := make(map[string]bool)
	for _, row := range s.rows {
		if row.IsSectorTotal() {
			seen[row.Sector] = true
		}
	}
	return sortedKeys(seen)
}

// SubSectors returns the distinct sub-sectors of a sector, excluding the
// sector total sentinel
func (s *ObservationSet) SubSectors(sector string) []string {
	seen := make(map[string]bool)
	for _, row := range s.rows {
		if row.Sector == sector && !row.IsSectorTotal() {
			seen[row.SubSector] = true
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
