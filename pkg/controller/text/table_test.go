package text_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/dcmsstats/statsdash/pkg/controller/text"
	"github.com/dcmsstats/statsdash/pkg/domain/model"
	"github.com/dcmsstats/statsdash/pkg/domain/types"
	"github.com/m-mizutani/gt"
	"golang.org/x/text/language"
)

func TestFormatValue(t *testing.T) {
	x := text.NewTableWriter(language.BritishEnglish, 5)

	testCases := []struct {
		input    float64
		expected string
	}{
		{input: 1855, expected: "1,855"},
		{input: 45, expected: "45"},
		{input: 33.33333, expected: "33.33333"},
		{input: 1234567.5, expected: "1,234,567.5"},
		{input: math.NaN(), expected: "-"},
	}

	for _, tc := range testCases {
		gt.Equal(t, x.FormatValue(tc.input), tc.expected)
	}
}

func TestTableWriter_Write(t *testing.T) {
	cfg := &model.DashboardConfig{
		ID:     "gva",
		Prefix: "/dash2",
		Data:   model.DataSource{Path: "gva.csv"},
		Breakdowns: []model.BreakdownConfig{
			{Value: types.BreakdownCreativeIndustries, RowOrder: []string{"Publishing", "Crafts"}},
		},
	}
	cfg.ApplyDefaults()

	table := &model.Table{
		Breakdown: types.BreakdownCreativeIndustries,
		Mode:      types.ModeValue,
		Rows:      []string{"Publishing", "Crafts"},
		Years:     []int{2015, 2016},
		Cells: [][]float64{
			{12500, 13250.5},
			{math.NaN(), 410},
		},
	}

	var buf bytes.Buffer
	gt.NoError(t, text.NewTableWriter(language.BritishEnglish, 5).Write(&buf, table, cfg)).Required()

	out := buf.String()
	gt.S(t, out).Contains("2016 (p)")
	gt.S(t, out).Contains("Creative Industries")
	gt.S(t, out).NotContains("CREATIVE INDUSTRIES")
	gt.S(t, out).Contains("Publishing")
	gt.S(t, out).Contains("12,500")
	gt.S(t, out).Contains("13,250.5")
	gt.S(t, out).Contains("410")
}
