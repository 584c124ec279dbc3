package model_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/dcmsstats/statsdash/pkg/domain/model"
	"github.com/dcmsstats/statsdash/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestTable_Cell(t *testing.T) {
	table := &model.Table{
		Breakdown: types.BreakdownCreativeIndustries,
		Mode:      types.ModeValue,
		Rows:      []string{"Publishing", "Crafts"},
		Years:     []int{2010, 2016},
		Cells: [][]float64{
			{500, 650},
			{math.NaN(), math.NaN()},
		},
		Missing: []string{"Crafts"},
	}

	v, ok := table.Cell("Publishing", 2016)
	gt.True(t, ok)
	gt.Equal(t, v, 650.0)

	v, ok = table.Cell("Crafts", 2010)
	gt.True(t, ok)
	gt.True(t, math.IsNaN(v))

	_, ok = table.Cell("Music", 2010)
	gt.False(t, ok)
	_, ok = table.Cell("Publishing", 2011)
	gt.False(t, ok)

	gt.Equal(t, table.Row("Publishing"), []float64{500, 650})
	gt.Nil(t, table.Row("Music"))
	gt.True(t, table.HasDrift())
}

func TestTable_MarshalJSON(t *testing.T) {
	table := &model.Table{
		Breakdown: types.BreakdownAll,
		Mode:      types.ModeIndexed,
		Rows:      []string{"Tourism"},
		Years:     []int{2010, 2011},
		Cells:     [][]float64{{100, math.NaN()}},
	}

	raw, err := json.Marshal(table)
	gt.NoError(t, err).Required()
	gt.Equal(t, string(raw),
		`{"breakdown":"All","mode":"Indexed","years":[2010,2011],"rows":[{"label":"Tourism","values":[100,null]}]}`)
}

func TestNullableValues(t *testing.T) {
	values := model.NullableValues([]float64{1.5, math.NaN(), math.Inf(1)})
	gt.Equal(t, len(values), 3)
	gt.Equal(t, *values[0], 1.5)
	gt.Nil(t, values[1])
	gt.Nil(t, values[2])
}
