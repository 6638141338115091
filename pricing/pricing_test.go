package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/energyflow/category"
	"github.com/katalvlaran/energyflow/flowgraph"
	"github.com/katalvlaran/energyflow/hierarchy"
	"github.com/katalvlaran/energyflow/pricing"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func row(from, to time.Time, elec, gaz float64) pricing.Row {
	return pricing.Row{
		Start: hierarchy.Some(from),
		End:   hierarchy.Some(to),
		Elec:  hierarchy.Some(elec),
		Gaz:   hierarchy.Some(gaz),
	}
}

func table() pricing.Table {
	return pricing.Table{
		Currency: "EUR",
		Rows: []pricing.Row{
			row(day(1, 1), day(3, 31), 0.20, 0.08),
			row(day(1, 1), day(12, 31), 0.25, 0),
			{Start: hierarchy.Pending[time.Time](), End: hierarchy.Some(day(12, 31)), Eau: hierarchy.Some(3.0)},
		},
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name       string
		cat        category.Category
		start, end time.Time
		want       float64
		err        error
	}{
		{"first covering row", category.Elec, day(1, 10), day(2, 10), 0.20, nil},
		{"window edges are inclusive", category.Elec, day(1, 1), day(3, 31), 0.20, nil},
		{"later row covers longer period", category.Elec, day(2, 1), day(5, 1), 0.25, nil},
		{"zero price skipped", category.Gaz, day(2, 1), day(5, 1), 0, pricing.ErrNoPriceForPeriod},
		{"gas in first quarter", category.Gaz, day(1, 2), day(1, 3), 0.08, nil},
		{"unavailable window skipped", category.Eau, day(1, 2), day(1, 3), 0, pricing.ErrNoPriceForPeriod},
		{"air never priced", category.Air, day(1, 2), day(1, 3), 0, pricing.ErrNoPriceForPeriod},
		{"all is unpriced", category.All, day(1, 2), day(1, 3), 0, pricing.ErrUnpriced},
		{"missing start", category.Elec, time.Time{}, day(1, 3), 0, pricing.ErrNoPeriod},
		{"reversed", category.Elec, day(1, 3), day(1, 2), 0, pricing.ErrNoPeriod},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := table().Lookup(tc.cat, tc.start, tc.end)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Unit)
			assert.Equal(t, tc.cat, p.Category)
			assert.Equal(t, "EUR", p.Currency)
		})
	}
}

func TestCosts(t *testing.T) {
	p, err := table().Lookup(category.Elec, day(1, 10), day(2, 10))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, p.Cost(10), 1e-9)

	g := flowgraph.New(nil)
	g.Nodes = []flowgraph.Node{{ID: "p_P", Name: "P", Value: 100}, {ID: "m_M", Name: "M", Value: 0}}
	costs := pricing.Costs(g, p)
	require.Len(t, costs, 2)
	assert.Equal(t, "p_P", costs[0].ID)
	assert.InDelta(t, 20.0, costs[0].Cost, 1e-9)
	assert.Zero(t, costs[1].Cost)

	assert.Nil(t, pricing.Costs(nil, p))
}
