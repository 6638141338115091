package hierarchy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/energyflow/hierarchy"
)

func level(id string, order int) hierarchy.LevelConfig {
	return hierarchy.LevelConfig{ID: id, Name: id, Order: order, Status: hierarchy.Available}
}

func TestSort_Ascending(t *testing.T) {
	in := []hierarchy.LevelConfig{level("machine", 2), level("plant", 0), level("workshop", 1)}

	got, err := hierarchy.Sort(in)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "plant", got.Root().ID)
	assert.Equal(t, "workshop", got[1].ID)
	assert.Equal(t, "machine", got.Leaf().ID)
	assert.Equal(t, 2, got.LeafOrder())

	// input untouched
	assert.Equal(t, "machine", in[0].ID)
}

func TestSort_Errors(t *testing.T) {
	tests := []struct {
		name   string
		levels []hierarchy.LevelConfig
		want   error
	}{
		{"empty", nil, hierarchy.ErrNoLevels},
		{"empty id", []hierarchy.LevelConfig{level("", 0)}, hierarchy.ErrEmptyLevelID},
		{"duplicate id", []hierarchy.LevelConfig{level("a", 0), level("a", 1)}, hierarchy.ErrDuplicateLevelID},
		{"negative", []hierarchy.LevelConfig{level("a", -1)}, hierarchy.ErrNegativeOrder},
		{"duplicate order", []hierarchy.LevelConfig{level("a", 0), level("b", 0)}, hierarchy.ErrDuplicateOrder},
		{"gap", []hierarchy.LevelConfig{level("a", 0), level("b", 2)}, hierarchy.ErrOrderGap},
		{"not from zero", []hierarchy.LevelConfig{level("a", 1), level("b", 2)}, hierarchy.ErrOrderGap},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := hierarchy.Sort(tc.levels)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, hierarchy.Validate(tc.levels), tc.want)
		})
	}
}

func TestLevels_Lookups(t *testing.T) {
	ls, err := hierarchy.Sort([]hierarchy.LevelConfig{level("plant", 0), level("machine", 1)})
	require.NoError(t, err)

	lc, ok := ls.At(1)
	require.True(t, ok)
	assert.Equal(t, "machine", lc.ID)
	_, ok = ls.At(2)
	assert.False(t, ok)
	_, ok = ls.At(-1)
	assert.False(t, ok)

	lc, ok = ls.ByID("plant")
	require.True(t, ok)
	assert.Equal(t, 0, lc.Order)
	_, ok = ls.ByID("nope")
	assert.False(t, ok)

	assert.Equal(t, []hierarchy.Info{{Level: 0, Name: "plant"}, {Level: 1, Name: "machine"}}, ls.Infos())
}

func TestPendingLevels(t *testing.T) {
	loading := level("workshop", 1)
	loading.Status = hierarchy.Loading
	assert.Equal(t, []string{"workshop"}, hierarchy.PendingLevels([]hierarchy.LevelConfig{level("plant", 0), loading}))
	assert.Empty(t, hierarchy.PendingLevels([]hierarchy.LevelConfig{level("plant", 0)}))
}

func TestRecord_Parent(t *testing.T) {
	r := hierarchy.Record{Parents: map[int]hierarchy.Attr[string]{
		0: hierarchy.Some("P1"),
		1: hierarchy.Some("Empty"),
		2: hierarchy.Pending[string](),
		3: hierarchy.Some("   "),
	}}

	name, ok := r.Parent(0)
	assert.True(t, ok)
	assert.Equal(t, "P1", name)

	for _, order := range []int{1, 2, 3, 4} {
		_, ok = r.Parent(order)
		assert.False(t, ok, "order %d", order)
	}

	_, ok = hierarchy.Record{}.Parent(0)
	assert.False(t, ok, "nil parent map")
}

func TestAttr(t *testing.T) {
	v, ok := hierarchy.Some(3.5).Get()
	assert.True(t, ok)
	assert.Equal(t, 3.5, v)

	_, ok = hierarchy.Pending[float64]().Get()
	assert.False(t, ok)
	assert.False(t, hierarchy.Attr[string]{}.Available())
	assert.Equal(t, "loading", hierarchy.Loading.String())
	assert.Equal(t, "unavailable", hierarchy.Unavailable.String())
	assert.Equal(t, "available", hierarchy.Available.String())
}
