package tables_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightroute/routecore/tables"
)

func TestLoadSeaports(t *testing.T) {
	rows, err := tables.LoadSeaports("testdata/seaports.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "US", rows[0].Country)
	assert.Equal(t, "NewYork", rows[0].City)
	assert.True(t, rows[0].HasCoords)
	assert.InDelta(t, 40.7128, rows[0].Latitude, 1e-6)
}

// TestLoadTradeNeighbors verifies spec §8.10: "France: Germany;Italy"
// splits into exactly ["Germany", "Italy"], and a literal "None" yields
// no neighbors.
func TestLoadTradeNeighbors(t *testing.T) {
	m, err := tables.LoadTradeNeighbors("testdata/trade_neighbour.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"Germany", "Italy"}, m["France"])
	assert.Empty(t, m["US"])
}

func TestLoadSeaports_MissingFile(t *testing.T) {
	_, err := tables.LoadSeaports("testdata/does_not_exist.csv")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does_not_exist.csv")
}
