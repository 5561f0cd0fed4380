package moastar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightroute/routecore/costvector"
	"github.com/freightroute/routecore/moastar"
	"github.com/freightroute/routecore/routegraph"
)

func node(key, country, city string, lat, lon float64) *routegraph.Node {
	return &routegraph.Node{Key: key, Kind: routegraph.KindSeaport, Country: country, City: city, HasCoords: true, Lat: lat, Lon: lon, CustomsScore: 2}
}

func threeNodeGraph() *routegraph.Graph {
	g := routegraph.New(nil)
	_ = g.AddNode(node("A", "US", "X", 40.0, -74.0))
	_ = g.AddNode(node("B", "UK", "Y", 51.0, -0.1))
	_ = g.AddNode(node("C", "FR", "Z", 48.8, 2.3))

	g.AddEdgeIfBetter(&routegraph.Edge{From: "A", To: "B", Mode: routegraph.ModeSea, Time: 100, TransportCostPerKg: 0.1, Emissions: 500})
	g.AddEdgeIfBetter(&routegraph.Edge{From: "A", To: "C", Mode: routegraph.ModeSea, Time: 50, TransportCostPerKg: 0.2, Emissions: 300})
	g.AddEdgeIfBetter(&routegraph.Edge{From: "C", To: "B", Mode: routegraph.ModeRoad, Time: 10, TransportCostPerKg: 0.05, Emissions: 50})

	return g
}

func equalWeights() costvector.Weights {
	return costvector.Weights{0.25, 0.25, 0.25, 0.25}
}

func TestSearch_FindsPath(t *testing.T) {
	g := threeNodeGraph()

	path, metrics, found, err := moastar.Search(g, "A", "B", equalWeights(), 1000, 30)
	require.NoError(t, err)
	require.True(t, found)
	require.NotEmpty(t, path)
	assert.Equal(t, "A", path[0])
	assert.Equal(t, "B", path[len(path)-1])
	assert.Greater(t, metrics[costvector.TimeIdx], 0.0)
}

// TestSearch_ExactMetricsOnSingleEdge pins down the accumulation formula
// against a graph with exactly one path, where no heuristic or
// Pareto-frontier ambiguity can change the outcome.
func TestSearch_ExactMetricsOnSingleEdge(t *testing.T) {
	g := routegraph.New(nil)
	_ = g.AddNode(node("A", "US", "X", 40.0, -74.0))
	_ = g.AddNode(&routegraph.Node{Key: "B", Kind: routegraph.KindSeaport, Country: "UK", City: "Y", HasCoords: true, Lat: 51.0, Lon: -0.1, CustomsScore: 3})
	g.AddEdgeIfBetter(&routegraph.Edge{From: "A", To: "B", Mode: routegraph.ModeSea, Time: 100, TransportCostPerKg: 0.1, BorderCost: 20, Emissions: 500})

	path, metrics, found, err := moastar.Search(g, "A", "B", equalWeights(), 1000, 30)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"A", "B"}, path)

	assert.InDelta(t, 100.0, metrics[costvector.TimeIdx], 1e-9)
	assert.InDelta(t, (0.1+20)*1000, metrics[costvector.CostIdx], 1e-9)
	assert.InDelta(t, 500.0*1000/1e6, metrics[costvector.EmissionsIdx], 1e-9)
	assert.InDelta(t, 3.0, metrics[costvector.CustomsIdx], 1e-9)
}

// TestSearch_RespectsMaxDays verifies spec §8 time-budget pruning: a tight
// max_days that excludes every path yields found=false, not an error.
func TestSearch_RespectsMaxDays(t *testing.T) {
	g := threeNodeGraph()

	_, _, found, err := moastar.Search(g, "A", "B", equalWeights(), 1000, 0.01)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSearch_UnreachableGoal(t *testing.T) {
	g := routegraph.New(nil)
	_ = g.AddNode(node("A", "US", "X", 40.0, -74.0))
	_ = g.AddNode(node("B", "UK", "Y", 51.0, -0.1))

	_, _, found, err := moastar.Search(g, "A", "B", equalWeights(), 1000, 30)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSearch_RejectsMissingNodes(t *testing.T) {
	g := threeNodeGraph()

	_, _, _, err := moastar.Search(g, "missing", "B", equalWeights(), 1000, 30)
	assert.ErrorIs(t, err, moastar.ErrStartNotFound)

	_, _, _, err = moastar.Search(g, "A", "missing", equalWeights(), 1000, 30)
	assert.ErrorIs(t, err, moastar.ErrGoalNotFound)
}

func TestSearch_RejectsNonPositiveMassAndDays(t *testing.T) {
	g := threeNodeGraph()

	_, _, _, err := moastar.Search(g, "A", "B", equalWeights(), 0, 30)
	assert.ErrorIs(t, err, moastar.ErrNonPositiveMass)

	_, _, _, err = moastar.Search(g, "A", "B", equalWeights(), 1000, 0)
	assert.ErrorIs(t, err, moastar.ErrNonPositiveMaxDays)
}

// TestSearch_StartEqualsGoal verifies the degenerate zero-hop path.
func TestSearch_StartEqualsGoal(t *testing.T) {
	g := threeNodeGraph()

	path, metrics, found, err := moastar.Search(g, "A", "A", equalWeights(), 1000, 30)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"A"}, path)
	assert.Equal(t, costvector.Vector{}, metrics)
}
