package ranker

import (
	"sort"

	"github.com/freightroute/routecore/costvector"
	"github.com/freightroute/routecore/routeconstruct"
)

// MaxRanked is the number of routes Rank returns, per spec §4.4.
const MaxRanked = 10

// Ranked pairs a constructed route with its scalarized score.
type Ranked struct {
	Score float64
	Route routeconstruct.Route
}

// Rank scores every route in routes under weights.Scalarize and returns
// the MaxRanked cheapest, ascending by score. The sort is stable, so
// routes tying on score keep their relative input order (spec §8.6).
func Rank(routes []routeconstruct.Route, weights costvector.Weights) []Ranked {
	ranked := make([]Ranked, len(routes))
	for i, r := range routes {
		ranked[i] = Ranked{Score: weights.Scalarize(r.Metrics), Route: r}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})

	if len(ranked) > MaxRanked {
		ranked = ranked[:MaxRanked]
	}
	return ranked
}
