package corefacade

import "github.com/freightroute/routecore/routegraph"

// RankedRoute is one entry of Response.Routes: a constructed route plus
// its rank and scalarized score. TimeDays and EmissionsKg convert the
// internal hours/kg units the same way the original handler's JSON
// response does (hours / 24, kg as-is).
type RankedRoute struct {
	Rank  int
	Score float64

	Path  []string
	Modes []routegraph.EdgeMode

	TimeDays    float64
	Cost        float64
	EmissionsKg float64
	Customs     float64

	CostBreakdown map[string]float64
	TimeBreakdown map[string]float64
}

// Response is the result of FindRoutes: up to ranker.MaxRanked candidate
// routes, best first.
type Response struct {
	Routes []RankedRoute
}
