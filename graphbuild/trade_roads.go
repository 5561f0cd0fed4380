package graphbuild

import (
	"github.com/freightroute/routecore/geoutil"
	"github.com/freightroute/routecore/routegraph"
	"github.com/freightroute/routecore/tables"
)

// buildTradeNeighborRoadEdges implements spec §4.2 step 6: for every
// declared trade-neighbor pair (country, neighbor), connect every node
// of country to every node of neighbor by a road edge, when both have
// coordinates and the great-circle distance is within
// max_road_distance_km. This is the cross-border road network that lets
// MOA* hop between adjacent countries without a sea or air leg.
func (b *Builder) buildTradeNeighborRoadEdges(g *routegraph.Graph, tradeNeighbors map[string][]string, tradeCosts map[string]tables.TradeCost, carbonFactors map[string]float64) {
	factor := carbonFactors[roadFreightLabel]

	byCountry := make(map[string][]string)
	for _, key := range g.NodeKeys() {
		n := g.Node(key)
		if n == nil || !n.HasCoords {
			continue
		}
		byCountry[n.Country] = append(byCountry[n.Country], key)
	}

	for country, neighbors := range tradeNeighbors {
		for _, neighbor := range neighbors {
			for _, n1 := range byCountry[country] {
				for _, n2 := range byCountry[neighbor] {
					if n1 == n2 {
						continue
					}
					b.maybeAddTradeRoad(g, n1, n2, country, neighbor, tradeCosts, factor)
				}
			}
		}
	}
}

func (b *Builder) maybeAddTradeRoad(g *routegraph.Graph, n1, n2, country, neighbor string, tradeCosts map[string]tables.TradeCost, factor float64) {
	a := g.Node(n1)
	c := g.Node(n2)

	distance := geoutil.Haversine(geoutil.Coords{Lat: a.Lat, Lon: a.Lon}, geoutil.Coords{Lat: c.Lat, Lon: c.Lon})
	if distance > b.cfg.Defaults.MaxRoadDistanceKm {
		return
	}

	timeHours := distance / b.cfg.Defaults.FallbackSpeedKmH

	g.AddEdgeIfBetter(&routegraph.Edge{
		From:       n1,
		To:         n2,
		Mode:       routegraph.ModeRoad,
		Distance:   distance,
		Time:       timeHours,
		CostPerKm:  b.cfg.Defaults.RoadCostPerKm,
		BorderCost: borderCost(country, neighbor, tradeCosts, b.cfg.Defaults.BorderCost),
		Emissions:  routegraph.EmissionIntensity(distance, factor),
	})
}
