package graphbuild

import (
	"math"

	"github.com/freightroute/routecore/geoutil"
	"github.com/freightroute/routecore/routegraph"
)

// SpliceEphemeral adds a shipper-origin and consignee-destination node to
// g and connects each to the nearest seaport and nearest airport within
// its declared country, by road, in both directions — the per-request
// counterpart to Build(), grounded on the original's add_dynamic_road().
// g should be a Clone() of the static catalog graph: splicing mutates g
// in place and is meant to be thrown away with the request.
//
// If a country has no seaport or airport with coordinates, the
// corresponding ephemeral node is added but left without road edges; it
// simply won't be reachable, which MOA* reports as "no route found"
// rather than as a distinct splicing error.
func (b *Builder) SpliceEphemeral(g *routegraph.Graph, start, end geoutil.Coords, startCountry, endCountry string) (startKey, endKey string) {
	factor := b.carbonFactors[roadFreightLabel]

	startKey = routegraph.CustomStartKey(start.Lat, start.Lon)
	endKey = routegraph.CustomEndKey(end.Lat, end.Lon)

	if !g.HasNode(startKey) {
		_ = g.AddNode(&routegraph.Node{Key: startKey, Kind: routegraph.KindStart, Country: "Unknown", City: "Custom", HasCoords: true, Lat: start.Lat, Lon: start.Lon})
	}
	if !g.HasNode(endKey) {
		_ = g.AddNode(&routegraph.Node{Key: endKey, Kind: routegraph.KindEnd, Country: "Unknown", City: "Custom", HasCoords: true, Lat: end.Lat, Lon: end.Lon})
	}

	for _, nearest := range nearestSeaportAndAirport(g, start, startCountry) {
		b.addEphemeralRoad(g, startKey, nearest, start, factor)
	}
	for _, nearest := range nearestSeaportAndAirport(g, end, endCountry) {
		b.addEphemeralRoad(g, endKey, nearest, end, factor)
	}

	return startKey, endKey
}

// addEphemeralRoad adds the bidirectional road edge pair between an
// ephemeral node and a catalog node, per the original's symmetric
// add_edge_if_unique calls in both directions.
func (b *Builder) addEphemeralRoad(g *routegraph.Graph, ephemeralKey, catalogKey string, loc geoutil.Coords, roadFactor float64) {
	catalog := g.Node(catalogKey)
	if catalog == nil {
		return
	}

	distance := geoutil.Haversine(loc, geoutil.Coords{Lat: catalog.Lat, Lon: catalog.Lon})
	timeHours := distance / b.cfg.Defaults.FallbackSpeedKmH
	emissions := routegraph.EmissionIntensity(distance, roadFactor)

	g.AddEdgeIfBetter(&routegraph.Edge{
		From: ephemeralKey, To: catalogKey, Mode: routegraph.ModeRoad,
		Distance: distance, Time: timeHours,
		CostPerKm: b.cfg.Defaults.RoadCostPerKm, Emissions: emissions,
	})
	g.AddEdgeIfBetter(&routegraph.Edge{
		From: catalogKey, To: ephemeralKey, Mode: routegraph.ModeRoad,
		Distance: distance, Time: timeHours,
		CostPerKm: b.cfg.Defaults.RoadCostPerKm, Emissions: emissions,
	})
}

// nearestSeaportAndAirport returns, as a slice of 0-2 keys, the closest
// seaport and closest airport in g whose Country equals countryHint and
// which has coordinates. It is a linear scan, matching the original's
// full node-table walk per call; the catalog is small enough that an
// index would be premature.
func nearestSeaportAndAirport(g *routegraph.Graph, loc geoutil.Coords, countryHint string) []string {
	var nearestSeaport, nearestAirport string
	minSeaport, minAirport := math.Inf(1), math.Inf(1)

	for _, key := range g.NodeKeys() {
		n := g.Node(key)
		if n == nil || !n.HasCoords || n.Country != countryHint {
			continue
		}

		dist := geoutil.Haversine(loc, geoutil.Coords{Lat: n.Lat, Lon: n.Lon})
		switch n.Kind {
		case routegraph.KindSeaport:
			if dist < minSeaport {
				minSeaport = dist
				nearestSeaport = key
			}
		case routegraph.KindAirport:
			if dist < minAirport {
				minAirport = dist
				nearestAirport = key
			}
		}
	}

	var out []string
	if nearestSeaport != "" {
		out = append(out, nearestSeaport)
	}
	if nearestAirport != "" {
		out = append(out, nearestAirport)
	}
	return out
}
