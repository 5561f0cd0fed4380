package routeconstruct

import (
	"fmt"

	"github.com/freightroute/routecore/costvector"
	"github.com/freightroute/routecore/geoutil"
	"github.com/freightroute/routecore/routeconfig"
	"github.com/freightroute/routecore/routegraph"
)

// Route is a full door-to-door itinerary: an ephemeral start node, the
// MOA* core path, and an ephemeral end node, with per-leg cost and time
// broken out for display.
type Route struct {
	Path          []string
	Modes         []routegraph.EdgeMode
	Metrics       costvector.Vector
	CostBreakdown map[string]float64
	TimeBreakdown map[string]float64
}

// boundarySegment is either a reused spliced road edge or a freshly
// synthesized first/last-mile leg.
type boundarySegment struct {
	mode      routegraph.EdgeMode
	distance  float64
	time      float64
	totalCost float64
	emissions float64 // kg CO₂, already mass-scaled
}

// Construct assembles a Route from a MOA* core path and its accumulated
// metrics. ok is false when the fully-assembled route (core plus
// first/last mile) exceeds maxDays, even though the core path alone did
// not — per spec §4.3, the boundary segments can push a borderline route
// over budget.
func Construct(g *routegraph.Graph, corePath []string, coreMetrics costvector.Vector, startCoords, endCoords geoutil.Coords, startKey, endKey string, shipmentMassKg, maxDays float64, cfg routeconfig.Config) (Route, bool) {
	if len(corePath) == 0 {
		return Route{}, false
	}

	startSeg := boundaryFor(g, startKey, corePath[0], startCoords, shipmentMassKg, cfg)
	endSeg := boundaryFor(g, corePath[len(corePath)-1], endKey, endCoords, shipmentMassKg, cfg)

	costBreakdown := make(map[string]float64, len(corePath)+1)
	timeBreakdown := make(map[string]float64, len(corePath)+1)

	var coreCost float64
	var modes []routegraph.EdgeMode
	for i := 0; i < len(corePath)-1; i++ {
		u, v := corePath[i], corePath[i+1]

		// MOA* pruned to a single traversed mode per hop in practice, but
		// the graph may still carry other parallel edges; any one of them
		// reflects the same (u, v) catalog relationship for the breakdown.
		edges := g.EdgesBetween(u, v)
		if len(edges) == 0 {
			continue
		}
		e := edges[0]

		segCost := legCost(e.Mode, e.CostPerKm, e.TransportCostPerKg, e.Distance, e.BorderCost, shipmentMassKg)
		coreCost += segCost
		key := fmt.Sprintf("%s -> %s", u, v)
		costBreakdown[key] = segCost
		timeBreakdown[key] = e.Time
		modes = append(modes, e.Mode)
	}

	totalTime := coreMetrics[costvector.TimeIdx] + startSeg.time + endSeg.time
	if totalTime/24 > maxDays {
		return Route{}, false
	}

	totalCost := coreCost + startSeg.totalCost + endSeg.totalCost
	totalEmissions := coreMetrics[costvector.EmissionsIdx] + startSeg.emissions + endSeg.emissions

	totalCustoms := coreMetrics[costvector.CustomsIdx]
	if n := g.Node(corePath[0]); n != nil {
		totalCustoms += n.CustomsScore
	}
	if n := g.Node(endKey); n != nil {
		totalCustoms += n.CustomsScore
	}

	startKeyLabel := fmt.Sprintf("%s -> %s", startKey, corePath[0])
	endKeyLabel := fmt.Sprintf("%s -> %s", corePath[len(corePath)-1], endKey)
	costBreakdown[startKeyLabel] = startSeg.totalCost
	costBreakdown[endKeyLabel] = endSeg.totalCost
	timeBreakdown[startKeyLabel] = startSeg.time
	timeBreakdown[endKeyLabel] = endSeg.time

	fullPath := append([]string{startKey}, corePath...)
	fullPath = append(fullPath, endKey)
	fullModes := append([]routegraph.EdgeMode{startSeg.mode}, modes...)
	fullModes = append(fullModes, endSeg.mode)

	return Route{
		Path:          fullPath,
		Modes:         fullModes,
		Metrics:       costvector.Vector{totalTime, totalCost, totalEmissions, totalCustoms},
		CostBreakdown: costBreakdown,
		TimeBreakdown: timeBreakdown,
	}, true
}

// legCost prices one core-path hop: road edges are priced per km of
// distance plus border cost; every other mode is priced per kg of
// shipment mass plus border cost, per spec §4.3.
func legCost(mode routegraph.EdgeMode, costPerKm, costPerKg, distance, borderCost, massKg float64) float64 {
	if mode == routegraph.ModeRoad {
		return costPerKm*distance + borderCost
	}
	return costPerKg*massKg + borderCost
}

// boundaryFor resolves the first/last-mile segment between an ephemeral
// node and a core-path endpoint: it reuses an already-spliced road edge
// when one has a genuine (non-zero) distance and time, and otherwise
// synthesizes a fresh one from the raw coordinates, per the original's
// add_road_segment fallback.
func boundaryFor(g *routegraph.Graph, ephemeralKey, catalogKey string, coords geoutil.Coords, massKg float64, cfg routeconfig.Config) boundarySegment {
	if e := g.EdgeBetween(ephemeralKey, catalogKey, routegraph.ModeRoad); e != nil && e.Distance != 0 && e.Time != 0 {
		return boundarySegment{
			mode:      e.Mode,
			distance:  e.Distance,
			time:      e.Time,
			totalCost: legCost(e.Mode, e.CostPerKm, e.TransportCostPerKg, e.Distance, e.BorderCost, massKg),
			emissions: routegraph.ScaleEmissionsKg(e.Emissions, massKg),
		}
	}

	return synthesizeRoadSegment(g, catalogKey, coords, massKg, cfg)
}

// synthesizeRoadSegment builds a first/last-mile road leg directly from
// coordinates, for when the catalog node has no usable spliced edge (or
// no coordinates at all, in which case it degrades to a zero-distance
// segment), grounded on the original's add_road_segment.
func synthesizeRoadSegment(g *routegraph.Graph, catalogKey string, coords geoutil.Coords, massKg float64, cfg routeconfig.Config) boundarySegment {
	n := g.Node(catalogKey)
	if n == nil || !n.HasCoords {
		return boundarySegment{mode: routegraph.ModeRoad}
	}

	distance := geoutil.Haversine(coords, geoutil.Coords{Lat: n.Lat, Lon: n.Lon})
	timeHours := distance / cfg.Defaults.FallbackSpeedKmH
	totalCost := cfg.Defaults.RoadCostPerKm * distance
	emissions := routegraph.ScaleEmissionsKg(routegraph.EmissionIntensity(distance, cfg.Defaults.RoadEmissionFactor), massKg)

	return boundarySegment{mode: routegraph.ModeRoad, distance: distance, time: timeHours, totalCost: totalCost, emissions: emissions}
}
