package graphbuild

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/freightroute/routecore/rlog"
	"github.com/freightroute/routecore/routeconfig"
	"github.com/freightroute/routecore/routegraph"
	"github.com/freightroute/routecore/tables"
	"github.com/freightroute/routecore/unitparse"
)

const (
	seaFreightLabel  = "Sea Freight"
	airFreightLabel  = "Air Freight"
	roadFreightLabel = "Road Freight"
)

// Builder assembles a routegraph.Graph from catalog tables, per spec
// §4.2. It retains the carbon-emission factor table loaded by the most
// recent Build call so SpliceEphemeral can reuse it without re-reading
// the file, mirroring the original service's add_dynamic_road(), which
// re-derives the same "Road Freight" factor it already had.
type Builder struct {
	cfg           routeconfig.Config
	log           *slog.Logger
	carbonFactors map[string]float64
}

// New returns a Builder. A nil logger is replaced with rlog.New's default
// (info-level, text) logger, the same one unitparse's warn-and-degrade
// calls end up writing through once this Builder passes it down.
func New(cfg routeconfig.Config, log *slog.Logger) *Builder {
	if log == nil {
		log = rlog.New(rlog.Config{})
	}
	return &Builder{cfg: cfg, log: log}
}

// Build reads every table named by tp and returns a populated Graph along
// with the country → trade-neighbor-countries map (spec §4.2 step 6's
// input, also needed later by corefacade to expand a request's candidate
// node sets across a declared country's trade neighbors).
func (b *Builder) Build(tp TablePaths) (*routegraph.Graph, map[string][]string, error) {
	seaports, err := tables.LoadSeaports(tp.Seaports)
	if err != nil {
		return nil, nil, wrapLoad("seaports", err)
	}
	airports, err := tables.LoadAirports(tp.Airports)
	if err != nil {
		return nil, nil, wrapLoad("airports", err)
	}
	ships, err := tables.LoadShipLanes(tp.Ships)
	if err != nil {
		return nil, nil, wrapLoad("ships", err)
	}
	flights, err := tables.LoadFlights(tp.Flights)
	if err != nil {
		return nil, nil, wrapLoad("flights", err)
	}
	connectors, err := tables.LoadConnectors(tp.Connectors)
	if err != nil {
		return nil, nil, wrapLoad("seaport_airport_connect", err)
	}
	tradeCosts, err := tables.LoadTradeCosts(tp.Trade)
	if err != nil {
		return nil, nil, wrapLoad("trade", err)
	}
	tradeNeighbors, err := tables.LoadTradeNeighbors(tp.TradeNeighbour)
	if err != nil {
		return nil, nil, wrapLoad("trade_neighbour", err)
	}
	logistics, err := tables.LoadLogistics(tp.Logistics)
	if err != nil {
		return nil, nil, wrapLoad("logistics", err)
	}
	carbonFactors, err := tables.LoadCarbonFactors(tp.CarbonEmission)
	if err != nil {
		return nil, nil, wrapLoad("carbon_emission", err)
	}
	b.carbonFactors = carbonFactors

	g := routegraph.New(b.log)

	b.buildNodes(g, seaports, airports, logistics)
	iataIndex := buildIATAIndex(airports)

	b.buildSeaEdges(g, ships, tradeCosts, carbonFactors)
	b.buildAirEdges(g, flights, iataIndex, tradeCosts, carbonFactors)
	b.buildConnectorEdges(g, connectors, tradeCosts, carbonFactors)
	b.buildTradeNeighborRoadEdges(g, tradeNeighbors, tradeCosts, carbonFactors)
	b.addIntermodalEdges(g)

	return g, tradeNeighbors, nil
}

// iataEntry is the (country, city) an IATA code resolves to.
type iataEntry struct {
	Country string
	City    string
}

func buildIATAIndex(airports []tables.Airport) map[string]iataEntry {
	idx := make(map[string]iataEntry, len(airports))
	for _, a := range airports {
		if a.IATA == "" {
			continue
		}
		idx[a.IATA] = iataEntry{Country: a.Country, City: a.City}
	}
	return idx
}

// buildNodes implements spec §4.2 step 1: one Node per seaport and
// airport row, seaports enriched with the logistics table (falling back
// to routegraph's package defaults when a country is absent from it).
func (b *Builder) buildNodes(g *routegraph.Graph, seaports []tables.Seaport, airports []tables.Airport, logistics map[string]tables.Logistics) {
	for _, sp := range seaports {
		n := &routegraph.Node{
			Key:               routegraph.SeaportKey(sp.Country, sp.City),
			Kind:              routegraph.KindSeaport,
			Country:           sp.Country,
			City:              sp.City,
			HasCoords:         sp.HasCoords,
			Lat:               sp.Latitude,
			Lon:               sp.Longitude,
			CustomsScore:      routegraph.DefaultCustomsScore,
			MeanPortDwellHrs:  routegraph.DefaultPortDwellHours,
			MeanTurnaroundHrs: routegraph.DefaultPortTurnaroundHrs,
		}
		if l, ok := logistics[sp.Country]; ok {
			n.CustomsScore = l.CustomsScore
			n.MeanPortDwellHrs = l.MeanPortDwellDays * 24
			n.MeanTurnaroundHrs = l.MeanTurnaroundDays * 24
		}
		if err := g.AddNode(n); err != nil {
			b.log.Warn("graphbuild: duplicate seaport row ignored", "key", n.Key, "err", err)
		}
	}

	for _, ap := range airports {
		n := &routegraph.Node{
			Key:       routegraph.AirportKey(ap.Country, ap.City),
			Kind:      routegraph.KindAirport,
			Country:   ap.Country,
			City:      ap.City,
			HasCoords: ap.HasCoords,
			Lat:       ap.Latitude,
			Lon:       ap.Longitude,
		}
		if err := g.AddNode(n); err != nil {
			b.log.Warn("graphbuild: duplicate airport row ignored", "key", n.Key, "err", err)
		}
	}
}

// borderCost sums the export cost of countryA and the import cost of
// countryB, falling back to the configured default border cost when a
// country is absent from the trade table. Same-country legs are free.
func borderCost(countryA, countryB string, tradeCosts map[string]tables.TradeCost, fallback float64) float64 {
	if countryA == countryB {
		return 0
	}
	export := fallback
	if tc, ok := tradeCosts[countryA]; ok {
		export = tc.ExportBorderCost
	}
	imp := fallback
	if tc, ok := tradeCosts[countryB]; ok {
		imp = tc.ImportBorderCost
	}
	return export + imp
}

// buildSeaEdges implements spec §4.2 step 3. Sea edge time includes the
// destination seaport's mean dwell time, per the original's
// build_edges(): "time = row.Time + dest.mean_port_dwell_time".
func (b *Builder) buildSeaEdges(g *routegraph.Graph, ships []tables.ShipLane, tradeCosts map[string]tables.TradeCost, carbonFactors map[string]float64) {
	factor := carbonFactors[seaFreightLabel]

	for _, lane := range ships {
		from := routegraph.SeaportKey(lane.CountryA, lane.PortA)
		to := routegraph.SeaportKey(lane.CountryB, lane.PortB)

		distance := unitparse.ParseDistanceKm(lane.Distance, b.cfg.Defaults.FallbackDistanceKm, b.log)
		timeHours := unitparse.ParseTimeHours(lane.Time, b.cfg.Defaults.FallbackTimeHours, b.log)
		if dest := g.Node(to); dest != nil {
			timeHours += dest.MeanPortDwellHrs
		}

		costPerKg := b.cfg.Defaults.SeaCostPerKg
		if lane.PricePerKg != nil {
			costPerKg = *lane.PricePerKg
		}

		g.AddEdgeIfBetter(&routegraph.Edge{
			From:               from,
			To:                 to,
			Mode:               routegraph.ModeSea,
			Distance:           distance,
			Time:               timeHours,
			TransportCostPerKg: costPerKg,
			BorderCost:         borderCost(lane.CountryA, lane.CountryB, tradeCosts, b.cfg.Defaults.BorderCost),
			Emissions:          routegraph.EmissionIntensity(distance, factor),
			Route:              lane.Route,
		})
	}
}

// buildAirEdges implements spec §4.2 step 4. A flight row names its
// endpoints by IATA code; iataIndex recovers the (country, city) pair so
// the edge can be keyed by the same AirportKey used in step 1. An IATA
// code absent from the index falls back to using the code itself as the
// city name, mirroring the original's iata_to_city.get(..., (country,
// IATA))[1] default.
func (b *Builder) buildAirEdges(g *routegraph.Graph, flights []tables.Flight, iataIndex map[string]iataEntry, tradeCosts map[string]tables.TradeCost, carbonFactors map[string]float64) {
	factor := carbonFactors[airFreightLabel]

	for _, f := range flights {
		fromCity := f.FromIATA
		if e, ok := iataIndex[f.FromIATA]; ok {
			fromCity = e.City
		}
		toCity := f.ToIATA
		if e, ok := iataIndex[f.ToIATA]; ok {
			toCity = e.City
		}

		from := routegraph.AirportKey(f.FromCountry, fromCity)
		to := routegraph.AirportKey(f.ToCountry, toCity)

		distance := unitparse.ParseDistanceKm(f.DistanceKm, b.cfg.Defaults.FallbackDistanceKm, b.log)
		// A bare number is minutes; a unit string ("7 hours") is parsed
		// straight to hours.
		var timeHours float64
		if minutes, err := strconv.ParseFloat(strings.TrimSpace(f.FlightTimeMinutes), 64); err == nil {
			timeHours = minutes / 60
		} else {
			timeHours = unitparse.ParseTimeHours(f.FlightTimeMinutes, b.cfg.Defaults.FallbackTimeHours, b.log)
		}

		g.AddEdgeIfBetter(&routegraph.Edge{
			From:               from,
			To:                 to,
			Mode:               routegraph.ModeAir,
			Distance:           distance,
			Time:               timeHours,
			TransportCostPerKg: f.CostPerKg,
			BorderCost:         borderCost(f.FromCountry, f.ToCountry, tradeCosts, b.cfg.Defaults.BorderCost),
			Emissions:          routegraph.EmissionIntensity(distance, factor),
		})
	}
}

// buildConnectorEdges implements spec §4.2 step 5: a road edge between a
// seaport and an airport in the same city. Cost_USD is a flat shipment
// fee in the source table; dividing by 1000 turns it into a per-km rate,
// stored in CostPerKm since this edge's Mode is road (spec §3: road
// edges are priced by CostPerKm, not TransportCostPerKg).
func (b *Builder) buildConnectorEdges(g *routegraph.Graph, connectors []tables.Connector, tradeCosts map[string]tables.TradeCost, carbonFactors map[string]float64) {
	factor := carbonFactors[roadFreightLabel]

	for _, c := range connectors {
		from := routegraph.SeaportKey(c.PortCountry, c.PortCity)
		to := routegraph.AirportKey(c.PortCountry, c.City)

		distance := unitparse.ParseDistanceKm(c.Distance, b.cfg.Defaults.FallbackDistanceKm, b.log)
		timeHours := unitparse.ParseTimeHours(c.Time, b.cfg.Defaults.FallbackTimeHours, b.log)

		g.AddEdgeIfBetter(&routegraph.Edge{
			From:       from,
			To:         to,
			Mode:       routegraph.ModeRoad,
			Distance:   distance,
			Time:       timeHours,
			CostPerKm:  c.CostUSD / 1000,
			BorderCost: borderCost(c.PortCountry, c.PortCountry, tradeCosts, b.cfg.Defaults.BorderCost),
			Emissions:  routegraph.EmissionIntensity(distance, factor),
		})
	}
}

// addIntermodalEdges implements spec §4.2 step 7: a zero-cost,
// zero-distance edge pair between a seaport and the airport of the same
// (country, city), in both directions, timed at the seaport's dwell
// time (or the configured default if the seaport node is missing one).
func (b *Builder) addIntermodalEdges(g *routegraph.Graph) {
	for _, key := range g.NodeKeys() {
		n := g.Node(key)
		if n == nil || n.Kind != routegraph.KindSeaport {
			continue
		}

		airportKey := routegraph.AirportKey(n.Country, n.City)
		if !g.HasNode(airportKey) {
			continue
		}

		dwell := n.MeanPortDwellHrs
		if dwell == 0 {
			dwell = b.cfg.Defaults.DwellTime
		}

		g.AddEdgeIfBetter(&routegraph.Edge{From: n.Key, To: airportKey, Mode: routegraph.ModeIntermodal, Time: dwell})
		g.AddEdgeIfBetter(&routegraph.Edge{From: airportKey, To: n.Key, Mode: routegraph.ModeIntermodal, Time: dwell})
	}
}
