package corefacade

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/freightroute/routecore/costvector"
	"github.com/freightroute/routecore/geoutil"
	"github.com/freightroute/routecore/graphbuild"
	"github.com/freightroute/routecore/moastar"
	"github.com/freightroute/routecore/ranker"
	"github.com/freightroute/routecore/rlog"
	"github.com/freightroute/routecore/routeconfig"
	"github.com/freightroute/routecore/routeconstruct"
	"github.com/freightroute/routecore/routegraph"
)

// Facade orchestrates a full find-routes call: build the catalog graph,
// resolve weights, splice the caller's endpoints, search every candidate
// node pair, assemble full routes, and rank them. It is the Go
// counterpart of the original service's Flask handler, minus the HTTP
// and JSON framing.
type Facade struct {
	cfg routeconfig.Config
	log *slog.Logger
}

// New returns a Facade. A nil logger is replaced with rlog.New's default
// (info-level, text) logger, which this Facade then hands to graphbuild
// and, through it, to unitparse's warn-and-degrade calls.
func New(cfg routeconfig.Config, log *slog.Logger) *Facade {
	if log == nil {
		log = rlog.New(rlog.Config{})
	}
	return &Facade{cfg: cfg, log: log}
}

// FindRoutes builds the catalog graph from tp, validates req, and returns
// up to ranker.MaxRanked ranked routes between req's origin and
// destination.
func (f *Facade) FindRoutes(tp graphbuild.TablePaths, req Request) (Response, error) {
	if err := Validate(req); err != nil {
		return Response{}, err
	}

	weights := ResolveWeights(req)
	if err := validateWeights(weights); err != nil {
		return Response{}, err
	}
	maxDays := resolveMaxDays(req.MaxDays)

	builder := graphbuild.New(f.cfg, f.log)
	catalog, tradeNeighbors, err := builder.Build(tp)
	if err != nil {
		return Response{}, fmt.Errorf("corefacade: building graph: %w", err)
	}

	g := catalog.Clone()
	start := geoutil.Coords{Lat: req.StartLat, Lon: req.StartLon}
	end := geoutil.Coords{Lat: req.EndLat, Lon: req.EndLon}
	startKey, endKey := builder.SpliceEphemeral(g, start, end, req.StartCountry, req.EndCountry)

	initialNodes := candidateNodes(g, tradeNeighbors, req.StartCountry)
	finalNodes := candidateNodes(g, tradeNeighbors, req.EndCountry)

	var routes []routeconstruct.Route
	for _, from := range initialNodes {
		for _, to := range finalNodes {
			if from == to {
				continue
			}
			corePath, coreMetrics, found, err := moastar.Search(g, from, to, weights, req.ShipmentMassKg, maxDays)
			if err != nil {
				f.log.Warn("corefacade: search failed", "from", from, "to", to, "err", err)
				continue
			}
			if !found {
				continue
			}

			route, ok := routeconstruct.Construct(g, corePath, coreMetrics, start, end, startKey, endKey, req.ShipmentMassKg, maxDays, f.cfg)
			if !ok {
				continue
			}
			routes = append(routes, route)
		}
	}

	ranked := ranker.Rank(routes, weights)
	return Response{Routes: toRankedRoutes(ranked)}, nil
}

// candidateNodes returns every node key in g whose Country equals
// country, plus every node key whose Country is one of country's declared
// trade neighbors. The lookup into tradeNeighbors is case-insensitive
// (the declared country on a Request may not match the CSV's casing
// exactly), but the resulting node.Country comparisons are exact, since
// the catalog itself is internally consistent on casing.
func candidateNodes(g *routegraph.Graph, tradeNeighbors map[string][]string, country string) []string {
	wanted := map[string]bool{country: true}
	for key, neighbors := range tradeNeighbors {
		if !strings.EqualFold(key, country) {
			continue
		}
		for _, n := range neighbors {
			wanted[n] = true
		}
	}

	var out []string
	for _, key := range g.NodeKeys() {
		n := g.Node(key)
		if n != nil && wanted[n.Country] {
			out = append(out, key)
		}
	}
	return out
}

// toRankedRoutes converts ranker output into the facade's public Response
// shape, converting time from hours to days; emissions are already in kg
// and are copied as-is.
func toRankedRoutes(ranked []ranker.Ranked) []RankedRoute {
	out := make([]RankedRoute, len(ranked))
	for i, r := range ranked {
		out[i] = RankedRoute{
			Rank:          i + 1,
			Score:         r.Score,
			Path:          r.Route.Path,
			Modes:         r.Route.Modes,
			TimeDays:      r.Route.Metrics[costvector.TimeIdx] / 24,
			Cost:          r.Route.Metrics[costvector.CostIdx],
			EmissionsKg:   r.Route.Metrics[costvector.EmissionsIdx],
			Customs:       r.Route.Metrics[costvector.CustomsIdx],
			CostBreakdown: r.Route.CostBreakdown,
			TimeBreakdown: r.Route.TimeBreakdown,
		}
	}
	return out
}
