package moastar

import (
	"container/heap"

	"github.com/freightroute/routecore/costvector"
	"github.com/freightroute/routecore/geoutil"
	"github.com/freightroute/routecore/routegraph"
)

// Search finds a path from start to goal in g that is cheap under the
// scalarization weights.Scalarize, among paths whose cumulative time does
// not exceed maxDays. shipmentMassKg scales every edge's mass-dependent
// cost contributions (transport cost, border cost, emissions).
//
// found is false, with a nil error, when every reachable path exceeds
// maxDays or goal is simply unreachable from start — that is a normal
// "no route" outcome, not a fault. err is non-nil only for malformed
// input (empty keys, missing nodes, non-positive mass or max days).
func Search(g *routegraph.Graph, start, goal string, weights costvector.Weights, shipmentMassKg, maxDays float64, opts ...Option) (path []string, metrics costvector.Vector, found bool, err error) {
	if g == nil {
		return nil, costvector.Vector{}, false, ErrNilGraph
	}
	if start == "" {
		return nil, costvector.Vector{}, false, ErrEmptyStart
	}
	if goal == "" {
		return nil, costvector.Vector{}, false, ErrEmptyGoal
	}
	if !g.HasNode(start) {
		return nil, costvector.Vector{}, false, ErrStartNotFound
	}
	if !g.HasNode(goal) {
		return nil, costvector.Vector{}, false, ErrGoalNotFound
	}
	if shipmentMassKg <= 0 {
		return nil, costvector.Vector{}, false, ErrNonPositiveMass
	}
	if maxDays <= 0 {
		return nil, costvector.Vector{}, false, ErrNonPositiveMaxDays
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{
		g:       g,
		goal:    goal,
		weights: weights,
		massKg:  shipmentMassKg,
		maxDays: maxDays,
		cfg:     cfg,
		closed:  make(map[string]bool),
		pareto:  make(map[string][]costvector.Vector),
	}

	return r.run(start)
}

// runner holds the mutable state of a single Search call.
type runner struct {
	g       *routegraph.Graph
	goal    string
	weights costvector.Weights
	massKg  float64
	maxDays float64
	cfg     Options

	closed map[string]bool
	pareto map[string][]costvector.Vector
	seq    int
}

func (r *runner) run(start string) ([]string, costvector.Vector, bool, error) {
	pq := make(openSet, 0, 1)
	heap.Init(&pq)
	heap.Push(&pq, &item{fScore: 0, seq: r.nextSeq(), node: start, path: []string{start}})

	for pq.Len() > 0 {
		top := heap.Pop(&pq).(*item)

		if r.closed[top.node] {
			continue
		}

		if top.node == r.goal {
			if top.costs[costvector.TimeIdx]/24 <= r.maxDays {
				return top.path, top.costs, true, nil
			}
			continue
		}

		r.closed[top.node] = true

		for _, e := range r.g.EdgesFrom(top.node) {
			if r.closed[e.To] {
				continue
			}

			newTime := top.costs[costvector.TimeIdx] + e.Time
			if newTime/24 > r.maxDays {
				continue
			}

			newCosts := top.costs
			newCosts[costvector.TimeIdx] = newTime
			newCosts[costvector.CostIdx] += edgeMoneyCost(e, r.massKg)
			newCosts[costvector.EmissionsIdx] += routegraph.ScaleEmissionsKg(e.Emissions, r.massKg)
			if dest := r.g.Node(e.To); dest != nil {
				newCosts[costvector.CustomsIdx] += dest.CustomsScore
			}

			if !r.admitsToFrontier(e.To, newCosts) {
				continue
			}

			newPath := append(append([]string{}, top.path...), e.To)
			gScore := r.weights.Scalarize(newCosts)
			hScore := r.weights.Scalarize(r.heuristic(e.To))

			heap.Push(&pq, &item{
				fScore: gScore + hScore,
				seq:    r.nextSeq(),
				node:   e.To,
				path:   newPath,
				costs:  newCosts,
			})
		}
	}

	return nil, costvector.Vector{}, false, nil
}

func (r *runner) nextSeq() int {
	r.seq++
	return r.seq
}

// edgeMoneyCost prices one traversed edge for the search: road edges by
// CostPerKm × distance, every other mode by TransportCostPerKg × shipment
// mass, both plus border cost × shipment mass. Unlike routeconstruct's
// legCost, the border cost here is scaled by mass.
func edgeMoneyCost(e *routegraph.Edge, massKg float64) float64 {
	if e.Mode == routegraph.ModeRoad {
		return e.CostPerKm*e.Distance + e.BorderCost*massKg
	}
	return (e.TransportCostPerKg + e.BorderCost) * massKg
}

// admitsToFrontier applies the Pareto-frontier prune: if any existing
// cost vector for node already dominates candidate, candidate is
// rejected; otherwise candidate is added and every vector it dominates is
// removed.
func (r *runner) admitsToFrontier(node string, candidate costvector.Vector) bool {
	existing := r.pareto[node]

	for _, v := range existing {
		if costvector.Dominates(v, candidate) {
			return false
		}
	}

	kept := existing[:0:0]
	for _, v := range existing {
		if !costvector.Dominates(candidate, v) {
			kept = append(kept, v)
		}
	}
	r.pareto[node] = append(kept, candidate)

	return true
}

// heuristic estimates the remaining [time, cost, emissions, customs] to
// reach the goal from node, using a fast-cruise speed, a low cost-per-kg,
// a low emission factor, and a minimal customs constant. It returns the
// zero Vector when either endpoint lacks coordinates, which makes the
// heuristic inert (g-score alone drives ordering) rather than biased.
func (r *runner) heuristic(node string) costvector.Vector {
	n := r.g.Node(node)
	goalNode := r.g.Node(r.goal)
	if n == nil || goalNode == nil || !n.HasCoords || !goalNode.HasCoords {
		return costvector.Vector{}
	}

	distance := geoutil.Haversine(geoutil.Coords{Lat: n.Lat, Lon: n.Lon}, geoutil.Coords{Lat: goalNode.Lat, Lon: goalNode.Lon})

	var v costvector.Vector
	v[costvector.TimeIdx] = distance / r.cfg.HeuristicSpeedKmH
	v[costvector.CostIdx] = distance * r.cfg.HeuristicCostPerKg * r.cfg.HeuristicMassKg
	v[costvector.EmissionsIdx] = routegraph.ScaleEmissionsKg(routegraph.EmissionIntensity(distance, r.cfg.HeuristicEmissionFactor), r.cfg.HeuristicMassKg)
	v[costvector.CustomsIdx] = r.cfg.HeuristicCustoms
	return v
}
