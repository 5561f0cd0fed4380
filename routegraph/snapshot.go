package routegraph

// NodeView and EdgeView are plain, behavior-free projections of Graph
// state for a caller-owned serialization step. Per spec §1 ("Persistence
// ... a load/store hook suffices"), JSON/DB shaping itself is not this
// package's concern; Snapshot only hands back data. Grounded on the
// original service's graph_to_json.py export script, minus its JSON
// encoding (a non-goal here).
type NodeView struct {
	Key     string
	Kind    NodeKind
	Country string
	City    string
	Lat     float64
	Lon     float64
}

// EdgeView mirrors Edge but drops internal helper methods.
type EdgeView struct {
	From               string
	To                 string
	Mode               EdgeMode
	Distance           float64
	Time               float64
	TransportCostPerKg float64
	CostPerKm          float64
	BorderCost         float64
	Emissions          float64
	Route              string
}

// Snapshot returns the current node and edge set as plain views, ordered
// only by map iteration (callers that need determinism should sort).
func (g *Graph) Snapshot() ([]NodeView, []EdgeView) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := make([]NodeView, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, NodeView{
			Key:     n.Key,
			Kind:    n.Kind,
			Country: n.Country,
			City:    n.City,
			Lat:     n.Lat,
			Lon:     n.Lon,
		})
	}

	var edges []EdgeView
	for _, nbrs := range g.adjacency {
		for _, bucket := range nbrs {
			for _, e := range bucket {
				edges = append(edges, EdgeView{
					From:               e.From,
					To:                 e.To,
					Mode:               e.Mode,
					Distance:           e.Distance,
					Time:               e.Time,
					TransportCostPerKg: e.TransportCostPerKg,
					CostPerKm:          e.CostPerKm,
					BorderCost:         e.BorderCost,
					Emissions:          e.Emissions,
					Route:              e.Route,
				})
			}
		}
	}

	return nodes, edges
}
