// Package moastar implements a multi-objective variant of A* search over
// a routegraph.Graph: [time, cost, emissions, customs] are tracked as a
// four-dimensional costvector.Vector per path, a scalarized heuristic
// guides exploration, and a per-node Pareto frontier of non-dominated
// cost vectors prunes successors that cannot possibly beat an
// already-enqueued alternative.
//
// Complexity:
//
//	- Time:  O(E log(V+E)) amortized, as for ordinary A*/Dijkstra with a
//	  lazy-decrease-key heap, plus O(F) per relaxation for the Pareto
//	  frontier check, where F is the frontier size at that node.
//	- Space: O(V + E) for the heap and frontier maps.
//
// Once a node is popped off the open set it is closed permanently: later
// heap entries for the same node (representing a different, possibly
// non-dominated cost vector) are discarded rather than re-expanded. The
// Pareto frontier therefore only prunes which successors get enqueued in
// the first place; Search returns the single path that first reaches the
// goal in increasing f-score order, not the full non-dominated path set.
// The scalarized heuristic is not provably admissible across all four
// dimensions simultaneously, so the result is a good, not guaranteed
// optimal, answer — consistent with the routing domain's tolerance for a
// fast approximate ranking over an expensive exact one.
package moastar
