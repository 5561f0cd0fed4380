package moastar

import "github.com/freightroute/routecore/costvector"

// item is one entry in the open set: a candidate path to node with its
// cumulative costs and scalarized f-score.
type item struct {
	fScore float64
	seq    int // insertion order; breaks ties deterministically (FIFO)
	node   string
	path   []string
	costs  costvector.Vector
}

// openSet is a min-heap of *item ordered by fScore, with seq as a
// tiebreaker — the same lazy-decrease-key discipline as the teacher
// library's Dijkstra heap, generalized from a scalar distance to a
// scalarized multi-objective score.
type openSet []*item

func (pq openSet) Len() int { return len(pq) }

func (pq openSet) Less(i, j int) bool {
	if pq[i].fScore != pq[j].fScore {
		return pq[i].fScore < pq[j].fScore
	}
	return pq[i].seq < pq[j].seq
}

func (pq openSet) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openSet) Push(x interface{}) { *pq = append(*pq, x.(*item)) }

func (pq *openSet) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
