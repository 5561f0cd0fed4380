// Package costvector defines the four-dimensional cost and weight vectors
// shared by MOAStar, RouteConstructor, and Ranker: time, money, CO₂, and
// customs friction, always in that fixed index order (spec "Design Notes":
// "Keep this order fixed across MOAStar and Ranker").
package costvector

// Index names for Vector and Weights components. The order is load-bearing
// — every package that scalarizes or compares a Vector must use these
// constants rather than hardcoded indices.
const (
	TimeIdx = iota
	CostIdx
	EmissionsIdx
	CustomsIdx
	Len
)

// Vector is a cumulative cost tuple: [time hours, cost USD, emissions kg
// CO₂, customs friction score].
type Vector [Len]float64

// Weights is a caller preference tuple over the same four dimensions. It
// is not required to sum to 1 — it is a scalarization weight, not a
// probability distribution.
type Weights [Len]float64

// Add returns the componentwise sum of v and delta.
func (v Vector) Add(delta Vector) Vector {
	var out Vector
	for i := range out {
		out[i] = v[i] + delta[i]
	}
	return out
}

// Scalarize returns the weighted sum Σ wᵢ·vᵢ, used both as the MOA* g-score
// contribution and as the Ranker's final route score.
func (w Weights) Scalarize(v Vector) float64 {
	var total float64
	for i := range v {
		total += w[i] * v[i]
	}
	return total
}

// Dominates reports whether a Pareto-dominates b: every component of a is
// ≤ the corresponding component of b, and at least one is strictly less.
func Dominates(a, b Vector) bool {
	strictlyLess := false
	for i := range a {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			strictlyLess = true
		}
	}
	return strictlyLess
}
