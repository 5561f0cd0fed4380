package moastar

import "errors"

// Sentinel errors returned by Search.
var (
	// ErrEmptyStart indicates an empty start node key.
	ErrEmptyStart = errors.New("moastar: start node key is empty")

	// ErrEmptyGoal indicates an empty goal node key.
	ErrEmptyGoal = errors.New("moastar: goal node key is empty")

	// ErrNilGraph indicates a nil *routegraph.Graph was passed to Search.
	ErrNilGraph = errors.New("moastar: graph is nil")

	// ErrStartNotFound indicates the start node does not exist in the graph.
	ErrStartNotFound = errors.New("moastar: start node not found in graph")

	// ErrGoalNotFound indicates the goal node does not exist in the graph.
	ErrGoalNotFound = errors.New("moastar: goal node not found in graph")

	// ErrNonPositiveMass indicates shipmentMassKg was zero or negative.
	ErrNonPositiveMass = errors.New("moastar: shipment mass must be positive")

	// ErrNonPositiveMaxDays indicates maxDays was zero or negative.
	ErrNonPositiveMaxDays = errors.New("moastar: max days must be positive")
)

// Options tunes the heuristic's assumed cruise constants. Defaults mirror
// the original service's hardcoded heuristic estimate (a fast plane-speed
// time bound, a low cost-per-kg, a low emission factor, and a minimal
// customs constant) so the heuristic stays cheap to compute and rarely
// overestimates any one dimension.
type Options struct {
	HeuristicSpeedKmH       float64
	HeuristicCostPerKg      float64
	HeuristicEmissionFactor float64 // g CO₂ per tonne-km
	HeuristicCustoms        float64
	HeuristicMassKg         float64 // assumed shipment mass for the heuristic's emissions/cost estimate
}

// Option is a functional option mutating Options.
type Option func(*Options)

// WithHeuristicSpeed overrides HeuristicSpeedKmH.
func WithHeuristicSpeed(kmh float64) Option {
	return func(o *Options) { o.HeuristicSpeedKmH = kmh }
}

// WithHeuristicCostPerKg overrides HeuristicCostPerKg.
func WithHeuristicCostPerKg(costPerKg float64) Option {
	return func(o *Options) { o.HeuristicCostPerKg = costPerKg }
}

// WithHeuristicEmissionFactor overrides HeuristicEmissionFactor.
func WithHeuristicEmissionFactor(factor float64) Option {
	return func(o *Options) { o.HeuristicEmissionFactor = factor }
}

// DefaultOptions returns the original service's heuristic constants:
// 800 km/h, 0.01 USD/kg, 10 g CO₂/tonne-km, and a minimal customs score
// of 1, estimated over a reference 1000kg shipment.
func DefaultOptions() Options {
	return Options{
		HeuristicSpeedKmH:       800,
		HeuristicCostPerKg:      0.01,
		HeuristicEmissionFactor: 10,
		HeuristicCustoms:        1,
		HeuristicMassKg:         1000,
	}
}
