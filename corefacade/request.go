package corefacade

// Request is one route-finding request: a shipper origin and consignee
// destination, each with a declared country used to scope the search to
// that country and its trade neighbors, a shipment mass/volume, a time
// budget, and an optimization preference.
type Request struct {
	StartLat, StartLon float64
	StartCountry       string

	EndLat, EndLon float64
	EndCountry     string

	// MaxDays is the time budget in days. Zero means "use the default
	// 500-day ceiling", matching the original's lenient fallback for an
	// absent or blank value.
	MaxDays float64

	ShipmentMassKg float64
	VolumeM3       float64

	// OptimizationType selects a weight preset: "time", "cost",
	// "emissions", "logisticsScore", or "customWeights" (which reads
	// CustomWeights). Any other value (including empty) falls through to
	// equal weights {0.25, 0.25, 0.25, 0.25}.
	OptimizationType string
	CustomWeights    map[string]float64
}

// DefaultMaxDays is substituted for Request.MaxDays == 0.
const DefaultMaxDays = 500
