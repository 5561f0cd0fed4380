package corefacade

import "errors"

// Sentinel errors returned by Validate and FindRoutes.
var (
	// ErrInvalidCoords indicates a latitude outside [-90, 90] or a
	// longitude outside [-180, 180], for either endpoint.
	ErrInvalidCoords = errors.New("corefacade: coordinates out of range")

	// ErrNonPositiveMaxDays indicates a negative MaxDays (zero selects
	// DefaultMaxDays).
	ErrNonPositiveMaxDays = errors.New("corefacade: max days must be positive")

	// ErrNonPositiveMass indicates ShipmentMassKg <= 0.
	ErrNonPositiveMass = errors.New("corefacade: shipment mass must be positive")

	// ErrNonPositiveVolume indicates VolumeM3 <= 0.
	ErrNonPositiveVolume = errors.New("corefacade: shipment volume must be positive")

	// ErrMalformedWeights indicates the resolved weight vector has a
	// negative component. The weights need not sum to 1.
	ErrMalformedWeights = errors.New("corefacade: weights must be non-negative")
)
