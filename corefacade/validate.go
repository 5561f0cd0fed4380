package corefacade

import "github.com/freightroute/routecore/costvector"

// Validate checks req's coordinates, time budget, and shipment size, the
// same checks the original service runs before it ever touches the graph.
// It does not check weights — those are only known once ResolveWeights has
// run, so the facade calls validateWeights separately after resolving them.
func Validate(req Request) error {
	if !validLat(req.StartLat) || !validLon(req.StartLon) ||
		!validLat(req.EndLat) || !validLon(req.EndLon) {
		return ErrInvalidCoords
	}
	if req.MaxDays != 0 && req.MaxDays < 0 {
		return ErrNonPositiveMaxDays
	}
	if req.ShipmentMassKg <= 0 {
		return ErrNonPositiveMass
	}
	if req.VolumeM3 <= 0 {
		return ErrNonPositiveVolume
	}
	return nil
}

func validLat(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func validLon(lon float64) bool {
	return lon >= -180 && lon <= 180
}

// validateWeights checks that a resolved weight vector is non-negative.
// Weights.Scalarize is not a probability distribution and is not required
// to sum to 1 (spec §4: a customWeights request filling in missing keys
// with un-normalized 0.25s can sum to well over 1, by design); the only
// genuinely malformed shape is a negative component.
func validateWeights(w costvector.Weights) error {
	for _, v := range w {
		if v < 0 {
			return ErrMalformedWeights
		}
	}
	return nil
}

// resolveMaxDays substitutes DefaultMaxDays for an absent (zero) budget.
func resolveMaxDays(maxDays float64) float64 {
	if maxDays == 0 {
		return DefaultMaxDays
	}
	return maxDays
}
