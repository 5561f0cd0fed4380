package corefacade

import "github.com/freightroute/routecore/costvector"

// heavyLoadMassKg and heavyLoadVolumeM3 are the thresholds past which a
// shipment is forced onto the cost-dominated "heavy load" preset
// regardless of the caller's requested OptimizationType, per the
// original handler's "weight > 10 tons or volume > 400 m³" check (weight
// here is already in kg, so the tonne threshold becomes 10_000 kg).
const (
	heavyLoadMassKg   = 10_000
	heavyLoadVolumeM3 = 400
)

// defaultCustomWeight is substituted for any CustomWeights key the
// caller didn't supply. It is deliberately NOT renormalized against
// however many keys were actually supplied — a caller who sets only
// "cost" gets cost weighted against three implicit 0.25s, not against a
// renormalized 0.75 spread across the rest. This preserves the original
// service's behavior.
const defaultCustomWeight = 0.25

// ResolveWeights picks the [time, cost, emissions, customs] scalarization
// weights for req, in the same priority order as the original handler:
// heavy load overrides every other preference, then the named presets,
// then custom weights, then an equal-weight fallback for anything else.
func ResolveWeights(req Request) costvector.Weights {
	if req.ShipmentMassKg > heavyLoadMassKg || req.VolumeM3 > heavyLoadVolumeM3 {
		return costvector.Weights{0.1, 0.9, 0, 0}
	}

	switch req.OptimizationType {
	case "time":
		return costvector.Weights{1, 0, 0, 0}
	case "cost":
		return costvector.Weights{0, 1, 0, 0}
	case "emissions":
		return costvector.Weights{0, 0, 1, 0}
	case "logisticsScore":
		return costvector.Weights{0.5, 0, 0, 0.5}
	case "customWeights":
		return costvector.Weights{
			customWeightOr(req.CustomWeights, "time"),
			customWeightOr(req.CustomWeights, "cost"),
			customWeightOr(req.CustomWeights, "emissions"),
			customWeightOr(req.CustomWeights, "logisticsScore"),
		}
	default:
		return costvector.Weights{0.25, 0.25, 0.25, 0.25}
	}
}

func customWeightOr(custom map[string]float64, key string) float64 {
	if v, ok := custom[key]; ok {
		return v
	}
	return defaultCustomWeight
}
