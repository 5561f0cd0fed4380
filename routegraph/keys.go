package routegraph

import "fmt"

// SeaportKey returns the canonical catalog key for a seaport, per spec
// §3: "{Country}_{City}_Seaport".
func SeaportKey(country, city string) string {
	return fmt.Sprintf("%s_%s_Seaport", country, city)
}

// AirportKey returns the canonical catalog key for an airport, per spec
// §3: "{Country}_{City}_Airport".
func AirportKey(country, city string) string {
	return fmt.Sprintf("%s_%s_Airport", country, city)
}

// CustomStartKey returns the ephemeral key for a shipper-origin node, per
// spec §3: "Custom_{lat}_{lon}_Start". graphbuild's SpliceEphemeral
// derives the key here, and routeconstruct receives it as a parameter, so
// any caller deriving it from the same (lat, lon) pair gets the same key.
func CustomStartKey(lat, lon float64) string {
	return fmt.Sprintf("Custom_%v_%v_Start", lat, lon)
}

// CustomEndKey returns the ephemeral key for a consignee-destination node,
// per spec §3: "Custom_{lat}_{lon}_End".
func CustomEndKey(lat, lon float64) string {
	return fmt.Sprintf("Custom_%v_%v_End", lat, lon)
}
