package geoutil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freightroute/routecore/geoutil"
)

func TestHaversine_ZeroDistanceToSelf(t *testing.T) {
	newYork := geoutil.Coords{Lat: 40.7128, Lon: -74.0060}
	assert.InDelta(t, 0.0, geoutil.Haversine(newYork, newYork), 1e-9)
}

func TestHaversine_Symmetric(t *testing.T) {
	a := geoutil.Coords{Lat: 40.7128, Lon: -74.0060}
	b := geoutil.Coords{Lat: 51.5074, Lon: -0.1278}
	assert.InDelta(t, geoutil.Haversine(a, b), geoutil.Haversine(b, a), 1e-9)
}

func TestHaversine_TriangleInequality(t *testing.T) {
	a := geoutil.Coords{Lat: 40.7128, Lon: -74.0060}  // New York
	b := geoutil.Coords{Lat: 51.5074, Lon: -0.1278}   // London
	c := geoutil.Coords{Lat: 35.6762, Lon: 139.6503}  // Tokyo

	ab := geoutil.Haversine(a, b)
	bc := geoutil.Haversine(b, c)
	ac := geoutil.Haversine(a, c)

	assert.LessOrEqual(t, ac, ab+bc+1e-6)
}

func TestHaversine_KnownDistance(t *testing.T) {
	// New York to London is roughly 5570km.
	ny := geoutil.Coords{Lat: 40.7128, Lon: -74.0060}
	london := geoutil.Coords{Lat: 51.5074, Lon: -0.1278}
	d := geoutil.Haversine(ny, london)
	assert.InDelta(t, 5570.0, d, 100.0)
}

func TestExtract_MissingCoords(t *testing.T) {
	_, ok := geoutil.Extract(map[string]interface{}{"country": "US"})
	assert.False(t, ok)
}

func TestExtract_Present(t *testing.T) {
	c, ok := geoutil.Extract(map[string]interface{}{"latitude": 1.5, "longitude": -2.5})
	assert.True(t, ok)
	assert.Equal(t, geoutil.Coords{Lat: 1.5, Lon: -2.5}, c)
}

func TestHasCoords(t *testing.T) {
	assert.True(t, geoutil.HasCoords(map[string]interface{}{"latitude": 1.0, "longitude": 2.0}))
	assert.False(t, geoutil.HasCoords(map[string]interface{}{"latitude": 1.0}))
}

func TestHaversine_AntipodalUpperBound(t *testing.T) {
	a := geoutil.Coords{Lat: 0, Lon: 0}
	b := geoutil.Coords{Lat: 0, Lon: 180}
	d := geoutil.Haversine(a, b)
	assert.InDelta(t, math.Pi*geoutil.EarthRadiusKm, d, 1.0)
}
