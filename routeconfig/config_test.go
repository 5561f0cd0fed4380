package routeconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightroute/routecore/routeconfig"
)

func TestLoad_AppliesFileThenOptions(t *testing.T) {
	cfg, err := routeconfig.Load("testdata/config.yaml", routeconfig.WithFallbackSpeed(90))
	require.NoError(t, err)

	assert.Equal(t, 90.0, cfg.Defaults.FallbackSpeedKmH)
	assert.Equal(t, 1500.0, cfg.Defaults.MaxRoadDistanceKm)
	assert.Equal(t, "data/raw/nodes", cfg.Data.RawNodesDir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := routeconfig.Load("testdata/does_not_exist.yaml")
	assert.Error(t, err)
}

func TestDefault_IsSelfConsistent(t *testing.T) {
	cfg := routeconfig.Default()
	assert.Greater(t, cfg.Defaults.FallbackSpeedKmH, 0.0)
	assert.Greater(t, cfg.Defaults.MaxRoadDistanceKm, 0.0)
}
