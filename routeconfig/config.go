package routeconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults holds the defaults.* keys from spec §6.
type Defaults struct {
	FallbackTimeHours  float64 `yaml:"fallback_time_hours"`
	FallbackDistanceKm float64 `yaml:"fallback_distance_km"`
	FallbackSpeedKmH   float64 `yaml:"fallback_speed_km_h"`
	RoadCostPerKm      float64 `yaml:"road_cost_per_km"`
	BorderCost         float64 `yaml:"border_cost"`
	DwellTime          float64 `yaml:"dwell_time"`
	MaxRoadDistanceKm  float64 `yaml:"max_road_distance_km"`
	SeaCostPerKg       float64 `yaml:"sea_cost_per_kg"`
	RoadEmissionFactor float64 `yaml:"road_emission_factor"`
}

// Data holds the data.* keys from spec §6 — the directories the graph
// builder reads tables from and the opaque cache/processed locations a
// caller's persistence hook may use. routecore never writes to these
// itself (persistence is a non-goal); they're carried only so a caller's
// load/store hook has somewhere standard to look.
type Data struct {
	RawNodesDir  string `yaml:"raw_nodes_dir"`
	RawEdgesDir  string `yaml:"raw_edges_dir"`
	ProcessedDir string `yaml:"processed_dir"`
	CacheDir     string `yaml:"cache_dir"`
	ExternalDir  string `yaml:"external_dir"`
}

// GraphOutput holds the graph.* keys from spec §6.
type GraphOutput struct {
	OutputFile string `yaml:"output_file"`
}

// Config is the full recognized configuration surface from spec §6.
type Config struct {
	Defaults Defaults    `yaml:"defaults"`
	Data     Data        `yaml:"data"`
	Graph    GraphOutput `yaml:"graph"`
}

// Option mutates a Config after defaults are applied.
type Option func(*Config)

// WithFallbackSpeed overrides Defaults.FallbackSpeedKmH.
func WithFallbackSpeed(kmh float64) Option {
	return func(c *Config) { c.Defaults.FallbackSpeedKmH = kmh }
}

// WithMaxRoadDistance overrides Defaults.MaxRoadDistanceKm.
func WithMaxRoadDistance(km float64) Option {
	return func(c *Config) { c.Defaults.MaxRoadDistanceKm = km }
}

// WithRoadCostPerKm overrides Defaults.RoadCostPerKm.
func WithRoadCostPerKm(cost float64) Option {
	return func(c *Config) { c.Defaults.RoadCostPerKm = cost }
}

// Default returns a Config populated with the same fallbacks the original
// service's config.yaml shipped with.
func Default() Config {
	return Config{
		Defaults: Defaults{
			FallbackTimeHours:  24,
			FallbackDistanceKm: 100,
			FallbackSpeedKmH:   60,
			RoadCostPerKm:      0.1,
			BorderCost:         50,
			DwellTime:          24,
			MaxRoadDistanceKm:  1500,
			SeaCostPerKg:       0.05,
			RoadEmissionFactor: 169,
		},
		Data: Data{
			RawNodesDir:  "data/raw/nodes",
			RawEdgesDir:  "data/raw/edges",
			ProcessedDir: "data/processed",
			CacheDir:     "data/cache",
			ExternalDir:  "data/external",
		},
		Graph: GraphOutput{OutputFile: "transport_graph.bin"},
	}
}

// Load reads a YAML document at path over Default(), then applies opts.
func Load(path string, opts ...Option) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("routeconfig: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("routeconfig: parsing %s: %w", path, err)
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, nil
}
