// Package routeconfig loads the tunables spec §6 ("Configuration") names
// from a YAML document and exposes them as a Config, with functional
// options for programmatic overrides — the same func(*Config) Option shape
// the teacher library's builder package uses for its BuilderOption.
package routeconfig
