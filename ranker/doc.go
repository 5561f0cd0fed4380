// Package ranker scores a set of constructed routes by a caller's
// scalarization weights and returns the best ten, lowest score first —
// the final step of the pipeline, grounded on the original's
// RouteConstructor.rank_routes.
package ranker
