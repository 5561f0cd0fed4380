// Package geoutil provides great-circle distance and coordinate-extraction
// helpers shared by the graph builder, the MOA* heuristic, and the route
// constructor's first/last-mile splicing.
//
// Everything here is pure and allocation-free: no package-level state, no
// I/O. Complexity is O(1) per call.
package geoutil
