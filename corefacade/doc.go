// Package corefacade orchestrates the full pipeline a shipper-facing
// caller drives: build the catalog graph, resolve optimization weights,
// splice the caller's origin/destination, expand the candidate node sets
// across trade-neighbor countries, search every (origin, destination)
// node pair with moastar, assemble full routes with routeconstruct, and
// rank them with ranker. It is the Go counterpart of the original
// service's Flask handler, minus the HTTP and JSON framing.
package corefacade
