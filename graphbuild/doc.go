// Package graphbuild assembles a routegraph.Graph from the nine catalog
// tables (seaports, airports, ships, flights, seaport_airport_connect,
// trade, trade_neighbour, logistics, carbon_emission), and splices
// per-request ephemeral start/end nodes onto an already-built graph —
// the two responsibilities the original GraphBuilder.build() and
// GraphBuilder.add_dynamic_road() split between a one-time catalog load
// and a per-request call.
package graphbuild
