// Package tables loads the nine tabular inputs spec §6 names (seaports,
// airports, ships, flights, seaport_airport_connect, trade,
// trade_neighbour, logistics, carbon_emission) from CSV files into typed
// Go values, using encoding/csv directly — the same approach the pack's
// one real aviation-data consumer (mmp-vice's pkg/aviation) takes, rather
// than a third-party CSV-struct-binding library (none appear with real
// code anywhere in the retrieved pack).
//
// Column lookup is by header name, not position, so table column order is
// not significant — only spelling (spec §6 lists the exact expected
// headers per table).
package tables
