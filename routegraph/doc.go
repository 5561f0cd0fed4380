// Package routegraph implements the canonical multi-digraph over which
// MOAStar searches: seaports, airports, and ephemeral start/end nodes as
// vertices; sea/air/road/intermodal links as mode-tagged parallel edges.
//
// Concurrency: Graph is safe for concurrent reads and is protected by an
// internal sync.RWMutex for mutation, following the teacher library's
// lock-per-graph convention. Per spec §5, the ephemeral-node splice
// mutates a graph and so must not be shared across concurrent searches
// without a private copy (see Clone) or an exclusive lock held by the
// caller for the whole splice+search+construct sequence.
package routegraph
