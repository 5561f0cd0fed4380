// Package routeconstruct turns a MOA* core path (seaport/airport nodes
// only) into a full door-to-door Route: it prepends a first-mile road
// segment from the shipper's coordinates to the path's first node and
// appends a last-mile segment from the path's last node to the
// consignee's coordinates, reusing an already-spliced road edge when one
// exists and synthesizing one from scratch otherwise.
package routeconstruct
