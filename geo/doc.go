// Package geo provides the coordinate model and the distance functions shared
// by the graph store, the search heuristics and the nearest-node resolver.
//
// Two metrics are exposed:
//
//   - Distance: geodesic (great-circle) distance in meters between two
//     latitude/longitude pairs. The loader uses it to derive edge weights and
//     the informed strategies use it, scaled to the graph Unit, as their
//     admissible heuristic.
//   - Planar: Euclidean distance on raw degrees. Only meaningful at
//     city/campus scale; the nearest-node resolver relies on it.
//
// Both are thin wrappers over github.com/paulmach/orb so callers never deal
// with orb's (lon, lat) point ordering directly.
//
// Errors:
//
//	ErrMalformedCoordinate - latitude/longitude not finite or out of range.
//	ErrUnknownUnit         - unit string not recognized by ParseUnit.
package geo
