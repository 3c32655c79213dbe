package geo

import (
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

// Distance returns the geodesic distance between a and b in meters.
//
// The haversine formula over a sphere of radius orb.EarthRadius is used. The
// result never exceeds the length of a real path between the two points, so
// it is an admissible heuristic as long as edge weights are geodesic or larger.
//
// Complexity: O(1).
func Distance(a, b Coordinate) float64 {
	return orbgeo.DistanceHaversine(a.Point(), b.Point())
}

// DistanceIn is Distance expressed in unit u.
func DistanceIn(a, b Coordinate, u Unit) float64 {
	return u.FromMeters(Distance(a, b))
}

// Planar returns the Euclidean distance between a and b on raw degrees.
// It is not geodesically exact and must not be used as an edge weight.
func Planar(a, b Coordinate) float64 {
	return planar.Distance(a.Point(), b.Point())
}
