package search_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/geo"
)

// usCities is the five-city network with weights in kilometres:
//
//	A New York, B Los Angeles, C Chicago, D Houston, E Phoenix
//	A–C 1145, C–D 1515, D–E 1890, E–B 575, A–D 1627
//
// The shortest A→B route is A, D, E, B at 4092.
func usCities(t testing.TB, extra ...core.Location) *core.Graph {
	t.Helper()
	b := core.NewBuilder(core.WithUnit(geo.Kilometers))
	locs := []core.Location{
		{ID: "A", Name: "New York", Coordinate: geo.Coordinate{Lat: 40.7128, Lon: -74.0060}, Important: true},
		{ID: "B", Name: "Los Angeles", Coordinate: geo.Coordinate{Lat: 34.0522, Lon: -118.2437}, Important: true},
		{ID: "C", Name: "Chicago", Coordinate: geo.Coordinate{Lat: 41.8781, Lon: -87.6298}, Important: true},
		{ID: "D", Name: "Houston", Coordinate: geo.Coordinate{Lat: 29.7604, Lon: -95.3698}, Important: true},
		{ID: "E", Name: "Phoenix", Coordinate: geo.Coordinate{Lat: 33.4484, Lon: -112.0740}, Important: true},
	}
	for _, l := range append(locs, extra...) {
		require.NoError(t, b.AddLocation(l))
	}
	for _, e := range []core.Edge{
		{From: "A", To: "C", Weight: 1145},
		{From: "C", To: "D", Weight: 1515},
		{From: "D", To: "E", Weight: 1890},
		{From: "E", To: "B", Weight: 575},
		{From: "A", To: "D", Weight: 1627},
	} {
		_, err := b.AddEdge(e.From, e.To, e.Weight)
		require.NoError(t, err)
	}
	g, err := b.Freeze()
	require.NoError(t, err)

	return g
}

// randomGeo builds a connected graph of n locations around a campus-sized box.
// Weights are the geodesic distance stretched by up to 50%, so the default
// heuristic is admissible and consistent.
func randomGeo(t testing.TB, n, extraEdges int, seed int64) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	b := core.NewBuilder()
	coords := make([]geo.Coordinate, n)
	for i := 0; i < n; i++ {
		coords[i] = geo.Coordinate{Lat: 2.90 + rng.Float64()*0.02, Lon: 101.77 + rng.Float64()*0.02}
		require.NoError(t, b.AddLocation(core.Location{ID: nodeID(i), Coordinate: coords[i]}))
	}
	connect := func(i, j int) {
		w := geo.Distance(coords[i], coords[j]) * (1 + rng.Float64()*0.5)
		_, err := b.AddEdge(nodeID(i), nodeID(j), w)
		require.NoError(t, err)
	}
	for i := 1; i < n; i++ {
		connect(rng.Intn(i), i) // random spanning tree
	}
	for k := 0; k < extraEdges; k++ {
		i, j := rng.Intn(n), rng.Intn(n)
		if i != j {
			connect(i, j)
		}
	}
	g, err := b.Freeze()
	require.NoError(t, err)

	return g
}

// greatCircle is a haversine distance in meters on a sphere of the WGS-84
// equatorial radius. It is computed here so fixtures do not share code with
// the heuristic they are checked against.
func greatCircle(a, b geo.Coordinate) float64 {
	const radius = 6378137.0
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := rad(b.Lat - a.Lat)
	dLon := rad(b.Lon - a.Lon)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(a.Lat))*math.Cos(rad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * radius * math.Asin(math.Sqrt(h))
}

// continental builds a connected graph of n locations spread over the
// contiguous United States. Weights are greatCircle stretched by up to 30%.
func continental(t testing.TB, n, extraEdges int, seed int64) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	b := core.NewBuilder()
	coords := make([]geo.Coordinate, n)
	for i := 0; i < n; i++ {
		coords[i] = geo.Coordinate{Lat: 25 + rng.Float64()*24, Lon: -124 + rng.Float64()*57}
		require.NoError(t, b.AddLocation(core.Location{ID: nodeID(i), Coordinate: coords[i]}))
	}
	connect := func(i, j int) {
		w := greatCircle(coords[i], coords[j]) * (1 + rng.Float64()*0.3)
		_, err := b.AddEdge(nodeID(i), nodeID(j), w)
		require.NoError(t, err)
	}
	for i := 1; i < n; i++ {
		connect(rng.Intn(i), i)
	}
	for k := 0; k < extraEdges; k++ {
		i, j := rng.Intn(n), rng.Intn(n)
		if i != j {
			connect(i, j)
		}
	}
	g, err := b.Freeze()
	require.NoError(t, err)

	return g
}

// detour is S, M, G where M is New York and G is Los Angeles, S sits a
// kilometre east of M, and every edge is exactly geodesic except S-G, which
// runs 20 km long. The shortest S→G route is S, M, G.
func detour(t testing.TB) *core.Graph {
	t.Helper()
	s := geo.Coordinate{Lat: 40.7160, Lon: -73.9950}
	m := geo.Coordinate{Lat: 40.7128, Lon: -74.0060}
	g := geo.Coordinate{Lat: 34.0522, Lon: -118.2437}

	b := core.NewBuilder()
	for id, c := range map[string]geo.Coordinate{"S": s, "M": m, "G": g} {
		require.NoError(t, b.AddLocation(core.Location{ID: id, Coordinate: c}))
	}
	for _, e := range []core.Edge{
		{From: "S", To: "M", Weight: greatCircle(s, m)},
		{From: "M", To: "G", Weight: greatCircle(m, g)},
		{From: "S", To: "G", Weight: greatCircle(s, g) + 20e3},
	} {
		_, err := b.AddEdge(e.From, e.To, e.Weight)
		require.NoError(t, err)
	}
	graph, err := b.Freeze()
	require.NoError(t, err)

	return graph
}

func nodeID(i int) string { return fmt.Sprintf("N%03d", i) }
