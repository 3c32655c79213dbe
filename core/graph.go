// File: graph.go
// Role: Query phase of the graph store. Read-only; no locks.
// Determinism:
//   - Locations() is ordered by ID, ImportantLocations() by Name then ID.
//   - Neighbors() is ordered by target ID.

package core

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvroute/geo"
)

// Graph is the frozen location graph. The zero value is not usable; obtain
// one from Builder.Freeze.
//
// Every field is written once inside Freeze and only read afterwards, which is
// what makes concurrent queries safe without synchronization.
type Graph struct {
	unit geo.Unit

	locations map[string]Location
	ids       []string // sorted location IDs
	important []string // important IDs ordered by name

	weights   map[string]map[string]float64 // weights[from][to]
	adjacency map[string][]Edge             // sorted by Edge.To
	byName    map[string]string             // normalized name -> ID
	edgeCount int
}

// Unit reports the unit edge weights are expressed in.
func (g *Graph) Unit() geo.Unit { return g.unit }

// LocationCount returns |V|.
func (g *Graph) LocationCount() int { return len(g.ids) }

// EdgeCount returns the number of undirected connections (each stored twice).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// HasLocation reports whether id is a location of g.
func (g *Graph) HasLocation(id string) bool {
	_, ok := g.locations[id]

	return ok
}

// Location returns the location with identifier id.
// Errors: ErrUnknownLocation.
// Complexity: O(1).
func (g *Graph) Location(id string) (Location, error) {
	loc, ok := g.locations[id]
	if !ok {
		return Location{}, fmt.Errorf("%w: id %q", ErrUnknownLocation, id)
	}

	return loc, nil
}

// LocationByName returns the important location whose display name matches
// name, ignoring case and surrounding whitespace. Non-important locations are
// never matched because only important ones are offered as destinations.
// Errors: ErrUnknownLocation.
// Complexity: O(len(name)).
func (g *Graph) LocationByName(name string) (Location, error) {
	id, ok := g.byName[normalizeName(name)]
	if !ok {
		return Location{}, fmt.Errorf("%w: name %q", ErrUnknownLocation, name)
	}

	return g.locations[id], nil
}

// Resolve looks ref up as an identifier first and as an important name second.
// Errors: ErrUnknownLocation.
func (g *Graph) Resolve(ref string) (Location, error) {
	if loc, ok := g.locations[ref]; ok {
		return loc, nil
	}
	if id, ok := g.byName[normalizeName(ref)]; ok {
		return g.locations[id], nil
	}

	return Location{}, fmt.Errorf("%w: %q", ErrUnknownLocation, ref)
}

// ImportantLocations returns every important location ordered by name.
// Complexity: O(k).
func (g *Graph) ImportantLocations() []Location {
	out := make([]Location, len(g.important))
	for i, id := range g.important {
		out[i] = g.locations[id]
	}

	return out
}

// Locations returns every location ordered by identifier.
// Complexity: O(V).
func (g *Graph) Locations() []Location {
	out := make([]Location, len(g.ids))
	for i, id := range g.ids {
		out[i] = g.locations[id]
	}

	return out
}

// Neighbors returns the outgoing edges of id ordered by target identifier.
// The slice is a copy; callers may keep or modify it.
// Errors: ErrUnknownLocation.
// Complexity: O(d).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	edges, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %q", ErrUnknownLocation, id)
	}

	return slices.Clone(edges), nil
}

// Degree returns the number of neighbors of id, or 0 for unknown ids.
func (g *Graph) Degree(id string) int { return len(g.adjacency[id]) }

// Weight returns the weight of the edge from→to.
// The boolean is false when no such edge exists.
func (g *Graph) Weight(from, to string) (float64, bool) {
	w, ok := g.weights[from][to]

	return w, ok
}

// HasEdge reports whether from and to are directly connected.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.weights[from][to]

	return ok
}

// Heuristic returns the geodesic distance between two locations in the graph's
// unit, or 0 when either identifier is unknown.
// Complexity: O(1).
func (g *Graph) Heuristic(from, to string) float64 {
	a, okA := g.locations[from]
	b, okB := g.locations[to]
	if !okA || !okB {
		return 0
	}

	return geo.DistanceIn(a.Coordinate, b.Coordinate, g.unit)
}
