// Package nearest snaps free coordinates to the closest location of a frozen
// graph.
//
// Distance is Euclidean on raw latitude/longitude degrees. That is not
// geodesically exact, but the ordering it induces is close enough at city and
// campus scale, which is the only scale snapping is used at.
//
//	r := nearest.New(g)          // O(V log V), once per graph
//	loc, err := r.Nearest(coord) // O(log V) expected
//
// Scan is the linear reference implementation with the same contract.
package nearest

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/quadtree"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/geo"
)

// boundPad keeps the index bound non-degenerate when every location shares a
// latitude or a longitude.
const boundPad = 1e-6

// entry adapts a location identifier to orb.Pointer.
type entry struct {
	id string
	pt orb.Point
}

// Point implements orb.Pointer.
func (e entry) Point() orb.Point { return e.pt }

// Resolver answers nearest-location queries against one frozen graph.
// It is read-only after New and safe for concurrent use.
type Resolver struct {
	g    *core.Graph
	tree *quadtree.Quadtree
}

// New indexes every location of g.
// It panics if g is nil, mirroring a programming error rather than bad input.
func New(g *core.Graph) *Resolver {
	locs := g.Locations()

	mp := make(orb.MultiPoint, len(locs))
	for i, l := range locs {
		mp[i] = l.Coordinate.Point()
	}
	tree := quadtree.New(mp.Bound().Pad(boundPad))
	for _, l := range locs {
		// Every point lies inside the padded bound, so Add cannot fail.
		_ = tree.Add(entry{id: l.ID, pt: l.Coordinate.Point()})
	}

	return &Resolver{g: g, tree: tree}
}

// Nearest returns the location closest to c.
// A coordinate identical to a location's coordinate returns that location.
// Errors: geo.ErrMalformedCoordinate.
func (r *Resolver) Nearest(c geo.Coordinate) (core.Location, error) {
	if err := c.Validate(); err != nil {
		return core.Location{}, err
	}
	hit := r.tree.Find(c.Point())
	if hit == nil {
		return core.Location{}, fmt.Errorf("%w: empty index", core.ErrUnknownLocation)
	}

	return r.g.Location(hit.(entry).id)
}

// Scan is the O(V) reference: it visits every location and keeps the first
// strictly closer one, so ties resolve to the smallest identifier.
// Errors: geo.ErrMalformedCoordinate.
func Scan(g *core.Graph, c geo.Coordinate) (core.Location, error) {
	if err := c.Validate(); err != nil {
		return core.Location{}, err
	}

	var (
		best  core.Location
		bestD = -1.0
		p     = c.Point()
	)
	for _, l := range g.Locations() {
		d := planar.DistanceSquared(p, l.Coordinate.Point())
		if bestD < 0 || d < bestD {
			best, bestD = l, d
		}
	}
	if bestD < 0 {
		return core.Location{}, fmt.Errorf("%w: graph has no locations", core.ErrUnknownLocation)
	}

	return best, nil
}
