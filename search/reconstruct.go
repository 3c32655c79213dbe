// File: reconstruct.go
// Role: Turn a Result into an ordered Route of identifiers and coordinates.

package search

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/geo"
)

// Route is a reconstructed path, start first.
type Route struct {
	LocationIDs []string
	Coordinates []geo.Coordinate
	Distance    float64 // sum of edge weights along LocationIDs, in the graph's unit
}

// Reconstruct projects res onto g.
//
// Predecessor results are walked from goal back to start; sequence results are
// taken as they are. Either way every consecutive pair must be a graph edge.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrBrokenPath if res is nil, a predecessor is missing, the chain loops,
//     a step is not an edge, or the endpoints do not match start and goal.
//
// Complexity: O(L) for a path of L nodes.
func Reconstruct(g *core.Graph, res *Result, start, goal string) (*Route, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if res == nil {
		return nil, fmt.Errorf("%w: nil result", ErrBrokenPath)
	}

	// 1) Identifier chain
	var ids []string
	if res.Sequence != nil {
		ids = slices.Clone(res.Sequence)
	} else {
		var err error
		if ids, err = walkBack(g, res.Predecessors, start, goal); err != nil {
			return nil, err
		}
	}
	if len(ids) == 0 || ids[0] != start || ids[len(ids)-1] != goal {
		return nil, fmt.Errorf("%w: endpoints do not match %q -> %q", ErrBrokenPath, start, goal)
	}

	// 2) Coordinates and distance
	route := &Route{
		LocationIDs: ids,
		Coordinates: make([]geo.Coordinate, len(ids)),
	}
	for i, id := range ids {
		loc, err := g.Location(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBrokenPath, err)
		}
		route.Coordinates[i] = loc.Coordinate
		if i == 0 {
			continue
		}
		w, ok := g.Weight(ids[i-1], id)
		if !ok {
			return nil, fmt.Errorf("%w: %q -> %q is not an edge", ErrBrokenPath, ids[i-1], id)
		}
		route.Distance += w
	}

	return route, nil
}

// walkBack follows pred from goal to start and returns the chain start first.
func walkBack(g *core.Graph, pred map[string]string, start, goal string) ([]string, error) {
	ids := []string{goal}
	limit := g.LocationCount()
	for cur := goal; cur != start; {
		p, ok := pred[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no predecessor for %q", ErrBrokenPath, cur)
		}
		if len(ids) >= limit {
			return nil, fmt.Errorf("%w: predecessor chain loops", ErrBrokenPath)
		}
		ids = append(ids, p)
		cur = p
	}
	slices.Reverse(ids)

	return ids, nil
}
