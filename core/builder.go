// File: builder.go
// Role: Load phase of the graph store: AddLocation / AddEdge / Freeze.
// Concurrency:
//   - All Builder methods serialize on mu; loaders may feed records from
//     several goroutines.
//   - After Freeze the builder is inert: every method returns ErrFrozen.

package core

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/lvroute/geo"
)

// Builder accumulates locations and edges until Freeze hands them over to an
// immutable Graph.
type Builder struct {
	mu     sync.Mutex
	frozen bool
	unit   geo.Unit

	locations map[string]Location
	// adjacency[from][to] = weight; both directions stored.
	adjacency map[string]map[string]float64
	edgeCount int // undirected connections
}

// NewBuilder returns an empty Builder configured by opts.
// Complexity: O(len(opts)).
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		locations: make(map[string]Location),
		adjacency: make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// AddLocation registers loc.
//
// Errors:
//   - ErrFrozen if Freeze was already called.
//   - ErrEmptyLocationID if loc.ID is empty.
//   - geo.ErrMalformedCoordinate if the coordinate is invalid.
//   - ErrDuplicateLocation if loc.ID is already registered.
//
// Complexity: O(1) amortized.
func (b *Builder) AddLocation(loc Location) error {
	if loc.ID == "" {
		return ErrEmptyLocationID
	}
	if err := loc.Coordinate.Validate(); err != nil {
		return fmt.Errorf("core: location %q: %w", loc.ID, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frozen {
		return ErrFrozen
	}
	if _, ok := b.locations[loc.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateLocation, loc.ID)
	}
	b.locations[loc.ID] = loc
	b.adjacency[loc.ID] = make(map[string]float64)

	return nil
}

// AddEdge connects from and to in both directions with weight w.
//
// It reports whether a new connection was inserted; an already-present pair
// is left untouched and reported as false with a nil error.
//
// Errors:
//   - ErrFrozen if Freeze was already called.
//   - ErrSelfLoop if from == to.
//   - ErrBadWeight if w is negative, NaN or infinite.
//   - ErrUnknownLocation if from or to was never added.
//
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(from, to string, w float64) (bool, error) {
	if from == to {
		return false, fmt.Errorf("%w: %q", ErrSelfLoop, from)
	}
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return false, fmt.Errorf("%w: %s-%s weight=%v", ErrBadWeight, from, to, w)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frozen {
		return false, ErrFrozen
	}
	fromAdj, ok := b.adjacency[from]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownLocation, from)
	}
	toAdj, ok := b.adjacency[to]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownLocation, to)
	}
	if _, dup := fromAdj[to]; dup {
		return false, nil
	}
	fromAdj[to] = w
	toAdj[from] = w
	b.edgeCount++

	return true, nil
}

// Freeze consumes the builder and returns the immutable Graph.
//
// Steps:
//  1. Reject empty builders (ErrEmptyGraph) and double freezes (ErrFrozen).
//  2. Materialize every adjacency bucket as an Edge slice sorted by target ID.
//  3. Index important locations by normalized name.
//  4. Drop the builder's references so later calls cannot reach the graph.
//
// Complexity: O(V log V + E log d).
func (b *Builder) Freeze() (*Graph, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frozen {
		return nil, ErrFrozen
	}
	if len(b.locations) == 0 {
		return nil, ErrEmptyGraph
	}

	g := &Graph{
		unit:      b.unit,
		locations: b.locations,
		weights:   b.adjacency,
		adjacency: make(map[string][]Edge, len(b.locations)),
		byName:    make(map[string]string),
		edgeCount: b.edgeCount,
	}

	ids := make([]string, 0, len(b.locations))
	for id := range b.locations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	g.ids = ids

	for _, id := range ids {
		bucket := b.adjacency[id]
		edges := make([]Edge, 0, len(bucket))
		for to, w := range bucket {
			edges = append(edges, Edge{From: id, To: to, Weight: w})
		}
		sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })
		g.adjacency[id] = edges

		loc := b.locations[id]
		if !loc.Important {
			continue
		}
		g.important = append(g.important, id)
		// ids are visited in ascending order, so the first writer wins and
		// duplicate names resolve to the smallest identifier.
		key := normalizeName(loc.Name)
		if _, taken := g.byName[key]; !taken && key != "" {
			g.byName[key] = id
		}
	}
	sort.SliceStable(g.important, func(i, j int) bool {
		return g.locations[g.important[i]].Name < g.locations[g.important[j]].Name
	})

	b.frozen = true
	b.locations = nil
	b.adjacency = nil

	return g, nil
}

// normalizeName folds case and trims surrounding whitespace.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
