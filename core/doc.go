// Package core provides the location graph store used by every search
// strategy: an undirected, weighted graph of named geographic locations with
// identifier-keyed adjacency.
//
// The store has two phases, expressed as two types:
//
//   - Builder: the load phase. The external loader calls AddLocation once per
//     parsed record and AddEdge once per parsed connection. Builder methods are
//     safe for concurrent use (a single mutex guards the catalogs).
//   - Graph: the query phase. Builder.Freeze consumes the builder and returns an
//     immutable *Graph. Graph exposes no mutating method, so any number of
//     goroutines may query it concurrently without locking.
//
// Data model:
//
//	Location{ID, Name, Coordinate, Important}
//	Edge{From, To, Weight}              // endpoint IDs, never object handles
//	adjacency[from][to] = weight        // both directions stored for each AddEdge
//
// Edge policy:
//
//   - AddEdge(a, b, w) inserts a→b and b→a with identical weight.
//   - a == b is rejected with ErrSelfLoop.
//   - An already-present ordered pair is not re-inserted; AddEdge reports false.
//   - Weights must be finite and non-negative (ErrBadWeight).
//
// Lookups:
//
//	Location(id)           O(1)
//	LocationByName(name)   O(1), case-insensitive and trimmed, important locations only
//	Resolve(ref)           O(1), id first then important name
//	Neighbors(id)          O(d), sorted by target id
//	Weight(a, b)           O(1)
//
// Errors:
//
//	ErrEmptyLocationID   - location identifier is empty.
//	ErrDuplicateLocation - identifier already present in the builder.
//	ErrUnknownLocation   - id or name lookup failed (build or query time).
//	ErrSelfLoop          - edge from a location to itself.
//	ErrBadWeight         - negative, NaN or infinite edge weight.
//	ErrEmptyGraph        - Freeze called on a builder without locations.
//	ErrFrozen            - builder used after Freeze.
package core
