// Package core defines the Location and Edge records, the sentinel errors of
// the graph store and the Builder options.
package core

import (
	"errors"

	"github.com/katalvlaran/lvroute/geo"
)

// Sentinel errors for graph store operations.
var (
	// ErrEmptyLocationID indicates that a Location was given an empty identifier.
	ErrEmptyLocationID = errors.New("core: location ID is empty")

	// ErrDuplicateLocation indicates AddLocation was called twice for one identifier.
	ErrDuplicateLocation = errors.New("core: duplicate location ID")

	// ErrUnknownLocation indicates an identifier or name that is not in the graph.
	ErrUnknownLocation = errors.New("core: unknown location")

	// ErrSelfLoop indicates an edge from a location to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrEmptyGraph indicates that Freeze was called before any location was added.
	ErrEmptyGraph = errors.New("core: graph has no locations")

	// ErrFrozen indicates a Builder method was called after Freeze.
	ErrFrozen = errors.New("core: builder already frozen")
)

// Location is a node of the graph: a named point with an importance flag.
//
// Important locations are the ones offered as destinations and the only ones
// reachable through LocationByName.
type Location struct {
	// ID uniquely identifies the location inside its graph.
	ID string

	// Name is the display name.
	Name string

	// Coordinate is the WGS-84 position.
	Coordinate geo.Coordinate

	// Important marks the location as a named search endpoint.
	Important bool
}

// Edge is one directed half of an undirected connection.
// From and To are location identifiers; Weight is a physical distance in the
// graph's Unit.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Option configures a Builder.
type Option func(b *Builder)

// WithUnit records the unit edge weights are expressed in. The heuristic of the
// frozen graph is evaluated in the same unit. Default: geo.Meters.
func WithUnit(u geo.Unit) Option {
	return func(b *Builder) { b.unit = u }
}
