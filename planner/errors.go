package planner

import "errors"

// Sentinel errors returned by the planner.
var (
	// ErrInvalidAlgorithmToken indicates an algorithm name that matches no strategy.
	ErrInvalidAlgorithmToken = errors.New("planner: invalid algorithm token")

	// ErrMalformedOrigin indicates an origin that is neither a location
	// reference nor a valid "lat,lon" pair.
	ErrMalformedOrigin = errors.New("planner: malformed origin")

	// ErrNilGraph indicates New was given a nil graph.
	ErrNilGraph = errors.New("planner: graph is nil")
)
