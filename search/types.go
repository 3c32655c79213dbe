package search

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the search package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Run.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrUnknownStrategy indicates a Strategy value outside the supported set.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrPathNotFound indicates that the goal is not reachable from the start.
	ErrPathNotFound = errors.New("search: path not found")

	// ErrExpansionLimit indicates the WithMaxExpansions budget was exhausted
	// before the goal was reached.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrBrokenPath indicates a result whose chain cannot be walked from goal
	// back to start over graph edges.
	ErrBrokenPath = errors.New("search: broken path")
)

// Strategy selects a search algorithm. The set is closed.
type Strategy int

const (
	// AStar expands by g(n)+h(n).
	AStar Strategy = iota
	// Greedy expands by h(n) only.
	Greedy
	// UniformCost expands by g(n) only.
	UniformCost
	// DepthFirst expands the most recently admitted node.
	DepthFirst
	// BreadthFirst expands the least recently admitted node.
	BreadthFirst
	// Bidirectional runs two meeting frontiers.
	Bidirectional
	// IterativeDeepening runs depth-limited DFS with a growing edge limit.
	IterativeDeepening
	// IterativeDeepeningAStar runs cost-bounded DFS with a growing f threshold.
	IterativeDeepeningAStar

	strategyCount
)

var strategyTokens = [strategyCount]string{
	AStar:                   "a-star",
	Greedy:                  "greedy",
	UniformCost:             "uniform-cost",
	DepthFirst:              "depth-first",
	BreadthFirst:            "breadth-first",
	Bidirectional:           "bidirectional",
	IterativeDeepening:      "iterative-deepening",
	IterativeDeepeningAStar: "iterative-deepening-a-star",
}

// Valid reports whether s is one of the declared strategies.
func (s Strategy) Valid() bool { return s >= 0 && s < strategyCount }

// String returns the canonical token of s.
func (s Strategy) String() string {
	if !s.Valid() {
		return fmt.Sprintf("strategy(%d)", int(s))
	}

	return strategyTokens[s]
}

// Strategies returns every strategy in canonical order.
func Strategies() []Strategy {
	out := make([]Strategy, strategyCount)
	for i := range out {
		out[i] = Strategy(i)
	}

	return out
}

// ParseStrategy maps a canonical token back to its Strategy.
// Alias handling belongs to callers; only exact tokens are accepted here.
func ParseStrategy(token string) (Strategy, error) {
	for i, t := range strategyTokens {
		if t == token {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, token)
}

// HeuristicFunc estimates the remaining cost between two location
// identifiers, in the graph's unit.
type HeuristicFunc func(from, to string) float64

// Options configures a single Run.
type Options struct {
	// Heuristic overrides the graph's geodesic heuristic when non-nil.
	Heuristic HeuristicFunc

	// MaxExpansions caps the number of node expansions; 0 means unlimited.
	MaxExpansions int
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// DefaultOptions returns the zero configuration: graph heuristic, no budget.
func DefaultOptions() Options { return Options{} }

// WithHeuristic replaces the default geodesic heuristic.
func WithHeuristic(h HeuristicFunc) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithMaxExpansions caps the number of expansions. Panics if n < 0.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("search: WithMaxExpansions(%d): must be >= 0", n))
	}

	return func(o *Options) { o.MaxExpansions = n }
}

// Result is the raw outcome of a Run.
//
// Exactly one of Predecessors and Sequence is set. Predecessors[v] == u means
// the recorded path to v arrives from u; the start has no entry.
type Result struct {
	Strategy     Strategy
	Predecessors map[string]string
	Sequence     []string
	Cost         float64 // accumulated cost at the goal
	Expanded     int     // nodes expanded across all rounds
	Iterations   int     // deepening rounds; 1 for non-iterative strategies
}
