// File: run.go
// Role: Entry point, validation and the strategy dispatch table.
// Concurrency:
//   - Run holds no shared state; one walker per call.
//   - The graph is read-only, so concurrent Runs are safe.

package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

type searchFunc func(w *walker) (*Result, error)

var dispatch = [strategyCount]searchFunc{
	AStar:                   runAStar,
	Greedy:                  runGreedy,
	UniformCost:             runUniformCost,
	DepthFirst:              runDepthFirst,
	BreadthFirst:            runBreadthFirst,
	Bidirectional:           runBidirectional,
	IterativeDeepening:      runIterativeDeepening,
	IterativeDeepeningAStar: runIDAStar,
}

// Run searches g for a route from start to goal with strategy s.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. s must be a declared Strategy (ErrUnknownStrategy).
//  3. start and goal must be locations of g (core.ErrUnknownLocation).
//
// Errors after validation: ErrPathNotFound, ErrExpansionLimit or the
// context's error, wrapped.
func Run(ctx context.Context, g *core.Graph, s Strategy, start, goal string, opts ...Option) (*Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	if !g.HasLocation(start) {
		return nil, fmt.Errorf("search: start: %w: %q", core.ErrUnknownLocation, start)
	}
	if !g.HasLocation(goal) {
		return nil, fmt.Errorf("search: goal: %w: %q", core.ErrUnknownLocation, goal)
	}

	// 3) Run the strategy
	h := cfg.Heuristic
	if h == nil {
		h = g.Heuristic
	}
	w := &walker{
		ctx:      ctx,
		g:        g,
		strategy: s,
		start:    start,
		goal:     goal,
		h:        h,
		budget:   cfg.MaxExpansions,
	}
	res, err := dispatch[s](w)
	if err != nil {
		return nil, err
	}
	res.Strategy = s
	res.Expanded = w.expanded
	if res.Iterations == 0 {
		res.Iterations = 1
	}

	return res, nil
}

// walker holds the per-Run state shared by every strategy.
type walker struct {
	ctx      context.Context
	g        *core.Graph
	strategy Strategy
	start    string
	goal     string
	h        HeuristicFunc
	budget   int // 0 = unlimited
	expanded int
}

// expand accounts for one expansion: it honours cancellation and the budget.
func (w *walker) expand() error {
	select {
	case <-w.ctx.Done():
		return fmt.Errorf("search: %s interrupted: %w", w.strategy, w.ctx.Err())
	default:
	}
	w.expanded++
	if w.budget > 0 && w.expanded > w.budget {
		return fmt.Errorf("%w: %s after %d expansions", ErrExpansionLimit, w.strategy, w.budget)
	}

	return nil
}

// neighbors returns the adjacency of a node known to be in the graph.
func (w *walker) neighbors(id string) ([]core.Edge, error) {
	edges, err := w.g.Neighbors(id)
	if err != nil {
		return nil, fmt.Errorf("search: neighbors of %q: %w", id, err)
	}

	return edges, nil
}

func (w *walker) notFound() error {
	return fmt.Errorf("%w: %s from %q to %q", ErrPathNotFound, w.strategy, w.start, w.goal)
}
