// Package search implements the route search strategies over a frozen
// core.Graph.
//
// Every strategy shares one contract:
//
//	res, err := search.Run(ctx, g, search.AStar, startID, goalID)
//	route, err := search.Reconstruct(g, res, startID, goalID)
//
// Run returns either a predecessor map (single and bidirectional frontier
// strategies) or a materialised Sequence (the iterative-deepening pair), plus
// the recorded goal Cost and expansion diagnostics. Reconstruct turns either
// form into a Route of identifiers and coordinates.
//
// Strategies:
//
//	AStar                    min-heap on g+h            optimal for admissible h
//	Greedy                   min-heap on h              not optimal
//	UniformCost              min-heap on g              optimal
//	DepthFirst               LIFO stack                 not optimal
//	BreadthFirst             FIFO queue                 not optimal
//	Bidirectional            two heaps, max(2g, g+h)    approximate
//	IterativeDeepening       depth-limited DFS (edges)  fewest edges
//	IterativeDeepeningAStar  cost-bounded DFS           optimal for admissible h
//
// Single-frontier relaxation: a neighbor is (re)admitted when it is unreached
// or reached with a strictly smaller accumulated cost. Entries whose cost is
// above the best known one are skipped when popped, the goal is tested at pop
// time, and equal priorities pop in insertion order.
//
// The iterative strategies keep an explicit stack; no strategy recurses.
//
// Every expansion checks ctx and the optional WithMaxExpansions budget.
//
// Errors:
//
//	ErrNilGraph        - graph pointer is nil.
//	ErrUnknownStrategy - Strategy value outside the closed set.
//	ErrPathNotFound    - goal unreachable from start.
//	ErrExpansionLimit  - WithMaxExpansions budget exhausted.
//	ErrBrokenPath      - Reconstruct met a missing or non-edge step.
//	core.ErrUnknownLocation for unknown start or goal identifiers.
package search
