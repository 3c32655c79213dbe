package planner

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Query is one entry of a FindPaths batch.
type Query struct {
	Origin      Origin
	Destination string
	Algorithm   string
}

// Outcome pairs a query with its route or its error. Exactly one is set.
type Outcome struct {
	Query Query
	Route *Route
	Err   error
}

// FindPaths runs every query concurrently, at most BatchConcurrency at a time.
// Per-query failures are reported in the matching Outcome and never abort the
// batch. When ctx ends early the remaining queries are not started, their
// outcomes carry ctx's error and so does the returned error.
// Outcomes are in query order.
func (p *Planner) FindPaths(ctx context.Context, queries []Query) ([]Outcome, error) {
	out := make([]Outcome, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.BatchConcurrency)
	for i, q := range queries {
		i, q := i, q
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			route, err := p.FindPath(gctx, q.Origin, q.Destination, q.Algorithm)
			out[i] = Outcome{Query: q, Route: route, Err: err}

			return nil
		})
	}
	_ = g.Wait() // workers never fail

	if err := ctx.Err(); err != nil {
		for i := range out {
			if out[i].Route == nil && out[i].Err == nil {
				out[i] = Outcome{Query: queries[i], Err: err}
			}
		}

		return out, err
	}

	return out, nil
}
