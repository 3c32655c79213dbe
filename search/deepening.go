// File: deepening.go
// Role: Iterative deepening (edge-limited) and IDA* (cost-bounded), both on an
//       explicit stack of frames over the current chain.
// Determinism:
//   - Children are tried in ascending identifier order.

package search

import (
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// frame is one node of the current chain together with its pending children.
type frame struct {
	id    string
	g     float64
	edges []core.Edge
	next  int // index of the next child to try
}

// chain is the explicit DFS stack plus an on-path set for O(1) repeat checks.
type chain struct {
	frames []frame
	onPath map[string]bool
}

func newChain() *chain { return &chain{onPath: make(map[string]bool)} }

func (c *chain) push(f frame) {
	c.frames = append(c.frames, f)
	c.onPath[f.id] = true
}

// pop removes the top frame and its node from the on-path set.
func (c *chain) pop() {
	top := c.frames[len(c.frames)-1]
	delete(c.onPath, top.id)
	c.frames = c.frames[:len(c.frames)-1]
}

func (c *chain) top() *frame { return &c.frames[len(c.frames)-1] }

func (c *chain) depth() int { return len(c.frames) - 1 }

// sequence materialises the chain as identifiers, start first.
func (c *chain) sequence() []string {
	out := make([]string, len(c.frames))
	for i, f := range c.frames {
		out[i] = f.id
	}

	return out
}

// enter expands id and pushes its frame onto c.
func (w *walker) enter(c *chain, id string, g float64) error {
	if err := w.expand(); err != nil {
		return err
	}
	edges, err := w.neighbors(id)
	if err != nil {
		return err
	}
	c.push(frame{id: id, g: g, edges: edges})

	return nil
}

// runIterativeDeepening repeats a depth-limited DFS with edge limits
// 0, 1, 2, ... The first chain reaching the goal is returned, so the result
// has the fewest edges among all routes. A round that never hits the limit has
// explored every simple chain, which proves the goal unreachable.
func runIterativeDeepening(w *walker) (*Result, error) {
	maxLimit := w.g.LocationCount() - 1
	rounds := 0
	for limit := 0; limit <= maxLimit; limit++ {
		rounds++
		seq, cost, cutoff, err := w.depthLimited(limit)
		if err != nil {
			return nil, err
		}
		if seq != nil {
			return &Result{Sequence: seq, Cost: cost, Iterations: rounds}, nil
		}
		if !cutoff {
			break
		}
	}

	return nil, w.notFound()
}

// depthLimited explores every simple chain of at most limit edges from start.
// cutoff reports whether some chain was cut by the limit while it still had
// an unvisited child.
func (w *walker) depthLimited(limit int) (seq []string, cost float64, cutoff bool, err error) {
	c := newChain()
	if err = w.enter(c, w.start, 0); err != nil {
		return nil, 0, false, err
	}

	for len(c.frames) > 0 {
		top := c.top()

		// 1) Goal test on entry into the chain
		if top.id == w.goal {
			return c.sequence(), top.g, false, nil
		}

		// 2) At the limit: note the cut and backtrack
		if c.depth() == limit {
			for _, e := range top.edges {
				if !c.onPath[e.To] {
					cutoff = true
					break
				}
			}
			c.pop()
			continue
		}

		// 3) Next child not already on the chain
		var child *core.Edge
		for top.next < len(top.edges) {
			e := &top.edges[top.next]
			top.next++
			if !c.onPath[e.To] {
				child = e
				break
			}
		}
		if child == nil {
			c.pop()
			continue
		}
		if err = w.enter(c, child.To, top.g+child.Weight); err != nil {
			return nil, 0, false, err
		}
	}

	return nil, 0, cutoff, nil
}

// runIDAStar repeats a cost-bounded DFS. The first threshold is h(start); each
// following round uses the smallest f that exceeded the previous threshold.
// An infinite next threshold means nothing was pruned, hence no route.
func runIDAStar(w *walker) (*Result, error) {
	threshold := w.h(w.start, w.goal)
	rounds := 0
	for {
		rounds++
		seq, cost, next, err := w.costBounded(threshold)
		if err != nil {
			return nil, err
		}
		if seq != nil {
			return &Result{Sequence: seq, Cost: cost, Iterations: rounds}, nil
		}
		if math.IsInf(next, 1) {
			return nil, w.notFound()
		}
		threshold = next
	}
}

// costBounded explores chains whose f = g + h stays within threshold and
// reports the smallest f that exceeded it.
func (w *walker) costBounded(threshold float64) (seq []string, cost, next float64, err error) {
	next = math.Inf(1)
	c := newChain()
	if err = w.enter(c, w.start, 0); err != nil {
		return nil, 0, 0, err
	}

	for len(c.frames) > 0 {
		top := c.top()

		// 1) Goal test on entry into the chain
		if top.id == w.goal {
			return c.sequence(), top.g, 0, nil
		}

		// 2) Next child within the threshold; record the smallest overshoot
		var (
			childID string
			childG  float64
			found   bool
		)
		for top.next < len(top.edges) {
			e := top.edges[top.next]
			top.next++
			if c.onPath[e.To] {
				continue
			}
			g := top.g + e.Weight
			f := g + w.h(e.To, w.goal)
			if f > threshold {
				if f < next {
					next = f
				}
				continue
			}
			childID, childG, found = e.To, g, true
			break
		}

		// 3) Descend or backtrack
		if !found {
			c.pop()
			continue
		}
		if err = w.enter(c, childID, childG); err != nil {
			return nil, 0, 0, err
		}
	}

	return nil, 0, next, nil
}
