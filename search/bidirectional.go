// File: bidirectional.go
// Role: Bidirectional search with meet-in-the-middle priorities.
// Determinism:
//   - The forward side is expanded when both top priorities are equal.
//   - Heap ties pop in admission order on each side.

package search

// side is one of the two frontiers.
type side struct {
	target string // the endpoint this side is heading to
	best   map[string]float64
	pred   map[string]string // forward: predecessor; backward: successor towards goal
	open   heapFrontier
	seq    uint64
}

func newSide(origin, target string) *side {
	return &side{
		target: target,
		best:   map[string]float64{origin: 0},
		pred:   make(map[string]string),
	}
}

// admit pushes id with cost g and priority max(2g, g+h(id, target)).
func (s *side) admit(w *walker, id string, g float64) {
	p := g + w.h(id, s.target)
	if 2*g > p {
		p = 2 * g
	}
	s.open.push(entry{id: id, g: g, prio: p, seq: s.seq})
	s.seq++
}

// runBidirectional grows a forward frontier from start and a backward one from
// goal, always expanding the side with the lower top priority. The first node
// popped on one side that the other side has already reached is the meeting
// node; the recorded cost is the sum of both partial costs there.
func runBidirectional(w *walker) (*Result, error) {
	fwd := newSide(w.start, w.goal)
	bwd := newSide(w.goal, w.start)
	fwd.admit(w, w.start, 0)
	bwd.admit(w, w.goal, 0)

	for fwd.open.len() > 0 && bwd.open.len() > 0 {
		// 1) Pick the side with the lower top priority
		cur, other := fwd, bwd
		if bwd.open.peek().prio < fwd.open.peek().prio {
			cur, other = bwd, fwd
		}

		// 2) Pop and discard stale entries
		top := cur.open.pop()
		if top.g > cur.best[top.id] {
			continue
		}

		// 3) Expansion bookkeeping
		if err := w.expand(); err != nil {
			return nil, err
		}

		// 4) Meeting test
		if og, ok := other.best[top.id]; ok {
			return &Result{
				Predecessors: joinChains(fwd.pred, bwd.pred, top.id, w.goal),
				Cost:         top.g + og,
			}, nil
		}

		// 5) Relax
		edges, err := w.neighbors(top.id)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			ng := top.g + e.Weight
			if old, seen := cur.best[e.To]; seen && ng >= old {
				continue
			}
			cur.best[e.To] = ng
			cur.pred[e.To] = top.id
			cur.admit(w, e.To, ng)
		}
	}

	return nil, w.notFound()
}

// joinChains returns the forward predecessor map extended by the reversed
// backward chain from meet to goal, so that walking predecessors from goal
// passes through meet and ends at start.
//
// Every node on either chain was expanded before the meeting pop, and a node
// expanded by both sides would itself have been the meeting node, so the two
// chains share only meet.
func joinChains(fwd, bwd map[string]string, meet, goal string) map[string]string {
	out := make(map[string]string, len(fwd)+len(bwd))
	for k, v := range fwd {
		out[k] = v
	}
	for cur := meet; cur != goal; {
		next, ok := bwd[cur]
		if !ok {
			break
		}
		out[next] = cur
		cur = next
	}

	return out
}
