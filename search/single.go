// File: single.go
// Role: The single-frontier graph search shared by A*, greedy, uniform-cost,
//       depth-first and breadth-first.
// Determinism:
//   - Neighbors are admitted in ascending identifier order.
//   - Heap ties pop in admission order.

package search

// priorityFunc computes the heap key of a node admitted with cost g.
type priorityFunc func(w *walker, id string, g float64) float64

func byCost(_ *walker, _ string, g float64) float64 { return g }

func byEstimate(w *walker, id string, _ float64) float64 { return w.h(id, w.goal) }

func byCostEstimate(w *walker, id string, g float64) float64 { return g + w.h(id, w.goal) }

func runAStar(w *walker) (*Result, error) {
	return w.single(&heapFrontier{}, byCostEstimate)
}

func runGreedy(w *walker) (*Result, error) {
	return w.single(&heapFrontier{}, byEstimate)
}

func runUniformCost(w *walker) (*Result, error) {
	return w.single(&heapFrontier{}, byCost)
}

func runDepthFirst(w *walker) (*Result, error) {
	return w.single(&stackFrontier{}, nil)
}

func runBreadthFirst(w *walker) (*Result, error) {
	return w.single(&queueFrontier{}, nil)
}

// single runs the frontier loop.
//
// Steps:
//  1. Admit start with cost 0.
//  2. Pop; skip entries whose cost is above the best known for that node.
//  3. Count the expansion (cancellation and budget checks).
//  4. Stop if the popped node is the goal.
//  5. Relax every neighbor: admit when unreached or strictly cheaper.
//
// prio may be nil for containers that ignore priorities.
func (w *walker) single(f frontier, prio priorityFunc) (*Result, error) {
	best := map[string]float64{w.start: 0}
	pred := make(map[string]string)
	var seq uint64

	admit := func(id string, g float64) {
		e := entry{id: id, g: g, seq: seq}
		if prio != nil {
			e.prio = prio(w, id, g)
		}
		seq++
		f.push(e)
	}

	// 1) Seed
	admit(w.start, 0)

	for f.len() > 0 {
		// 2) Pop and discard stale entries
		cur := f.pop()
		if cur.g > best[cur.id] {
			continue
		}

		// 3) Expansion bookkeeping
		if err := w.expand(); err != nil {
			return nil, err
		}

		// 4) Goal test at expansion time
		if cur.id == w.goal {
			return &Result{Predecessors: pred, Cost: cur.g}, nil
		}

		// 5) Relax
		edges, err := w.neighbors(cur.id)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			ng := cur.g + e.Weight
			if old, seen := best[e.To]; seen && ng >= old {
				continue
			}
			best[e.To] = ng
			pred[e.To] = cur.id
			admit(e.To, ng)
		}
	}

	return nil, w.notFound()
}
