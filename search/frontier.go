// File: frontier.go
// Role: Frontier containers for the single-frontier strategies.
// Determinism:
//   - heapFrontier orders by priority, then by insertion sequence.
//   - stackFrontier and queueFrontier are pure LIFO / FIFO.

package search

import "container/heap"

// entry is one admission of a node into a frontier.
type entry struct {
	id   string
	g    float64 // accumulated cost at admission
	prio float64 // heap key; unused by stack and queue
	seq  uint64  // admission order, breaks priority ties
}

// frontier is the minimal container contract the single-frontier loop needs.
type frontier interface {
	push(e entry)
	pop() entry
	len() int
}

// entryPQ is a min-heap of entries ordered by (prio, seq).
type entryPQ []entry

func (pq entryPQ) Len() int { return len(pq) }

func (pq entryPQ) Less(i, j int) bool {
	if pq[i].prio != pq[j].prio {
		return pq[i].prio < pq[j].prio
	}

	return pq[i].seq < pq[j].seq
}

func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// heapFrontier adapts entryPQ to frontier with lazy decrease-key: improved
// nodes are pushed again and stale copies are skipped by the caller.
type heapFrontier struct{ pq entryPQ }

func (f *heapFrontier) push(e entry) { heap.Push(&f.pq, e) }
func (f *heapFrontier) pop() entry   { return heap.Pop(&f.pq).(entry) }
func (f *heapFrontier) len() int     { return f.pq.Len() }

// peek returns the top entry without removing it. The frontier must be non-empty.
func (f *heapFrontier) peek() entry { return f.pq[0] }

type stackFrontier struct{ items []entry }

func (f *stackFrontier) push(e entry) { f.items = append(f.items, e) }

func (f *stackFrontier) pop() entry {
	n := len(f.items)
	e := f.items[n-1]
	f.items = f.items[:n-1]

	return e
}

func (f *stackFrontier) len() int { return len(f.items) }

type queueFrontier struct {
	items []entry
	head  int
}

func (f *queueFrontier) push(e entry) { f.items = append(f.items, e) }

func (f *queueFrontier) pop() entry {
	e := f.items[f.head]
	f.items[f.head] = entry{}
	f.head++
	// Reclaim the consumed prefix once it dominates the slice.
	if f.head > 64 && f.head*2 > len(f.items) {
		f.items = append(f.items[:0], f.items[f.head:]...)
		f.head = 0
	}

	return e
}

func (f *queueFrontier) len() int { return len(f.items) - f.head }
