// File: astar.go
// Role: Target-directed best-first search with parent-chain path
//       reconstruction. With the default zero heuristic this is Dijkstra
//       cut short at the goal; it stays a distinct entry point so a real
//       heuristic can be slotted in without touching callers.

package route

import "container/heap"

// astar searches from src to dst guided by h and returns the total cost
// and the node sequence src…dst inclusive. ok is false when no path
// connects the endpoints.
//
// Ties between equal-cost paths break on heap pop order; callers must
// not rely on which of two equally cheap routes wins.
//
// Complexity: O((V + E) log V) worst case.
func (p *Planner) astar(src, dst NodeID, h Heuristic) (int64, []NodeID, bool) {
	n := len(p.nodes)
	goal := p.nodes[dst]

	// gScore[v] is the best known cost src→v; parent[v] the node it was
	// reached from on that best path.
	gScore := make([]int64, n)
	for i := range gScore {
		gScore[i] = unreachable
	}
	gScore[src] = 0
	parent := make([]NodeID, n)
	for i := range parent {
		parent[i] = NoNode
	}
	closed := make([]bool, n)

	pq := make(astarPQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &astarItem{id: src, f: h(p.nodes[src], goal), g: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*astarItem)
		u := item.id
		if closed[u] {
			continue
		}
		if u == dst {
			return gScore[dst], p.chain(src, dst, parent), true
		}
		closed[u] = true

		for _, a := range p.adj[u] {
			if a.weight >= unreachable {
				continue
			}
			tentative := gScore[u] + a.weight
			if tentative >= gScore[a.to] {
				continue
			}
			gScore[a.to] = tentative
			parent[a.to] = u
			heap.Push(&pq, &astarItem{
				id: a.to,
				f:  tentative + h(p.nodes[a.to], goal),
				g:  tentative,
			})
		}
	}

	return 0, nil, false
}

// chain walks the parent links dst→src and reverses them into the
// forward node sequence, both endpoints included.
func (p *Planner) chain(src, dst NodeID, parent []NodeID) []NodeID {
	seq := []NodeID{dst}
	for cur := dst; cur != src; {
		cur = parent[cur]
		seq = append(seq, cur)
	}
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}

	return seq
}

// astarItem is one heap entry: f = g + heuristic orders the frontier,
// g breaks f-ties in favor of the deeper (more settled) entry.
type astarItem struct {
	id NodeID
	f  int64
	g  int64
}

// astarPQ is a min-heap of *astarItem ordered by f ascending.
type astarPQ []*astarItem

func (pq astarPQ) Len() int { return len(pq) }
func (pq astarPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].g > pq[j].g
}
func (pq astarPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *astarPQ) Push(x interface{}) { *pq = append(*pq, x.(*astarItem)) }
func (pq *astarPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
