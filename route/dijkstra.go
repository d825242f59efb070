// File: dijkstra.go
// Role: Single-source shortest-distance relaxation over the arena graph.
// Notes on implementation choices:
//   - Lazy decrease-key: shorter rediscoveries push duplicate heap
//     entries; stale entries are discarded on pop via the visited flags.
//   - Any arc weighted at or above the wall sentinel is skipped; the
//     builder never stores such weights, so this is a guard, not a path.

package route

import (
	"container/heap"
	"math"
)

// unreachable marks a node no finite-cost path has touched yet. It is a
// sentinel only — never a legal edge weight.
const unreachable int64 = math.MaxInt64

// dijkstra computes minimum distances from src to every node.
// dist[v] == unreachable means no path connects src and v.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func (p *Planner) dijkstra(src NodeID) []int64 {
	n := len(p.nodes)

	// 1) dist[v] = +∞ for all v, 0 for the source.
	dist := make([]int64, n)
	for i := range dist {
		dist[i] = unreachable
	}
	dist[src] = 0

	// 2) visited marks nodes whose distance is final.
	visited := make([]bool, n)

	// 3) Seed the min-heap with the source at distance 0.
	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: src, dist: 0})

	for pq.Len() > 0 {
		// 4) Extract the closest unfinalized node; drop stale entries.
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		// 5) Relax every arc out of u.
		for _, a := range p.adj[u] {
			if a.weight >= unreachable {
				continue // impassable sentinel, never a real edge
			}
			newDist := dist[u] + a.weight
			if newDist >= dist[a.to] {
				continue // not strictly better; avoids duplicate pushes
			}
			dist[a.to] = newDist
			heap.Push(&pq, &nodeItem{id: a.to, dist: newDist})
		}
	}

	return dist
}

// nodeItem is one (node, tentative distance) heap entry.
type nodeItem struct {
	id   NodeID
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used with
// the lazy-decrease-key pattern: outdated entries stay in the heap and
// are ignored when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
