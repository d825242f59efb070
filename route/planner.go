// File: planner.go
// Role: Public query surface over a built route graph.

package route

import "github.com/katrelda/routecraft/grid"

// ShortestDistance returns the minimum travel cost between two
// discovered, walkable coordinates, computed by single-source relaxation
// from the origin over the whole graph.
//
// ok is false — an expected outcome, not a failure — when either
// coordinate is out of range, has no node (undiscovered or unwalkable),
// or no path connects the two. For a charted walkable coordinate,
// ShortestDistance(a, a) is (0, true).
//
// Complexity: O((V + E) log V).
func (p *Planner) ShortestDistance(from, to grid.Coordinate) (int64, bool) {
	src := p.NodeAt(from)
	dst := p.NodeAt(to)
	if src == NoNode || dst == NoNode {
		return 0, false
	}

	d := p.dijkstra(src)[dst]
	if d == unreachable {
		return 0, false
	}

	return d, true
}

// ShortestPath returns the minimum travel cost between two coordinates
// together with the full coordinate sequence of the winning route,
// origin and destination included. Consecutive coordinates are always
// connected by a graph edge (a unit grid step or a teleport hop).
//
// The search is A* guided by the planner's heuristic — zero unless
// WithHeuristic overrode it — so by default it explores exactly like
// Dijkstra restricted to a single target. Ties between equal-cost routes
// break in implementation-defined order.
//
// ok is false under the same conditions as ShortestDistance.
//
// Complexity: O((V + E) log V).
func (p *Planner) ShortestPath(from, to grid.Coordinate) (int64, []grid.Coordinate, bool) {
	src := p.NodeAt(from)
	dst := p.NodeAt(to)
	if src == NoNode || dst == NoNode {
		return 0, nil, false
	}

	total, seq, ok := p.astar(src, dst, p.heuristic)
	if !ok {
		return 0, nil, false
	}

	path := make([]grid.Coordinate, len(seq))
	for i, id := range seq {
		path[i] = p.nodes[id]
	}

	return total, path, true
}

// Directions translates a planner path into the discrete movement
// commands that walk it, one per step. Teleport hops have no movement
// command: a non-adjacent consecutive pair surfaces grid.ErrNoStep, and
// the caller decides how its agent activates the teleport instead.
func Directions(path []grid.Coordinate) ([]grid.Direction, error) {
	if len(path) < 2 {
		return nil, nil
	}
	out := make([]grid.Direction, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		d, err := grid.StepDirection(path[i-1], path[i])
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, nil
}
