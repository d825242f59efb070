// File: graph.go
// Role: Planner construction — node arena, dense coordinate index,
//       adjacency edges, teleport mesh.
// Determinism:
//   - Node ids follow row-major discovery order.
//   - Edge ids follow insertion order: right/down adjacency first,
//     teleport mesh last.

package route

import (
	"fmt"

	"github.com/katrelda/routecraft/cost"
	"github.com/katrelda/routecraft/env"
	"github.com/katrelda/routecraft/grid"
)

// arc is one traversable direction of an undirected edge, stored in the
// adjacency list of its origin node.
type arc struct {
	to     NodeID
	weight int64
	edge   EdgeID
}

// edgeRecord is the catalog entry of one undirected edge.
type edgeRecord struct {
	u, v   NodeID
	weight int64
}

// Planner owns the route graph built from one grid snapshot. It is
// exclusively owned by a single planning cycle: no internal locking, no
// sharing across goroutines, and no reuse after the snapshot changes —
// construct a fresh Planner instead.
type Planner struct {
	dim       int
	nodes     []grid.Coordinate // NodeID → coordinate (reverse lookup)
	index     [][]NodeID        // dense N×N coordinate → NodeID table
	adj       [][]arc           // per-node adjacency (mirrored arcs)
	edges     []edgeRecord      // EdgeID → record
	teleports map[EdgeID]struct{}
	heuristic Heuristic
}

// Build scans the snapshot once and assembles the route graph.
//
// Steps:
//  1. Node creation: every discovered, walkable cell becomes a node in
//     row-major order; the index table records its id (NoNode for
//     everything else). Discovered teleports join a worklist.
//  2. Adjacency: for each node, an edge to its right neighbor and to its
//     down neighbor when those produced nodes. The weight is the cost
//     model evaluated in the forward scan direction and applies to both
//     traversal directions of the undirected edge.
//  3. Teleport mesh: a complete clique over the worklist at the flat
//     teleport fee, with each mesh edge id recorded so fee edges can be
//     told apart from computed ones.
//
// Teleport pairs that are also grid-adjacent keep both edges; the
// shortest-path search picks the cheaper.
//
// Complexity: O(N²) cells + O(T²) mesh, T = discovered teleports.
func Build(g *grid.Grid, cond env.Conditions, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.TeleportFee < 0 {
		return nil, ErrBadTeleportFee
	}
	weigh := cfg.Cost
	if weigh == nil {
		weigh = costModel(cond, cfg.Adjuster)
	}

	dim := g.Dim()
	p := &Planner{
		dim:       dim,
		index:     make([][]NodeID, dim),
		teleports: make(map[EdgeID]struct{}),
		heuristic: cfg.Heuristic,
	}

	// 1) Node creation scan.
	var teleportCells []grid.Coordinate
	for i := 0; i < dim; i++ {
		p.index[i] = make([]NodeID, dim)
		for j := 0; j < dim; j++ {
			c := grid.NewCoordinate(i, j)
			tile := g.At(c)
			if tile == nil || !tile.Terrain.Walkable() {
				// Undiscovered and unwalkable cells stay out of the
				// graph but keep their slot in the dim×dim table.
				p.index[i][j] = NoNode
				continue
			}
			p.index[i][j] = p.addNode(c)
			if tile.Terrain.IsTeleport() {
				teleportCells = append(teleportCells, c)
			}
		}
	}

	// 2) Adjacency scan: right and down neighbors only; the undirected
	//    mirror covers left and up.
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			u := p.index[i][j]
			if u == NoNode {
				continue
			}
			here := grid.NewCoordinate(i, j)
			if j != dim-1 {
				if v := p.index[i][j+1]; v != NoNode {
					right := grid.NewCoordinate(i, j+1)
					w, err := weigh(g, here, right)
					if err != nil {
						return nil, fmt.Errorf("%w: %s → %s: %v", ErrCostEval, here, right, err)
					}
					p.addEdge(u, v, w)
				}
			}
			if i != dim-1 {
				if v := p.index[i+1][j]; v != NoNode {
					down := grid.NewCoordinate(i+1, j)
					w, err := weigh(g, here, down)
					if err != nil {
						return nil, fmt.Errorf("%w: %s → %s: %v", ErrCostEval, here, down, err)
					}
					p.addEdge(u, v, w)
				}
			}
		}
	}

	// 3) Teleport clique at the flat fee.
	for a := 0; a < len(teleportCells); a++ {
		for b := a + 1; b < len(teleportCells); b++ {
			ca, cb := teleportCells[a], teleportCells[b]
			eid := p.addEdge(p.index[ca.Row][ca.Col], p.index[cb.Row][cb.Col], cfg.TeleportFee)
			p.teleports[eid] = struct{}{}
		}
	}

	return p, nil
}

// costModel closes the default cost collaborator over the conditions
// captured at build time.
func costModel(cond env.Conditions, adjust env.Adjuster) CostFunc {
	return func(g *grid.Grid, from, to grid.Coordinate) (int64, error) {
		return cost.Move(g, from, to, cond, adjust)
	}
}

// addNode appends a node to the arena and returns its id.
func (p *Planner) addNode(c grid.Coordinate) NodeID {
	id := NodeID(len(p.nodes))
	p.nodes = append(p.nodes, c)
	p.adj = append(p.adj, nil)

	return id
}

// addEdge catalogs an undirected edge and mirrors it into both adjacency
// lists. Parallel edges are allowed: the teleport mesh may duplicate a
// grid-adjacency edge at a different weight.
func (p *Planner) addEdge(u, v NodeID, weight int64) EdgeID {
	eid := EdgeID(len(p.edges))
	p.edges = append(p.edges, edgeRecord{u: u, v: v, weight: weight})
	p.adj[u] = append(p.adj[u], arc{to: v, weight: weight, edge: eid})
	p.adj[v] = append(p.adj[v], arc{to: u, weight: weight, edge: eid})

	return eid
}

// Dim returns the snapshot dimension the planner was built from.
func (p *Planner) Dim() int { return p.dim }

// NodeCount returns the number of discovered, walkable cells charted.
func (p *Planner) NodeCount() int { return len(p.nodes) }

// EdgeCount returns the total number of undirected edges, teleport mesh
// included.
func (p *Planner) EdgeCount() int { return len(p.edges) }

// TeleportEdgeCount returns how many edges belong to the teleport mesh.
func (p *Planner) TeleportEdgeCount() int { return len(p.teleports) }

// IsTeleportEdge reports whether eid is a flat-fee teleport-mesh edge
// rather than a cost-model edge. Useful if fee edges ever need their
// weight recomputed separately.
func (p *Planner) IsTeleportEdge(eid EdgeID) bool {
	_, ok := p.teleports[eid]

	return ok
}

// NodeAt returns the node id charted for c, or NoNode when c is out of
// range, undiscovered, or unwalkable.
// Complexity: O(1).
func (p *Planner) NodeAt(c grid.Coordinate) NodeID {
	if c.Row < 0 || c.Row >= p.dim || c.Col < 0 || c.Col >= p.dim {
		return NoNode
	}

	return p.index[c.Row][c.Col]
}

// CoordinateOf returns the coordinate a node id was charted at.
// The second result is false for ids outside the arena.
// Complexity: O(1).
func (p *Planner) CoordinateOf(id NodeID) (grid.Coordinate, bool) {
	if id < 0 || int(id) >= len(p.nodes) {
		return grid.Coordinate{}, false
	}

	return p.nodes[id], true
}
