package poi

import (
	"github.com/dhconnelly/rtreego"

	"github.com/katrelda/routecraft/grid"
)

// rtree branching factors, sized for the small-to-mid observation counts
// a single agent accumulates.
const (
	rtreeMinBranch = 2
	rtreeMaxBranch = 16
)

// Entry is one recorded observation: where, and how much was there.
type Entry struct {
	At       grid.Coordinate
	Quantity int
}

// marker adapts an Entry to the rtreego.Spatial interface. Each grid
// cell occupies a unit square in index space (x = col, y = row).
type marker struct {
	entry Entry
	rect  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (m *marker) Bounds() rtreego.Rect { return m.rect }

// cellRect returns the unit rectangle of a grid cell in index space.
func cellRect(c grid.Coordinate) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{float64(c.Col), float64(c.Row)},
		[]float64{1, 1},
	)
}

// Registry records points of interest keyed by any comparable type —
// terrain classes, content kinds, whole tile fingerprints.
//
// Not safe for concurrent use; like the planner, a registry belongs to
// one agent loop.
type Registry[K comparable] struct {
	entries map[K][]Entry
	trees   map[K]*rtreego.Rtree
}

// NewRegistry creates an empty registry.
func NewRegistry[K comparable]() *Registry[K] {
	return &Registry[K]{
		entries: make(map[K][]Entry),
		trees:   make(map[K]*rtreego.Rtree),
	}
}

// Save records an observation of key at a coordinate with its quantity.
// Repeated saves at the same coordinate accumulate as separate
// observations, matching how an agent re-sights a replenished resource.
// Complexity: O(log n) for the spatial index insert.
func (r *Registry[K]) Save(key K, at grid.Coordinate, quantity int) {
	e := Entry{At: at, Quantity: quantity}
	r.entries[key] = append(r.entries[key], e)

	rect, err := cellRect(at)
	if err != nil {
		return // unit lengths cannot fail; guard kept for the API contract
	}
	tree, ok := r.trees[key]
	if !ok {
		tree = rtreego.NewTree(2, rtreeMinBranch, rtreeMaxBranch)
		r.trees[key] = tree
	}
	tree.Insert(&marker{entry: e, rect: rect})
}

// Get returns a copy of every observation recorded for key, in save
// order. The result is nil when the key was never seen.
func (r *Registry[K]) Get(key K) []Entry {
	src := r.entries[key]
	if src == nil {
		return nil
	}
	out := make([]Entry, len(src))
	copy(out, src)

	return out
}

// Count returns how many observations exist for key.
func (r *Registry[K]) Count(key K) int { return len(r.entries[key]) }

// Most returns the observation with the largest recorded quantity for
// key. Ties keep the earliest save. The second result is false when the
// key was never seen.
// Complexity: O(n) over the key's observations.
func (r *Registry[K]) Most(key K) (Entry, bool) {
	src := r.entries[key]
	if len(src) == 0 {
		return Entry{}, false
	}
	best := src[0]
	for _, e := range src[1:] {
		if e.Quantity > best.Quantity {
			best = e
		}
	}

	return best, true
}

// Nearest returns the observation of key spatially closest to from,
// answered by the key's R-tree. The second result is false when the key
// was never seen.
// Complexity: O(log n).
func (r *Registry[K]) Nearest(key K, from grid.Coordinate) (Entry, bool) {
	tree, ok := r.trees[key]
	if !ok {
		return Entry{}, false
	}
	hit := tree.NearestNeighbor(rtreego.Point{float64(from.Col), float64(from.Row)})
	if hit == nil {
		return Entry{}, false
	}

	return hit.(*marker).entry, true
}

// FromGrid bulk-ingests a snapshot: project is called for every
// discovered tile and returns the key, the quantity, and whether the
// tile is interesting at all.
// Complexity: O(N²) tiles, O(log n) per accepted one.
func FromGrid[K comparable](g *grid.Grid, project func(*grid.Tile) (K, int, bool)) *Registry[K] {
	r := NewRegistry[K]()
	if g == nil {
		return r
	}
	for row := 0; row < g.Dim(); row++ {
		for col := 0; col < g.Dim(); col++ {
			c := grid.NewCoordinate(row, col)
			tile := g.At(c)
			if tile == nil {
				continue
			}
			if key, qty, ok := project(tile); ok {
				r.Save(key, c, qty)
			}
		}
	}

	return r
}
