package grid

// Grid is a square N×N snapshot of discovered tiles. A nil entry means
// the agent has never observed that cell.
//
// Construction deep-copies the row structure so later mutations of the
// source slice cannot corrupt the snapshot. Tile pointers themselves are
// shared and treated as read-only by convention.
//
// A Grid is owned by the world-cache collaborator; the route engine only
// borrows it for the duration of one planning call.
type Grid struct {
	dim   int
	tiles [][]*Tile
}

// NewGrid creates a fully undiscovered dim×dim snapshot.
// Returns ErrEmptyGrid if dim < 1.
// Complexity: O(dim²) allocations.
func NewGrid(dim int) (*Grid, error) {
	if dim < 1 {
		return nil, ErrEmptyGrid
	}
	tiles := make([][]*Tile, dim)
	for i := range tiles {
		tiles[i] = make([]*Tile, dim)
	}

	return &Grid{dim: dim, tiles: tiles}, nil
}

// FromTiles wraps an existing matrix of optional tiles as a snapshot.
// The matrix must be square: the world guarantees row and column bounds
// agree, and the planner's index table depends on it.
// Returns ErrEmptyGrid for an empty matrix, ErrNotSquare for a ragged or
// non-square one.
// Complexity: O(N²) time and memory (rows are copied).
func FromTiles(tiles [][]*Tile) (*Grid, error) {
	n := len(tiles)
	if n == 0 || len(tiles[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	for _, row := range tiles {
		if len(row) != n {
			return nil, ErrNotSquare
		}
	}
	// Copy row slices to decouple from the caller's backing arrays.
	cp := make([][]*Tile, n)
	for i, row := range tiles {
		cp[i] = make([]*Tile, n)
		copy(cp[i], row)
	}

	return &Grid{dim: n, tiles: cp}, nil
}

// Dim returns the snapshot dimension N.
func (g *Grid) Dim() int { return g.dim }

// InBounds reports whether c lies within [0,N)×[0,N).
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.dim && c.Col >= 0 && c.Col < g.dim
}

// At returns the tile at c, or nil when c is out of bounds or the cell
// is undiscovered. The returned pointer is read-only by convention.
// Complexity: O(1).
func (g *Grid) At(c Coordinate) *Tile {
	if !g.InBounds(c) {
		return nil
	}

	return g.tiles[c.Row][c.Col]
}

// Discovered reports whether the cell at c carries observed terrain data.
func (g *Grid) Discovered(c Coordinate) bool { return g.At(c) != nil }

// Set records a newly discovered tile at c.
// Returns ErrOffGrid for out-of-range coordinates and ErrAlreadyCharted
// if the cell already holds a tile (use SetUnchecked to overwrite).
func (g *Grid) Set(c Coordinate, t *Tile) error {
	if !g.InBounds(c) {
		return ErrOffGrid
	}
	if g.tiles[c.Row][c.Col] != nil {
		return ErrAlreadyCharted
	}
	g.tiles[c.Row][c.Col] = t

	return nil
}

// SetUnchecked records a tile at c, replacing any previous observation.
// Out-of-range coordinates are ignored.
func (g *Grid) SetUnchecked(c Coordinate, t *Tile) {
	if g.InBounds(c) {
		g.tiles[c.Row][c.Col] = t
	}
}

// Merge copies every discovered cell of other into g, overwriting stale
// observations. Both snapshots must share a dimension.
// Returns ErrDimensionMismatch otherwise.
// Complexity: O(N²).
func (g *Grid) Merge(other *Grid) error {
	if other == nil || other.dim != g.dim {
		return ErrDimensionMismatch
	}
	for i := 0; i < g.dim; i++ {
		for j := 0; j < g.dim; j++ {
			if other.tiles[i][j] != nil {
				g.tiles[i][j] = other.tiles[i][j]
			}
		}
	}

	return nil
}

// Clone returns an independent snapshot sharing tile pointers.
// Complexity: O(N²).
func (g *Grid) Clone() *Grid {
	cp := make([][]*Tile, g.dim)
	for i, row := range g.tiles {
		cp[i] = make([]*Tile, g.dim)
		copy(cp[i], row)
	}

	return &Grid{dim: g.dim, tiles: cp}
}

// DiscoveredCount returns how many cells carry terrain data.
// Complexity: O(N²).
func (g *Grid) DiscoveredCount() int {
	var n int
	for _, row := range g.tiles {
		for _, t := range row {
			if t != nil {
				n++
			}
		}
	}

	return n
}
