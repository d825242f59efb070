package scout

import (
	"fmt"

	"github.com/katrelda/routecraft/grid"
)

// Scout is a positioned discovery prober. It does not traverse terrain
// itself; its position is a cursor the caller steers, so probing from a
// coordinate the agent could never reach is the caller's bug.
//
// Not safe for concurrent use.
type Scout struct {
	at     grid.Coordinate
	world  Revealer
	budget *Budget
}

// NewScout creates a scout at the given position, probing through world
// and paying from budget.
// Returns ErrNilWorld when world is nil; a nil budget means unlimited
// energy.
func NewScout(at grid.Coordinate, world Revealer, budget *Budget) (*Scout, error) {
	if world == nil {
		return nil, ErrNilWorld
	}

	return &Scout{at: at, world: world, budget: budget}, nil
}

// At returns the scout's current position.
func (s *Scout) At() grid.Coordinate { return s.at }

// MoveTo repositions the scout without revealing anything.
func (s *Scout) MoveTo(c grid.Coordinate) { s.at = c }

// DiscoverLine reveals a strip of cells ahead of the scout: length cells
// along dir starting at the scout's own cell, width cells across,
// centered on the scout's axis and clamped to the snapshot bounds.
// Newly revealed tiles are merged into g; cells g already knows are
// skipped for free.
//
// Returns the number of tiles revealed. On ErrExhausted or ErrReveal the
// sweep stops, but the count and merges up to that point stand.
// Complexity: O(length × width) cells, one Revealer call per unknown one.
func (s *Scout) DiscoverLine(g *grid.Grid, length, width int, dir grid.Direction) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if length < 1 || width < 1 {
		return 0, fmt.Errorf("%w: length=%d width=%d", ErrBadStrip, length, width)
	}

	// 1) Strip geometry: the along axis runs from the scout's cell
	//    length-1 steps in dir; the across axis spans width/2 cells to
	//    either side. Both clamped to [0, dim).
	half := width / 2
	dr, dc := dir.Offset()

	rowLo, rowHi := axisSpan(s.at.Row, dr, length, half, g.Dim())
	colLo, colHi := axisSpan(s.at.Col, dc, length, half, g.Dim())

	// 2) Sweep, paying only for unknown cells.
	var revealed int
	for row := rowLo; row <= rowHi; row++ {
		for col := colLo; col <= colHi; col++ {
			c := grid.NewCoordinate(row, col)
			if g.Discovered(c) {
				continue
			}
			if s.budget != nil {
				if err := s.budget.Spend(CostPerTile); err != nil {
					return revealed, err
				}
			}
			tile, err := s.world.Reveal(c)
			if err != nil {
				return revealed, fmt.Errorf("%w at %s: %w", ErrReveal, c, err)
			}
			if tile == nil {
				continue
			}
			g.SetUnchecked(c, tile)
			revealed++
		}
	}

	return revealed, nil
}

// axisSpan resolves one axis of the strip rectangle. A moving axis
// (delta ≠ 0) covers the scout's cell plus length-1 steps toward delta;
// a fixed axis covers half cells to either side of the center.
func axisSpan(center, delta, length, half, dim int) (lo, hi int) {
	switch {
	case delta < 0:
		lo, hi = center-(length-1), center
	case delta > 0:
		lo, hi = center, center+(length-1)
	default:
		lo, hi = center-half, center+half
	}
	if lo < 0 {
		lo = 0
	}
	if hi > dim-1 {
		hi = dim - 1
	}

	return lo, hi
}

// DiscoverPath walks the scout along a list of movement commands,
// revealing a width-wide band around every cell it steps onto, and
// merging the results into g.
//
// Returns the total number of tiles revealed. Stepping outside the
// snapshot fails with grid.ErrOffGrid before anything at that step is
// revealed; reveals from earlier steps stand.
func (s *Scout) DiscoverPath(g *grid.Grid, width int, path []grid.Direction) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}

	var revealed int
	for _, dir := range path {
		next := dir.Apply(s.at)
		if !g.InBounds(next) {
			return revealed, fmt.Errorf("%w: step %s from %s", grid.ErrOffGrid, dir, s.at)
		}
		s.at = next

		n, err := s.DiscoverLine(g, 1, width, dir)
		revealed += n
		if err != nil {
			return revealed, err
		}
	}

	return revealed, nil
}
