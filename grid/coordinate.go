package grid

import "fmt"

// Coordinate is an immutable (row, col) position on a square grid.
//
// Arithmetic is componentwise and unchecked: Sub may produce negative
// components, which InBounds and the planner's index table reject
// naturally. Guarding against that is the call site's responsibility.
type Coordinate struct {
	Row int
	Col int
}

// NewCoordinate builds a Coordinate from row and column.
func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// Add returns the componentwise sum of c and o.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// Sub returns the componentwise difference of c and o. No clamping.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{Row: c.Row - o.Row, Col: c.Col - o.Col}
}

// AddPair adds a raw (row, col) pair, for interop with external APIs
// that hand out bare integer tuples.
func (c Coordinate) AddPair(dr, dc int) Coordinate {
	return Coordinate{Row: c.Row + dr, Col: c.Col + dc}
}

// SubPair subtracts a raw (row, col) pair. No clamping.
func (c Coordinate) SubPair(dr, dc int) Coordinate {
	return Coordinate{Row: c.Row - dr, Col: c.Col - dc}
}

// DistanceTo returns the signed componentwise delta from c to o.
func (c Coordinate) DistanceTo(o Coordinate) (dr, dc int) {
	return c.Row - o.Row, c.Col - o.Col
}

// IsCloseTo reports whether o is at most one four-directional step away
// from c: true iff Δrow² + Δcol² < 2. Diagonal neighbors have squared
// distance 2 and are excluded by construction; c.IsCloseTo(c) is true.
func (c Coordinate) IsCloseTo(o Coordinate) bool {
	dr, dc := c.DistanceTo(o)

	return dr*dr+dc*dc < 2
}

// String renders the coordinate as "row,col".
func (c Coordinate) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// StepDirection translates a pair of four-directionally adjacent
// coordinates into the movement command leading from one to the other.
// The column axis is checked before the row axis.
//
// Returns ErrNoStep for identical coordinates and for any pair that is
// not exactly one unit apart on exactly one axis — such inputs have no
// single movement command and are never silently approximated.
func StepDirection(from, to Coordinate) (Direction, error) {
	if !from.IsCloseTo(to) || from == to {
		return 0, fmt.Errorf("%w: %s → %s", ErrNoStep, from, to)
	}
	switch {
	case from.Col > to.Col:
		return Left, nil
	case from.Col < to.Col:
		return Right, nil
	case from.Row > to.Row:
		return Up, nil
	default:
		return Down, nil
	}
}
