package cost

import (
	"errors"
	"fmt"

	"github.com/katrelda/routecraft/env"
	"github.com/katrelda/routecraft/grid"
)

// TeleportFee is the flat energy price of hopping between any two
// discovered teleport tiles, regardless of grid distance or terrain.
const TeleportFee int64 = 30

// Sentinel errors for cost evaluation. Both indicate contract violations
// by the caller: the route builder never produces such pairs.
var (
	// ErrUndiscovered indicates a cost query over an unobserved tile.
	ErrUndiscovered = errors.New("cost: tile not discovered")

	// ErrNotAdjacent indicates a coordinate pair that is not exactly one
	// four-directional step apart.
	ErrNotAdjacent = errors.New("cost: coordinates not adjacent")
)

// Move returns the energy cost of stepping from one tile onto a
// four-directionally adjacent one.
//
// Steps:
//  1. Both cells must be discovered in g (ErrUndiscovered otherwise).
//  2. from and to must be distinct and adjacent (ErrNotAdjacent).
//  3. Take the origin terrain's base cost and scale it with adjust
//     (nil adjust falls back to env.Adjust).
//  4. If the destination is strictly higher, add (Δelevation)²;
//     level or downhill steps never attract the penalty.
//
// Complexity: O(1).
func Move(g *grid.Grid, from, to grid.Coordinate, cond env.Conditions, adjust env.Adjuster) (int64, error) {
	tileFrom := g.At(from)
	tileTo := g.At(to)
	if tileFrom == nil || tileTo == nil {
		return 0, fmt.Errorf("%w: %s → %s", ErrUndiscovered, from, to)
	}
	if from == to || !from.IsCloseTo(to) {
		return 0, fmt.Errorf("%w: %s → %s", ErrNotAdjacent, from, to)
	}

	if adjust == nil {
		adjust = env.Adjust
	}
	c := adjust(tileFrom.Terrain.Properties().BaseCost, cond, tileFrom.Terrain)

	if diff := tileTo.Elevation - tileFrom.Elevation; diff > 0 {
		c += int64(diff) * int64(diff)
	}

	return c, nil
}
