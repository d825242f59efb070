// Package scout: sentinel errors, the energy budget, and the world
// collaborator contract.
package scout

import (
	"errors"
	"fmt"

	"github.com/katrelda/routecraft/grid"
)

// CostPerTile is the flat energy price of revealing one unknown cell.
const CostPerTile int64 = 3

// Sentinel errors for discovery operations.
var (
	// ErrBadBudget indicates a negative starting energy amount.
	ErrBadBudget = errors.New("scout: budget must be non-negative")

	// ErrBadStrip indicates a strip with non-positive length or width.
	ErrBadStrip = errors.New("scout: strip length and width must be positive")

	// ErrExhausted indicates the budget cannot cover the next reveal.
	ErrExhausted = errors.New("scout: energy budget exhausted")

	// ErrReveal wraps a failure reported by the Revealer collaborator.
	ErrReveal = errors.New("scout: world reveal failed")

	// ErrNilGrid indicates a discovery call without a snapshot to merge into.
	ErrNilGrid = errors.New("scout: grid snapshot is nil")

	// ErrNilWorld indicates a scout constructed without a Revealer.
	ErrNilWorld = errors.New("scout: revealer is nil")
)

// Revealer is the world collaborator that uncovers a single cell. It is
// only ever asked about in-bounds, still-undiscovered coordinates.
type Revealer interface {
	// Reveal returns the tile at c. A nil tile with a nil error means
	// the world has nothing there; the cell stays undiscovered.
	Reveal(c grid.Coordinate) (*grid.Tile, error)
}

// Budget is spend-or-fail energy accounting for discovery sweeps.
// Not safe for concurrent use.
type Budget struct {
	remaining int64
}

// NewBudget creates a budget holding n energy units.
// Returns ErrBadBudget if n is negative.
func NewBudget(n int64) (*Budget, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadBudget, n)
	}

	return &Budget{remaining: n}, nil
}

// Remaining returns the unspent energy.
func (b *Budget) Remaining() int64 { return b.remaining }

// Spend deducts n units, or deducts nothing and returns ErrExhausted
// when fewer than n remain.
func (b *Budget) Spend(n int64) error {
	if n > b.remaining {
		return fmt.Errorf("%w: need %d, have %d", ErrExhausted, n, b.remaining)
	}
	b.remaining -= n

	return nil
}
