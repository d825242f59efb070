// File: pool.go
// Role: Bounded permit pool capping how many tool instances are live at once.
// Determinism:
//   - Acquire either succeeds immediately or fails with ErrPoolExhausted;
//     there is no queueing or blocking.
// Concurrency:
//   - All counter updates happen under a single mutex.

package routecraft

import (
	"errors"
	"sync"
)

// Sentinel errors for pool operations.
var (
	// ErrBadLimit indicates the pool was created with a non-positive limit.
	ErrBadLimit = errors.New("routecraft: pool limit must be at least 1")

	// ErrPoolExhausted indicates every permit is currently in use.
	ErrPoolExhausted = errors.New("routecraft: no tool permits available")
)

// Pool caps the number of concurrently live tool instances.
//
// Each heavyweight tool (a planner build, a scout run) should hold one
// Permit for its lifetime and release it explicitly when done. Release
// is the caller's job: nothing is reclaimed on garbage collection.
//
// Complexity: all operations are O(1).
type Pool struct {
	mu    sync.Mutex
	limit int // maximum live permits
	inUse int // currently acquired, not yet released
}

// NewPool creates a Pool with the given permit limit.
// Returns ErrBadLimit if limit < 1.
func NewPool(limit int) (*Pool, error) {
	if limit < 1 {
		return nil, ErrBadLimit
	}

	return &Pool{limit: limit}, nil
}

// Acquire reserves one permit, or fails with ErrPoolExhausted if all
// permits are in use. The returned Permit must be released by the caller.
func (p *Pool) Acquire() (*Permit, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.inUse >= p.limit {
		return nil, ErrPoolExhausted
	}
	p.inUse++

	return &Permit{pool: p}, nil
}

// InUse reports how many permits are currently held.
func (p *Pool) InUse() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.inUse
}

// Limit reports the pool capacity.
func (p *Pool) Limit() int { return p.limit }

// Permit is one reserved slot in a Pool.
//
// Release is idempotent: calling it more than once returns the slot a
// single time.
type Permit struct {
	pool *Pool
	once sync.Once
}

// Release returns the permit to its pool.
func (pm *Permit) Release() {
	pm.once.Do(func() {
		pm.pool.mu.Lock()
		defer pm.pool.mu.Unlock()
		if pm.pool.inUse > 0 {
			pm.pool.inUse--
		}
	})
}
