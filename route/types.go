// Package route: node/edge identifiers, sentinel errors, and functional
// options for the planner builder.
package route

import (
	"errors"

	"github.com/katrelda/routecraft/cost"
	"github.com/katrelda/routecraft/env"
	"github.com/katrelda/routecraft/grid"
)

// NodeID identifies one graph node (a discovered, walkable coordinate).
// Ids are dense: the arena assigns 0,1,2,… in row-major discovery order.
type NodeID int32

// NoNode is the index-table sentinel for "this cell has no node":
// the cell is undiscovered, unwalkable, or out of range.
const NoNode NodeID = -1

// EdgeID identifies one undirected edge in the edge catalog.
type EdgeID int32

// Sentinel errors for planner construction.
var (
	// ErrNilGrid indicates Build received a nil grid snapshot.
	ErrNilGrid = errors.New("route: grid snapshot is nil")

	// ErrBadTeleportFee indicates a negative teleport fee option.
	ErrBadTeleportFee = errors.New("route: teleport fee must be non-negative")

	// ErrCostEval indicates the cost function failed on an adjacent,
	// discovered pair produced by the builder's own scan.
	ErrCostEval = errors.New("route: cost evaluation failed")
)

// CostFunc computes the weight of one forward adjacency edge.
// It is only ever called for pairs the builder has verified to be
// discovered and four-directionally adjacent.
type CostFunc func(g *grid.Grid, from, to grid.Coordinate) (int64, error)

// Heuristic estimates the remaining cost from a coordinate to the goal.
// It must never overestimate, or ShortestPath loses its optimality
// guarantee. The default is the zero heuristic (plain Dijkstra toward a
// single target).
type Heuristic func(from, to grid.Coordinate) int64

// Options configures planner construction.
//
// TeleportFee – flat weight of every teleport-mesh edge (default
// cost.TeleportFee). Adjuster – environment collaborator handed to the
// default cost model (default env.Adjust). Cost – full replacement of
// the edge cost model; when set, Adjuster is ignored. Heuristic – guide
// for ShortestPath (default zero).
type Options struct {
	TeleportFee int64
	Adjuster    env.Adjuster
	Cost        CostFunc
	Heuristic   Heuristic
}

// Option is a functional option for Build.
type Option func(*Options)

// WithTeleportFee overrides the flat teleport-hop weight.
// Negative fees surface as ErrBadTeleportFee from Build.
func WithTeleportFee(fee int64) Option {
	return func(o *Options) { o.TeleportFee = fee }
}

// WithAdjuster substitutes the environment cost-adjustment collaborator
// used by the default cost model. Nil is ignored.
func WithAdjuster(a env.Adjuster) Option {
	return func(o *Options) {
		if a != nil {
			o.Adjuster = a
		}
	}
}

// WithCostFunc replaces the edge cost model wholesale. Nil is ignored.
func WithCostFunc(fn CostFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// WithHeuristic sets the ShortestPath guide. Nil is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// DefaultOptions returns the builder defaults: the cost-model weight
// function with env.Adjust, the standard teleport fee, and the zero
// heuristic.
func DefaultOptions() Options {
	return Options{
		TeleportFee: cost.TeleportFee,
		Adjuster:    env.Adjust,
		Cost:        nil, // resolved against Adjuster inside Build
		Heuristic:   func(_, _ grid.Coordinate) int64 { return 0 },
	}
}
