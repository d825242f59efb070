// Package grid defines the spatial vocabulary of the toolkit: coordinates
// on a square map, terrain and tile records, movement directions, and the
// Grid snapshot of everything an agent has discovered so far.
//
// What:
//
//   - Coordinate: a (row, col) value type with componentwise arithmetic
//     and a strict four-directional closeness predicate.
//   - Terrain / Tile: terrain classification with derived walkability and
//     base movement cost, plus elevation and content per tile.
//   - Grid: a square N×N snapshot of *Tile where nil means "not yet
//     discovered". Construction deep-copies; the snapshot never mutates
//     behind a reader's back.
//   - Direction: the four discrete movement commands and their unit offsets.
//
// Why:
//
//   - Every other package (cost model, route planner, POI registry, scout)
//     consumes these types; keeping them dependency-free avoids cycles.
//   - A dense optional grid keeps cell lookup O(1) and bounds checks
//     trivial, which the route planner's index table relies on.
//
// Errors:
//
//   - ErrEmptyGrid: snapshot has no rows or no columns.
//   - ErrNotSquare: row and column counts differ, or a row is ragged.
//   - ErrOffGrid: a coordinate lies outside [0,N)×[0,N).
//   - ErrAlreadyCharted: Set would overwrite an already-discovered tile.
//   - ErrDimensionMismatch: merging snapshots of different sizes.
package grid
