// Package route is the route-planning engine: it converts a sparse,
// partially-discovered grid snapshot into a weighted undirected graph and
// answers least-cost travel queries over it.
//
// What:
//
//   - Build: one row-major scan creates a graph node per discovered,
//     walkable cell, wires four-directional adjacency edges weighted by
//     the cost model, and fully meshes every discovered teleport cell at
//     a fixed fee. A dense N×N index table maps coordinates to node ids.
//   - Planner.ShortestDistance: single-source relaxation (Dijkstra) read
//     off at the destination.
//   - Planner.ShortestPath: target-directed best-first search (A*, zero
//     heuristic by default) with full coordinate path reconstruction.
//
// Why rebuild per call:
//
//   - The discovered grid and the environmental conditions change too
//     quickly for incremental graph maintenance to pay off. A Planner is
//     disposable scratch state: build, query, discard. Do not keep one
//     alive across planning cycles.
//
// Absence vs. failure:
//
//   - Queries over out-of-range, undiscovered, unwalkable, or
//     disconnected coordinates report absence via the ok result — that
//     is the normal outcome of exploring an incomplete map, not an error.
//   - Errors are reserved for Build: a nil snapshot, an invalid option,
//     or a cost function that rejects a pair the scan produced.
//
// Known simplification:
//
//   - Each adjacency edge's weight is computed once in the forward
//     (row-major) scan direction and traversed bidirectionally at that
//     weight, even though the reverse step's true cost may differ.
//
// Complexity:
//
//   - Build:            O(N²) cells + O(T²) teleport mesh (T teleports).
//   - ShortestDistance: O((V + E) log V).
//   - ShortestPath:     O((V + E) log V), usually less with a heuristic.
//
// Errors:
//
//   - ErrNilGrid:        Build received a nil snapshot.
//   - ErrBadTeleportFee: a negative teleport fee option.
//   - ErrCostEval:       the cost function failed on a scanned pair.
package route
