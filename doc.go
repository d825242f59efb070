// Package routecraft is a navigation toolkit for autonomous agents that
// explore a partially-known, square grid world one tile at a time.
//
// 🚀 What is routecraft?
//
//	A small, in-process library that turns "the tiles my agent has seen
//	so far" into concrete travel answers:
//		• grid/  — coordinates, terrain & tile model, square map snapshots
//		• env/   — weather & time-of-day conditions and cost adjustment
//		• cost/  — the per-step movement cost model (terrain, climate, climbs)
//		• route/ — the route-planning engine: snapshot → weighted graph →
//		           Dijkstra & A* queries → discrete movement directions
//		• poi/   — a point-of-interest registry with nearest-POI lookup
//		• scout/ — a tile-discovery helper that spends an energy budget
//
// ✨ Design in one paragraph
//
//	The engine treats the route graph as disposable scratch state: each
//	planning call rebuilds it from the current map snapshot and weather,
//	because both change too quickly to amortize incremental updates.
//	Undiscovered tiles are absent, never "infinitely expensive" — a query
//	over unknown ground simply reports no result, and the calling agent
//	loop decides what to do about it.
//
// The root package holds Pool, a bounded permit pool that caps how many
// tool instances may be live at once. Acquire a permit, build your
// planner, release the permit when the planning round is done.
//
// Quick ASCII example (5×5 world, # = unwalkable, T = teleport):
//
//	. . . # T
//	. # T . .
//	# # # # #
//
// A planner built over this snapshot routes (0,0)→(0,4) either around
// the walls or through the teleport pair, whichever costs less.
//
//	go get github.com/katrelda/routecraft
package routecraft
