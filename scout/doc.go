// Package scout reveals unknown territory: it walks strips of the world,
// asks a Revealer collaborator what each cell holds, charges an energy
// Budget per probed unknown cell, and merges the results into the
// caller's grid snapshot.
//
// What:
//
//   - Budget: spend-or-fail energy accounting at CostPerTile per reveal.
//   - Revealer: the world collaborator that answers "what is at c".
//   - Scout: a positioned prober with DiscoverLine (a length×width strip
//     ahead of the scout, clamped to the map) and DiscoverPath (step a
//     direction list, revealing a width-wide band along the way).
//
// Accounting rules:
//
//   - Already-discovered cells cost nothing and are never re-queried.
//   - An even width widens to the next odd number: the strip is always
//     centered on the scout's axis, width/2 cells to either side.
//   - Exhausting the budget mid-strip stops the sweep; tiles revealed
//     before the failure stay merged and are included in the count.
//
// Errors: ErrBadBudget, ErrBadStrip, ErrExhausted, ErrReveal, and
// grid.ErrOffGrid when a path walks off the map.
package scout
