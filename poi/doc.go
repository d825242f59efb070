// Package poi is the point-of-interest registry: it remembers where an
// agent saw something worth returning to (a content type, a terrain, any
// comparable key) together with the observed quantity, and answers
// "where is the nearest one" and "where is the most of it" queries.
//
// What:
//
//   - Registry[K]: keyed lists of observations, one R-tree per key for
//     nearest-neighbor lookup.
//   - Save / Get / Most / Nearest / FromGrid bulk ingestion.
//
// Why an R-tree:
//
//   - Nearest-POI is the registry's hot query (an agent asking "closest
//     known water from here" every few ticks); a spatial index answers
//     it in O(log n) instead of a linear scan over every observation.
//
// The registry never forgets: stale observations are the caller's
// problem, consistent with the toolkit treating the discovered grid as
// append-mostly knowledge.
package poi
