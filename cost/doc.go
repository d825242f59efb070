// Package cost implements the movement cost model: the energy price of
// stepping between two adjacent, discovered tiles under the current
// environmental conditions.
//
// What:
//
//   - Move: terrain base cost of the origin tile, scaled by the
//     environment adjuster, plus a quadratic penalty for strictly uphill
//     steps.
//   - TeleportFee: the fixed flat fee of a teleport-to-teleport hop,
//     which bypasses this model entirely.
//
// Contract:
//
//   - Both tiles must be discovered and the pair four-directionally
//     adjacent. The route builder guarantees this by construction; any
//     other caller triggering ErrUndiscovered or ErrNotAdjacent has a
//     programming error, not a runtime condition to retry.
//   - The returned cost is always ≥ 0, and equals the adjusted base cost
//     whenever the destination is not strictly higher than the origin.
//
// Known simplification:
//
//   - Cost depends on the origin tile's terrain, so an undirected edge
//     weighted with Move(from→to) slightly misprices the reverse
//     traversal. The route builder documents and accepts this.
package cost
