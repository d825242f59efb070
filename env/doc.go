// Package env models the ambient environmental conditions of the world —
// weather and time of day — and the cost-adjustment function that folds
// them into terrain movement costs.
//
// What:
//
//   - Conditions: an opaque (Weather, TimeOfDay) snapshot supplied by the
//     world collaborator at planning time.
//   - Adjust: the default pure adjustment function mapping a base terrain
//     cost and the current conditions to an effective integer cost.
//   - Adjuster: the function type the route planner accepts, so hosts can
//     substitute their own climate model without touching the planner.
//
// Why:
//
//   - The route engine must never own weather logic: it only forwards
//     (base, conditions, terrain) to a pure function and trusts the
//     integer it gets back. Keeping the default table here makes that
//     boundary explicit and testable in isolation.
//
// Guarantees:
//
//   - Adjust is pure and deterministic.
//   - Adjust never returns a negative cost.
package env
