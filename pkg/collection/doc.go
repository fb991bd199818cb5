// Package collection provides set-like operations over slices: deduplication,
// symmetric difference, intersection and a lossy JSON clone.
//
// The operations intentionally keep a few list-oriented quirks instead of
// behaving like mathematical sets:
//
//   - SymmetricDifference keeps an element only if it occurs exactly once in
//     the concatenation of both inputs, so a value repeated inside a single
//     input is dropped even when the other input lacks it.
//   - Intersection walks the second slice in the outer loop and appends every
//     matching element of the first slice, so duplicates multiply and the
//     output follows the order of the second slice.
//   - CloneJSON copies through an encoding/json round trip and loses whatever
//     JSON cannot carry.
//
// Nil inputs are treated as empty and every function returns a new slice.
package collection
