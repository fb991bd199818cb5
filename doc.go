// Package utilkit is a set of small, stateless helpers for presentation-layer
// formatting and request plumbing.
//
// The root package holds no code. Each concern lives in its own package:
//
//   - pkg/timefmt: render calendar times and epoch milliseconds with
//     configurable separators or a {y}-{m}-{d} style template
//   - pkg/price: format monetary values with two decimals and thousands grouping
//   - pkg/collection: generic dedupe, symmetric difference, intersection and
//     JSON round-trip cloning of slices
//   - pkg/query: ordered request parameters, URL query parsing and building,
//     lookups over record slices and parameter filtering
//
// Helpers report a missing result with the comma-ok idiom rather than an error:
//
//	s, ok := price.Format("1234.5") // "1,234.50", true
//	_, ok = price.Format("abc")     // "", false
//
// Only malformed percent-encoding (query.ErrMalformedEncoding) and values that
// cannot survive a JSON round trip (collection.ErrNotSerializable) are errors.
//
// The cmd/utilkit binary exposes every helper on the command line and reads its
// defaults from UTILKIT_* environment variables through pkg/config.
package utilkit
