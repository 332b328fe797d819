// SPDX-License-Identifier: MIT

// Package summary computes grouped descriptive statistics over a
// dataset.Dataset keyed by one categorical factor and one numeric covariate.
//
// Ordering:
//
//	Groups are emitted in sorted key order: factor level ascending (byte
//	order), then covariate value ascending. The order never depends on row
//	order, so recomputation over a permuted dataset yields the same table.
//
// Statistics:
//   - Mean is the arithmetic mean of the group's rows.
//   - Std is the sample standard deviation (denominator n−1). A group with a
//     single row has an undefined Std, reported as NaN, never 0.
//
// Errors:
//   - *dataset.SchemaError (ErrColumnNotFound / ErrColumnKind) when a key or
//     response column is absent or has the wrong kind.
//
// Results are recomputed on every call and never cached.
package summary
