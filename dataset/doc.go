// SPDX-License-Identifier: MIT

// Package dataset holds typed, column-aligned experimental data.
//
// A Dataset is built once from a fixed ordered Schema and never mutated
// afterwards. Every column carries exactly one value per row:
//
//   - Categorical columns hold non-empty string levels (e.g. algorithm name).
//   - Numeric columns hold finite float64 values (e.g. order count, seconds).
//
// Columns are resolved by name through the schema index exactly once per
// access; a missing or wrong-kind column yields a *SchemaError that matches
// ErrColumnNotFound or ErrColumnKind via errors.Is.
//
// Usage:
//
//	ds, err := dataset.NewBuilder().
//		Categorical("algorithm", []string{"ACO", "ACO", "GA", "GA"}).
//		Numeric("orders", []float64{50, 100, 50, 100}).
//		Numeric("seconds", []float64{43.7, 90.1, 77, 184}).
//		Build()
//
// Accessors return copies, so callers may freely modify returned slices.
package dataset
