// SPDX-License-Identifier: MIT

package anova

import "math"

// DefaultTolerance is the relative threshold for the rank check:
// column j is dependent when |R_jj| ≤ tol·‖X_j‖₂.
const DefaultTolerance = 1e-10

const panicToleranceInvalid = "anova: WithTolerance: tol must be finite, non-negative"

// Option configures FitModel.
type Option func(*options)

type options struct {
	tol       float64
	reference string // empty ⇒ first sorted level
}

func gatherOptions(opts ...Option) options {
	o := options{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithTolerance sets the relative rank tolerance.
// Panics on NaN, ±Inf or negative values (programmer error).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// WithReference selects the reference level for dummy coding.
// FitModel returns a *dataset.SchemaError if the level does not occur.
func WithReference(level string) Option {
	return func(o *options) { o.reference = level }
}
