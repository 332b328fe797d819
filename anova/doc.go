// SPDX-License-Identifier: MIT

// Package anova fits a two-way linear model with a categorical-by-continuous
// interaction and decomposes it with a type-II ANOVA.
//
// Model:
//
//	response ~ C(factor) * covariate
//
//	which expands to an intercept, one dummy column per non-reference
//	factor level, the covariate as-is, and one dummy×covariate interaction
//	column per non-reference level.
//
// Reference level:
//
//	The first factor level in ascending byte order, unless overridden with
//	WithReference.
//
// Estimation:
//
//	Ordinary least squares by Householder QR (gonum/mat). The normal
//	equations are never formed, which keeps the solve stable for responses
//	around 1e5 and covariates around 1e3.
//
// Type-II sums of squares:
//
//	SS(factor)            = RSS(covariate)         − RSS(factor + covariate)
//	SS(covariate)         = RSS(factor)            − RSS(factor + covariate)
//	SS(factor:covariate)  = RSS(factor + covariate) − RSS(full)
//	SS(Residual)          = RSS(full)
//
//	F = (SS/df) / (RSS(full)/df_resid); the p-value is the upper tail of
//	F(df, df_resid). Terms with zero df report NaN for F and p.
//
// Errors:
//   - *dataset.SchemaError for absent or wrong-kind columns.
//   - *RankDeficiencyError (ErrRankDeficient) when the factor has fewer than
//     two levels or a design column is linearly dependent on earlier ones
//     (e.g. a level whose covariate never varies).
//   - *InsufficientDataError (ErrInsufficientData) when n − p ≤ 0.
//
// All functions are pure: the same dataset and model always produce
// bit-identical coefficients and tables.
package anova
