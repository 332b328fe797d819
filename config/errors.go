// SPDX-License-Identifier: MIT

package config

import "errors"

// Validation errors returned by Config.Validate.
var (
	// ErrNoFactor is returned when no categorical factor column is named.
	ErrNoFactor = errors.New("config: factor column is required")

	// ErrNoCovariate is returned when no numeric covariate column is named.
	ErrNoCovariate = errors.New("config: covariate column is required")

	// ErrNoResponses is returned when a response list is empty.
	ErrNoResponses = errors.New("config: at least one response is required")

	// ErrInvalidAlpha is returned when alpha is outside (0, 1).
	ErrInvalidAlpha = errors.New("config: alpha must be in (0, 1)")

	// ErrInvalidTolerance is returned for a negative or non-finite rank tolerance.
	ErrInvalidTolerance = errors.New("config: tolerance must be finite and non-negative")

	// ErrInvalidChartSize is returned when chart width or height is not positive.
	ErrInvalidChartSize = errors.New("config: chart width and height must be positive")

	// ErrUnknownImageFormat is returned for an image format other than png, svg or pdf.
	ErrUnknownImageFormat = errors.New("config: unknown image format")

	// ErrUnknownChartKind is returned for a chart kind other than line or errorbars.
	ErrUnknownChartKind = errors.New("config: unknown chart kind")

	// ErrChartName is returned when a chart has no name or reuses another's name.
	ErrChartName = errors.New("config: chart names must be non-empty and unique")

	// ErrChartResponse is returned when a chart names no response.
	ErrChartResponse = errors.New("config: chart response is required")

	// ErrInvalidYRange is returned when y_min is not below y_max.
	ErrInvalidYRange = errors.New("config: y_min must be below y_max")
)

// ErrConfigNotFound is returned by Load when the file does not exist.
var ErrConfigNotFound = errors.New("config: configuration file not found")
