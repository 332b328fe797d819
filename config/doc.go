// SPDX-License-Identifier: MIT

// Package config holds the analysis configuration: which columns form the
// factor and covariate, which responses to summarize and model, the charts
// to render, and where the dataset store and logs go.
//
// A YAML file (algocmp.yaml) overlays Default(); every field it omits keeps
// its default. Validate reports the first problem as a sentinel error so
// callers can match it with errors.Is.
package config
