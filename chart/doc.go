// SPDX-License-Identifier: MIT

// Package chart draws the comparison charts with gonum/plot: one mean line
// per factor level against the covariate, and mean ± standard deviation
// error bars.
//
// Charts only read their inputs. RenderAll draws every configured chart
// concurrently, one goroutine per chart, each building its own plot.
package chart
