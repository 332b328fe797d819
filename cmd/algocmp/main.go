// SPDX-License-Identifier: MIT

// Package main provides the algocmp command line tool.
//
// algocmp compares the ACO and GA routing algorithms over recorded trials:
// grouped summaries, a two-way ANOVA of a response on algorithm and order
// count, charts and a Markdown report.
//
// Usage:
//
//	algocmp summary
//	algocmp anova --response seconds
//	algocmp report --out report.md --charts charts
//
// See --help for all available options.
package main

func main() {
	Execute()
}
