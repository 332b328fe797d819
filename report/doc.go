// SPDX-License-Identifier: MIT

// Package report renders analysis results for people and for other tools.
//
// Anything with a header row and string records (summary.Table,
// summary.Aggregation, anova.Table) satisfies Tabular and can be written as:
//
//   - a console table (WriteText),
//   - CSV (WriteCSV),
//
// while WriteMarkdown assembles a complete analysis report from a Document:
// dataset overview, grouped summary, one ANOVA table per fitted model with a
// significance alert per term, and links to rendered charts.
//
// Writers never compute anything; they only format what they are given.
package report
