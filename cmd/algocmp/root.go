// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Data sources selectable with --source.
const (
	sourceBuiltin = "builtin"
	sourceCSV     = "csv"
	sourceDB      = "db"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "algocmp",
		Short: "Compare ACO and GA trial results",
		Long: `algocmp analyzes trials of two optimization algorithms run at several
order counts. It summarizes every response per (algorithm, orders) group,
fits response ~ C(algorithm) * orders with a type II ANOVA, renders charts
and writes a Markdown report.

Data comes from the built-in trials, a CSV file (--source csv --input FILE)
or a dataset imported into the local store (--source db --dataset NAME).`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringP("config", "c", "", "configuration file (default ./algocmp.yaml if present)")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	pf.String("source", sourceBuiltin, "data source: builtin, csv or db")
	pf.String("input", "", "CSV file for --source csv")
	pf.String("dataset", "", "stored dataset name for --source db")
	pf.String("db-dir", "", "dataset store directory (default $XDG_DATA_HOME/algocmp)")

	cmd.AddCommand(NewSummaryCmd())
	cmd.AddCommand(NewANOVACmd())
	cmd.AddCommand(NewPlotCmd())
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewImportCmd())
	cmd.AddCommand(NewDatasetsCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
