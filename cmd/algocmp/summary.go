// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/algocmp/dataset"
	"github.com/katalvlaran/algocmp/report"
	"github.com/katalvlaran/algocmp/summary"
)

// Output formats for tabular commands.
const (
	formatText     = "text"
	formatCSV      = "csv"
	formatMarkdown = "markdown"
)

var errFormat = errors.New("unknown --format")

// NewSummaryCmd creates the summary command.
func NewSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Mean and standard deviation per (algorithm, orders) group",
		Long: `Summary groups the trials by factor level and covariate value and reports,
for each configured response, the mean and the sample standard deviation.
A group with a single trial has an undefined (NaN) standard deviation.

Examples:
  algocmp summary
  algocmp summary --response seconds --response fitness --format csv`,
		Args: cobra.NoArgs,
		RunE: runSummaryCmd,
	}
	cmd.Flags().StringP("format", "f", formatText, "output format: text, csv or markdown")
	cmd.Flags().StringSliceP("response", "r", nil, "responses to summarize (default from config)")

	return cmd
}

func runSummaryCmd(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	responses, err := cmd.Flags().GetStringSlice("response")
	if err != nil {
		return err
	}
	if len(responses) == 0 {
		responses = s.cfg.Summary.Responses
	}

	ds, source, err := s.load(cmd.Context())
	if err != nil {
		return err
	}
	tbl, err := summary.Compute(ds, s.keys(), responses...)
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	s.logger.Debug("summary computed", zap.Int("groups", len(tbl.Groups)), zap.String("source", source))

	return writeTabular(s.out, format, "Summary by "+s.cfg.Factor+" and "+s.cfg.Covariate, tbl, ds)
}

// writeTabular renders t in the requested format. The Markdown form is a
// minimal report around the table.
func writeTabular(w io.Writer, format, title string, t report.Tabular, ds *dataset.Dataset) error {
	switch format {
	case formatText:
		return report.WriteText(w, title, t)
	case formatCSV:
		return report.WriteCSV(w, t)
	case formatMarkdown:
		return report.WriteMarkdown(w, report.Document{Title: title, Data: ds, Summary: t})
	default:
		return fmt.Errorf("%w %q", errFormat, format)
	}
}
