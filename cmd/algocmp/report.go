// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/algocmp/chart"
	"github.com/katalvlaran/algocmp/report"
	"github.com/katalvlaran/algocmp/summary"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the full Markdown analysis report",
		Long: `Report writes a Markdown document with a dataset overview, the grouped
summary, one ANOVA table per configured response with a significance note
per term, and, when --charts is set, the rendered charts.

Examples:
  algocmp report --out report.md
  algocmp report --out docs/report.md --charts docs/charts`,
		Args: cobra.NoArgs,
		RunE: runReportCmd,
	}
	cmd.Flags().StringP("out", "o", "report.md", "output file, - for stdout")
	cmd.Flags().String("charts", "", "render charts into this directory and link them")

	return cmd
}

func runReportCmd(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	chartDir, err := cmd.Flags().GetString("charts")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	ds, source, err := s.load(ctx)
	if err != nil {
		return err
	}
	tbl, err := summary.Compute(ds, s.keys(), s.cfg.Summary.Responses...)
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	fits, err := s.fitAll(ds)
	if err != nil {
		return err
	}

	doc := report.Document{
		Title:     s.cfg.Report.Title,
		Source:    source,
		Generated: time.Now(),
		Data:      ds,
		Factor:    s.cfg.Factor,
		Summary:   tbl,
		Fits:      fits,
		Alpha:     s.cfg.ANOVA.Alpha,
	}
	if chartDir != "" {
		paths, err := chart.RenderAll(ctx, ds, s.cfg, chartDir, s.logger)
		if err != nil {
			return err
		}
		doc.Charts = relativeTo(out, paths)
	}

	if out == "-" {
		return report.WriteMarkdown(s.out, doc)
	}
	if dir := filepath.Dir(out); dir != "." {
		if err = os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	f, err := os.Create(out) //nolint:gosec // user-provided output path is intentional
	if err != nil {
		return err
	}
	if err = report.WriteMarkdown(f, doc); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	s.logger.Info("report written", zap.String("path", out), zap.Int("charts", len(doc.Charts)))
	fmt.Fprintln(s.out, out)

	return nil
}

// relativeTo rewrites chart paths relative to the report's directory so the
// links work wherever the pair is moved.
func relativeTo(reportPath string, paths []string) []string {
	base := "."
	if reportPath != "-" {
		base = filepath.Dir(reportPath)
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(base, p)
		if err != nil {
			rel = p
		}
		out[i] = rel
	}

	return out
}
