// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algocmp/chart"
)

// NewPlotCmd creates the plot command.
func NewPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the configured charts",
		Long: `Plot renders every chart listed under charts.items in the configuration:
line charts of the mean response per order count for each algorithm, and
mean ± standard deviation error-bar charts. The image format follows
charts.format (png, svg or pdf).

Examples:
  algocmp plot
  algocmp plot --out build/charts`,
		Args: cobra.NoArgs,
		RunE: runPlotCmd,
	}
	cmd.Flags().StringP("out", "o", "charts", "output directory")

	return cmd
}

func runPlotCmd(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	ds, _, err := s.load(cmd.Context())
	if err != nil {
		return err
	}
	paths, err := chart.RenderAll(cmd.Context(), ds, s.cfg, out, s.logger)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(s.out, p)
	}

	return nil
}
