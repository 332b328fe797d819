// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algocmp/config"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Init writes algocmp.yaml with the default analysis: all four responses
summarized, the ANOVA of execution time, and the four comparison charts.

Examples:
  algocmp init
  algocmp init -o configs/march.yaml -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}
	cmd.Flags().StringP("output", "o", config.DefaultConfigFile, "output file path")
	cmd.Flags().BoolP("force", "f", false, "overwrite an existing file")

	return cmd
}

func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err = os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.Create(outputPath) //nolint:gosec // user-provided output path is intentional
	if err != nil {
		return err
	}
	if err = config.Write(f, config.Default()); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", outputPath)

	return nil
}
