// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algocmp/dataset"
	"github.com/katalvlaran/algocmp/experiment"
	"github.com/katalvlaran/algocmp/report"
	"github.com/katalvlaran/algocmp/store"
)

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a CSV file into the dataset store",
		Long: `Import reads a CSV file with a header row and stores it under a name.
The factor, covariate and every configured response must be present;
other columns are ignored. Importing under an existing name replaces it.

Examples:
  algocmp import trials.csv --name march
  algocmp summary --source db --dataset march`,
		Args: cobra.ExactArgs(1),
		RunE: runImportCmd,
	}
	cmd.Flags().StringP("name", "n", "", "dataset name (default: file name without extension)")

	return cmd
}

func runImportCmd(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return err
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	}
	ds, err := s.readCSV(args[0])
	if err != nil {
		return err
	}

	st, err := s.openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	id, err := st.Save(cmd.Context(), name, ds)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "imported %s (%d rows) as %s\n", name, ds.Len(), id)

	return nil
}

// NewDatasetsCmd creates the datasets command.
func NewDatasetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "List stored datasets",
		Args:  cobra.NoArgs,
		RunE:  runDatasetsCmd,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored dataset",
		Args:  cobra.ExactArgs(1),
		RunE:  runDatasetsDeleteCmd,
	})

	return cmd
}

func runDatasetsCmd(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	st, err := s.openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	infos, err := st.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Fprintln(s.out, "no datasets stored in", filepath.Dir(st.Path()))
		return nil
	}

	return report.WriteText(s.out, "", datasetList(infos))
}

func runDatasetsDeleteCmd(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	st, err := s.openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	if err = st.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "deleted", args[0])

	return nil
}

type datasetList []store.Info

func (l datasetList) Header() []string {
	return []string{"name", "rows", "columns", "created", "id"}
}

func (l datasetList) Records() [][]string {
	out := make([][]string, len(l))
	for i, info := range l {
		out[i] = []string{
			info.Name,
			strconv.Itoa(info.Rows),
			strconv.Itoa(info.Columns),
			info.Created.Local().Format(time.DateTime),
			info.ID,
		}
	}

	return out
}

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a stored or the built-in dataset as CSV",
		Long: `Export writes a dataset as CSV. With --name it exports a stored dataset;
without it, the built-in ACO/GA trials.

Examples:
  algocmp export > trials.csv
  algocmp export --name march --out march.csv`,
		Args: cobra.NoArgs,
		RunE: runExportCmd,
	}
	cmd.Flags().StringP("name", "n", "", "stored dataset name (default: built-in trials)")
	cmd.Flags().StringP("out", "o", "-", "output file, - for stdout")

	return cmd
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return err
	}
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	ds := experiment.Builtin()
	if name != "" {
		st, err := s.openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		if ds, err = st.Load(cmd.Context(), name); err != nil {
			return err
		}
	}

	if out == "-" {
		return dataset.WriteCSV(s.out, ds)
	}
	f, err := os.Create(out) //nolint:gosec // user-provided output path is intentional
	if err != nil {
		return err
	}
	if err = dataset.WriteCSV(f, ds); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
