// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algocmp/anova"
	"github.com/katalvlaran/algocmp/config"
	"github.com/katalvlaran/algocmp/store"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	require.Equal(t, "algocmp", cmd.Use)
	require.NotEmpty(t, cmd.Version)
	for _, flag := range []string{"config", "verbose", "source", "input", "dataset", "db-dir"} {
		require.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"summary", "anova", "plot", "report", "import", "datasets", "export", "init", "version"} {
		require.True(t, names[want], want)
	}
}

func TestSummaryCmd_CSV(t *testing.T) {
	t.Parallel()

	out, err := run(t, "summary", "--format", "csv", "--response", "seconds")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"algorithm", "orders", "count", "seconds_mean", "seconds_std"}, records[0])
	require.Len(t, records, 9)
	require.Equal(t, []string{"ACO", "50", "5", "42.9544", "0.753601"}, records[1])
	require.Equal(t, []string{"GA", "200", "5", "508", "69.1845"}, records[8])
}

func TestSummaryCmd_Errors(t *testing.T) {
	t.Parallel()

	_, err := run(t, "summary", "--format", "xml")
	require.ErrorIs(t, err, errFormat)

	_, err = run(t, "summary", "--source", "csv")
	require.ErrorIs(t, err, errNoInput)

	_, err = run(t, "summary", "--source", "db")
	require.ErrorIs(t, err, errNoDataset)

	_, err = run(t, "summary", "--source", "kafka")
	require.ErrorIs(t, err, errSource)

	_, err = run(t, "summary", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, config.ErrConfigNotFound)
}

func TestANOVACmd(t *testing.T) {
	t.Parallel()

	out, err := run(t, "anova", "--coefficients")
	require.NoError(t, err)
	require.Contains(t, out, "seconds ~ C(algorithm) * orders")
	require.Contains(t, out, "194532")
	require.Contains(t, out, "6.43507e-11")
	require.Contains(t, out, "significant at α = 0.05: C(algorithm), orders, C(algorithm):orders")
	require.Contains(t, out, "C(algorithm)[T.GA]:orders")

	out, err = run(t, "anova", "--response", "fitness", "--format", "csv")
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"term", "sum_sq", "df", "F", "PR(>F)"}, records[0])
	require.Equal(t, []string{"Residual", "3.2252e+09", "36", "NaN", "NaN"}, records[4])
}

func TestANOVACmd_RankDeficient(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "one.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"algorithm,orders,seconds\nACO,1,2\nACO,2,3\nACO,3,5\nACO,4,4\nACO,5,7\nACO,6,9\n"), 0o600))
	cfgPath := filepath.Join(dir, "algocmp.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"summary:\n  responses: [seconds]\ncharts:\n  items: []\n"), 0o600))

	_, err := run(t, "anova", "--config", cfgPath, "--source", "csv", "--input", path)
	require.ErrorIs(t, err, anova.ErrRankDeficient)
}

func TestImportDatasetsExport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	db := filepath.Join(dir, "db")
	csvPath := filepath.Join(dir, "trials.csv")

	_, err := run(t, "export", "--out", csvPath)
	require.NoError(t, err)

	out, err := run(t, "import", csvPath, "--db-dir", db)
	require.NoError(t, err)
	require.Contains(t, out, "imported trials (40 rows)")

	out, err = run(t, "datasets", "--db-dir", db)
	require.NoError(t, err)
	require.Contains(t, out, "trials")

	fromDB, err := run(t, "summary", "--format", "csv", "--source", "db", "--dataset", "trials", "--db-dir", db)
	require.NoError(t, err)
	builtin, err := run(t, "summary", "--format", "csv")
	require.NoError(t, err)
	require.Equal(t, builtin, fromDB)

	exported, err := run(t, "export", "--name", "trials", "--db-dir", db)
	require.NoError(t, err)
	orig, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	require.Equal(t, string(orig), exported)

	_, err = run(t, "datasets", "delete", "trials", "--db-dir", db)
	require.NoError(t, err)
	_, err = run(t, "export", "--name", "trials", "--db-dir", db)
	require.ErrorIs(t, err, store.ErrDatasetNotFound)
}

func TestReportCmd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	reportPath := filepath.Join(dir, "out", "report.md")
	cfgPath := filepath.Join(dir, "algocmp.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("charts:\n  format: svg\n"), 0o600))

	_, err := run(t, "report", "--config", cfgPath, "--out", reportPath, "--charts", filepath.Join(dir, "out", "charts"))
	require.NoError(t, err)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	md := string(data)
	require.Contains(t, md, "# ACO vs GA")
	require.Contains(t, md, "## ANOVA: seconds ~ C(algorithm) * orders")
	require.Contains(t, md, "![fitness_errorbars](charts/fitness_errorbars.svg)")
	_, err = os.Stat(filepath.Join(dir, "out", "charts", "on_time.svg"))
	require.NoError(t, err)
}

func TestPlotCmd(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "charts")
	stdout, err := run(t, "plot", "--out", out)
	require.NoError(t, err)
	require.Equal(t, 4, strings.Count(stdout, ".png"))
}

func TestInitCmd(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg", "algocmp.yaml")
	_, err := run(t, "init", "-o", path)
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.Default().ANOVA, cfg.ANOVA)

	_, err = run(t, "init", "-o", path)
	require.Error(t, err)
	_, err = run(t, "init", "-o", path, "-f")
	require.NoError(t, err)
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	out, err := run(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "algocmp version")
	require.Contains(t, out, "commit:")
	require.NotEmpty(t, getVersion())
}
