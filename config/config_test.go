// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algocmp/config"
	"github.com/katalvlaran/algocmp/experiment"
)

func TestDefault_ReproducesOriginalAnalysis(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, experiment.Algorithm, cfg.Factor)
	require.Equal(t, experiment.Orders, cfg.Covariate)
	require.Equal(t, experiment.Responses(), cfg.Summary.Responses)
	require.Equal(t, []string{experiment.Seconds}, cfg.ANOVA.Responses)
	require.Len(t, cfg.Charts.Items, 4)

	onTime := cfg.Charts.Items[0]
	require.Equal(t, experiment.OnTimePct, onTime.Response)
	require.NotNil(t, onTime.YMin)
	require.Equal(t, 70.0, *onTime.YMin)
	require.Equal(t, 105.0, *onTime.YMax)
	require.Equal(t, config.KindErrorBars, cfg.Charts.Items[3].Kind)
	require.Equal(t, "fitness_errorbars.png", cfg.Charts.FileName(cfg.Charts.Items[3]))
}

func TestParse_OverlaysDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(`
anova:
  responses: [seconds, fitness]
  alpha: 0.01
charts:
  format: svg
  items:
    - name: time
      kind: line
      response: seconds
`))
	require.NoError(t, err)

	want := config.Default()
	want.ANOVA.Responses = []string{"seconds", "fitness"}
	want.ANOVA.Alpha = 0.01
	want.Charts.Format = "svg"
	want.Charts.Items = []config.Chart{{Name: "time", Kind: "line", Response: "seconds"}}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_EmptyIsDefault(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(config.Default(), cfg))
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := config.Parse([]byte("factr: algorithm\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	one, two := 1.0, 2.0
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"no factor", func(c *config.Config) { c.Factor = "" }, config.ErrNoFactor},
		{"no covariate", func(c *config.Config) { c.Covariate = "" }, config.ErrNoCovariate},
		{"no summary responses", func(c *config.Config) { c.Summary.Responses = nil }, config.ErrNoResponses},
		{"no anova responses", func(c *config.Config) { c.ANOVA.Responses = nil }, config.ErrNoResponses},
		{"alpha zero", func(c *config.Config) { c.ANOVA.Alpha = 0 }, config.ErrInvalidAlpha},
		{"alpha one", func(c *config.Config) { c.ANOVA.Alpha = 1 }, config.ErrInvalidAlpha},
		{"negative tolerance", func(c *config.Config) { c.ANOVA.Tolerance = -1 }, config.ErrInvalidTolerance},
		{"zero width", func(c *config.Config) { c.Charts.Width = 0 }, config.ErrInvalidChartSize},
		{"gif", func(c *config.Config) { c.Charts.Format = "gif" }, config.ErrUnknownImageFormat},
		{"bar kind", func(c *config.Config) { c.Charts.Items[0].Kind = "bar" }, config.ErrUnknownChartKind},
		{"duplicate name", func(c *config.Config) { c.Charts.Items[1].Name = c.Charts.Items[0].Name }, config.ErrChartName},
		{"empty name", func(c *config.Config) { c.Charts.Items[2].Name = "" }, config.ErrChartName},
		{"no response", func(c *config.Config) { c.Charts.Items[0].Response = "" }, config.ErrChartResponse},
		{"inverted y", func(c *config.Config) {
			c.Charts.Items[1].YMin, c.Charts.Items[1].YMax = &two, &one
		}, config.ErrInvalidYRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := config.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, config.ErrConfigNotFound)

	path := filepath.Join(dir, "algocmp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  dir: /tmp/x\n"), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/x", cfg.StoreDir())

	require.NoError(t, os.WriteFile(path, []byte("anova:\n  alpha: 2\n"), 0o600))
	_, err = config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalidAlpha)
}

func TestFind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	require.Equal(t, path, config.Find(path))
	require.Empty(t, config.Find(filepath.Join(dir, "nope.yaml")))
}

func TestWrite_RoundTrips(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, config.Write(&buf, config.Default()))

	cfg, err := config.Parse(buf.Bytes())
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(config.Default(), cfg))
}

func TestStoreDir_DefaultsToXDG(t *testing.T) {
	t.Parallel()

	dir := config.Default().StoreDir()
	require.Equal(t, config.AppName, filepath.Base(dir))
}
