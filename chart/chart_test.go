// SPDX-License-Identifier: MIT

package chart_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/algocmp/chart"
	"github.com/katalvlaran/algocmp/config"
	"github.com/katalvlaran/algocmp/dataset"
	"github.com/katalvlaran/algocmp/experiment"
	"github.com/katalvlaran/algocmp/summary"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var keys = summary.Keys{Factor: experiment.Algorithm, Covariate: experiment.Orders}

func TestLine(t *testing.T) {
	lo, hi := 70.0, 105.0
	p, err := chart.Line(experiment.Builtin(), chart.LineSpec{
		Keys:     keys,
		Response: experiment.OnTimePct,
		Title:    "on time",
		YMin:     &lo,
		YMax:     &hi,
	})
	require.NoError(t, err)
	require.Equal(t, "on time", p.Title.Text)
	require.Equal(t, experiment.Orders, p.X.Label.Text)
	require.Equal(t, experiment.OnTimePct, p.Y.Label.Text)
	require.Equal(t, lo, p.Y.Min)
	require.Equal(t, hi, p.Y.Max)
	require.Equal(t, 50.0, p.X.Min)
	require.Equal(t, 200.0, p.X.Max)

	path := filepath.Join(t.TempDir(), "on_time.svg")
	require.NoError(t, chart.Save(p, path, 4*vg.Inch, 3*vg.Inch))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestLine_Errors(t *testing.T) {
	ds := experiment.Builtin()

	_, err := chart.Line(ds, chart.LineSpec{Keys: keys, Response: "nope"})
	require.ErrorIs(t, err, dataset.ErrColumnNotFound)

	lo, hi := 5.0, 1.0
	_, err = chart.Line(ds, chart.LineSpec{Keys: keys, Response: experiment.Seconds, YMin: &lo, YMax: &hi})
	require.ErrorIs(t, err, chart.ErrYRange)
}

func TestErrorBars_SingletonGroups(t *testing.T) {
	ds, err := dataset.NewBuilder().
		Categorical("g", []string{"A", "A", "A", "B"}).
		Numeric("x", []float64{1, 1, 2, 1}).
		Numeric("y", []float64{2, 4, 5, 7}).
		Build()
	require.NoError(t, err)
	tbl, err := summary.Compute(ds, summary.Keys{Factor: "g", Covariate: "x"}, "y")
	require.NoError(t, err)

	p, err := chart.ErrorBars(tbl, chart.ErrorBarSpec{Response: "y", Title: "mean ± std"})
	require.NoError(t, err)
	require.NoError(t, chart.Save(p, filepath.Join(t.TempDir(), "bars.png"), 4*vg.Inch, 3*vg.Inch))
}

func TestSave_UnknownFormat(t *testing.T) {
	p, err := chart.Line(experiment.Builtin(), chart.LineSpec{Keys: keys, Response: experiment.Seconds})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "chart.gif")
	require.ErrorIs(t, chart.Save(p, path, vg.Inch, vg.Inch), chart.ErrUnknownFormat)
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestRenderAll_DefaultCharts(t *testing.T) {
	cfg := config.Default()
	cfg.Charts.Format = "svg"
	out := filepath.Join(t.TempDir(), "charts")

	paths, err := chart.RenderAll(context.Background(), experiment.Builtin(), cfg, out, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(out, "on_time.svg"),
		filepath.Join(out, "seconds.svg"),
		filepath.Join(out, "fitness.svg"),
		filepath.Join(out, "fitness_errorbars.svg"),
	}, paths)
	for _, p := range paths {
		_, err = os.Stat(p)
		require.NoError(t, err)
	}
}

func TestRenderAll_FailsOnBadResponse(t *testing.T) {
	cfg := config.Default()
	cfg.Charts.Items[2].Response = "missing"

	paths, err := chart.RenderAll(context.Background(), experiment.Builtin(), cfg, t.TempDir(), nil)
	require.ErrorIs(t, err, dataset.ErrColumnNotFound)
	require.Contains(t, err.Error(), `chart "fitness"`)
	require.Nil(t, paths)
}

func TestRenderAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := chart.RenderAll(ctx, experiment.Builtin(), config.Default(), t.TempDir(), nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestConfidenceBand(t *testing.T) {
	ds, err := dataset.NewBuilder().
		Categorical("g", []string{"A", "A", "A", "B"}).
		Numeric("x", []float64{1, 1, 2, 1}).
		Numeric("y", []float64{2, 4, 5, 7}).
		Build()
	require.NoError(t, err)
	tbl, err := summary.Compute(ds, summary.Keys{Factor: "g", Covariate: "x"}, "y")
	require.NoError(t, err)

	xs, lower, upper, err := chart.ConfidenceBand(tbl, "A", "y", 0.95)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, xs)
	// n=2, mean 3, s=√2: half-width is t(0.975, 1) = 12.7062047.
	require.InDelta(t, 3-12.7062047, lower[0], 1e-6)
	require.InDelta(t, 3+12.7062047, upper[0], 1e-6)
	// single row: no interval
	require.Equal(t, 5.0, lower[1])
	require.Equal(t, 5.0, upper[1])

	_, _, _, err = chart.ConfidenceBand(tbl, "A", "y", 1)
	require.ErrorIs(t, err, chart.ErrConfidence)
	_, _, _, err = chart.ConfidenceBand(tbl, "A", "nope", 0.95)
	require.ErrorIs(t, err, dataset.ErrColumnNotFound)
}

func TestLine_ConfidenceBand(t *testing.T) {
	ds := experiment.Builtin()
	tbl, err := summary.Compute(ds, keys, experiment.Seconds)
	require.NoError(t, err)
	xs, lower, upper, err := chart.ConfidenceBand(tbl, "GA", experiment.Seconds, chart.DefaultConfidence)
	require.NoError(t, err)
	require.Len(t, xs, 4)
	for j := range xs {
		require.Less(t, lower[j], upper[j], "orders=%g", xs[j])
	}

	p, err := chart.Line(ds, chart.LineSpec{
		Keys:       keys,
		Response:   experiment.Seconds,
		Confidence: chart.DefaultConfidence,
	})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "seconds.png")
	require.NoError(t, chart.Save(p, path, 4*vg.Inch, 3*vg.Inch))

	_, err = chart.Line(ds, chart.LineSpec{Keys: keys, Response: experiment.Seconds, Confidence: 1.5})
	require.ErrorIs(t, err, chart.ErrConfidence)
}
