// SPDX-License-Identifier: MIT

package chart

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/algocmp/config"
	"github.com/katalvlaran/algocmp/dataset"
	"github.com/katalvlaran/algocmp/summary"
)

// RenderAll draws every chart in cfg.Charts into outDir and returns the
// written paths in configuration order. The first failure cancels the
// remaining charts.
func RenderAll(ctx context.Context, ds *dataset.Dataset, cfg *config.Config, outDir string, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return nil, fmt.Errorf("chart: create %s: %w", outDir, err)
	}
	keys := summary.Keys{Factor: cfg.Factor, Covariate: cfg.Covariate}
	w := vg.Length(cfg.Charts.Width) * vg.Inch
	h := vg.Length(cfg.Charts.Height) * vg.Inch

	paths := make([]string, len(cfg.Charts.Items))
	g, ctx := errgroup.WithContext(ctx)
	for i, ch := range cfg.Charts.Items {
		path := filepath.Join(outDir, cfg.Charts.FileName(ch))
		paths[i] = path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := build(ds, keys, ch)
			if err != nil {
				return fmt.Errorf("chart %q: %w", ch.Name, err)
			}
			if err = Save(p, path, w, h); err != nil {
				return fmt.Errorf("chart %q: %w", ch.Name, err)
			}
			logger.Debug("chart written", zap.String("chart", ch.Name), zap.String("path", path))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Info("charts rendered", zap.Int("count", len(paths)), zap.String("dir", outDir))

	return paths, nil
}

func build(ds *dataset.Dataset, keys summary.Keys, ch config.Chart) (*plot.Plot, error) {
	switch ch.Kind {
	case config.KindLine:
		return Line(ds, LineSpec{
			Keys:       keys,
			Response:   ch.Response,
			Title:      ch.Title,
			YLabel:     ch.YLabel,
			YMin:       ch.YMin,
			YMax:       ch.YMax,
			Confidence: DefaultConfidence,
		})
	case config.KindErrorBars:
		tbl, err := summary.Compute(ds, keys, ch.Response)
		if err != nil {
			return nil, err
		}

		return ErrorBars(tbl, ErrorBarSpec{
			Response: ch.Response,
			Title:    ch.Title,
			YLabel:   ch.YLabel,
			YMin:     ch.YMin,
			YMax:     ch.YMax,
		})
	default:
		return nil, fmt.Errorf("%w %q", config.ErrUnknownChartKind, ch.Kind)
	}
}
