// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/algocmp/config"
	"github.com/katalvlaran/algocmp/dataset"
	"github.com/katalvlaran/algocmp/experiment"
	"github.com/katalvlaran/algocmp/logging"
	"github.com/katalvlaran/algocmp/store"
	"github.com/katalvlaran/algocmp/summary"
)

var (
	errNoInput   = errors.New("--source csv requires --input")
	errNoDataset = errors.New("--source db requires --dataset")
	errSource    = errors.New("unknown --source")
)

// session is the per-invocation state shared by every subcommand.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	out    io.Writer

	source  string
	input   string
	dataset string
	dbDir   string
}

// newSession reads the global flags, loads the configuration and builds
// the logger.
func newSession(cmd *cobra.Command) (*session, error) {
	flags := cmd.Flags()
	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return nil, err
	}
	s := &session{out: cmd.OutOrStdout()}
	for name, dst := range map[string]*string{
		"source":  &s.source,
		"input":   &s.input,
		"dataset": &s.dataset,
		"db-dir":  &s.dbDir,
	} {
		if *dst, err = flags.GetString(name); err != nil {
			return nil, err
		}
	}

	cfg := config.Default()
	if path := config.Find(configPath); path != "" {
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	} else if configPath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, configPath)
	}
	s.cfg = cfg

	s.logger, err = logging.New(logging.Options{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Verbose: verbose,
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

func (s *session) keys() summary.Keys {
	return summary.Keys{Factor: s.cfg.Factor, Covariate: s.cfg.Covariate}
}

func (s *session) openStore() (*store.Store, error) {
	dir := s.dbDir
	if dir == "" {
		dir = s.cfg.StoreDir()
	}

	return store.Open(dir, store.DefaultOptions(), s.logger)
}

// load returns the dataset selected by --source and a short description of
// where it came from.
func (s *session) load(ctx context.Context) (*dataset.Dataset, string, error) {
	switch s.source {
	case sourceBuiltin, "":
		return experiment.Builtin(), "built-in trials", nil
	case sourceCSV:
		if s.input == "" {
			return nil, "", errNoInput
		}
		ds, err := s.readCSV(s.input)
		if err != nil {
			return nil, "", err
		}

		return ds, s.input, nil
	case sourceDB:
		if s.dataset == "" {
			return nil, "", errNoDataset
		}
		st, err := s.openStore()
		if err != nil {
			return nil, "", err
		}
		defer st.Close()
		ds, err := st.Load(ctx, s.dataset)
		if err != nil {
			return nil, "", err
		}

		return ds, "store:" + s.dataset, nil
	default:
		return nil, "", fmt.Errorf("%w %q", errSource, s.source)
	}
}

// readCSV reads the columns the configuration refers to from path.
func (s *session) readCSV(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided input path is intentional
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds, err := dataset.ReadCSV(f, s.columns()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.logger.Debug("csv loaded", zap.String("path", path), zap.Int("rows", ds.Len()))

	return ds, nil
}

// columns declares the factor as categorical and the covariate plus every
// configured response as numeric, without duplicates.
func (s *session) columns() []dataset.Column {
	cols := []dataset.Column{
		{Name: s.cfg.Factor, Kind: dataset.Categorical},
		{Name: s.cfg.Covariate, Kind: dataset.Numeric},
	}
	seen := map[string]bool{s.cfg.Factor: true, s.cfg.Covariate: true}
	add := func(names []string) {
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				cols = append(cols, dataset.Column{Name: n, Kind: dataset.Numeric})
			}
		}
	}
	add(s.cfg.Summary.Responses)
	add(s.cfg.ANOVA.Responses)
	for _, ch := range s.cfg.Charts.Items {
		add([]string{ch.Response})
	}

	return cols
}
