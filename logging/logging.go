// SPDX-License-Identifier: MIT

// Package logging builds the zap logger shared by the CLI, the store and the
// chart renderer. The statistical packages never log.
package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

var (
	// ErrUnknownFormat is returned for a format other than json or console.
	ErrUnknownFormat = errors.New("logging: unknown format")

	// ErrUnknownLevel is returned when the level string does not parse.
	ErrUnknownLevel = errors.New("logging: unknown level")
)

// Options selects level and encoding. Empty fields mean info and json.
type Options struct {
	Level   string
	Format  string
	Verbose bool     // forces debug regardless of Level
	Outputs []string // zap sink URLs; default stderr
}

// New builds a logger from the production config, switching to the
// development encoder for the console format.
func New(opts Options) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(opts.Format) {
	case "", FormatJSON:
		cfg = zap.NewProductionConfig()
	case FormatConsole:
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, opts.Format)
	}

	level := zapcore.InfoLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("%w %q", ErrUnknownLevel, opts.Level)
		}
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	if len(opts.Outputs) > 0 {
		cfg.OutputPaths = opts.Outputs
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}
