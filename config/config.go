// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/katalvlaran/algocmp/experiment"
)

// AppName names the XDG data directory.
const AppName = "algocmp"

// Chart kinds.
const (
	KindLine      = "line"
	KindErrorBars = "errorbars"
)

// Defaults.
const (
	DefaultAlpha       = 0.05
	DefaultTolerance   = 1e-10
	DefaultChartWidth  = 8.0 // inches
	DefaultChartHeight = 5.0 // inches
	DefaultImageFormat = "png"
)

// Config is the complete analysis configuration.
type Config struct {
	Factor    string  `yaml:"factor"`
	Covariate string  `yaml:"covariate"`
	Summary   Summary `yaml:"summary"`
	ANOVA     ANOVA   `yaml:"anova"`
	Charts    Charts  `yaml:"charts"`
	Report    Report  `yaml:"report"`
	Store     Store   `yaml:"store"`
	Log       Log     `yaml:"log"`
}

// Summary lists the responses described per group.
type Summary struct {
	Responses []string `yaml:"responses"`
}

// ANOVA configures the fitted models: one per response.
type ANOVA struct {
	Responses []string `yaml:"responses"`
	Alpha     float64  `yaml:"alpha"`
	Tolerance float64  `yaml:"tolerance"`
	Reference string   `yaml:"reference"` // empty means the sorted-first level
}

// Charts configures rendering and lists the charts to draw.
type Charts struct {
	Width  float64 `yaml:"width"`  // inches
	Height float64 `yaml:"height"` // inches
	Format string  `yaml:"format"` // png, svg or pdf
	Items  []Chart `yaml:"items"`
}

// Chart is one chart: a mean line per factor level, or mean ± std bars.
type Chart struct {
	Name     string   `yaml:"name"` // output file stem
	Kind     string   `yaml:"kind"`
	Response string   `yaml:"response"`
	Title    string   `yaml:"title"`
	YLabel   string   `yaml:"y_label"`
	YMin     *float64 `yaml:"y_min,omitempty"`
	YMax     *float64 `yaml:"y_max,omitempty"`
}

// Report configures the Markdown report.
type Report struct {
	Title string `yaml:"title"`
}

// Store configures the SQLite dataset store.
type Store struct {
	Dir string `yaml:"dir"` // empty means the XDG data directory
}

// Log configures the zap logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default reproduces the original ACO vs GA analysis: all four responses
// summarized, execution time modelled, three line charts and one error-bar
// chart.
func Default() *Config {
	yMin, yMax := 70.0, 105.0

	return &Config{
		Factor:    experiment.Algorithm,
		Covariate: experiment.Orders,
		Summary:   Summary{Responses: experiment.Responses()},
		ANOVA: ANOVA{
			Responses: []string{experiment.Seconds},
			Alpha:     DefaultAlpha,
			Tolerance: DefaultTolerance,
		},
		Charts: Charts{
			Width:  DefaultChartWidth,
			Height: DefaultChartHeight,
			Format: DefaultImageFormat,
			Items: []Chart{
				{
					Name: "on_time", Kind: KindLine, Response: experiment.OnTimePct,
					Title: "% of orders delivered on time", YLabel: "on time (%)",
					YMin: &yMin, YMax: &yMax,
				},
				{
					Name: "seconds", Kind: KindLine, Response: experiment.Seconds,
					Title: "Execution time by number of orders", YLabel: "time (s)",
				},
				{
					Name: "fitness", Kind: KindLine, Response: experiment.Fitness,
					Title: "Mean fitness", YLabel: "fitness",
				},
				{
					Name: "fitness_errorbars", Kind: KindErrorBars, Response: experiment.Fitness,
					Title: "Mean fitness ± standard deviation", YLabel: "fitness",
				},
			},
		},
		Report: Report{Title: "ACO vs GA"},
		Log:    Log{Level: "info", Format: "json"},
	}
}

// Validate checks the configuration and returns the first violation.
func (c *Config) Validate() error {
	if c.Factor == "" {
		return ErrNoFactor
	}
	if c.Covariate == "" {
		return ErrNoCovariate
	}
	if len(c.Summary.Responses) == 0 {
		return fmt.Errorf("summary: %w", ErrNoResponses)
	}
	if len(c.ANOVA.Responses) == 0 {
		return fmt.Errorf("anova: %w", ErrNoResponses)
	}
	if !(c.ANOVA.Alpha > 0 && c.ANOVA.Alpha < 1) {
		return ErrInvalidAlpha
	}
	if c.ANOVA.Tolerance < 0 || math.IsNaN(c.ANOVA.Tolerance) || math.IsInf(c.ANOVA.Tolerance, 0) {
		return ErrInvalidTolerance
	}

	return c.Charts.validate()
}

func (c *Charts) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return ErrInvalidChartSize
	}
	switch c.Format {
	case "png", "svg", "pdf":
	default:
		return fmt.Errorf("%w %q", ErrUnknownImageFormat, c.Format)
	}

	seen := make(map[string]bool, len(c.Items))
	for i, ch := range c.Items {
		if ch.Name == "" || seen[ch.Name] {
			return fmt.Errorf("chart %d: %w", i, ErrChartName)
		}
		seen[ch.Name] = true
		if ch.Kind != KindLine && ch.Kind != KindErrorBars {
			return fmt.Errorf("chart %q: %w %q", ch.Name, ErrUnknownChartKind, ch.Kind)
		}
		if ch.Response == "" {
			return fmt.Errorf("chart %q: %w", ch.Name, ErrChartResponse)
		}
		if ch.YMin != nil && ch.YMax != nil && *ch.YMin >= *ch.YMax {
			return fmt.Errorf("chart %q: %w", ch.Name, ErrInvalidYRange)
		}
	}

	return nil
}

// StoreDir returns the configured store directory, defaulting to
// $XDG_DATA_HOME/algocmp.
func (c *Config) StoreDir() string {
	if c.Store.Dir != "" {
		return c.Store.Dir
	}

	return filepath.Join(xdg.DataHome, AppName)
}

// FileName returns the output file name for a chart.
func (c *Charts) FileName(ch Chart) string {
	return ch.Name + "." + c.Format
}
