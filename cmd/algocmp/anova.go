// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/algocmp/anova"
	"github.com/katalvlaran/algocmp/dataset"
	"github.com/katalvlaran/algocmp/report"
)

// NewANOVACmd creates the anova command.
func NewANOVACmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anova",
		Short: "Fit response ~ C(factor) * covariate and print the type II ANOVA table",
		Long: `ANOVA fits an ordinary least squares model with a categorical factor, a
numeric covariate and their interaction, using dummy coding against the
reference level (the sorted-first level unless configured), and prints the
type II ANOVA table with F statistics and p-values.

Examples:
  algocmp anova
  algocmp anova --response fitness --coefficients
  algocmp anova --source csv --input trials.csv --factor solver --covariate size`,
		Args: cobra.NoArgs,
		RunE: runANOVACmd,
	}
	f := cmd.Flags()
	f.StringSliceP("response", "r", nil, "responses to model, one fit each (default from config)")
	f.String("factor", "", "categorical factor column (default from config)")
	f.String("covariate", "", "numeric covariate column (default from config)")
	f.String("reference", "", "reference level of the factor (default from config)")
	f.StringP("format", "f", formatText, "output format: text or csv")
	f.Bool("coefficients", false, "also print the fitted coefficients")

	return cmd
}

func runANOVACmd(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	f := cmd.Flags()
	for name, dst := range map[string]*string{
		"factor":    &s.cfg.Factor,
		"covariate": &s.cfg.Covariate,
		"reference": &s.cfg.ANOVA.Reference,
	} {
		v, err := f.GetString(name)
		if err != nil {
			return err
		}
		if v != "" {
			*dst = v
		}
	}
	responses, err := f.GetStringSlice("response")
	if err != nil {
		return err
	}
	if len(responses) > 0 {
		s.cfg.ANOVA.Responses = responses
	}
	format, err := f.GetString("format")
	if err != nil {
		return err
	}
	if format != formatText && format != formatCSV {
		return fmt.Errorf("%w %q", errFormat, format)
	}
	withCoef, err := f.GetBool("coefficients")
	if err != nil {
		return err
	}

	ds, _, err := s.load(cmd.Context())
	if err != nil {
		return err
	}
	fits, err := s.fitAll(ds)
	if err != nil {
		return err
	}

	for i, fit := range fits {
		if i > 0 && format == formatText {
			fmt.Fprintln(s.out)
		}
		if err = writeTabular(s.out, format, fit.Model.String(), fit.Table, ds); err != nil {
			return err
		}
		if format == formatText {
			if sig := fit.Table.Significant(s.cfg.ANOVA.Alpha); len(sig) > 0 {
				fmt.Fprintf(s.out, "significant at α = %g: %s\n", s.cfg.ANOVA.Alpha, strings.Join(sig, ", "))
			}
		}
		if withCoef {
			if err = writeTabular(s.out, format, "Coefficients", coefficients{fit}, ds); err != nil {
				return err
			}
		}
	}

	return nil
}

// fitAll fits one model per configured ANOVA response.
func (s *session) fitAll(ds *dataset.Dataset) ([]*anova.Fit, error) {
	opts := []anova.Option{anova.WithTolerance(s.cfg.ANOVA.Tolerance)}
	if s.cfg.ANOVA.Reference != "" {
		opts = append(opts, anova.WithReference(s.cfg.ANOVA.Reference))
	}

	fits := make([]*anova.Fit, 0, len(s.cfg.ANOVA.Responses))
	for _, resp := range s.cfg.ANOVA.Responses {
		m := anova.Model{Response: resp, Factor: s.cfg.Factor, Covariate: s.cfg.Covariate}
		fit, err := anova.FitModel(ds, m, opts...)
		if err != nil {
			return nil, fmt.Errorf("anova %s: %w", m, err)
		}
		s.logger.Debug("model fitted",
			zap.String("model", m.String()),
			zap.Int("n", fit.N),
			zap.Float64("rss", fit.RSS),
		)
		fits = append(fits, fit)
	}

	return fits, nil
}

// coefficients lists a fit's design columns and estimates.
type coefficients struct {
	fit *anova.Fit
}

func (c coefficients) Header() []string { return []string{"column", "estimate"} }

func (c coefficients) Records() [][]string {
	out := make([][]string, len(c.fit.Columns))
	for i, name := range c.fit.Columns {
		out[i] = []string{name, report.FormatFloat(c.fit.Coefficients[i])}
	}

	return out
}
