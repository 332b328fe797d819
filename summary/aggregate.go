// SPDX-License-Identifier: MIT

package summary

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/algocmp/dataset"
)

// Func is a named reduction applied to one group's values.
type Func uint8

const (
	Mean Func = iota + 1
	Std
	Count
	Min
	Max
)

var funcNames = map[Func]string{Mean: "mean", Std: "std", Count: "count", Min: "min", Max: "max"}

func (f Func) String() string {
	if s, ok := funcNames[f]; ok {
		return s
	}

	return fmt.Sprintf("func(%d)", uint8(f))
}

// ParseFunc is the inverse of Func.String.
func ParseFunc(s string) (Func, error) {
	for f, name := range funcNames {
		if name == s {
			return f, nil
		}
	}

	return 0, fmt.Errorf("summary: unknown aggregation %q", s)
}

// Spec names one output column: Name = Func(Column).
type Spec struct {
	Name   string
	Column string
	Func   Func
}

// Aggregation is the result of Aggregate: one row per group, one value per Spec.
type Aggregation struct {
	Keys   Keys
	Specs  []Spec
	Groups []AggregateRow
}

// AggregateRow is one group of an Aggregation.
type AggregateRow struct {
	Level  string
	Value  float64
	Values []float64 // aligned with Aggregation.Specs
}

// Aggregate groups ds by keys and evaluates each spec per group, in the same
// sorted order as Compute. Std follows the Compute rule (NaN for one row).
func Aggregate(ds *dataset.Dataset, keys Keys, specs ...Spec) (*Aggregation, error) {
	buckets, err := partition(ds, keys)
	if err != nil {
		return nil, err
	}

	cols := make([][]float64, len(specs))
	for i, s := range specs {
		if _, ok := funcNames[s.Func]; !ok {
			return nil, fmt.Errorf("summary: spec %q: unknown aggregation %v", s.Name, s.Func)
		}
		if cols[i], err = ds.Numeric(s.Column); err != nil {
			return nil, err
		}
	}

	out := &Aggregation{
		Keys:   keys,
		Specs:  append([]Spec(nil), specs...),
		Groups: make([]AggregateRow, len(buckets)),
	}
	for gi, b := range buckets {
		row := AggregateRow{Level: b.key.level, Value: b.key.value, Values: make([]float64, len(specs))}
		for si, s := range specs {
			row.Values[si] = reduce(s.Func, gather(cols[si], b.rows))
		}
		out.Groups[gi] = row
	}

	return out, nil
}

func reduce(f Func, x []float64) float64 {
	switch f {
	case Mean:
		return describe(x).Mean
	case Std:
		return describe(x).Std
	case Count:
		return float64(len(x))
	case Min:
		return floats.Min(x)
	case Max:
		return floats.Max(x)
	default:
		return math.NaN()
	}
}

// Header returns [factor, covariate, spec names...].
func (a *Aggregation) Header() []string {
	h := []string{a.Keys.Factor, a.Keys.Covariate}
	for _, s := range a.Specs {
		h = append(h, s.Name)
	}

	return h
}

// Records returns one formatted record per group.
func (a *Aggregation) Records() [][]string {
	out := make([][]string, len(a.Groups))
	for i, g := range a.Groups {
		rec := []string{g.Level, formatFloat(g.Value)}
		for si, v := range g.Values {
			if a.Specs[si].Func == Count {
				rec = append(rec, strconv.Itoa(int(v)))
				continue
			}
			rec = append(rec, formatFloat(v))
		}
		out[i] = rec
	}

	return out
}
