// SPDX-License-Identifier: MIT

// Package experiment carries the ACO-vs-GA trial results and converts them
// into a typed dataset.Dataset.
//
// Each trial runs one algorithm against a fixed number of requested orders
// and records how many were delivered, the share delivered on time, the wall
// time in seconds, and the final fitness score. Five trials were run per
// (algorithm, orders) cell for orders ∈ {50, 100, 150, 200}.
package experiment

import "github.com/katalvlaran/algocmp/dataset"

// Column names of the trial dataset.
const (
	Algorithm = "algorithm"   // categorical: "ACO" | "GA"
	Orders    = "orders"      // numeric: requested order count
	Delivered = "delivered"   // numeric: delivered order count
	OnTimePct = "on_time_pct" // numeric: % delivered on time
	Seconds   = "seconds"     // numeric: execution time
	Fitness   = "fitness"     // numeric: final fitness
)

// Observation is one trial record. Values are never modified after recording.
type Observation struct {
	Algorithm string
	Orders    float64
	Delivered float64
	OnTimePct float64
	Seconds   float64
	Fitness   float64
}

// Columns returns the trial schema in canonical order.
func Columns() []dataset.Column {
	return []dataset.Column{
		{Name: Algorithm, Kind: dataset.Categorical},
		{Name: Orders, Kind: dataset.Numeric},
		{Name: Delivered, Kind: dataset.Numeric},
		{Name: OnTimePct, Kind: dataset.Numeric},
		{Name: Seconds, Kind: dataset.Numeric},
		{Name: Fitness, Kind: dataset.Numeric},
	}
}

// Responses lists the measured response columns.
func Responses() []string {
	return []string{Delivered, OnTimePct, Seconds, Fitness}
}

// Dataset converts obs into a Dataset with the canonical trial schema.
func Dataset(obs []Observation) (*dataset.Dataset, error) {
	n := len(obs)
	alg := make([]string, n)
	ord := make([]float64, n)
	del := make([]float64, n)
	pct := make([]float64, n)
	sec := make([]float64, n)
	fit := make([]float64, n)
	for i, o := range obs {
		alg[i], ord[i], del[i] = o.Algorithm, o.Orders, o.Delivered
		pct[i], sec[i], fit[i] = o.OnTimePct, o.Seconds, o.Fitness
	}

	return dataset.NewBuilder().
		Categorical(Algorithm, alg).
		Numeric(Orders, ord).
		Numeric(Delivered, del).
		Numeric(OnTimePct, pct).
		Numeric(Seconds, sec).
		Numeric(Fitness, fit).
		Build()
}

// Builtin returns the recorded trials as a Dataset.
func Builtin() *dataset.Dataset {
	ds, err := Dataset(Trials())
	if err != nil {
		// Trials is static and valid; a failure here is a programming error.
		panic(err)
	}

	return ds
}
