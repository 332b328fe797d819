// SPDX-License-Identifier: MIT

package summary_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/algocmp/experiment"
	"github.com/katalvlaran/algocmp/summary"
)

// ExampleCompute summarizes execution time per (algorithm, orders) cell.
func ExampleCompute() {
	keys := summary.Keys{Factor: experiment.Algorithm, Covariate: experiment.Orders}
	tbl, err := summary.Compute(experiment.Builtin(), keys, experiment.Seconds)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(strings.Join(tbl.Header(), " "))
	for _, rec := range tbl.Records() {
		fmt.Println(strings.Join(rec, " "))
	}
	// Output:
	// algorithm orders count seconds_mean seconds_std
	// ACO 50 5 42.9544 0.753601
	// ACO 100 5 90.9996 0.67777
	// ACO 150 5 122.914 7.12522
	// ACO 200 5 162.033 8.29739
	// GA 50 5 66.4 11.6533
	// GA 100 5 180.2 14.2373
	// GA 150 5 222.2 13.0269
	// GA 200 5 508 69.1845
}
