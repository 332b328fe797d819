// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"math"
	"strconv"
)

// ErrNoHeader is returned when a Tabular value has an empty header.
var ErrNoHeader = errors.New("report: table has no header")

// Tabular is a rectangular result: one header and zero or more records of
// the same width.
type Tabular interface {
	Header() []string
	Records() [][]string
}

// FormatFloat renders v with six significant digits; NaN prints as "NaN".
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}

	return strconv.FormatFloat(v, 'g', 6, 64)
}

func checkHeader(t Tabular) ([]string, error) {
	h := t.Header()
	if len(h) == 0 {
		return nil, ErrNoHeader
	}

	return h, nil
}
