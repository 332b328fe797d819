// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"io"
)

// WriteCSV writes the header and records of t as RFC 4180 CSV.
func WriteCSV(w io.Writer, t Tabular) error {
	header, err := checkHeader(t)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err = cw.Write(header); err != nil {
		return err
	}
	if err = cw.WriteAll(t.Records()); err != nil {
		return err
	}

	return cw.Error()
}
