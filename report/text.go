// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// WriteText writes t as an aligned console table, preceded by title when
// title is non-empty.
func WriteText(w io.Writer, title string, t Tabular) error {
	header, err := checkHeader(t)
	if err != nil {
		return err
	}
	if title != "" {
		if _, err = fmt.Fprintln(w, title); err != nil {
			return err
		}
	}

	table := tablewriter.NewWriter(w)
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}
	table.Header(cells...)
	if err = table.Bulk(t.Records()); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return table.Render()
}
