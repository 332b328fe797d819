// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/markdown"

	"github.com/katalvlaran/algocmp/anova"
	"github.com/katalvlaran/algocmp/dataset"
)

// DefaultAlpha is the significance level used when a Document leaves Alpha zero.
const DefaultAlpha = 0.05

// ErrNoData is returned by WriteMarkdown when the Document carries no dataset.
var ErrNoData = errors.New("report: document has no dataset")

// Document is everything a Markdown analysis report shows.
type Document struct {
	Title     string
	Source    string    // human description of where Data came from
	Generated time.Time // zero omits the timestamp
	Data      *dataset.Dataset
	Factor    string // categorical column whose levels are listed in the overview
	Summary   Tabular
	Fits      []*anova.Fit
	Alpha     float64
	Charts    []string // image paths, written relative to the report
}

// WriteMarkdown renders doc as GitHub-flavored Markdown.
func WriteMarkdown(w io.Writer, doc Document) error {
	if doc.Data == nil {
		return ErrNoData
	}
	if doc.Alpha == 0 {
		doc.Alpha = DefaultAlpha
	}
	title := doc.Title
	if title == "" {
		title = "Algorithm Comparison"
	}

	md := markdown.NewMarkdown(w)
	md.H1(title)
	md.PlainText("")

	if err := writeOverview(md, doc); err != nil {
		return err
	}
	if doc.Summary != nil {
		if err := writeTabular(md, "Summary", doc.Summary); err != nil {
			return err
		}
	}
	for _, fit := range doc.Fits {
		if err := writeFit(md, fit, doc.Alpha); err != nil {
			return err
		}
	}
	writeCharts(md, doc.Charts)

	md.HorizontalRule()
	md.PlainText("Generated by algocmp.")

	return md.Build()
}

func writeOverview(md *markdown.Markdown, doc Document) error {
	md.H2("Dataset")
	md.PlainText("")

	rows := [][]string{}
	if doc.Source != "" {
		rows = append(rows, []string{"Source", markdown.Code(doc.Source)})
	}
	if !doc.Generated.IsZero() {
		rows = append(rows, []string{"Generated", doc.Generated.Format("2006-01-02 15:04:05 MST")})
	}
	rows = append(rows,
		[]string{"Rows", strconv.Itoa(doc.Data.Len())},
		[]string{"Columns", strings.Join(doc.Data.Schema().Names(), ", ")},
	)
	if doc.Factor != "" {
		levels, err := doc.Data.Levels(doc.Factor)
		if err != nil {
			return err
		}
		rows = append(rows, []string{"Levels of " + doc.Factor, strings.Join(levels, ", ")})
	}
	md.Table(markdown.TableSet{Header: []string{"Property", "Value"}, Rows: rows})
	md.PlainText("")

	return nil
}

func writeTabular(md *markdown.Markdown, heading string, t Tabular) error {
	header, err := checkHeader(t)
	if err != nil {
		return err
	}
	md.H2(heading)
	md.PlainText("")
	md.Table(markdown.TableSet{Header: header, Rows: t.Records()})
	md.PlainText("")

	return nil
}

func writeFit(md *markdown.Markdown, fit *anova.Fit, alpha float64) error {
	if err := writeTabular(md, "ANOVA: "+fit.Model.String(), fit.Table); err != nil {
		return err
	}
	md.PlainText(fmt.Sprintf("Type II sums of squares, n = %d, reference level %s, R² = %s.",
		fit.N, markdown.Code(fit.Reference), FormatFloat(fit.RSquared())))
	md.PlainText("")

	for _, r := range fit.Table.Rows {
		if r.Term == anova.ResidualTerm {
			continue
		}
		if r.PValue < alpha {
			md.Importantf("%s is significant at α = %g (p = %s).", r.Term, alpha, FormatFloat(r.PValue))
		} else {
			md.Notef("%s is not significant at α = %g (p = %s).", r.Term, alpha, FormatFloat(r.PValue))
		}
		md.PlainText("")
	}

	return nil
}

func writeCharts(md *markdown.Markdown, charts []string) {
	if len(charts) == 0 {
		return
	}
	md.H2("Charts")
	md.PlainText("")
	for _, path := range charts {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		md.PlainText(markdown.Image(name, filepath.ToSlash(path)))
		md.PlainText("")
	}
}
