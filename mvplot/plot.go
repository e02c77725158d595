// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/algebra-bench/mvplot/bench"
)

// plotOptions selects the optional layers of a chart.
type plotOptions struct {
	// Mean draws an opaque mean curve for each method.
	Mean bool

	// Band shades the range between the fastest and slowest
	// iteration of each method.
	Band bool
}

var errNoResults = errors.New("no results to plot")

// plot builds a chart of rs with one line per iteration and method.
// Each method is labeled once: at its mean curve if opts.Mean is set,
// otherwise at the line of its first iteration.
func plot(rs []*bench.Result, style *Style, opts plotOptions) (*gg.Plot, error) {
	if len(rs) == 0 {
		return nil, errNoResults
	}

	colors, alphas := style.methodColors(bench.Methods(rs))
	p := gg.NewPlot(resultsToTable(rs, colors, alphas))

	// Always show Y=0.
	p.SetScale("y", gg.NewLinearScaler().Include(0))

	// One path per run of each method.
	p.GroupBy(colIteration, colMethod)
	p.Add(gg.LayerLines{
		X:     colSize,
		Y:     colTime,
		Color: colColor,
	})

	// Per-method layers come from the summaries.
	sums := summariesToTable(bench.Summarize(rs), colors)
	p.Save()
	p.SetData(table.GroupBy(sums, colMethod))
	if opts.Band {
		p.Add(gg.LayerArea{
			X:     colSize,
			Upper: colMax,
			Lower: colMin,
			Fill:  colFill,
		})
	}
	if opts.Mean {
		p.Add(gg.LayerLines{
			X:     colSize,
			Y:     colMean,
			Color: colColor,
		})
	}
	if opts.Mean {
		p.Add(gg.LayerTags{X: colSize, Y: colMean, Label: colMethod})
	} else {
		first := resultsToTable(firstRuns(rs), colors, alphas)
		p.SetData(table.GroupBy(first, colMethod))
		p.Add(gg.LayerTags{X: colSize, Y: colTime, Label: colMethod})
	}
	p.Restore()

	// Interactive tooltip with the run and its time.
	p.Add(gg.LayerTooltips{X: colSize, Y: colTime, Label: colTooltip})

	p.Add(gg.Title(style.Title),
		gg.AxisLabel("x", style.XLabel),
		gg.AxisLabel("y", style.YLabel))
	return p, nil
}

// firstRuns returns the results of the lowest iteration of each
// method in rs.
func firstRuns(rs []*bench.Result) []*bench.Result {
	first := make(map[string]int)
	for _, r := range rs {
		if it, ok := first[r.Method]; !ok || r.Iteration < it {
			first[r.Method] = r.Iteration
		}
	}
	var out []*bench.Result
	for _, r := range rs {
		if r.Iteration == first[r.Method] {
			out = append(out, r)
		}
	}
	return out
}

// writeSVG renders a chart of rs to w.
func writeSVG(w io.Writer, rs []*bench.Result, style *Style, opts plotOptions) error {
	p, err := plot(rs, style, opts)
	if err != nil {
		return err
	}
	return p.WriteSVG(w, style.Width, style.Height)
}

// renderSVG renders a chart of rs and returns the SVG document.
func renderSVG(rs []*bench.Result, style *Style, opts plotOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeSVG(&buf, rs, style, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
