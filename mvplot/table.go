// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-gg/table"
	"github.com/algebra-bench/mvplot/bench"
)

// Column names of the plot tables.
const (
	colSize      = "matrix size"
	colTime      = "time ms"
	colIteration = "iteration"
	colMethod    = "method"
	colColor     = "color"
	colFill      = "fill"
	colTooltip   = "tooltip"
	colMean      = "mean time ms"
	colMin       = "min time ms"
	colMax       = "max time ms"
)

// bandAlpha is the opacity of min/max bands.
const bandAlpha = 0x30

// resultsToTable returns a table with one row per result. Each row's
// color is its method's color at the method's line opacity.
func resultsToTable(rs []*bench.Result, colors map[string]color.NRGBA, alphas map[string]uint8) *table.Table {
	sizes := make([]int, len(rs))
	times := make([]float64, len(rs))
	iters := make([]int, len(rs))
	methods := make([]string, len(rs))
	strokes := make([]color.NRGBA, len(rs))
	tips := make([]string, len(rs))
	for i, r := range rs {
		sizes[i] = r.MatrixSize
		times[i] = r.TimeMs
		iters[i] = r.Iteration
		methods[i] = r.Method

		c := colors[r.Method]
		c.A = alphas[r.Method]
		strokes[i] = c

		tips[i] = fmt.Sprintf("%s #%d: %d, %.3f ms", r.Method, r.Iteration, r.MatrixSize, r.TimeMs)
	}

	return new(table.Builder).
		Add(colSize, sizes).
		Add(colTime, times).
		Add(colIteration, iters).
		Add(colMethod, methods).
		Add(colColor, strokes).
		Add(colTooltip, tips).
		Done()
}

// summariesToTable returns a table with one row per summary, with
// opaque line colors and translucent band fills.
func summariesToTable(sums []*bench.Summary, colors map[string]color.NRGBA) *table.Table {
	sizes := make([]int, len(sums))
	means := make([]float64, len(sums))
	mins := make([]float64, len(sums))
	maxs := make([]float64, len(sums))
	methods := make([]string, len(sums))
	strokes := make([]color.NRGBA, len(sums))
	fills := make([]color.NRGBA, len(sums))
	for i, s := range sums {
		sizes[i] = s.MatrixSize
		means[i] = s.Mean
		mins[i] = s.Min
		maxs[i] = s.Max
		methods[i] = s.Method

		c := colors[s.Method]
		strokes[i] = c
		c.A = bandAlpha
		fills[i] = c
	}

	return new(table.Builder).
		Add(colSize, sizes).
		Add(colMean, means).
		Add(colMin, mins).
		Add(colMax, maxs).
		Add(colMethod, methods).
		Add(colColor, strokes).
		Add(colFill, fills).
		Done()
}
