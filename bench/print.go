// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// Print writes sums and sps to standard output. See Fprint.
func Print(sums []*Summary, sps []*Speedup) error {
	return Fprint(os.Stdout, sums, sps)
}

// Fprint writes a table of sums to w, followed by a table of sps if
// sps is non-empty. Numeric columns are right-aligned.
func Fprint(w io.Writer, sums []*Summary, sps []*Speedup) error {
	lines := [][]string{{"method", "size", "n", "mean ms", "median ms", "min ms", "max ms", "stddev"}}
	for _, s := range sums {
		lines = append(lines, []string{
			s.Method,
			strconv.Itoa(s.MatrixSize),
			strconv.Itoa(s.N),
			fmtMs(s.Mean),
			fmtMs(s.Median),
			fmtMs(s.Min),
			fmtMs(s.Max),
			fmtPct(s.StdDev, s.Mean),
		})
	}
	if err := printLines(w, lines); err != nil {
		return err
	}

	if len(sps) == 0 {
		return nil
	}
	if _, err := fmt.Fprint(w, "\n"); err != nil {
		return err
	}
	lines = [][]string{{"size", MethodSerial + " ms", MethodParallel + " ms", "speedup"}}
	for _, sp := range sps {
		lines = append(lines, []string{
			strconv.Itoa(sp.MatrixSize),
			fmtMs(sp.Serial),
			fmtMs(sp.Parallel),
			fmtRatio(sp.Ratio),
		})
	}
	lines = append(lines, []string{"geomean", "", "", fmtRatio(GeoMeanSpeedup(sps))})
	return printLines(w, lines)
}

func fmtMs(x float64) string {
	return strconv.FormatFloat(x, 'f', 3, 64)
}

func fmtRatio(x float64) string {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return "-"
	}
	return fmt.Sprintf("%.2fx", x)
}

// fmtPct formats dev as a percentage of mean, like benchstat's "±".
func fmtPct(dev, mean float64) string {
	if mean == 0 {
		return "-"
	}
	return fmt.Sprintf("±%.0f%%", 100*dev/mean)
}

// printLines prints a table of cells. The first column is
// left-aligned and all others are right-aligned.
func printLines(w io.Writer, lines [][]string) error {
	// Compute column widths.
	widths := make([]int, 0)
	for _, line := range lines {
		for i, elt := range line {
			n := len([]rune(elt))
			if i >= len(widths) {
				widths = append(widths, n)
			} else if n > widths[i] {
				widths[i] = n
			}
		}
	}

	// Print lines.
	for _, line := range lines {
		for i, elt := range line {
			var err error
			p := widths[i]
			if i == 0 {
				// Left align and pad.
				_, err = fmt.Fprintf(w, "%-*s", p, elt)
			} else {
				// Right align.
				_, err = fmt.Fprintf(w, "  %*s", p, elt)
			}
			if err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
