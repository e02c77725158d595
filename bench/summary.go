// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Summary is the distribution of TimeMs across all iterations of
// one method at one matrix size.
type Summary struct {
	Method     string
	MatrixSize int

	N                int
	Mean, Median     float64
	Min, Max, StdDev float64
	Values           []float64 // sorted
}

// A SummaryKey identifies the results that make up a Summary.
type SummaryKey struct {
	Method     string
	MatrixSize int
}

// Summarize groups rs by method and matrix size and computes the
// statistics of each group. The result is ordered by method (as by
// Methods) and then by increasing matrix size.
func Summarize(rs []*Result) []*Summary {
	groups := map[SummaryKey]*Summary{}
	var sums []*Summary
	for _, r := range rs {
		key := SummaryKey{r.Method, r.MatrixSize}
		s, ok := groups[key]
		if !ok {
			s = &Summary{Method: r.Method, MatrixSize: r.MatrixSize}
			groups[key] = s
			sums = append(sums, s)
		}
		s.Values = append(s.Values, r.TimeMs)
	}

	for _, s := range sums {
		s.computeStats()
	}

	rank := map[string]int{}
	for i, m := range Methods(rs) {
		rank[m] = i
	}
	sort.Slice(sums, func(i, j int) bool {
		if sums[i].Method != sums[j].Method {
			return rank[sums[i].Method] < rank[sums[j].Method]
		}
		return sums[i].MatrixSize < sums[j].MatrixSize
	})
	return sums
}

// computeStats updates the derived statistics in s from s.Values.
func (s *Summary) computeStats() {
	sort.Float64s(s.Values)
	sample := stats.Sample{Xs: s.Values, Sorted: true}
	s.N = len(s.Values)
	s.Mean = sample.Mean()
	s.Min, s.Max = sample.Bounds()
	s.Median = sample.Quantile(0.5)
	if s.N > 1 {
		s.StdDev = sample.StdDev()
	}
}

// A Speedup compares the serial and parallel methods at one matrix
// size.
type Speedup struct {
	MatrixSize int

	// Serial and Parallel are the mean times of each method.
	Serial, Parallel float64

	// Ratio is Serial / Parallel. Values above 1 mean the
	// parallel method is faster.
	Ratio float64
}

// Speedups computes a Speedup for every matrix size that has both a
// serial and a parallel Summary in sums, in increasing size order.
func Speedups(sums []*Summary) []*Speedup {
	serial := map[int]*Summary{}
	parallel := map[int]*Summary{}
	for _, s := range sums {
		switch s.Method {
		case MethodSerial:
			serial[s.MatrixSize] = s
		case MethodParallel:
			parallel[s.MatrixSize] = s
		}
	}

	var out []*Speedup
	for size, ss := range serial {
		ps, ok := parallel[size]
		if !ok {
			continue
		}
		out = append(out, &Speedup{
			MatrixSize: size,
			Serial:     ss.Mean,
			Parallel:   ps.Mean,
			Ratio:      ss.Mean / ps.Mean,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].MatrixSize < out[j].MatrixSize
	})
	return out
}

// GeoMeanSpeedup returns the geometric mean of the ratios in sps, or
// 0 if sps is empty.
func GeoMeanSpeedup(sps []*Speedup) float64 {
	if len(sps) == 0 {
		return 0
	}
	ratios := make([]float64, len(sps))
	for i, sp := range sps {
		ratios[i] = sp.Ratio
	}
	return stats.GeoMean(ratios)
}
