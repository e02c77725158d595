// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import "sort"

// Well-known method labels.
const (
	MethodSerial   = "Unparalleled"
	MethodParallel = "Parallel"
)

// methodRank orders the well-known methods before all others.
var methodRank = map[string]int{
	MethodSerial:   -2,
	MethodParallel: -1,
}

// Methods returns the distinct methods in rs. The serial method comes
// first, then the parallel method, then any others in lexical order.
func Methods(rs []*Result) []string {
	set := map[string]bool{}
	var methods []string
	for _, r := range rs {
		if !set[r.Method] {
			set[r.Method] = true
			methods = append(methods, r.Method)
		}
	}
	sort.Sort(methodSorter(methods))
	return methods
}

type methodSorter []string

func (s methodSorter) Len() int {
	return len(s)
}

func (s methodSorter) Less(i, j int) bool {
	if methodRank[s[i]] != methodRank[s[j]] {
		return methodRank[s[i]] < methodRank[s[j]]
	}
	return s[i] < s[j]
}

func (s methodSorter) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Iterations returns the distinct iteration indexes in rs in
// increasing order.
func Iterations(rs []*Result) []int {
	set := map[int]bool{}
	var iters []int
	for _, r := range rs {
		if !set[r.Iteration] {
			set[r.Iteration] = true
			iters = append(iters, r.Iteration)
		}
	}
	sort.Ints(iters)
	return iters
}

// Filter returns the results in rs whose method is one of methods.
// If methods is empty, it returns rs.
func Filter(rs []*Result, methods ...string) []*Result {
	if len(methods) == 0 {
		return rs
	}
	keep := map[string]bool{}
	for _, m := range methods {
		keep[m] = true
	}
	out := []*Result{}
	for _, r := range rs {
		if keep[r.Method] {
			out = append(out, r)
		}
	}
	return out
}
