// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench reads matrix-vector multiplication timing results
// and summarizes them.
//
// The input is a CSV file with a header row naming at least the
// columns MatrixSize, TimeMs, Iteration and Method, for example:
//
//	MatrixSize,TimeMs,Iteration,Method
//	100,0.42,0,Unparalleled
//	100,0.17,0,Parallel
//
// Column names are matched ignoring case, spaces, underscores and
// dashes. Other columns are ignored.
package bench

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Result records a single timed run of one multiplication method at
// one matrix size (a single row of a results file).
type Result struct {
	// MatrixSize is the dimension of the (square) matrix.
	MatrixSize int

	// TimeMs is the elapsed time of the multiplication in
	// milliseconds.
	TimeMs float64

	// Iteration is the index of the benchmark repetition that
	// produced this result.
	Iteration int

	// Method labels the implementation that was timed, typically
	// Unparalleled or Parallel.
	Method string
}

// Column names of a results file.
const (
	ColMatrixSize = "MatrixSize"
	ColTimeMs     = "TimeMs"
	ColIteration  = "Iteration"
	ColMethod     = "Method"
)

var requiredCols = []string{ColMatrixSize, ColTimeMs, ColIteration, ColMethod}

var (
	// ErrEmpty is returned for an input with no header row.
	ErrEmpty = errors.New("empty input")

	// ErrMissingColumn is returned when the header lacks a
	// required column.
	ErrMissingColumn = errors.New("missing column")

	// ErrFieldCount is returned for a row too short to hold every
	// required column. Rows may omit trailing columns that are not
	// required.
	ErrFieldCount = errors.New("wrong number of fields")
)

// A ParseError reports a problem at a specific line of a results
// file.
type ParseError struct {
	Line   int    // 1-based line number
	Column string // column name, or "" if the error is not about one field
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: column %s: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// normColumn canonicalizes a header name for lookup.
func normColumn(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}

// Parse parses a results file from r. It returns a *Result for each
// data row, in file order. There are typically many rows for the
// same method and matrix size, one per iteration.
func Parse(r io.Reader) ([]*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	} else if err != nil {
		return nil, err
	}

	// Spreadsheet exports may start with a byte order mark.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	// Map required columns to field indexes.
	index := make(map[string]int)
	for i, name := range header {
		n := normColumn(name)
		if _, ok := index[n]; !ok {
			index[n] = i
		}
	}
	cols := make([]int, len(requiredCols))
	width := 0
	for i, col := range requiredCols {
		idx, ok := index[normColumn(col)]
		if !ok {
			return nil, &ParseError{Line: 1, Column: col, Err: ErrMissingColumn}
		}
		cols[i] = idx
		if idx+1 > width {
			width = idx + 1
		}
	}

	results := []*Result{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		if len(rec) < width {
			return nil, &ParseError{Line: line, Err: ErrFieldCount}
		}
		res, perr := parseResult(rec, cols)
		if perr != nil {
			perr.Line = line
			return nil, perr
		}
		results = append(results, res)
	}

	return results, nil
}

func parseResult(rec []string, cols []int) (*Result, *ParseError) {
	field := func(i int) string {
		return strings.TrimSpace(rec[cols[i]])
	}

	size, err := strconv.Atoi(field(0))
	if err != nil {
		return nil, &ParseError{Column: ColMatrixSize, Err: err}
	}
	if size < 0 {
		return nil, &ParseError{Column: ColMatrixSize, Err: fmt.Errorf("negative size %d", size)}
	}

	ms, err := strconv.ParseFloat(field(1), 64)
	if err != nil {
		return nil, &ParseError{Column: ColTimeMs, Err: err}
	}
	if math.IsNaN(ms) || math.IsInf(ms, 0) || ms < 0 {
		return nil, &ParseError{Column: ColTimeMs, Err: fmt.Errorf("bad time %q", field(1))}
	}

	iter, err := strconv.Atoi(field(2))
	if err != nil {
		return nil, &ParseError{Column: ColIteration, Err: err}
	}

	method := field(3)
	if method == "" {
		return nil, &ParseError{Column: ColMethod, Err: errors.New("empty method")}
	}

	return &Result{MatrixSize: size, TimeMs: ms, Iteration: iter, Method: method}, nil
}

// ParseFile parses the results file at path. If path is "-", it
// reads from standard input.
func ParseFile(path string) ([]*Result, error) {
	if path == "-" {
		return Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}
