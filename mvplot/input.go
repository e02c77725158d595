// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/algebra-bench/mvplot/bench"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// readResults parses each of paths and concatenates the results,
// keeping only the given methods if any are given. If paths is empty,
// it reads standard input.
func readResults(paths []string, methods []string) ([]*bench.Result, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var rs []*bench.Result
	for _, path := range paths {
		prs, err := bench.ParseFile(path)
		if err != nil {
			return nil, err
		}
		logrus.Debugf("read %d results from %s", len(prs), path)
		rs = append(rs, prs...)
	}

	rs = bench.Filter(rs, methods...)
	if len(rs) == 0 {
		if len(methods) > 0 {
			return nil, fmt.Errorf("no results for methods %v", methods)
		}
		return nil, errNoResults
	}
	return rs, nil
}

// chartFlags are the flags shared by the commands that draw charts.
type chartFlags struct {
	fs *pflag.FlagSet

	style   string
	title   string
	width   int
	height  int
	methods []string
	opts    plotOptions
}

func (f *chartFlags) register(fs *pflag.FlagSet) {
	def := DefaultStyle()
	f.fs = fs
	fs.StringVar(&f.style, "style", "", "read chart style from YAML `file`")
	fs.StringVar(&f.title, "title", def.Title, "chart `title`")
	fs.IntVar(&f.width, "width", def.Width, "chart width in `pixels`")
	fs.IntVar(&f.height, "height", def.Height, "chart height in `pixels`")
	fs.StringSliceVar(&f.methods, "method", nil, "plot only `methods` (comma-separated)")
	fs.BoolVar(&f.opts.Mean, "mean", false, "draw the mean of each method")
	fs.BoolVar(&f.opts.Band, "band", false, "shade the min/max range of each method")
}

// loadStyle returns the chart style: the defaults, overridden by the
// style file, overridden by any flags set on the command line.
func (f *chartFlags) loadStyle() (*Style, error) {
	s := DefaultStyle()
	if f.style != "" {
		var err error
		if s, err = LoadStyle(f.style); err != nil {
			return nil, err
		}
	}
	if f.fs.Changed("title") {
		s.Title = f.title
	}
	if f.fs.Changed("width") {
		s.Width = f.width
	}
	if f.fs.Changed("height") {
		s.Height = f.height
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
