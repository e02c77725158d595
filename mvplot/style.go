// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/algebra-bench/mvplot/bench"
	"gopkg.in/yaml.v3"
)

// Style is the presentation of a chart. It can be loaded from a YAML
// file such as
//
//	title: SpMV on 8 cores
//	width: 900
//	colors:
//	  Parallel: "#2ca02c"
//	  Blocked: "#9467bd80"
type Style struct {
	Title  string `yaml:"title"`
	XLabel string `yaml:"xlabel"`
	YLabel string `yaml:"ylabel"`

	// Width and Height are the size of the chart in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Alpha is the opacity of per-iteration lines whose color
	// does not give one.
	Alpha float64 `yaml:"alpha"`

	// Colors maps a method to "#rrggbb" or "#rrggbbaa".
	Colors map[string]string `yaml:"colors"`
}

// DefaultStyle returns the standard comparison chart style: a
// 12x6 inch figure at 100 dpi, serial runs in blue and parallel runs
// in red at half opacity.
func DefaultStyle() *Style {
	return &Style{
		Title:  "Matrix-Vector Multiplication Time per Run",
		XLabel: "Matrix Size",
		YLabel: "Time (ms)",
		Width:  1200,
		Height: 600,
		Alpha:  0.5,
		Colors: map[string]string{
			bench.MethodSerial:   "#0000ff",
			bench.MethodParallel: "#ff0000",
		},
	}
}

// LoadStyle reads a YAML style file. Settings missing from the file
// keep their DefaultStyle values.
func LoadStyle(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := DefaultStyle()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks that s can be used to render a chart.
func (s *Style) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("bad chart size %dx%d", s.Width, s.Height)
	}
	if s.Alpha <= 0 || s.Alpha > 1 {
		return fmt.Errorf("alpha %g not in (0, 1]", s.Alpha)
	}
	for method, c := range s.Colors {
		if _, _, err := parseColor(c); err != nil {
			return fmt.Errorf("color for %s: %w", method, err)
		}
	}
	return nil
}

// fallbackPalette colors methods that have no entry in Style.Colors.
// It skips blue and red so other methods don't look like the serial
// or parallel runs.
var fallbackPalette = []color.NRGBA{
	{0x2c, 0xa0, 0x2c, 0xff},
	{0xff, 0x7f, 0x0e, 0xff},
	{0x94, 0x67, 0xbd, 0xff},
	{0x8c, 0x56, 0x4b, 0xff},
	{0xe3, 0x77, 0xc2, 0xff},
	{0x7f, 0x7f, 0x7f, 0xff},
	{0xbc, 0xbd, 0x22, 0xff},
	{0x17, 0xbe, 0xcf, 0xff},
}

// methodColors assigns an opaque color to each of methods and returns
// the colors and the opacity to draw per-iteration lines with.
func (s *Style) methodColors(methods []string) (map[string]color.NRGBA, map[string]uint8) {
	colors := make(map[string]color.NRGBA, len(methods))
	alphas := make(map[string]uint8, len(methods))
	next := 0
	for _, m := range methods {
		c, hasAlpha, err := parseColor(s.Colors[m])
		if err != nil {
			c = fallbackPalette[next%len(fallbackPalette)]
			next++
			hasAlpha = false
		}
		if hasAlpha {
			alphas[m] = c.A
		} else {
			alphas[m] = uint8(s.Alpha*0xff + 0.5)
		}
		c.A = 0xff
		colors[m] = c
	}
	return colors, alphas
}

// parseColor parses "#rrggbb" or "#rrggbbaa". hasAlpha reports
// whether the alpha component was given.
func parseColor(s string) (c color.NRGBA, hasAlpha bool, err error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return c, false, fmt.Errorf("bad color %q: want #rrggbb or #rrggbbaa", s)
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return c, false, fmt.Errorf("bad color %q: %w", s, err)
	}
	c = color.NRGBA{b[0], b[1], b[2], 0xff}
	if len(b) == 4 {
		c.A = b[3]
		hasAlpha = true
	}
	return c, hasAlpha, nil
}
