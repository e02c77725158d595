// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"
)

var plotFlags struct {
	chart      chartFlags
	out        string
	cpuProfile string
	memProfile string
}

var plotCmd = &cobra.Command{
	Use:   "plot [flags] [inputs...]",
	Short: "Write the timing chart as SVG",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmdPlot(args)
	},
}

func init() {
	f := plotCmd.Flags()
	plotFlags.chart.register(f)
	f.StringVarP(&plotFlags.out, "output", "o", "", "write output to `file` (default: stdout, or <input>.svg on a terminal)")
	f.StringVar(&plotFlags.cpuProfile, "cpuprofile", "", "write CPU profile to `file`")
	f.StringVar(&plotFlags.memProfile, "memprofile", "", "write heap profile to `file`")
	rootCmd.AddCommand(plotCmd)
}

func cmdPlot(paths []string) error {
	if plotFlags.cpuProfile != "" {
		f, err := os.Create(plotFlags.cpuProfile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	if plotFlags.memProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(plotFlags.memProfile)
			if err != nil {
				logrus.Error(err)
				return
			}
			if err := pprof.WriteHeapProfile(f); err != nil {
				logrus.Errorf("writing heap profile: %v", err)
			}
			f.Close()
		}()
	}

	style, err := plotFlags.chart.loadStyle()
	if err != nil {
		return err
	}
	rs, err := readResults(paths, plotFlags.chart.methods)
	if err != nil {
		return err
	}

	write := func(w io.Writer) error {
		return writeSVG(w, rs, style, plotFlags.chart.opts)
	}
	out := outputPath(plotFlags.out, paths, isTerminal(os.Stdout))
	if out == "" {
		return write(os.Stdout)
	}
	if err := createOutput(out, write); err != nil {
		return err
	}
	logrus.Infof("wrote %s", out)
	return nil
}

// createOutput creates path and fills it using write. If write fails,
// path is removed rather than left partially written.
func createOutput(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// outputPath returns the file to write a chart of inputs to, or "" to
// write it to standard output. An SVG document is never written to a
// terminal: if stdout is a terminal and no output is given, the chart
// goes to a file named after the first input.
func outputPath(out string, inputs []string, stdoutIsTerminal bool) string {
	if out != "" || !stdoutIsTerminal {
		return out
	}
	for _, in := range inputs {
		if in == "-" {
			continue
		}
		base := filepath.Base(in)
		return strings.TrimSuffix(base, filepath.Ext(base)) + ".svg"
	}
	return "mvplot.svg"
}

func isTerminal(f *os.File) bool {
	return os.Getenv("TERM") != "dumb" && terminal.IsTerminal(int(f.Fd()))
}
