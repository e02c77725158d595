// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mvplot plots matrix-vector multiplication timings.
//
// mvplot reads a CSV results file with the columns MatrixSize,
// TimeMs, Iteration and Method (see package bench) and draws one line
// per iteration of each method, so the spread between runs of the
// serial ("Unparalleled") and parallel implementations is visible
// across matrix sizes.
//
// Usage:
//
//	mvplot plot [flags] [inputs...]
//	mvplot serve [flags] [inputs...]
//	mvplot summary [flags] [inputs...]
//
// plot writes the chart as SVG. serve shows the chart in a browser
// and re-reads the inputs on every reload. summary prints the mean,
// median and spread of each method at each size, and the parallel
// speedup. With no inputs, mvplot reads standard input.
package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:           "mvplot",
	Short:         "Plot parallel vs. serial matrix-vector multiplication timings",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q", logLevel)
		}
		logrus.SetLevel(level)
		return nil
	},
}

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "log `level` (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
