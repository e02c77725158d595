// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/algebra-bench/mvplot/bench"
	"github.com/spf13/cobra"
)

var summaryMethods []string

var summaryCmd = &cobra.Command{
	Use:   "summary [flags] [inputs...]",
	Short: "Print per-size statistics and the parallel speedup",
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := readResults(args, summaryMethods)
		if err != nil {
			return err
		}
		sums := bench.Summarize(rs)
		return bench.Fprint(cmd.OutOrStdout(), sums, bench.Speedups(sums))
	},
}

func init() {
	summaryCmd.Flags().StringSliceVar(&summaryMethods, "method", nil, "summarize only `methods` (comma-separated)")
	rootCmd.AddCommand(summaryCmd)
}
