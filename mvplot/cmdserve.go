// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/algebra-bench/mvplot/bench"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveFlags struct {
	chart chartFlags
	addr  string
}

var serveCmd = &cobra.Command{
	Use:   "serve [flags] inputs...",
	Short: "Show the timing chart in a web browser",
	Long: `Serve shows the timing chart on a local web page. The inputs are
re-read on every page load, so re-running a benchmark and reloading
the page shows the new results. Hovering over a line shows the run
under the cursor.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := serveFlags.chart.loadStyle()
		if err != nil {
			return err
		}
		v := &viewer{
			inputs:  args,
			methods: serveFlags.chart.methods,
			style:   style,
			opts:    serveFlags.chart.opts,
		}
		// Fail early on unreadable inputs.
		if _, err := v.load(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return serve(ctx, serveFlags.addr, v)
	},
}

func init() {
	f := serveCmd.Flags()
	serveFlags.chart.register(f)
	f.StringVar(&serveFlags.addr, "http", "localhost:8080", "serve on `address`")
	rootCmd.AddCommand(serveCmd)
}

// serve serves h on addr until ctx is done.
func serve(ctx context.Context, addr string, h http.Handler) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: h}
	logrus.Infof("serving chart at http://%s/", ln.Addr())

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// A viewer serves a chart of a set of results files. It re-reads the
// files on every request.
type viewer struct {
	inputs  []string
	methods []string
	style   *Style
	opts    plotOptions
}

func (v *viewer) load() ([]*bench.Result, error) {
	return readResults(v.inputs, v.methods)
}

func (v *viewer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/":
		v.serveView(w, r)
	case "/plot.svg":
		v.serveSVG(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (v *viewer) serveSVG(w http.ResponseWriter, r *http.Request) {
	rs, err := v.load()
	if err != nil {
		logrus.Errorf("reading results: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	svg, err := renderSVG(rs, v.style, v.opts)
	if err != nil {
		logrus.Errorf("rendering chart: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg)
}

// serveView serves the page around the chart. The chart is loaded as
// a separate SVG document because its tooltip script expects to be
// the root element.
func (v *viewer) serveView(w http.ResponseWriter, r *http.Request) {
	rs, err := v.load()
	if err != nil {
		logrus.Errorf("reading results: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	err = viewTemplate.Execute(&buf, viewData{
		Title:   v.style.Title,
		Inputs:  v.inputs,
		Results: len(rs),
		Width:   v.style.Width,
		Height:  v.style.Height,
	})
	if err != nil {
		logrus.Errorf("executing view template: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
