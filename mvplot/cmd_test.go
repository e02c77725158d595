// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/algebra-bench/mvplot/bench"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `MatrixSize,TimeMs,Iteration,Method
100,1.0,0,Unparalleled
100,0.4,0,Parallel
200,4.0,0,Unparalleled
200,1.2,0,Parallel
100,1.2,1,Unparalleled
100,0.5,1,Parallel
200,4.4,1,Unparalleled
200,1.0,1,Parallel
`

func TestOutputPath(t *testing.T) {
	for _, test := range []struct {
		out    string
		inputs []string
		term   bool
		want   string
	}{
		{"chart.svg", []string{"a.csv"}, true, "chart.svg"},
		{"chart.svg", nil, false, "chart.svg"},
		{"", []string{"a.csv"}, false, ""},
		{"", []string{"../output/performance_results.csv"}, true, "performance_results.svg"},
		{"", []string{"-", "runs.csv"}, true, "runs.svg"},
		{"", nil, true, "mvplot.svg"},
	} {
		got := outputPath(test.out, test.inputs, test.term)
		assert.Equal(t, test.want, got, "outputPath(%q, %q, %v)", test.out, test.inputs, test.term)
	}
}

func TestCreateOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.svg")
	require.NoError(t, createOutput(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "<svg/>")
		return err
	}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))

	// A failed render leaves no file behind.
	failed := errors.New("render failed")
	err = createOutput(path, func(w io.Writer) error {
		io.WriteString(w, "<svg")
		return failed
	})
	assert.ErrorIs(t, err, failed)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestReadResults(t *testing.T) {
	a := writeTemp(t, "a.csv", testCSV)
	b := writeTemp(t, "b.csv", "MatrixSize,TimeMs,Iteration,Method\n300,9,0,Blocked\n")

	rs, err := readResults([]string{a, b}, nil)
	require.NoError(t, err)
	assert.Len(t, rs, 9)

	rs, err = readResults([]string{a, b}, []string{"Blocked"})
	require.NoError(t, err)
	assert.Len(t, rs, 1)

	_, err = readResults([]string{a}, []string{"Blocked"})
	assert.Error(t, err)

	empty := writeTemp(t, "empty.csv", "MatrixSize,TimeMs,Iteration,Method\n")
	_, err = readResults([]string{empty}, nil)
	assert.ErrorIs(t, err, errNoResults)
}

func TestChartFlagsStyle(t *testing.T) {
	style := writeTemp(t, "style.yaml", "title: From file\nwidth: 700\n")

	var f chartFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.register(fs)
	require.NoError(t, fs.Parse([]string{"--style", style, "--height", "300", "--method", "Parallel,Unparalleled", "--mean"}))

	s, err := f.loadStyle()
	require.NoError(t, err)
	assert.Equal(t, "From file", s.Title)
	assert.Equal(t, 700, s.Width)
	assert.Equal(t, 300, s.Height)
	assert.Equal(t, []string{"Parallel", "Unparalleled"}, f.methods)
	assert.True(t, f.opts.Mean)
	assert.False(t, f.opts.Band)

	// Flags override the style file.
	require.NoError(t, fs.Parse([]string{"--title", "From flag"}))
	s, err = f.loadStyle()
	require.NoError(t, err)
	assert.Equal(t, "From flag", s.Title)
}

func TestChartFlagsBadSize(t *testing.T) {
	var f chartFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.register(fs)
	require.NoError(t, fs.Parse([]string{"--width", "0"}))
	_, err := f.loadStyle()
	assert.Error(t, err)
}

func TestViewer(t *testing.T) {
	path := writeTemp(t, "results.csv", testCSV)
	v := &viewer{inputs: []string{path}, style: DefaultStyle()}
	srv := httptest.NewServer(v)
	defer srv.Close()

	get := func(path string) (*http.Response, string) {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp, string(body)
	}

	resp, body := get("/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, "(8 results)")
	// The chart is its own document so its tooltip script runs with
	// the SVG as the root element.
	assert.Contains(t, body, `<object type="image/svg+xml" data="plot.svg" width="1200" height="600">`)
	assert.NotContains(t, body, "<svg")

	resp, body = get("/plot.svg")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, "<svg")
	assert.Contains(t, body, bench.MethodParallel)

	resp, _ = get("/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestViewerRereads(t *testing.T) {
	path := writeTemp(t, "results.csv", testCSV)
	v := &viewer{inputs: []string{path}, style: DefaultStyle()}

	rec := httptest.NewRecorder()
	v.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	assert.Contains(t, rec.Body.String(), "(8 results)")

	// Corrupt the file; the next request reports the parse error.
	writeFile(t, path, strings.Replace(testCSV, "4.4", "slow", 1))
	rec = httptest.NewRecorder()
	v.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "line 8")
}

func TestServeShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		errc <- serve(ctx, "127.0.0.1:0", http.NotFoundHandler())
	}()
	cancel()

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestServeBadAddr(t *testing.T) {
	err := serve(context.Background(), "not an address", http.NotFoundHandler())
	assert.Error(t, err)
}

func TestSummaryCommand(t *testing.T) {
	path := writeTemp(t, "results.csv", testCSV)
	var buf strings.Builder
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"summary", path})
	defer rootCmd.SetOut(nil)
	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "speedup")
	assert.Contains(t, out, "geomean")
	assert.Contains(t, out, "1.100") // mean serial time at size 100
}

func TestPlotCommand(t *testing.T) {
	path := writeTemp(t, "results.csv", testCSV)
	out := filepath.Join(t.TempDir(), "chart.svg")
	rootCmd.SetArgs([]string{"plot", "-o", out, "--band", "--title", "Run 7", path})
	require.NoError(t, rootCmd.Execute())

	svg, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "Run 7")
}
