// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "html/template"

var viewTemplate = template.Must(template.New("view").Parse(`<!DOCTYPE html>
<html>
    <head>
        <meta charset="utf-8">
        <title>{{.Title}}</title>
        <style>
         body { font-family: Roboto, "Helvetica Neue", Helvetica, Arial, sans-serif; margin: 1em; }
         .inputs { color: #666; }
         .chart object { max-width: 100%; }
        </style>
    </head>
    <body>
        <p class="inputs">
            {{range $i, $in := .Inputs}}{{if $i}}, {{end}}{{$in}}{{end}}
            ({{.Results}} results) &middot; <a href="plot.svg" download>download SVG</a>
        </p>
        <div class="chart">
            <object type="image/svg+xml" data="plot.svg" width="{{.Width}}" height="{{.Height}}">{{.Title}}</object>
        </div>
    </body>
</html>
`))

// viewData is the input to viewTemplate.
type viewData struct {
	Title   string
	Inputs  []string
	Results int

	// Width and Height are the size of the chart in pixels.
	Width, Height int
}
