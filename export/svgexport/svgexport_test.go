// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgexport

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"cogentcore.org/chartgeom/chart"
	"cogentcore.org/chartgeom/data"
	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteItems(t *testing.T) {
	d := &geom.Drawing{}
	dash := geom.Stroked(colors.Black, 1)
	dash.Dashed = true
	d.Add(
		&geom.Rect{Box: math32.B2(0, 0, 100, 50), Style: geom.Filled(colors.White)},
		&geom.Line{From: math32.Vec2(0, 10), To: math32.Vec2(100, 10), Style: dash},
		&geom.Polyline{Points: []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 5}}, Style: geom.Stroked(colors.Red, 2)},
		&geom.Polygon{Points: []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 5}}, Style: geom.Filled(color.RGBA{0, 0, 0x80, 0x80})},
		&geom.Circle{Center: math32.Vec2(50, 25), Radius: 3, Style: geom.Filled(colors.Blue)},
		&geom.Text{Pos: math32.Vec2(50, 40), Text: "a<b", Align: geom.AlignCenter, Size: 12, Color: colors.Black},
	)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, d, 100, 50))
	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Equal(t, 5, strings.Count(out, "<path"))
	assert.Contains(t, out, "stroke-dasharray:"+DashArray)
	assert.Contains(t, out, "stroke-width:2")
	assert.Contains(t, out, "fill:#0000ff")
	assert.Contains(t, out, "fill-opacity:0.502")
	assert.Contains(t, out, `text-anchor="middle"`)
	assert.Contains(t, out, "a&lt;b")
	assert.NotContains(t, out, "a<b")
}

func TestPaint(t *testing.T) {
	assert.Equal(t, "fill:none", paint("fill", color.RGBA{}))
	assert.Equal(t, "stroke:#ff0000", paint("stroke", colors.Red))
	assert.Equal(t, "fill:#ff0000;fill-opacity:0.502", paint("fill", color.RGBA{0x80, 0, 0, 0x80}))
}

func TestArcPath(t *testing.T) {
	half := &geom.Arc{Center: math32.Vec2(0, 0), Outer: 10, Start: 0, End: math32.Pi / 2}
	p := arcPath(half)
	assert.True(t, strings.HasPrefix(p, "M 10 0 A 10 10 0 0 1"))
	assert.True(t, strings.HasSuffix(p, "L 0 0 Z"))

	donut := &geom.Arc{Center: math32.Vec2(0, 0), Inner: 5, Outer: 10, Start: 0, End: 1.5 * math32.Pi}
	p = arcPath(donut)
	assert.Contains(t, p, "A 10 10 0 1 1")
	assert.Contains(t, p, "A 5 5 0 1 0")

	full := &geom.Arc{Center: math32.Vec2(0, 0), Outer: 10, Start: 0, End: 2 * math32.Pi}
	p = arcPath(full)
	assert.NotContains(t, p, "A")
	assert.Equal(t, 129+1, strings.Count(p, "L")+strings.Count(p, "M"))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteError(t *testing.T) {
	d := &geom.Drawing{}
	d.Add(&geom.Rect{Box: math32.B2(0, 0, 1, 1)})
	assert.EqualError(t, Write(failWriter{}, d, 1, 1), "disk full")
}

func TestWriteChart(t *testing.T) {
	ch := chart.NewPie(data.PieSlice{Label: "a", Value: 1}, data.PieSlice{Label: "b", Value: 2})
	ch.SetTitle("Share")
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ch.Layout(math32.B2(0, 0, 300, 200)), 300, 200))
	out := buf.String()
	assert.Contains(t, out, "Share")
	assert.Contains(t, out, "67%")
	assert.Equal(t, 2, strings.Count(out, " A "))
}
