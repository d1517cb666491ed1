// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"math"
	"slices"

	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/chartgeom/scale"
	"cogentcore.org/core/math32"
)

// TickLength is the length of axis tick marks in pixels.
const TickLength = 5

// axisTicks returns the ticks of ax within its range, sorted.
// A count below one gives no ticks.
func axisTicks(ax *scale.Axis, count int) []float64 {
	if count < 1 {
		return nil
	}
	lo, hi := min(ax.Min, ax.Max), max(ax.Min, ax.Max)
	const eps = 1e-9
	span := (hi - lo) * eps
	var tk []float64
	for _, v := range ax.Ticks(count) {
		if v >= lo-span && v <= hi+span && !math.IsNaN(v) {
			tk = append(tk, v)
		}
	}
	slices.Sort(tk)
	return tk
}

// drawXAxis draws the bottom axis line, ticks, labels and vertical
// grid lines of area.
func drawXAxis(d *geom.Drawing, st *Settings, area math32.Box2, ax *scale.Axis) {
	y := area.Max.Y
	d.Add(&geom.Line{From: math32.Vec2(area.Min.X, y), To: math32.Vec2(area.Max.X, y), Style: geom.Stroked(st.Foreground, 1)})
	for _, v := range axisTicks(ax, st.Ticks) {
		x := ax.PX(v, area.Min.X, area.Max.X)
		if math32.IsNaN(x) || math32.IsInf(x, 0) {
			continue
		}
		d.Add(&geom.Line{From: math32.Vec2(x, area.Min.Y), To: math32.Vec2(x, y), Style: gridStyle(st)})
		d.Add(&geom.Line{From: math32.Vec2(x, y), To: math32.Vec2(x, y+TickLength), Style: geom.Stroked(st.Foreground, 1)})
		d.Add(&geom.Text{Pos: math32.Vec2(x, y+TickLength+st.FontSize), Text: ax.Type.FormatTick(v),
			Align: geom.AlignCenter, Size: st.FontSize, Color: st.Foreground})
	}
}

// drawYAxis draws the left axis line, ticks, labels and horizontal
// grid lines of area.
func drawYAxis(d *geom.Drawing, st *Settings, area math32.Box2, ax *scale.Axis) {
	x := area.Min.X
	d.Add(&geom.Line{From: math32.Vec2(x, area.Min.Y), To: math32.Vec2(x, area.Max.Y), Style: geom.Stroked(st.Foreground, 1)})
	for _, v := range axisTicks(ax, st.Ticks) {
		y := ax.PX(v, area.Max.Y, area.Min.Y)
		if math32.IsNaN(y) || math32.IsInf(y, 0) {
			continue
		}
		d.Add(&geom.Line{From: math32.Vec2(x, y), To: math32.Vec2(area.Max.X, y), Style: gridStyle(st)})
		d.Add(&geom.Line{From: math32.Vec2(x-TickLength, y), To: math32.Vec2(x, y), Style: geom.Stroked(st.Foreground, 1)})
		d.Add(&geom.Text{Pos: math32.Vec2(x-TickLength-3, y+0.35*st.FontSize), Text: ax.Type.FormatTick(v),
			Align: geom.AlignEnd, Size: st.FontSize, Color: st.Foreground})
	}
}

func gridStyle(st *Settings) geom.Style {
	s := geom.Stroked(st.Grid, 1)
	s.Dashed = true
	return s
}

// drawLegend draws a swatch and label per entry at the top right
// inside area.
func drawLegend(d *geom.Drawing, st *Settings, area math32.Box2, labels []string, cs []color.RGBA) {
	if !st.Legend {
		return
	}
	sw := 0.8 * st.FontSize
	x := area.Max.X - 6
	y := area.Min.Y + 6
	for i, lb := range labels {
		if lb == "" {
			continue
		}
		d.Add(&geom.Rect{Box: math32.B2(x-sw, y, x, y+sw), Style: geom.Filled(cs[i])})
		d.Add(&geom.Text{Pos: math32.Vec2(x-sw-4, y+sw), Text: lb, Align: geom.AlignEnd, Size: st.FontSize, Color: st.Foreground})
		y += st.FontSize + 4
	}
}

// withAlpha returns c with alpha a, premultiplying the channels.
func withAlpha(c color.RGBA, a uint8) color.RGBA {
	f := float32(a) / 255
	return color.RGBA{uint8(float32(c.R) * f), uint8(float32(c.G) * f), uint8(float32(c.B) * f), a}
}
