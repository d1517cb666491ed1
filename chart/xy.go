// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"math"

	"cogentcore.org/chartgeom/data"
	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/chartgeom/scale"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

// MinAxisSpan is the floor for an automatic axis range.
const MinAxisSpan = 0.1

// CapWidth is the width of error bar caps in pixels.
const CapWidth = 8

// XY is a line and scatter chart of series of (x, y) points, with
// optional error bars and per-axis scale types.
type XY struct {
	Base

	// Series are the plotted series.
	Series []*data.Series

	// XScale and YScale are the axis scale types.
	XScale, YScale scale.Types

	// XRange and YRange fix the axis ranges when set.
	XRange, YRange *minmax.F64

	// PX and PY are the pixel coordinates of each series point from
	// the last layout, NaN for points that could not be placed.
	PX, PY [][]float32
}

// NewXY returns a new line chart of the series.
func NewXY(series ...*data.Series) *XY {
	ch := &XY{}
	ch.Defaults()
	ch.SetData(series...)
	return ch
}

// NewScatter returns a new chart of the series drawn as markers
// without lines.
func NewScatter(series ...*data.Series) *XY {
	ch := NewXY(series...)
	ch.Settings.LineWidth = 0
	ch.Settings.Marker = data.MarkerCircle
	return ch
}

// SetData replaces the series. Series failing validation are logged
// and dropped.
func (ch *XY) SetData(series ...*data.Series) {
	ch.Series = ch.Series[:0]
	for _, s := range series {
		ch.AddSeries(s)
	}
	ch.MarkDirty()
}

// AddSeries adds a series if it is valid, and logs the error otherwise.
func (ch *XY) AddSeries(s *data.Series) {
	if s == nil || errors.Log(s.Validate()) != nil {
		return
	}
	ch.Series = append(ch.Series, s)
	ch.MarkDirty()
}

// SetScales sets the axis scale types.
func (ch *XY) SetScales(x, y scale.Types) {
	ch.XScale, ch.YScale = x, y
	ch.MarkDirty()
}

// SetRange fixes the axis ranges; a nil range is automatic.
func (ch *XY) SetRange(x, y *minmax.F64) {
	ch.XRange, ch.YRange = x, y
	ch.MarkDirty()
}

func (ch *XY) Clear() {
	ch.Series = nil
	ch.PX, ch.PY = nil, nil
	ch.MarkDirty()
}

// fitValue extends rng with v, skipping values outside the domain
// of typ.
func fitValue(rng *minmax.F64, v float64, typ scale.Types) {
	if math.IsNaN(v) || math.IsInf(v, 0) || (typ == scale.Log && v <= 0) {
		return
	}
	rng.FitValInRange(v)
}

func errAt(vs []float64, i int) float64 {
	if i < len(vs) {
		return math.Abs(vs[i])
	}
	return 0
}

// Axes returns the x and y axes, from the fixed ranges or from the
// data including error extents.
func (ch *XY) Axes() (x, y scale.Axis) {
	xr, yr := data.NewRange(), data.NewRange()
	for _, s := range ch.Series {
		for i := range s.X {
			xv, yv := s.X[i], s.Y[i]
			fitValue(&xr, xv, ch.XScale)
			fitValue(&yr, yv, ch.YScale)
			if eb := s.Errors; eb != nil {
				fitValue(&xr, xv-errAt(eb.XMinus, i), ch.XScale)
				fitValue(&xr, xv+errAt(eb.XPlus, i), ch.XScale)
				fitValue(&yr, yv-errAt(eb.YMinus, i), ch.YScale)
				fitValue(&yr, yv+errAt(eb.YPlus, i), ch.YScale)
			}
		}
	}
	data.FloorRange(&xr, MinAxisSpan)
	data.FloorRange(&yr, MinAxisSpan)
	if ch.XRange != nil {
		xr = *ch.XRange
	}
	if ch.YRange != nil {
		yr = *ch.YRange
	}
	x = scale.Axis{Type: ch.XScale, Min: xr.Min, Max: xr.Max}
	y = scale.Axis{Type: ch.YScale, Min: yr.Min, Max: yr.Max}
	return
}

func (ch *XY) Layout(rect math32.Box2) *geom.Drawing {
	return ch.layout(rect, ch.draw)
}

func finite32(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

func (ch *XY) draw(d *geom.Drawing, st *Settings) {
	area := ch.PlotArea
	xa, ya := ch.Axes()
	drawXAxis(d, st, area, &xa)
	drawYAxis(d, st, area, &ya)

	ch.PX = make([][]float32, len(ch.Series))
	ch.PY = make([][]float32, len(ch.Series))
	labels := make([]string, len(ch.Series))
	cs := make([]color.RGBA, len(ch.Series))
	for si, s := range ch.Series {
		clr := st.Color(si)
		if s.Style.Color != nil {
			clr = *s.Style.Color
		}
		labels[si], cs[si] = s.Label, clr
		px := make([]float32, s.Len())
		py := make([]float32, s.Len())
		for i := range s.X {
			px[i] = xa.PX(s.X[i], area.Min.X, area.Max.X)
			py[i] = ya.PX(s.Y[i], area.Max.Y, area.Min.Y)
			if !finite32(px[i]) || !finite32(py[i]) {
				px[i], py[i] = math32.NaN(), math32.NaN()
			}
		}
		ch.PX[si], ch.PY[si] = px, py

		lw := st.LineWidth
		if s.Style.LineWidth != nil {
			lw = *s.Style.LineWidth
		}
		if lw > 0 {
			drawLines(d, px, py, geom.Stroked(clr, lw))
		}
		if s.Errors != nil {
			ch.drawErrors(d, s, &xa, &ya, area, geom.Stroked(clr, 1))
		}
		shape := st.Marker
		if s.Style.Marker != nil {
			shape = *s.Style.Marker
		}
		size := st.MarkerSize
		if s.Style.MarkerSize != nil {
			size = *s.Style.MarkerSize
		}
		for i := range px {
			if math32.IsNaN(px[i]) {
				continue
			}
			pc := clr
			if i < len(s.Colors) {
				pc = s.Colors[i]
			}
			drawMarker(d, shape, math32.Vec2(px[i], py[i]), size, pc)
		}
	}
	drawLegend(d, st, area, labels, cs)
}

// drawLines adds polylines through the points, broken at NaN points.
func drawLines(d *geom.Drawing, px, py []float32, sty geom.Style) {
	var run []math32.Vector2
	flush := func() {
		if len(run) > 1 {
			d.Add(&geom.Polyline{Points: run, Style: sty})
		}
		run = nil
	}
	for i := range px {
		if math32.IsNaN(px[i]) {
			flush()
			continue
		}
		run = append(run, math32.Vec2(px[i], py[i]))
	}
	flush()
}

func (ch *XY) drawErrors(d *geom.Drawing, s *data.Series, xa, ya *scale.Axis, area math32.Box2, sty geom.Style) {
	eb := s.Errors
	cw := float32(0.5 * CapWidth)
	for i := range s.X {
		x, y := s.X[i], s.Y[i]
		px := xa.PX(x, area.Min.X, area.Max.X)
		py := ya.PX(y, area.Max.Y, area.Min.Y)
		if !finite32(px) || !finite32(py) {
			continue
		}
		if len(eb.YMinus) > 0 || len(eb.YPlus) > 0 {
			lo := ya.PX(y-errAt(eb.YMinus, i), area.Max.Y, area.Min.Y)
			hi := ya.PX(y+errAt(eb.YPlus, i), area.Max.Y, area.Min.Y)
			if finite32(lo) && finite32(hi) {
				d.Add(&geom.Line{From: math32.Vec2(px, lo), To: math32.Vec2(px, hi), Style: sty},
					&geom.Line{From: math32.Vec2(px-cw, lo), To: math32.Vec2(px+cw, lo), Style: sty},
					&geom.Line{From: math32.Vec2(px-cw, hi), To: math32.Vec2(px+cw, hi), Style: sty})
			}
		}
		if len(eb.XMinus) > 0 || len(eb.XPlus) > 0 {
			lo := xa.PX(x-errAt(eb.XMinus, i), area.Min.X, area.Max.X)
			hi := xa.PX(x+errAt(eb.XPlus, i), area.Min.X, area.Max.X)
			if finite32(lo) && finite32(hi) {
				d.Add(&geom.Line{From: math32.Vec2(lo, py), To: math32.Vec2(hi, py), Style: sty},
					&geom.Line{From: math32.Vec2(lo, py-cw), To: math32.Vec2(lo, py+cw), Style: sty},
					&geom.Line{From: math32.Vec2(hi, py-cw), To: math32.Vec2(hi, py+cw), Style: sty})
			}
		}
	}
}

// drawMarker adds a marker of the given shape and radius at p.
func drawMarker(d *geom.Drawing, shape data.MarkerShapes, p math32.Vector2, size float32, c color.RGBA) {
	sty := geom.Style{Fill: c, Stroke: c, Width: 1}
	switch shape {
	case data.MarkerCircle:
		d.Add(&geom.Circle{Center: p, Radius: size, Style: sty})
	case data.MarkerSquare:
		d.Add(&geom.Rect{Box: math32.B2(p.X-size, p.Y-size, p.X+size, p.Y+size), Style: sty})
	case data.MarkerTriangle:
		h := size * math32.Sqrt(3) / 2
		d.Add(&geom.Polygon{Points: []math32.Vector2{
			math32.Vec2(p.X, p.Y-size), math32.Vec2(p.X+h, p.Y+0.5*size), math32.Vec2(p.X-h, p.Y+0.5*size),
		}, Style: sty})
	}
}
