// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"

	"cogentcore.org/chartgeom/data"
	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/chartgeom/layout"
	"cogentcore.org/core/math32"
)

// Radar is a radar (spider) chart of series over named radial axes.
type Radar struct {
	Base

	// Axes are the axis labels, clockwise from 12 o'clock.
	Axes []string

	// Series are the plotted value sets, one value per axis.
	Series []data.PolarSeries

	// MaxValue fixes the outer ring value when > 0.
	MaxValue float64

	// Web is the geometry of the last layout.
	Web *layout.Radar
}

// NewRadar returns a new radar chart over the axes.
func NewRadar(axes []string, series ...data.PolarSeries) *Radar {
	ch := &Radar{}
	ch.Defaults()
	ch.Axes = axes
	ch.SetData(series...)
	return ch
}

// SetAxes sets the axis labels.
func (ch *Radar) SetAxes(axes ...string) {
	ch.Axes = axes
	ch.MarkDirty()
}

// SetData sets the series.
func (ch *Radar) SetData(series ...data.PolarSeries) {
	ch.Series = series
	ch.MarkDirty()
}

// SetRange fixes the outer ring value; <= 0 is automatic.
func (ch *Radar) SetRange(max float64) {
	ch.MaxValue = max
	ch.MarkDirty()
}

func (ch *Radar) Clear() {
	ch.Series, ch.Web = nil, nil
	ch.MarkDirty()
}

func (ch *Radar) Layout(rect math32.Box2) *geom.Drawing {
	return ch.layout(rect, ch.draw)
}

func (ch *Radar) draw(d *geom.Drawing, st *Settings) {
	area := ch.PlotArea
	sz := area.Size()
	radius := 0.42 * math32.Min(sz.X, sz.Y)
	center := area.Center()
	ch.Web = layout.LayoutRadar(len(ch.Axes), ch.Series, center, radius, ch.MaxValue, st.Rings)
	if ch.Web == nil {
		return
	}
	web := gridStyle(st)
	for _, ring := range ch.Web.Rings {
		d.Add(&geom.Polygon{Points: ring, Style: web})
	}
	for i, sp := range ch.Web.Spokes {
		d.Add(&geom.Line{From: center, To: sp, Style: geom.Stroked(st.Grid, 1)})
		pos := geom.Polar(center, radius+0.8*st.FontSize, ch.Web.Angles[i])
		align := geom.AlignCenter
		switch {
		case pos.X > center.X+1:
			align = geom.AlignStart
		case pos.X < center.X-1:
			align = geom.AlignEnd
		}
		d.Add(&geom.Text{Pos: math32.Vec2(pos.X, pos.Y+0.35*st.FontSize), Text: ch.Axes[i], Align: align, Size: st.FontSize, Color: st.Foreground})
	}
	labels := make([]string, len(ch.Series))
	cs := make([]color.RGBA, len(ch.Series))
	for i, pg := range ch.Web.Polygons {
		s := &ch.Series[i]
		clr := st.Color(i)
		if s.Color != nil {
			clr = *s.Color
		}
		labels[i], cs[i] = s.Label, clr
		d.Add(&geom.Polygon{Points: pg, Style: geom.Style{Fill: withAlpha(clr, 0x40), Stroke: clr, Width: 2}})
	}
	drawLegend(d, st, area, labels, cs)
}
