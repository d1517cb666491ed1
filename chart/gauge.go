// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cogentcore.org/chartgeom/data"
	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/chartgeom/layout"
	"cogentcore.org/chartgeom/scale"
	"cogentcore.org/core/math32"
)

// Gauge is a dial showing one value within a range, colored by the
// threshold band the value falls in.
type Gauge struct {
	Base

	// Value is the shown value.
	Value float64

	// Min and Max are the dial range.
	Min, Max float64

	// Thresholds are the color bands; empty uses
	// [layout.DefaultThresholds].
	Thresholds []data.Threshold

	// Unit is appended to the value text.
	Unit string

	// Dial is the geometry of the last layout.
	Dial *layout.Gauge
}

// NewGauge returns a new gauge over [0, 100].
func NewGauge(value float64) *Gauge {
	ch := &Gauge{Min: 0, Max: 100}
	ch.Defaults()
	ch.SetData(value)
	return ch
}

// SetData sets the value.
func (ch *Gauge) SetData(value float64) {
	ch.Value = value
	ch.MarkDirty()
}

// SetRange sets the dial range.
func (ch *Gauge) SetRange(min, max float64) {
	ch.Min, ch.Max = min, max
	ch.MarkDirty()
}

// SetThresholds sets the color bands.
func (ch *Gauge) SetThresholds(ths ...data.Threshold) {
	ch.Thresholds = ths
	ch.MarkDirty()
}

func (ch *Gauge) Clear() {
	ch.Value, ch.Dial = 0, nil
	ch.MarkDirty()
}

func (ch *Gauge) Layout(rect math32.Box2) *geom.Drawing {
	return ch.layout(rect, ch.draw)
}

func (ch *Gauge) draw(d *geom.Drawing, st *Settings) {
	area := ch.PlotArea
	sz := area.Size()
	radius := 0.5 * math32.Min(sz.X, sz.Y)
	center := area.Center()
	g := layout.LayoutGauge(ch.Value, ch.Min, ch.Max, ch.Thresholds, center, radius, st.GaugeWidth*radius)
	ch.Dial = g

	bg := g.Background
	bg.Style = geom.Filled(st.Grid)
	d.Add(&bg)
	if g.Ratio > 0 {
		fill := g.Fill
		d.Add(&fill)
	}
	tsty := geom.Stroked(st.Foreground, 1)
	for _, tk := range g.Ticks {
		d.Add(&geom.Line{From: tk.From, To: tk.To, Style: tsty})
		d.Add(&geom.Text{Pos: math32.Vec2(tk.Label.X, tk.Label.Y+0.35*st.FontSize), Text: scale.Linear.FormatTick(tk.Value),
			Align: geom.AlignCenter, Size: st.FontSize, Color: st.Foreground})
	}
	d.Add(&geom.Line{From: center, To: g.NeedleTip, Style: geom.Stroked(st.Foreground, 3)})
	d.Add(&geom.Circle{Center: center, Radius: 0.05 * radius, Style: geom.Filled(st.Foreground)})
	d.Add(&geom.Text{Pos: math32.Vec2(center.X, center.Y+0.5*radius), Text: scale.Linear.FormatTick(ch.Value) + ch.Unit,
		Align: geom.AlignCenter, Size: 2 * st.FontSize, Color: g.Active})
}
