// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"

	"cogentcore.org/chartgeom/data"
	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/chartgeom/layout"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// MinLabelFraction is the smallest slice fraction that gets a label.
const MinLabelFraction = 0.03

// Pie is a pie chart, or a donut chart when [Settings.InnerRadius] > 0.
type Pie struct {
	Base

	// Slices are the values.
	Slices []data.PieSlice

	// Wedges are the placed slices of the last layout.
	Wedges []layout.Wedge
}

// NewPie returns a new pie chart of the slices.
func NewPie(slices ...data.PieSlice) *Pie {
	ch := &Pie{}
	ch.Defaults()
	ch.SetData(slices...)
	return ch
}

// NewDonut returns a new donut chart of the slices with the hole
// the given fraction of the radius.
func NewDonut(inner float32, slices ...data.PieSlice) *Pie {
	ch := NewPie(slices...)
	ch.Settings.InnerRadius = inner
	return ch
}

// SetData sets the slices. Slices with non-finite values are
// logged and dropped.
func (ch *Pie) SetData(slices ...data.PieSlice) {
	ch.Slices = ch.Slices[:0]
	for i := range slices {
		if errors.Log(slices[i].Validate()) == nil {
			ch.Slices = append(ch.Slices, slices[i])
		}
	}
	ch.MarkDirty()
}

func (ch *Pie) Clear() {
	ch.Slices, ch.Wedges = nil, nil
	ch.MarkDirty()
}

func (ch *Pie) Layout(rect math32.Box2) *geom.Drawing {
	return ch.layout(rect, ch.draw)
}

func (ch *Pie) draw(d *geom.Drawing, st *Settings) {
	area := ch.PlotArea
	sz := area.Size()
	outer := 0.5 * math32.Min(sz.X, sz.Y)
	inner := math32.Clamp(st.InnerRadius, 0, 0.95) * outer
	ch.Wedges = layout.Pie(ch.Slices, area.Center(), outer, inner)
	labels := make([]string, len(ch.Slices))
	cs := make([]color.RGBA, len(ch.Slices))
	for _, w := range ch.Wedges {
		sl := &ch.Slices[w.Index]
		clr := st.Color(w.Index)
		if sl.Color != nil {
			clr = *sl.Color
		}
		labels[w.Index], cs[w.Index] = sl.Label, clr
		if w.Fraction == 0 {
			continue
		}
		arc := w.Arc
		arc.Style = geom.Style{Fill: clr, Stroke: st.Background, Width: 1}
		d.Add(&arc)
		if w.Fraction >= MinLabelFraction {
			d.Add(&geom.Text{Pos: w.LabelPos, Text: fmt.Sprintf("%.0f%%", 100*w.Fraction),
				Align: geom.AlignCenter, Size: st.FontSize, Color: st.Background})
		}
	}
	drawLegend(d, st, area, labels, cs)
}
