// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cogentcore.org/chartgeom/bins"
	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/chartgeom/scale"
	"cogentcore.org/core/math32"
)

// Histogram is a chart of the distribution of values in equal-width bins.
type Histogram struct {
	Base

	// Values are the binned values.
	Values []float64

	// Bins are the bins of the last layout.
	Bins []bins.Bin
}

// NewHistogram returns a new histogram of the values.
func NewHistogram(values []float64) *Histogram {
	ch := &Histogram{}
	ch.Defaults()
	ch.SetData(values)
	return ch
}

// SetData sets the values.
func (ch *Histogram) SetData(values []float64) {
	ch.Values = values
	ch.MarkDirty()
}

// SetBins sets the bin count; 0 chooses by Sturges' rule.
func (ch *Histogram) SetBins(n int) {
	ch.Settings.Bins = max(n, 0)
	ch.MarkDirty()
}

func (ch *Histogram) Clear() {
	ch.Values, ch.Bins = nil, nil
	ch.MarkDirty()
}

// computeBins bins the values with the bin count of st.
func (ch *Histogram) computeBins(st *Settings) []bins.Bin {
	if st.Bins > 0 {
		return bins.ComputeBinsN(ch.Values, st.Bins)
	}
	return bins.ComputeBins(ch.Values)
}

func (ch *Histogram) Layout(rect math32.Box2) *geom.Drawing {
	return ch.layout(rect, ch.draw)
}

func (ch *Histogram) draw(d *geom.Drawing, st *Settings) {
	area := ch.PlotArea
	ch.Bins = ch.computeBins(st)
	if len(ch.Bins) == 0 {
		return
	}
	xa := scale.Axis{Type: scale.Linear, Min: ch.Bins[0].Left, Max: ch.Bins[len(ch.Bins)-1].Right}
	ya := scale.Axis{Type: scale.Linear, Min: 0, Max: float64(max(bins.MaxCount(ch.Bins), 1))}
	drawXAxis(d, st, area, &xa)
	drawYAxis(d, st, area, &ya)
	sty := geom.Style{Fill: st.Color(0), Stroke: st.Background, Width: 1}
	for _, b := range ch.Bins {
		if b.Count == 0 {
			continue
		}
		x0 := xa.PX(b.Left, area.Min.X, area.Max.X)
		x1 := xa.PX(b.Right, area.Min.X, area.Max.X)
		y := ya.PX(float64(b.Count), area.Max.Y, area.Min.Y)
		d.Add(&geom.Rect{Box: math32.B2(x0, y, x1, area.Max.Y), Style: sty})
	}
}
