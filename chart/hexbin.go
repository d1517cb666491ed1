// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cogentcore.org/chartgeom/bins"
	"cogentcore.org/chartgeom/data"
	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// Hexbin is a chart of point density on a hexagonal grid, shaded
// radially from the center cell through the colormap.
type Hexbin struct {
	Base

	// Series are the binned point sets. Each is normalized by its
	// own range.
	Series []*data.Series

	// Bins are the cells of the last layout.
	Bins []bins.HexBin

	// MaxRing is the outermost ring of the last layout.
	MaxRing int
}

// NewHexbin returns a new hexbin chart of the series.
func NewHexbin(series ...*data.Series) *Hexbin {
	ch := &Hexbin{}
	ch.Defaults()
	ch.SetData(series...)
	return ch
}

// SetData replaces the series. Series failing validation are logged
// and dropped.
func (ch *Hexbin) SetData(series ...*data.Series) {
	ch.Series = nil
	for _, s := range series {
		if s == nil || errors.Log(s.Validate()) != nil {
			continue
		}
		ch.Series = append(ch.Series, s)
	}
	ch.MarkDirty()
}

// SetRadius sets the hexagon radius in pixels.
func (ch *Hexbin) SetRadius(r float32) {
	ch.Settings.HexRadius = r
	ch.MarkDirty()
}

func (ch *Hexbin) Clear() {
	ch.Series, ch.Bins, ch.MaxRing = nil, nil, 0
	ch.MarkDirty()
}

func (ch *Hexbin) Layout(rect math32.Box2) *geom.Drawing {
	return ch.layout(rect, ch.draw)
}

func (ch *Hexbin) draw(d *geom.Drawing, st *Settings) {
	if len(ch.Series) == 0 {
		ch.Bins, ch.MaxRing = nil, 0
		return
	}
	ds := make([][]bins.XY, len(ch.Series))
	for i, s := range ch.Series {
		pts := make([]bins.XY, s.Len())
		for j := range pts {
			pts[j] = bins.XY{X: s.X[j], Y: s.Y[j]}
		}
		ds[i] = pts
	}
	ch.Bins, ch.MaxRing = bins.CalculateHexBins(ds, ch.PlotArea, st.HexRadius)
	cm := ch.colormap(st)
	radius := max(st.HexRadius, 1)
	for _, hb := range ch.Bins {
		cs := HexPolygon(hb.Center, radius)
		sty := geom.Stroked(st.Grid, 1)
		if hb.Count > 0 {
			sty.Fill = cm.Sample(bins.RingT(hb.Ring, ch.MaxRing))
		}
		d.Add(&geom.Polygon{Points: cs, Style: sty})
	}
}

// HexPolygon returns the corners of a pointy-top hexagon as a polygon.
func HexPolygon(center math32.Vector2, radius float32) []math32.Vector2 {
	cs := bins.HexCorners(center, radius)
	return cs[:]
}
