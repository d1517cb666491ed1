// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cogentcore.org/chartgeom/contour"
	"cogentcore.org/chartgeom/data"
	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// Contour is a contour chart of a scalar grid[row][col], with
// optional filled cell shading. Row 0 is at the top.
type Contour struct {
	Base

	// Grid is the scalar field.
	Grid [][]float64

	// Levels fixes the traced levels when set; otherwise
	// [Settings.Levels] evenly spaced levels are traced.
	Levels []float64

	// Result is the trace of the last layout.
	Result *contour.Result
}

// NewContour returns a new contour chart of the grid.
func NewContour(grid [][]float64) *Contour {
	ch := &Contour{}
	ch.Defaults()
	ch.SetData(grid)
	return ch
}

// SetData sets the grid. A ragged grid is logged and dropped.
func (ch *Contour) SetData(grid [][]float64) {
	ch.Grid = nil
	if _, _, err := data.Grid(grid); errors.Log(err) == nil {
		ch.Grid = grid
	}
	ch.MarkDirty()
}

// SetLevels fixes the traced levels; none restores even levels.
func (ch *Contour) SetLevels(levels ...float64) {
	ch.Levels = levels
	ch.MarkDirty()
}

func (ch *Contour) Clear() {
	ch.Grid, ch.Result = nil, nil
	ch.MarkDirty()
}

func (ch *Contour) Layout(rect math32.Box2) *geom.Drawing {
	return ch.layout(rect, ch.draw)
}

// trace runs the tracer with the levels of st.
func (ch *Contour) trace(st *Settings) *contour.Result {
	if ch.Levels != nil {
		return contour.Trace(ch.Grid, ch.Levels, st.Filled)
	}
	return contour.TraceN(ch.Grid, st.Levels, st.Filled)
}

func (ch *Contour) draw(d *geom.Drawing, st *Settings) {
	ch.Result = ch.trace(st)
	rows, cols := len(ch.Grid), 0
	if rows > 0 {
		cols = len(ch.Grid[0])
	}
	if rows < 2 || cols < 2 {
		return
	}
	area := ch.PlotArea
	sz := area.Size()
	cw, rh := sz.X/float32(cols-1), sz.Y/float32(rows-1)
	pt := func(p contour.Point) math32.Vector2 {
		return math32.Vec2(area.Min.X+float32(p.X)*cw, area.Min.Y+float32(p.Y)*rh)
	}
	cm := ch.colormap(st)
	for _, c := range ch.Result.Cells {
		x, y := area.Min.X+float32(c.Col)*cw, area.Min.Y+float32(c.Row)*rh
		d.Add(&geom.Rect{Box: math32.B2(x, y, x+cw, y+rh), Style: geom.Filled(cm.Sample(c.T))})
	}
	sty := geom.Stroked(st.Foreground, 1)
	for _, s := range ch.Result.Segments {
		d.Add(&geom.Line{From: pt(s.From), To: pt(s.To), Style: sty})
	}
}
