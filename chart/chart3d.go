// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cogentcore.org/chartgeom/data"
	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/chartgeom/proj3d"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// View holds the orbit view shared by the 3D charts.
type View struct {
	// View3D is the current view.
	View3D *proj3d.View3D
}

// Orbit returns the view, creating the default one on first use.
func (v *View) Orbit() *proj3d.View3D {
	if v.View3D == nil {
		v.View3D = proj3d.NewView3D()
	}
	return v.View3D
}

// drawCube adds the edges of the normalized cube.
func drawCube(d *geom.Drawing, st *Settings, v *proj3d.View3D, area math32.Box2) {
	sty := geom.Stroked(st.Grid, 1)
	for _, e := range proj3d.CubeEdges() {
		ax, ay := v.Project(e[0].X, e[0].Y, e[0].Z)
		bx, by := v.Project(e[1].X, e[1].Y, e[1].Z)
		d.Add(&geom.Line{From: proj3d.ToScreen(ax, ay, area), To: proj3d.ToScreen(bx, by, area), Style: sty})
	}
}

// Scatter3D is a 3D scatter chart drawn back to front.
type Scatter3D struct {
	Base
	View

	// Points are the plotted points.
	Points []data.Point3D

	// Order is the depth order of the last layout, farthest first.
	Order []proj3d.Projected
}

// NewScatter3D returns a new 3D scatter chart of the points.
func NewScatter3D(points ...data.Point3D) *Scatter3D {
	ch := &Scatter3D{}
	ch.Defaults()
	ch.SetData(points...)
	return ch
}

// SetData sets the points.
func (ch *Scatter3D) SetData(points ...data.Point3D) {
	ch.Points = points
	ch.MarkDirty()
}

// SetXYZ sets the points from coordinate arrays, truncated to the
// shortest one.
func (ch *Scatter3D) SetXYZ(x, y, z []float64) {
	ch.SetData(data.Points3D(x, y, z)...)
}

// Rotate orbits the view by the given degrees.
func (ch *Scatter3D) Rotate(dAzimuth, dElevation float64) {
	ch.Orbit().Rotate(dAzimuth, dElevation)
	ch.MarkDirty()
}

// Zoom multiplies the view distance by factor.
func (ch *Scatter3D) Zoom(factor float64) {
	ch.Orbit().Zoom(factor)
	ch.MarkDirty()
}

func (ch *Scatter3D) Clear() {
	ch.Points, ch.Order = nil, nil
	ch.MarkDirty()
}

func (ch *Scatter3D) Layout(rect math32.Box2) *geom.Drawing {
	return ch.layout(rect, ch.draw)
}

func (ch *Scatter3D) draw(d *geom.Drawing, st *Settings) {
	area := ch.PlotArea
	v := ch.Orbit()
	drawCube(d, st, v, area)
	ns := proj3d.NewNormalizers(ch.Points)
	ch.Order = proj3d.DepthOrder(ch.Points, &ns, v)
	cm := ch.colormap(st)
	for _, pp := range ch.Order {
		p := &ch.Points[pp.Index]
		clr := cm.Sample(0.5 * (ns.Z.Norm(p.Z) + 1))
		if p.Color != nil {
			clr = *p.Color
		}
		size := max(st.MarkerSize, 1)
		if p.Size != nil {
			size = *p.Size
		}
		d.Add(&geom.Circle{Center: proj3d.ToScreen(pp.X, pp.Y, area), Radius: size, Style: geom.Style{Fill: clr, Stroke: st.Background, Width: 0.5}})
	}
}

// Surface3D is a 3D surface chart of grid[row][col], with the
// column along x, the row along y and the value along z.
type Surface3D struct {
	Base
	View

	// Grid is the surface height field.
	Grid [][]float64

	// Quads are the projected cells of the last layout, farthest first.
	Quads []proj3d.Quad
}

// NewSurface3D returns a new surface chart of the grid.
func NewSurface3D(grid [][]float64) *Surface3D {
	ch := &Surface3D{}
	ch.Defaults()
	ch.SetData(grid)
	return ch
}

// SetData sets the grid. A ragged grid is logged and dropped.
func (ch *Surface3D) SetData(grid [][]float64) {
	ch.Grid = nil
	if _, _, err := data.Grid(grid); errors.Log(err) == nil {
		ch.Grid = grid
	}
	ch.MarkDirty()
}

// Rotate orbits the view by the given degrees.
func (ch *Surface3D) Rotate(dAzimuth, dElevation float64) {
	ch.Orbit().Rotate(dAzimuth, dElevation)
	ch.MarkDirty()
}

// Zoom multiplies the view distance by factor.
func (ch *Surface3D) Zoom(factor float64) {
	ch.Orbit().Zoom(factor)
	ch.MarkDirty()
}

func (ch *Surface3D) Clear() {
	ch.Grid, ch.Quads = nil, nil
	ch.MarkDirty()
}

func (ch *Surface3D) Layout(rect math32.Box2) *geom.Drawing {
	return ch.layout(rect, ch.draw)
}

func (ch *Surface3D) draw(d *geom.Drawing, st *Settings) {
	area := ch.PlotArea
	v := ch.Orbit()
	drawCube(d, st, v, area)
	var ns proj3d.Normalizers
	ch.Quads, ns = proj3d.SurfaceQuads(ch.Grid, v)
	cm := ch.colormap(st)
	for _, q := range ch.Quads {
		pts := make([]math32.Vector2, 4)
		for i, c := range q.Corners {
			pts[i] = proj3d.ToScreen(c[0], c[1], area)
		}
		clr := cm.Sample(0.5 * (ns.Z.Norm(q.Value) + 1))
		d.Add(&geom.Polygon{Points: pts, Style: geom.Style{Fill: clr, Stroke: st.Foreground, Width: 0.5}})
	}
}
