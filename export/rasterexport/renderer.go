// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rasterexport paints a [geom.Drawing] into an RGBA image
// with an antialiasing scanline rasterizer, and encodes the result.
package rasterexport

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/core/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// CircleSegments is the number of segments of circle polygons.
const CircleSegments = 32

// ArcSegments is the number of segments along each curved edge
// of an arc.
const ArcSegments = 64

// Dash is the on and off length of dashed strokes in pixels.
var Dash = [2]float32{4, 3}

// Renderer paints drawings into an image.
type Renderer struct {
	image *image.RGBA
	ras   *vector.Rasterizer
	face  font.Face
}

// New returns a renderer for a new image of the given size, or
// for img if it is non-nil.
func New(width, height int, img *image.RGBA) *Renderer {
	if img == nil {
		img = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	return &Renderer{image: img, ras: &vector.Rasterizer{}, face: basicfont.Face7x13}
}

// Image returns the target image.
func (rs *Renderer) Image() *image.RGBA { return rs.image }

// Render paints the items of d in order.
func (rs *Renderer) Render(d *geom.Drawing) {
	for _, it := range d.Items {
		switch x := it.(type) {
		case *geom.Line:
			rs.stroke([]math32.Vector2{x.From, x.To}, false, x.Style)
		case *geom.Polyline:
			rs.stroke(x.Points, false, x.Style)
		case *geom.Polygon:
			rs.fill(x.Points, x.Style.Fill)
			rs.stroke(x.Points, true, x.Style)
		case *geom.Rect:
			b := x.Box
			pts := []math32.Vector2{b.Min, {X: b.Max.X, Y: b.Min.Y}, b.Max, {X: b.Min.X, Y: b.Max.Y}}
			rs.fill(pts, x.Style.Fill)
			rs.stroke(pts, true, x.Style)
		case *geom.Circle:
			pts := circle(x.Center, x.Radius, CircleSegments)
			rs.fill(pts, x.Style.Fill)
			rs.stroke(pts, true, x.Style)
		case *geom.Arc:
			pts := geom.ArcPolygon(x, ArcSegments)
			rs.fill(pts, x.Style.Fill)
			rs.stroke(pts, true, x.Style)
		case *geom.Text:
			rs.text(x)
		}
	}
}

// Render returns the drawing painted into a new image of the given size.
func Render(d *geom.Drawing, width, height int) *image.RGBA {
	rs := New(width, height, nil)
	rs.Render(d)
	return rs.Image()
}

// begin resets the rasterizer to the image size.
func (rs *Renderer) begin() {
	sz := rs.image.Bounds().Size()
	rs.ras.Reset(sz.X, sz.Y)
	rs.ras.DrawOp = draw.Over
}

// paint draws the accumulated paths in c.
func (rs *Renderer) paint(c color.RGBA) {
	rs.ras.Draw(rs.image, rs.image.Bounds(), image.NewUniform(c), image.Point{})
}

func (rs *Renderer) addPath(pts []math32.Vector2) {
	if len(pts) < 3 {
		return
	}
	rs.ras.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		rs.ras.LineTo(p.X, p.Y)
	}
	rs.ras.ClosePath()
}

func (rs *Renderer) fill(pts []math32.Vector2, c color.RGBA) {
	if c.A == 0 || len(pts) < 3 {
		return
	}
	rs.begin()
	rs.addPath(pts)
	rs.paint(c)
}

// stroke outlines the points with quads per segment and a disc at
// each joint, all wound the same way so overlaps do not cancel.
func (rs *Renderer) stroke(pts []math32.Vector2, closed bool, s geom.Style) {
	if s.Width <= 0 || s.Stroke.A == 0 || len(pts) < 2 {
		return
	}
	if closed {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}
	segs := [][]math32.Vector2{pts}
	if s.Dashed {
		segs = dashes(pts, Dash)
	}
	hw := 0.5 * s.Width
	rs.begin()
	for _, sg := range segs {
		for i := 1; i < len(sg); i++ {
			rs.addPath(oriented(segmentQuad(sg[i-1], sg[i], hw)))
			if i > 1 && hw > 0.75 {
				rs.addPath(oriented(circle(sg[i-1], hw, 8)))
			}
		}
	}
	rs.paint(s.Stroke)
}

// segmentQuad returns the rectangle of width 2*hw around a to b.
func segmentQuad(a, b math32.Vector2, hw float32) []math32.Vector2 {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return []math32.Vector2{{X: a.X - hw, Y: a.Y - hw}, {X: a.X + hw, Y: a.Y - hw}, {X: a.X + hw, Y: a.Y + hw}, {X: a.X - hw, Y: a.Y + hw}}
	}
	n := math32.Vec2(-d.Y, d.X).MulScalar(hw / l)
	return []math32.Vector2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
}

// oriented returns pts with positive signed area.
func oriented(pts []math32.Vector2) []math32.Vector2 {
	var area float32
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	if area >= 0 {
		return pts
	}
	rv := make([]math32.Vector2, len(pts))
	for i, p := range pts {
		rv[len(pts)-1-i] = p
	}
	return rv
}

func circle(c math32.Vector2, r float32, n int) []math32.Vector2 {
	pts := make([]math32.Vector2, n)
	for i := range pts {
		pts[i] = geom.Polar(c, r, 2*math32.Pi*float32(i)/float32(n))
	}
	return pts
}

// dashes splits a polyline into the "on" runs of the dash pattern.
func dashes(pts []math32.Vector2, pat [2]float32) [][]math32.Vector2 {
	var out [][]math32.Vector2
	on := true
	left := pat[0]
	cur := []math32.Vector2{pts[0]}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		seg := b.Sub(a)
		l := seg.Length()
		pos := float32(0)
		for l-pos > left {
			pos += left
			p := a.Add(seg.MulScalar(pos / l))
			if on {
				out = append(out, append(cur, p))
			}
			cur = []math32.Vector2{p}
			on = !on
			if on {
				left = pat[0]
			} else {
				left = pat[1]
			}
		}
		left -= l - pos
		if on {
			cur = append(cur, b)
		} else {
			cur = []math32.Vector2{b}
		}
	}
	if on && len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}

// text draws a label with the fixed bitmap face; the text size is
// not scaled.
func (rs *Renderer) text(tx *geom.Text) {
	if tx.Color.A == 0 || tx.Text == "" {
		return
	}
	dr := &font.Drawer{Dst: rs.image, Src: image.NewUniform(tx.Color), Face: rs.face}
	w := dr.MeasureString(tx.Text)
	x := fixed.I(int(math32.Round(tx.Pos.X)))
	switch tx.Align {
	case geom.AlignCenter:
		x -= w / 2
	case geom.AlignEnd:
		x -= w
	}
	dr.Dot = fixed.Point26_6{X: x, Y: fixed.I(int(math32.Round(tx.Pos.Y)))}
	dr.DrawString(tx.Text)
}
