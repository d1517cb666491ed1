// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom defines the geometric draw descriptors produced by
// the chart layouts. A [Drawing] is an ordered list of items that a
// renderer paints first to last; nothing here touches pixels.
package geom

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Style has the paint properties of one item. A color with zero
// alpha is not painted.
type Style struct {
	// Stroke is the outline or line color.
	Stroke color.RGBA

	// Fill is the interior color of closed shapes.
	Fill color.RGBA

	// Width is the stroke width in pixels.
	Width float32

	// Dashed draws the stroke dashed (grid lines, web rings).
	Dashed bool
}

// Stroked returns a Style that strokes with given color and width.
func Stroked(c color.RGBA, width float32) Style {
	return Style{Stroke: c, Width: width}
}

// Filled returns a Style that fills with given color.
func Filled(c color.RGBA) Style {
	return Style{Fill: c}
}

// Item is one draw instruction.
type Item interface {
	// Bounds returns the bounding box of the item in pixels.
	Bounds() math32.Box2
}

// Line is a single straight segment.
type Line struct {
	From, To math32.Vector2
	Style    Style
}

func (ln *Line) Bounds() math32.Box2 {
	return pointsBounds(ln.From, ln.To)
}

// Polyline is an open sequence of connected segments.
type Polyline struct {
	Points []math32.Vector2
	Style  Style
}

func (pl *Polyline) Bounds() math32.Box2 {
	return pointsBounds(pl.Points...)
}

// Polygon is a closed shape.
type Polygon struct {
	Points []math32.Vector2
	Style  Style
}

func (pg *Polygon) Bounds() math32.Box2 {
	return pointsBounds(pg.Points...)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Box   math32.Box2
	Style Style
}

func (rc *Rect) Bounds() math32.Box2 {
	return rc.Box
}

// Arc is a circular sector, or an annular sector when Inner > 0.
// Angles are in screen radians: 0 points along +X and positive
// angles turn clockwise, since screen Y grows downward.
type Arc struct {
	Center       math32.Vector2
	Inner, Outer float32
	Start, End   float32
	Style        Style
}

func (ac *Arc) Bounds() math32.Box2 {
	return math32.B2(ac.Center.X-ac.Outer, ac.Center.Y-ac.Outer, ac.Center.X+ac.Outer, ac.Center.Y+ac.Outer)
}

// Circle is a marker or dot.
type Circle struct {
	Center math32.Vector2
	Radius float32
	Style  Style
}

func (ci *Circle) Bounds() math32.Box2 {
	return math32.B2(ci.Center.X-ci.Radius, ci.Center.Y-ci.Radius, ci.Center.X+ci.Radius, ci.Center.Y+ci.Radius)
}

// Aligns specifies the horizontal anchoring of a [Text].
type Aligns int32

const (
	// AlignStart anchors the text at its left edge.
	AlignStart Aligns = iota

	// AlignCenter anchors the text at its center.
	AlignCenter

	// AlignEnd anchors the text at its right edge.
	AlignEnd
)

// Text is a label anchored at Pos. Measuring and shaping the
// text is left to the renderer, so Bounds is just the anchor.
type Text struct {
	Pos   math32.Vector2
	Text  string
	Align Aligns
	Size  float32
	Color color.RGBA
}

func (tx *Text) Bounds() math32.Box2 {
	return math32.Box2{Min: tx.Pos, Max: tx.Pos}
}

// Drawing is the ordered output of a layout.
type Drawing struct {
	Items []Item
}

// Add appends items to the drawing.
func (d *Drawing) Add(items ...Item) {
	d.Items = append(d.Items, items...)
}

// Len returns the number of items.
func (d *Drawing) Len() int {
	return len(d.Items)
}

// Bounds returns the union of all item bounds.
func (d *Drawing) Bounds() math32.Box2 {
	bb := math32.B2Empty()
	for _, it := range d.Items {
		bb.ExpandByBox(it.Bounds())
	}
	return bb
}

func pointsBounds(pts ...math32.Vector2) math32.Box2 {
	bb := math32.B2Empty()
	for _, p := range pts {
		bb.ExpandByPoint(p)
	}
	return bb
}
