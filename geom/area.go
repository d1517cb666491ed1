// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"cogentcore.org/core/math32"
)

// Margins are the space reserved around a plot area for
// titles, tick labels and axis labels.
type Margins struct {
	Left, Top, Right, Bottom float32
}

// PlotArea returns the host rectangle minus the margins.
// It is computed fresh on every layout. When the margins do not fit,
// the area collapses to a zero-size box at the host center.
func (m Margins) PlotArea(host math32.Box2) math32.Box2 {
	pa := math32.B2(host.Min.X+m.Left, host.Min.Y+m.Top, host.Max.X-m.Right, host.Max.Y-m.Bottom)
	if pa.Max.X < pa.Min.X {
		c := 0.5 * (pa.Min.X + pa.Max.X)
		pa.Min.X, pa.Max.X = c, c
	}
	if pa.Max.Y < pa.Min.Y {
		c := 0.5 * (pa.Min.Y + pa.Max.Y)
		pa.Min.Y, pa.Max.Y = c, c
	}
	return pa
}

// ScreenAngle converts a dial angle in degrees, measured clockwise
// from 12 o'clock, into screen radians as used by [Arc].
func ScreenAngle(dialDeg float32) float32 {
	return math32.DegToRad(dialDeg - 90)
}

// Polar returns the point at given screen angle and radius from center.
func Polar(center math32.Vector2, radius, angle float32) math32.Vector2 {
	return math32.Vec2(center.X+radius*math32.Cos(angle), center.Y+radius*math32.Sin(angle))
}

// ArcPolygon approximates an arc as a closed polygon with the given
// number of segments along each curved edge. Renderers without native
// arc support use this.
func ArcPolygon(ac *Arc, segments int) []math32.Vector2 {
	if segments < 1 {
		segments = 1
	}
	sweep := ac.End - ac.Start
	pts := make([]math32.Vector2, 0, 2*(segments+1))
	for i := 0; i <= segments; i++ {
		a := ac.Start + sweep*float32(i)/float32(segments)
		pts = append(pts, Polar(ac.Center, ac.Outer, a))
	}
	if ac.Inner <= 0 {
		return append(pts, ac.Center)
	}
	for i := segments; i >= 0; i-- {
		a := ac.Start + sweep*float32(i)/float32(segments)
		pts = append(pts, Polar(ac.Center, ac.Inner, a))
	}
	return pts
}

// Area returns the area of a box, or 0 for an inverted box.
func Area(b math32.Box2) float32 {
	sz := b.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return 0
	}
	return sz.X * sz.Y
}
