// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestPlotArea(t *testing.T) {
	m := Margins{Left: 10, Top: 20, Right: 30, Bottom: 40}
	pa := m.PlotArea(math32.B2(0, 0, 200, 100))
	assert.Equal(t, math32.B2(10, 20, 170, 60), pa)

	// margins larger than the host collapse to a point
	pa = m.PlotArea(math32.B2(0, 0, 20, 30))
	assert.Equal(t, pa.Min, pa.Max)
	assert.Equal(t, float32(0), Area(pa))
}

func TestScreenAngle(t *testing.T) {
	assert.InDelta(t, -math32.Pi/2, ScreenAngle(0), 1e-6)
	assert.InDelta(t, 0, ScreenAngle(90), 1e-6)
	assert.InDelta(t, math32.Pi/2, ScreenAngle(180), 1e-6)
}

func TestArcPolygon(t *testing.T) {
	ac := &Arc{Center: math32.Vec2(50, 50), Outer: 10, Start: 0, End: math32.Pi / 2}
	pts := ArcPolygon(ac, 4)
	assert.Len(t, pts, 6)
	assert.InDelta(t, 60, pts[0].X, 1e-4)
	assert.InDelta(t, 60, pts[4].Y, 1e-4)
	assert.Equal(t, ac.Center, pts[5])

	ac.Inner = 5
	pts = ArcPolygon(ac, 4)
	assert.Len(t, pts, 10)
	assert.InDelta(t, 55, pts[9].X, 1e-4)
}

func TestDrawingBounds(t *testing.T) {
	d := &Drawing{}
	d.Add(&Line{From: math32.Vec2(1, 2), To: math32.Vec2(5, 3)},
		&Circle{Center: math32.Vec2(10, 10), Radius: 2})
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, math32.B2(1, 2, 12, 12), d.Bounds())
}
