// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"math"

	"cogentcore.org/chartgeom/data"
	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/core/math32"
)

// RadarMinMax is the floor for an automatic radar maximum.
const RadarMinMax = 1.0

// Radar is the laid out geometry of a radar chart.
type Radar struct {
	// Max is the value at the outer web ring.
	Max float64

	// Spokes are the axis ends, clockwise from 12 o'clock.
	Spokes []math32.Vector2

	// Angles are the screen angles of the spokes in radians.
	Angles []float32

	// Rings are the web polygons, innermost first.
	Rings [][]math32.Vector2

	// Polygons are the value outlines, one per series.
	Polygons [][]math32.Vector2
}

// RadarMax returns the largest finite value across the series,
// floored at [RadarMinMax].
func RadarMax(series []data.PolarSeries) float64 {
	mx := math.Inf(-1)
	for _, s := range series {
		for _, v := range s.Values {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				mx = math.Max(mx, v)
			}
		}
	}
	if mx <= 0 || math.IsInf(mx, -1) {
		return RadarMinMax
	}
	return mx
}

// RadarAngle returns the screen angle of axis i of n.
func RadarAngle(i, n int) float32 {
	return geom.ScreenAngle(360 * float32(i) / float32(n))
}

// LayoutRadar lays out n axes around center with the given number of
// web rings. Values are scaled by max, which is [RadarMax] when <= 0,
// and clamped to [0, max]. Missing values count as 0. Fewer than one
// axis gives nil.
func LayoutRadar(n int, series []data.PolarSeries, center math32.Vector2, radius float32, max float64, rings int) *Radar {
	if n < 1 {
		return nil
	}
	if !(max > 0) {
		max = RadarMax(series)
	}
	rd := &Radar{Max: max}
	rd.Angles = make([]float32, n)
	rd.Spokes = make([]math32.Vector2, n)
	for i := range n {
		rd.Angles[i] = RadarAngle(i, n)
		rd.Spokes[i] = geom.Polar(center, radius, rd.Angles[i])
	}
	for k := 1; k <= rings; k++ {
		r := radius * float32(k) / float32(rings)
		ring := make([]math32.Vector2, n)
		for i, a := range rd.Angles {
			ring[i] = geom.Polar(center, r, a)
		}
		rd.Rings = append(rd.Rings, ring)
	}
	for _, s := range series {
		pg := make([]math32.Vector2, n)
		for i, a := range rd.Angles {
			v := 0.0
			if i < len(s.Values) && !math.IsNaN(s.Values[i]) {
				v = math.Min(math.Max(s.Values[i], 0), max)
			}
			pg[i] = geom.Polar(center, radius*float32(v/max), a)
		}
		rd.Polygons = append(rd.Polygons, pg)
	}
	return rd
}
