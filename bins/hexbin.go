// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bins

import (
	"cmp"
	"math"
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

// XY is one input point for hexagonal binning.
type XY struct {
	X, Y float64
}

// Cube is a hexagonal grid cell in cube coordinates, with Q+R+S == 0.
type Cube struct {
	Q, R, S int
}

// Distance returns the hex distance of the cell from the origin cell,
// max(|q|, |r|, |s|).
func (c Cube) Distance() int {
	return max(abs(c.Q), abs(c.R), abs(c.S))
}

// HexBin is one cell of a hexagonal binning.
type HexBin struct {
	Cube

	// Count is the number of points assigned to the cell.
	Count int

	// Ring is the distance from the origin cell, used for
	// radial color shading.
	Ring int

	// Center is the pixel-space center of the cell.
	Center math32.Vector2
}

// minNormRange is the floor for a dataset range during normalization.
const minNormRange = 1.0

var sqrt3 = math.Sqrt(3)

// HexRings returns the number of rings of hexagons of the given
// radius that fit in the rect: floor((min(w,h)/2) / (radius*1.5)).
func HexRings(rect math32.Box2, radius float32) int {
	sz := rect.Size()
	half := float64(min(sz.X, sz.Y)) / 2
	if half <= 0 || radius <= 0 {
		return 0
	}
	return int(math.Floor(half / (float64(radius) * 1.5)))
}

// CubeRound rounds fractional cube coordinates to the nearest cell.
// The axis with the largest rounding error is recomputed from the
// other two so that Q+R+S stays 0.
func CubeRound(fq, fr float64) Cube {
	fs := -fq - fr
	q := math.Round(fq)
	r := math.Round(fr)
	s := math.Round(fs)
	dq := math.Abs(q - fq)
	dr := math.Abs(r - fr)
	ds := math.Abs(s - fs)
	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	default:
		s = -q - r
	}
	return Cube{int(q), int(r), int(s)}
}

// PixelToCube converts a pixel offset from the grid origin to the
// nearest pointy-top cell for hexagons of given radius.
func PixelToCube(px, py, radius float64) Cube {
	fq := (px*sqrt3/3 - py/3) / radius
	fr := (py * 2 / 3) / radius
	return CubeRound(fq, fr)
}

// CubeToPixel returns the pixel offset of the cell center from the
// grid origin.
func CubeToPixel(c Cube, radius float64) (float64, float64) {
	x := radius * (sqrt3*float64(c.Q) + sqrt3/2*float64(c.R))
	y := radius * 1.5 * float64(c.R)
	return x, y
}

// CalculateHexBins assigns the points of all datasets to a full
// hexagonal grid centered in rect, returning the cells and the
// largest ring. Each dataset is normalized by its own range into a
// square of side min(width, height). Points that round to a cell
// beyond the generated rings extend the grid, so every finite point
// is counted exactly once.
func CalculateHexBins(datasets [][]XY, rect math32.Box2, radius float32) ([]HexBin, int) {
	if radius <= 0 {
		radius = 1
	}
	rad := float64(radius)
	sz := rect.Size()
	size := float64(min(sz.X, sz.Y))
	if size <= 0 {
		return nil, 0
	}
	center := rect.Center()
	rings := HexRings(rect, radius)

	index := make(map[Cube]int)
	var hbs []HexBin
	add := func(c Cube) int {
		if i, ok := index[c]; ok {
			return i
		}
		x, y := CubeToPixel(c, rad)
		hbs = append(hbs, HexBin{Cube: c, Ring: c.Distance(),
			Center: math32.Vec2(center.X+float32(x), center.Y+float32(y))})
		index[c] = len(hbs) - 1
		return len(hbs) - 1
	}
	for q := -rings; q <= rings; q++ {
		for r := max(-rings, -q-rings); r <= min(rings, -q+rings); r++ {
			add(Cube{q, r, -q - r})
		}
	}

	for _, pts := range datasets {
		xr, yr := pointRanges(pts)
		for _, p := range pts {
			if !isFinite(p.X) || !isFinite(p.Y) {
				continue
			}
			px := ((p.X-xr.Min)/xr.Range() - 0.5) * size
			py := (0.5 - (p.Y-yr.Min)/yr.Range()) * size
			i := add(PixelToCube(px, py, rad))
			hbs[i].Count++
		}
	}

	slices.SortFunc(hbs, func(a, b HexBin) int {
		return cmp.Or(cmp.Compare(a.Ring, b.Ring), cmp.Compare(a.Q, b.Q), cmp.Compare(a.R, b.R))
	})
	maxRing := 0
	for _, hb := range hbs {
		maxRing = max(maxRing, hb.Ring)
	}
	return hbs, maxRing
}

// pointRanges returns the x and y ranges of the finite points, with
// each range floored at [minNormRange].
func pointRanges(pts []XY) (xr, yr minmax.F64) {
	xr.SetInfinity()
	yr.SetInfinity()
	for _, p := range pts {
		if !isFinite(p.X) || !isFinite(p.Y) {
			continue
		}
		xr.FitValInRange(p.X)
		yr.FitValInRange(p.Y)
	}
	floorRange(&xr)
	floorRange(&yr)
	return
}

func floorRange(r *minmax.F64) {
	if !r.IsValid() {
		r.Set(0, minNormRange)
		return
	}
	if r.Range() < minNormRange {
		r.Max = r.Min + minNormRange
	}
}

// HexCorners returns the six corners of a pointy-top hexagon.
func HexCorners(center math32.Vector2, radius float32) [6]math32.Vector2 {
	var pts [6]math32.Vector2
	for i := range pts {
		a := math32.DegToRad(float32(60*i - 30))
		pts[i] = math32.Vec2(center.X+radius*math32.Cos(a), center.Y+radius*math32.Sin(a))
	}
	return pts
}

// RingT returns the smoothstep-eased position of a ring in the radial
// color gradient: t*t*(3-2t) with t = ring/maxRing.
func RingT(ring, maxRing int) float64 {
	if maxRing <= 0 {
		return 0
	}
	t := min(max(float64(ring)/float64(maxRing), 0), 1)
	return t * t * (3 - 2*t)
}

// TotalCount returns the sum of the cell counts.
func TotalCount(hbs []HexBin) int {
	n := 0
	for _, hb := range hbs {
		n += hb.Count
	}
	return n
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
