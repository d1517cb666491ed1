// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj3d

import (
	"cmp"
	"slices"

	"cogentcore.org/chartgeom/data"
	"cogentcore.org/core/math32/minmax"
)

// Padding is the fraction of its span added to each end of an
// automatic axis range.
const Padding = 0.1

// Normalizer maps one data axis into [-1, 1].
type Normalizer struct {
	Range minmax.F64
}

// NewNormalizer returns a normalizer over the finite values, padded by
// [Padding]. A zero span is floored to 1 and no data gives [0, 1].
func NewNormalizer(vals []float64) Normalizer {
	rng := data.NewRange()
	data.Range(vals, &rng)
	switch {
	case !rng.IsValid():
		rng.Set(0, 1)
	case rng.Range() == 0:
		m := rng.Min
		rng.Set(m-0.5, m+0.5)
	}
	data.PadRange(&rng, Padding)
	return Normalizer{Range: rng}
}

// Norm returns v in [-1, 1] for values within the range.
func (n Normalizer) Norm(v float64) float64 {
	return 2*(v-n.Range.Min)/n.Range.Range() - 1
}

// Normalizers holds the normalizers of the three axes.
type Normalizers struct {
	X, Y, Z Normalizer
}

// NewNormalizers returns normalizers over the points.
func NewNormalizers(pts []data.Point3D) Normalizers {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	zs := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}
	return Normalizers{X: NewNormalizer(xs), Y: NewNormalizer(ys), Z: NewNormalizer(zs)}
}

// Norm returns the normalized point.
func (ns *Normalizers) Norm(x, y, z float64) Vec3 {
	return Vec3{ns.X.Norm(x), ns.Y.Norm(y), ns.Z.Norm(z)}
}

// Projected is a point after normalization and projection.
type Projected struct {
	// Index of the point in the input.
	Index int

	// X and Y are the projected screen position, with y up.
	X, Y float64

	Depth float64
}

// DepthOrder normalizes and projects the points and returns them
// farthest first. Points at equal depth keep their input order.
func DepthOrder(pts []data.Point3D, ns *Normalizers, v *View3D) []Projected {
	ps := make([]Projected, len(pts))
	for i, p := range pts {
		n := ns.Norm(p.X, p.Y, p.Z)
		sx, sy := v.Project(n.X, n.Y, n.Z)
		ps[i] = Projected{Index: i, X: sx, Y: sy, Depth: v.Depth(n.X, n.Y, n.Z)}
	}
	slices.SortStableFunc(ps, func(a, b Projected) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	return ps
}

// Quad is one projected surface cell.
type Quad struct {
	// Row and Col are the top-left corner of the cell in the grid.
	Row, Col int

	// Corners are the projected corners, in grid order (r,c),
	// (r,c+1), (r+1,c+1), (r+1,c), with y up.
	Corners [4][2]float64

	// Value is the average of the corner values.
	Value float64

	// Depth is the average depth of the corners.
	Depth float64
}

// SurfaceQuads projects the cells of grid[row][col] as a surface with
// x the column, y the row and z the value, and returns them farthest
// first. The returned normalizers map the grid into the cube.
func SurfaceQuads(grid [][]float64, v *View3D) ([]Quad, Normalizers) {
	rows, cols, err := data.Grid(grid)
	if err != nil {
		panic("proj3d: " + err.Error())
	}
	var ns Normalizers
	ns.X = NewNormalizer([]float64{0, float64(max(cols-1, 0))})
	ns.Y = NewNormalizer([]float64{0, float64(max(rows-1, 0))})
	var zs []float64
	for _, row := range grid {
		zs = append(zs, row...)
	}
	ns.Z = NewNormalizer(zs)
	if rows < 2 || cols < 2 {
		return nil, ns
	}
	qs := make([]Quad, 0, (rows-1)*(cols-1))
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			q := Quad{Row: r, Col: c}
			corners := [4][2]int{{r, c}, {r, c + 1}, {r + 1, c + 1}, {r + 1, c}}
			for i, rc := range corners {
				val := grid[rc[0]][rc[1]]
				n := ns.Norm(float64(rc[1]), float64(rc[0]), val)
				q.Corners[i][0], q.Corners[i][1] = v.Project(n.X, n.Y, n.Z)
				q.Depth += v.Depth(n.X, n.Y, n.Z) / 4
				q.Value += val / 4
			}
			qs = append(qs, q)
		}
	}
	slices.SortStableFunc(qs, func(a, b Quad) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	return qs, ns
}
