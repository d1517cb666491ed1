// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contour extracts iso-value contour segments from a scalar
// grid with marching squares, and optionally the per-cell shading
// of a filled contour plot.
//
// Coordinates in the output are in grid space: X is the column and
// Y is the row, so corner (col, row) of the grid is the point (col, row).
package contour

import (
	"math"

	"cogentcore.org/chartgeom/data"
	"cogentcore.org/core/math32/minmax"
	"github.com/aclements/go-moremath/vec"
)

// MinRange is the floor applied to the value range of the grid.
const MinRange = 1e-10

// flatEdge is the corner difference below which the edge crossing
// falls back to the edge midpoint.
const flatEdge = 1e-10

// Point is a position in grid coordinates.
type Point struct {
	X, Y float64
}

// Segment is one iso-line segment at Level.
type Segment struct {
	Level    float64
	From, To Point
}

// Cell is the shading of one grid cell for a filled plot.
type Cell struct {
	// Col and Row are the top-left corner of the cell.
	Col, Row int

	// Value is the average of the four corner values.
	Value float64

	// T is Value normalized into the grid range, for colormap sampling.
	T float64
}

// Result is the output of a trace.
type Result struct {
	// Range is the global min and max of the grid values.
	Range minmax.F64

	// Levels are the iso-levels that were traced.
	Levels []float64

	// Cells are the filled cell shadings, empty unless filled.
	Cells []Cell

	// Segments are the iso-line segments for all levels.
	Segments []Segment
}

// GridRange returns the global min and max of the grid, ignoring NaN.
func GridRange(grid [][]float64) minmax.F64 {
	var rng minmax.F64
	rng.SetInfinity()
	for _, row := range grid {
		for _, v := range row {
			if !math.IsNaN(v) {
				rng.FitValInRange(v)
			}
		}
	}
	return rng
}

// EvenLevels returns n levels evenly spaced strictly between min and max.
func EvenLevels(min, max float64, n int) []float64 {
	if n < 1 || !(max > min) {
		return nil
	}
	ls := vec.Linspace(min, max, n+2)
	return ls[1 : n+1]
}

// TraceN traces n evenly spaced levels strictly between the grid
// min and max. A flat grid has no levels to trace.
func TraceN(grid [][]float64, n int, filled bool) *Result {
	rng := GridRange(grid)
	return Trace(grid, EvenLevels(rng.Min, rng.Max, n), filled)
}

// Trace runs marching squares over the grid for the given levels.
// The grid is indexed grid[row][col] and must be rectangular; a ragged
// grid panics. Grids with fewer than two rows or columns give an
// empty result.
func Trace(grid [][]float64, levels []float64, filled bool) *Result {
	res := &Result{Levels: levels}
	rows, cols := checkGrid(grid)
	if rows < 2 || cols < 2 {
		return res
	}
	res.Range = GridRange(grid)
	rng := math.Max(res.Range.Range(), MinRange)

	if filled {
		res.Cells = make([]Cell, 0, (rows-1)*(cols-1))
		for r := 0; r < rows-1; r++ {
			for c := 0; c < cols-1; c++ {
				avg := (grid[r][c] + grid[r][c+1] + grid[r+1][c+1] + grid[r+1][c]) / 4
				res.Cells = append(res.Cells, Cell{Col: c, Row: r, Value: avg, T: (avg - res.Range.Min) / rng})
			}
		}
	}

	for _, level := range levels {
		for r := 0; r < rows-1; r++ {
			for c := 0; c < cols-1; c++ {
				res.Segments = traceCell(res.Segments, grid, r, c, level)
			}
		}
	}
	return res
}

// checkGrid returns the grid dimensions, panicking on a ragged grid.
func checkGrid(grid [][]float64) (rows, cols int) {
	rows, cols, err := data.Grid(grid)
	if err != nil {
		panic("contour: " + err.Error())
	}
	return rows, cols
}
