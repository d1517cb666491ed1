// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contour

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constGrid(rows, cols int, c float64) [][]float64 {
	g := make([][]float64, rows)
	for r := range g {
		g[r] = make([]float64, cols)
		for i := range g[r] {
			g[r][i] = c
		}
	}
	return g
}

func TestConstantGrid(t *testing.T) {
	g := constGrid(5, 6, 3)
	for _, lv := range []float64{-1, 2.999, 3.001, 100} {
		res := Trace(g, []float64{lv}, false)
		assert.Empty(t, res.Segments, "level %v", lv)
	}
	res := TraceN(g, 4, true)
	assert.Empty(t, res.Levels)
	assert.Empty(t, res.Segments)
	require.Len(t, res.Cells, 4*5)
	for _, c := range res.Cells {
		assert.Equal(t, 3.0, c.Value)
		assert.Equal(t, 0.0, c.T)
		assert.False(t, math.IsNaN(c.T))
	}
}

func TestSingleCorner(t *testing.T) {
	g := [][]float64{{1, 0}, {0, 0}}
	res := Trace(g, []float64{0.5}, false)
	require.Len(t, res.Segments, 1)
	want := Segment{Level: 0.5, From: Point{0, 0.5}, To: Point{0.5, 0}}
	assert.Equal(t, want, res.Segments[0])
	assert.Equal(t, 8, CaseCode(1, 0, 0, 0, 0.5))
}

func TestSaddles(t *testing.T) {
	g := [][]float64{{1, 0}, {0, 1}}
	res := Trace(g, []float64{0.5}, false)
	require.Len(t, res.Segments, 2)
	assert.Equal(t, Point{0.5, 0}, res.Segments[0].From)
	assert.Equal(t, Point{1, 0.5}, res.Segments[0].To)
	assert.Equal(t, Point{0, 0.5}, res.Segments[1].From)
	assert.Equal(t, Point{0.5, 1}, res.Segments[1].To)

	g = [][]float64{{0, 1}, {1, 0}}
	res = Trace(g, []float64{0.5}, false)
	assert.Equal(t, 5, CaseCode(0, 1, 0, 1, 0.5))
	require.Len(t, res.Segments, 2)
	assert.Equal(t, Point{0, 0.5}, res.Segments[0].From)
	assert.Equal(t, Point{0.5, 0}, res.Segments[0].To)
}

func TestCaseTable(t *testing.T) {
	for code := 0; code < 16; code++ {
		n := len(caseEdges[code])
		switch code {
		case 0, 15:
			assert.Equal(t, 0, n)
		case 5, 10:
			assert.Equal(t, 2, n)
		default:
			assert.Equal(t, 1, n)
		}
	}
}

func TestFlatEdge(t *testing.T) {
	assert.Equal(t, 0.5, crossing(2, 2, 2))
	assert.Equal(t, 0.25, crossing(0, 4, 1))
}

func TestFilledCells(t *testing.T) {
	g := [][]float64{{0, 1, 2}, {1, 2, 3}, {2, 3, 4}}
	res := Trace(g, nil, true)
	require.Len(t, res.Cells, 4)
	assert.Equal(t, Cell{Col: 0, Row: 0, Value: 1, T: 0.25}, res.Cells[0])
	assert.Equal(t, Cell{Col: 1, Row: 1, Value: 3, T: 0.75}, res.Cells[3])
	assert.Equal(t, 0.0, res.Range.Min)
	assert.Equal(t, 4.0, res.Range.Max)
}

func TestEvenLevels(t *testing.T) {
	if d := cmp.Diff([]float64{1, 2, 3}, EvenLevels(0, 4, 3), cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("EvenLevels mismatch (-want +got):\n%s", d)
	}
	assert.Nil(t, EvenLevels(1, 1, 3))
	assert.Nil(t, EvenLevels(0, 1, 0))
}

func TestSegmentsOnLevel(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	rows, cols := 12, 15
	g := make([][]float64, rows)
	for r := range g {
		g[r] = make([]float64, cols)
		for c := range g[r] {
			g[r][c] = math.Sin(float64(c)/3)*math.Cos(float64(r)/4) + 0.1*rnd.Float64()
		}
	}
	res := TraceN(g, 5, false)
	require.Len(t, res.Levels, 5)
	require.NotEmpty(t, res.Segments)
	// bilinear interpolation is linear along cell edges, so every
	// segment endpoint evaluates to its level
	at := func(p Point) float64 {
		c0, r0 := math.Floor(p.X), math.Floor(p.Y)
		fx, fy := p.X-c0, p.Y-r0
		c, r := int(c0), int(r0)
		if c == cols-1 {
			c, fx = c-1, 1
		}
		if r == rows-1 {
			r, fy = r-1, 1
		}
		top := g[r][c]*(1-fx) + g[r][c+1]*fx
		bot := g[r+1][c]*(1-fx) + g[r+1][c+1]*fx
		return top*(1-fy) + bot*fy
	}
	for _, s := range res.Segments {
		assert.InDelta(t, s.Level, at(s.From), 1e-9)
		assert.InDelta(t, s.Level, at(s.To), 1e-9)
	}
}

func TestDegenerateGrids(t *testing.T) {
	assert.Empty(t, Trace(nil, []float64{1}, true).Segments)
	assert.Empty(t, Trace([][]float64{{1, 2, 3}}, []float64{1.5}, true).Cells)
	assert.Panics(t, func() {
		Trace([][]float64{{1, 2}, {3}}, []float64{1.5}, false)
	})
}
