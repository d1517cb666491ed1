// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contour

import "math"

// edges of a cell, between the corners named in the comments.
// Corners are 0 = top-left, 1 = top-right, 2 = bottom-right,
// 3 = bottom-left.
type edge int

const (
	top    edge = iota // 0-1
	right              // 1-2
	bottom             // 2-3
	left               // 3-0
)

// caseEdges is the marching-squares edge table: for each 4-bit case
// code the pairs of edges joined by a segment. Codes 0 and 15 have no
// crossing. The saddles 5 and 10 always use the pairing listed here.
var caseEdges = [16][][2]edge{
	1:  {{left, bottom}},
	2:  {{bottom, right}},
	3:  {{left, right}},
	4:  {{top, right}},
	5:  {{left, top}, {bottom, right}},
	6:  {{top, bottom}},
	7:  {{left, top}},
	8:  {{left, top}},
	9:  {{top, bottom}},
	10: {{top, right}, {left, bottom}},
	11: {{top, right}},
	12: {{left, right}},
	13: {{bottom, right}},
	14: {{left, bottom}},
}

// CaseCode returns the 4-bit marching-squares code for corner values
// tl, tr, br, bl: bit 3 is top-left and bit 0 is bottom-left, and a
// bit is set when the corner is >= level.
func CaseCode(tl, tr, br, bl, level float64) int {
	code := 0
	if tl >= level {
		code |= 8
	}
	if tr >= level {
		code |= 4
	}
	if br >= level {
		code |= 2
	}
	if bl >= level {
		code |= 1
	}
	return code
}

// crossing returns the fraction along the edge from a to b at which
// the level is crossed, or 0.5 for a flat edge.
func crossing(a, b, level float64) float64 {
	if math.Abs(b-a) < flatEdge {
		return 0.5
	}
	return (level - a) / (b - a)
}

func traceCell(segs []Segment, grid [][]float64, r, c int, level float64) []Segment {
	v := [4]float64{grid[r][c], grid[r][c+1], grid[r+1][c+1], grid[r+1][c]}
	code := CaseCode(v[0], v[1], v[2], v[3], level)
	pairs := caseEdges[code]
	if len(pairs) == 0 {
		return segs
	}
	x, y := float64(c), float64(r)
	point := func(e edge) Point {
		switch e {
		case top:
			return Point{x + crossing(v[0], v[1], level), y}
		case right:
			return Point{x + 1, y + crossing(v[1], v[2], level)}
		case bottom:
			return Point{x + 1 - crossing(v[2], v[3], level), y + 1}
		}
		return Point{x, y + 1 - crossing(v[3], v[0], level)}
	}
	for _, p := range pairs {
		segs = append(segs, Segment{Level: level, From: point(p[0]), To: point(p[1])})
	}
	return segs
}
