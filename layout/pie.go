// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"cogentcore.org/chartgeom/data"
	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/core/math32"
)

// PieStart is the screen angle of the first wedge edge: 12 o'clock.
const PieStart = -math32.Pi / 2

// Wedge is a placed pie slice.
type Wedge struct {
	// Index of the slice in the input.
	Index int

	// Fraction of the total held by the slice.
	Fraction float64

	// Arc is the wedge shape, with screen angles in radians.
	Arc geom.Arc

	// Mid is the screen angle halfway through the wedge.
	Mid float32

	// LabelPos is the anchor for the slice label, at Mid halfway
	// between the inner and outer radius.
	LabelPos math32.Vector2
}

// Pie lays out the slices as wedges starting at 12 o'clock and
// proceeding clockwise, each sweeping its share of the full turn.
// An inner radius > 0 gives a donut. Negative and non-finite slice
// values count as zero, and a zero total gives nil.
func Pie(slices []data.PieSlice, center math32.Vector2, outer, inner float32) []Wedge {
	total := 0.0
	for _, sl := range slices {
		total += data.Weight(sl.Value)
	}
	if total <= 0 {
		return nil
	}
	inner = math32.Clamp(inner, 0, outer)
	labelR := 0.5 * (inner + outer)
	if inner == 0 {
		labelR = 0.6 * outer
	}
	ws := make([]Wedge, 0, len(slices))
	start := float32(PieStart)
	for i, sl := range slices {
		frac := data.Weight(sl.Value) / total
		end := start + float32(frac)*2*math32.Pi
		mid := 0.5 * (start + end)
		ws = append(ws, Wedge{
			Index:    i,
			Fraction: frac,
			Arc:      geom.Arc{Center: center, Inner: inner, Outer: outer, Start: start, End: end},
			Mid:      mid,
			LabelPos: geom.Polar(center, labelR, mid),
		})
		start = end
	}
	return ws
}
