// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	mscale "github.com/aclements/go-moremath/scale"
)

// Axis maps data values of one axis onto a pixel span through
// its scale [Types] transform.
type Axis struct {
	// Type is the scale type.
	Type Types

	// Min and Max are the data range of the axis.
	Min, Max float64
}

// minSpan is the floor for a transformed axis span.
const minSpan = 1e-10

// span returns the transformed min and the floored transformed span.
func (ax *Axis) span() (float64, float64) {
	tmin := ax.Type.Transform(ax.Min)
	tmax := ax.Type.Transform(ax.Max)
	if math.IsInf(tmin, -1) {
		// log axis starting at or below zero: anchor at one decade below max
		tmin = tmax - 1
	}
	s := tmax - tmin
	if math.Abs(s) < minSpan {
		s = minSpan
	}
	return tmin, s
}

// Norm returns the normalized 0-1 position of v along the axis.
// Values outside the range give positions outside 0-1.
func (ax *Axis) Norm(v float64) float64 {
	tmin, s := ax.span()
	return (ax.Type.Transform(v) - tmin) / s
}

// Denorm is the inverse of [Axis.Norm].
func (ax *Axis) Denorm(n float64) float64 {
	tmin, s := ax.span()
	return ax.Type.Inverse(tmin + n*s)
}

// PX returns the pixel position of v between lo and hi.
// Pass hi < lo for a vertical axis whose pixels grow downward.
func (ax *Axis) PX(v float64, lo, hi float32) float32 {
	return lo + float32(ax.Norm(v))*(hi-lo)
}

// Ticks returns about count ticks within the axis range.
func (ax *Axis) Ticks(count int) []float64 {
	return ax.Type.Ticks(ax.Min, ax.Max, count)
}

// levelStep returns the tick step for a 1-2-5 level: levels 0, 1, 2
// are 1, 2, 5 and every three levels is one decade.
func levelStep(level int) float64 {
	q := []float64{1, 2, 5}
	d := level / 3
	m := level % 3
	if m < 0 {
		m += 3
		d--
	}
	return q[m] * math.Pow10(d)
}

// LevelTicks returns the densest 1-2-5 sequence of ticks within
// [min, max] that has at most maxTicks values.
func LevelTicks(min, max float64, maxTicks int) []float64 {
	if min > max {
		min, max = max, min
	}
	if maxTicks < 1 || math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	}
	if min == max {
		return []float64{min}
	}
	lt := levelTicker{min: min, max: max}
	guess := 3 * int(math.Floor(math.Log10((max-min)/float64(maxTicks))))
	opts := mscale.TickOptions{Max: maxTicks, MinLevel: guess - 30, MaxLevel: guess + 30}
	level, ok := opts.FindLevel(lt, guess)
	if !ok {
		return nil
	}
	return lt.ticks(level)
}

// levelTicker is the [mscale.Ticker] of 1-2-5 levels over [min, max].
type levelTicker struct {
	min, max float64
}

func (lt levelTicker) CountTicks(level int) int {
	st := levelStep(level)
	return int(math.Floor(lt.max/st)-math.Ceil(lt.min/st)) + 1
}

func (lt levelTicker) TicksAtLevel(level int) interface{} {
	return lt.ticks(level)
}

func (lt levelTicker) ticks(level int) []float64 {
	st := levelStep(level)
	lo := math.Ceil(lt.min / st)
	hi := math.Floor(lt.max / st)
	var tk []float64
	for k := lo; k <= hi; k++ {
		tk = append(tk, k*st)
	}
	return tk
}
