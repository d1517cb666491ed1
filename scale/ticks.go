// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"sort"
)

// TimeIntervals is the table of nice time tick intervals, in seconds.
var TimeIntervals = []float64{
	1, 5, 10, 30, // seconds
	60, 5 * 60, 10 * 60, 30 * 60, // minutes
	3600, 2 * 3600, 6 * 3600, 12 * 3600, // hours
	86400, 2 * 86400, 7 * 86400, // days, week
	30 * 86400, 90 * 86400, 365 * 86400, // month, quarter, year
}

// powTol is the relative tolerance used to keep powers of ten that
// sit right on a range bound.
const powTol = 1e-9

// Ticks returns tick values for the range [min, max], with about
// count ticks where the scale type uses a count. Inverted ranges
// are swapped. The result is in ascending order.
func (t Types) Ticks(min, max float64, count int) []float64 {
	if math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if min > max {
		min, max = max, min
	}
	if count < 1 {
		count = 1
	}
	switch t {
	case Log:
		return logTicks(min, max)
	case SymLog:
		return symLogTicks(min, max)
	case Time:
		return timeTicks(min, max, count)
	}
	return linearTicks(min, max, count)
}

func linearTicks(min, max float64, count int) []float64 {
	if math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	}
	if min == max {
		return []float64{min}
	}
	return talbotLinHanrahan(min, max, count, withinData)
}

// logTicks returns the powers of ten covering [min, max].
func logTicks(min, max float64) []float64 {
	if min <= 0 || max <= 0 {
		return nil
	}
	lo := int(math.Floor(math.Log10(min)))
	hi := int(math.Ceil(math.Log10(max)))
	var ticks []float64
	for e := lo; e <= hi; e++ {
		v := math.Pow10(e)
		if inRange(v, min, max) {
			ticks = append(ticks, v)
		}
	}
	return ticks
}

// symLogTicks returns negative powers of ten from the most significant
// down, zero when in range, then the positive powers of ten.
func symLogTicks(min, max float64) []float64 {
	var ticks []float64
	if min < 0 {
		hi := int(math.Ceil(math.Log10(-min)))
		for e := hi; e >= 0; e-- {
			v := -math.Pow10(e)
			if inRange(v, min, max) {
				ticks = append(ticks, v)
			}
		}
	}
	if min <= 0 && max >= 0 {
		ticks = append(ticks, 0)
	}
	if max > 0 {
		hi := int(math.Ceil(math.Log10(max)))
		for e := 0; e <= hi; e++ {
			v := math.Pow10(e)
			if inRange(v, min, max) {
				ticks = append(ticks, v)
			}
		}
	}
	return ticks
}

// timeTicks snaps to the smallest nice interval at least as large as
// the span divided by count, and emits all its multiples in range.
// Beyond the table, the interval is a whole number of years.
func timeTicks(min, max float64, count int) []float64 {
	if math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	}
	target := (max - min) / float64(count)
	var iv float64
	if i := sort.SearchFloat64s(TimeIntervals, target); i < len(TimeIntervals) {
		iv = TimeIntervals[i]
	} else {
		yr := TimeIntervals[len(TimeIntervals)-1]
		iv = yr * math.Ceil(target/yr)
	}
	lo, hi := math.Ceil(min/iv), math.Floor(max/iv)
	var ticks []float64
	for j := 0.0; j <= hi-lo; j++ {
		ticks = append(ticks, (lo+j)*iv)
	}
	return ticks
}

func inRange(v, min, max float64) bool {
	lo := min - powTol*math.Abs(min)
	hi := max + powTol*math.Abs(max)
	return v >= lo && v <= hi
}
