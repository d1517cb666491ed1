// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package data has the typed input records consumed by the chart
// geometry algorithms: series, candles, pie slices, treemap nodes,
// 3D points and polar series.
package data

import (
	"math"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32/minmax"
)

var (
	ErrInfinity = errors.New("data: infinite data point")
	ErrNoData   = errors.New("data: no data points")
	ErrLength   = errors.New("data: mismatched lengths")
	ErrCandle   = errors.New("data: candle violates low <= open,close <= high")
)

// CheckFloats returns an error if any of the arguments are Infinity,
// or if there are no non-NaN values.
func CheckFloats(fs ...float64) error {
	n := 0
	for _, f := range fs {
		switch {
		case math.IsNaN(f):
		case math.IsInf(f, 0):
			return ErrInfinity
		default:
			n++
		}
	}
	if n == 0 {
		return ErrNoData
	}
	return nil
}

// Range updates rng with the finite values, skipping NaN and Inf.
func Range(vals []float64, rng *minmax.F64) {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		rng.FitValInRange(v)
	}
}

// NewRange returns a range set to infinity, ready for [Range].
func NewRange() minmax.F64 {
	var rng minmax.F64
	rng.SetInfinity()
	return rng
}

// FloorRange makes rng usable as an axis range. An invalid range
// (no data) becomes [0, 1], and a range narrower than minSpan is
// widened symmetrically to minSpan.
func FloorRange(rng *minmax.F64, minSpan float64) {
	if !rng.IsValid() {
		rng.Set(0, 1)
		return
	}
	if r := rng.Range(); r < minSpan {
		mid := rng.Midpoint()
		rng.Set(mid-minSpan/2, mid+minSpan/2)
	}
}

// PadRange expands rng by frac of its span on both ends.
func PadRange(rng *minmax.F64, frac float64) {
	pad := rng.Range() * frac
	rng.Set(rng.Min-pad, rng.Max+pad)
}
