// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bins provides histogram binning and hexagonal binning.
package bins

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Bin is one histogram bin covering the half-open interval
// [Left, Right), except the last bin of a histogram which is closed.
type Bin struct {
	Left, Right float64
	Count       int
}

// Width returns Right - Left.
func (b Bin) Width() float64 {
	return b.Right - b.Left
}

// Contains reports whether v is in the bin interval. last marks the
// closed last bin of a histogram.
func (b Bin) Contains(v float64, last bool) bool {
	if last {
		return v >= b.Left && v <= b.Right
	}
	return v >= b.Left && v < b.Right
}

// SturgesBins returns the number of bins for n values by Sturges' rule,
// ceil(1 + 3.322*log10(n)), with a minimum of 1.
func SturgesBins(n int) int {
	if n < 1 {
		return 1
	}
	nb := int(math.Ceil(1 + 3.322*math.Log10(float64(n))))
	return max(nb, 1)
}

// ComputeBins bins the values with the bin count chosen by Sturges' rule.
// NaN and infinite values are skipped. Empty input gives no bins.
func ComputeBins(values []float64) []Bin {
	vs := finite(values)
	return computeBins(vs, SturgesBins(len(vs)))
}

// ComputeBinsN bins the values into n equal-width bins. An n < 1
// is treated as 1.
func ComputeBinsN(values []float64, n int) []Bin {
	return computeBins(finite(values), max(n, 1))
}

func computeBins(vs []float64, nb int) []Bin {
	if len(vs) == 0 {
		return nil
	}
	mn, mx := stats.Bounds(vs)
	if mx == mn {
		// widen a single-valued range to unit span around the value
		mn -= 0.5
		mx += 0.5
	}
	w := (mx - mn) / float64(nb)
	bs := make([]Bin, nb)
	for i := range bs {
		bs[i].Left = mn + float64(i)*w
		bs[i].Right = mn + float64(i+1)*w
	}
	bs[nb-1].Right = mx
	for _, v := range vs {
		bs[binIndex(bs, v, mn, w)].Count++
	}
	return bs
}

// binIndex returns floor((v-min)/w) clamped to the bins, corrected by
// one where rounding puts v outside the computed bin edges.
func binIndex(bs []Bin, v, mn, w float64) int {
	last := len(bs) - 1
	i := int(math.Floor((v - mn) / w))
	i = min(max(i, 0), last)
	if i > 0 && v < bs[i].Left {
		i--
	} else if i < last && v >= bs[i].Right {
		i++
	}
	return i
}

func finite(values []float64) []float64 {
	vs := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		vs = append(vs, v)
	}
	return vs
}

// MaxCount returns the largest bin count.
func MaxCount(bs []Bin) int {
	mc := 0
	for _, b := range bs {
		mc = max(mc, b.Count)
	}
	return mc
}
