// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFloats(t *testing.T) {
	assert.NoError(t, CheckFloats(1, math.NaN()))
	assert.ErrorIs(t, CheckFloats(math.NaN()), ErrNoData)
	assert.ErrorIs(t, CheckFloats(1, math.Inf(1)), ErrInfinity)
}

func TestRanges(t *testing.T) {
	rng := NewRange()
	assert.False(t, rng.IsValid())
	Range([]float64{3, math.NaN(), -1, math.Inf(1)}, &rng)
	assert.Equal(t, -1.0, rng.Min)
	assert.Equal(t, 3.0, rng.Max)

	PadRange(&rng, 0.25)
	assert.Equal(t, -2.0, rng.Min)
	assert.Equal(t, 4.0, rng.Max)

	rng.Set(2, 2)
	FloorRange(&rng, 0.1)
	assert.InDelta(t, 1.95, rng.Min, 1e-12)
	assert.InDelta(t, 2.05, rng.Max, 1e-12)

	rng = NewRange()
	FloorRange(&rng, 0.1)
	assert.Equal(t, 0.0, rng.Min)
	assert.Equal(t, 1.0, rng.Max)
}

func TestSeriesValidate(t *testing.T) {
	s, err := NewSeries("a", []float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	_, err = NewSeries("b", []float64{1, 2}, []float64{3})
	assert.ErrorIs(t, err, ErrLength)

	s.Errors = &ErrorBars{YMinus: []float64{0.1, 0.2}}
	assert.NoError(t, s.Validate())
	s.Errors.XPlus = []float64{1}
	assert.ErrorIs(t, s.Validate(), ErrLength)
}

func TestWeight(t *testing.T) {
	assert.Equal(t, 2.5, Weight(2.5))
	assert.Equal(t, 0.0, Weight(-1))
	assert.Equal(t, 0.0, Weight(math.NaN()))
	assert.Equal(t, 0.0, Weight(math.Inf(1)))

	sl := PieSlice{Value: math.NaN()}
	assert.ErrorIs(t, sl.Validate(), ErrNoData)
	nd := TreemapNode{Value: math.Inf(-1)}
	assert.ErrorIs(t, nd.Validate(), ErrInfinity)
	nd.Value = -3
	assert.NoError(t, nd.Validate())
}

func TestCandle(t *testing.T) {
	c := Candle{Time: time.Unix(0, 0), Open: 2, High: 5, Low: 1, Close: 4}
	assert.NoError(t, c.Validate())
	assert.True(t, c.IsBullish())
	c.Close = 1.5
	assert.False(t, c.IsBullish())
	c.High = 1.9
	assert.ErrorIs(t, c.Validate(), ErrCandle)
}

func TestPoints3D(t *testing.T) {
	pts := Points3D([]float64{1, 2, 3}, []float64{4, 5}, []float64{6, 7, 8})
	require.Len(t, pts, 2)
	assert.Equal(t, Point3D{X: 2, Y: 5, Z: 7}, pts[1])
}

func TestGrid(t *testing.T) {
	r, c, err := Grid([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	_, _, err = Grid([][]float64{{1}, {2, 3}})
	assert.ErrorIs(t, err, ErrLength)
}

func TestMarkerShapes(t *testing.T) {
	var m MarkerShapes
	require.NoError(t, m.UnmarshalText([]byte("Square")))
	assert.Equal(t, MarkerSquare, m)
	assert.Error(t, m.UnmarshalText([]byte("Hexagon")))
	assert.Equal(t, "MarkerShapes(9)", MarkerShapes(9).String())
}
