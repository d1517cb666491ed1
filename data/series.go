// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"cogentcore.org/core/base/errors"
)

// MarkerShapes are the shapes for series point markers.
type MarkerShapes int32 //enums:enum

const (
	// MarkerNone draws no markers.
	MarkerNone MarkerShapes = iota

	// MarkerCircle draws circle markers.
	MarkerCircle

	// MarkerSquare draws square markers.
	MarkerSquare

	// MarkerTriangle draws upward triangle markers.
	MarkerTriangle
)

var markerNames = [...]string{"None", "Circle", "Square", "Triangle"}

func (m MarkerShapes) String() string {
	if m < 0 || int(m) >= len(markerNames) {
		return fmt.Sprintf("MarkerShapes(%d)", int32(m))
	}
	return markerNames[m]
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *MarkerShapes) UnmarshalText(text []byte) error {
	for i, nm := range markerNames {
		if nm == string(text) {
			*m = MarkerShapes(i)
			return nil
		}
	}
	return errors.New("data: unknown marker shape " + string(text))
}

// MarshalText implements [encoding.TextMarshaler].
func (m MarkerShapes) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// SeriesStyle is the optional per-series style. Nil fields take the
// chart defaults.
type SeriesStyle struct {
	// Color of the line and markers.
	Color *color.RGBA

	// LineWidth in pixels; 0 draws no line.
	LineWidth *float32

	// Marker shape for the points.
	Marker *MarkerShapes

	// MarkerSize is the marker radius in pixels.
	MarkerSize *float32
}

// ErrorBars are optional per-point error extents. Each array is
// optional independently and, when present, must have one entry
// per point.
type ErrorBars struct {
	XMinus, XPlus []float64
	YMinus, YPlus []float64
}

// Series is a labeled sequence of (x, y) points with optional style
// and error bars.
type Series struct {
	Label string
	X, Y  []float64

	// Colors optionally overrides the color of individual points.
	Colors []color.RGBA

	Style  SeriesStyle
	Errors *ErrorBars
}

// NewSeries returns a new series, or an error if x and y lengths differ.
func NewSeries(label string, x, y []float64) (*Series, error) {
	s := &Series{Label: label, X: x, Y: y}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Len returns the number of points.
func (s *Series) Len() int {
	return len(s.X)
}

// Validate checks the length invariants: len(X) == len(Y), and each
// present error or color array has one entry per point.
func (s *Series) Validate() error {
	n := len(s.X)
	var errs []error
	check := func(name string, l int) {
		if l != 0 && l != n {
			errs = append(errs, fmt.Errorf("%w: series %q %s has %d values for %d points", ErrLength, s.Label, name, l, n))
		}
	}
	if len(s.Y) != n {
		errs = append(errs, fmt.Errorf("%w: series %q has %d x and %d y values", ErrLength, s.Label, n, len(s.Y)))
	}
	check("colors", len(s.Colors))
	if eb := s.Errors; eb != nil {
		check("xerr minus", len(eb.XMinus))
		check("xerr plus", len(eb.XPlus))
		check("yerr minus", len(eb.YMinus))
		check("yerr plus", len(eb.YPlus))
	}
	return errors.Join(errs...)
}

// Candle is one OHLC record.
type Candle struct {
	Time                   time.Time
	Open, High, Low, Close float64

	// Volume is optional.
	Volume *float64
}

// IsBullish reports whether the candle closed at or above its open.
func (c *Candle) IsBullish() bool {
	return c.Close >= c.Open
}

// Validate checks low <= min(open, close) <= max(open, close) <= high.
func (c *Candle) Validate() error {
	if c.Low <= min(c.Open, c.Close) && max(c.Open, c.Close) <= c.High {
		return nil
	}
	return fmt.Errorf("%w: %v o=%g h=%g l=%g c=%g", ErrCandle, c.Time, c.Open, c.High, c.Low, c.Close)
}

// PieSlice is one labeled value of a pie or donut chart.
type PieSlice struct {
	Label string
	Value float64
	Color *color.RGBA
}

// Validate checks that the value is finite.
func (s *PieSlice) Validate() error {
	return CheckFloats(s.Value)
}

// TreemapNode is one labeled value of a treemap.
type TreemapNode struct {
	Label string
	Value float64
	Color *color.RGBA
}

// Validate checks that the value is finite.
func (nd *TreemapNode) Validate() error {
	return CheckFloats(nd.Value)
}

// Weight returns v when it is positive and finite, and 0 otherwise,
// as the share a pie slice or treemap node takes of the total.
func Weight(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Point3D is a point of a 3D scatter plot, with optional per-point
// color and size overrides.
type Point3D struct {
	X, Y, Z float64
	Color   *color.RGBA
	Size    *float32
}

// Points3D zips x, y and z into points, truncating to the shortest
// array. Truncation is logged.
func Points3D(x, y, z []float64) []Point3D {
	n := min(len(x), len(y), len(z))
	if n != len(x) || n != len(y) || n != len(z) {
		errors.Log(fmt.Errorf("%w: 3D data truncated to %d points (x=%d y=%d z=%d)", ErrLength, n, len(x), len(y), len(z)))
	}
	pts := make([]Point3D, n)
	for i := range pts {
		pts[i] = Point3D{X: x[i], Y: y[i], Z: z[i]}
	}
	return pts
}

// PolarSeries is a series of values, one per radial axis.
type PolarSeries struct {
	Label  string
	Values []float64
	Color  *color.RGBA
}

// Threshold is a gauge color band starting at Value.
type Threshold struct {
	Value float64
	Color color.RGBA
}

// Grid validates a rectangular grid[row][col], returning its size.
func Grid(grid [][]float64) (rows, cols int, err error) {
	rows = len(grid)
	if rows == 0 {
		return 0, 0, nil
	}
	cols = len(grid[0])
	for i, row := range grid {
		if len(row) != cols {
			return rows, cols, fmt.Errorf("%w: grid row %d has %d values, want %d", ErrLength, i, len(row), cols)
		}
	}
	return rows, cols, nil
}
