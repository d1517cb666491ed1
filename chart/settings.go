// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"

	"cogentcore.org/chartgeom/colormap"
	"cogentcore.org/chartgeom/data"
	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"github.com/jinzhu/copier"
)

// Settings are the resolved styling and layout parameters of a chart.
// Every field has a concrete value; optional configuration is resolved
// into Settings once, by the config package.
type Settings struct {
	// Margins between the host rectangle and the plot area.
	Margins geom.Margins

	// Background fills the host rectangle.
	Background color.RGBA

	// Foreground is used for axes, text and contour lines.
	Foreground color.RGBA

	// Grid is used for grid lines, dial backgrounds and web rings.
	Grid color.RGBA

	// FontSize is the text size in pixels.
	FontSize float32

	// LineWidth is the series line width; 0 draws no lines.
	LineWidth float32

	// Marker is the default series marker shape.
	Marker data.MarkerShapes

	// MarkerSize is the marker radius in pixels.
	MarkerSize float32

	// Ticks is the target number of ticks per axis; 0 draws none.
	Ticks int

	// Colormap names the palette for continuous values.
	Colormap string

	// Colors are the categorical series colors. Empty uses
	// evenly spaced hues.
	Colors []color.RGBA

	// Bins is the histogram bin count; 0 chooses by Sturges' rule.
	Bins int

	// HexRadius is the hexagon radius in pixels.
	HexRadius float32

	// Levels is the number of contour levels.
	Levels int

	// Filled shades contour cells.
	Filled bool

	// Squarify lays out treemaps with the squarified algorithm
	// instead of single-pass slicing.
	Squarify bool

	// InnerRadius is the donut hole as a fraction of the pie radius.
	InnerRadius float32

	// GaugeWidth is the dial band width as a fraction of its radius.
	GaugeWidth float32

	// Rings is the number of radar web rings.
	Rings int

	// VolumeFraction is the share of a candlestick chart's height
	// given to volume bars, when there is volume data.
	VolumeFraction float32

	// Bullish and Bearish color candles that closed up and down.
	Bullish, Bearish color.RGBA

	// Legend draws a series legend.
	Legend bool
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	st := Settings{}
	st.Defaults()
	return st
}

func (st *Settings) Defaults() {
	st.Margins = geom.Margins{Left: 60, Top: 40, Right: 20, Bottom: 50}
	st.Background = colors.White
	st.Foreground = colors.Black
	st.Grid = colors.Lightgray
	st.FontSize = 12
	st.LineWidth = 1.5
	st.Marker = data.MarkerNone
	st.MarkerSize = 3
	st.Ticks = 5
	st.Colormap = colormap.DefaultName
	st.HexRadius = 10
	st.Levels = 8
	st.Filled = true
	st.GaugeWidth = 0.2
	st.Rings = 5
	st.VolumeFraction = 0.2
	st.Bullish = colors.Green
	st.Bearish = colors.Red
	st.Legend = true
}

// Clone returns a deep copy of the settings, so that changes to
// the copy's slices do not reach st.
func (st *Settings) Clone() Settings {
	var cp Settings
	errors.Log(copier.CopyWithOption(&cp, st, copier.Option{DeepCopy: true}))
	return cp
}

// Color returns the categorical color for index i.
func (st *Settings) Color(i int) color.RGBA {
	if n := len(st.Colors); n > 0 {
		return st.Colors[i%n]
	}
	return colormap.Categorical(i)
}

// Stylers is a list of styling functions that set Settings fields.
// These are called in the order added, on a copy of the chart
// settings, each time the chart is laid out.
type Stylers []func(st *Settings)

// Add adds a styling function to the list.
func (sl *Stylers) Add(f func(st *Settings)) {
	*sl = append(*sl, f)
}

// Run runs the list of styling functions on the given [Settings].
func (sl *Stylers) Run(st *Settings) {
	for _, f := range *sl {
		f(st)
	}
}
