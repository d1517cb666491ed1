// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"image/color"
	"math"
	"slices"

	"cogentcore.org/chartgeom/data"
	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/chartgeom/scale"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// The gauge dial spans 270 degrees, in dial degrees clockwise from
// 12 o'clock.
const (
	GaugeStart = -135
	GaugeEnd   = 135
)

// GaugeTickCount is the target number of dial ticks.
const GaugeTickCount = 5

// DefaultThresholds are the green, orange and red bands used when a
// gauge has no thresholds.
func DefaultThresholds() []data.Threshold {
	return []data.Threshold{
		{Value: 0, Color: colors.Green},
		{Value: 60, Color: colors.Orange},
		{Value: 80, Color: colors.Red},
	}
}

// GaugeTick is a labeled tick on the gauge dial.
type GaugeTick struct {
	Value float64

	// Angle is the screen angle of the tick in radians.
	Angle float32

	// From and To are the ends of the tick mark, inside the dial.
	From, To math32.Vector2

	// Label is the anchor for the tick label.
	Label math32.Vector2
}

// Gauge is the laid out geometry of a gauge.
type Gauge struct {
	// Ratio is the value position in [0, 1] along the dial.
	Ratio float64

	// Background is the full 270 degree dial.
	Background geom.Arc

	// Fill is the dial portion up to Ratio.
	Fill geom.Arc

	// Needle is the screen angle of the needle in radians.
	Needle float32

	// NeedleTip is the end of the needle, which starts at the center.
	NeedleTip math32.Vector2

	// Active is the color of the greatest threshold <= value.
	Active color.RGBA

	Ticks []GaugeTick
}

// GaugeRatio returns clamp((value-min)/(max-min), 0, 1). An empty
// range or a NaN value gives 0.
func GaugeRatio(value, min, max float64) float64 {
	span := max - min
	if !(span > 0) || math.IsNaN(value) {
		return 0
	}
	return math.Min(math.Max((value-min)/span, 0), 1)
}

// ActiveColor returns the color of the greatest threshold whose value
// is <= value, or of the lowest threshold when value is below all of
// them. Empty thresholds use [DefaultThresholds].
func ActiveColor(value float64, thresholds []data.Threshold) color.RGBA {
	ths := sortedThresholds(thresholds)
	active := ths[0].Color
	for _, th := range ths {
		if th.Value > value {
			break
		}
		active = th.Color
	}
	return active
}

func sortedThresholds(thresholds []data.Threshold) []data.Threshold {
	if len(thresholds) == 0 {
		return DefaultThresholds()
	}
	ths := slices.Clone(thresholds)
	slices.SortStableFunc(ths, func(a, b data.Threshold) int {
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		}
		return 0
	})
	return ths
}

// dialAngle returns the screen angle of a dial ratio.
func dialAngle(ratio float64) float32 {
	return geom.ScreenAngle(GaugeStart + float32(ratio)*(GaugeEnd-GaugeStart))
}

// LayoutGauge lays out a gauge with the dial of the given outer radius
// and band width around center.
func LayoutGauge(value, min, max float64, thresholds []data.Threshold, center math32.Vector2, radius, width float32) *Gauge {
	width = math32.Clamp(width, 0, radius)
	inner := radius - width
	g := &Gauge{
		Ratio:  GaugeRatio(value, min, max),
		Active: ActiveColor(value, thresholds),
	}
	g.Background = geom.Arc{Center: center, Inner: inner, Outer: radius, Start: dialAngle(0), End: dialAngle(1)}
	g.Needle = dialAngle(g.Ratio)
	g.Fill = geom.Arc{Center: center, Inner: inner, Outer: radius, Start: g.Background.Start, End: g.Needle}
	g.Fill.Style = geom.Filled(g.Active)
	g.NeedleTip = geom.Polar(center, 0.9*inner, g.Needle)

	if max > min {
		for _, v := range scale.LevelTicks(min, max, GaugeTickCount) {
			if v < min || v > max {
				continue
			}
			a := dialAngle(GaugeRatio(v, min, max))
			g.Ticks = append(g.Ticks, GaugeTick{
				Value: v,
				Angle: a,
				From:  geom.Polar(center, inner, a),
				To:    geom.Polar(center, inner-0.1*radius, a),
				Label: geom.Polar(center, inner-0.25*radius, a),
			})
		}
	}
	return g
}
