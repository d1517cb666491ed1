// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides continuous scalar to color mapping
// through named palettes of evenly spaced color stops.
package colormap

import (
	"image/color"
	"math"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"github.com/lucasb-eyer/go-colorful"
)

// Map is a named continuous color map defined by an ordered list
// of evenly spaced color stops.
type Map struct {
	// Name is the registry name of the map.
	Name string

	// Colors are the stops, first for t = 0 and last for t = 1.
	Colors []color.RGBA
}

// NewMap returns a new map from hex color stops such as "#440154".
// Stops that fail to parse are logged and skipped.
func NewMap(name string, hex ...string) *Map {
	cm := &Map{Name: name, Colors: make([]color.RGBA, 0, len(hex))}
	for _, h := range hex {
		c, err := colorful.Hex(h)
		if errors.Log(err) != nil {
			continue
		}
		cm.Colors = append(cm.Colors, toRGBA(c))
	}
	return cm
}

// Sample returns the color at t, which is clamped to [0, 1] first,
// linearly interpolating between the two bracketing stops.
func (cm *Map) Sample(t float64) color.RGBA {
	n := len(cm.Colors)
	switch n {
	case 0:
		return color.RGBA{}
	case 1:
		return cm.Colors[0]
	}
	if math.IsNaN(t) {
		t = 0
	}
	t = min(max(t, 0), 1)
	pos := t * float64(n-1)
	i := int(math.Floor(pos))
	if i >= n-1 {
		return cm.Colors[n-1]
	}
	fr := pos - float64(i)
	a := fromRGBA(cm.Colors[i])
	b := fromRGBA(cm.Colors[i+1])
	return toRGBA(a.BlendRgb(b, fr))
}

// Reversed returns a copy of the map with the stops in reverse order,
// named with an "_r" suffix.
func (cm *Map) Reversed() *Map {
	rv := &Map{Name: cm.Name + ReverseSuffix, Colors: make([]color.RGBA, len(cm.Colors))}
	for i, c := range cm.Colors {
		rv.Colors[len(cm.Colors)-1-i] = c
	}
	return rv
}

// Categorical returns the default color for series index i, used when
// a series, slice or node has no explicit color.
func Categorical(i int) color.RGBA {
	return colors.Spaced(i)
}

func fromRGBA(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}
