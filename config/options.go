// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"image/color"
	"log/slog"
	"strings"

	"cogentcore.org/chartgeom/chart"
	"cogentcore.org/chartgeom/colormap"
	"cogentcore.org/chartgeom/data"
	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/core/colors"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a color decoded from a "#rrggbb" hex string or a CSS
// color name.
type Color struct {
	color.RGBA
}

// ParseColor parses a hex string or a CSS color name.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		cf, err := colorful.Hex(s)
		if err != nil {
			return Color{}, err
		}
		r, g, b := cf.RGB255()
		return Color{color.RGBA{r, g, b, 0xff}}, nil
	}
	c, err := colors.FromName(strings.ToLower(s))
	if err != nil {
		return Color{}, err
	}
	return Color{c}, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Color) UnmarshalText(text []byte) error {
	pc, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = pc
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (c Color) MarshalText() ([]byte, error) {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return []byte(cf.Hex()), nil
}

// Options are optional chart settings as decoded from a file.
// Unset fields keep the [chart.DefaultSettings] value.
type Options struct {
	Margins    *geom.Margins      `toml:"margins" yaml:"margins" json:"margins"`
	Background *Color             `toml:"background" yaml:"background" json:"background"`
	Foreground *Color             `toml:"foreground" yaml:"foreground" json:"foreground"`
	Grid       *Color             `toml:"grid" yaml:"grid" json:"grid"`
	FontSize   *float32           `toml:"font_size" yaml:"font_size" json:"font_size"`
	LineWidth  *float32           `toml:"line_width" yaml:"line_width" json:"line_width"`
	Marker     *data.MarkerShapes `toml:"marker" yaml:"marker" json:"marker"`
	MarkerSize *float32           `toml:"marker_size" yaml:"marker_size" json:"marker_size"`
	Ticks      *int               `toml:"ticks" yaml:"ticks" json:"ticks"`
	Colormap   *string            `toml:"colormap" yaml:"colormap" json:"colormap"`
	Colors     []Color            `toml:"colors" yaml:"colors" json:"colors"`
	Bins       *int               `toml:"bins" yaml:"bins" json:"bins"`
	HexRadius  *float32           `toml:"hex_radius" yaml:"hex_radius" json:"hex_radius"`
	Levels     *int               `toml:"levels" yaml:"levels" json:"levels"`
	Filled     *bool              `toml:"filled" yaml:"filled" json:"filled"`
	Squarify   *bool              `toml:"squarify" yaml:"squarify" json:"squarify"`

	InnerRadius    *float32 `toml:"inner_radius" yaml:"inner_radius" json:"inner_radius"`
	GaugeWidth     *float32 `toml:"gauge_width" yaml:"gauge_width" json:"gauge_width"`
	Rings          *int     `toml:"rings" yaml:"rings" json:"rings"`
	VolumeFraction *float32 `toml:"volume_fraction" yaml:"volume_fraction" json:"volume_fraction"`
	Bullish        *Color   `toml:"bullish" yaml:"bullish" json:"bullish"`
	Bearish        *Color   `toml:"bearish" yaml:"bearish" json:"bearish"`
	Legend         *bool    `toml:"legend" yaml:"legend" json:"legend"`

	// Colormaps are extra named palettes of hex stops, usable by
	// name in Colormap.
	Colormaps map[string][]string `toml:"colormaps" yaml:"colormaps" json:"colormaps"`
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setColor(dst *color.RGBA, src *Color) {
	if src != nil {
		*dst = src.RGBA
	}
}

// Resolve returns the default settings with the set options applied.
func (o *Options) Resolve() chart.Settings {
	st := chart.DefaultSettings()
	o.Apply(&st)
	return st
}

// Apply overwrites the settings fields that are set in o.
func (o *Options) Apply(st *chart.Settings) {
	if o == nil {
		return
	}
	set(&st.Margins, o.Margins)
	setColor(&st.Background, o.Background)
	setColor(&st.Foreground, o.Foreground)
	setColor(&st.Grid, o.Grid)
	set(&st.FontSize, o.FontSize)
	set(&st.LineWidth, o.LineWidth)
	set(&st.Marker, o.Marker)
	set(&st.MarkerSize, o.MarkerSize)
	set(&st.Ticks, o.Ticks)
	set(&st.Colormap, o.Colormap)
	if o.Colors != nil {
		st.Colors = make([]color.RGBA, len(o.Colors))
		for i, c := range o.Colors {
			st.Colors[i] = c.RGBA
		}
	}
	set(&st.Bins, o.Bins)
	set(&st.HexRadius, o.HexRadius)
	set(&st.Levels, o.Levels)
	set(&st.Filled, o.Filled)
	set(&st.Squarify, o.Squarify)
	set(&st.InnerRadius, o.InnerRadius)
	set(&st.GaugeWidth, o.GaugeWidth)
	set(&st.Rings, o.Rings)
	set(&st.VolumeFraction, o.VolumeFraction)
	setColor(&st.Bullish, o.Bullish)
	setColor(&st.Bearish, o.Bearish)
	set(&st.Legend, o.Legend)
}

// Registry returns the standard colormaps plus the ones in
// [Options.Colormaps].
func (o *Options) Registry() *colormap.Registry {
	return o.Extend(colormap.StandardRegistry())
}

// Extend returns rg with the maps of [Options.Colormaps] added.
// Palettes with fewer than two valid stops are skipped with a warning.
func (o *Options) Extend(rg *colormap.Registry) *colormap.Registry {
	if o == nil || len(o.Colormaps) == 0 {
		return rg
	}
	var maps []*colormap.Map
	for name, stops := range o.Colormaps {
		cm := colormap.NewMap(name, stops...)
		if len(cm.Colors) < 2 {
			slog.Warn("config: skipping colormap with fewer than two stops", "name", name)
			continue
		}
		maps = append(maps, cm)
	}
	return rg.With(maps...)
}
