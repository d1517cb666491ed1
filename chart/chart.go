// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart has the chart types. Each holds its data and
// settings, and lays out into a [geom.Drawing] for a host rectangle.
// Every layout recomputes from the current data; setters mark the
// chart dirty until the next layout.
package chart

import (
	"context"
	"image/color"

	"cogentcore.org/chartgeom/colormap"
	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/core/math32"
	"golang.org/x/sync/errgroup"
)

// Chart is the interface shared by all chart types.
type Chart interface {
	// Layout returns the drawing of the chart in rect.
	Layout(rect math32.Box2) *geom.Drawing

	// Clear removes the data of the chart.
	Clear()

	// Dirty reports whether the chart changed since the last Layout.
	Dirty() bool
}

var (
	_ Chart = (*XY)(nil)
	_ Chart = (*Histogram)(nil)
	_ Chart = (*Hexbin)(nil)
	_ Chart = (*Contour)(nil)
	_ Chart = (*Treemap)(nil)
	_ Chart = (*Pie)(nil)
	_ Chart = (*Gauge)(nil)
	_ Chart = (*Radar)(nil)
	_ Chart = (*Candlestick)(nil)
	_ Chart = (*Scatter3D)(nil)
	_ Chart = (*Surface3D)(nil)
)

// Base has the state shared by all chart types.
type Base struct {
	// Title is drawn above the plot area when set.
	Title string

	// Settings are the chart settings, before stylers.
	Settings Settings

	// Colormaps resolves [Settings.Colormap].
	Colormaps *colormap.Registry

	// PlotArea is the data area of the last layout.
	PlotArea math32.Box2

	stylers Stylers
	dirty   bool
}

func (b *Base) Defaults() {
	b.Settings.Defaults()
	b.Colormaps = colormap.StandardRegistry()
	b.dirty = true
}

// SetTitle sets the title.
func (b *Base) SetTitle(title string) {
	b.Title = title
	b.MarkDirty()
}

// SetColormap sets the colormap name.
func (b *Base) SetColormap(name string) {
	b.Settings.Colormap = name
	b.MarkDirty()
}

// SetColors sets the categorical colors.
func (b *Base) SetColors(cs ...color.RGBA) {
	b.Settings.Colors = cs
	b.MarkDirty()
}

// SetSettings replaces the settings.
func (b *Base) SetSettings(st Settings) {
	b.Settings = st
	b.MarkDirty()
}

// Styler adds a style function to set settings at layout time.
func (b *Base) Styler(f func(st *Settings)) {
	b.stylers.Add(f)
	b.MarkDirty()
}

// MarkDirty records a change for the next layout.
func (b *Base) MarkDirty() {
	b.dirty = true
}

// Dirty reports whether the chart changed since the last layout.
func (b *Base) Dirty() bool {
	return b.dirty
}

// colormap returns the current colormap of the settings.
func (b *Base) colormap(st *Settings) *colormap.Map {
	if b.Colormaps == nil {
		b.Colormaps = colormap.StandardRegistry()
	}
	return b.Colormaps.Get(st.Colormap)
}

// layout computes the drawing for rect with the background, the
// title and the items added by draw.
func (b *Base) layout(rect math32.Box2, draw func(d *geom.Drawing, st *Settings)) *geom.Drawing {
	st := b.Settings.Clone()
	b.stylers.Run(&st)
	d := &geom.Drawing{}
	d.Add(&geom.Rect{Box: rect, Style: geom.Filled(st.Background)})
	b.PlotArea = st.Margins.PlotArea(rect)
	if b.Title != "" {
		pos := math32.Vec2(rect.Center().X, rect.Min.Y+0.5*st.Margins.Top+0.4*st.FontSize)
		d.Add(&geom.Text{Pos: pos, Text: b.Title, Align: geom.AlignCenter, Size: 1.25 * st.FontSize, Color: st.Foreground})
	}
	draw(d, &st)
	b.dirty = false
	return d
}

// LayoutAll lays out the charts concurrently into the same rect,
// returning the drawings in order. The charts must be distinct.
func LayoutAll(ctx context.Context, rect math32.Box2, charts ...Chart) ([]*geom.Drawing, error) {
	ds := make([]*geom.Drawing, len(charts))
	g, ctx := errgroup.WithContext(ctx)
	for i, ch := range charts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ds[i] = ch.Layout(rect)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ds, nil
}
