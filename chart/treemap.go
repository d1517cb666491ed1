// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cogentcore.org/chartgeom/data"
	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/chartgeom/layout"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// Treemap is a chart of values as areas of tiles.
type Treemap struct {
	Base

	// Nodes are the tiled values.
	Nodes []data.TreemapNode

	// Tiles are the placed tiles of the last layout.
	Tiles []layout.Tile
}

// NewTreemap returns a new treemap of the nodes.
func NewTreemap(nodes ...data.TreemapNode) *Treemap {
	ch := &Treemap{}
	ch.Defaults()
	ch.SetData(nodes...)
	return ch
}

// SetData sets the nodes. Nodes with non-finite values are logged
// and dropped.
func (ch *Treemap) SetData(nodes ...data.TreemapNode) {
	ch.Nodes = ch.Nodes[:0]
	for i := range nodes {
		if errors.Log(nodes[i].Validate()) == nil {
			ch.Nodes = append(ch.Nodes, nodes[i])
		}
	}
	ch.MarkDirty()
}

func (ch *Treemap) Clear() {
	ch.Nodes, ch.Tiles = nil, nil
	ch.MarkDirty()
}

func (ch *Treemap) Layout(rect math32.Box2) *geom.Drawing {
	return ch.layout(rect, ch.draw)
}

func (ch *Treemap) draw(d *geom.Drawing, st *Settings) {
	if st.Squarify {
		ch.Tiles = layout.Squarify(ch.Nodes, ch.PlotArea)
	} else {
		ch.Tiles = layout.Treemap(ch.Nodes, ch.PlotArea)
	}
	for _, tl := range ch.Tiles {
		if !tl.Visible {
			continue
		}
		nd := &ch.Nodes[tl.Index]
		clr := st.Color(tl.Index)
		if nd.Color != nil {
			clr = *nd.Color
		}
		d.Add(&geom.Rect{Box: tl.Box, Style: geom.Style{Fill: clr, Stroke: st.Background, Width: 1}})
		sz := tl.Box.Size()
		if nd.Label != "" && sz.X > 3*st.FontSize && sz.Y > 1.5*st.FontSize {
			c := tl.Box.Center()
			d.Add(&geom.Text{Pos: math32.Vec2(c.X, c.Y+0.35*st.FontSize), Text: nd.Label,
				Align: geom.AlignCenter, Size: st.FontSize, Color: st.Background})
		}
	}
}
