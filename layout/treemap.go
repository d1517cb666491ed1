// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout places chart elements that are not driven by a
// numeric axis: treemap tiles, pie wedges, gauge dials, radar webs
// and candlestick glyphs.
package layout

import (
	"sort"

	"cogentcore.org/chartgeom/data"
	"cogentcore.org/core/math32"
)

// MinTileSize is the tile width or height at or below which a tile
// is placed but not visible.
const MinTileSize = 2

// Tile is a placed treemap node.
type Tile struct {
	// Index of the node in the input.
	Index int

	// Box is the placed rectangle. It has zero size when not visible.
	Box math32.Box2

	// Visible is false for degenerate tiles, which emit no geometry.
	Visible bool
}

func nodeTotal(nodes []data.TreemapNode) float64 {
	total := 0.0
	for _, nd := range nodes {
		total += data.Weight(nd.Value)
	}
	return total
}

// Treemap places the nodes in input order by slicing rect once along
// its longer dimension: each node with a positive value gets a strip
// with (value/total) of the area, spanning the full cross dimension.
// Degenerate strips (width or height <= [MinTileSize]) still consume
// their offset but are not visible. A non-positive total gives nil.
func Treemap(nodes []data.TreemapNode, rect math32.Box2) []Tile {
	total := nodeTotal(nodes)
	if total <= 0 {
		return nil
	}
	sz := rect.Size()
	area := math32.Max(sz.X, 0) * math32.Max(sz.Y, 0)
	horiz := sz.X > sz.Y
	var tiles []Tile
	off := float32(0)
	for i, nd := range nodes {
		v := data.Weight(nd.Value)
		if v == 0 {
			continue
		}
		share := float32(v/total) * area
		var b math32.Box2
		if horiz {
			w := float32(0)
			if sz.Y > 0 {
				w = share / sz.Y
			}
			b = math32.B2(rect.Min.X+off, rect.Min.Y, rect.Min.X+off+w, rect.Max.Y)
			off += w
		} else {
			h := float32(0)
			if sz.X > 0 {
				h = share / sz.X
			}
			b = math32.B2(rect.Min.X, rect.Min.Y+off, rect.Max.X, rect.Min.Y+off+h)
			off += h
		}
		tiles = append(tiles, newTile(i, b))
	}
	return tiles
}

func newTile(i int, b math32.Box2) Tile {
	sz := b.Size()
	if sz.X <= MinTileSize || sz.Y <= MinTileSize {
		return Tile{Index: i, Box: math32.Box2{Min: b.Min, Max: b.Min}}
	}
	return Tile{Index: i, Box: b, Visible: true}
}

// squarifyRow is a row of areas being laid out along one side.
type squarifyRow struct {
	items    []int
	sum      float32
	min, max float32
}

func (r *squarifyRow) push(area float32, idx int) {
	if len(r.items) == 0 || area < r.min {
		r.min = area
	}
	if len(r.items) == 0 || area > r.max {
		r.max = area
	}
	r.items = append(r.items, idx)
	r.sum += area
}

// worst returns the worst aspect ratio of a row with the given sum
// and extreme areas, laid along side w.
func worst(w, sum, mn, mx float32) float32 {
	w2, s2 := w*w, sum*sum
	return math32.Max(w2*mx/s2, s2/(w2*mn))
}

// improves reports whether adding area to the row does not worsen its
// worst aspect ratio along side w.
func (r *squarifyRow) improves(w, area float32) bool {
	if len(r.items) == 0 {
		return true
	}
	before := worst(w, r.sum, r.min, r.max)
	after := worst(w, r.sum+area, math32.Min(r.min, area), math32.Max(r.max, area))
	return after <= before
}

// Squarify places the nodes with the squarified algorithm of Bruls,
// Huizing and van Wijk: nodes are sorted by decreasing value and
// added to a row along the shorter side of the free rectangle while
// that does not worsen the row's worst aspect ratio. Tiles are
// returned in placement order, with Index referring to the input.
func Squarify(nodes []data.TreemapNode, rect math32.Box2) []Tile {
	total := nodeTotal(nodes)
	sz := rect.Size()
	if total <= 0 || sz.X <= 0 || sz.Y <= 0 {
		return nil
	}
	var order []int
	for i, nd := range nodes {
		if data.Weight(nd.Value) > 0 {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return nodes[order[a]].Value > nodes[order[b]].Value
	})
	scale := sz.X * sz.Y / float32(total)
	areas := make([]float32, len(nodes))
	for _, i := range order {
		areas[i] = float32(nodes[i].Value) * scale
	}

	free := rect
	tiles := make([]Tile, 0, len(order))
	var row squarifyRow
	flush := func() {
		if len(row.items) == 0 {
			return
		}
		fs := free.Size()
		if fs.X >= fs.Y {
			// column at the left, stacked downward
			w := row.sum / fs.Y
			y := free.Min.Y
			for _, i := range row.items {
				h := areas[i] / w
				tiles = append(tiles, newTile(i, math32.B2(free.Min.X, y, free.Min.X+w, y+h)))
				y += h
			}
			free.Min.X += w
		} else {
			// row at the top, stacked rightward
			h := row.sum / fs.X
			x := free.Min.X
			for _, i := range row.items {
				w := areas[i] / h
				tiles = append(tiles, newTile(i, math32.B2(x, free.Min.Y, x+w, free.Min.Y+h)))
				x += w
			}
			free.Min.Y += h
		}
		row = squarifyRow{}
	}
	for _, i := range order {
		fs := free.Size()
		side := math32.Min(fs.X, fs.Y)
		if !row.improves(side, areas[i]) {
			flush()
		}
		row.push(areas[i], i)
	}
	flush()
	return tiles
}
