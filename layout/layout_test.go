// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"math"
	"math/rand"
	"testing"

	"cogentcore.org/chartgeom/data"
	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/chartgeom/scale"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nodes(vals ...float64) []data.TreemapNode {
	ns := make([]data.TreemapNode, len(vals))
	for i, v := range vals {
		ns[i] = data.TreemapNode{Value: v}
	}
	return ns
}

func overlaps(a, b math32.Box2) bool {
	const eps = 1e-3
	return a.Min.X < b.Max.X-eps && b.Min.X < a.Max.X-eps && a.Min.Y < b.Max.Y-eps && b.Min.Y < a.Max.Y-eps
}

func contains(outer, inner math32.Box2) bool {
	const eps = 1e-2
	return inner.Min.X >= outer.Min.X-eps && inner.Min.Y >= outer.Min.Y-eps &&
		inner.Max.X <= outer.Max.X+eps && inner.Max.Y <= outer.Max.Y+eps
}

func checkTiles(t *testing.T, ns []data.TreemapNode, rect math32.Box2, tiles []Tile) {
	t.Helper()
	total, visible := 0.0, 0.0
	for _, nd := range ns {
		if nd.Value > 0 {
			total += nd.Value
		}
	}
	area := float32(0)
	for i, tl := range tiles {
		if !tl.Visible {
			assert.Equal(t, float32(0), geom.Area(tl.Box))
			continue
		}
		visible += ns[tl.Index].Value
		area += geom.Area(tl.Box)
		assert.True(t, contains(rect, tl.Box), "tile %d %v outside %v", i, tl.Box, rect)
		for _, o := range tiles[i+1:] {
			if o.Visible {
				assert.False(t, overlaps(tl.Box, o.Box), "%v overlaps %v", tl.Box, o.Box)
			}
		}
	}
	want := geom.Area(rect) * float32(visible/total)
	assert.InDelta(t, want, area, float64(want)*1e-4)
}

func TestTreemapSlices(t *testing.T) {
	rect := math32.B2(0, 0, 400, 200)
	ns := nodes(1, 1, 2)
	tiles := Treemap(ns, rect)
	require.Len(t, tiles, 3)
	assert.Equal(t, math32.B2(0, 0, 100, 200), tiles[0].Box)
	assert.Equal(t, math32.B2(100, 0, 200, 200), tiles[1].Box)
	assert.Equal(t, math32.B2(200, 0, 400, 200), tiles[2].Box)

	// taller than wide slices vertically
	tiles = Treemap(nodes(1, 3), math32.B2(0, 0, 100, 400))
	require.Len(t, tiles, 2)
	assert.Equal(t, math32.B2(0, 100, 100, 400), tiles[1].Box)
}

func TestTreemapDegenerate(t *testing.T) {
	rect := math32.B2(0, 0, 400, 200)
	ns := nodes(1000, 1, 0, -5)
	tiles := Treemap(ns, rect)
	require.Len(t, tiles, 2)
	assert.True(t, tiles[0].Visible)
	assert.False(t, tiles[1].Visible)
	assert.Equal(t, 1, tiles[1].Index)
	// the degenerate tile still sits after the first one
	assert.InDelta(t, tiles[0].Box.Max.X, tiles[1].Box.Min.X, 1e-3)
	checkTiles(t, ns, rect, tiles)

	assert.Nil(t, Treemap(nodes(0, -1), rect))
	assert.Nil(t, Treemap(nil, rect))
}

func TestTreemapProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for range 20 {
		vals := make([]float64, 1+rnd.Intn(30))
		for i := range vals {
			vals[i] = rnd.Float64() * 100
		}
		ns := nodes(vals...)
		rect := math32.B2(10, 20, 10+50+rnd.Float32()*500, 20+50+rnd.Float32()*500)
		checkTiles(t, ns, rect, Treemap(ns, rect))
		checkTiles(t, ns, rect, Squarify(ns, rect))
	}
}

func TestTreemapNonFinite(t *testing.T) {
	rect := math32.B2(0, 0, 400, 200)
	ns := nodes(1, math.NaN(), math.Inf(1), 1)
	for _, tiles := range [][]Tile{Treemap(ns, rect), Squarify(ns, rect)} {
		require.Len(t, tiles, 2)
		for _, tl := range tiles {
			assert.True(t, tl.Visible)
			assert.InDelta(t, 200*200, geom.Area(tl.Box), 1)
		}
	}
	assert.Nil(t, Treemap(nodes(math.NaN(), math.Inf(-1)), rect))
}

func TestSquarify(t *testing.T) {
	ns := nodes(6, 6, 4, 3, 2, 2, 1)
	rect := math32.B2(0, 0, 60, 40)
	tiles := Squarify(ns, rect)
	require.Len(t, tiles, 7)
	assert.Equal(t, 0, tiles[0].Index)
	assert.InDelta(t, 30, tiles[0].Box.Max.X, 1e-3)
	assert.InDelta(t, 20, tiles[0].Box.Max.Y, 1e-3)
	assert.InDelta(t, 40, tiles[1].Box.Max.Y, 1e-3)
	for _, tl := range tiles {
		assert.True(t, tl.Visible, "tile %d", tl.Index)
	}

	// squarified tiles are closer to square than the slices
	aspect := func(b math32.Box2) float32 {
		sz := b.Size()
		return math32.Max(sz.X/sz.Y, sz.Y/sz.X)
	}
	big := math32.B2(0, 0, 600, 400)
	worstSq, worstSl := float32(0), float32(0)
	for _, tl := range Squarify(ns, big) {
		worstSq = math32.Max(worstSq, aspect(tl.Box))
	}
	for _, tl := range Treemap(ns, big) {
		worstSl = math32.Max(worstSl, aspect(tl.Box))
	}
	assert.Less(t, worstSq, worstSl)
}

func TestPie(t *testing.T) {
	center := math32.Vec2(100, 100)
	ws := Pie([]data.PieSlice{{Value: 1}, {Value: 1}, {Value: 2}, {Value: -3}}, center, 50, 0)
	require.Len(t, ws, 4)
	assert.InDelta(t, -math32.Pi/2, ws[0].Arc.Start, 1e-6)
	assert.InDelta(t, 0, ws[0].Arc.End, 1e-6)
	assert.InDelta(t, math32.Pi/2, ws[1].Arc.End, 1e-6)
	assert.InDelta(t, 3*math32.Pi/2, ws[2].Arc.End, 1e-5)
	assert.Equal(t, 0.5, ws[2].Fraction)
	assert.Equal(t, 0.0, ws[3].Fraction)
	assert.Equal(t, ws[3].Arc.Start, ws[3].Arc.End)
	for i := 1; i < len(ws); i++ {
		assert.Equal(t, ws[i-1].Arc.End, ws[i].Arc.Start)
	}
	// first wedge spans 12 to 3 o'clock, so its label is up and right
	assert.Greater(t, ws[0].LabelPos.X, center.X)
	assert.Less(t, ws[0].LabelPos.Y, center.Y)

	// non-finite values take no share and do not spread
	ws = Pie([]data.PieSlice{{Value: 1}, {Value: math.NaN()}, {Value: math.Inf(1)}, {Value: 1}}, center, 50, 0)
	require.Len(t, ws, 4)
	for _, w := range ws {
		assert.False(t, math.IsNaN(w.Fraction))
		assert.False(t, math.IsNaN(float64(w.Arc.Start)) || math.IsNaN(float64(w.Arc.End)))
	}
	assert.Equal(t, 0.5, ws[0].Fraction)
	assert.Equal(t, 0.0, ws[1].Fraction)
	assert.Equal(t, 0.0, ws[2].Fraction)
	assert.InDelta(t, 3*math32.Pi/2, ws[3].Arc.End, 1e-5)
	assert.Nil(t, Pie([]data.PieSlice{{Value: math.Inf(1)}}, center, 50, 0))

	donut := Pie([]data.PieSlice{{Value: 1}}, center, 50, 30)
	require.Len(t, donut, 1)
	assert.Equal(t, float32(30), donut[0].Arc.Inner)
	assert.InDelta(t, 40, donut[0].LabelPos.Sub(center).Length(), 1e-4)

	assert.Nil(t, Pie([]data.PieSlice{{Value: 0}, {Value: -1}}, center, 50, 0))
}

func TestGauge(t *testing.T) {
	center := math32.Vec2(0, 0)
	g := LayoutGauge(70, 0, 100, nil, center, 100, 20)
	assert.InDelta(t, 0.7, g.Ratio, 1e-12)
	assert.Equal(t, colors.Orange, g.Active)
	assert.InDelta(t, geom.ScreenAngle(-135), g.Background.Start, 1e-6)
	assert.InDelta(t, geom.ScreenAngle(135), g.Background.End, 1e-6)
	assert.InDelta(t, geom.ScreenAngle(-135+0.7*270), g.Needle, 1e-5)
	assert.Equal(t, g.Needle, g.Fill.End)
	assert.Equal(t, g.Active, g.Fill.Style.Fill)
	require.NotEmpty(t, g.Ticks)
	assert.LessOrEqual(t, len(g.Ticks), GaugeTickCount)
	assert.Equal(t, 0.0, g.Ticks[0].Value)
	assert.Equal(t, 100.0, g.Ticks[len(g.Ticks)-1].Value)

	assert.Equal(t, 1.0, LayoutGauge(250, 0, 100, nil, center, 100, 20).Ratio)
	low := LayoutGauge(-10, 0, 100, nil, center, 100, 20)
	assert.Equal(t, 0.0, low.Ratio)
	assert.Equal(t, colors.Green, low.Active)
	assert.Equal(t, 0.0, GaugeRatio(5, 3, 3))
}

func TestActiveColor(t *testing.T) {
	ths := []data.Threshold{{Value: 50, Color: colors.Red}, {Value: 10, Color: colors.Green}}
	assert.Equal(t, colors.Green, ActiveColor(20, ths))
	assert.Equal(t, colors.Red, ActiveColor(50, ths))
	assert.Equal(t, colors.Green, ActiveColor(0, ths))
	assert.Equal(t, colors.Red, ActiveColor(80, nil))
	assert.Equal(t, colors.Green, ActiveColor(59.9, nil))
}

func TestRadar(t *testing.T) {
	series := []data.PolarSeries{{Values: []float64{1, 2, 3, 4}}, {Values: []float64{8}}}
	rd := LayoutRadar(4, series, math32.Vec2(0, 0), 100, 0, 4)
	require.NotNil(t, rd)
	assert.Equal(t, 8.0, rd.Max)
	assert.InDelta(t, 0, rd.Spokes[0].X, 1e-4)
	assert.InDelta(t, -100, rd.Spokes[0].Y, 1e-4)
	assert.InDelta(t, 100, rd.Spokes[1].X, 1e-4)
	require.Len(t, rd.Rings, 4)
	assert.InDelta(t, -25, rd.Rings[0][0].Y, 1e-4)
	require.Len(t, rd.Polygons, 2)
	assert.InDelta(t, -50, rd.Polygons[0][3].X, 1e-4)
	// missing values sit at the center
	assert.InDelta(t, 0, rd.Polygons[1][2].Length(), 1e-4)

	assert.Equal(t, RadarMinMax, RadarMax([]data.PolarSeries{{Values: []float64{-1, -2}}}))
	assert.Equal(t, RadarMinMax, RadarMax(nil))
	assert.Nil(t, LayoutRadar(0, series, math32.Vec2(0, 0), 100, 0, 4))
}

func TestCandles(t *testing.T) {
	vol := 50.0
	cs := []data.Candle{
		{Open: 2, High: 9, Low: 1, Close: 8, Volume: &vol},
		{Open: 6, High: 7, Low: 3, Close: 4},
	}
	price, volume := CandleArea(math32.B2(0, 0, 100, 125), 0.2)
	assert.Equal(t, math32.B2(0, 0, 100, 100), price)
	assert.Equal(t, math32.B2(0, 100, 100, 125), volume)

	y := scale.Axis{Type: scale.Linear, Min: 0, Max: 10}
	gs := Candles(cs, price, volume, y)
	require.Len(t, gs, 2)
	assert.True(t, gs[0].Bullish)
	assert.False(t, gs[1].Bullish)
	assert.InDelta(t, 20, gs[0].Body.Min.Y, 1e-4)
	assert.InDelta(t, 80, gs[0].Body.Max.Y, 1e-4)
	assert.InDelta(t, 25, gs[0].High.X, 1e-4)
	assert.InDelta(t, 10, gs[0].High.Y, 1e-4)
	assert.InDelta(t, 90, gs[0].Low.Y, 1e-4)
	assert.InDelta(t, 35, gs[0].Body.Size().X, 1e-4)
	assert.InDelta(t, 25, gs[0].Volume.Size().Y, 1e-4)
	assert.Equal(t, float32(0), geom.Area(gs[1].Volume))

	doji := Candles([]data.Candle{{Open: 5, High: 6, Low: 4, Close: 5}}, price, volume, y)
	assert.InDelta(t, 1, doji[0].Body.Size().Y, 1e-4)

	ax := PriceRange(cs)
	assert.Equal(t, 1.0, ax.Min)
	assert.Equal(t, 9.0, ax.Max)
	assert.Nil(t, Candles(nil, price, volume, y))
}
