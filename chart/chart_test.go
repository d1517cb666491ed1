// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"context"
	"image/color"
	"math"
	"testing"
	"time"

	"cogentcore.org/chartgeom/bins"
	"cogentcore.org/chartgeom/data"
	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/chartgeom/scale"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var host = math32.B2(0, 0, 260, 190)

func count[T geom.Item](d *geom.Drawing) int {
	n := 0
	for _, it := range d.Items {
		if _, ok := it.(T); ok {
			n++
		}
	}
	return n
}

func series(t *testing.T, label string, x, y []float64) *data.Series {
	s, err := data.NewSeries(label, x, y)
	require.NoError(t, err)
	return s
}

func TestLayoutDirty(t *testing.T) {
	ch := NewXY(series(t, "", []float64{0, 1}, []float64{0, 1}))
	assert.True(t, ch.Dirty())
	d := ch.Layout(host)
	assert.False(t, ch.Dirty())
	d2 := ch.Layout(host)
	assert.NotSame(t, d, d2)
	assert.Equal(t, d.Items, d2.Items)

	ch.SetTitle("Title")
	assert.True(t, ch.Dirty())
	d3 := ch.Layout(host)
	assert.False(t, ch.Dirty())
	assert.Equal(t, count[*geom.Text](d)+1, count[*geom.Text](d3))

	// data edited in place shows on the next layout
	ch.Series[0].Y[1] = 2
	ch.Layout(host)
	assert.InDelta(t, 40, ch.PY[0][1], 1e-4)
}

func TestXY(t *testing.T) {
	ch := NewXY(series(t, "", []float64{0, 1, 2}, []float64{0, 1, 4}))
	d := ch.Layout(host)
	assert.Equal(t, math32.B2(60, 40, 240, 140), ch.PlotArea)
	require.Len(t, ch.PX, 1)
	assert.InDelta(t, 60, ch.PX[0][0], 1e-4)
	assert.InDelta(t, 140, ch.PY[0][0], 1e-4)
	assert.InDelta(t, 240, ch.PX[0][2], 1e-4)
	assert.InDelta(t, 40, ch.PY[0][2], 1e-4)
	assert.Equal(t, 1, count[*geom.Polyline](d))
	assert.Equal(t, 0, count[*geom.Circle](d))

	x, y := ch.Axes()
	assert.Equal(t, 0.0, x.Min)
	assert.Equal(t, 4.0, y.Max)
}

func TestXYGaps(t *testing.T) {
	ch := NewXY(series(t, "", []float64{0, 1, 2, 3}, []float64{0, math.NaN(), 1, 2}))
	d := ch.Layout(host)
	require.Equal(t, 1, count[*geom.Polyline](d))
	for _, it := range d.Items {
		if pl, ok := it.(*geom.Polyline); ok {
			assert.Len(t, pl.Points, 2)
		}
	}
	assert.True(t, math32.IsNaN(ch.PX[0][1]))
}

func TestXYInvalidSeries(t *testing.T) {
	bad := &data.Series{X: []float64{1, 2}, Y: []float64{1}}
	ch := NewXY(bad)
	assert.Empty(t, ch.Series)
	d := ch.Layout(host)
	assert.Equal(t, 0, count[*geom.Polyline](d))
}

func TestScatterLog(t *testing.T) {
	ch := NewScatter(series(t, "pts", []float64{0, 1, 10, 100}, []float64{1, 2, 3, 4}))
	ch.SetScales(scale.Log, scale.Linear)
	d := ch.Layout(host)
	x, _ := ch.Axes()
	assert.Equal(t, 1.0, x.Min)
	assert.True(t, math32.IsNaN(ch.PX[0][0]))
	assert.Equal(t, 3, count[*geom.Circle](d))
	assert.Equal(t, 0, count[*geom.Polyline](d))
	assert.Contains(t, texts(d), "10^2")
	assert.Contains(t, texts(d), "pts")
}

func texts(d *geom.Drawing) []string {
	var ts []string
	for _, it := range d.Items {
		if tx, ok := it.(*geom.Text); ok {
			ts = append(ts, tx.Text)
		}
	}
	return ts
}

func TestErrorBars(t *testing.T) {
	s := series(t, "", []float64{0, 1}, []float64{1, 2})
	s.Errors = &data.ErrorBars{YMinus: []float64{0.5, 0.5}, YPlus: []float64{1, 1}}
	ch := NewXY(s)
	ch.Styler(func(st *Settings) { st.Ticks = 0 })
	d := ch.Layout(host)
	_, y := ch.Axes()
	assert.Equal(t, 0.5, y.Min)
	assert.Equal(t, 3.0, y.Max)
	// two axis lines and three lines per bar
	assert.Equal(t, 2+2*3, count[*geom.Line](d))
}

func TestStylers(t *testing.T) {
	ch := NewXY(series(t, "", []float64{0, 1}, []float64{0, 1}))
	ch.Styler(func(st *Settings) {
		st.LineWidth = 0
		st.Marker = data.MarkerSquare
	})
	d := ch.Layout(host)
	assert.Equal(t, 0, count[*geom.Polyline](d))
	assert.Equal(t, float32(1.5), ch.Settings.LineWidth)
	assert.Equal(t, 1+2, count[*geom.Rect](d))

	ch.Settings.Colors = []color.RGBA{colors.Blue}
	ch.Styler(func(st *Settings) { st.Colors[0] = colors.Red })
	ch.Layout(host)
	assert.Equal(t, colors.Blue, ch.Settings.Colors[0])
}

func TestHistogram(t *testing.T) {
	ch := NewHistogram([]float64{1, 2, 2, 3, 3, 3, 4, 4, 4, 4})
	ch.SetBins(4)
	d := ch.Layout(host)
	require.Len(t, ch.Bins, 4)
	assert.Equal(t, 1+4, count[*geom.Rect](d))
	assert.Equal(t, 4, ch.Bins[3].Count)

	ch.Clear()
	d = ch.Layout(host)
	assert.Empty(t, ch.Bins)
	assert.Equal(t, 1, count[*geom.Rect](d))
}

func TestHexbin(t *testing.T) {
	s := series(t, "", []float64{0, 1, 2, 3, 4, 5}, []float64{5, 3, 2, 2, 1, 0})
	ch := NewHexbin(s)
	ch.SetRadius(12)
	d := ch.Layout(host)
	assert.Equal(t, 6, bins.TotalCount(ch.Bins))
	assert.Equal(t, len(ch.Bins), count[*geom.Polygon](d))
	filled := 0
	for _, it := range d.Items {
		if pg, ok := it.(*geom.Polygon); ok && pg.Style.Fill.A > 0 {
			filled++
		}
	}
	assert.LessOrEqual(t, filled, 6)
	assert.Positive(t, filled)
}

func TestContourChart(t *testing.T) {
	grid := [][]float64{{0, 1, 2}, {1, 2, 3}, {2, 3, 4}}
	ch := NewContour(grid)
	ch.Styler(func(st *Settings) { st.Levels = 3 })
	d := ch.Layout(host)
	require.NotNil(t, ch.Result)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, ch.Result.Levels, 1e-12)
	assert.Equal(t, len(ch.Result.Segments), count[*geom.Line](d))
	assert.Equal(t, 1+4, count[*geom.Rect](d))

	ch.SetLevels(2)
	ch.Layout(host)
	assert.Equal(t, []float64{2}, ch.Result.Levels)

	ch.SetData([][]float64{{1, 2}, {3}})
	assert.Nil(t, ch.Grid)
	d = ch.Layout(host)
	assert.Equal(t, 0, count[*geom.Line](d))
}

func TestTreemapChart(t *testing.T) {
	ch := NewTreemap(data.TreemapNode{Label: "a", Value: 3}, data.TreemapNode{Label: "b", Value: 1})
	d := ch.Layout(host)
	require.Len(t, ch.Tiles, 2)
	assert.Equal(t, 1+2, count[*geom.Rect](d))
	assert.InDelta(t, 60+135, ch.Tiles[0].Box.Max.X, 1e-3)

	ch.Styler(func(st *Settings) { st.Squarify = true })
	ch.Layout(host)
	assert.Len(t, ch.Tiles, 2)

	ch.SetData(data.TreemapNode{Value: math.Inf(1)}, data.TreemapNode{Value: 2})
	require.Len(t, ch.Nodes, 1)
	assert.Equal(t, 2.0, ch.Nodes[0].Value)
}

func TestPieChart(t *testing.T) {
	red := colors.Red
	ch := NewDonut(0.5, data.PieSlice{Value: 1, Color: &red}, data.PieSlice{Value: 3}, data.PieSlice{Value: 0})
	d := ch.Layout(host)
	require.Len(t, ch.Wedges, 3)
	assert.Equal(t, 2, count[*geom.Arc](d))
	assert.Equal(t, float32(25), ch.Wedges[0].Arc.Inner)
	for _, it := range d.Items {
		if a, ok := it.(*geom.Arc); ok && a.Start == ch.Wedges[0].Arc.Start {
			assert.Equal(t, colors.Red, a.Style.Fill)
		}
	}
	assert.Contains(t, texts(d), "75%")

	ch.SetData()
	d = ch.Layout(host)
	assert.Equal(t, 0, count[*geom.Arc](d))

	ch.SetData(data.PieSlice{Value: 1}, data.PieSlice{Value: math.NaN()}, data.PieSlice{Value: math.Inf(1)}, data.PieSlice{Value: 1})
	require.Len(t, ch.Slices, 2)
	ch.Layout(host)
	require.Len(t, ch.Wedges, 2)
	assert.Equal(t, 0.5, ch.Wedges[1].Fraction)
}

func TestGaugeChart(t *testing.T) {
	ch := NewGauge(85)
	ch.Unit = "%"
	d := ch.Layout(host)
	require.NotNil(t, ch.Dial)
	assert.InDelta(t, 0.85, ch.Dial.Ratio, 1e-12)
	assert.Equal(t, colors.Red, ch.Dial.Active)
	assert.Equal(t, 2, count[*geom.Arc](d))
	assert.Contains(t, texts(d), "85.0%")

	ch.SetRange(0, 200)
	ch.Layout(host)
	assert.Equal(t, colors.Red, ch.Dial.Active)
	assert.InDelta(t, 0.425, ch.Dial.Ratio, 1e-12)

	ch.SetData(65)
	ch.Layout(host)
	assert.Equal(t, colors.Orange, ch.Dial.Active)

	ch.SetData(-5)
	d = ch.Layout(host)
	assert.Equal(t, colors.Green, ch.Dial.Active)
	assert.Equal(t, 1, count[*geom.Arc](d))
}

func TestRadarChart(t *testing.T) {
	ch := NewRadar([]string{"a", "b", "c", "d", "e"},
		data.PolarSeries{Label: "one", Values: []float64{1, 2, 3, 4, 5}},
		data.PolarSeries{Label: "two", Values: []float64{5, 4, 3, 2, 1}})
	d := ch.Layout(host)
	require.NotNil(t, ch.Web)
	assert.Equal(t, 5.0, ch.Web.Max)
	assert.Equal(t, 5+2, count[*geom.Polygon](d))

	ch.SetRange(10)
	ch.Layout(host)
	assert.Equal(t, 10.0, ch.Web.Max)

	ch.SetAxes()
	d = ch.Layout(host)
	assert.Nil(t, ch.Web)
	assert.Equal(t, 0, count[*geom.Polygon](d))
}

func TestCandlestickChart(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	vol := 100.0
	ch := NewCandlestick(
		data.Candle{Time: day, Open: 10, High: 12, Low: 9, Close: 11, Volume: &vol},
		data.Candle{Time: day.AddDate(0, 0, 1), Open: 11, High: 10, Low: 9, Close: 10},
		data.Candle{Time: day.AddDate(0, 0, 2), Open: 11, High: 11.5, Low: 8, Close: 9},
	)
	require.Len(t, ch.Candles, 2)
	d := ch.Layout(host)
	require.Len(t, ch.Glyphs, 2)
	assert.True(t, ch.Glyphs[0].Bullish)
	assert.False(t, ch.Glyphs[1].Bullish)
	// background, two bodies and one volume bar
	assert.Equal(t, 4, count[*geom.Rect](d))
	assert.Contains(t, texts(d), "3/1")
}

func TestScatter3D(t *testing.T) {
	ch := NewScatter3D()
	ch.SetXYZ([]float64{0, 1, 2, 3}, []float64{3, 1, 2, 0}, []float64{1, 1, 2, 2})
	d := ch.Layout(host)
	require.Len(t, ch.Order, 4)
	assert.Equal(t, 4, count[*geom.Circle](d))
	assert.Equal(t, 12, count[*geom.Line](d))
	for i := 1; i < len(ch.Order); i++ {
		assert.GreaterOrEqual(t, ch.Order[i-1].Depth, ch.Order[i].Depth)
	}

	ch.Rotate(90, 0)
	assert.True(t, ch.Dirty())
	assert.Equal(t, 30.0, ch.View3D.Azimuth)
	ch.Zoom(2)
	assert.Equal(t, 6.0, ch.View3D.Distance)
}

func TestSurface3D(t *testing.T) {
	ch := NewSurface3D([][]float64{{0, 1, 2}, {1, 2, 3}})
	d := ch.Layout(host)
	assert.Len(t, ch.Quads, 2)
	assert.Equal(t, 2, count[*geom.Polygon](d))
}

func TestLayoutAll(t *testing.T) {
	charts := []Chart{
		NewXY(series(t, "", []float64{0, 1}, []float64{0, 1})),
		NewHistogram([]float64{1, 2, 3}),
		NewPie(data.PieSlice{Value: 1}),
		NewGauge(10),
	}
	ds, err := LayoutAll(context.Background(), host, charts...)
	require.NoError(t, err)
	require.Len(t, ds, len(charts))
	for i, d := range ds {
		assert.NotNil(t, d, "chart %d", i)
		assert.False(t, charts[i].Dirty())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = LayoutAll(ctx, host, NewGauge(1))
	assert.ErrorIs(t, err, context.Canceled)
}
