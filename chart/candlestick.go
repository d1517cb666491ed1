// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cogentcore.org/chartgeom/data"
	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/chartgeom/layout"
	"cogentcore.org/chartgeom/scale"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

// Candlestick is an OHLC chart with optional volume bars.
type Candlestick struct {
	Base

	// Candles are the records, in time order.
	Candles []data.Candle

	// YRange fixes the price range when set.
	YRange *minmax.F64

	// Glyphs are the placed candles of the last layout.
	Glyphs []layout.CandleGlyph
}

// NewCandlestick returns a new candlestick chart of the candles.
func NewCandlestick(candles ...data.Candle) *Candlestick {
	ch := &Candlestick{}
	ch.Defaults()
	ch.SetData(candles...)
	return ch
}

// SetData sets the candles. Candles failing validation are logged
// and dropped.
func (ch *Candlestick) SetData(candles ...data.Candle) {
	ch.Candles = nil
	for i := range candles {
		if errors.Log(candles[i].Validate()) == nil {
			ch.Candles = append(ch.Candles, candles[i])
		}
	}
	ch.MarkDirty()
}

// SetRange fixes the price range; nil is automatic.
func (ch *Candlestick) SetRange(y *minmax.F64) {
	ch.YRange = y
	ch.MarkDirty()
}

func (ch *Candlestick) Clear() {
	ch.Candles, ch.Glyphs = nil, nil
	ch.MarkDirty()
}

func (ch *Candlestick) Layout(rect math32.Box2) *geom.Drawing {
	return ch.layout(rect, ch.draw)
}

func (ch *Candlestick) hasVolume() bool {
	for i := range ch.Candles {
		if ch.Candles[i].Volume != nil {
			return true
		}
	}
	return false
}

func (ch *Candlestick) draw(d *geom.Drawing, st *Settings) {
	if len(ch.Candles) == 0 {
		ch.Glyphs = nil
		return
	}
	frac := float32(0)
	if ch.hasVolume() {
		frac = st.VolumeFraction
	}
	price, volume := layout.CandleArea(ch.PlotArea, frac)
	ya := layout.PriceRange(ch.Candles)
	if ch.YRange != nil {
		ya.Min, ya.Max = ch.YRange.Min, ch.YRange.Max
	}
	drawYAxis(d, st, price, &ya)
	ch.Glyphs = layout.Candles(ch.Candles, price, volume, ya)

	// date labels on about Ticks candles
	step := max(1, len(ch.Candles)/max(st.Ticks, 1))
	for i := 0; i < len(ch.Glyphs); i += step {
		g := &ch.Glyphs[i]
		secs := float64(ch.Candles[g.Index].Time.Unix())
		d.Add(&geom.Text{Pos: math32.Vec2(g.High.X, ch.PlotArea.Max.Y+TickLength+st.FontSize), Text: scale.Time.FormatTick(secs),
			Align: geom.AlignCenter, Size: st.FontSize, Color: st.Foreground})
	}
	for i := range ch.Glyphs {
		g := &ch.Glyphs[i]
		clr := st.Bearish
		if g.Bullish {
			clr = st.Bullish
		}
		d.Add(&geom.Line{From: g.High, To: g.Low, Style: geom.Stroked(clr, 1)})
		d.Add(&geom.Rect{Box: g.Body, Style: geom.Style{Fill: clr, Stroke: clr, Width: 1}})
		if geom.Area(g.Volume) > 0 {
			d.Add(&geom.Rect{Box: g.Volume, Style: geom.Filled(withAlpha(clr, 0x80))})
		}
	}
}
