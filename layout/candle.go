// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"cogentcore.org/chartgeom/data"
	"cogentcore.org/chartgeom/scale"
	"cogentcore.org/core/math32"
)

// CandleWidth is the fraction of its slot taken by a candle body.
const CandleWidth = 0.7

// CandleGlyph is a placed candle.
type CandleGlyph struct {
	// Index of the candle in the input.
	Index int

	// Body spans open to close, at least one pixel tall.
	Body math32.Box2

	// High and Low are the wick ends at the slot center.
	High, Low math32.Vector2

	Bullish bool

	// Volume is the volume bar, empty when the candle has no volume.
	Volume math32.Box2
}

// CandleArea splits area into the price area and the volume area at
// the bottom, which takes volumeFrac of the height.
func CandleArea(area math32.Box2, volumeFrac float32) (price, volume math32.Box2) {
	volumeFrac = math32.Clamp(volumeFrac, 0, 1)
	split := area.Max.Y - volumeFrac*area.Size().Y
	price = math32.B2(area.Min.X, area.Min.Y, area.Max.X, split)
	volume = math32.B2(area.Min.X, split, area.Max.X, area.Max.Y)
	return
}

// PriceRange returns the low to high range of the candles.
func PriceRange(cs []data.Candle) scale.Axis {
	rng := data.NewRange()
	for i := range cs {
		data.Range([]float64{cs[i].Low, cs[i].High}, &rng)
	}
	data.FloorRange(&rng, 0.1)
	return scale.Axis{Type: scale.Linear, Min: rng.Min, Max: rng.Max}
}

// Candles lays out the candles in equal slots across the price area,
// mapping prices with y. Volume bars share the volume area, scaled
// to the largest volume, and are omitted when volume is empty.
func Candles(cs []data.Candle, price, volume math32.Box2, y scale.Axis) []CandleGlyph {
	if len(cs) == 0 {
		return nil
	}
	maxVol := 0.0
	for i := range cs {
		if v := cs[i].Volume; v != nil && *v > maxVol {
			maxVol = *v
		}
	}
	slot := price.Size().X / float32(len(cs))
	half := 0.5 * CandleWidth * slot
	py := func(v float64) float32 {
		return y.PX(v, price.Max.Y, price.Min.Y)
	}
	gs := make([]CandleGlyph, len(cs))
	for i := range cs {
		c := &cs[i]
		cx := price.Min.X + (float32(i)+0.5)*slot
		top, bot := py(max(c.Open, c.Close)), py(min(c.Open, c.Close))
		if bot-top < 1 {
			mid := 0.5 * (top + bot)
			top, bot = mid-0.5, mid+0.5
		}
		g := CandleGlyph{
			Index:   i,
			Body:    math32.B2(cx-half, top, cx+half, bot),
			High:    math32.Vec2(cx, py(c.High)),
			Low:     math32.Vec2(cx, py(c.Low)),
			Bullish: c.IsBullish(),
		}
		if c.Volume != nil && maxVol > 0 && volume.Size().Y > 0 {
			h := float32(*c.Volume/maxVol) * volume.Size().Y
			g.Volume = math32.B2(cx-half, volume.Max.Y-h, cx+half, volume.Max.Y)
		}
		gs[i] = g
	}
	return gs
}
