// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"cogentcore.org/chartgeom/chart"
	"cogentcore.org/chartgeom/data"
	"cogentcore.org/chartgeom/scale"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32/minmax"
)

// Kinds are the chart types a [Document] can describe.
type Kinds int32 //enums:enum

const (
	KindXY Kinds = iota
	KindScatter
	KindHistogram
	KindHexbin
	KindContour
	KindTreemap
	KindPie
	KindGauge
	KindRadar
	KindCandlestick
	KindScatter3D
	KindSurface3D

	// KindsN is the number of chart kinds.
	KindsN
)

var kindNames = [...]string{"xy", "scatter", "histogram", "hexbin", "contour", "treemap",
	"pie", "gauge", "radar", "candlestick", "scatter3d", "surface3d"}

func (k Kinds) String() string {
	if k < 0 || k >= KindsN {
		return fmt.Sprintf("Kinds(%d)", int32(k))
	}
	return kindNames[k]
}

// SetString sets the kind from its name, case-insensitively.
func (k *Kinds) SetString(s string) error {
	for i, nm := range kindNames {
		if strings.EqualFold(nm, s) {
			*k = Kinds(i)
			return nil
		}
	}
	return errors.New("config: unknown chart kind " + s)
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kinds) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kinds) UnmarshalText(text []byte) error {
	return k.SetString(string(text))
}

// KindsValues returns all chart kinds.
func KindsValues() []Kinds {
	ks := make([]Kinds, KindsN)
	for i := range ks {
		ks[i] = Kinds(i)
	}
	return ks
}

// Document describes one chart: its kind, title, options and data.
// Only the data fields used by the kind are read.
type Document struct {
	Kind    Kinds   `toml:"kind" yaml:"kind" json:"kind"`
	Title   string  `toml:"title" yaml:"title" json:"title"`
	Options Options `toml:"options" yaml:"options" json:"options"`

	// XScale and YScale are the axis scales of xy and scatter charts.
	XScale scale.Types `toml:"x_scale" yaml:"x_scale" json:"x_scale"`
	YScale scale.Types `toml:"y_scale" yaml:"y_scale" json:"y_scale"`

	// XRange and YRange fix the axis ranges of xy, scatter and
	// candlestick charts.
	XRange *minmax.F64 `toml:"x_range" yaml:"x_range" json:"x_range"`
	YRange *minmax.F64 `toml:"y_range" yaml:"y_range" json:"y_range"`

	Series  []SeriesDoc `toml:"series" yaml:"series" json:"series"`
	Values  []float64   `toml:"values" yaml:"values" json:"values"`
	Grid    [][]float64 `toml:"grid" yaml:"grid" json:"grid"`
	Levels  []float64   `toml:"levels" yaml:"levels" json:"levels"`
	Slices  []SliceDoc  `toml:"slices" yaml:"slices" json:"slices"`
	Gauge   *GaugeDoc   `toml:"gauge" yaml:"gauge" json:"gauge"`
	Axes    []string    `toml:"axes" yaml:"axes" json:"axes"`
	Candles []CandleDoc `toml:"candles" yaml:"candles" json:"candles"`
	Points  []PointDoc  `toml:"points" yaml:"points" json:"points"`
	View    *ViewDoc    `toml:"view" yaml:"view" json:"view"`
}

// SeriesDoc is a series of (x, y) points, or a polar series of a
// radar chart when only Y is given.
type SeriesDoc struct {
	Label      string             `toml:"label" yaml:"label" json:"label"`
	X          []float64          `toml:"x" yaml:"x" json:"x"`
	Y          []float64          `toml:"y" yaml:"y" json:"y"`
	Color      *Color             `toml:"color" yaml:"color" json:"color"`
	LineWidth  *float32           `toml:"line_width" yaml:"line_width" json:"line_width"`
	Marker     *data.MarkerShapes `toml:"marker" yaml:"marker" json:"marker"`
	MarkerSize *float32           `toml:"marker_size" yaml:"marker_size" json:"marker_size"`
	XMinus     []float64          `toml:"x_minus" yaml:"x_minus" json:"x_minus"`
	XPlus      []float64          `toml:"x_plus" yaml:"x_plus" json:"x_plus"`
	YMinus     []float64          `toml:"y_minus" yaml:"y_minus" json:"y_minus"`
	YPlus      []float64          `toml:"y_plus" yaml:"y_plus" json:"y_plus"`
}

// SliceDoc is a labeled value of a pie or treemap.
type SliceDoc struct {
	Label string  `toml:"label" yaml:"label" json:"label"`
	Value float64 `toml:"value" yaml:"value" json:"value"`
	Color *Color  `toml:"color" yaml:"color" json:"color"`
}

// GaugeDoc is the value, range and bands of a gauge.
type GaugeDoc struct {
	Value      float64        `toml:"value" yaml:"value" json:"value"`
	Min        *float64       `toml:"min" yaml:"min" json:"min"`
	Max        *float64       `toml:"max" yaml:"max" json:"max"`
	Unit       string         `toml:"unit" yaml:"unit" json:"unit"`
	Thresholds []ThresholdDoc `toml:"thresholds" yaml:"thresholds" json:"thresholds"`
}

// ThresholdDoc is a gauge color band starting at Value.
type ThresholdDoc struct {
	Value float64 `toml:"value" yaml:"value" json:"value"`
	Color Color   `toml:"color" yaml:"color" json:"color"`
}

// CandleDoc is one OHLC record.
type CandleDoc struct {
	Time   time.Time `toml:"time" yaml:"time" json:"time"`
	Open   float64   `toml:"open" yaml:"open" json:"open"`
	High   float64   `toml:"high" yaml:"high" json:"high"`
	Low    float64   `toml:"low" yaml:"low" json:"low"`
	Close  float64   `toml:"close" yaml:"close" json:"close"`
	Volume *float64  `toml:"volume" yaml:"volume" json:"volume"`
}

// PointDoc is one point of a 3D scatter.
type PointDoc struct {
	X     float64  `toml:"x" yaml:"x" json:"x"`
	Y     float64  `toml:"y" yaml:"y" json:"y"`
	Z     float64  `toml:"z" yaml:"z" json:"z"`
	Color *Color   `toml:"color" yaml:"color" json:"color"`
	Size  *float32 `toml:"size" yaml:"size" json:"size"`
}

// ViewDoc is the initial orbit view of a 3D chart.
type ViewDoc struct {
	Azimuth   *float64 `toml:"azimuth" yaml:"azimuth" json:"azimuth"`
	Elevation *float64 `toml:"elevation" yaml:"elevation" json:"elevation"`
	Distance  *float64 `toml:"distance" yaml:"distance" json:"distance"`
}

// OpenDocument reads a chart document from a file.
func OpenDocument(filename string) (*Document, error) {
	doc := &Document{}
	if err := Open(doc, filename); err != nil {
		return nil, err
	}
	return doc, nil
}

func colorPtr(c *Color) *color.RGBA {
	if c == nil {
		return nil
	}
	rc := c.RGBA
	return &rc
}

// series converts the series docs, returning the joined validation
// errors of the invalid ones.
func (d *Document) series() ([]*data.Series, error) {
	var ss []*data.Series
	var errs []error
	for _, sd := range d.Series {
		s := &data.Series{Label: sd.Label, X: sd.X, Y: sd.Y}
		s.Style = data.SeriesStyle{Color: colorPtr(sd.Color), LineWidth: sd.LineWidth, Marker: sd.Marker, MarkerSize: sd.MarkerSize}
		if sd.XMinus != nil || sd.XPlus != nil || sd.YMinus != nil || sd.YPlus != nil {
			s.Errors = &data.ErrorBars{XMinus: sd.XMinus, XPlus: sd.XPlus, YMinus: sd.YMinus, YPlus: sd.YPlus}
		}
		if err := s.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		ss = append(ss, s)
	}
	return ss, errors.Join(errs...)
}

// Build returns the chart described by the document, with the
// document options resolved over the defaults. Invalid records are
// reported in the error, along with the chart of the valid ones.
func (d *Document) Build() (chart.Chart, error) {
	return d.BuildWith(nil)
}

// BuildWith is like [Document.Build], with the defaults options
// applied before the document options.
func (d *Document) BuildWith(defaults *Options) (chart.Chart, error) {
	var ch chart.Chart
	var base *chart.Base
	var errs []error
	switch d.Kind {
	case KindXY, KindScatter:
		ss, err := d.series()
		errs = append(errs, err)
		var xy *chart.XY
		if d.Kind == KindScatter {
			xy = chart.NewScatter(ss...)
		} else {
			xy = chart.NewXY(ss...)
		}
		xy.SetScales(d.XScale, d.YScale)
		xy.SetRange(d.XRange, d.YRange)
		ch, base = xy, &xy.Base
	case KindHistogram:
		h := chart.NewHistogram(d.Values)
		ch, base = h, &h.Base
	case KindHexbin:
		ss, err := d.series()
		errs = append(errs, err)
		h := chart.NewHexbin(ss...)
		ch, base = h, &h.Base
	case KindContour:
		if _, _, err := data.Grid(d.Grid); err != nil {
			return nil, err
		}
		c := chart.NewContour(d.Grid)
		if len(d.Levels) > 0 {
			c.SetLevels(d.Levels...)
		}
		ch, base = c, &c.Base
	case KindTreemap:
		nodes := make([]data.TreemapNode, len(d.Slices))
		for i, sl := range d.Slices {
			nodes[i] = data.TreemapNode{Label: sl.Label, Value: sl.Value, Color: colorPtr(sl.Color)}
		}
		t := chart.NewTreemap(nodes...)
		ch, base = t, &t.Base
	case KindPie:
		slices := make([]data.PieSlice, len(d.Slices))
		for i, sl := range d.Slices {
			slices[i] = data.PieSlice{Label: sl.Label, Value: sl.Value, Color: colorPtr(sl.Color)}
		}
		p := chart.NewPie(slices...)
		ch, base = p, &p.Base
	case KindGauge:
		g := chart.NewGauge(0)
		if gd := d.Gauge; gd != nil {
			g.SetData(gd.Value)
			mn, mx := g.Min, g.Max
			if gd.Min != nil {
				mn = *gd.Min
			}
			if gd.Max != nil {
				mx = *gd.Max
			}
			g.SetRange(mn, mx)
			g.Unit = gd.Unit
			ths := make([]data.Threshold, len(gd.Thresholds))
			for i, th := range gd.Thresholds {
				ths[i] = data.Threshold{Value: th.Value, Color: th.Color.RGBA}
			}
			g.SetThresholds(ths...)
		}
		ch, base = g, &g.Base
	case KindRadar:
		ps := make([]data.PolarSeries, len(d.Series))
		for i, sd := range d.Series {
			ps[i] = data.PolarSeries{Label: sd.Label, Values: sd.Y, Color: colorPtr(sd.Color)}
		}
		r := chart.NewRadar(d.Axes, ps...)
		if d.YRange != nil {
			r.SetRange(d.YRange.Max)
		}
		ch, base = r, &r.Base
	case KindCandlestick:
		var cs []data.Candle
		for _, cd := range d.Candles {
			c := data.Candle{Time: cd.Time, Open: cd.Open, High: cd.High, Low: cd.Low, Close: cd.Close, Volume: cd.Volume}
			if err := c.Validate(); err != nil {
				errs = append(errs, err)
				continue
			}
			cs = append(cs, c)
		}
		c := chart.NewCandlestick(cs...)
		c.SetRange(d.YRange)
		ch, base = c, &c.Base
	case KindScatter3D:
		pts := make([]data.Point3D, len(d.Points))
		for i, pd := range d.Points {
			pts[i] = data.Point3D{X: pd.X, Y: pd.Y, Z: pd.Z, Color: colorPtr(pd.Color), Size: pd.Size}
		}
		s := chart.NewScatter3D(pts...)
		d.View.apply(&s.View)
		ch, base = s, &s.Base
	case KindSurface3D:
		if _, _, err := data.Grid(d.Grid); err != nil {
			return nil, err
		}
		s := chart.NewSurface3D(d.Grid)
		d.View.apply(&s.View)
		ch, base = s, &s.Base
	default:
		return nil, fmt.Errorf("config: unknown chart kind %v", d.Kind)
	}
	st := base.Settings
	defaults.Apply(&st)
	d.Options.Apply(&st)
	base.SetSettings(st)
	base.Colormaps = d.Options.Extend(defaults.Registry())
	base.SetTitle(d.Title)
	return ch, errors.Join(errs...)
}

func (vd *ViewDoc) apply(v *chart.View) {
	if vd == nil {
		return
	}
	v3 := v.Orbit()
	if vd.Azimuth != nil {
		v3.SetAzimuth(*vd.Azimuth)
	}
	if vd.Elevation != nil {
		v3.SetElevation(*vd.Elevation)
	}
	if vd.Distance != nil {
		v3.SetDistance(*vd.Distance)
	}
}
