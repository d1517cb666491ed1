// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgexport writes a [geom.Drawing] as an SVG document.
package svgexport

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/core/math32"
	svg "github.com/ajstarks/svgo"
)

// DashArray is the stroke-dasharray of dashed strokes.
const DashArray = "4,3"

// errWriter keeps the first write error, since svgo does not
// report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}

// Write writes the drawing as an SVG document of the given size,
// painting the items in order.
func Write(w io.Writer, d *geom.Drawing, width, height int) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	for _, it := range d.Items {
		writeItem(canvas, it)
	}
	canvas.End()
	return ew.err
}

func writeItem(canvas *svg.SVG, it geom.Item) {
	switch it := it.(type) {
	case *geom.Line:
		p := &path{}
		p.move(it.From)
		p.line(it.To)
		canvas.Path(p.String(), style(it.Style, false))
	case *geom.Polyline:
		if len(it.Points) < 2 {
			return
		}
		canvas.Path(polyPath(it.Points, false), style(it.Style, false))
	case *geom.Polygon:
		if len(it.Points) < 3 {
			return
		}
		canvas.Path(polyPath(it.Points, true), style(it.Style, true))
	case *geom.Rect:
		b := it.Box
		canvas.Path(polyPath([]math32.Vector2{b.Min, {X: b.Max.X, Y: b.Min.Y}, b.Max, {X: b.Min.X, Y: b.Max.Y}}, true), style(it.Style, true))
	case *geom.Circle:
		canvas.Path(circlePath(it.Center, it.Radius), style(it.Style, true))
	case *geom.Arc:
		canvas.Path(arcPath(it), style(it.Style, true))
	case *geom.Text:
		if it.Color.A == 0 || it.Text == "" {
			return
		}
		canvas.Text(int(math32.Round(it.Pos.X)), int(math32.Round(it.Pos.Y)), it.Text,
			`text-anchor="`+anchor(it.Align)+`"`,
			fmt.Sprintf(`font-size="%.6g"`, it.Size),
			fmt.Sprintf(`font-family="sans-serif" style="%s"`, paint("fill", it.Color)))
	}
}

func anchor(a geom.Aligns) string {
	switch a {
	case geom.AlignCenter:
		return "middle"
	case geom.AlignEnd:
		return "end"
	}
	return "start"
}

// paint returns the CSS for a color property, with the alpha
// premultiplication of c undone.
func paint(prop string, c color.RGBA) string {
	if c.A == 0 {
		return prop + ":none"
	}
	r, g, b := uint32(c.R), uint32(c.G), uint32(c.B)
	if c.A != 0xff {
		a := uint32(c.A)
		r, g, b = min(r*0xff/a, 0xff), min(g*0xff/a, 0xff), min(b*0xff/a, 0xff)
	}
	css := fmt.Sprintf("%s:#%02x%02x%02x", prop, r, g, b)
	if c.A != 0xff {
		css += fmt.Sprintf(";%s-opacity:%.3g", prop, float64(c.A)/0xff)
	}
	return css
}

// style returns the style attribute for a shape. Open shapes are
// never filled.
func style(s geom.Style, closed bool) string {
	var b strings.Builder
	b.WriteString(`style="`)
	if closed {
		b.WriteString(paint("fill", s.Fill))
	} else {
		b.WriteString("fill:none")
	}
	if s.Width > 0 && s.Stroke.A > 0 {
		b.WriteString(";" + paint("stroke", s.Stroke))
		b.WriteString(";stroke-width:" + strconv.FormatFloat(float64(s.Width), 'g', 4, 32))
		if s.Dashed {
			b.WriteString(";stroke-dasharray:" + DashArray)
		}
	} else {
		b.WriteString(";stroke:none")
	}
	b.WriteString(`"`)
	return b.String()
}

// path builds SVG path data.
type path struct {
	b []byte
}

func (p *path) String() string {
	return string(p.b)
}

func (p *path) cmd(c byte, vs ...float32) {
	if len(p.b) > 0 {
		p.b = append(p.b, ' ')
	}
	p.b = append(p.b, c)
	for _, v := range vs {
		p.b = append(p.b, ' ')
		p.b = strconv.AppendFloat(p.b, float64(v), 'g', 6, 32)
	}
}

func (p *path) move(v math32.Vector2) { p.cmd('M', v.X, v.Y) }
func (p *path) line(v math32.Vector2) { p.cmd('L', v.X, v.Y) }
func (p *path) close()                { p.cmd('Z') }

// arc adds an elliptical arc command to v with radius r.
func (p *path) arc(r float32, large, sweep bool, v math32.Vector2) {
	p.cmd('A', r, r, 0, flag(large), flag(sweep), v.X, v.Y)
}

func flag(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

func polyPath(pts []math32.Vector2, closed bool) string {
	p := &path{}
	p.move(pts[0])
	for _, v := range pts[1:] {
		p.line(v)
	}
	if closed {
		p.close()
	}
	return p.String()
}

func circlePath(c math32.Vector2, r float32) string {
	p := &path{}
	p.move(math32.Vec2(c.X-r, c.Y))
	p.arc(r, true, true, math32.Vec2(c.X+r, c.Y))
	p.arc(r, true, true, math32.Vec2(c.X-r, c.Y))
	p.close()
	return p.String()
}

// arcPath returns the path of a sector or annular sector. A sweep of
// a full turn or more is drawn as a polygon, since an SVG arc cannot
// end where it starts.
func arcPath(ac *geom.Arc) string {
	sweep := ac.End - ac.Start
	if math32.Abs(sweep) >= 2*math32.Pi-1e-4 {
		return polyPath(geom.ArcPolygon(ac, 128), true)
	}
	large := math32.Abs(sweep) > math32.Pi
	cw := sweep > 0
	p := &path{}
	p.move(geom.Polar(ac.Center, ac.Outer, ac.Start))
	p.arc(ac.Outer, large, cw, geom.Polar(ac.Center, ac.Outer, ac.End))
	if ac.Inner > 0 {
		p.line(geom.Polar(ac.Center, ac.Inner, ac.End))
		p.arc(ac.Inner, large, !cw, geom.Polar(ac.Center, ac.Inner, ac.Start))
	} else {
		p.line(ac.Center)
	}
	p.close()
	return p.String()
}
