// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package proj3d projects normalized 3D data onto the screen for
// 3D scatter and surface charts, and orders it back to front for
// painter's algorithm drawing.
package proj3d

import (
	"math"

	"cogentcore.org/core/math32"
)

// MinDistance is the floor for the view distance.
const MinDistance = 0.1

// View3D is an orbit view of the unit cube. Z is the vertical axis.
type View3D struct {
	// Azimuth is the rotation about the vertical axis in degrees.
	Azimuth float64

	// Elevation is the angle of the viewer above the horizontal plane
	// in degrees, within [-90, 90].
	Elevation float64

	// Distance is the perspective distance, >= [MinDistance].
	Distance float64
}

// NewView3D returns a view with the default azimuth of -60 degrees,
// elevation of 30 degrees and distance of 3.
func NewView3D() *View3D {
	v := &View3D{}
	v.Defaults()
	return v
}

func (v *View3D) Defaults() {
	v.Azimuth = -60
	v.Elevation = 30
	v.Distance = 3
}

// SetAzimuth sets the azimuth in degrees.
func (v *View3D) SetAzimuth(deg float64) *View3D {
	v.Azimuth = deg
	return v
}

// SetElevation sets the elevation in degrees, clamped to [-90, 90].
func (v *View3D) SetElevation(deg float64) *View3D {
	v.Elevation = math.Min(math.Max(deg, -90), 90)
	return v
}

// SetDistance sets the distance, floored at [MinDistance].
func (v *View3D) SetDistance(d float64) *View3D {
	v.Distance = math.Max(d, MinDistance)
	return v
}

// Rotate orbits the view by the given degrees.
func (v *View3D) Rotate(dAzimuth, dElevation float64) *View3D {
	v.SetAzimuth(v.Azimuth + dAzimuth)
	return v.SetElevation(v.Elevation + dElevation)
}

// Zoom multiplies the distance by factor.
func (v *View3D) Zoom(factor float64) *View3D {
	return v.SetDistance(v.Distance * factor)
}

// rotate applies the azimuth about z and then the elevation about x,
// returning the horizontal screen axis, the depth and the vertical
// screen axis.
func (v *View3D) rotate(x, y, z float64) (sx, depth, up float64) {
	sa, ca := math.Sincos(v.Azimuth * math.Pi / 180)
	x1 := x*ca - y*sa
	y1 := x*sa + y*ca
	se, ce := math.Sincos(v.Elevation * math.Pi / 180)
	depth = y1*ce - z*se
	up = y1*se + z*ce
	return x1, depth, up
}

// Depth returns the distance of the point into the screen after
// rotation. Larger is farther.
func (v *View3D) Depth(x, y, z float64) float64 {
	_, d, _ := v.rotate(x, y, z)
	return d
}

// Project returns the screen position of the point, with y up,
// scaled by the perspective factor distance/(distance + depth + 2).
func (v *View3D) Project(x, y, z float64) (sx, sy float64) {
	x1, d, up := v.rotate(x, y, z)
	dist := math.Max(v.Distance, MinDistance)
	f := dist / (dist + d + 2)
	return x1 * f, up * f
}

// ToScreen maps a projected position into area, with the unit cube
// fitting inside the shorter side. Screen y grows downward.
func ToScreen(sx, sy float64, area math32.Box2) math32.Vector2 {
	c := area.Center()
	sz := area.Size()
	s := 0.5 * math32.Min(sz.X, sz.Y) / math32.Sqrt(3)
	return math32.Vec2(c.X+float32(sx)*s, c.Y-float32(sy)*s)
}

// Vec3 is a point in normalized data space.
type Vec3 struct {
	X, Y, Z float64
}

// CubeEdges returns the 12 edges of the normalized cube [-1, 1]^3.
func CubeEdges() [12][2]Vec3 {
	var es [12][2]Vec3
	n := 0
	for _, a := range []float64{-1, 1} {
		for _, b := range []float64{-1, 1} {
			es[n] = [2]Vec3{{-1, a, b}, {1, a, b}}
			es[n+1] = [2]Vec3{{a, -1, b}, {a, 1, b}}
			es[n+2] = [2]Vec3{{a, b, -1}, {a, b, 1}}
			n += 3
		}
	}
	return es
}
