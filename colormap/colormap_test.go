// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	cm := NewMap("bw", "#000000", "#ffffff")
	require.Len(t, cm.Colors, 2)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, cm.Sample(0))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, cm.Sample(1))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, cm.Sample(-3))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, cm.Sample(7))
	mid := cm.Sample(0.5)
	assert.InDelta(t, 128, int(mid.R), 1)
	assert.Equal(t, mid.R, mid.G)
	assert.Equal(t, mid.G, mid.B)
}

func TestSampleStops(t *testing.T) {
	cm := NewMap("rgb", "#ff0000", "#00ff00", "#0000ff")
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, cm.Sample(0.5))
	q := cm.Sample(0.75)
	assert.Equal(t, uint8(0), q.R)
	assert.InDelta(t, 128, int(q.G), 1)
	assert.InDelta(t, 128, int(q.B), 1)
}

func TestBadStops(t *testing.T) {
	cm := NewMap("bad", "#zzzzzz", "#102030")
	assert.Len(t, cm.Colors, 1)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 255}, cm.Sample(0.3))
	assert.Equal(t, color.RGBA{}, (&Map{}).Sample(0.5))
}

func TestRegistry(t *testing.T) {
	rg := StandardRegistry()
	names := rg.Names()
	assert.Len(t, names, 16)
	for _, nm := range []string{"Viridis", "Plasma", "Inferno", "Magma", "Cividis", "Coolwarm", "RdBu", "Spectral", "Blues", "Greens", "Oranges", "Reds", "Greys", "Jet", "Hot", "Turbo"} {
		cm, ok := rg.Lookup(nm)
		require.True(t, ok, nm)
		assert.GreaterOrEqual(t, len(cm.Colors), 4, nm)
	}

	vir := rg.Get("Viridis")
	assert.Equal(t, vir, rg.Get("no-such-map"))
	assert.Equal(t, vir, rg.Get("viridis"))

	rev := rg.Get("Viridis_r")
	assert.Equal(t, "Viridis_r", rev.Name)
	assert.Equal(t, vir.Sample(0), rev.Sample(1))
	assert.Equal(t, vir.Sample(1), rev.Sample(0))
}

func TestRegistryWith(t *testing.T) {
	rg := StandardRegistry()
	custom := NewMap("Mono", "#000000", "#00ff00")
	nr := rg.With(custom)
	_, ok := rg.Lookup("Mono")
	assert.False(t, ok)
	cm, ok := nr.Lookup("Mono")
	require.True(t, ok)
	assert.Equal(t, custom, cm)
	assert.Len(t, nr.Names(), 17)
}

func TestCategorical(t *testing.T) {
	assert.NotEqual(t, Categorical(0), Categorical(1))
	assert.Equal(t, uint8(255), Categorical(3).A)
}
