// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"log/slog"
	"slices"
	"strings"
)

// DefaultName is the map returned for unknown names.
const DefaultName = "Viridis"

// ReverseSuffix on a name selects the reversed version of a map.
const ReverseSuffix = "_r"

// Registry is an immutable set of named maps. Use [StandardRegistry]
// for the built-in palettes and [Registry.With] to extend it.
type Registry struct {
	maps map[string]*Map
}

// NewRegistry returns a registry holding the given maps.
func NewRegistry(maps ...*Map) *Registry {
	rg := &Registry{maps: make(map[string]*Map, len(maps))}
	for _, cm := range maps {
		rg.maps[cm.Name] = cm
	}
	return rg
}

// StandardRegistry returns a registry with the standard palettes.
func StandardRegistry() *Registry {
	return NewRegistry(standardMaps()...)
}

// With returns a new registry with the given maps added to (or
// replacing) the maps of rg. rg itself is not changed.
func (rg *Registry) With(maps ...*Map) *Registry {
	nr := &Registry{maps: make(map[string]*Map, len(rg.maps)+len(maps))}
	for k, v := range rg.maps {
		nr.maps[k] = v
	}
	for _, cm := range maps {
		nr.maps[cm.Name] = cm
	}
	return nr
}

// Lookup returns the named map and whether it exists. Names are
// matched case-insensitively, and a "_r" suffix reverses the map.
func (rg *Registry) Lookup(name string) (*Map, bool) {
	if cm, ok := rg.find(name); ok {
		return cm, true
	}
	if base, ok := strings.CutSuffix(name, ReverseSuffix); ok {
		if cm, ok := rg.find(base); ok {
			return cm.Reversed(), true
		}
	}
	return nil, false
}

func (rg *Registry) find(name string) (*Map, bool) {
	if cm, ok := rg.maps[name]; ok {
		return cm, true
	}
	for k, cm := range rg.maps {
		if strings.EqualFold(k, name) {
			return cm, true
		}
	}
	return nil, false
}

// Get returns the named map, falling back to Viridis for unknown names.
func (rg *Registry) Get(name string) *Map {
	if cm, ok := rg.Lookup(name); ok {
		return cm
	}
	slog.Warn("colormap: unknown map, using default", "name", name, "default", DefaultName)
	if cm, ok := rg.maps[DefaultName]; ok {
		return cm
	}
	return NewMap(DefaultName, viridis...)
}

// Names returns the sorted names of all maps in the registry.
func (rg *Registry) Names() []string {
	nms := make([]string, 0, len(rg.maps))
	for k := range rg.maps {
		nms = append(nms, k)
	}
	slices.Sort(nms)
	return nms
}
