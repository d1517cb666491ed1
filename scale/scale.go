// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale provides the value transforms and tick generation
// for one chart axis. Every operation is a pure function of the
// scale type and its arguments.
package scale

import (
	"fmt"
	"math"
	"strings"

	"cogentcore.org/core/base/errors"
)

// Types are the supported axis scale types.
type Types int32 //enums:enum

const (
	// Linear is the identity transform with nice decimal ticks.
	Linear Types = iota

	// Log is the base-10 logarithm, defined for positive values only.
	Log

	// SymLog is sign(v)*log10(1+|v|), logarithmic away from zero
	// and close to linear near zero, so it supports negative values.
	SymLog

	// Time is the identity transform over Unix seconds, with ticks
	// snapped to calendar-friendly intervals.
	Time
)

// TypesN is the number of scale types.
const TypesN Types = 4

var typesNames = [...]string{"Linear", "Log", "SymLog", "Time"}

// String returns the name of the scale type.
func (t Types) String() string {
	if t < 0 || t >= TypesN {
		return fmt.Sprintf("Types(%d)", int32(t))
	}
	return typesNames[t]
}

// SetString sets the scale type from its name, case-insensitively.
func (t *Types) SetString(s string) error {
	for i, nm := range typesNames {
		if strings.EqualFold(nm, s) {
			*t = Types(i)
			return nil
		}
	}
	return errors.New("scale: unknown scale type " + s)
}

// MarshalText implements [encoding.TextMarshaler].
func (t Types) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *Types) UnmarshalText(text []byte) error {
	return t.SetString(string(text))
}

// TypesValues returns all scale types.
func TypesValues() []Types {
	return []Types{Linear, Log, SymLog, Time}
}

// Transform maps a data value into transformed (axis) space.
// For Log, non-positive values map to -Inf; callers filter them.
func (t Types) Transform(v float64) float64 {
	switch t {
	case Log:
		if v <= 0 {
			return math.Inf(-1)
		}
		return math.Log10(v)
	case SymLog:
		return sign(v) * math.Log10(1+math.Abs(v))
	}
	return v
}

// Inverse maps a transformed value back to data space.
func (t Types) Inverse(v float64) float64 {
	switch t {
	case Log:
		return math.Pow(10, v)
	case SymLog:
		return sign(v) * (math.Pow(10, math.Abs(v)) - 1)
	}
	return v
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
