// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config decodes chart options and chart documents from
// TOML, YAML and JSON files, and resolves options into concrete
// [chart.Settings].
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported file encodings.
type Formats int32 //enums:enum

const (
	// TOML is the default encoding.
	TOML Formats = iota

	// YAML is used for .yaml and .yml files.
	YAML

	// JSON is used for .json files.
	JSON
)

func (f Formats) String() string {
	switch f {
	case YAML:
		return "YAML"
	case JSON:
		return "JSON"
	}
	return "TOML"
}

// FormatOf returns the encoding for a file name by its extension.
// Unknown extensions are TOML.
func FormatOf(filename string) Formats {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML
	case ".json":
		return JSON
	}
	return TOML
}

// Open reads the given file into v, decoding by [FormatOf].
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Read(v, f, FormatOf(filename)); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

// Read decodes v from r in the given format. Unknown keys are errors.
func Read(v any, r io.Reader, format Formats) error {
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err := dec.Decode(v)
		if err == io.EOF {
			return nil
		}
		return err
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	}
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// ReadBytes decodes v from b in the given format.
func ReadBytes(v any, b []byte, format Formats) error {
	return Read(v, strings.NewReader(string(b)), format)
}
