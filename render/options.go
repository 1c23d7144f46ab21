// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/skydog23/jsreality-2021-sub007/shader"
)

// Options are the renderer and trigger tunables. They are plain values
// passed down explicitly; there are no package-level mutable defaults.
type Options struct {

	// Aspect is the width/height aspect ratio of the viewing surface,
	// used for the camera projection.
	Aspect float32 `toml:"aspect"`

	// PreferAsync selects frame-coalesced asynchronous rendering on
	// viewers that support it.
	PreferAsync bool `toml:"preferAsync"`

	// ShowPoints, ShowLines, and ShowFaces are the bottom-of-stack draw
	// flags, used for primitive kinds no appearance in scope sets.
	ShowPoints bool `toml:"showPoints"`
	ShowLines  bool `toml:"showLines"`
	ShowFaces  bool `toml:"showFaces"`

	// Background is the RGBA clear color for backends that clear.
	Background [4]uint8 `toml:"background"`
}

// DefaultOptions returns the default options: square aspect, async
// preferred, everything drawn, white background.
func DefaultOptions() *Options {
	return &Options{
		Aspect:      1,
		PreferAsync: true,
		ShowPoints:  true,
		ShowLines:   true,
		ShowFaces:   true,
		Background:  [4]uint8{255, 255, 255, 255},
	}
}

// DrawFlags returns the default draw flags from the options.
func (o *Options) DrawFlags() shader.DrawFlags {
	return shader.DrawFlags{
		ShowPoints: o.ShowPoints,
		ShowLines:  o.ShowLines,
		ShowFaces:  o.ShowFaces,
	}
}

// OpenOptions reads options from the given TOML file. Keys absent from
// the file keep their default values.
func OpenOptions(filename string) (*Options, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	o := DefaultOptions()
	if err := toml.Unmarshal(b, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Save writes the options to the given file as TOML.
func (o *Options) Save(filename string) error {
	b, err := toml.Marshal(o)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
