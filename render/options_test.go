// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsSaveOpen(t *testing.T) {
	o := DefaultOptions()
	o.Aspect = 1.5
	o.ShowPoints = false
	o.Background = [4]uint8{10, 20, 30, 255}

	filename := filepath.Join(t.TempDir(), "render.toml")
	require.NoError(t, o.Save(filename))

	got, err := OpenOptions(filename)
	require.NoError(t, err)
	assert.Equal(t, o, got)
}

// Keys absent from the file keep their defaults.
func TestOpenOptionsPartial(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "render.toml")
	require.NoError(t, os.WriteFile(filename, []byte("aspect = 2.0\nshowLines = false\n"), 0666))

	got, err := OpenOptions(filename)
	require.NoError(t, err)
	assert.Equal(t, float32(2), got.Aspect)
	assert.False(t, got.ShowLines)
	assert.True(t, got.ShowPoints)
	assert.True(t, got.PreferAsync)
	assert.Equal(t, DefaultOptions().Background, got.Background)
}

func TestOpenOptionsErrors(t *testing.T) {
	_, err := OpenOptions(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	filename := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(filename, []byte("aspect = [not toml"), 0666))
	_, err = OpenOptions(filename)
	assert.Error(t, err)
}

func TestOptionsDrawFlags(t *testing.T) {
	o := DefaultOptions()
	o.ShowFaces = false
	flags := o.DrawFlags()
	assert.True(t, flags.ShowPoints)
	assert.True(t, flags.ShowLines)
	assert.False(t, flags.ShowFaces)
}
