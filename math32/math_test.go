// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfinity(t *testing.T) {
	assert.True(t, math.IsInf(float64(Infinity), 1))
	assert.Greater(t, Infinity, float32(math.MaxFloat32))
	assert.False(t, IsNaN(Infinity))
}

func TestDegRadConversion(t *testing.T) {
	assert.InDelta(t, Pi, DegToRad(180), 1e-6)
	assert.InDelta(t, 90, RadToDeg(Pi/2), 1e-4)
}
