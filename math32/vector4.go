// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially adapted from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.

package math32

// Vector4 is a 4D vector or point with X, Y, Z, and W components,
// used for homogeneous coordinates and RGBA color values.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vec4 returns a new [Vector4] with the given x, y, z, and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{x, y, z, w}
}

// Set sets this vector's X, Y, Z, and W components.
func (v *Vector4) Set(x, y, z, w float32) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// ToVector3 returns the X, Y, Z components of this vector as a [Vector3],
// dividing by W if W is nonzero.
func (v Vector4) ToVector3() Vector3 {
	if v.W == 0 || v.W == 1 {
		return Vec3(v.X, v.Y, v.Z)
	}
	d := 1 / v.W
	return Vec3(v.X*d, v.Y*d, v.Z*d)
}

// MulMatrix4 returns this vector multiplied by the given 4x4 matrix.
func (v Vector4) MulMatrix4(m *Matrix4) Vector4 {
	return Vector4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}
