// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/skydog23/jsreality-2021-sub007/math32"

// Transformation is a scene graph node holding a single 4x4 matrix,
// the local coordinate transformation of the [Component] it is attached
// to. It starts as the identity. Every mutation notifies listeners.
type Transformation struct {
	NodeBase
	matrix math32.Matrix4
}

// NewTransformation returns a new identity [Transformation] with the
// given optional name.
func NewTransformation(name ...string) *Transformation {
	t := &Transformation{}
	t.matrix.SetIdentity()
	if len(name) > 0 {
		t.name = name[0]
	}
	return t
}

// Kind returns [KindTransformation].
func (t *Transformation) Kind() NodeKind {
	return KindTransformation
}

// Accept calls [Visitor.VisitTransformation].
func (t *Transformation) Accept(v Visitor) {
	v.VisitTransformation(t)
}

// Matrix returns a copy of the transformation matrix.
func (t *Transformation) Matrix() math32.Matrix4 {
	return t.matrix
}

// SetMatrix sets the transformation matrix and notifies listeners.
// It fails if the node is read-only.
func (t *Transformation) SetMatrix(m *math32.Matrix4) error {
	if err := t.checkWritable(); err != nil {
		return err
	}
	t.matrix = *m
	t.emit(&Event{Type: TransformationChanged, Node: t})
	return nil
}

// SetTranslation sets the matrix to a translation by the given offsets
// and notifies listeners. It fails if the node is read-only.
func (t *Transformation) SetTranslation(x, y, z float32) error {
	var m math32.Matrix4
	m.SetTranslation(x, y, z)
	return t.SetMatrix(&m)
}

// SetScale sets the matrix to a scale by the given factors and notifies
// listeners. It fails if the node is read-only.
func (t *Transformation) SetScale(x, y, z float32) error {
	var m math32.Matrix4
	m.SetScale(x, y, z)
	return t.SetMatrix(&m)
}

// MultiplyOnRight right-multiplies the matrix by the given matrix
// (matrix = matrix * m) and notifies listeners. It fails if the node
// is read-only.
func (t *Transformation) MultiplyOnRight(m *math32.Matrix4) error {
	nm := t.matrix.Mul(m)
	return t.SetMatrix(nm)
}
