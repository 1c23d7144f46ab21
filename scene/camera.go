// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/skydog23/jsreality-2021-sub007/math32"

// Default camera parameters.
const (
	DefaultFieldOfView float32 = 60
	DefaultNear        float32 = 0.5
	DefaultFar         float32 = 50
	DefaultFocus       float32 = 3
)

// Camera is a scene graph node defining a view onto the scene. The
// camera itself has no position; its placement is given by the
// transformations of the components along the camera path leading
// to it. Every mutation notifies listeners.
type Camera struct {
	NodeBase
	fieldOfView float32
	near        float32
	far         float32
	focus       float32
	perspective bool
}

// NewCamera returns a new perspective [Camera] with default parameters
// and the given optional name.
func NewCamera(name ...string) *Camera {
	c := &Camera{
		fieldOfView: DefaultFieldOfView,
		near:        DefaultNear,
		far:         DefaultFar,
		focus:       DefaultFocus,
		perspective: true,
	}
	if len(name) > 0 {
		c.name = name[0]
	}
	return c
}

// Kind returns [KindCamera].
func (c *Camera) Kind() NodeKind {
	return KindCamera
}

// Accept calls [Visitor.VisitCamera].
func (c *Camera) Accept(v Visitor) {
	v.VisitCamera(c)
}

// FieldOfView returns the vertical field of view in degrees.
func (c *Camera) FieldOfView() float32 { return c.fieldOfView }

// Near returns the near clipping plane distance.
func (c *Camera) Near() float32 { return c.near }

// Far returns the far clipping plane distance.
func (c *Camera) Far() float32 { return c.far }

// Focus returns the focal distance, which determines the view height
// of an orthographic camera.
func (c *Camera) Focus() float32 { return c.focus }

// IsPerspective returns whether this camera uses a perspective
// projection (as opposed to an orthographic one).
func (c *Camera) IsPerspective() bool { return c.perspective }

// SetFieldOfView sets the vertical field of view in degrees and
// notifies listeners. It fails if the node is read-only.
func (c *Camera) SetFieldOfView(fov float32) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	c.fieldOfView = fov
	c.emit(&Event{Type: CameraChanged, Node: c})
	return nil
}

// SetNearFar sets the near and far clipping plane distances and
// notifies listeners. It fails if the node is read-only.
func (c *Camera) SetNearFar(near, far float32) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	c.near = near
	c.far = far
	c.emit(&Event{Type: CameraChanged, Node: c})
	return nil
}

// SetFocus sets the focal distance and notifies listeners.
// It fails if the node is read-only.
func (c *Camera) SetFocus(focus float32) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	c.focus = focus
	c.emit(&Event{Type: CameraChanged, Node: c})
	return nil
}

// SetPerspective sets whether this camera uses a perspective projection
// and notifies listeners. It fails if the node is read-only.
func (c *Camera) SetPerspective(perspective bool) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	c.perspective = perspective
	c.emit(&Event{Type: CameraChanged, Node: c})
	return nil
}

// Projection returns the camera-space to device-space projection matrix
// for the given aspect ratio (width/height).
func (c *Camera) Projection(aspect float32) *math32.Matrix4 {
	m := &math32.Matrix4{}
	if c.perspective {
		m.SetPerspective(c.fieldOfView, aspect, c.near, c.far)
	} else {
		height := 2 * c.focus * math32.Tan(math32.DegToRad(c.fieldOfView*0.5))
		m.SetOrthographic(height, aspect, c.near, c.far)
	}
	return m
}
