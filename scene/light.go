// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "image/color"

// LightKind is the kind of a [Light].
type LightKind int32

const (
	// DirectionalLight projects parallel light along the -Z axis of the
	// coordinate system its component places it in, with no attenuation,
	// like the sun.
	DirectionalLight LightKind = iota

	// PointLight is an omnidirectional light at the origin of its
	// component's coordinate system.
	PointLight

	// SpotLight is a cone-shaped light along the -Z axis of its
	// component's coordinate system.
	SpotLight
)

// String returns the name of the light kind.
func (lk LightKind) String() string {
	switch lk {
	case DirectionalLight:
		return "DirectionalLight"
	case PointLight:
		return "PointLight"
	case SpotLight:
		return "SpotLight"
	}
	return "LightKindInvalid"
}

// Light is a scene graph node that illuminates the scene. Its placement
// is given by the transformations of the component it is attached to.
// Every mutation notifies listeners.
type Light struct {
	NodeBase
	kind      LightKind
	color     color.RGBA
	intensity float32

	// ConeAngle is the half-angle of a [SpotLight] cone in degrees.
	// It is ignored for the other light kinds.
	coneAngle float32
}

// NewLight returns a new white [Light] of the given kind with intensity 1
// and the given optional name.
func NewLight(kind LightKind, name ...string) *Light {
	l := &Light{
		kind:      kind,
		color:     color.RGBA{255, 255, 255, 255},
		intensity: 1,
		coneAngle: 30,
	}
	if len(name) > 0 {
		l.name = name[0]
	}
	return l
}

// Kind returns [KindLight].
func (l *Light) Kind() NodeKind {
	return KindLight
}

// Accept calls [Visitor.VisitLight].
func (l *Light) Accept(v Visitor) {
	v.VisitLight(l)
}

// LightKind returns the kind of this light.
func (l *Light) LightKind() LightKind { return l.kind }

// Color returns the color of this light at full intensity.
func (l *Light) Color() color.RGBA { return l.color }

// Intensity returns the brightness of this light in normalized 0-1 units.
func (l *Light) Intensity() float32 { return l.intensity }

// ConeAngle returns the spot cone half-angle in degrees.
func (l *Light) ConeAngle() float32 { return l.coneAngle }

// SetColor sets the light color and notifies listeners.
// It fails if the node is read-only.
func (l *Light) SetColor(c color.RGBA) error {
	if err := l.checkWritable(); err != nil {
		return err
	}
	l.color = c
	l.emit(&Event{Type: LightChanged, Node: l})
	return nil
}

// SetIntensity sets the light intensity and notifies listeners.
// It fails if the node is read-only.
func (l *Light) SetIntensity(intensity float32) error {
	if err := l.checkWritable(); err != nil {
		return err
	}
	l.intensity = intensity
	l.emit(&Event{Type: LightChanged, Node: l})
	return nil
}

// SetConeAngle sets the spot cone half-angle in degrees and notifies
// listeners. It fails if the node is read-only.
func (l *Light) SetConeAngle(angle float32) error {
	if err := l.checkWritable(); err != nil {
		return err
	}
	l.coneAngle = angle
	l.emit(&Event{Type: LightChanged, Node: l})
	return nil
}
