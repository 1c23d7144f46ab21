// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"image/color"

	"github.com/skydog23/jsreality-2021-sub007/scene"
)

// Attribute keys shared by all rendering backends. Keys are
// dot-namespaced under the shader prefixes, so for example the diffuse
// color used for points is resolved under "pointShader.diffuseColor"
// with "diffuseColor" as its base-key fallback.
const (
	// Draw flags, controlling which primitive kinds a geometry emits.
	ShowPoints = "showPoints"
	ShowLines  = "showLines"
	ShowFaces  = "showFaces"

	// Shader namespaces.
	PointShader   = "pointShader"
	LineShader    = "lineShader"
	PolygonShader = "polygonShader"

	// Common shader attributes.
	DiffuseColor = "diffuseColor"
	PointRadius  = "pointRadius"
	LineWidth    = "lineWidth"
	Transparency = "transparency"

	// ProxyGeometry is set (typically under the polygonShader namespace)
	// to a [scene.Geometry] that should be drawn in place of a
	// component's own geometry.
	ProxyGeometry = "proxyGeometry"
)

// Key joins a shader namespace and an attribute name into a namespaced
// key, for example Key(PointShader, DiffuseColor) = "pointShader.diffuseColor".
func Key(namespace, attribute string) string {
	return namespace + "." + attribute
}

// Default appearance values.
var (
	DefaultDiffuseColor = color.RGBA{0, 0, 255, 255}
	DefaultPointRadius  = float32(0.025)
	DefaultLineWidth    = float32(1)
)

// DrawFlags are the three tri-state booleans controlling which primitive
// kinds a geometry node emits, resolved from the effective appearance at
// each traversal step and defaulting to true when unset.
type DrawFlags struct {
	ShowPoints bool
	ShowLines  bool
	ShowFaces  bool
}

// DefaultDrawFlags returns the draw flags with everything shown.
func DefaultDrawFlags() DrawFlags {
	return DrawFlags{ShowPoints: true, ShowLines: true, ShowFaces: true}
}

// ResolveDrawFlags resolves the draw flags from the given chain, using
// the given defaults for flags unset on every layer.
func ResolveDrawFlags(ea *EffectiveAppearance, def DrawFlags) DrawFlags {
	return DrawFlags{
		ShowPoints: ea.Bool(ShowPoints, def.ShowPoints),
		ShowLines:  ea.Bool(ShowLines, def.ShowLines),
		ShowFaces:  ea.Bool(ShowFaces, def.ShowFaces),
	}
}

// Color resolves the given key to a [color.RGBA].
func (ea *EffectiveAppearance) Color(key string, def color.RGBA) color.RGBA {
	if v, ok := ea.Attribute(key, def).(color.RGBA); ok {
		return v
	}
	return def
}

// ResolveProxyGeometry returns the proxy geometry declared by the
// polygon shader of the given chain, or nil if none is declared. The
// proxy is an alternate shape drawn in place of a component's own
// geometry; resolving it never mutates the original. The value may be a
// [scene.Geometry] or a factory function returning one.
func ResolveProxyGeometry(ea *EffectiveAppearance) scene.Geometry {
	switch v := ea.Attribute(Key(PolygonShader, ProxyGeometry), nil).(type) {
	case scene.Geometry:
		return v
	case func() scene.Geometry:
		return v()
	}
	return nil
}
