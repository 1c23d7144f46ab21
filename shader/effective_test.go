// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skydog23/jsreality-2021-sub007/scene"
)

func TestEmptyChain(t *testing.T) {
	ea := New()
	assert.Equal(t, "fallback", ea.Attribute("anything", "fallback"))
	assert.Equal(t, 7, ea.Int("anything", 7))

	// A nil receiver behaves like an empty chain.
	var nilEA *EffectiveAppearance
	assert.Equal(t, "fallback", nilEA.Attribute("anything", "fallback"))
	child := nilEA.CreateChild(scene.NewAppearance())
	require.NotNil(t, child)
	assert.Nil(t, child.Parent())
}

func TestAttributeChain(t *testing.T) {
	parent := scene.NewAppearance("parent")
	child := scene.NewAppearance("child")
	require.NoError(t, parent.SetAttribute("lineShader.lineWidth", float32(3)))
	require.NoError(t, child.SetAttribute("lineShader.lineWidth", float32(5)))

	ea := New().CreateChild(parent).CreateChild(child)
	assert.Equal(t, float32(5), ea.Attribute("lineShader.lineWidth", float32(1)))

	// Unsetting the child's value exposes the parent's.
	require.NoError(t, child.SetAttribute("lineShader.lineWidth", scene.Inherited))
	assert.Equal(t, float32(3), ea.Attribute("lineShader.lineWidth", float32(1)))
}

func TestAttributeChainIsLive(t *testing.T) {
	a := scene.NewAppearance()
	ea := New().CreateChild(a)
	assert.Equal(t, 1, ea.Int("depth", 1))
	require.NoError(t, a.SetAttribute("depth", 4))
	assert.Equal(t, 4, ea.Int("depth", 1))
}

func TestAttributeNamespaceFallback(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	x := color.RGBA{17, 17, 17, 255}

	parent := scene.NewAppearance("parent")
	child := scene.NewAppearance("child")
	require.NoError(t, parent.SetAttribute("color", blue))
	require.NoError(t, child.SetAttribute("line.color", red))

	ea := New().CreateChild(parent).CreateChild(child)
	assert.Equal(t, red, ea.Attribute("line.color", x))
	assert.Equal(t, blue, ea.Attribute("color", x))
	// An unset namespaced key still falls back to the bare form set on
	// an outer layer.
	assert.Equal(t, blue, ea.Attribute("face.color", x))
	// A key set nowhere in any form resolves to the default.
	assert.Equal(t, x, ea.Attribute("face.width", x))
}

// An exact namespaced key anywhere in the chain beats an un-namespaced
// fallback on a more specific layer. The base key applies only once no
// layer sets the namespaced form.
func TestAttributeExactKeyBeatsBaseKey(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	green := color.RGBA{0, 255, 0, 255}
	x := color.RGBA{17, 17, 17, 255}

	parent := scene.NewAppearance("parent")
	child := scene.NewAppearance("child")
	require.NoError(t, parent.SetAttribute("line.color", red))
	require.NoError(t, child.SetAttribute("color", green))

	ea := New().CreateChild(parent).CreateChild(child)
	assert.Equal(t, red, ea.Attribute("line.color", x))

	require.NoError(t, parent.SetAttribute("line.color", scene.Inherited))
	assert.Equal(t, green, ea.Attribute("line.color", x))
}

func TestAttributeStripsNamespacesProgressively(t *testing.T) {
	a := scene.NewAppearance()
	require.NoError(t, a.SetAttribute("radius", float32(2)))
	ea := New().CreateChild(a)
	assert.Equal(t, float32(2), ea.Attribute("pointShader.implode.radius", float32(0)))
}

func TestCreateChildLeavesParentAlone(t *testing.T) {
	a := scene.NewAppearance()
	require.NoError(t, a.SetAttribute("lineWidth", float32(2)))
	parent := New().CreateChild(a)

	b := scene.NewAppearance()
	require.NoError(t, b.SetAttribute("lineWidth", float32(9)))
	child := parent.CreateChild(b)

	assert.Equal(t, float32(9), child.Attribute("lineWidth", float32(1)))
	assert.Equal(t, float32(2), parent.Attribute("lineWidth", float32(1)))
	assert.Same(t, parent, child.Parent())
}

func TestTypedGetters(t *testing.T) {
	a := scene.NewAppearance()
	require.NoError(t, a.SetAttribute("b", true))
	require.NoError(t, a.SetAttribute("i", 42))
	require.NoError(t, a.SetAttribute("f", float32(1.5)))
	require.NoError(t, a.SetAttribute("f64", float64(2.5)))
	require.NoError(t, a.SetAttribute("s", "hello"))
	ea := New().CreateChild(a)

	assert.Equal(t, true, ea.Bool("b", false))
	assert.Equal(t, 42, ea.Int("i", 0))
	assert.Equal(t, float32(1.5), ea.Float("f", 0))
	assert.Equal(t, float32(2.5), ea.Float("f64", 0))
	assert.Equal(t, "hello", ea.String("s", ""))

	// Type mismatches fall back to the default.
	assert.Equal(t, false, ea.Bool("s", false))
	assert.Equal(t, 3, ea.Int("b", 3))
	assert.Equal(t, float32(7), ea.Float("s", 7))
	assert.Equal(t, "d", ea.String("i", "d"))
}

func TestKeyAndBaseKey(t *testing.T) {
	assert.Equal(t, "pointShader.diffuseColor", Key(PointShader, DiffuseColor))
	assert.Equal(t, "diffuseColor", BaseKey("pointShader.diffuseColor"))
	assert.Equal(t, "diffuseColor", BaseKey("diffuseColor"))
}

func TestResolveDrawFlags(t *testing.T) {
	a := scene.NewAppearance()
	require.NoError(t, a.SetAttribute(ShowPoints, false))
	ea := New().CreateChild(a)

	flags := ResolveDrawFlags(ea, DefaultDrawFlags())
	assert.False(t, flags.ShowPoints)
	assert.True(t, flags.ShowLines)
	assert.True(t, flags.ShowFaces)

	// A child layer can turn a flag back on.
	b := scene.NewAppearance()
	require.NoError(t, b.SetAttribute(ShowPoints, true))
	flags = ResolveDrawFlags(ea.CreateChild(b), DefaultDrawFlags())
	assert.True(t, flags.ShowPoints)
}

func TestResolveProxyGeometry(t *testing.T) {
	assert.Nil(t, ResolveProxyGeometry(New()))

	proxy := scene.NewPointSet("proxy")
	a := scene.NewAppearance()
	require.NoError(t, a.SetAttribute(Key(PolygonShader, ProxyGeometry), proxy))
	ea := New().CreateChild(a)
	assert.Same(t, proxy, ResolveProxyGeometry(ea))

	// A factory function is invoked on resolution.
	b := scene.NewAppearance()
	require.NoError(t, b.SetAttribute(Key(PolygonShader, ProxyGeometry),
		func() scene.Geometry { return proxy }))
	eb := New().CreateChild(b)
	assert.Same(t, proxy, ResolveProxyGeometry(eb))
}

func TestColor(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	a := scene.NewAppearance()
	require.NoError(t, a.SetAttribute(Key(PointShader, DiffuseColor), red))
	ea := New().CreateChild(a)

	assert.Equal(t, red, ea.Color(Key(PointShader, DiffuseColor), DefaultDiffuseColor))
	assert.Equal(t, DefaultDiffuseColor, ea.Color(Key(LineShader, DiffuseColor), DefaultDiffuseColor))
}

// Resolution wrong in naive single-pass walks: a node sets only the base
// key while an ancestor sets the namespaced key. The namespaced value
// must win regardless of which layer carries it.
func TestAttributeResolutionOrder(t *testing.T) {
	root := scene.NewAppearance("root")
	mid := scene.NewAppearance("mid")
	leaf := scene.NewAppearance("leaf")
	require.NoError(t, root.SetAttribute("pointShader.pointRadius", float32(0.5)))
	require.NoError(t, mid.SetAttribute("pointRadius", float32(0.1)))
	require.NoError(t, leaf.SetAttribute("showPoints", true))

	ea := New().CreateChild(root).CreateChild(mid).CreateChild(leaf)
	assert.Equal(t, float32(0.5), ea.Float("pointShader.pointRadius", 0))
	assert.Equal(t, float32(0.1), ea.Float("pointRadius", 0))
}
