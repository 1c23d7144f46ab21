// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skydog23/jsreality-2021-sub007/math32"
	"github.com/skydog23/jsreality-2021-sub007/scene"
	"github.com/skydog23/jsreality-2021-sub007/shader"
)

// testBackend records every hook call by name, in order, and can be
// told to panic on a given hook to simulate a drawing failure.
type testBackend struct {
	calls   []string
	mats    []math32.Matrix4
	panicOn string
	onCall  func(name string)
}

func (b *testBackend) record(name string) {
	if b.panicOn == name {
		panic("testBackend: " + name)
	}
	b.calls = append(b.calls, name)
	if b.onCall != nil {
		b.onCall(name)
	}
}

func (b *testBackend) BeginRender() { b.record("BeginRender") }
func (b *testBackend) EndRender()   { b.record("EndRender") }

func (b *testBackend) ApplyTransform(m *math32.Matrix4) {
	b.record("ApplyTransform")
	b.mats = append(b.mats, *m)
}
func (b *testBackend) PushTransformState() { b.record("PushTransformState") }
func (b *testBackend) PopTransformState()  { b.record("PopTransformState") }

func (b *testBackend) ApplyAppearance(ea *shader.EffectiveAppearance) { b.record("ApplyAppearance") }

func (b *testBackend) BeginPrimitiveGroup(kind PrimitiveKind) { b.record("Begin:" + kind.String()) }
func (b *testBackend) EndPrimitiveGroup()                     { b.record("EndPrimitiveGroup") }

func (b *testBackend) DrawPoint(p math32.Vector3)           { b.record("DrawPoint") }
func (b *testBackend) DrawPolyline(points []math32.Vector3) { b.record("DrawPolyline") }
func (b *testBackend) DrawPolygon(points []math32.Vector3)  { b.record("DrawPolygon") }

func (b *testBackend) count(name string) int {
	n := 0
	for _, c := range b.calls {
		if c == name {
			n++
		}
	}
	return n
}

// cameraScene returns a root with a camera child and the camera path.
func cameraScene(t *testing.T) (*scene.Component, *scene.Path) {
	t.Helper()
	root := scene.NewComponent("root")
	camNode := scene.NewComponent("camNode")
	cam := scene.NewCamera("cam")
	require.NoError(t, root.AddChild(camNode))
	require.NoError(t, camNode.SetCamera(cam))
	return root, scene.NewPath(root, camNode, cam)
}

func triangle(t *testing.T, name string) *scene.IndexedFaceSet {
	t.Helper()
	fs := scene.NewIndexedFaceSet(name)
	require.NoError(t, fs.SetVertices([]math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0),
	}))
	require.NoError(t, fs.SetEdges([][]int{{0, 1}}))
	require.NoError(t, fs.SetFaces([][]int{{0, 1, 2}}))
	return fs
}

func TestRenderCallOrder(t *testing.T) {
	root, camPath := cameraScene(t)
	require.NoError(t, root.SetTransformation(scene.NewTransformation()))
	require.NoError(t, root.SetAppearance(scene.NewAppearance()))
	require.NoError(t, root.SetGeometry(triangle(t, "tri")))

	b := &testBackend{}
	r := New(b, nil)
	r.Render(root, camPath)

	assert.Equal(t, []string{
		"BeginRender",
		"ApplyTransform",
		"PushTransformState",
		"ApplyTransform",
		"ApplyAppearance",
		"Begin:PointPrimitives",
		"DrawPoint", "DrawPoint", "DrawPoint",
		"EndPrimitiveGroup",
		"Begin:FacePrimitives",
		"DrawPolygon",
		"EndPrimitiveGroup",
		"Begin:LinePrimitives",
		"DrawPolyline",
		"EndPrimitiveGroup",
		"PopTransformState",
		"EndRender",
	}, b.calls)

	stats := r.Stats()
	assert.Equal(t, Stats{Components: 2, Points: 3, Lines: 1, Faces: 1}, stats)
}

func TestRenderTransformComposition(t *testing.T) {
	root, camPath := cameraScene(t)
	rt := scene.NewTransformation()
	require.NoError(t, rt.SetTranslation(1, 0, 0))
	require.NoError(t, root.SetTransformation(rt))

	child := scene.NewComponent("child")
	ct := scene.NewTransformation()
	require.NoError(t, ct.SetTranslation(0, 1, 0))
	require.NoError(t, child.SetTransformation(ct))
	require.NoError(t, root.AddChild(child))

	b := &testBackend{}
	New(b, nil).Render(root, camPath)

	// world-to-device, then world*rt, then world*rt*ct.
	require.Len(t, b.mats, 3)
	rm := rt.Matrix()
	cm := ct.Matrix()
	want := b.mats[0].Mul(&rm).Mul(&cm)
	for i := range want {
		assert.InDelta(t, want[i], b.mats[2][i], 1e-5)
	}
}

// An invisible component is excluded entirely: no state pushes, no
// drawing, no statistics, and none of its descendants are visited.
func TestRenderInvisibleSubtree(t *testing.T) {
	root, camPath := cameraScene(t)
	hidden := scene.NewComponent("hidden")
	require.NoError(t, hidden.SetTransformation(scene.NewTransformation()))
	require.NoError(t, hidden.SetGeometry(triangle(t, "tri")))
	require.NoError(t, root.AddChild(hidden))
	grandchild := scene.NewComponent("grandchild")
	require.NoError(t, grandchild.SetGeometry(triangle(t, "tri2")))
	require.NoError(t, hidden.AddChild(grandchild))
	require.NoError(t, hidden.SetVisible(false))

	b := &testBackend{}
	r := New(b, nil)
	r.Render(root, camPath)

	assert.Zero(t, b.count("DrawPoint"))
	assert.Zero(t, b.count("DrawPolygon"))
	assert.Zero(t, b.count("PushTransformState"))
	assert.Equal(t, Stats{Components: 2}, r.Stats())
}

// A panicking backend hook ends the frame early, but the pushed
// transform states are still popped and EndRender still runs, and the
// panic does not escape Render.
func TestRenderStackBalanceOnPanic(t *testing.T) {
	root, camPath := cameraScene(t)
	child := scene.NewComponent("child")
	require.NoError(t, child.SetTransformation(scene.NewTransformation()))
	require.NoError(t, child.SetGeometry(triangle(t, "tri")))
	require.NoError(t, root.AddChild(child))

	b := &testBackend{panicOn: "DrawPolygon"}
	r := New(b, nil)
	assert.NotPanics(t, func() { r.Render(root, camPath) })

	assert.Equal(t, b.count("PushTransformState"), b.count("PopTransformState"))
	assert.Equal(t, 1, b.count("EndRender"))
	assert.Equal(t, "EndRender", b.calls[len(b.calls)-1])

	// The renderer is reusable after a failed frame.
	b.panicOn = ""
	b.calls = nil
	r.Render(root, camPath)
	assert.Equal(t, 1, b.count("DrawPolygon"))
	assert.Equal(t, b.count("PushTransformState"), b.count("PopTransformState"))
}

func TestRenderMissingRootOrCamera(t *testing.T) {
	root, camPath := cameraScene(t)
	b := &testBackend{}
	r := New(b, nil)

	r.Render(nil, camPath)
	assert.Empty(t, b.calls)

	r.Render(root, nil)
	assert.Empty(t, b.calls)

	// Path not ending in a camera.
	r.Render(root, scene.NewPath(root))
	assert.Empty(t, b.calls)

	// Stale path after the camera node is removed from the tree.
	require.NoError(t, root.RemoveChild(root.ChildByName("camNode")))
	r.Render(root, camPath)
	assert.Empty(t, b.calls)
}

func TestRenderDrawFlags(t *testing.T) {
	root, camPath := cameraScene(t)
	require.NoError(t, root.SetGeometry(triangle(t, "tri")))

	app := scene.NewAppearance()
	require.NoError(t, app.SetAttribute(shader.ShowFaces, false))
	require.NoError(t, app.SetAttribute(shader.ShowPoints, false))
	require.NoError(t, root.SetAppearance(app))

	b := &testBackend{}
	r := New(b, nil)
	r.Render(root, camPath)

	assert.Zero(t, b.count("Begin:FacePrimitives"))
	assert.Zero(t, b.count("Begin:PointPrimitives"))
	assert.Equal(t, 1, b.count("Begin:LinePrimitives"))
	assert.Equal(t, Stats{Components: 2, Lines: 1}, r.Stats())
}

// Draw flags come from the options when no appearance sets them, and a
// child appearance can re-enable a flag disabled above it.
func TestRenderDrawFlagsFromOptions(t *testing.T) {
	root, camPath := cameraScene(t)
	require.NoError(t, root.SetGeometry(triangle(t, "tri")))

	child := scene.NewComponent("child")
	require.NoError(t, child.SetGeometry(triangle(t, "tri2")))
	app := scene.NewAppearance()
	require.NoError(t, app.SetAttribute(shader.ShowLines, true))
	require.NoError(t, child.SetAppearance(app))
	require.NoError(t, root.AddChild(child))

	opts := DefaultOptions()
	opts.ShowLines = false
	b := &testBackend{}
	New(b, opts).Render(root, camPath)

	assert.Equal(t, 1, b.count("Begin:LinePrimitives"))
}

func TestRenderProxyGeometry(t *testing.T) {
	root, camPath := cameraScene(t)
	own := scene.NewPointSet("own")
	require.NoError(t, own.SetVertices([]math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(1, 1, 1)}))
	require.NoError(t, root.SetGeometry(own))

	proxy := scene.NewIndexedLineSet("proxy")
	require.NoError(t, proxy.SetVertices([]math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0),
	}))
	require.NoError(t, proxy.SetEdges([][]int{{0, 1, 2}}))

	app := scene.NewAppearance()
	require.NoError(t, app.SetAttribute(shader.Key(shader.PolygonShader, shader.ProxyGeometry), proxy))
	require.NoError(t, root.SetAppearance(app))

	b := &testBackend{}
	r := New(b, nil)
	r.Render(root, camPath)

	// The proxy's three points and one polyline are drawn in place of
	// the component's own two points.
	assert.Equal(t, 3, b.count("DrawPoint"))
	assert.Equal(t, 1, b.count("DrawPolyline"))
	assert.Equal(t, Stats{Components: 2, Points: 3, Lines: 1}, r.Stats())

	// The original geometry is untouched.
	assert.Equal(t, 2, own.NumVertices())
}

func TestRenderSkipsBadIndices(t *testing.T) {
	root, camPath := cameraScene(t)
	fs := scene.NewIndexedFaceSet("bad")
	require.NoError(t, fs.SetVertices([]math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0),
	}))
	require.NoError(t, fs.SetFaces([][]int{{0, 1, 7}, {0, 1}, {0, 1, 2}}))
	require.NoError(t, root.SetGeometry(fs))

	b := &testBackend{}
	r := New(b, nil)
	r.Render(root, camPath)

	assert.Equal(t, 1, b.count("DrawPolygon"))
	assert.Equal(t, 1, r.Stats().Faces)
}

// Paint order follows the child list, so later children draw over
// earlier ones on 2D backends.
func TestRenderPaintOrder(t *testing.T) {
	root, camPath := cameraScene(t)
	first := scene.NewComponent("first")
	require.NoError(t, first.SetGeometry(triangle(t, "a")))
	second := scene.NewComponent("second")
	require.NoError(t, second.SetGeometry(triangle(t, "b")))
	require.NoError(t, root.AddChildren(first, second))

	var order []string
	b := &testBackend{}
	r := New(b, nil)
	b.onCall = func(name string) {
		if name == "DrawPolygon" {
			p := r.CurrentPath()
			order = append(order, p[len(p)-1].Name())
		}
	}
	r.Render(root, camPath)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestRendererOutsideFrame(t *testing.T) {
	r := New(&testBackend{}, nil)
	assert.Empty(t, r.CurrentPath())
	assert.Equal(t, math32.Identity4(), r.CurrentMatrix())
	assert.Equal(t, Stats{}, r.Stats())
}
