// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"log/slog"

	"github.com/skydog23/jsreality-2021-sub007/math32"
	"github.com/skydog23/jsreality-2021-sub007/scene"
	"github.com/skydog23/jsreality-2021-sub007/shader"
)

// Stats counts what one rendering traversal visited and drew.
type Stats struct {
	Components int
	Points     int
	Lines      int
	Faces      int
}

// Renderer is the backend-agnostic traversal engine: a [scene.Visitor]
// that walks a component tree maintaining the transformation matrix
// stack, the [shader.EffectiveAppearance] chain, and the draw-flag
// state, and delegates primitive drawing to a [Backend].
//
// A Renderer is cheap and holds no per-frame resources, so it is
// typically constructed once per frame; [Renderer.Render] also fully
// resets its state, so reusing one is equivalent. Traversal state is
// renderer-local and the tree is never mutated, so several renderers
// can walk the same tree.
type Renderer struct {
	backend Backend
	opts    *Options

	matrixStack []*math32.Matrix4
	eap         *shader.EffectiveAppearance
	flags       shader.DrawFlags
	path        []*scene.Component
	stats       Stats
	inProxy     bool
}

// New returns a new [Renderer] drawing to the given backend with the
// given options; nil opts means [DefaultOptions].
func New(backend Backend, opts *Options) *Renderer {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Renderer{backend: backend, opts: opts}
}

// Stats returns the counters of the last [Renderer.Render] call.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Options returns the renderer options, for backends that draw from
// them (for example the background color).
func (r *Renderer) Options() *Options {
	return r.opts
}

// CurrentPath returns the chain of components from the root to the
// component currently being visited, for ancestor queries from backend
// hooks. The returned slice is the internal state and is only valid
// during the hook call.
func (r *Renderer) CurrentPath() []*scene.Component {
	return r.path
}

// CurrentMatrix returns the current composite world-to-device matrix
// (the top of the matrix stack), or the identity outside a traversal.
func (r *Renderer) CurrentMatrix() *math32.Matrix4 {
	if len(r.matrixStack) == 0 {
		return math32.Identity4()
	}
	return r.matrixStack[len(r.matrixStack)-1]
}

// Render renders one frame: it computes the world-to-device matrix from
// the camera path and the camera's projection, then walks the tree from
// the given root, calling the backend's hooks in the order documented on
// [Backend]. A nil root, or a nil, invalid, or camera-less camera path,
// makes the call a logged no-op. A panic from a backend hook is
// recovered here, logged, and ends the frame early; the deferred
// per-component restores run during unwinding, so the traversal stacks
// stay balanced.
func (r *Renderer) Render(root *scene.Component, cameraPath *scene.Path) {
	if root == nil {
		slog.Warn("render: no scene root, skipping frame")
		return
	}
	camera := r.validCamera(cameraPath)
	if camera == nil {
		return
	}

	r.matrixStack = r.matrixStack[:0]
	r.path = r.path[:0]
	r.eap = shader.New()
	r.flags = r.opts.DrawFlags()
	r.stats = Stats{}
	r.inProxy = false

	worldToCamera := cameraPath.InverseMatrix()
	projection := camera.Projection(r.opts.Aspect)
	worldToDevice := projection.Mul(worldToCamera)
	r.matrixStack = append(r.matrixStack, worldToDevice)

	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("render: backend failed, frame ended early", "panic", rec)
		}
	}()
	defer r.backend.EndRender()
	r.backend.BeginRender()
	r.backend.ApplyTransform(worldToDevice)

	root.Accept(r)
}

// validCamera returns the camera at the end of the given path, or nil
// (with a logged warning) if the path is missing, invalid, or does not
// end in a camera.
func (r *Renderer) validCamera(cameraPath *scene.Path) *scene.Camera {
	if cameraPath == nil {
		slog.Warn("render: no camera path, skipping frame")
		return nil
	}
	if !cameraPath.IsValid() {
		slog.Warn("render: camera path is invalid, skipping frame", "path", cameraPath.String())
		return nil
	}
	camera, ok := cameraPath.Last().(*scene.Camera)
	if !ok {
		slog.Warn("render: camera path does not end in a camera, skipping frame", "path", cameraPath.String())
		return nil
	}
	return camera
}

// VisitComponent implements [scene.Visitor]. An invisible component is
// skipped entirely: no stack pushes, no children, no statistics. The
// transform, appearance, and draw-flag state pushed while entering the
// component is restored in reverse (LIFO) order when its subtree is
// done, via defer, so a failure while visiting children cannot leave
// the stacks unbalanced.
func (r *Renderer) VisitComponent(c *scene.Component) {
	if !c.IsVisible() {
		return
	}
	r.path = append(r.path, c)
	savedDepth := len(r.matrixStack)
	savedEap := r.eap
	savedFlags := r.flags
	defer func() {
		r.eap = savedEap
		r.flags = savedFlags
		for len(r.matrixStack) > savedDepth {
			r.matrixStack = r.matrixStack[:len(r.matrixStack)-1]
			r.backend.PopTransformState()
		}
		r.path = r.path[:len(r.path)-1]
	}()

	r.stats.Components++
	if t := c.Transformation(); t != nil {
		t.Accept(r)
	}
	if a := c.Appearance(); a != nil {
		a.Accept(r)
	}
	if g := c.Geometry(); g != nil {
		r.renderGeometry(g)
	}
	// child-list order defines the paint order for 2D backends
	for _, kid := range c.Children() {
		kid.Accept(r)
	}
}

// VisitTransformation implements [scene.Visitor]: it pushes the product
// of the current matrix and the local matrix, and hands it to the
// backend. The matching pop happens when the owning component's subtree
// is done.
func (r *Renderer) VisitTransformation(t *scene.Transformation) {
	local := t.Matrix()
	cur := r.CurrentMatrix().Mul(&local)
	r.matrixStack = append(r.matrixStack, cur)
	r.backend.PushTransformState()
	r.backend.ApplyTransform(cur)
}

// VisitAppearance implements [scene.Visitor]: it extends the effective
// appearance chain with the appearance layer, recomputes the draw flags
// from the new chain, and calls the backend's appearance hook exactly
// once. The previous chain is restored when the owning component's
// subtree is done.
func (r *Renderer) VisitAppearance(a *scene.Appearance) {
	r.eap = r.eap.CreateChild(a)
	r.flags = shader.ResolveDrawFlags(r.eap, r.opts.DrawFlags())
	r.backend.ApplyAppearance(r.eap)
}

// VisitCamera implements [scene.Visitor]. Cameras take no part in the
// drawing traversal; the frame's camera comes from the camera path.
func (r *Renderer) VisitCamera(c *scene.Camera) {}

// VisitLight implements [scene.Visitor]. Light gathering is
// backend-specific and not part of the drawing traversal.
func (r *Renderer) VisitLight(l *scene.Light) {}

// renderGeometry draws the given geometry, substituting a proxy
// geometry declared by the polygon shader if there is one. The
// substitution never mutates the original geometry, and a proxy cannot
// declare a further proxy.
func (r *Renderer) renderGeometry(g scene.Geometry) {
	if !r.inProxy {
		if proxy := shader.ResolveProxyGeometry(r.eap); proxy != nil && proxy != g {
			r.inProxy = true
			defer func() { r.inProxy = false }()
			g = proxy
		}
	}
	g.Accept(r)
}

// VisitPointSet implements [scene.Visitor].
func (r *Renderer) VisitPointSet(p *scene.PointSet) {
	r.drawPoints(p)
}

// VisitIndexedLineSet implements [scene.Visitor].
func (r *Renderer) VisitIndexedLineSet(l *scene.IndexedLineSet) {
	r.drawPoints(l.AsPointSet())
	r.drawEdges(l)
}

// VisitIndexedFaceSet implements [scene.Visitor]: points first, then
// filled faces, then edges last, so edge outlines stay visible over
// the fills.
func (r *Renderer) VisitIndexedFaceSet(f *scene.IndexedFaceSet) {
	r.drawPoints(f.AsPointSet())
	r.drawFaces(f)
	r.drawEdges(&f.IndexedLineSet)
}

func (r *Renderer) drawPoints(p *scene.PointSet) {
	if !r.flags.ShowPoints || p.NumVertices() == 0 {
		return
	}
	r.backend.BeginPrimitiveGroup(PointPrimitives)
	for _, v := range p.Vertices() {
		r.backend.DrawPoint(v)
		r.stats.Points++
	}
	r.backend.EndPrimitiveGroup()
}

func (r *Renderer) drawEdges(l *scene.IndexedLineSet) {
	if !r.flags.ShowLines || l.NumEdges() == 0 {
		return
	}
	r.backend.BeginPrimitiveGroup(LinePrimitives)
	for _, edge := range l.Edges() {
		pts := resolveIndices(l.Vertices(), edge, 2)
		if pts == nil {
			continue
		}
		r.backend.DrawPolyline(pts)
		r.stats.Lines++
	}
	r.backend.EndPrimitiveGroup()
}

func (r *Renderer) drawFaces(f *scene.IndexedFaceSet) {
	if !r.flags.ShowFaces || f.NumFaces() == 0 {
		return
	}
	r.backend.BeginPrimitiveGroup(FacePrimitives)
	for _, face := range f.Faces() {
		pts := resolveIndices(f.Vertices(), face, 3)
		if pts == nil {
			continue
		}
		r.backend.DrawPolygon(pts)
		r.stats.Faces++
	}
	r.backend.EndPrimitiveGroup()
}

// resolveIndices resolves an index list into vertex positions, returning
// nil for lists shorter than minLen or with out-of-range indices.
func resolveIndices(vertices []math32.Vector3, indices []int, minLen int) []math32.Vector3 {
	if len(indices) < minLen {
		return nil
	}
	pts := make([]math32.Vector3, len(indices))
	for i, ix := range indices {
		if ix < 0 || ix >= len(vertices) {
			slog.Warn("render: vertex index out of range, skipping primitive", "index", ix, "vertices", len(vertices))
			return nil
		}
		pts[i] = vertices[ix]
	}
	return pts
}

var _ scene.Visitor = (*Renderer)(nil)
