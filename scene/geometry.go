// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/skydog23/jsreality-2021-sub007/math32"

// Geometry is the interface satisfied by the geometry node kinds:
// [PointSet], [IndexedLineSet], and [IndexedFaceSet].
//
// Unlike transformations and appearances, geometries are shared, not
// owned: the same geometry is commonly referenced by several sibling
// components, and a mutation is visible to every component referencing
// it. Call sites needing isolation must copy the geometry (see [Copy]).
type Geometry interface {
	Node

	// AsPointSet returns the embedded [PointSet], which holds the
	// vertex data common to all geometry kinds.
	AsPointSet() *PointSet
}

// PointSet is a geometry node holding a list of vertices, rendered as
// points. It is the base for the edge and face geometry kinds. Every
// mutation notifies listeners.
type PointSet struct {
	NodeBase
	vertices []math32.Vector3

	// this is the outermost geometry node embedding this PointSet, so
	// that events emitted by base mutators report the concrete node.
	// The embedding kinds set it on construction; it is nil on a plain
	// PointSet.
	this Node
}

// NewPointSet returns a new empty [PointSet] with the given optional name.
func NewPointSet(name ...string) *PointSet {
	p := &PointSet{}
	if len(name) > 0 {
		p.name = name[0]
	}
	return p
}

// Kind returns [KindPointSet].
func (p *PointSet) Kind() NodeKind {
	return KindPointSet
}

// Accept calls [Visitor.VisitPointSet].
func (p *PointSet) Accept(v Visitor) {
	v.VisitPointSet(p)
}

// AsPointSet returns this [PointSet].
func (p *PointSet) AsPointSet() *PointSet {
	return p
}

// Vertices returns the vertex list. The returned slice is the internal
// data and must not be modified; use [PointSet.SetVertices].
func (p *PointSet) Vertices() []math32.Vector3 {
	return p.vertices
}

// NumVertices returns the number of vertices.
func (p *PointSet) NumVertices() int {
	return len(p.vertices)
}

// SetVertices sets the vertex list and notifies listeners. The slice is
// retained, not copied. It fails if the node is read-only.
func (p *PointSet) SetVertices(vertices []math32.Vector3) error {
	if err := p.checkWritable(); err != nil {
		return err
	}
	p.vertices = vertices
	p.emit(&Event{Type: GeometryChanged, Node: p.node()})
	return nil
}

// node returns the outermost node this PointSet is embedded in, for
// event reporting.
func (p *PointSet) node() Node {
	if p.this != nil {
		return p.this
	}
	return p
}

// IndexedLineSet is a [PointSet] with a list of edges, each an index
// list into the vertices, rendered as polylines.
type IndexedLineSet struct {
	PointSet
	edges [][]int
}

// NewIndexedLineSet returns a new empty [IndexedLineSet] with the given
// optional name.
func NewIndexedLineSet(name ...string) *IndexedLineSet {
	l := &IndexedLineSet{}
	if len(name) > 0 {
		l.name = name[0]
	}
	l.this = l
	return l
}

// Kind returns [KindIndexedLineSet].
func (l *IndexedLineSet) Kind() NodeKind {
	return KindIndexedLineSet
}

// Accept calls [Visitor.VisitIndexedLineSet].
func (l *IndexedLineSet) Accept(v Visitor) {
	v.VisitIndexedLineSet(l)
}

// Edges returns the edge index lists. The returned slice is the internal
// data and must not be modified; use [IndexedLineSet.SetEdges].
func (l *IndexedLineSet) Edges() [][]int {
	return l.edges
}

// NumEdges returns the number of edges.
func (l *IndexedLineSet) NumEdges() int {
	return len(l.edges)
}

// SetEdges sets the edge index lists and notifies listeners. The slice
// is retained, not copied. It fails if the node is read-only.
func (l *IndexedLineSet) SetEdges(edges [][]int) error {
	if err := l.checkWritable(); err != nil {
		return err
	}
	l.edges = edges
	l.emit(&Event{Type: GeometryChanged, Node: l.node()})
	return nil
}

// IndexedFaceSet is an [IndexedLineSet] with a list of faces, each an
// index list into the vertices, rendered as filled polygons.
type IndexedFaceSet struct {
	IndexedLineSet
	faces [][]int
}

// NewIndexedFaceSet returns a new empty [IndexedFaceSet] with the given
// optional name.
func NewIndexedFaceSet(name ...string) *IndexedFaceSet {
	f := &IndexedFaceSet{}
	if len(name) > 0 {
		f.name = name[0]
	}
	f.this = f
	return f
}

// Kind returns [KindIndexedFaceSet].
func (f *IndexedFaceSet) Kind() NodeKind {
	return KindIndexedFaceSet
}

// Accept calls [Visitor.VisitIndexedFaceSet].
func (f *IndexedFaceSet) Accept(v Visitor) {
	v.VisitIndexedFaceSet(f)
}

// Faces returns the face index lists. The returned slice is the internal
// data and must not be modified; use [IndexedFaceSet.SetFaces].
func (f *IndexedFaceSet) Faces() [][]int {
	return f.faces
}

// NumFaces returns the number of faces.
func (f *IndexedFaceSet) NumFaces() int {
	return len(f.faces)
}

// SetFaces sets the face index lists and notifies listeners. The slice
// is retained, not copied. It fails if the node is read-only.
func (f *IndexedFaceSet) SetFaces(faces [][]int) error {
	if err := f.checkWritable(); err != nil {
		return err
	}
	f.faces = faces
	f.emit(&Event{Type: GeometryChanged, Node: f.node()})
	return nil
}
