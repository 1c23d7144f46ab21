// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"

	"github.com/jinzhu/copier"
)

// Copy returns a deep copy of the subtree rooted at the given component:
// new components with new transformations, appearances, cameras, and
// lights, and copies of the referenced geometries, so that mutations of
// the copy are not visible through the original and vice versa. Within
// the copy, a geometry shared by several components stays shared by
// their copies. Tools are shared by reference. The copy has no parent.
func Copy(c *Component) *Component {
	cv := &copyVisitor{geoms: map[Geometry]Geometry{}}
	return cv.copyComponent(c)
}

// CopyGeometry returns a deep copy of the given geometry node, for call
// sites needing isolation from shared-geometry mutation.
func CopyGeometry(g Geometry) Geometry {
	cv := &copyVisitor{geoms: map[Geometry]Geometry{}}
	return cv.copyGeometry(g)
}

// copyVisitor tracks already-copied geometries so sharing within the
// copied subtree is preserved.
type copyVisitor struct {
	geoms map[Geometry]Geometry
}

func (cv *copyVisitor) copyComponent(c *Component) *Component {
	nc := NewComponent(c.name)
	nc.readOnly = c.readOnly
	nc.visible = c.visible
	nc.pickable = c.pickable
	nc.tools = append(nc.tools, c.tools...)
	if c.transformation != nil {
		nt := NewTransformation(c.transformation.name)
		nt.matrix = c.transformation.matrix
		nt.readOnly = c.transformation.readOnly
		nt.owner = nc
		nc.transformation = nt
	}
	if c.appearance != nil {
		na := NewAppearance(c.appearance.name)
		na.copyFrom(c.appearance)
		na.readOnly = c.appearance.readOnly
		na.owner = nc
		nc.appearance = na
	}
	if c.camera != nil {
		ncam := NewCamera(c.camera.name)
		ncam.fieldOfView = c.camera.fieldOfView
		ncam.near = c.camera.near
		ncam.far = c.camera.far
		ncam.focus = c.camera.focus
		ncam.perspective = c.camera.perspective
		ncam.readOnly = c.camera.readOnly
		ncam.owner = nc
		nc.camera = ncam
	}
	if c.light != nil {
		nl := NewLight(c.light.kind, c.light.name)
		nl.color = c.light.color
		nl.intensity = c.light.intensity
		nl.coneAngle = c.light.coneAngle
		nl.readOnly = c.light.readOnly
		nl.owner = nc
		nc.light = nl
	}
	if c.geometry != nil {
		nc.geometry = cv.copyGeometry(c.geometry)
	}
	for _, kid := range c.children {
		nk := cv.copyComponent(kid)
		nk.owner = nc
		nc.children = append(nc.children, nk)
	}
	return nc
}

func (cv *copyVisitor) copyGeometry(g Geometry) Geometry {
	if ng, ok := cv.geoms[g]; ok {
		return ng
	}
	var ng Geometry
	switch gg := g.(type) {
	case *IndexedFaceSet:
		nf := NewIndexedFaceSet(gg.name)
		nf.vertices = append(nf.vertices, gg.vertices...)
		nf.edges = copyIndexLists(gg.edges)
		nf.faces = copyIndexLists(gg.faces)
		ng = nf
	case *IndexedLineSet:
		nl := NewIndexedLineSet(gg.name)
		nl.vertices = append(nl.vertices, gg.vertices...)
		nl.edges = copyIndexLists(gg.edges)
		ng = nl
	case *PointSet:
		np := NewPointSet(gg.name)
		np.vertices = append(np.vertices, gg.vertices...)
		ng = np
	default:
		// unknown geometry kinds are shared, not copied
		slog.Warn("scene.Copy: cannot copy unknown geometry kind, sharing", "name", g.AsNodeBase().Name())
		ng = g
	}
	ng.AsNodeBase().SetReadOnly(g.AsNodeBase().IsReadOnly())
	cv.geoms[g] = ng
	return ng
}

// copyIndexLists deep-copies edge or face index lists.
func copyIndexLists(src [][]int) [][]int {
	if src == nil {
		return nil
	}
	var dst [][]int
	if err := copier.CopyWithOption(&dst, &src, copier.Option{DeepCopy: true}); err != nil {
		dst = make([][]int, len(src))
		for i, ix := range src {
			dst[i] = append([]int(nil), ix...)
		}
	}
	return dst
}
