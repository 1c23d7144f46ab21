// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Visitor is the double-dispatch interface for scene graph traversals,
// with one method per node kind. [Node.Accept] calls the method
// corresponding to the node's concrete type. The set of node kinds is
// closed, so the interface is complete; traversal order and any stack
// discipline are defined by the visitor, not by the tree.
//
// Embed [BaseVisitor] to get no-op implementations of the methods a
// visitor does not care about.
type Visitor interface {
	VisitComponent(c *Component)
	VisitTransformation(t *Transformation)
	VisitAppearance(a *Appearance)
	VisitCamera(c *Camera)
	VisitLight(l *Light)
	VisitPointSet(p *PointSet)
	VisitIndexedLineSet(l *IndexedLineSet)
	VisitIndexedFaceSet(f *IndexedFaceSet)
}

// BaseVisitor provides no-op implementations of all [Visitor] methods.
type BaseVisitor struct{}

func (BaseVisitor) VisitComponent(c *Component)           {}
func (BaseVisitor) VisitTransformation(t *Transformation) {}
func (BaseVisitor) VisitAppearance(a *Appearance)         {}
func (BaseVisitor) VisitCamera(c *Camera)                 {}
func (BaseVisitor) VisitLight(l *Light)                   {}
func (BaseVisitor) VisitPointSet(p *PointSet)             {}
func (BaseVisitor) VisitIndexedLineSet(l *IndexedLineSet) {}
func (BaseVisitor) VisitIndexedFaceSet(f *IndexedFaceSet) {}

var _ Visitor = BaseVisitor{}
