// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"slices"
)

// Tool is an interaction tool attached to a [Component]. Tool semantics
// (activation, device slots) are external to the scene graph; here a tool
// is an opaque named attachment whose attach and detach are observable.
type Tool interface {
	Name() string
}

// Component is the container node of the scene graph: an ordered,
// parent-owned list of child components, plus optional attached
// transformation, appearance, geometry, camera, and light nodes, and
// a list of tools. Visibility and pickability flags control whether
// traversals descend into the component.
//
// A component can be the child of at most one parent at a time. The
// tree is kept acyclic by construction: adding a component as a
// descendant of itself is a caller error that is not detected at
// runtime.
//
// Transformations and appearances are exclusively owned by the one
// component they are attached to; geometries are shared and may be
// referenced by any number of components.
//
// Every structural mutation emits exactly one event per attached or
// detached node, carrying that node and never more than one, so that
// listeners can re-subscribe precisely to the delta.
type Component struct {
	NodeBase
	children       []*Component
	transformation *Transformation
	appearance     *Appearance
	geometry       Geometry
	camera         *Camera
	light          *Light
	tools          []Tool
	visible        bool
	pickable       bool
}

// NewComponent returns a new empty, visible, pickable [Component] with
// the given optional name.
func NewComponent(name ...string) *Component {
	c := &Component{visible: true, pickable: true}
	if len(name) > 0 {
		c.name = name[0]
	}
	return c
}

// Kind returns [KindComponent].
func (c *Component) Kind() NodeKind {
	return KindComponent
}

// Accept calls [Visitor.VisitComponent].
func (c *Component) Accept(v Visitor) {
	v.VisitComponent(c)
}

// Children:

// Parent returns the parent component, or nil for a root.
func (c *Component) Parent() *Component {
	if p, ok := c.owner.(*Component); ok {
		return p
	}
	return nil
}

// Children returns the ordered child list. The returned slice is the
// internal data and must not be modified; use [Component.AddChild] and
// [Component.RemoveChild].
func (c *Component) Children() []*Component {
	return c.children
}

// NumChildren returns the number of children.
func (c *Component) NumChildren() int {
	return len(c.children)
}

// Child returns the child at the given index, or nil if the index is
// out of range.
func (c *Component) Child(i int) *Component {
	if i < 0 || i >= len(c.children) {
		return nil
	}
	return c.children[i]
}

// ChildByName returns the first child with the given name, or nil.
func (c *Component) ChildByName(name string) *Component {
	for _, kid := range c.children {
		if kid.name == name {
			return kid
		}
	}
	return nil
}

// AddChild appends the given component to the child list, sets its
// owner back-reference, and notifies listeners with a [ChildAdded]
// event. It fails if this component is read-only, the child is nil,
// or the child already has a parent.
func (c *Component) AddChild(child *Component) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	if child == nil {
		return fmt.Errorf("scene: AddChild on %q: child is nil", c.name)
	}
	if child.owner != nil {
		return fmt.Errorf("scene: AddChild on %q: child %q already has a parent", c.name, child.name)
	}
	c.children = append(c.children, child)
	child.owner = c
	c.emit(&Event{Type: ChildAdded, Node: c, NewChild: child})
	return nil
}

// AddChildren adds the given components in order, firing one
// [ChildAdded] event per child in the order requested. It stops and
// returns the error of the first child that cannot be added.
func (c *Component) AddChildren(children ...*Component) error {
	for _, child := range children {
		if err := c.AddChild(child); err != nil {
			return err
		}
	}
	return nil
}

// RemoveChild removes the given component from the child list, clears
// its owner back-reference, and notifies listeners with a [ChildRemoved]
// event. It fails if this component is read-only or the component is
// not a child of it.
func (c *Component) RemoveChild(child *Component) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	idx := slices.Index(c.children, child)
	if idx < 0 {
		return fmt.Errorf("scene: RemoveChild on %q: not a child", c.name)
	}
	c.children = slices.Delete(c.children, idx, idx+1)
	child.owner = nil
	c.emit(&Event{Type: ChildRemoved, Node: c, OldChild: child})
	return nil
}

// RemoveChildAt removes the child at the given index. It fails if this
// component is read-only or the index is out of range.
func (c *Component) RemoveChildAt(i int) error {
	child := c.Child(i)
	if child == nil {
		return fmt.Errorf("scene: RemoveChildAt on %q: index %d out of range", c.name, i)
	}
	return c.RemoveChild(child)
}

// Attached nodes:

// Transformation returns the attached transformation, or nil.
func (c *Component) Transformation() *Transformation {
	return c.transformation
}

// SetTransformation attaches the given transformation, detaching any
// previous one. The change is reported as a [ChildRemoved] event for the
// old node (if any) followed by a [ChildAdded] event for the new one
// (if non-nil). It fails if this component is read-only or the
// transformation is already attached to another component.
func (c *Component) SetTransformation(t *Transformation) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	if t != nil && t.owner != nil && t.owner != Node(c) {
		return fmt.Errorf("scene: SetTransformation on %q: transformation %q already attached to another component", c.name, t.name)
	}
	old := c.transformation
	if old == t {
		return nil
	}
	c.transformation = t
	if old != nil {
		old.owner = nil
		c.emit(&Event{Type: ChildRemoved, Node: c, OldChild: old})
	}
	if t != nil {
		t.owner = c
		c.emit(&Event{Type: ChildAdded, Node: c, NewChild: t})
	}
	return nil
}

// Appearance returns the attached appearance, or nil.
func (c *Component) Appearance() *Appearance {
	return c.appearance
}

// SetAppearance attaches the given appearance, detaching any previous
// one, with the same event protocol as [Component.SetTransformation].
func (c *Component) SetAppearance(a *Appearance) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	if a != nil && a.owner != nil && a.owner != Node(c) {
		return fmt.Errorf("scene: SetAppearance on %q: appearance %q already attached to another component", c.name, a.name)
	}
	old := c.appearance
	if old == a {
		return nil
	}
	c.appearance = a
	if old != nil {
		old.owner = nil
		c.emit(&Event{Type: ChildRemoved, Node: c, OldChild: old})
	}
	if a != nil {
		a.owner = c
		c.emit(&Event{Type: ChildAdded, Node: c, NewChild: a})
	}
	return nil
}

// Geometry returns the referenced geometry, or nil.
func (c *Component) Geometry() Geometry {
	return c.geometry
}

// SetGeometry sets the referenced geometry. Geometries are shared, so no
// ownership is taken and the same geometry may be referenced by any
// number of components; mutations of it are visible through all of them.
// The change is still reported with the [ChildRemoved] / [ChildAdded]
// event protocol so that listeners track the reachable node set exactly.
func (c *Component) SetGeometry(g Geometry) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	old := c.geometry
	if old == g {
		return nil
	}
	c.geometry = g
	if old != nil {
		c.emit(&Event{Type: ChildRemoved, Node: c, OldChild: old})
	}
	if g != nil {
		c.emit(&Event{Type: ChildAdded, Node: c, NewChild: g})
	}
	return nil
}

// Camera returns the attached camera, or nil.
func (c *Component) Camera() *Camera {
	return c.camera
}

// SetCamera attaches the given camera, detaching any previous one, with
// the same event protocol as [Component.SetTransformation].
func (c *Component) SetCamera(cam *Camera) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	if cam != nil && cam.owner != nil && cam.owner != Node(c) {
		return fmt.Errorf("scene: SetCamera on %q: camera %q already attached to another component", c.name, cam.name)
	}
	old := c.camera
	if old == cam {
		return nil
	}
	c.camera = cam
	if old != nil {
		old.owner = nil
		c.emit(&Event{Type: ChildRemoved, Node: c, OldChild: old})
	}
	if cam != nil {
		cam.owner = c
		c.emit(&Event{Type: ChildAdded, Node: c, NewChild: cam})
	}
	return nil
}

// Light returns the attached light, or nil.
func (c *Component) Light() *Light {
	return c.light
}

// SetLight attaches the given light, detaching any previous one, with
// the same event protocol as [Component.SetTransformation].
func (c *Component) SetLight(l *Light) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	if l != nil && l.owner != nil && l.owner != Node(c) {
		return fmt.Errorf("scene: SetLight on %q: light %q already attached to another component", c.name, l.name)
	}
	old := c.light
	if old == l {
		return nil
	}
	c.light = l
	if old != nil {
		old.owner = nil
		c.emit(&Event{Type: ChildRemoved, Node: c, OldChild: old})
	}
	if l != nil {
		l.owner = c
		c.emit(&Event{Type: ChildAdded, Node: c, NewChild: l})
	}
	return nil
}

// Flags:

// IsVisible returns whether this component is visible. Visibility is not
// inherited by this layer: a renderer's traversal is responsible for
// skipping an invisible subtree entirely.
func (c *Component) IsVisible() bool {
	return c.visible
}

// SetVisible sets the visible flag and notifies listeners if it changed.
// It fails if this component is read-only.
func (c *Component) SetVisible(visible bool) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	if c.visible == visible {
		return nil
	}
	c.visible = visible
	c.emit(&Event{Type: VisibilityChanged, Node: c})
	return nil
}

// IsPickable returns whether this component participates in picking.
func (c *Component) IsPickable() bool {
	return c.pickable
}

// SetPickable sets the pickable flag and notifies listeners if it
// changed. It fails if this component is read-only.
func (c *Component) SetPickable(pickable bool) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	if c.pickable == pickable {
		return nil
	}
	c.pickable = pickable
	c.emit(&Event{Type: PickabilityChanged, Node: c})
	return nil
}

// Tools:

// Tools returns the attached tools. The returned slice is the internal
// data and must not be modified; use [Component.AddTool] and
// [Component.RemoveTool].
func (c *Component) Tools() []Tool {
	return c.tools
}

// AddTool attaches the given tool and notifies listeners.
// It fails if this component is read-only or the tool is nil.
func (c *Component) AddTool(t Tool) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("scene: AddTool on %q: tool is nil", c.name)
	}
	c.tools = append(c.tools, t)
	c.emit(&Event{Type: ToolAdded, Node: c})
	return nil
}

// RemoveTool detaches the given tool and notifies listeners, returning
// an error if this component is read-only or the tool is not attached.
func (c *Component) RemoveTool(t Tool) error {
	if err := c.checkWritable(); err != nil {
		return err
	}
	idx := slices.Index(c.tools, t)
	if idx < 0 {
		return fmt.Errorf("scene: RemoveTool on %q: tool not attached", c.name)
	}
	c.tools = slices.Delete(c.tools, idx, idx+1)
	c.emit(&Event{Type: ToolRemoved, Node: c})
	return nil
}
