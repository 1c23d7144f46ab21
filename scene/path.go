// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"strings"

	"github.com/skydog23/jsreality-2021-sub007/math32"
)

// Path is a list of scene graph nodes leading from a root component down
// the tree, where every element but possibly the last is a [Component]
// and each element is a child of (or attached to) the previous one.
// Paths identify a node together with the chain of transformations above
// it; the canonical use is the camera path of a [Viewer], ending in a
// [Camera].
//
// A Path holds plain references; it does not observe the tree, so a path
// can become invalid as the tree mutates. Use [Path.IsValid] to check.
type Path struct {
	nodes []Node
}

// NewPath returns a new path starting with the given nodes.
func NewPath(nodes ...Node) *Path {
	p := &Path{}
	p.nodes = append(p.nodes, nodes...)
	return p
}

// Nodes returns the node list. The returned slice is the internal data
// and must not be modified; use [Path.Push] and [Path.Pop].
func (p *Path) Nodes() []Node {
	return p.nodes
}

// Len returns the number of nodes in the path.
func (p *Path) Len() int {
	return len(p.nodes)
}

// First returns the first (root) node of the path, or nil if empty.
func (p *Path) First() Node {
	if len(p.nodes) == 0 {
		return nil
	}
	return p.nodes[0]
}

// Last returns the last node of the path, or nil if empty.
func (p *Path) Last() Node {
	if len(p.nodes) == 0 {
		return nil
	}
	return p.nodes[len(p.nodes)-1]
}

// Push appends the given node and returns the path.
func (p *Path) Push(n Node) *Path {
	p.nodes = append(p.nodes, n)
	return p
}

// Pop removes and returns the last node, or nil if the path is empty.
func (p *Path) Pop() Node {
	if len(p.nodes) == 0 {
		return nil
	}
	n := p.nodes[len(p.nodes)-1]
	p.nodes = p.nodes[:len(p.nodes)-1]
	return n
}

// Clone returns a copy of this path with its own node list.
func (p *Path) Clone() *Path {
	np := &Path{nodes: make([]Node, len(p.nodes))}
	copy(np.nodes, p.nodes)
	return np
}

// String returns the path as the node names joined with slashes.
func (p *Path) String() string {
	var b strings.Builder
	for i, n := range p.nodes {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(n.AsNodeBase().Name())
	}
	return b.String()
}

// IsValid reports whether each node of the path is a child of, or
// attached to, the previous one, and every node but the last is a
// component. An empty path is not valid.
func (p *Path) IsValid() bool {
	if len(p.nodes) == 0 {
		return false
	}
	for i := 0; i < len(p.nodes)-1; i++ {
		c, ok := p.nodes[i].(*Component)
		if !ok {
			return false
		}
		if !c.containsNode(p.nodes[i+1]) {
			return false
		}
	}
	return true
}

// containsNode reports whether the given node is a child of, or attached
// to, this component.
func (c *Component) containsNode(n Node) bool {
	switch nn := n.(type) {
	case *Component:
		for _, kid := range c.children {
			if kid == nn {
				return true
			}
		}
		return false
	case *Transformation:
		return c.transformation == nn
	case *Appearance:
		return c.appearance == nn
	case *Camera:
		return c.camera == nn
	case *Light:
		return c.light == nn
	default:
		if g, ok := n.(Geometry); ok {
			return c.geometry == g
		}
		return false
	}
}

// Matrix returns the product of the transformation matrices of the
// components along the path, in root-to-leaf order: the coordinate
// transformation from the space of the last element to the space the
// root lives in.
func (p *Path) Matrix() *math32.Matrix4 {
	m := math32.Identity4()
	for _, n := range p.nodes {
		c, ok := n.(*Component)
		if !ok {
			continue
		}
		if t := c.Transformation(); t != nil {
			local := t.Matrix()
			m.MulMatrices(m, &local)
		}
	}
	return m
}

// InverseMatrix returns the inverse of [Path.Matrix]: the coordinate
// transformation from the root space into the space of the last element.
// It returns the identity if the path matrix is singular.
func (p *Path) InverseMatrix() *math32.Matrix4 {
	inv, err := p.Matrix().Inverse()
	if err != nil {
		return math32.Identity4()
	}
	return inv
}
