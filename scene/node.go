// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the retained-mode scene graph: a tree of
// [Component] containers holding transformations, appearances, geometries,
// cameras, and lights, together with the change events that drive
// re-rendering. Rendering backends walk the tree through the [Visitor]
// interface; they are external to this package.
package scene

import (
	"errors"
	"fmt"
)

// ErrReadOnly is returned from any mutation of a node whose
// read-only flag is set.
var ErrReadOnly = errors.New("scene: node is read-only")

// NodeKind identifies the concrete type of a scene graph node.
// The set of node kinds is closed; switch statements over it
// can be exhaustive.
type NodeKind int32

const (
	KindComponent NodeKind = iota
	KindTransformation
	KindAppearance
	KindCamera
	KindLight
	KindPointSet
	KindIndexedLineSet
	KindIndexedFaceSet
)

// String returns the name of the node kind.
func (nk NodeKind) String() string {
	switch nk {
	case KindComponent:
		return "Component"
	case KindTransformation:
		return "Transformation"
	case KindAppearance:
		return "Appearance"
	case KindCamera:
		return "Camera"
	case KindLight:
		return "Light"
	case KindPointSet:
		return "PointSet"
	case KindIndexedLineSet:
		return "IndexedLineSet"
	case KindIndexedFaceSet:
		return "IndexedFaceSet"
	}
	return "NodeKindInvalid"
}

// Node is the interface that all scene graph members satisfy. The core
// functionality is defined on [NodeBase], which all node types embed.
type Node interface {

	// AsNodeBase returns the [NodeBase] of this node, which provides
	// the core name, read-only, owner, and listener functionality.
	AsNodeBase() *NodeBase

	// Kind returns the concrete kind of this node.
	Kind() NodeKind

	// Accept calls the [Visitor] method corresponding to the concrete
	// type of this node (double dispatch).
	Accept(v Visitor)
}

// NodeBase provides the core scene graph node functionality: a name,
// a read-only flag, a non-owning owner back-reference, and the change
// signal that listeners connect to. All node types embed it.
type NodeBase struct {
	name     string
	readOnly bool
	owner    Node
	signal   Signal
}

// AsNodeBase returns this [NodeBase].
func (n *NodeBase) AsNodeBase() *NodeBase {
	return n
}

// Name returns the name of this node.
func (n *NodeBase) Name() string {
	return n.name
}

// SetName sets the name of this node. It fails if the node is read-only.
func (n *NodeBase) SetName(name string) error {
	if err := n.checkWritable(); err != nil {
		return err
	}
	n.name = name
	return nil
}

// IsReadOnly returns whether this node is read-only.
func (n *NodeBase) IsReadOnly() bool {
	return n.readOnly
}

// SetReadOnly sets the read-only flag of this node. A read-only node
// fails fast with [ErrReadOnly] on any mutation.
func (n *NodeBase) SetReadOnly(readOnly bool) {
	n.readOnly = readOnly
}

// Owner returns the component this node is attached to, or nil if it is
// not attached. The reference is non-owning and exists for diagnostics;
// shared nodes such as geometries have no owner.
func (n *NodeBase) Owner() Node {
	return n.owner
}

// Listen connects the given listener function to this node's change
// signal under the given receiver key. See [Signal.Connect].
func (n *NodeBase) Listen(recv any, fun func(ev *Event)) {
	n.signal.Connect(recv, fun)
}

// Unlisten disconnects the listener registered under the given receiver
// key, returning whether one was found.
func (n *NodeBase) Unlisten(recv any) bool {
	return n.signal.Disconnect(recv)
}

// IsListening returns whether the given receiver key has a listener on
// this node.
func (n *NodeBase) IsListening(recv any) bool {
	return n.signal.IsConnected(recv)
}

// emit sends the given event to all listeners of this node.
func (n *NodeBase) emit(ev *Event) {
	n.signal.Emit(ev)
}

// checkWritable returns [ErrReadOnly] wrapped with the node name if the
// node is read-only, and nil otherwise.
func (n *NodeBase) checkWritable() error {
	if n.readOnly {
		return fmt.Errorf("%w: %q", ErrReadOnly, n.name)
	}
	return nil
}
