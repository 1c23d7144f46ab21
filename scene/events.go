// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "slices"

// EventType is the kind of change that an [Event] reports.
type EventType int32

const (
	// ChildAdded is a structural event: a node was attached to a
	// [Component]. The event carries the new node in [Event.NewChild]
	// and never carries an old node.
	ChildAdded EventType = iota

	// ChildRemoved is a structural event: a node was detached from a
	// [Component]. The event carries the removed node in [Event.OldChild]
	// and never carries a new node.
	ChildRemoved

	// TransformationChanged reports a mutation of a [Transformation] matrix.
	TransformationChanged

	// AppearanceChanged reports a mutation of an [Appearance] attribute.
	// The attribute key is in [Event.Key].
	AppearanceChanged

	// GeometryChanged reports a mutation of the data arrays of a geometry node.
	GeometryChanged

	// CameraChanged reports a mutation of a [Camera] parameter.
	CameraChanged

	// LightChanged reports a mutation of a [Light] parameter.
	LightChanged

	// VisibilityChanged reports a change of the [Component] visible flag.
	VisibilityChanged

	// PickabilityChanged reports a change of the [Component] pickable flag.
	PickabilityChanged

	// ToolAdded reports a tool attached to a [Component].
	ToolAdded

	// ToolRemoved reports a tool detached from a [Component].
	ToolRemoved
)

// String returns the name of the event type.
func (et EventType) String() string {
	switch et {
	case ChildAdded:
		return "ChildAdded"
	case ChildRemoved:
		return "ChildRemoved"
	case TransformationChanged:
		return "TransformationChanged"
	case AppearanceChanged:
		return "AppearanceChanged"
	case GeometryChanged:
		return "GeometryChanged"
	case CameraChanged:
		return "CameraChanged"
	case LightChanged:
		return "LightChanged"
	case VisibilityChanged:
		return "VisibilityChanged"
	case PickabilityChanged:
		return "PickabilityChanged"
	case ToolAdded:
		return "ToolAdded"
	case ToolRemoved:
		return "ToolRemoved"
	}
	return "EventTypeInvalid"
}

// Event is a change notification emitted by a scene graph node to its
// listeners. Structural events ([ChildAdded], [ChildRemoved]) carry exactly
// one of NewChild or OldChild, never both, so that listeners can
// incrementally (re)subscribe to exactly the delta. A replacement of an
// attached sub-node (for example [Component.SetTransformation] swapping one
// transformation for another) is reported as a ChildRemoved event followed
// by a ChildAdded event.
type Event struct {

	// Type is the kind of change.
	Type EventType

	// Node is the node the event originated on.
	Node Node

	// Key is the attribute key for [AppearanceChanged] events.
	Key string

	// NewChild is the attached node for [ChildAdded] events.
	NewChild Node

	// OldChild is the detached node for [ChildRemoved] events.
	OldChild Node
}

// connection is one registered listener of a [Signal].
type connection struct {
	recv any
	fun  func(ev *Event)
}

// Signal is a list of listener functions keyed by an arbitrary receiver
// value, so that a receiver can later disconnect from the signal without
// retaining the listener function itself. Listeners are called sequentially
// in the order they were connected.
type Signal struct {
	cons []connection
}

// Connect attaches the given listener function under the given receiver
// key. If the receiver is already connected, its function is replaced, so
// a given receiver is never called more than once per event.
func (s *Signal) Connect(recv any, fun func(ev *Event)) {
	for i, con := range s.cons {
		if con.recv == recv {
			s.cons[i].fun = fun
			return
		}
	}
	s.cons = append(s.cons, connection{recv: recv, fun: fun})
}

// Disconnect removes the listener registered under the given receiver key,
// returning whether one was found.
func (s *Signal) Disconnect(recv any) bool {
	for i, con := range s.cons {
		if con.recv == recv {
			s.cons = append(s.cons[:i], s.cons[i+1:]...)
			return true
		}
	}
	return false
}

// IsConnected returns whether the given receiver key has a listener
// registered on this signal.
func (s *Signal) IsConnected(recv any) bool {
	for _, con := range s.cons {
		if con.recv == recv {
			return true
		}
	}
	return false
}

// Emit calls all connected listener functions with the given event.
func (s *Signal) Emit(ev *Event) {
	// listeners may disconnect during dispatch; iterate over a snapshot
	cons := slices.Clone(s.cons)
	for _, con := range cons {
		con.fun(ev)
	}
}
