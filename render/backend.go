// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides the backend-agnostic side of rendering a scene
// graph: the [Renderer] traversal engine that walks a component tree
// maintaining transform, appearance, and draw-flag stacks and delegates
// primitive drawing to a [Backend], and the [Trigger] that watches a
// scene graph and turns bursts of mutations into single render requests
// on registered viewers.
package render

import (
	"github.com/skydog23/jsreality-2021-sub007/math32"
	"github.com/skydog23/jsreality-2021-sub007/shader"
)

// PrimitiveKind is the kind of primitive group a backend is asked to draw.
type PrimitiveKind int32

const (
	PointPrimitives PrimitiveKind = iota
	LinePrimitives
	FacePrimitives
)

// String returns the name of the primitive kind.
func (pk PrimitiveKind) String() string {
	switch pk {
	case PointPrimitives:
		return "PointPrimitives"
	case LinePrimitives:
		return "LinePrimitives"
	case FacePrimitives:
		return "FacePrimitives"
	}
	return "PrimitiveKindInvalid"
}

// Backend is the set of primitive drawing hooks a concrete rendering
// backend implements. The [Renderer] calls them in a fixed order per
// frame, and a backend must not assume any other order:
//
//   - BeginRender once, then ApplyTransform with the world-to-device
//     matrix for the frame;
//   - per component with a transformation: PushTransformState, then
//     ApplyTransform with the new composite matrix, and a matching
//     PopTransformState when the component's subtree is done;
//   - per component with an appearance: ApplyAppearance, exactly once
//     per appearance (not once per attribute);
//   - per geometry: BeginPrimitiveGroup / draw calls / EndPrimitiveGroup
//     for points, then faces, then lines;
//   - EndRender once, also when the frame ends early after a failure.
//
// Coordinates passed to the draw hooks are in the local space of the
// component being drawn; the backend maintains its native transform
// state from the ApplyTransform/PushTransformState/PopTransformState
// calls. A backend signals a fatal drawing failure by panicking; the
// renderer recovers at the top of the frame.
type Backend interface {
	BeginRender()
	EndRender()

	ApplyTransform(m *math32.Matrix4)
	PushTransformState()
	PopTransformState()

	ApplyAppearance(ea *shader.EffectiveAppearance)

	BeginPrimitiveGroup(kind PrimitiveKind)
	EndPrimitiveGroup()

	DrawPoint(p math32.Vector3)
	DrawPolyline(points []math32.Vector3)
	DrawPolygon(points []math32.Vector3)
}
