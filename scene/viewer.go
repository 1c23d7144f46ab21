// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Viewer is the contract a rendering surface provides to applications
// and to the render trigger: a scene root, a camera path ending in a
// [Camera], and synchronous and optionally asynchronous render entry
// points.
//
// RenderAsync schedules a render with the host's frame scheduler rather
// than executing inline; a second request before the scheduled frame
// fires is redundant, which provides natural coalescing of bursts.
// Callers must gate its use on CanRenderAsync.
type Viewer interface {
	SceneRoot() *Component
	SetSceneRoot(root *Component)
	CameraPath() *Path
	SetCameraPath(p *Path)

	// Render renders one frame synchronously. A viewer with no scene
	// root or no valid camera path must treat this as a logged no-op.
	Render()

	// CanRenderAsync returns whether this viewer supports scheduled
	// asynchronous rendering.
	CanRenderAsync() bool

	// RenderAsync schedules a render for the next frame. Implementations
	// without frame scheduling should not be called; see CanRenderAsync.
	RenderAsync()
}
