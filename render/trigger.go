// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"log/slog"
	"slices"

	"github.com/skydog23/jsreality-2021-sub007/scene"
)

// Trigger watches registered scene graph subtrees and requests a render
// from the registered viewers whenever anything observable in them
// changes. It subscribes to every listenable node reachable from the
// registered roots, re-subscribes incrementally as subtrees are added
// and removed (walking only the delta carried by each structural event,
// never the whole tree), and coalesces bursts of mutations:
//
//   - a viewer supporting asynchronous rendering coalesces through its
//     frame scheduler;
//   - explicit batches bracketed by [Trigger.StartCollect] and
//     [Trigger.FinishCollect] collapse any number of render requests
//     into at most one dispatch.
//
// Like the scene graph itself, a Trigger is single-threaded: it must be
// driven from the same goroutine that mutates the tree.
type Trigger struct {

	// PreferAsync selects [scene.Viewer.RenderAsync] over synchronous
	// rendering for viewers that support it. On by default.
	PreferAsync bool

	viewers []scene.Viewer
	roots   []*scene.Component

	// refs counts, per subscribed node, the number of references to it
	// from the registered subtrees. Shared geometries, and nodes under
	// a root that is itself a descendant of another registered root,
	// can be reached more than once; a node is unsubscribed only when
	// the last reference goes away.
	refs map[scene.Node]int

	collecting bool
	dirty      bool
}

// NewTrigger returns a new [Trigger] with no viewers and no scene.
func NewTrigger() *Trigger {
	return &Trigger{PreferAsync: true, refs: map[scene.Node]int{}}
}

// AddViewer registers a viewer to receive render requests.
func (tr *Trigger) AddViewer(v scene.Viewer) {
	tr.viewers = append(tr.viewers, v)
}

// RemoveViewer unregisters the given viewer.
func (tr *Trigger) RemoveViewer(v scene.Viewer) {
	if idx := slices.Index(tr.viewers, v); idx >= 0 {
		tr.viewers = slices.Delete(tr.viewers, idx, idx+1)
	}
}

// AddSceneGraphComponent registers the subtree rooted at the given
// component: the trigger subscribes to every listenable node reachable
// from it, and keeps the subscription set in step with the live tree
// from then on.
func (tr *Trigger) AddSceneGraphComponent(root *scene.Component) {
	if root == nil {
		return
	}
	tr.roots = append(tr.roots, root)
	tr.subscribe(root)
}

// RemoveSceneGraphComponent unregisters the subtree rooted at the given
// component, unsubscribing from every node in it.
func (tr *Trigger) RemoveSceneGraphComponent(root *scene.Component) {
	idx := slices.Index(tr.roots, root)
	if idx < 0 {
		return
	}
	tr.roots = slices.Delete(tr.roots, idx, idx+1)
	tr.unsubscribe(root)
}

// StartCollect begins a batch of programmatic mutations: until
// [Trigger.FinishCollect], render requests are recorded instead of
// dispatched.
func (tr *Trigger) StartCollect() {
	if tr.collecting {
		slog.Warn("render: Trigger.StartCollect while already collecting")
	}
	tr.collecting = true
	tr.dirty = false
}

// FinishCollect ends a batch started by [Trigger.StartCollect],
// dispatching at most one render if any request occurred during the
// batch.
func (tr *Trigger) FinishCollect() {
	if !tr.collecting {
		slog.Warn("render: Trigger.FinishCollect without StartCollect")
		return
	}
	tr.collecting = false
	if tr.dirty {
		tr.dirty = false
		tr.dispatch()
	}
}

// ForceRender dispatches a render to all viewers immediately, bypassing
// any collecting batch.
func (tr *Trigger) ForceRender() {
	tr.dispatch()
}

// onEvent is the listener connected to every subscribed node. Structural
// events update the subscription set by walking exactly the added or
// removed subtree; every event then requests a render.
func (tr *Trigger) onEvent(ev *scene.Event) {
	switch ev.Type {
	case scene.ChildAdded:
		// The parent's refcount is the number of registered-root paths
		// reaching it; the new subtree gains one reference per path.
		for i, n := 0, tr.refs[ev.Node]; i < n; i++ {
			tr.subscribe(ev.NewChild)
		}
	case scene.ChildRemoved:
		for i, n := 0, tr.refs[ev.Node]; i < n; i++ {
			tr.unsubscribe(ev.OldChild)
		}
	}
	tr.requestRender()
}

// subscribe connects the trigger to the given node and, for components,
// to everything reachable below it.
func (tr *Trigger) subscribe(n scene.Node) {
	if n == nil {
		return
	}
	tr.refs[n]++
	if tr.refs[n] == 1 {
		n.AsNodeBase().Listen(tr, tr.onEvent)
	}
	if c, ok := n.(*scene.Component); ok {
		if t := c.Transformation(); t != nil {
			tr.subscribe(t)
		}
		if a := c.Appearance(); a != nil {
			tr.subscribe(a)
		}
		if g := c.Geometry(); g != nil {
			tr.subscribe(g)
		}
		if cam := c.Camera(); cam != nil {
			tr.subscribe(cam)
		}
		if l := c.Light(); l != nil {
			tr.subscribe(l)
		}
		for _, kid := range c.Children() {
			tr.subscribe(kid)
		}
	}
}

// unsubscribe disconnects the trigger from the given node and, for
// components, from everything reachable below it. A node shared with a
// still-registered subtree keeps its subscription.
func (tr *Trigger) unsubscribe(n scene.Node) {
	if n == nil {
		return
	}
	if tr.refs[n] == 0 {
		slog.Warn("render: Trigger unsubscribing from node it is not subscribed to", "name", n.AsNodeBase().Name())
		return
	}
	tr.refs[n]--
	if tr.refs[n] == 0 {
		delete(tr.refs, n)
		n.AsNodeBase().Unlisten(tr)
	}
	if c, ok := n.(*scene.Component); ok {
		if t := c.Transformation(); t != nil {
			tr.unsubscribe(t)
		}
		if a := c.Appearance(); a != nil {
			tr.unsubscribe(a)
		}
		if g := c.Geometry(); g != nil {
			tr.unsubscribe(g)
		}
		if cam := c.Camera(); cam != nil {
			tr.unsubscribe(cam)
		}
		if l := c.Light(); l != nil {
			tr.unsubscribe(l)
		}
		for _, kid := range c.Children() {
			tr.unsubscribe(kid)
		}
	}
}

// requestRender dispatches a render, or records it when collecting.
func (tr *Trigger) requestRender() {
	if tr.collecting {
		tr.dirty = true
		return
	}
	tr.dispatch()
}

// dispatch requests one render from each registered viewer, preferring
// frame-coalesced asynchronous rendering where supported.
func (tr *Trigger) dispatch() {
	for _, v := range tr.viewers {
		if tr.PreferAsync && v.CanRenderAsync() {
			v.RenderAsync()
		} else {
			v.Render()
		}
	}
}
