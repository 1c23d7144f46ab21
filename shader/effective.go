// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shader implements the hierarchical resolution of appearance
// attributes during traversal: the [EffectiveAppearance] chain that a
// renderer builds as it descends the component tree, the dot-namespaced
// attribute keys shared by all rendering backends, and the derived draw
// flags and proxy geometry lookups. Shader schemas (the catalog of valid
// keys and typed defaults) are external; this package only implements
// lookup and fallback semantics.
package shader

import (
	"strings"

	"github.com/skydog23/jsreality-2021-sub007/scene"
)

// EffectiveAppearance is an immutable, singly-linked resolution chain of
// [scene.Appearance] layers, from the innermost (most specific) layer to
// the root. A traversal builds one by calling [EffectiveAppearance.CreateChild]
// on entering a component with an appearance and restoring the previous
// chain on leaving it; CreateChild never mutates the parent chain, so
// concurrent traversals over the same tree are safe.
type EffectiveAppearance struct {
	parent *EffectiveAppearance
	layer  *scene.Appearance
}

// New returns a new empty resolution chain; every lookup on it yields
// the caller-supplied default.
func New() *EffectiveAppearance {
	return &EffectiveAppearance{}
}

// CreateChild returns a new chain consisting of the given appearance
// layer on top of this chain. It is O(1): the appearance is wrapped by
// reference and the parent chain is not copied. The receiver may be nil,
// which acts as the empty chain.
func (ea *EffectiveAppearance) CreateChild(app *scene.Appearance) *EffectiveAppearance {
	return &EffectiveAppearance{parent: ea, layer: app}
}

// Parent returns the chain below this layer, or nil at the root.
func (ea *EffectiveAppearance) Parent() *EffectiveAppearance {
	if ea == nil {
		return nil
	}
	return ea.parent
}

// BaseKey returns the un-namespaced form of the given attribute key:
// the suffix after the last dot, or the key itself if it has no
// namespace prefix. For example, the base key of
// "pointShader.diffuseColor" is "diffuseColor".
func BaseKey(key string) string {
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		return key[i+1:]
	}
	return key
}

// Attribute resolves the given attribute key against the chain. The
// exact key is tried first, walking from the most specific layer toward
// the root; only if no layer sets it is the key's leading namespace
// segment stripped and the walk repeated, down to the bare base key. A
// namespaced value anywhere in the chain therefore wins over an
// un-namespaced fallback, even one set on a more specific layer; the
// un-namespaced value applies only where no layer overrides the
// namespaced form. If no form of the key is set on any layer, the given
// default is returned. Resolving against an empty chain returns the
// default immediately; that is not an error.
func (ea *EffectiveAppearance) Attribute(key string, def any) any {
	for k := key; ; {
		for l := ea; l != nil; l = l.parent {
			if l.layer == nil {
				continue
			}
			if v := l.layer.Attribute(k); v != scene.Inherited {
				return v
			}
		}
		i := strings.IndexByte(k, '.')
		if i < 0 {
			return def
		}
		k = k[i+1:]
	}
}

// Typed lookups. Attribute value types are not validated when set, so a
// resolved value of the wrong type falls back to the default, as an
// unset value does.

// Bool resolves the given key to a bool.
func (ea *EffectiveAppearance) Bool(key string, def bool) bool {
	if v, ok := ea.Attribute(key, def).(bool); ok {
		return v
	}
	return def
}

// Int resolves the given key to an int.
func (ea *EffectiveAppearance) Int(key string, def int) int {
	if v, ok := ea.Attribute(key, def).(int); ok {
		return v
	}
	return def
}

// Float resolves the given key to a float32, converting a set float64.
func (ea *EffectiveAppearance) Float(key string, def float32) float32 {
	switch v := ea.Attribute(key, def).(type) {
	case float32:
		return v
	case float64:
		return float32(v)
	}
	return def
}

// String resolves the given key to a string.
func (ea *EffectiveAppearance) String(key string, def string) string {
	if v, ok := ea.Attribute(key, def).(string); ok {
		return v
	}
	return def
}
