// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"slices"

	"github.com/jinzhu/copier"
)

// inheritedValue is the unexported type of the [Inherited] sentinel.
type inheritedValue struct{}

func (inheritedValue) String() string {
	return "inherited"
}

// Inherited is the distinguished sentinel value returned by
// [Appearance.Attribute] for any key that was never explicitly set.
// It is a first-class value, distinct from nil, and must be checked
// with identity (v == Inherited), never with truthiness, so that
// inheritance lookups remain unambiguous for attributes whose set
// value is a zero value such as false or 0.
var Inherited any = inheritedValue{}

// Appearance is a scene graph node holding a mapping from string
// attribute keys to arbitrary values. Keys are dot-namespaced, for
// example "pointShader.diffuseColor"; the resolution of namespaced
// keys against ancestor appearances is implemented by the shader
// package's EffectiveAppearance, not here. Unset keys read back as
// [Inherited], never as nil. Every mutation notifies listeners.
//
// Attribute value types are not validated here; the catalog of valid
// keys and their typed defaults is the concern of shader schemas.
type Appearance struct {
	NodeBase
	attributes map[string]any
}

// NewAppearance returns a new empty [Appearance] with the given
// optional name.
func NewAppearance(name ...string) *Appearance {
	a := &Appearance{attributes: map[string]any{}}
	if len(name) > 0 {
		a.name = name[0]
	}
	return a
}

// Kind returns [KindAppearance].
func (a *Appearance) Kind() NodeKind {
	return KindAppearance
}

// Accept calls [Visitor.VisitAppearance].
func (a *Appearance) Accept(v Visitor) {
	v.VisitAppearance(a)
}

// Attribute returns the value set for the given key, or the [Inherited]
// sentinel if the key was never set on this appearance.
func (a *Appearance) Attribute(key string) any {
	if v, ok := a.attributes[key]; ok {
		return v
	}
	return Inherited
}

// SetAttribute sets the given attribute key to the given value and
// notifies listeners. Setting a key to [Inherited] removes it, so it
// reads back as unset. It fails if the node is read-only.
func (a *Appearance) SetAttribute(key string, value any) error {
	if err := a.checkWritable(); err != nil {
		return err
	}
	if value == Inherited {
		delete(a.attributes, key)
	} else {
		a.attributes[key] = value
	}
	a.emit(&Event{Type: AppearanceChanged, Node: a, Key: key})
	return nil
}

// AttributeKeys returns the explicitly set attribute keys in sorted order.
func (a *Appearance) AttributeKeys() []string {
	keys := make([]string, 0, len(a.attributes))
	for k := range a.attributes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// NumAttributes returns the number of explicitly set attributes.
func (a *Appearance) NumAttributes() int {
	return len(a.attributes)
}

// copyFrom deep-copies the attribute map of the given source appearance
// into this one, for [Copy] isolation. Values that the deep copier cannot
// handle are shared by reference.
func (a *Appearance) copyFrom(src *Appearance) {
	a.attributes = map[string]any{}
	if err := copier.CopyWithOption(&a.attributes, &src.attributes, copier.Option{DeepCopy: true}); err != nil {
		for k, v := range src.attributes {
			a.attributes[k] = v
		}
	}
}
