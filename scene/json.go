// Copyright (c) 2026, The jsReality Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/skydog23/jsreality-2021-sub007/math32"
)

// Component trees support JSON marshalling and unmarshalling through the
// standard [encoding/json] interfaces. Geometry nodes are encoded inline
// with a kind tag; a geometry shared by several components is written
// once per reference, so sharing is not preserved across a round trip.
// Appearance attribute values must be JSON-encodable; values that are
// not are skipped with a logged warning, and on load they come back as
// the generic JSON types (bool, float64, string, []any, map[string]any).
// Tools are not serialized.

type componentJSON struct {
	Name           string          `json:"name,omitempty"`
	ReadOnly       bool            `json:"readOnly,omitempty"`
	Visible        *bool           `json:"visible,omitempty"`
	Pickable       *bool           `json:"pickable,omitempty"`
	Transformation *[16]float32    `json:"transformation,omitempty"`
	Appearance     *appearanceJSON `json:"appearance,omitempty"`
	Camera         *cameraJSON     `json:"camera,omitempty"`
	Light          *lightJSON      `json:"light,omitempty"`
	Geometry       *geometryJSON   `json:"geometry,omitempty"`
	Children       []*Component    `json:"children,omitempty"`
}

type appearanceJSON struct {
	Name       string                     `json:"name,omitempty"`
	Attributes map[string]json.RawMessage `json:"attributes,omitempty"`
}

type cameraJSON struct {
	Name        string  `json:"name,omitempty"`
	FieldOfView float32 `json:"fieldOfView"`
	Near        float32 `json:"near"`
	Far         float32 `json:"far"`
	Focus       float32 `json:"focus"`
	Perspective bool    `json:"perspective"`
}

type lightJSON struct {
	Name      string   `json:"name,omitempty"`
	Kind      string   `json:"kind"`
	Color     [4]uint8 `json:"color"`
	Intensity float32  `json:"intensity"`
	ConeAngle float32  `json:"coneAngle,omitempty"`
}

type geometryJSON struct {
	Name     string       `json:"name,omitempty"`
	Kind     string       `json:"kind"`
	Vertices [][3]float32 `json:"vertices,omitempty"`
	Edges    [][]int      `json:"edges,omitempty"`
	Faces    [][]int      `json:"faces,omitempty"`
}

// MarshalJSON implements [json.Marshaler].
func (c *Component) MarshalJSON() ([]byte, error) {
	cj := &componentJSON{
		Name:     c.name,
		ReadOnly: c.readOnly,
		Children: c.children,
	}
	if !c.visible {
		v := false
		cj.Visible = &v
	}
	if !c.pickable {
		v := false
		cj.Pickable = &v
	}
	if c.transformation != nil {
		m := [16]float32(c.transformation.matrix)
		cj.Transformation = &m
	}
	if c.appearance != nil {
		aj := &appearanceJSON{Name: c.appearance.name, Attributes: map[string]json.RawMessage{}}
		for k, v := range c.appearance.attributes {
			b, err := json.Marshal(v)
			if err != nil {
				slog.Warn("scene: skipping non-serializable appearance attribute", "key", k, "err", err)
				continue
			}
			aj.Attributes[k] = b
		}
		cj.Appearance = aj
	}
	if c.camera != nil {
		cj.Camera = &cameraJSON{
			Name:        c.camera.name,
			FieldOfView: c.camera.fieldOfView,
			Near:        c.camera.near,
			Far:         c.camera.far,
			Focus:       c.camera.focus,
			Perspective: c.camera.perspective,
		}
	}
	if c.light != nil {
		cj.Light = &lightJSON{
			Name:      c.light.name,
			Kind:      c.light.kind.String(),
			Color:     [4]uint8{c.light.color.R, c.light.color.G, c.light.color.B, c.light.color.A},
			Intensity: c.light.intensity,
			ConeAngle: c.light.coneAngle,
		}
	}
	if c.geometry != nil {
		cj.Geometry = marshalGeometry(c.geometry)
	}
	return json.Marshal(cj)
}

func marshalGeometry(g Geometry) *geometryJSON {
	gj := &geometryJSON{Name: g.AsNodeBase().Name(), Kind: g.Kind().String()}
	for _, v := range g.AsPointSet().vertices {
		gj.Vertices = append(gj.Vertices, [3]float32{v.X, v.Y, v.Z})
	}
	switch gg := g.(type) {
	case *IndexedFaceSet:
		gj.Edges = gg.edges
		gj.Faces = gg.faces
	case *IndexedLineSet:
		gj.Edges = gg.edges
	}
	return gj
}

// UnmarshalJSON implements [json.Unmarshaler].
func (c *Component) UnmarshalJSON(b []byte) error {
	var cj componentJSON
	if err := json.Unmarshal(b, &cj); err != nil {
		return err
	}
	c.name = cj.Name
	c.visible = cj.Visible == nil || *cj.Visible
	c.pickable = cj.Pickable == nil || *cj.Pickable
	if cj.Transformation != nil {
		t := NewTransformation()
		t.matrix = math32.Matrix4(*cj.Transformation)
		t.owner = c
		c.transformation = t
	}
	if cj.Appearance != nil {
		a := NewAppearance(cj.Appearance.Name)
		for k, raw := range cj.Appearance.Attributes {
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return fmt.Errorf("scene: appearance attribute %q: %w", k, err)
			}
			a.attributes[k] = v
		}
		a.owner = c
		c.appearance = a
	}
	if cj.Camera != nil {
		cam := NewCamera(cj.Camera.Name)
		cam.fieldOfView = cj.Camera.FieldOfView
		cam.near = cj.Camera.Near
		cam.far = cj.Camera.Far
		cam.focus = cj.Camera.Focus
		cam.perspective = cj.Camera.Perspective
		cam.owner = c
		c.camera = cam
	}
	if cj.Light != nil {
		l := NewLight(lightKindByName(cj.Light.Kind), cj.Light.Name)
		l.color.R = cj.Light.Color[0]
		l.color.G = cj.Light.Color[1]
		l.color.B = cj.Light.Color[2]
		l.color.A = cj.Light.Color[3]
		l.intensity = cj.Light.Intensity
		if cj.Light.ConeAngle != 0 {
			l.coneAngle = cj.Light.ConeAngle
		}
		l.owner = c
		c.light = l
	}
	if cj.Geometry != nil {
		g, err := unmarshalGeometry(cj.Geometry)
		if err != nil {
			return err
		}
		c.geometry = g
	}
	for _, kid := range cj.Children {
		kid.owner = c
		c.children = append(c.children, kid)
	}
	// the read-only flag is restored last so the node stays constructible
	c.readOnly = cj.ReadOnly
	return nil
}

func lightKindByName(name string) LightKind {
	switch name {
	case "PointLight":
		return PointLight
	case "SpotLight":
		return SpotLight
	default:
		return DirectionalLight
	}
}

func unmarshalGeometry(gj *geometryJSON) (Geometry, error) {
	vertices := make([]math32.Vector3, len(gj.Vertices))
	for i, v := range gj.Vertices {
		vertices[i] = math32.Vec3(v[0], v[1], v[2])
	}
	switch gj.Kind {
	case "PointSet":
		p := NewPointSet(gj.Name)
		p.vertices = vertices
		return p, nil
	case "IndexedLineSet":
		l := NewIndexedLineSet(gj.Name)
		l.vertices = vertices
		l.edges = gj.Edges
		return l, nil
	case "IndexedFaceSet":
		f := NewIndexedFaceSet(gj.Name)
		f.vertices = vertices
		f.edges = gj.Edges
		f.faces = gj.Faces
		return f, nil
	}
	return nil, fmt.Errorf("scene: unknown geometry kind %q", gj.Kind)
}

// SaveJSON writes the subtree rooted at the given component to the given
// filename as indented JSON.
func SaveJSON(c *Component, filename string) error {
	b, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// OpenJSON reads a component subtree from the given JSON file.
func OpenJSON(filename string) (*Component, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	c := NewComponent()
	if err := json.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}
