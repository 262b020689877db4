package sceneio

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"hierarchy-remapper/scene"
)

// Document is the on-disk form of a Scene.
type Document struct {
	Version string    `yaml:"version"`
	Assets  []string  `yaml:"assets,omitempty"`
	Roots   []NodeDoc `yaml:"roots"`
}

// NodeDoc is one node and its subtree.
type NodeDoc struct {
	Name       string         `yaml:"name"`
	Active     *bool          `yaml:"active,omitempty"`
	Transform  *TransformDoc  `yaml:"transform,omitempty"`
	Components []ComponentDoc `yaml:"components,omitempty"`
	Children   []NodeDoc      `yaml:"children,omitempty"`
}

// TransformDoc holds the local transform; absent vectors keep their identity value.
type TransformDoc struct {
	Position *scene.Vector3 `yaml:"position,omitempty,flow"`
	Rotation *scene.Vector3 `yaml:"rotation,omitempty,flow"`
	Scale    *scene.Vector3 `yaml:"scale,omitempty,flow"`
}

type ComponentDoc struct {
	Type   string     `yaml:"type"`
	Fields []FieldDoc `yaml:"fields,omitempty"`
}

type RecordDoc struct {
	Type   string     `yaml:"type,omitempty"`
	Fields []FieldDoc `yaml:"fields,omitempty"`
}

type OpaqueDoc struct {
	Type  string `yaml:"type"`
	Value any    `yaml:"value,omitempty"`
}

// FieldDoc is a named field carrying exactly one value. Kind tells which
// of the value members is in use.
type FieldDoc struct {
	Name   string
	Kind   scene.Kind
	Scalar any
	Ref    string   // KindRef
	Refs   []string // KindArray, KindList
	Record *RecordDoc
	Opaque *OpaqueDoc
}

var fieldKeys = map[string]scene.Kind{
	"scalar": scene.KindScalar,
	"ref":    scene.KindRef,
	"array":  scene.KindArray,
	"list":   scene.KindList,
	"record": scene.KindRecord,
	"opaque": scene.KindOpaque,
}

// UnmarshalYAML decodes a field mapping, rejecting unknown keys and any
// number of value keys other than one.
func (f *FieldDoc) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: field must be a mapping", n.Line)
	}

	*f = FieldDoc{}
	values := 0

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]

		if key.Value == "name" {
			if err := val.Decode(&f.Name); err != nil {
				return err
			}

			continue
		}

		kind, ok := fieldKeys[key.Value]
		if !ok {
			return fmt.Errorf("line %d: unknown field key %q", key.Line, key.Value)
		}

		values++
		f.Kind = kind

		var err error

		switch kind {
		case scene.KindScalar:
			err = val.Decode(&f.Scalar)
		case scene.KindRef:
			err = val.Decode(&f.Ref)
		case scene.KindArray, scene.KindList:
			err = val.Decode(&f.Refs)
		case scene.KindRecord:
			f.Record = &RecordDoc{}
			err = val.Decode(f.Record)
		case scene.KindOpaque:
			f.Opaque = &OpaqueDoc{}
			err = val.Decode(f.Opaque)
		}

		if err != nil {
			return fmt.Errorf("line %d: field %q: %w", val.Line, f.Name, err)
		}
	}

	if f.Name == "" {
		return fmt.Errorf("line %d: field without a name", n.Line)
	}

	if values != 1 {
		return fmt.Errorf("line %d: field %q must have exactly one value, found %d", n.Line, f.Name, values)
	}

	return nil
}

// MarshalYAML writes the field as {name, <kind>: value}.
func (f FieldDoc) MarshalYAML() (any, error) {
	var v any

	switch f.Kind {
	case scene.KindScalar:
		v = f.Scalar
	case scene.KindRef:
		v = f.Ref
	case scene.KindArray, scene.KindList:
		v = f.Refs
	case scene.KindRecord:
		v = f.Record
	case scene.KindOpaque:
		v = f.Opaque
	default:
		return nil, fmt.Errorf("field %q: no value", f.Name)
	}

	var name, val yaml.Node
	if err := name.Encode(f.Name); err != nil {
		return nil, err
	}

	if err := val.Encode(v); err != nil {
		return nil, fmt.Errorf("field %q: %w", f.Name, err)
	}

	if f.Kind == scene.KindArray || f.Kind == scene.KindList {
		val.Style = yaml.FlowStyle
	}

	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "name"}, &name,
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Kind.Name()}, &val,
		},
	}, nil
}
