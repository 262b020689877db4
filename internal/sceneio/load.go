package sceneio

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"hierarchy-remapper/scene"
)

// Load reads a scene document from a file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return s, nil
}

// Parse decodes a scene document from YAML.
func Parse(data []byte) (*Scene, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return Decode(&doc)
}

type pendingComponent struct {
	c      *scene.Component
	fields []FieldDoc
}

// Decode builds a Scene from a document. Trees are built first and field
// values second, so references may point anywhere in the document.
func Decode(doc *Document) (*Scene, error) {
	if err := CheckVersion(doc.Version); err != nil {
		return nil, err
	}

	s := &Scene{}

	for _, name := range doc.Assets {
		if s.Asset(name) != nil {
			return nil, fmt.Errorf("duplicate asset %q", name)
		}

		s.AddAsset(name)
	}

	var pending []pendingComponent

	for i := range doc.Roots {
		root, err := buildNode(&doc.Roots[i], &pending)
		if err != nil {
			return nil, fmt.Errorf("root %d: %w", i, err)
		}

		s.Roots = append(s.Roots, root)
	}

	for _, p := range pending {
		where := scene.AbsolutePath(p.c.Owner()).String() + componentSep + p.c.Type

		fields, err := s.decodeFields(p.fields, where)
		if err != nil {
			return nil, err
		}

		p.c.Fields = scene.Record{Fields: fields}
	}

	return s, nil
}

func buildNode(d *NodeDoc, pending *[]pendingComponent) (*scene.Node, error) {
	if d.Name == "" {
		return nil, errors.New("node without a name")
	}

	n := scene.NewNode(d.Name)

	if d.Active != nil {
		n.Active = *d.Active
	}

	if t := d.Transform; t != nil {
		if t.Position != nil {
			n.Transform.Position = *t.Position
		}

		if t.Rotation != nil {
			n.Transform.Rotation = *t.Rotation
		}

		if t.Scale != nil {
			n.Transform.Scale = *t.Scale
		}
	}

	for i := range d.Children {
		child, err := buildNode(&d.Children[i], pending)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}

		n.AddChild(child)
	}

	for _, cd := range d.Components {
		if cd.Type == "" {
			return nil, fmt.Errorf("%s: component without a type", d.Name)
		}

		c := n.AddComponent(cd.Type, scene.Record{})
		*pending = append(*pending, pendingComponent{c: c, fields: cd.Fields})
	}

	return n, nil
}

func (s *Scene) decodeFields(docs []FieldDoc, where string) ([]scene.Field, error) {
	fields := make([]scene.Field, 0, len(docs))

	for _, fd := range docs {
		v, err := s.decodeValue(fd, where+"."+fd.Name)
		if err != nil {
			return nil, err
		}

		fields = append(fields, scene.Field{Name: fd.Name, Value: v})
	}

	return fields, nil
}

func (s *Scene) decodeValue(fd FieldDoc, where string) (scene.Value, error) {
	switch fd.Kind {
	case scene.KindScalar:
		return scene.Scalar{V: fd.Scalar}, nil
	case scene.KindRef:
		obj, err := s.resolveRef(fd.Ref)
		if err != nil {
			return nil, &RefError{Ref: fd.Ref, Field: where, Err: err}
		}

		return scene.Ref{Target: obj}, nil
	case scene.KindArray, scene.KindList:
		objs := make([]scene.Object, len(fd.Refs))

		for i, ref := range fd.Refs {
			obj, err := s.resolveRef(ref)
			if err != nil {
				return nil, &RefError{Ref: ref, Field: where + "[" + strconv.Itoa(i) + "]", Err: err}
			}

			objs[i] = obj
		}

		if fd.Kind == scene.KindArray {
			return scene.Array(objs), nil
		}

		return scene.List(objs), nil
	case scene.KindRecord:
		fields, err := s.decodeFields(fd.Record.Fields, where)
		if err != nil {
			return nil, err
		}

		return scene.Record{Type: fd.Record.Type, Fields: fields}, nil
	case scene.KindOpaque:
		return scene.Opaque{Type: fd.Opaque.Type, V: fd.Opaque.Value}, nil
	default:
		return nil, fmt.Errorf("field %s: no value", where)
	}
}
