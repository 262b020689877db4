package sceneio

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"hierarchy-remapper/scene"
)

// Marshal encodes s as a YAML document.
func Marshal(s *Scene) ([]byte, error) {
	doc, err := Encode(s)
	if err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scene: %w", err)
	}

	return data, nil
}

// WriteFile writes s to path.
func WriteFile(path string, s *Scene) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scene file: %w", err)
	}

	return nil
}

type encoder struct {
	s      *Scene
	doc    *Document
	assets map[string]struct{}
}

// Encode converts s to its document form. Default values (active nodes,
// identity transform vectors) are omitted, and assets referenced by fields
// but missing from s.Assets are appended to the asset list.
func Encode(s *Scene) (*Document, error) {
	e := &encoder{
		s:      s,
		doc:    &Document{Version: FormatVersion},
		assets: make(map[string]struct{}, len(s.Assets)),
	}

	for _, a := range s.Assets {
		e.asset(a.Name)
	}

	for _, root := range s.Roots {
		nd, err := e.node(root)
		if err != nil {
			return nil, err
		}

		e.doc.Roots = append(e.doc.Roots, nd)
	}

	return e.doc, nil
}

func (e *encoder) asset(name string) {
	if _, ok := e.assets[name]; ok {
		return
	}

	e.assets[name] = struct{}{}
	e.doc.Assets = append(e.doc.Assets, name)
}

func (e *encoder) node(n *scene.Node) (NodeDoc, error) {
	nd := NodeDoc{Name: n.Name}

	if !n.Active {
		inactive := false
		nd.Active = &inactive
	}

	nd.Transform = transformDoc(n.Transform)

	for _, c := range n.Components() {
		where := scene.AbsolutePath(n).String() + componentSep + c.Type

		fields, err := e.fields(c.Fields.Fields, where)
		if err != nil {
			return NodeDoc{}, err
		}

		nd.Components = append(nd.Components, ComponentDoc{Type: c.Type, Fields: fields})
	}

	for _, child := range n.Children() {
		cd, err := e.node(child)
		if err != nil {
			return NodeDoc{}, err
		}

		nd.Children = append(nd.Children, cd)
	}

	return nd, nil
}

func transformDoc(t scene.Transform) *TransformDoc {
	identity := scene.IdentityTransform()
	td := &TransformDoc{}
	set := false

	if t.Position != identity.Position {
		td.Position, set = &t.Position, true
	}

	if t.Rotation != identity.Rotation {
		td.Rotation, set = &t.Rotation, true
	}

	if t.Scale != identity.Scale {
		td.Scale, set = &t.Scale, true
	}

	if !set {
		return nil
	}

	return td
}

func (e *encoder) fields(fields []scene.Field, where string) ([]FieldDoc, error) {
	var docs []FieldDoc

	for _, f := range fields {
		fd, err := e.value(f.Value, where+"."+f.Name)
		if err != nil {
			return nil, err
		}

		fd.Name = f.Name
		docs = append(docs, fd)
	}

	return docs, nil
}

func (e *encoder) value(v scene.Value, where string) (FieldDoc, error) {
	switch val := v.(type) {
	case scene.Scalar:
		return FieldDoc{Kind: scene.KindScalar, Scalar: val.V}, nil
	case scene.Ref:
		ref, err := e.ref(val.Target, where)
		if err != nil {
			return FieldDoc{}, err
		}

		return FieldDoc{Kind: scene.KindRef, Ref: ref}, nil
	case scene.Array:
		refs, err := e.refs(val, where)
		return FieldDoc{Kind: scene.KindArray, Refs: refs}, err
	case scene.List:
		refs, err := e.refs(val, where)
		return FieldDoc{Kind: scene.KindList, Refs: refs}, err
	case scene.Record:
		fields, err := e.fields(val.Fields, where)
		if err != nil {
			return FieldDoc{}, err
		}

		return FieldDoc{Kind: scene.KindRecord, Record: &RecordDoc{Type: val.Type, Fields: fields}}, nil
	case scene.Opaque:
		return FieldDoc{Kind: scene.KindOpaque, Opaque: &OpaqueDoc{Type: val.Type, Value: val.V}}, nil
	default:
		return FieldDoc{}, fmt.Errorf("field %s: no value", where)
	}
}

func (e *encoder) refs(objs []scene.Object, where string) ([]string, error) {
	refs := make([]string, len(objs))

	for i, obj := range objs {
		ref, err := e.ref(obj, where+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}

		refs[i] = ref
	}

	return refs, nil
}

func (e *encoder) ref(obj scene.Object, where string) (string, error) {
	ref, err := e.s.refString(obj)
	if err != nil {
		return "", &RefError{Field: where, Err: err}
	}

	if a, ok := obj.(*scene.Asset); ok && a != nil {
		e.asset(a.Name)
	}

	return ref, nil
}
