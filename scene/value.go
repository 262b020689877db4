package scene

import (
	"reflect"
	"slices"
)

// Value is a field value. The set of implementations is closed: Scalar, Ref,
// Array, List, Record and Opaque.
type Value interface {
	Kind() Kind
	isValue()
}

// Scalar holds a primitive or built-in value (number, string, bool, enum,
// vector, color...). Scalars never reference objects.
type Scalar struct{ V any }

// Ref is a single reference; a nil Target is a null reference.
type Ref struct{ Target Object }

// Array is a fixed-size sequence of references. Elements may be nil.
type Array []Object

// List is a dynamically sized ordered sequence of references. Elements may be nil.
type List []Object

// Opaque is a host value whose shape is outside the closed set, such as a
// dictionary keyed by references. It is carried through untouched.
type Opaque struct {
	Type string
	V    any
}

// Field is a named value inside a Record.
type Field struct {
	Name  string
	Value Value
}

// Record is a nested value record: a structured value embedded by value in a
// component, or the component's own field set.
type Record struct {
	Type   string
	Fields []Field
}

func (Scalar) Kind() Kind { return KindScalar }
func (Ref) Kind() Kind    { return KindRef }
func (Array) Kind() Kind  { return KindArray }
func (List) Kind() Kind   { return KindList }
func (Record) Kind() Kind { return KindRecord }
func (Opaque) Kind() Kind { return KindOpaque }

func (Scalar) isValue() {}
func (Ref) isValue()    {}
func (Array) isValue()  {}
func (List) isValue()   {}
func (Record) isValue() {}
func (Opaque) isValue() {}

// NewRecord builds a record of the given type.
func NewRecord(typ string, fields ...Field) Record {
	return Record{Type: typ, Fields: fields}
}

// Get returns the value of the first field named name.
func (r Record) Get(name string) (Value, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}

	return nil, false
}

// With returns a copy of r in which the first field named name holds v.
// The field is appended when r has no such field.
func (r Record) With(name string, v Value) Record {
	for i, f := range r.Fields {
		if f.Name == name {
			return r.WithIndex(i, v)
		}
	}

	out := Record{Type: r.Type, Fields: make([]Field, len(r.Fields), len(r.Fields)+1)}
	copy(out.Fields, r.Fields)
	out.Fields = append(out.Fields, Field{Name: name, Value: v})

	return out
}

// WithIndex returns a copy of r in which field i holds v.
func (r Record) WithIndex(i int, v Value) Record {
	out := Record{Type: r.Type, Fields: slices.Clone(r.Fields)}
	out.Fields[i].Value = v

	return out
}

// Clone returns a deep copy of r. Arrays, lists and nested records are
// duplicated; referenced objects are shared.
func (r Record) Clone() Record {
	out := Record{Type: r.Type}
	if r.Fields == nil {
		return out
	}

	out.Fields = make([]Field, len(r.Fields))
	for i, f := range r.Fields {
		out.Fields[i] = Field{Name: f.Name, Value: CloneValue(f.Value)}
	}

	return out
}

// CloneValue deep-copies the container part of v.
func CloneValue(v Value) Value {
	switch val := v.(type) {
	case Array:
		return slices.Clone(val)
	case List:
		return slices.Clone(val)
	case Record:
		return val.Clone()
	default:
		return v
	}
}

// IsNil reports whether o is a null reference, including typed nil pointers
// stored in the interface.
func IsNil(o Object) bool {
	switch obj := o.(type) {
	case nil:
		return true
	case *Node:
		return obj == nil
	case *Component:
		return obj == nil
	case *Asset:
		return obj == nil
	}

	rv := reflect.ValueOf(o)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}

	return false
}
