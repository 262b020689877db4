package schema

import (
	"fmt"
	"reflect"
	"time"

	"hierarchy-remapper/scene"
)

// TagName is the struct tag read by RegisterStruct: `remap:"name"` renames a
// field, `remap:"-"` leaves it out.
const TagName = "remap"

var (
	objectType   = reflect.TypeFor[scene.Object]()
	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
)

// Dispatch classifies a Go type into the field shape it takes in a record.
func Dispatch(t reflect.Type) scene.Kind {
	if t == nil {
		return scene.KindOpaque
	}

	if isReference(t) {
		return scene.KindRef
	}

	if isBuiltinScalar(t) {
		return scene.KindScalar
	}

	switch t.Kind() {
	case reflect.Array:
		if isReference(t.Elem()) {
			return scene.KindArray
		}

		if Dispatch(t.Elem()) == scene.KindScalar {
			return scene.KindScalar
		}

		return scene.KindOpaque
	case reflect.Slice:
		if isReference(t.Elem()) {
			return scene.KindList
		}

		if Dispatch(t.Elem()) == scene.KindScalar {
			return scene.KindScalar
		}

		return scene.KindOpaque
	case reflect.Struct:
		return scene.KindRecord
	case reflect.Ptr:
		// pointer to a value record; pointers to references were handled above
		if t.Elem().Kind() == reflect.Struct {
			return scene.KindRecord
		}

		return scene.KindOpaque
	default:
		return scene.KindOpaque
	}
}

// isReference reports whether values of t can point at scene objects.
func isReference(t reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return t.Implements(objectType)
	}

	return t.Kind() == reflect.Ptr && t.Implements(objectType)
}

// isBuiltinScalar covers numbers, strings, bools, named enums over them,
// and the time types.
func isBuiltinScalar(t reflect.Type) bool {
	switch t {
	case timeType, durationType:
		return true
	}

	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// TypeName returns the registration name of a Go type: its package path
// and name, e.g. "example.com/avatar.PhysBone".
func TypeName(t reflect.Type) string {
	t = base(t)
	if t.PkgPath() == "" {
		return t.String()
	}

	return t.PkgPath() + "." + t.Name()
}

// RegisterStruct registers the struct type t (or the struct t points to) and,
// recursively, every named struct type it embeds or holds by value. The first
// embedded struct becomes the base type; unexported fields are included.
// Types that are already registered are left as they are.
func RegisterStruct(r *Registry, t reflect.Type) error {
	t = base(t)
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("%s is not a struct type", t)
	}

	return registerStruct(r, t)
}

func registerStruct(r *Registry, t reflect.Type) error {
	name := TypeName(t)
	if _, done := r.Lookup(name); done {
		return nil
	}

	def := TypeDef{Name: name}

	var nested []reflect.Type

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)

		tag := sf.Tag.Get(TagName)
		if tag == "-" {
			continue
		}

		ft := base(sf.Type)

		if sf.Anonymous && ft.Kind() == reflect.Struct && !isReference(sf.Type) {
			if def.Extends == "" {
				def.Extends = TypeName(ft)
				nested = append(nested, ft)

				continue
			}
		}

		kind := Dispatch(sf.Type)
		if kind == scene.KindRecord && ft.Name() != "" {
			nested = append(nested, ft)
		}

		fieldName := sf.Name
		if tag != "" {
			fieldName = tag
		}

		def.Fields = append(def.Fields, FieldDef{Name: fieldName, Kind: kind})
	}

	if err := r.Register(def); err != nil {
		return err
	}

	for _, n := range nested {
		if err := registerStruct(r, n); err != nil {
			return err
		}
	}

	return nil
}

// base strips pointer indirections.
func base(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}
