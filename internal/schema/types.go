package schema

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"hierarchy-remapper/scene"
)

var (
	ErrDuplicateType = errors.New("type already registered")
	ErrUnknownBase   = errors.New("unknown base type")
	ErrCycle         = errors.New("inheritance cycle")
)

// FieldDef declares one field of a type.
type FieldDef struct {
	Name string
	Kind scene.Kind
}

// TypeDef declares the fields of a component or record type.
type TypeDef struct {
	Name    string
	Extends string // base type name, "" for none
	Fields  []FieldDef
}

// Registry maps type names to their definitions.
type Registry struct {
	types map[string]*TypeDef
	order []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*TypeDef)}
}

// Register adds def. Base types may be registered later; Validate or Fields
// report a missing base.
func (r *Registry) Register(def TypeDef) error {
	if def.Name == "" {
		return errors.New("type name is empty")
	}

	if _, exists := r.types[def.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateType, def.Name)
	}

	seen := make(map[string]struct{}, len(def.Fields))
	for _, f := range def.Fields {
		if f.Name == "" {
			return fmt.Errorf("type %s: field name is empty", def.Name)
		}

		if f.Kind <= 0 || int(f.Kind) >= scene.KindTotal {
			return fmt.Errorf("type %s: field %s: invalid kind %d", def.Name, f.Name, f.Kind)
		}

		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("type %s: field %s declared twice", def.Name, f.Name)
		}

		seen[f.Name] = struct{}{}
	}

	d := def
	d.Fields = slices.Clone(def.Fields)
	r.types[def.Name] = &d
	r.order = append(r.order, def.Name)

	return nil
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (*TypeDef, bool) {
	if r == nil {
		return nil, false
	}

	d, ok := r.types[name]

	return d, ok
}

// Names returns the registered type names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.order)
}

// Fields returns every field of name including those declared on ancestor
// types, ancestors first. A field redeclared by a derived type keeps the
// ancestor's position and takes the derived kind.
func (r *Registry) Fields(name string) ([]FieldDef, error) {
	chain, err := r.chain(name)
	if err != nil {
		return nil, err
	}

	var out []FieldDef

	index := make(map[string]int)

	for i := len(chain) - 1; i >= 0; i-- {
		for _, f := range chain[i].Fields {
			if at, ok := index[f.Name]; ok {
				out[at].Kind = f.Kind
				continue
			}

			index[f.Name] = len(out)
			out = append(out, f)
		}
	}

	return out, nil
}

// Kind returns the declared kind of field on type typ, searching ancestors.
func (r *Registry) Kind(typ, field string) (scene.Kind, bool) {
	fields, err := r.Fields(typ)
	if err != nil {
		return 0, false
	}

	for _, f := range fields {
		if f.Name == field {
			return f.Kind, true
		}
	}

	return 0, false
}

// Validate checks that every base type is registered and that no
// inheritance chain loops.
func (r *Registry) Validate() error {
	var errs []error

	for _, name := range r.order {
		if _, err := r.chain(name); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// chain returns name's definition followed by its ancestors.
func (r *Registry) chain(name string) ([]*TypeDef, error) {
	d, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("type %s is not registered", name)
	}

	chain := []*TypeDef{d}
	visited := map[string]struct{}{name: {}}

	for d.Extends != "" {
		base, ok := r.types[d.Extends]
		if !ok {
			return nil, fmt.Errorf("type %s: %w %s", d.Name, ErrUnknownBase, d.Extends)
		}

		if _, loop := visited[base.Name]; loop {
			names := make([]string, 0, len(chain)+1)
			for _, c := range chain {
				names = append(names, c.Name)
			}

			return nil, fmt.Errorf("%w: %s", ErrCycle, strings.Join(append(names, base.Name), " -> "))
		}

		visited[base.Name] = struct{}{}
		chain = append(chain, base)
		d = base
	}

	return chain, nil
}
