package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hierarchy-remapper/scene"
)

// File is the on-disk shape of a schema file.
type File struct {
	Version string     `yaml:"version"`
	Types   []FileType `yaml:"types"`
}

// FileType is one type entry of a schema file.
type FileType struct {
	Name    string      `yaml:"name"`
	Extends string      `yaml:"extends,omitempty"`
	Fields  []FileField `yaml:"fields"`
}

// FileField is one field entry of a schema file.
type FileField struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

// Load reads and parses a YAML schema file from the given path.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	reg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return reg, nil
}

// Parse parses YAML data into a validated Registry.
func Parse(data []byte) (*Registry, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	reg := NewRegistry()

	for _, ft := range f.Types {
		def := TypeDef{Name: ft.Name, Extends: ft.Extends}

		for _, ff := range ft.Fields {
			kind, ok := scene.ParseKind(ff.Kind)
			if !ok {
				return nil, fmt.Errorf("type %s: field %s: unknown kind %q", ft.Name, ff.Name, ff.Kind)
			}

			def.Fields = append(def.Fields, FieldDef{Name: ff.Name, Kind: kind})
		}

		if err := reg.Register(def); err != nil {
			return nil, err
		}
	}

	if err := reg.Validate(); err != nil {
		return nil, err
	}

	return reg, nil
}
