package sceneio

import (
	"errors"
	"fmt"
	"strings"

	"hierarchy-remapper/scene"
)

const (
	assetPrefix  = "asset:"
	componentSep = "#"
	nullRef      = "null"
)

// RefError reports a reference that cannot be resolved while loading, or a
// target that cannot be written as a reference string.
type RefError struct {
	Ref   string // reference string, empty when encoding
	Field string // Root/Node#Component.field[index]
	Err   error
}

func (e *RefError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("field %s: %v", e.Field, e.Err)
	}

	return fmt.Sprintf("field %s: reference %q: %v", e.Field, e.Ref, e.Err)
}

func (e *RefError) Unwrap() error { return e.Err }

var errEmptyPath = errors.New("empty node path")

// resolveRef turns a reference string into its target. A null reference
// resolves to a nil Object.
func (s *Scene) resolveRef(ref string) (scene.Object, error) {
	if ref == "" || ref == nullRef {
		return nil, nil
	}

	if name, ok := strings.CutPrefix(ref, assetPrefix); ok {
		if a := s.Asset(name); a != nil {
			return a, nil
		}

		return nil, fmt.Errorf("unknown asset %q", name)
	}

	nodePart, typ, isComponent := strings.Cut(ref, componentSep)

	path, err := scene.ParsePath(nodePart)
	if err != nil {
		return nil, err
	}

	if len(path) == 0 {
		return nil, errEmptyPath
	}

	root := s.Root(path[0])
	if root == nil {
		return nil, fmt.Errorf("unknown root %q", path[0])
	}

	n := scene.ResolvePath(root, path[1:])
	if n == nil {
		return nil, fmt.Errorf("no node at %q", nodePart)
	}

	if !isComponent {
		return n, nil
	}

	c := n.Component(typ)
	if c == nil {
		return nil, fmt.Errorf("node %q has no %s component", nodePart, typ)
	}

	return c, nil
}

// refString is the inverse of resolveRef. It fails for targets that would
// resolve to a different object when read back.
func (s *Scene) refString(obj scene.Object) (string, error) {
	if scene.IsNil(obj) {
		return "", nil
	}

	switch o := obj.(type) {
	case *scene.Asset:
		return assetPrefix + o.Name, nil
	case *scene.Node:
		return s.nodeRef(o)
	case *scene.Component:
		owner := o.Owner()
		if owner == nil {
			return "", fmt.Errorf("component %s is not attached to a node", o.Type)
		}

		if owner.Component(o.Type) != o {
			return "", fmt.Errorf("component %s is not the first of its type on %q", o.Type, scene.AbsolutePath(owner))
		}

		p, err := s.nodeRef(owner)
		if err != nil {
			return "", err
		}

		return p + componentSep + o.Type, nil
	default:
		return "", fmt.Errorf("unsupported reference target %T", obj)
	}
}

func (s *Scene) nodeRef(n *scene.Node) (string, error) {
	root := n.Root()
	path := scene.AbsolutePath(n)

	if !s.hasRoot(root) {
		return "", fmt.Errorf("node %q is outside the scene", path)
	}

	if s.Root(root.Name) != root || scene.ResolvePath(root, path[1:]) != n {
		return "", fmt.Errorf("path %q is ambiguous", path)
	}

	// a reference is cut at the first separator when read back
	for _, name := range path {
		if strings.Contains(name, componentSep) {
			return "", fmt.Errorf("path %q: node name %q contains %q", path, name, componentSep)
		}
	}

	return path.String(), nil
}
