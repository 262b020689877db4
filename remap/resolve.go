package remap

import "hierarchy-remapper/scene"

type outcome int

const (
	outcomeNull outcome = iota
	outcomeRemapped
	outcomeExternal
	outcomeMismatch
	outcomeMissingComponent
	outcomeUnsupported
)

// RemapObject returns the counterpart of ref under dst, or nil when ref is
// null, external to src, or has no counterpart.
//
// A node reference maps to the node at the same relative path under dst; a
// component reference maps to the first component of the same type on that
// node.
func RemapObject(ref scene.Object, src, dst *scene.Node) scene.Object {
	obj, oc := resolve(ref, src, dst)
	if oc != outcomeRemapped {
		return nil
	}

	return obj
}

func resolve(ref scene.Object, src, dst *scene.Node) (scene.Object, outcome) {
	if scene.IsNil(ref) {
		return nil, outcomeNull
	}

	owner := ref.Owner()
	if owner == nil || !owner.IsDescendantOf(src) {
		return nil, outcomeExternal
	}

	path, _ := scene.RelativePath(src, owner)

	target := scene.ResolvePath(dst, path)
	if target == nil {
		return nil, outcomeMismatch
	}

	switch r := ref.(type) {
	case *scene.Node:
		return target, outcomeRemapped
	case *scene.Component:
		c := target.Component(r.Type)
		if c == nil {
			return nil, outcomeMissingComponent
		}

		return c, outcomeRemapped
	default:
		return nil, outcomeUnsupported
	}
}
