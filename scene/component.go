package scene

import "strings"

// Component is a typed record attached to exactly one Node.
type Component struct {
	// Type is the concrete component type, optionally namespace-qualified
	// ("VRC.SDK3.Dynamics.PhysBone.Components.VRCPhysBone").
	Type   string
	Fields Record

	node *Node
}

// Owner returns the node the component is attached to.
func (c *Component) Owner() *Node { return c.node }

// ShortName returns the type name without its namespace.
func (c *Component) ShortName() string {
	_, name := SplitType(c.Type)
	return name
}

// Namespace returns the namespace part of the type, or "".
func (c *Component) Namespace() string {
	ns, _ := SplitType(c.Type)
	return ns
}

// SplitType splits a namespace-qualified type name at its last dot.
func SplitType(t string) (ns, name string) {
	if i := strings.LastIndexByte(t, '.'); i >= 0 {
		return t[:i], t[i+1:]
	}

	return "", t
}

// Asset is an object that lives outside every hierarchy, e.g. a shared
// material or mesh. References to assets are never remapped.
type Asset struct {
	Name string
}

// Owner always returns nil for assets.
func (a *Asset) Owner() *Node { return nil }

// Object is anything a reference field can point at.
// Owner returns the node the object belongs to, or nil when it belongs to no
// hierarchy.
type Object interface {
	Owner() *Node
}
