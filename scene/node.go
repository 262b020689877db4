package scene

import "slices"

// Node is a named element of an object hierarchy.
// Sibling names are not guaranteed to be unique; identity is pointer identity.
type Node struct {
	Name      string
	Active    bool
	Transform Transform

	parent     *Node
	children   []*Node
	components []*Component
}

// NewNode creates an active, detached node with an identity transform.
func NewNode(name string) *Node {
	return &Node{
		Name:      name,
		Active:    true,
		Transform: IdentityTransform(),
	}
}

// Owner returns the node itself, so a *Node can be used as a reference target.
func (n *Node) Owner() *Node { return n }

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Root walks the parent chain up to the top of the graph.
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}

	return n
}

// Children returns the ordered children. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// AddChild appends child to n, detaching it from its previous parent first.
func (n *Node) AddChild(child *Node) *Node {
	if child.parent != nil {
		child.parent.detach(child)
	}

	child.parent = n
	n.children = append(n.children, child)

	return child
}

// NewChild creates a node with the given name and appends it to n.
func (n *Node) NewChild(name string) *Node {
	return n.AddChild(NewNode(name))
}

func (n *Node) detach(child *Node) {
	if i := slices.Index(n.children, child); i >= 0 {
		n.children = slices.Delete(n.children, i, i+1)
	}

	child.parent = nil
}

// Find returns the first child named name in child order, or nil.
func (n *Node) Find(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}

	return nil
}

// IsDescendantOf reports whether n is root or lies below it.
func (n *Node) IsDescendantOf(root *Node) bool {
	if root == nil {
		return false
	}

	for cur := n; cur != nil; cur = cur.parent {
		if cur == root {
			return true
		}
	}

	return false
}

// Walk visits n and every descendant in pre-order, parent before children.
// Returning false from fn skips the children of that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}

	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Components returns the attached components in attachment order.
func (n *Node) Components() []*Component { return n.components }

// Component returns the first attached component whose type is typ, or nil.
func (n *Node) Component(typ string) *Component {
	for _, c := range n.components {
		if c.Type == typ {
			return c
		}
	}

	return nil
}

// AddComponent attaches a new component of the given type holding fields.
func (n *Node) AddComponent(typ string, fields Record) *Component {
	c := &Component{Type: typ, Fields: fields, node: n}
	n.components = append(n.components, c)

	return c
}

// RemoveComponent detaches c from n. It reports whether c was attached.
func (n *Node) RemoveComponent(c *Component) bool {
	i := slices.Index(n.components, c)
	if i < 0 {
		return false
	}

	n.components = slices.Delete(n.components, i, i+1)
	c.node = nil

	return true
}

// CountNodes returns the number of nodes in n's subtree, n included.
func (n *Node) CountNodes() int {
	total := 0
	n.Walk(func(*Node) bool {
		total++
		return true
	})

	return total
}
