package scene

import (
	"fmt"
	"slices"
	"strings"
)

// Separator delimits node names in a Path string.
const Separator = "/"

// Path is the ordered sequence of child names leading from one node down to
// another. A nil Path addresses the starting node itself.
type Path []string

// String renders the path slash-delimited.
func (p Path) String() string {
	return strings.Join(p, Separator)
}

// ParsePath splits a slash-delimited path. The empty string parses to a nil Path.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, Separator)
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", s)
		}
	}

	return Path(parts), nil
}

// MustParsePath is ParsePath that panics on malformed input. Intended for tests
// and static tables.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}

	return p
}

// RelativePath returns the names from root down to descendant, built by
// walking descendant's parent chain upward.
//
// It returns (nil, true) when descendant is root, and (nil, false) when the
// walk reaches the top of the graph without meeting root.
func RelativePath(root, descendant *Node) (Path, bool) {
	if root == nil || descendant == nil {
		return nil, false
	}

	if descendant == root {
		return nil, true
	}

	var reversed Path
	for cur := descendant; cur != nil; cur = cur.parent {
		if cur == root {
			slices.Reverse(reversed)
			return reversed, true
		}

		reversed = append(reversed, cur.Name)
	}

	return nil, false
}

// ResolvePath follows path from root by child name. It returns nil when a
// step finds no child with the required name. When siblings share a name the
// first one in child order is taken.
func ResolvePath(root *Node, path Path) *Node {
	cur := root
	for _, name := range path {
		if cur == nil {
			return nil
		}

		cur = cur.Find(name)
	}

	return cur
}

// ResolvePrefix follows path as far as it goes and returns the deepest node
// reached together with the number of names consumed.
func ResolvePrefix(root *Node, path Path) (*Node, int) {
	cur := root
	for i, name := range path {
		next := cur.Find(name)
		if next == nil {
			return cur, i
		}

		cur = next
	}

	return cur, len(path)
}

// AbsolutePath returns the path of n starting with the name of its top-level
// root.
func AbsolutePath(n *Node) Path {
	top := n.Root()
	rel, _ := RelativePath(top, n)

	return append(Path{top.Name}, rel...)
}
