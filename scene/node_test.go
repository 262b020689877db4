package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddChildReparents(t *testing.T) {
	a := NewNode("A")
	b := NewNode("B")
	c := a.NewChild("C")

	b.AddChild(c)

	assert.Empty(t, a.Children())
	require.Len(t, b.Children(), 1)
	assert.Same(t, b, c.Parent())
}

func TestWalkPreOrder(t *testing.T) {
	root := NewNode("Root")
	a := root.NewChild("A")
	a.NewChild("A1")
	root.NewChild("B")

	var names []string
	root.Walk(func(n *Node) bool {
		names = append(names, n.Name)
		return true
	})

	assert.Equal(t, []string{"Root", "A", "A1", "B"}, names)
	assert.Equal(t, 4, root.CountNodes())
}

func TestWalkSkipChildren(t *testing.T) {
	root := NewNode("Root")
	root.NewChild("A").NewChild("A1")
	root.NewChild("B")

	var names []string
	root.Walk(func(n *Node) bool {
		names = append(names, n.Name)
		return n.Name != "A"
	})

	assert.Equal(t, []string{"Root", "A", "B"}, names)
}

func TestIsDescendantOf(t *testing.T) {
	root := NewNode("Root")
	leaf := root.NewChild("A").NewChild("Leaf")

	assert.True(t, leaf.IsDescendantOf(root))
	assert.True(t, root.IsDescendantOf(root))
	assert.False(t, root.IsDescendantOf(leaf))
	assert.False(t, leaf.IsDescendantOf(nil))
}

func TestComponents(t *testing.T) {
	n := NewNode("Hips")
	first := n.AddComponent("VRC.SDK3.VRCPhysBone", Record{})
	second := n.AddComponent("VRC.SDK3.VRCPhysBone", Record{})

	assert.Same(t, first, n.Component("VRC.SDK3.VRCPhysBone"))
	assert.Nil(t, n.Component("VRCPhysBone"))
	assert.Same(t, n, first.Owner())
	assert.Equal(t, "VRCPhysBone", first.ShortName())
	assert.Equal(t, "VRC.SDK3", first.Namespace())

	assert.True(t, n.RemoveComponent(first))
	assert.False(t, n.RemoveComponent(first))
	assert.Nil(t, first.Owner())
	assert.Same(t, second, n.Component("VRC.SDK3.VRCPhysBone"))
}

func TestRecordWithAndClone(t *testing.T) {
	target := NewNode("T")
	r := NewRecord("Settings",
		Field{Name: "radius", Value: Scalar{V: 0.5}},
		Field{Name: "targets", Value: List{target}},
	)

	updated := r.With("radius", Scalar{V: 1.0})
	v, _ := r.Get("radius")
	assert.Equal(t, Scalar{V: 0.5}, v, "With must not mutate the receiver")
	v, _ = updated.Get("radius")
	assert.Equal(t, Scalar{V: 1.0}, v)

	appended := r.With("extra", Ref{})
	assert.Len(t, appended.Fields, 3)
	assert.Len(t, r.Fields, 2)

	clone := r.Clone()
	list := clone.Fields[1].Value.(List)
	list[0] = nil
	orig, _ := r.Get("targets")
	assert.Same(t, target, orig.(List)[0], "Clone duplicates lists")
}

func TestIsNil(t *testing.T) {
	var node *Node
	var comp *Component

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(node))
	assert.True(t, IsNil(comp))
	assert.False(t, IsNil(NewNode("x")))
	assert.False(t, IsNil(&Asset{Name: "Mat"}))
}

func TestKind(t *testing.T) {
	assert.Equal(t, "KindRecord", KindRecord.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.True(t, KindList.HoldsReferences())
	assert.False(t, KindScalar.HoldsReferences())
	assert.False(t, KindOpaque.HoldsReferences())

	k, ok := ParseKind("array")
	assert.True(t, ok)
	assert.Equal(t, KindArray, k)

	_, ok = ParseKind("map")
	assert.False(t, ok)

	for k := KindScalar; k <= KindOpaque; k++ {
		parsed, ok := ParseKind(k.Name())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, parsed)
	}

	assert.Empty(t, Kind(0).Name())
	assert.Empty(t, Kind(KindTotal).Name())
}
