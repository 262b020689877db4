package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildArmature() (root, hips, spine, hand *Node) {
	root = NewNode("Avatar")
	armature := root.NewChild("Armature")
	hips = armature.NewChild("Hips")
	spine = hips.NewChild("Spine")
	hand = spine.NewChild("Hand")

	return root, hips, spine, hand
}

func TestRelativePath(t *testing.T) {
	root, hips, _, hand := buildArmature()

	p, ok := RelativePath(root, hand)
	require.True(t, ok)
	assert.Equal(t, Path{"Armature", "Hips", "Spine", "Hand"}, p)
	assert.Equal(t, "Armature/Hips/Spine/Hand", p.String())

	p, ok = RelativePath(hips, hand)
	require.True(t, ok)
	assert.Equal(t, "Spine/Hand", p.String())
}

func TestRelativePathSelf(t *testing.T) {
	root, _, _, _ := buildArmature()

	p, ok := RelativePath(root, root)
	assert.True(t, ok)
	assert.Nil(t, p)
}

func TestRelativePathOutsideRoot(t *testing.T) {
	root, hips, _, _ := buildArmature()
	other := NewNode("Other")

	_, ok := RelativePath(hips, root)
	assert.False(t, ok, "ancestor is not a descendant")

	_, ok = RelativePath(root, other)
	assert.False(t, ok, "unrelated tree")

	_, ok = RelativePath(nil, other)
	assert.False(t, ok)
}

func TestResolvePath(t *testing.T) {
	root, _, spine, hand := buildArmature()

	assert.Same(t, hand, ResolvePath(root, MustParsePath("Armature/Hips/Spine/Hand")))
	assert.Same(t, spine, ResolvePath(root, Path{"Armature", "Hips", "Spine"}))
	assert.Same(t, root, ResolvePath(root, nil))
	assert.Nil(t, ResolvePath(root, Path{"Armature", "Tail"}))
	assert.Nil(t, ResolvePath(root, Path{"Armature", "Hips", "Spine", "Hand", "Finger"}))
}

func TestResolvePathDuplicateSiblings(t *testing.T) {
	root := NewNode("Root")
	first := root.NewChild("Bone")
	root.NewChild("Bone")

	assert.Same(t, first, ResolvePath(root, Path{"Bone"}))
}

func TestRelativePathRoundTrip(t *testing.T) {
	src, _, _, srcHand := buildArmature()
	dst, _, _, dstHand := buildArmature()

	p, ok := RelativePath(src, srcHand)
	require.True(t, ok)
	assert.Same(t, dstHand, ResolvePath(dst, p))
}

func TestResolvePrefix(t *testing.T) {
	root, hips, _, _ := buildArmature()

	n, depth := ResolvePrefix(root, MustParsePath("Armature/Hips/Tail/Tip"))
	assert.Same(t, hips, n)
	assert.Equal(t, 2, depth)
}

func TestParsePath(t *testing.T) {
	p, err := ParsePath("")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = ParsePath("A/B")
	require.NoError(t, err)
	assert.Equal(t, Path{"A", "B"}, p)

	_, err = ParsePath("A//B")
	assert.Error(t, err)

	_, err = ParsePath("/A")
	assert.Error(t, err)
}

func TestAbsolutePath(t *testing.T) {
	root, _, _, hand := buildArmature()

	assert.Equal(t, "Avatar/Armature/Hips/Spine/Hand", AbsolutePath(hand).String())
	assert.Equal(t, "Avatar", AbsolutePath(root).String())
}
