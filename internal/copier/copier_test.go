package copier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hierarchy-remapper/scene"
)

const (
	physBone         = "VRC.SDK3.Dynamics.PhysBone.Components.VRCPhysBone"
	physBoneCollider = "VRC.SDK3.Dynamics.PhysBone.Components.VRCPhysBoneCollider"
	menuItem         = "nadena.dev.modular_avatar.core.ModularAvatarMenuItem"
	animator         = "UnityEngine.Animator"
)

func ref(target scene.Object) scene.Field {
	return scene.Field{Name: "target", Value: scene.Ref{Target: target}}
}

// source is Body/{Armature/Hips/Spine, Hair, Plain} with colliders and bones.
type source struct {
	root, hips, spine, hair, plain *scene.Node
	collider                       *scene.Component
}

func newSource() *source {
	s := &source{root: scene.NewNode("Body")}

	armature := s.root.NewChild("Armature")
	s.hips = armature.NewChild("Hips")
	s.hips.Transform.Position = scene.Vector3{0, 1, 0}
	s.spine = s.hips.NewChild("Spine")
	s.hair = s.root.NewChild("Hair")
	s.hair.Active = false
	s.plain = s.root.NewChild("Plain")
	s.plain.AddComponent(animator, scene.Record{})

	s.hair.AddComponent(physBone, scene.NewRecord("",
		scene.Field{Name: "rootTransform", Value: scene.Ref{Target: s.hair}},
		scene.Field{Name: "colliders", Value: scene.List{nil}},
	))
	s.collider = s.spine.AddComponent(physBoneCollider, scene.NewRecord("", ref(s.spine)))
	s.root.AddComponent(menuItem, scene.NewRecord("", ref(s.hair)))

	return s
}

func TestCopyComponents(t *testing.T) {
	s := newSource()
	colliders := scene.List{s.collider}
	s.hair.Component(physBone).Fields = s.hair.Component(physBone).Fields.With("colliders", colliders)

	dst := scene.NewNode("Outfit")
	dstArmature := dst.NewChild("Armature")
	dstArmature.Transform.Scale = scene.Vector3{2, 2, 2}

	res, err := New().CopyComponents(context.Background(), s.root, dst, Options{Families: FamilyAll})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Created, "Hips, Spine and Hair created, Armature reused")
	assert.Equal(t, 3, res.Added)
	assert.Zero(t, res.Updated)
	assert.Nil(t, dst.Find("Plain"), "branch without selected components")

	hips := scene.ResolvePath(dst, scene.MustParsePath("Armature/Hips"))
	require.NotNil(t, hips)
	assert.Equal(t, scene.Vector3{0, 1, 0}, hips.Transform.Position, "new nodes take the source transform")
	assert.Equal(t, scene.Vector3{2, 2, 2}, dstArmature.Transform.Scale, "existing nodes keep theirs")

	spine := hips.Find("Spine")
	hair := dst.Find("Hair")
	require.NotNil(t, spine)
	require.NotNil(t, hair)

	assert.True(t, hair.Active, "created nodes are active")

	bone := hair.Component(physBone)
	require.NotNil(t, bone)

	root, _ := bone.Fields.Get("rootTransform")
	assert.Same(t, hair, root.(scene.Ref).Target)

	cols, _ := bone.Fields.Get("colliders")
	assert.Equal(t, scene.List{spine.Component(physBoneCollider)}, cols)
	assert.Equal(t, scene.List{s.collider}, colliders, "source list untouched")

	menu := dst.Component(menuItem)
	require.NotNil(t, menu)
	target, _ := menu.Fields.Get("target")
	assert.Same(t, hair, target.(scene.Ref).Target)

	require.NotNil(t, res.Remap)
	assert.Equal(t, 4, res.Remap.Remapped)
	assert.Zero(t, res.Remap.Mismatched)
}

func TestCopyComponentsOverwritesExisting(t *testing.T) {
	s := newSource()

	dst := scene.NewNode("Outfit")
	hair := dst.NewChild("Hair")
	existing := hair.AddComponent(physBone, scene.NewRecord("",
		scene.Field{Name: "stale", Value: scene.Scalar{V: true}},
	))

	res, err := New().CopyComponents(context.Background(), s.root, dst, Options{Families: FamilyVRC})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Updated)
	require.Len(t, hair.Components(), 1)
	assert.Same(t, existing, hair.Component(physBone))

	_, stale := existing.Fields.Get("stale")
	assert.False(t, stale)

	assert.Nil(t, dst.Component(menuItem), "family not selected")
}

func TestCopyComponentsPriorityOrder(t *testing.T) {
	src := scene.NewNode("Body")
	src.AddComponent("TraceAndOptimize", scene.Record{})
	src.AddComponent(menuItem, scene.Record{})
	src.AddComponent("VRCAvatarDescriptor", scene.Record{})
	src.AddComponent("VRCPhysBone", scene.Record{})
	src.AddComponent("VRCPhysBoneCollider", scene.Record{})

	dst := scene.NewNode("Outfit")

	_, err := New().CopyComponents(context.Background(), src, dst, Options{Families: FamilyAll})
	require.NoError(t, err)

	var order []string
	for _, c := range dst.Components() {
		order = append(order, c.Type)
	}

	assert.Equal(t, []string{
		"VRCPhysBoneCollider", "VRCPhysBone", "VRCAvatarDescriptor", menuItem, "TraceAndOptimize",
	}, order)
}

func TestCopyComponentsWithTransform(t *testing.T) {
	s := newSource()
	s.root.Transform.Position = scene.Vector3{5, 0, 0}

	dst := scene.NewNode("Outfit")
	hips := dst.NewChild("Armature").NewChild("Hips")

	res, err := New().CopyComponents(context.Background(), s.root, dst, Options{CopyTransform: true})
	require.NoError(t, err)

	assert.NotNil(t, dst.Find("Plain"), "every branch is replicated")
	assert.Equal(t, scene.Vector3{5, 0, 0}, dst.Transform.Position, "root transform copied")
	assert.Equal(t, scene.Vector3{0, 1, 0}, hips.Transform.Position)
	assert.Zero(t, res.Added)
	assert.Equal(t, dst.CountNodes(), res.Transforms)
}

func TestCopyComponentsPreconditions(t *testing.T) {
	c := New()
	root := scene.NewNode("A")

	_, err := c.CopyComponents(context.Background(), nil, root, Options{Families: FamilyAll})
	assert.ErrorIs(t, err, ErrMissingRoot)

	_, err = c.CopyComponents(context.Background(), root, scene.NewNode("B"), Options{})
	assert.ErrorIs(t, err, ErrNoFamilies)

	_, err = c.CopyAll(context.Background(), root, nil, Options{Families: FamilyAll})
	assert.ErrorIs(t, err, ErrMissingRoot)
}

func TestCopyComponentsNestedTrees(t *testing.T) {
	c := New()
	avatar := scene.NewNode("Avatar")
	avatar.NewChild("Hair")
	inner := avatar.NewChild("Copy")

	tests := []struct {
		name     string
		src, dst *scene.Node
	}{
		{"destination inside source", avatar, inner},
		{"source inside destination", inner, avatar},
		{"same tree", avatar, avatar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.CopyComponents(context.Background(), tt.src, tt.dst, Options{CopyTransform: true})
			assert.ErrorIs(t, err, ErrNestedTrees)

			_, err = c.CopyAll(context.Background(), tt.src, tt.dst, Options{Families: FamilyAll})
			assert.ErrorIs(t, err, ErrNestedTrees)
		})
	}

	assert.Len(t, inner.Children(), 0, "nothing replicated")
	assert.Len(t, avatar.Children(), 2)
}

func TestCopyComponentsCancelled(t *testing.T) {
	s := newSource()
	dst := scene.NewNode("Outfit")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := New().CopyComponents(ctx, s.root, dst, Options{Families: FamilyAll})
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Positive(t, res.Created)
	assert.Zero(t, res.Added)
	assert.Nil(t, res.Remap)
}

func TestCopyTransforms(t *testing.T) {
	src := scene.NewNode("Body")
	src.Transform.Position = scene.Vector3{9, 9, 9}
	hips := src.NewChild("Hips")
	hips.Transform = scene.Transform{
		Position: scene.Vector3{1, 2, 3},
		Rotation: scene.Vector3{10, 20, 30},
		Scale:    scene.Vector3{2, 2, 2},
	}
	hips.NewChild("Spine").Transform.Position = scene.Vector3{0, 0.5, 0}
	src.NewChild("Missing")

	dst := scene.NewNode("Outfit")
	dstHips := dst.NewChild("Hips")
	dstHips.Transform.Position = scene.Vector3{7, 7, 7}
	dstSpine := dstHips.NewChild("Spine")

	n, err := New().CopyTransforms(src, dst, PositionY|Rotation)
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, scene.Vector3{}, dst.Transform.Position, "root excluded")
	assert.Equal(t, scene.Vector3{7, 2, 7}, dstHips.Transform.Position)
	assert.Equal(t, scene.Vector3{10, 20, 30}, dstHips.Transform.Rotation)
	assert.Equal(t, scene.Vector3{1, 1, 1}, dstHips.Transform.Scale)
	assert.Equal(t, scene.Vector3{0, 0.5, 0}, dstSpine.Transform.Position)

	_, err = New().CopyTransforms(src, nil, AllAxes)
	assert.ErrorIs(t, err, ErrMissingRoot)
}

func TestSyncActiveState(t *testing.T) {
	src := scene.NewNode("Body")
	src.Active = false
	hair := src.NewChild("Hair")
	hair.Active = false
	hair.NewChild("Tip")
	src.NewChild("OnlyInSource")

	dst := scene.NewNode("Outfit")
	dstHair := dst.NewChild("Hair")
	dstTip := dstHair.NewChild("Tip")
	dstTip.Active = false

	n, err := New().SyncActiveState(src, dst)
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.False(t, dst.Active, "root included")
	assert.False(t, dstHair.Active)
	assert.True(t, dstTip.Active)
}

func TestRemoveComponents(t *testing.T) {
	s := newSource()
	s.root.AddComponent("SkinnedMeshRenderer", scene.Record{})
	s.hips.AddComponent("VRCPhysBone", scene.Record{})

	removed, err := New().RemoveComponents(s.root, FamilyVRC)
	require.NoError(t, err)

	assert.ElementsMatch(t, []Removed{
		{Node: "Body/Armature/Hips", Type: "VRCPhysBone"},
		{Node: "Body/Armature/Hips/Spine", Type: physBoneCollider},
		{Node: "Body/Hair", Type: physBone},
	}, removed)

	assert.NotNil(t, s.root.Component(menuItem))
	assert.NotNil(t, s.root.Component("SkinnedMeshRenderer"))
	assert.NotNil(t, s.plain.Component(animator))
	assert.Empty(t, s.hair.Components())

	removed, err = New().RemoveComponents(s.root, FamilyVRC)
	require.NoError(t, err)
	assert.Empty(t, removed)

	_, err = New().RemoveComponents(s.root, FamilyNone)
	assert.ErrorIs(t, err, ErrNoFamilies)
}

func TestCopyAll(t *testing.T) {
	s := newSource()

	dst := scene.NewNode("Outfit")
	dstHair := dst.NewChild("Hair")
	dstHips := dst.NewChild("Armature").NewChild("Hips")

	res, err := New().CopyAll(context.Background(), s.root, dst, Options{Families: FamilyVRC})
	require.NoError(t, err)

	assert.False(t, dstHair.Active)
	assert.Equal(t, scene.Vector3{0, 1, 0}, dstHips.Transform.Position)
	assert.Equal(t, 3, res.Transforms)
	assert.Equal(t, 4, res.Activated)
	assert.Equal(t, 2, res.Added)

	bone := dstHair.Component(physBone)
	require.NotNil(t, bone)
	root, _ := bone.Fields.Get("rootTransform")
	assert.Same(t, dstHair, root.(scene.Ref).Target)
}
