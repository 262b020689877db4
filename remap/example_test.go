package remap_test

import (
	"fmt"

	"hierarchy-remapper/remap"
	"hierarchy-remapper/scene"
)

func Example() {
	src := scene.NewNode("Body")
	src.NewChild("Arm")
	srcHand := src.NewChild("Hand")

	dst := scene.NewNode("Outfit")
	dstArm := dst.NewChild("Arm")
	dst.NewChild("Hand")

	// a component copied from Body/Arm still points at Body/Hand
	bone := dstArm.AddComponent("VRCPhysBone", scene.NewRecord("",
		scene.Field{Name: "rootTransform", Value: scene.Ref{Target: srcHand}},
		scene.Field{Name: "material", Value: scene.Ref{Target: &scene.Asset{Name: "Skin"}}},
	))

	report, err := remap.New().Remap(src, dst)
	if err != nil {
		panic(err)
	}

	root, _ := bone.Fields.Get("rootTransform")
	fmt.Println(scene.AbsolutePath(root.(scene.Ref).Target.Owner()))
	fmt.Println(report)

	// Output:
	// Outfit/Hand
	// components=1 fields=2 remapped=1 external=1 mismatched=0 unsupported=0 failed=0
}
