package scene_test

import (
	"fmt"

	"hierarchy-remapper/scene"
)

func ExampleRelativePath() {
	src := scene.NewNode("Body")
	hand := src.NewChild("Arm").NewChild("Hand")

	dst := scene.NewNode("Outfit")
	dst.NewChild("Arm").NewChild("Hand")

	p, ok := scene.RelativePath(src, hand)
	fmt.Println(p, ok)
	fmt.Println(scene.AbsolutePath(scene.ResolvePath(dst, p)))

	_, ok = scene.RelativePath(src, scene.NewNode("Elsewhere"))
	fmt.Println(ok)

	// Output:
	// Arm/Hand true
	// Outfit/Arm/Hand
	// false
}
