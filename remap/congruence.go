package remap

import "hierarchy-remapper/scene"

// CheckCongruence returns the paths of source nodes that have no node at the
// same path under dst. Descendants of a missing node are not listed.
func CheckCongruence(src, dst *scene.Node) []scene.Path {
	if src == nil || dst == nil {
		return nil
	}

	var missing []scene.Path

	src.Walk(func(n *scene.Node) bool {
		if n == src {
			return true
		}

		rel, _ := scene.RelativePath(src, n)
		if scene.ResolvePath(dst, rel) == nil {
			missing = append(missing, rel)
			return false
		}

		return true
	})

	return missing
}
