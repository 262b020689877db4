package sceneio

import "hierarchy-remapper/scene"

// Scene is a decoded document: top-level trees and the assets their fields may
// reference.
type Scene struct {
	Roots  []*scene.Node
	Assets []*scene.Asset
}

// Root returns the first top-level tree with the given name, or nil.
func (s *Scene) Root(name string) *scene.Node {
	for _, r := range s.Roots {
		if r.Name == name {
			return r
		}
	}

	return nil
}

// Asset returns the asset with the given name, or nil.
func (s *Scene) Asset(name string) *scene.Asset {
	for _, a := range s.Assets {
		if a.Name == name {
			return a
		}
	}

	return nil
}

// AddAsset returns the asset with the given name, creating it when missing.
func (s *Scene) AddAsset(name string) *scene.Asset {
	if a := s.Asset(name); a != nil {
		return a
	}

	a := &scene.Asset{Name: name}
	s.Assets = append(s.Assets, a)

	return a
}

func (s *Scene) hasRoot(n *scene.Node) bool {
	for _, r := range s.Roots {
		if r == n {
			return true
		}
	}

	return false
}
