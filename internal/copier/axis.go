package copier

import (
	"fmt"
	"strings"

	"hierarchy-remapper/scene"
)

// AxisMask selects the transform components CopyTransforms writes.
type AxisMask uint16

const (
	PositionX AxisMask = 1 << iota
	PositionY
	PositionZ
	RotationX
	RotationY
	RotationZ
	ScaleX
	ScaleY
	ScaleZ

	Position = PositionX | PositionY | PositionZ
	Rotation = RotationX | RotationY | RotationZ
	Scale    = ScaleX | ScaleY | ScaleZ
	AllAxes  = Position | Rotation | Scale
)

var axisGroups = map[string]AxisMask{
	"position": PositionX,
	"rotation": RotationX,
	"scale":    ScaleX,
}

// ParseAxes parses a comma-separated list such as "position,rotation.y,scale.xz".
// "all" selects every axis.
func ParseAxes(s string) (AxisMask, error) {
	var m AxisMask

	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}

		if part == "all" {
			m |= AllAxes
			continue
		}

		group, axes, hasAxes := strings.Cut(part, ".")

		base, ok := axisGroups[group]
		if !ok {
			return 0, fmt.Errorf("unknown transform property %q", group)
		}

		if !hasAxes {
			axes = "xyz"
		}

		for _, a := range axes {
			i := strings.IndexRune("xyz", a)
			if i < 0 {
				return 0, fmt.Errorf("unknown axis %q in %q", a, part)
			}

			m |= base << i
		}
	}

	return m, nil
}

// apply copies the selected axes of src over dst.
func (m AxisMask) apply(dst, src scene.Transform) scene.Transform {
	for i := range 3 {
		if m&(PositionX<<i) != 0 {
			dst.Position[i] = src.Position[i]
		}

		if m&(RotationX<<i) != 0 {
			dst.Rotation[i] = src.Rotation[i]
		}

		if m&(ScaleX<<i) != 0 {
			dst.Scale[i] = src.Scale[i]
		}
	}

	return dst
}
