package copier

import (
	"errors"
	"fmt"
	"strings"

	"hierarchy-remapper/scene"
)

// Family is a set of component families selected for copying or removal.
type Family uint8

const (
	FamilyVRC Family = 1 << iota
	FamilyModularAvatar
	FamilyTraceAndOptimize

	FamilyNone Family = 0
	FamilyAll         = FamilyVRC | FamilyModularAvatar | FamilyTraceAndOptimize
)

var ErrUnknownFamily = errors.New("unknown component family")

var familyNames = []struct {
	family Family
	names  []string
}{
	{FamilyVRC, []string{"vrc"}},
	{FamilyModularAvatar, []string{"ma", "modular-avatar", "modularavatar"}},
	{FamilyTraceAndOptimize, []string{"aao", "trace-and-optimize", "traceandoptimize"}},
}

func (f Family) String() string {
	if f == FamilyNone {
		return "none"
	}

	var parts []string

	for _, fn := range familyNames {
		if f&fn.family != 0 {
			parts = append(parts, fn.names[0])
		}
	}

	return strings.Join(parts, "|")
}

// ParseFamilies combines family names ("vrc", "ma", "aao", "all", "none"),
// matched case-insensitively.
func ParseFamilies(names []string) (Family, error) {
	var f Family

	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))

		switch name {
		case "":
			continue
		case "all":
			f |= FamilyAll
			continue
		case "none":
			continue
		}

		found := false

		for _, fn := range familyNames {
			for _, n := range fn.names {
				if n == name {
					f |= fn.family
					found = true
				}
			}
		}

		if !found {
			return FamilyNone, fmt.Errorf("%w: %q", ErrUnknownFamily, raw)
		}
	}

	return f, nil
}

// Classify returns the families a component type belongs to.
func Classify(typ string) Family {
	ns, name := scene.SplitType(typ)

	var f Family

	if strings.HasPrefix(name, "VRC") || strings.HasPrefix(ns, "VRC") {
		f |= FamilyVRC
	}

	if strings.HasPrefix(name, "MA") || strings.HasPrefix(name, "ModularAvatar") {
		f |= FamilyModularAvatar
	}

	if strings.HasPrefix(name, "TraceAndOptimize") {
		f |= FamilyTraceAndOptimize
	}

	return f
}

// Selected reports whether a component of type typ is copied or removed
// when families are selected. Transforms and renderers never are.
func Selected(typ string, families Family) bool {
	_, name := scene.SplitType(typ)
	if name == "Transform" || strings.HasSuffix(name, "Renderer") {
		return false
	}

	return Classify(typ)&families != 0
}

// priority orders components so that colliders exist before the bones that
// reference them.
func priority(typ string) int {
	_, name := scene.SplitType(typ)

	switch {
	case name == "VRCPhysBoneCollider":
		return 0
	case name == "VRCPhysBone":
		return 1
	case strings.HasPrefix(name, "MA"), strings.HasPrefix(name, "ModularAvatar"):
		return 3
	case name == "TraceAndOptimize":
		return 4
	default:
		return 2
	}
}
