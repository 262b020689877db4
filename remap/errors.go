package remap

import (
	"errors"
	"fmt"
	"strings"

	"hierarchy-remapper/scene"
)

// ErrMissingTree is returned when a required tree argument is nil.
var ErrMissingTree = errors.New("missing tree")

// maxListedPaths bounds the paths spelled out in CongruenceError messages.
const maxListedPaths = 5

// CongruenceError lists source nodes that have no destination counterpart.
// Only the top-most missing node of each missing branch is listed.
type CongruenceError struct {
	Missing []scene.Path
}

func (e *CongruenceError) Error() string {
	names := make([]string, 0, maxListedPaths)
	for i, p := range e.Missing {
		if i == maxListedPaths {
			names = append(names, fmt.Sprintf("and %d more", len(e.Missing)-maxListedPaths))
			break
		}

		names = append(names, p.String())
	}

	return fmt.Sprintf("destination is not congruent with source: %d missing node(s): %s",
		len(e.Missing), strings.Join(names, ", "))
}

func missingTree(which string) error {
	return fmt.Errorf("%w: %s root is nil", ErrMissingTree, which)
}
