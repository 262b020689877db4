package sceneio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// FormatVersion is written into every document produced by Marshal.
const FormatVersion = "1.0.0"

// SupportedVersions is the constraint a document's version must satisfy.
const SupportedVersions = "^1"

var ErrUnsupportedVersion = errors.New("unsupported scene format version")

// CheckVersion verifies that a document version satisfies SupportedVersions.
// A leading "v" is accepted.
func CheckVersion(version string) error {
	if version == "" {
		return fmt.Errorf("%w: version is missing", ErrUnsupportedVersion)
	}

	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("invalid scene format version %q: %w", version, err)
	}

	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", SupportedVersions, err)
	}

	if !c.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, version, SupportedVersions)
	}

	return nil
}
