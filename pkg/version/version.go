// Package version exposes the pagebar build version.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// version is set at build time with -ldflags "-X github.com/rshade/pagebar/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Overwritten by the linker.
var version = "0.0.0-dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}

// Parse parses the build version as a semantic version.
func Parse() (*semver.Version, error) {
	return ParseVersion(version)
}

// ParseVersion parses v as a semantic version. A leading "v" is accepted.
func ParseVersion(v string) (*semver.Version, error) {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", v, err)
	}
	return parsed, nil
}
