// Package version holds the build identity of the binary and checks it
// against the required_version constraint from the user's config.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DevVersion is reported by builds without ldflags.
const DevVersion = "dev"

// Info describes a build.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// IsDev reports whether v is a development build that has no semantic version.
func IsDev(v string) bool {
	return v == "" || v == DevVersion
}

// CheckRequired returns an error when current does not satisfy constraint.
// An empty constraint and development builds always pass.
func CheckRequired(constraint, current string) error {
	if constraint == "" || IsDev(current) {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing required_version %q: %w", constraint, err)
	}
	v, err := parseSemver(current)
	if err != nil {
		return fmt.Errorf("parsing current version %q: %w", current, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("version %s does not satisfy required_version %q", v, constraint)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
