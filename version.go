package fieldedit

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var rawVersion string

var semver = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(-[0-9A-Za-z-]+(\.[0-9A-Za-z-]+)*)?(\+[0-9A-Za-z-]+(\.[0-9A-Za-z-]+)*)?$`)

// Version is the release from the VERSION file, without a leading v.
func Version() string { return strings.TrimSpace(rawVersion) }

// Tag is the git tag for Version.
func Tag() string { return "v" + Version() }

// ValidSemver reports whether v is a SemVer 2.0.0 string. A leading v is
// rejected; tags and versions are kept apart.
func ValidSemver(v string) bool { return semver.MatchString(strings.TrimSpace(v)) }
