// Package linguista is the root of the Linguista composer module. It only
// carries build metadata; the engine lives in package format.
package linguista

import (
	_ "embed"
	"regexp"
	"strings"
)

// SemVer 2.0.0 without the leading "v".
var semverPattern = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var rawVersion string

// Name is the program name used in CLI output and log prefixes.
const Name = "linguista"

// Version returns the module version (no leading `v`).
func Version() string {
	return strings.TrimSpace(rawVersion)
}

// Tag returns Version in git tag form.
func Tag() string {
	return "v" + Version()
}

// Banner returns "linguista vX.Y.Z" for `linguista version`.
func Banner() string {
	return Name + " " + Tag()
}

// ValidSemver reports whether v is a SemVer 2.0.0 string without `v`.
func ValidSemver(v string) bool {
	return semverPattern.MatchString(strings.TrimSpace(v))
}
