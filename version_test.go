package fieldedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	require.True(t, ValidSemver(Version()), "VERSION must hold semver, got %q", Version())
	require.Equal(t, "v"+Version(), Tag())
}

func TestValidSemver(t *testing.T) {
	for v, want := range map[string]bool{
		"0.1.0":         true,
		"1.2.3-rc.1":    true,
		"2.0.0+build.7": true,
		"1.0.0-":        false,
		"v1.2.3":        false,
		"1.2":           false,
		"01.2.3":        false,
	} {
		assert.Equal(t, want, ValidSemver(v), v)
	}
}
