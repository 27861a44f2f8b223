// pkg/platform/platform_test.go
package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	p, err := Detect()
	require.NoError(t, err)

	assert.Equal(t, runtime.GOOS, p.OS)
	assert.Equal(t, runtime.GOARCH, p.Arch)
	assert.NotEmpty(t, p.String())
}

func TestSharedLibraryExtensions(t *testing.T) {
	assert.Equal(t, []string{".so"}, SharedLibraryExtensions("linux"))
	assert.Equal(t, []string{".dylib", ".so"}, SharedLibraryExtensions("darwin"))
	assert.Equal(t, []string{".dll"}, SharedLibraryExtensions("windows"))
}

func TestModuleSuffixes(t *testing.T) {
	assert.Contains(t, ModuleSuffixes("windows"), ".pyd")
	assert.Contains(t, ModuleSuffixes("linux"), ".so")
	assert.Contains(t, ModuleSuffixes("darwin"), ".so")
}
