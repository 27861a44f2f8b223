// pkg/deps/deps_test.go
package deps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeInstall(t *testing.T, libName string) string {
	t.Helper()
	root := t.TempDir()
	libDir := filepath.Join(root, "lib")
	require.NoError(t, os.MkdirAll(libDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(libDir, libName), []byte("lib"), 0644))
	return root
}

func TestLocateViaEnvOverride(t *testing.T) {
	root := fakeInstall(t, "libtermin_core.so.1")
	t.Setenv(TerminCore.EnvVar, root)

	install, err := locate(TerminCore, "linux")
	require.NoError(t, err)

	assert.Equal(t, root, install.Root)
	assert.Equal(t, filepath.Join(root, "lib"), install.LibDir)
	assert.Equal(t, filepath.Join(root, "include"), install.IncludeDir)
}

func TestLocateRejectsPrefixWithoutLibrary(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "lib"), 0755))
	t.Setenv(TerminCore.EnvVar, root)

	_, err := locate(TerminCore, "linux")
	assert.Error(t, err, "an empty prefix must not satisfy the dependency")
}

func TestLocateMissingGivesOrderingGuidance(t *testing.T) {
	t.Setenv(TerminCore.EnvVar, filepath.Join(t.TempDir(), "nowhere"))

	_, err := locate(TerminCore, "linux")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "install termin-core first")
}

func TestLocateWindowsNamesConventionalRootWithoutAppData(t *testing.T) {
	t.Setenv(TerminCore.EnvVar, "")
	t.Setenv("LOCALAPPDATA", "")

	_, err := locate(TerminCore, "windows")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "%LOCALAPPDATA%")
	assert.Contains(t, err.Error(), TerminCore.Name)
	assert.NotContains(t, err.Error(), "searched []")
}

func TestLocateWindowsDropsLibPrefix(t *testing.T) {
	root := t.TempDir()
	binDir := filepath.Join(root, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "termin_core.dll"), []byte("lib"), 0644))
	t.Setenv(TerminCore.EnvVar, root)

	install, err := locate(TerminCore, "windows")
	require.NoError(t, err)

	assert.Equal(t, binDir, install.LibDir, "windows DLLs live under bin/")
}

func TestLocateWindowsFallsBackToLib(t *testing.T) {
	root := t.TempDir()
	libDir := filepath.Join(root, "lib")
	require.NoError(t, os.MkdirAll(libDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(libDir, "termin_core.dll"), []byte("lib"), 0644))
	t.Setenv(TerminCore.EnvVar, root)

	install, err := locate(TerminCore, "windows")
	require.NoError(t, err)

	assert.Equal(t, libDir, install.LibDir)
}
