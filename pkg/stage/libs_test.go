// pkg/stage/libs_test.go
package stage

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyLibrariesByPrefix(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "lib")
	dst := filepath.Join(dir, "out")
	writeFile(t, filepath.Join(src, "libtermin_core.so.1"), "core")
	writeFile(t, filepath.Join(src, "libother.so"), "other")

	copied, err := CopyLibraries(src, dst, "libtermin_core", false)
	require.NoError(t, err)

	assert.Equal(t, []string{"libtermin_core.so.1"}, copied)
	_, err = os.Stat(filepath.Join(dst, "libother.so"))
	assert.True(t, os.IsNotExist(err), "files outside the prefix must not be copied")
}

func TestCopyLibrariesNoMatch(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "lib")
	writeFile(t, filepath.Join(src, "libother.so"), "other")

	_, err := CopyLibraries(src, filepath.Join(dir, "out"), "libtermin_core", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "libtermin_core")
}

func TestCopyLibrariesSymlinksAfterTargets(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks are not preserved on windows")
	}

	dir := t.TempDir()
	src := filepath.Join(dir, "lib")
	dst := filepath.Join(dir, "out")
	writeFile(t, filepath.Join(src, "libtermin_core.so.1.2"), "core")
	require.NoError(t, os.Symlink("libtermin_core.so.1.2", filepath.Join(src, "libtermin_core.so.1")))
	require.NoError(t, os.Symlink("libtermin_core.so.1", filepath.Join(src, "libtermin_core.so")))

	copied, err := CopyLibraries(src, dst, "libtermin_core", false)
	require.NoError(t, err)

	// Real file first, then links
	assert.Equal(t, []string{"libtermin_core.so.1.2", "libtermin_core.so", "libtermin_core.so.1"}, copied)

	target, err := os.Readlink(filepath.Join(dst, "libtermin_core.so"))
	require.NoError(t, err)
	assert.Equal(t, "libtermin_core.so.1", target)

	// The link chain must resolve inside the destination
	resolved, err := filepath.EvalSymlinks(filepath.Join(dst, "libtermin_core.so"))
	require.NoError(t, err)
	assert.Equal(t, "core", readFile(t, resolved))
}

func TestCopyLibrariesFlatten(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("creating the source symlink needs POSIX")
	}

	dir := t.TempDir()
	src := filepath.Join(dir, "lib")
	dst := filepath.Join(dir, "out")
	writeFile(t, filepath.Join(src, "libtermin_core.so.1"), "core")
	require.NoError(t, os.Symlink("libtermin_core.so.1", filepath.Join(src, "libtermin_core.so")))

	_, err := CopyLibraries(src, dst, "libtermin_core", true)
	require.NoError(t, err)

	entries, err := os.ReadDir(dst)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.Zero(t, entry.Type()&os.ModeSymlink, "no symlinks may appear in a flattened destination")
	}
	assert.Equal(t, "core", readFile(t, filepath.Join(dst, "libtermin_core.so")))
}

func TestCopyLibrariesRerunReplacesLinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks are not preserved on windows")
	}

	dir := t.TempDir()
	src := filepath.Join(dir, "lib")
	dst := filepath.Join(dir, "out")
	writeFile(t, filepath.Join(src, "libtermin_core.so.1"), "core")
	require.NoError(t, os.Symlink("libtermin_core.so.1", filepath.Join(src, "libtermin_core.so")))

	_, err := CopyLibraries(src, dst, "libtermin_core", false)
	require.NoError(t, err)
	_, err = CopyLibraries(src, dst, "libtermin_core", false)
	require.NoError(t, err)

	target, err := os.Readlink(filepath.Join(dst, "libtermin_core.so"))
	require.NoError(t, err)
	assert.Equal(t, "libtermin_core.so.1", target)
}
