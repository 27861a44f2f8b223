// pkg/artifact/discover_test.go
package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termin-graphics/tgfx/pkg/manifest"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestDiscoverFindsModule(t *testing.T) {
	buildDir := t.TempDir()
	touch(t, filepath.Join(buildDir, "python", "_tgfx_native.cpython-312-x86_64-linux-gnu.so"))

	found, err := Discover(buildDir, []manifest.Descriptor{{
		Name:     "_tgfx_native",
		Dir:      "python",
		Patterns: []string{"_tgfx_native*.so"},
		Required: true,
	}})
	require.NoError(t, err)

	require.Len(t, found, 1)
	assert.Equal(t, "_tgfx_native", found[0].Name)
	assert.Equal(t, "_tgfx_native.cpython-312-x86_64-linux-gnu.so", filepath.Base(found[0].Path))
}

func TestDiscoverFirstPatternWins(t *testing.T) {
	buildDir := t.TempDir()
	touch(t, filepath.Join(buildDir, "python", "_tgfx_native.pyd"))
	touch(t, filepath.Join(buildDir, "python", "_tgfx_native.dll"))

	found, err := Discover(buildDir, []manifest.Descriptor{{
		Name:     "_tgfx_native",
		Dir:      "python",
		Patterns: []string{"_tgfx_native*.pyd", "_tgfx_native*.dll"},
		Required: true,
	}})
	require.NoError(t, err)

	require.Len(t, found, 1)
	assert.Equal(t, "_tgfx_native.pyd", filepath.Base(found[0].Path),
		"an earlier pattern must shadow matches of later patterns")
}

func TestDiscoverLexicalOrderWithinPattern(t *testing.T) {
	buildDir := t.TempDir()
	touch(t, filepath.Join(buildDir, "python", "_tgfx_native.b.so"))
	touch(t, filepath.Join(buildDir, "python", "_tgfx_native.a.so"))

	found, err := Discover(buildDir, []manifest.Descriptor{{
		Name:     "_tgfx_native",
		Dir:      "python",
		Patterns: []string{"_tgfx_native*.so"},
		Required: true,
	}})
	require.NoError(t, err)

	assert.Equal(t, "_tgfx_native.a.so", filepath.Base(found[0].Path))
}

func TestDiscoverRequiredMissing(t *testing.T) {
	buildDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(buildDir, "python"), 0755))

	_, err := Discover(buildDir, []manifest.Descriptor{{
		Name:     "_tgfx_native",
		Dir:      "python",
		Patterns: []string{"_tgfx_native*.so"},
		Required: true,
	}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "_tgfx_native", "the error must name the missing module")
}

func TestDiscoverOptionalMissingSkipped(t *testing.T) {
	buildDir := t.TempDir()
	touch(t, filepath.Join(buildDir, "python", "_tgfx_native.so"))

	found, err := Discover(buildDir, []manifest.Descriptor{
		{
			Name:     "_tgfx_native",
			Dir:      "python",
			Patterns: []string{"_tgfx_native*.so"},
			Required: true,
		},
		{
			Name:     "libtermin_graphics",
			Patterns: []string{"libtermin_graphics*.so*"},
		},
	})
	require.NoError(t, err)

	assert.Len(t, found, 1)
}
