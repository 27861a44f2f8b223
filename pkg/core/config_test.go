// pkg/core/config_test.go
package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Release", cfg.BuildType)
	assert.True(t, cfg.Parallel)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tgfx-build.yaml")
	data := `source_dir: /src/tgfx
build_type: Debug
interpreter: /usr/bin/python3
extra_cmake_args: '-DTGFX_SANITIZE=ON "-DTGFX_NOTE=hello world"'
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/src/tgfx", cfg.SourceDir)
	assert.Equal(t, "Debug", cfg.BuildType)
	assert.Equal(t, "/usr/bin/python3", cfg.Interpreter)

	args, err := cfg.ExtraArgs()
	require.NoError(t, err)
	assert.Equal(t, []string{"-DTGFX_SANITIZE=ON", "-DTGFX_NOTE=hello world"}, args)
}

func TestLoadConfigRejectsBadBuildType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tgfx-build.yaml")
	require.NoError(t, os.WriteFile(path, []byte("build_type: Fast\n"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "build_type")
}

func TestExtraArgsEmpty(t *testing.T) {
	cfg := DefaultConfig()

	args, err := cfg.ExtraArgs()
	require.NoError(t, err)
	assert.Nil(t, args)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "tgfx-build.yaml")
	cfg := DefaultConfig()
	cfg.BuildType = "Debug"
	cfg.Generator = "Ninja"

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Debug", loaded.BuildType)
	assert.Equal(t, "Ninja", loaded.Generator)
}
