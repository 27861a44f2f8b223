// pkg/stage/receipt_test.go
package stage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "_tgfx_native.so"), "module")

	r := NewReceipt("linux", "Release")
	require.NoError(t, r.Add("_tgfx_native", filepath.Join(dir, "_tgfx_native.so")))
	require.NoError(t, r.Write(dir))

	loaded, err := LoadReceipt(dir)
	require.NoError(t, err)

	assert.Equal(t, r.ID, loaded.ID)
	assert.Equal(t, "linux", loaded.Platform)
	assert.Equal(t, "Release", loaded.BuildType)
	require.Len(t, loaded.Artifacts, 1)
	assert.Equal(t, "_tgfx_native.so", loaded.Artifacts[0].File)

	assert.NoError(t, loaded.Verify(dir))
}

func TestReceiptVerifyDetectsTampering(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "_tgfx_native.so"), "module")

	r := NewReceipt("linux", "Release")
	require.NoError(t, r.Add("_tgfx_native", filepath.Join(dir, "_tgfx_native.so")))

	writeFile(t, filepath.Join(dir, "_tgfx_native.so"), "different")

	err := r.Verify(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "digest mismatch")
}

func TestReceiptVerifyDetectsMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "_tgfx_native.so"), "module")

	r := NewReceipt("linux", "Release")
	require.NoError(t, r.Add("_tgfx_native", filepath.Join(dir, "_tgfx_native.so")))
	require.NoError(t, os.Remove(filepath.Join(dir, "_tgfx_native.so")))

	assert.Error(t, r.Verify(dir))
}

func TestLoadReceiptMissing(t *testing.T) {
	_, err := LoadReceipt(t.TempDir())
	assert.Error(t, err, "a tree without a receipt is not a staged package")
}

func TestStageSDK(t *testing.T) {
	dir := t.TempDir()
	stageDir := filepath.Join(dir, "stage")
	pkgDir := filepath.Join(dir, "pkg")
	writeFile(t, filepath.Join(stageDir, "include", "tgfx", "tgfx_types.h"), "types")
	writeFile(t, filepath.Join(stageDir, "lib", "cmake", "tgfx", "tgfx-config.cmake"), "config")
	writeFile(t, filepath.Join(pkgDir, "include", "old.h"), "old")

	require.NoError(t, StageSDK(stageDir, pkgDir, false))

	assert.Equal(t, "types", readFile(t, filepath.Join(pkgDir, "include", "tgfx", "tgfx_types.h")))
	assert.Equal(t, "config", readFile(t, filepath.Join(pkgDir, "lib", "cmake", "tgfx", "tgfx-config.cmake")))
	_, err := os.Stat(filepath.Join(pkgDir, "include", "old.h"))
	assert.True(t, os.IsNotExist(err))
}

func TestStageSDKSkipsMissingSubtrees(t *testing.T) {
	dir := t.TempDir()
	stageDir := filepath.Join(dir, "stage")
	require.NoError(t, os.MkdirAll(stageDir, 0755))

	assert.NoError(t, StageSDK(stageDir, filepath.Join(dir, "pkg"), false))
}

func TestSharedSDKDir(t *testing.T) {
	t.Setenv("LOCALAPPDATA", filepath.Join("C:", "Users", "dev", "AppData", "Local"))

	assert.NotEmpty(t, SharedSDKDir("windows"))
	assert.Empty(t, SharedSDKDir("linux"), "only windows has a shared SDK cache")
	assert.Empty(t, SharedSDKDir("darwin"))
}
