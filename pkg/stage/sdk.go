// pkg/stage/sdk.go
package stage

import (
	"fmt"
	"os"
	"path/filepath"
)

// SDK subdirectories exported for downstream native consumers
const (
	IncludeDir = "include"
	LibDir     = "lib"
)

// StageSDK copies the headers, libraries, and build-system config files that
// the install phase placed under stageDir into the package tree at pkgDir.
// Each subtree fully replaces its destination. Subtrees the install phase
// did not produce are skipped.
func StageSDK(stageDir, pkgDir string, flatten bool) error {
	for _, sub := range []string{IncludeDir, LibDir} {
		src := filepath.Join(stageDir, sub)
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}
		if err := ReplaceTree(src, filepath.Join(pkgDir, sub), flatten); err != nil {
			return fmt.Errorf("staging %s: %w", sub, err)
		}
	}
	return nil
}

// SharedSDKDir returns the user-profile SDK cache directory used on Windows
// to share staged headers and import libraries across dependent package
// builds. It is resolved from the local-app-data environment variable and
// empty when that variable is unset or the platform has no such convention.
func SharedSDKDir(goos string) string {
	if goos != "windows" {
		return ""
	}
	appData := os.Getenv("LOCALAPPDATA")
	if appData == "" {
		return ""
	}
	return filepath.Join(appData, "termin_graphics", "sdk")
}
