// pkg/deps/deps.go

// Package deps locates upstream native dependency packages that the
// renderer links against. A dependency is found by its install prefix,
// resolved from an environment variable override first and then a list of
// conventional locations per platform. The build orchestrator refuses to
// run any external build step until every required dependency resolves.
package deps

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// TerminCore is the renderer's core runtime, required before any build
var TerminCore = Dependency{
	Name:      "termin-core",
	LibPrefix: "libtermin_core",
	EnvVar:    "TERMIN_CORE_PREFIX",
}

// Dependency describes an upstream native package by the conventions used
// to locate its installation
type Dependency struct {
	Name      string // Package name used in messages
	LibPrefix string // Shared-library filename prefix under lib/
	EnvVar    string // Environment variable overriding the install prefix
}

// Install is a located dependency installation
type Install struct {
	Root       string // Install prefix
	LibDir     string // Shared-library directory
	IncludeDir string // Header directory
}

// Locate resolves the install prefix of dep. The environment override is
// honored first; otherwise conventional prefixes for the current OS are
// probed in order. A prefix qualifies only if its lib directory holds at
// least one file with the dependency's library prefix.
func Locate(dep Dependency) (*Install, error) {
	return locate(dep, runtime.GOOS)
}

func locate(dep Dependency, goos string) (*Install, error) {
	var roots []string
	if override := os.Getenv(dep.EnvVar); override != "" {
		roots = []string{override}
	} else {
		roots = candidateRoots(dep, goos)
	}

	prefix := dep.LibPrefix
	if goos == "windows" {
		// MSVC-built DLLs drop the lib prefix
		prefix = strings.TrimPrefix(prefix, "lib")
	}

	for _, root := range roots {
		libDir := libDirFor(root, goos)
		if !hasLibrary(libDir, prefix) {
			continue
		}
		return &Install{
			Root:       root,
			LibDir:     libDir,
			IncludeDir: filepath.Join(root, "include"),
		}, nil
	}

	return nil, fmt.Errorf("%s is not installed (searched %v): install %s first, then rebuild",
		dep.Name, roots, dep.Name)
}

// candidateRoots lists conventional install prefixes per OS
func candidateRoots(dep Dependency, goos string) []string {
	if goos == "windows" {
		if appData := os.Getenv("LOCALAPPDATA"); appData != "" {
			return []string{filepath.Join(appData, dep.Name)}
		}
		// LOCALAPPDATA unset: the literal placeholder never matches, but the
		// not-found message still names where the install belongs
		return []string{filepath.Join("%LOCALAPPDATA%", dep.Name)}
	}

	var roots []string
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, filepath.Join(home, ".local", dep.Name))
	}
	roots = append(roots,
		filepath.Join("/opt", dep.Name),
		"/usr/local",
	)
	return roots
}

func libDirFor(root, goos string) string {
	if goos == "windows" {
		// DLLs sit next to import libraries under bin/ in most Windows
		// install layouts; fall back to lib/ when bin/ is absent
		bin := filepath.Join(root, "bin")
		if _, err := os.Stat(bin); err == nil {
			return bin
		}
	}
	return filepath.Join(root, "lib")
}

// hasLibrary reports whether dir holds at least one entry with the prefix
func hasLibrary(dir, prefix string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), prefix) {
			return true
		}
	}
	return false
}
