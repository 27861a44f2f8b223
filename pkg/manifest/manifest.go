// pkg/manifest/manifest.go
package manifest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/termin-graphics/tgfx/pkg/platform"
)

// Descriptor describes one expected build output for a platform
type Descriptor struct {
	// Name is the logical artifact name used in error messages
	Name string `yaml:"name"`

	// Dir is the subdirectory under the build directory to search
	Dir string `yaml:"dir"`

	// Patterns are glob patterns tried in order; the first pattern with a
	// match wins, and within a pattern matches are taken in lexical order
	Patterns []string `yaml:"patterns"`

	// Required marks outputs whose absence fails the build
	Required bool `yaml:"required"`
}

// Manifest maps a platform identifier (GOOS) to its ordered list of
// expected build outputs
type Manifest struct {
	Platforms map[string][]Descriptor `yaml:"platforms"`
}

// ModuleName is the logical name of the native extension module
const ModuleName = "_tgfx_native"

// RuntimeLibraryPrefix is the filename prefix of the renderer's runtime
// shared libraries
const RuntimeLibraryPrefix = "libtermin_graphics"

// Default returns the built-in manifest covering all supported platforms.
// Patterns derive from the platform suffix tables so discovery and the
// tables cannot drift apart.
func Default() *Manifest {
	platforms := make(map[string][]Descriptor)

	for _, goos := range []string{"linux", "darwin", "windows"} {
		libPrefix := RuntimeLibraryPrefix
		if goos == "windows" {
			// MSVC-built DLLs drop the lib prefix
			libPrefix = strings.TrimPrefix(libPrefix, "lib")
		}

		var modulePatterns []string
		for _, suffix := range platform.ModuleSuffixes(goos) {
			modulePatterns = append(modulePatterns, ModuleName+"*"+suffix)
		}

		var libPatterns []string
		for _, ext := range platform.SharedLibraryExtensions(goos) {
			pattern := libPrefix + "*" + ext
			if ext == ".so" {
				// Versioned sonames: libfoo.so.1.2
				pattern += "*"
			}
			libPatterns = append(libPatterns, pattern)
		}

		platforms[goos] = []Descriptor{
			{
				Name:     ModuleName,
				Dir:      "python",
				Patterns: modulePatterns,
				Required: true,
			},
			{
				Name:     libPrefix,
				Dir:      "",
				Patterns: libPatterns,
			},
		}
	}

	return &Manifest{Platforms: platforms}
}

// Load loads a manifest from a YAML file
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	if len(m.Platforms) == 0 {
		return nil, fmt.Errorf("manifest %s declares no platforms", path)
	}

	return &m, nil
}

// ForPlatform returns the ordered output descriptors for the given platform
func (m *Manifest) ForPlatform(os string) ([]Descriptor, error) {
	descs, ok := m.Platforms[os]
	if !ok {
		return nil, fmt.Errorf("no artifact manifest for platform %s", os)
	}
	return descs, nil
}
