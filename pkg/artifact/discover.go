// pkg/artifact/discover.go
package artifact

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/termin-graphics/tgfx/pkg/manifest"
)

// Artifact is one discovered build output
type Artifact struct {
	Name string // Logical name from the manifest descriptor
	Path string // Absolute path of the matched file
}

// Discover locates every manifest output under buildDir for the given
// platform. Each descriptor resolves to at most one file: patterns are tried
// in manifest order and the first pattern with any match wins, with matches
// within a pattern taken in lexical order. A required descriptor with zero
// matches fails with an error naming the missing module.
func Discover(buildDir string, descs []manifest.Descriptor) ([]Artifact, error) {
	var found []Artifact

	for _, desc := range descs {
		path, ok, err := resolve(buildDir, desc)
		if err != nil {
			return nil, err
		}
		if !ok {
			if desc.Required {
				return nil, fmt.Errorf("build did not produce %s module: no file matching %v under %s",
					desc.Name, desc.Patterns, filepath.Join(buildDir, desc.Dir))
			}
			continue
		}
		found = append(found, Artifact{Name: desc.Name, Path: path})
	}

	return found, nil
}

// resolve applies the first-match rule for a single descriptor
func resolve(buildDir string, desc manifest.Descriptor) (string, bool, error) {
	dir := filepath.Join(buildDir, desc.Dir)

	for _, pattern := range desc.Patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return "", false, fmt.Errorf("bad pattern %q for %s: %w", pattern, desc.Name, err)
		}
		if len(matches) == 0 {
			continue
		}
		sort.Strings(matches)
		return matches[0], true, nil
	}

	return "", false, nil
}
