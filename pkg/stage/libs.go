// pkg/stage/libs.go
package stage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CopyLibraries copies every entry in srcDir whose name starts with prefix
// into dstDir. Regular files are copied first and symlinks recreated after,
// so a link never points at a target that has not been copied yet. With
// flatten set (Windows, where the loader does not follow symlinks for DLL
// resolution) links are resolved and copied as regular files instead.
// It returns the names copied, in the order they were written.
func CopyLibraries(srcDir, dstDir, prefix string, flatten bool) ([]string, error) {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", srcDir, err)
	}

	var files, links []string
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		if entry.IsDir() {
			continue
		}
		if entry.Type()&os.ModeSymlink != 0 && !flatten {
			links = append(links, entry.Name())
		} else {
			files = append(files, entry.Name())
		}
	}

	if len(files) == 0 && len(links) == 0 {
		return nil, fmt.Errorf("no libraries with prefix %q in %s", prefix, srcDir)
	}

	sort.Strings(files)
	sort.Strings(links)

	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dstDir, err)
	}

	var copied []string
	for _, name := range files {
		src := filepath.Join(srcDir, name)
		if err := copyMaybeLink(src, filepath.Join(dstDir, name)); err != nil {
			return nil, err
		}
		copied = append(copied, name)
	}

	for _, name := range links {
		target, err := os.Readlink(filepath.Join(srcDir, name))
		if err != nil {
			return nil, fmt.Errorf("reading link %s: %w", name, err)
		}
		dst := filepath.Join(dstDir, name)
		// Re-runs must replace stale links
		if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("removing %s: %w", dst, err)
		}
		if err := os.Symlink(target, dst); err != nil {
			return nil, fmt.Errorf("creating link %s: %w", dst, err)
		}
		copied = append(copied, name)
	}

	return copied, nil
}

// copyMaybeLink copies src as a regular file, resolving it first if it is
// a symlink (the flatten path)
func copyMaybeLink(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		resolved, err := filepath.EvalSymlinks(src)
		if err != nil {
			return fmt.Errorf("resolving link %s: %w", src, err)
		}
		src = resolved
	}
	return CopyFile(src, dst)
}
