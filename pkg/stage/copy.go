// pkg/stage/copy.go
package stage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyFile copies a single regular file, preserving its permission bits.
// The destination directory is created if missing and an existing
// destination file is overwritten.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("copy %s: not a regular file", src)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}

	return out.Close()
}

// ReplaceTree copies the directory tree at src to dst. Any pre-existing
// dst is removed first, so the result is a full replacement rather than a
// merge and repeated runs converge on the same contents. With flatten set,
// symlinks are resolved and copied as regular files; otherwise they are
// recreated with their original targets.
func ReplaceTree(src, dst string, flatten bool) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("replace tree %s: not a directory", src)
	}

	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("removing %s: %w", dst, err)
	}

	return copyTree(src, dst, flatten)
}

func copyTree(src, dst string, flatten bool) error {
	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch {
		case entry.IsDir():
			if err := copyTree(srcPath, dstPath, flatten); err != nil {
				return err
			}
		case entry.Type()&os.ModeSymlink != 0:
			if err := copyLink(srcPath, dstPath, flatten); err != nil {
				return err
			}
		default:
			if err := CopyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyLink recreates a symlink at dst with the same target as src, or with
// flatten set copies the link's resolved contents as a regular file
func copyLink(src, dst string, flatten bool) error {
	if flatten {
		resolved, err := filepath.EvalSymlinks(src)
		if err != nil {
			return fmt.Errorf("resolving link %s: %w", src, err)
		}
		return CopyFile(resolved, dst)
	}

	target, err := os.Readlink(src)
	if err != nil {
		return fmt.Errorf("reading link %s: %w", src, err)
	}
	if err := os.Symlink(target, dst); err != nil {
		return fmt.Errorf("creating link %s: %w", dst, err)
	}
	return nil
}
