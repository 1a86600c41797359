// Package fsmerge overlays one directory tree onto another.
//
// Merging is shallow at the top level and a full overwrite below it: a
// top-level directory of the source replaces the same-named destination entry
// wholesale, and a top-level file overwrites the destination file.
package fsmerge

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"
	"github.com/samber/lo"
)

// MetadataDir is skipped when no explicit skip list is given.
const MetadataDir = ".git"

var (
	ErrNotDirectory = errors.New("not a directory")
	ErrCopyFailed   = errors.New("failed to copy")
)

// Merge copies every direct child of src into dst, which must already exist.
// Children whose names are in skip are ignored; skip defaults to MetadataDir.
// The source tree is left intact.
func Merge(src, dst string, skip ...string) error {
	if len(skip) == 0 {
		skip = []string{MetadataDir}
	}

	if err := requireDir(dst); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read source directory: %w", err)
	}

	for _, entry := range entries {
		if lo.Contains(skip, entry.Name()) {
			continue
		}

		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if _, statErr := os.Lstat(to); statErr == nil {
				if rmErr := RemoveAll(to); rmErr != nil {
					return fmt.Errorf("failed to replace %s: %w", entry.Name(), rmErr)
				}
			}

			if cpErr := CopyTree(from, to); cpErr != nil {
				return cpErr
			}
			continue
		}

		if cpErr := CopyFile(from, to); cpErr != nil {
			return cpErr
		}
	}

	return nil
}

// copyOptions keep symlinks as links and carry modes and modification times
// over from the source.
var copyOptions = cp.Options{
	OnSymlink: func(string) cp.SymlinkAction {
		return cp.Shallow
	},
	OnDirExists: func(_, _ string) cp.DirExistsAction {
		return cp.Replace
	},
	PreserveTimes: true,
}

// CopyTree copies the directory src to dst recursively, replacing dst.
func CopyTree(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCopyFailed, src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, src)
	}

	if cpErr := cp.Copy(src, dst, copyOptions); cpErr != nil {
		return fmt.Errorf("%w: %s: %w", ErrCopyFailed, src, cpErr)
	}

	return nil
}

// CopyFile copies a regular file or a symlink, overwriting dst and preserving
// the mode and modification time of src.
func CopyFile(src, dst string) error {
	// a read-only leftover at dst can not be truncated in place
	if _, err := os.Lstat(dst); err == nil {
		if rmErr := RemoveAll(dst); rmErr != nil {
			return fmt.Errorf("%w: %s: %w", ErrCopyFailed, dst, rmErr)
		}
	}

	if err := cp.Copy(src, dst, copyOptions); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCopyFailed, src, err)
	}

	return nil
}

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat destination: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}

	return nil
}
