package fsmerge

import (
	"io/fs"
	"os"
	"path/filepath"
)

// RemoveAll removes path and everything below it. Entries left read-only by a
// previous checkout are made owner-writable and the removal is retried once.
// A missing path is not an error.
func RemoveAll(path string) error {
	err := os.RemoveAll(path)
	if err == nil {
		return nil
	}

	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.Type()&fs.ModeSymlink != 0 {
			return nil //nolint:nilerr // best effort
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return nil //nolint:nilerr // best effort
		}

		_ = os.Chmod(p, info.Mode().Perm()|0o700)
		return nil
	})

	// the parent may be read-only as well
	if parent := filepath.Dir(path); parent != path {
		if info, statErr := os.Stat(parent); statErr == nil && info.Mode().Perm()&0o200 == 0 {
			_ = os.Chmod(parent, info.Mode().Perm()|0o200)
		}
	}

	return os.RemoveAll(path)
}
