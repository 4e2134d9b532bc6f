package vfs

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WalkFunc receives the path of every file accepted by the filter.
type WalkFunc func(path string) error

// Walk calls fn for root if it is a file, or for every accepted file below
// root if it is a directory. Files named explicitly bypass the extension
// check but not the size limit.
func Walk(root string, filter *Filter, fn WalkFunc) error {
	st, err := os.Stat(root)
	if err != nil {
		return errors.Wrapf(err, "stat %s", root)
	}
	if !st.IsDir() {
		if filter.MaxSize > 0 && st.Size() > filter.MaxSize {
			return nil
		}
		return fn(root)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, "walk %s", path)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return errors.Wrapf(err, "stat %s", path)
		}
		if !filter.ShouldProcess(path, info.Size()) {
			return nil
		}
		return fn(path)
	})
}
