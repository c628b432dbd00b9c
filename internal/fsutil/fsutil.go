package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
)

// ClearDirectory removes dir and everything in it. Read-only entries are
// made writable first. It reports whether dir existed.
func ClearDirectory(dir string) (bool, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.Mode().Perm()&0o200 == 0 {
			return os.Chmod(path, info.Mode().Perm()|0o200)
		}
		return nil
	})
	if err != nil {
		return true, err
	}
	return true, os.RemoveAll(dir)
}

// ClearOrCreateDirectory leaves dir existing and empty.
func ClearOrCreateDirectory(dir string) error {
	if _, err := ClearDirectory(dir); err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

// ValidatePath checks that value names an existing directory (or file when
// wantDir is false).
func ValidatePath(name, value string, wantDir bool) error {
	if value == "" {
		return srvErrors.NewValidationError(name, "was not valid")
	}
	info, err := os.Stat(value)
	if err != nil {
		return srvErrors.NewValidationError(name, fmt.Sprintf("%q did not exist", value))
	}
	if wantDir && !info.IsDir() {
		return srvErrors.NewValidationError(name, fmt.Sprintf("%q must be a directory", value))
	}
	if !wantDir && info.IsDir() {
		return srvErrors.NewValidationError(name, fmt.Sprintf("%q is a directory", value))
	}
	return nil
}
