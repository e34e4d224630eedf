package classify

import (
	"os"
	"path/filepath"

	"github.com/sdlcforge/makelint/internal/errors"
)

// ResolvePath resolves a user-supplied path to an absolute one. An empty
// path defaults to "Makefile" in the current working directory.
func ResolvePath(path string) (string, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		path = filepath.Join(cwd, "Makefile")
	}
	return filepath.Abs(path)
}

// ValidateExists checks that path names a regular, non-symlink file,
// returning the same structured I/O errors internal/source.Load would.
func ValidateExists(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewFileNotFoundError(path)
		}
		return err
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return errors.NewSymlinkSkippedError(path)
	}
	if info.IsDir() {
		return errors.NewNotRegularFileError(path, "is a directory")
	}
	return nil
}
