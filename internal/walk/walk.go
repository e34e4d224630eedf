package walk

import (
	"io/fs"
	"os"
	"path/filepath"
)

// prunedDirNames are directories whose contents are never worth
// classifying. Walk skips them outright as an optimization; classify
// enforces the same rule independently on whatever path it is handed.
var prunedDirNames = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
}

// WalkFunc is called once per regular, non-symlinked file found beneath
// root. Returning an error from walkFn aborts the walk and that error is
// returned from Walk.
type WalkFunc func(path string) error

// Walk visits every regular file beneath root, skipping symlinks (both
// symlinked directories and symlinked files) and the pruned directory
// names. Files are visited in the lexical order filepath.WalkDir already
// guarantees.
func Walk(root string, walkFn WalkFunc) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && shouldPruneDir(d) {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}
		return walkFn(path)
	})
}

// Collect walks root and returns every regular, non-symlinked file path
// found beneath it, in the order Walk visits them.
func Collect(root string) ([]string, error) {
	var paths []string
	err := Walk(root, func(path string) error {
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func shouldPruneDir(d fs.DirEntry) bool {
	if d.Type()&os.ModeSymlink != 0 {
		return true
	}
	return prunedDirNames[d.Name()]
}
