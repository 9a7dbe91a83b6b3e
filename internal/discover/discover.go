// Package discover locates SQL files on disk for batch formatting.
package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SQLFiles walks root recursively and returns every .sql file found,
// in lexical order. Hidden directories and any directory whose name
// appears in exclude are skipped.
func SQLFiles(root string, exclude []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || excluded[name]) {
				return filepath.SkipDir
			}
			return nil
		}
		if IsSQLFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return files, nil
}

// IsSQLFile reports whether path has a .sql extension, case-insensitive.
func IsSQLFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".sql")
}
