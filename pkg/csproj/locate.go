package csproj

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CheckPath validates an explicitly given project file path.
func CheckPath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if !strings.HasSuffix(path, Extension) {
		return "", fmt.Errorf("%w: %s", ErrWrongFileExtension, path)
	}
	return path, nil
}

// Discover returns the single project file in dir. Subdirectories are not
// searched.
func Discover(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory: %w", err)
	}

	var matches []string
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}
		// Resolve symlinks and skip directories named like project files
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		matches = append(matches, filepath.Join(dir, entry.Name()))
	}

	switch len(matches) {
	case 0:
		return "", ErrNoFileDiscovered
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = filepath.Base(m)
		}
		return "", fmt.Errorf("%w: %s", ErrAmbiguousFileDiscovery, strings.Join(names, ", "))
	}
}
