package workspace

import (
	"os"
	"path/filepath"
	"strings"
)

// IsWithin reports whether target is root itself or lies inside root's subtree.
// It is purely lexical: no symlinks are resolved and nothing is read from disk.
func IsWithin(root, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	if filepath.IsAbs(rel) {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// TempRoot returns the absolute OS temp directory.
func TempRoot() (string, error) {
	return filepath.Abs(os.TempDir())
}

// Exists reports whether path exists (any file type).
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
