package workspace

import (
	"path/filepath"
)

// Find returns the nearest ancestor of target (target included) whose base name
// matches the workspace naming convention, provided it lies within tempRoot.
// The temp root itself is never returned. Both paths are expected to be absolute.
func Find(target, tempRoot string) (string, bool) {
	target = filepath.Clean(target)
	tempRoot = filepath.Clean(tempRoot)
	if !IsWithin(tempRoot, target) {
		return "", false
	}

	current := target
	for IsWithin(tempRoot, current) && current != tempRoot {
		if MatchesName(filepath.Base(current)) {
			return current, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return "", false
}
