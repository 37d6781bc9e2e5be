package workspace

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	serrors "git.home.luguber.info/inful/scratch/internal/errors"
	"git.home.luguber.info/inful/scratch/internal/logfields"
)

// Cleaner deletes workspaces found under a temp root and reports each deletion to Out.
type Cleaner struct {
	TempRoot string
	Out      io.Writer
}

// NewCleaner returns a Cleaner for tempRoot (the OS temp directory when empty).
func NewCleaner(tempRoot string, out io.Writer) (*Cleaner, error) {
	var abs string
	var err error
	if tempRoot == "" {
		abs, err = TempRoot()
	} else {
		abs, err = filepath.Abs(tempRoot)
	}
	if err != nil {
		return nil, serrors.FileSystemError("resolve temp root", tempRoot, err)
	}
	if out == nil {
		out = io.Discard
	}
	return &Cleaner{TempRoot: abs, Out: out}, nil
}

// CleanTarget deletes the workspace that owns target (the workspace itself or any
// path inside it). Nothing is removed unless every check passes.
func (c *Cleaner) CleanTarget(target string) (string, error) {
	targetPath, err := filepath.Abs(target)
	if err != nil {
		return "", serrors.FileSystemError("resolve target", target, err)
	}

	if !IsWithin(c.TempRoot, targetPath) {
		return "", serrors.OutsideTempRoot(targetPath, c.TempRoot)
	}

	ws, ok := Find(targetPath, c.TempRoot)
	if !ok {
		return "", serrors.NotAWorkspace(targetPath)
	}

	if !Exists(ws) {
		return "", serrors.WorkspaceMissing(ws)
	}

	if err := Remove(ws); err != nil {
		return "", err
	}

	slog.Info("Deleted workspace", logfields.Workspace(ws), logfields.Target(targetPath))
	_, _ = fmt.Fprintf(c.Out, "Deleted scratch workspace: %s\n", ws)
	return ws, nil
}

// List returns the workspace directories that are immediate children of the temp root.
func (c *Cleaner) List() ([]string, error) {
	entries, err := os.ReadDir(c.TempRoot)
	if err != nil {
		return nil, serrors.FileSystemError("read temp root", c.TempRoot, err)
	}

	var workspaces []string
	for _, entry := range entries {
		if !entry.IsDir() || !MatchesName(entry.Name()) {
			continue
		}
		workspaces = append(workspaces, filepath.Join(c.TempRoot, entry.Name()))
	}
	return workspaces, nil
}

// CleanAll deletes every workspace directly under the temp root, one at a time,
// and returns how many were deleted. Zero means there was nothing to clean.
func (c *Cleaner) CleanAll() (int, error) {
	workspaces, err := c.List()
	if err != nil {
		return 0, err
	}

	if len(workspaces) == 0 {
		slog.Debug("No workspaces to clean", logfields.TempRoot(c.TempRoot))
		_, _ = fmt.Fprintf(c.Out, "No scratch workspaces found in: %s\n", c.TempRoot)
		return 0, nil
	}

	deleted := 0
	for _, ws := range workspaces {
		if err := Remove(ws); err != nil {
			return deleted, err
		}
		deleted++
		if lang, ok := LanguageOf(filepath.Base(ws)); ok {
			slog.Debug("Deleted workspace", logfields.Workspace(ws), logfields.Language(string(lang)))
		}
		_, _ = fmt.Fprintf(c.Out, "Deleted scratch workspace: %s\n", ws)
	}

	suffix := "s"
	if deleted == 1 {
		suffix = ""
	}
	slog.Info("Deleted workspaces", logfields.Count(deleted), logfields.TempRoot(c.TempRoot))
	_, _ = fmt.Fprintf(c.Out, "Deleted %d scratch workspace%s from: %s\n", deleted, suffix, c.TempRoot)
	return deleted, nil
}
