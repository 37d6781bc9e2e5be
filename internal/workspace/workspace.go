package workspace

import (
	"log/slog"
	"os"
	"path/filepath"

	serrors "git.home.luguber.info/inful/scratch/internal/errors"
	"git.home.luguber.info/inful/scratch/internal/language"
	"git.home.luguber.info/inful/scratch/internal/logfields"
	"git.home.luguber.info/inful/scratch/internal/templates"
)

// Workspace is a scratch directory owned by a single session.
type Workspace struct {
	Path     string
	Language language.Language
}

// Manager creates workspaces under a temp root.
type Manager struct {
	tempRoot string
}

// NewManager creates a workspace manager rooted at tempRoot.
// An empty tempRoot means the OS temp directory.
func NewManager(tempRoot string) *Manager {
	if tempRoot == "" {
		tempRoot = os.TempDir()
	}
	return &Manager{tempRoot: tempRoot}
}

// TempRoot returns the directory workspaces are created in.
func (m *Manager) TempRoot() string {
	return m.tempRoot
}

// Create makes a new, empty workspace directory for lang. The name is unique:
// creation fails rather than reuse an existing directory.
func (m *Manager) Create(lang language.Language) (*Workspace, error) {
	if !lang.Valid() {
		return nil, serrors.UnknownLanguage(string(lang))
	}

	dir, err := os.MkdirTemp(m.tempRoot, NamePrefix(lang))
	if err != nil {
		return nil, serrors.FileSystemError("create workspace", m.tempRoot, err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, serrors.FileSystemError("resolve workspace path", dir, err)
	}

	slog.Debug("Created workspace", logfields.Workspace(abs), logfields.Language(string(lang)))
	return &Workspace{Path: abs, Language: lang}, nil
}

// Materialize renders a template for this workspace and writes its files.
func (w *Workspace) Materialize(tpl templates.Template) error {
	rendered, err := templates.Render(tpl, templates.Data{Name: filepath.Base(w.Path), Language: w.Language})
	if err != nil {
		return serrors.InternalError("render template", err)
	}
	return WriteFiles(w.Path, rendered.Files)
}

// Exists checks if the workspace directory exists
func (w *Workspace) Exists() bool {
	info, err := os.Stat(w.Path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Remove deletes the workspace tree. Missing trees are not an error.
func (w *Workspace) Remove() error {
	if err := Remove(w.Path); err != nil {
		return err
	}
	slog.Debug("Removed workspace", logfields.Workspace(w.Path))
	return nil
}
