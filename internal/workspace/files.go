package workspace

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	serrors "git.home.luguber.info/inful/scratch/internal/errors"
	"git.home.luguber.info/inful/scratch/internal/templates"
)

const (
	dirMode        = 0o755
	fileMode       = 0o644
	executableMode = 0o755
)

// WriteFiles writes each file below root, creating parent directories as needed.
// Paths escaping root are rejected.
func WriteFiles(root string, files []templates.File) error {
	for _, f := range files {
		full := filepath.Join(root, filepath.FromSlash(f.Path))
		if full == filepath.Clean(root) || !IsWithin(root, full) {
			return serrors.FileSystemError("write template file", full, fmt.Errorf("path %q escapes workspace", f.Path))
		}
		if err := os.MkdirAll(filepath.Dir(full), dirMode); err != nil {
			return serrors.FileSystemError("create template directory", filepath.Dir(full), err)
		}
		if err := os.WriteFile(full, []byte(f.Content), fileMode); err != nil {
			return serrors.FileSystemError("write template file", full, err)
		}
		if f.Executable {
			if err := os.Chmod(full, executableMode); err != nil {
				return serrors.FileSystemError("mark template file executable", full, err)
			}
		}
	}
	return nil
}

// Copy recursively copies src into dst, preserving modes and modification times.
// Missing parents of dst are created.
// Existing directories at dst are merged into, but an existing file is never
// overwritten: the copy fails at the first collision.
func Copy(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return serrors.FileSystemError("copy workspace", src, err)
	}
	if !srcInfo.IsDir() {
		return serrors.FileSystemError("copy workspace", src, fmt.Errorf("not a directory"))
	}
	if IsWithin(src, dst) {
		return serrors.FileSystemError("copy workspace", dst, fmt.Errorf("destination is inside source %s", src))
	}
	if err := os.MkdirAll(filepath.Dir(dst), dirMode); err != nil {
		return serrors.FileSystemError("create destination parent", filepath.Dir(dst), err)
	}

	type dirTimes struct {
		path string
		mod  time.Time
	}
	var dirs []dirTimes

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		info, err := d.Info()
		if err != nil {
			return err
		}

		switch {
		case d.IsDir():
			if err := os.Mkdir(target, info.Mode().Perm()); err != nil && !os.IsExist(err) {
				return err
			}
			dirs = append(dirs, dirTimes{path: target, mod: info.ModTime()})
			return nil
		case d.Type()&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(link, target)
		case d.Type().IsRegular():
			return copyFile(path, target, info)
		default:
			return fmt.Errorf("unsupported file type at %s", path)
		}
	})
	if err != nil {
		return serrors.FileSystemError("copy workspace", dst, err)
	}

	// Directory times last: writing children bumps them.
	for i := len(dirs) - 1; i >= 0; i-- {
		if err := os.Chtimes(dirs[i].path, dirs[i].mod, dirs[i].mod); err != nil {
			return serrors.FileSystemError("preserve directory time", dirs[i].path, err)
		}
	}
	return nil
}

// copyFile copies a single regular file, failing if dst already exists.
func copyFile(src, dst string, info fs.FileInfo) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = srcFile.Close()
	}()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("refusing to overwrite existing file %s", dst)
		}
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return err
	}
	if err := dstFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

// Remove deletes path recursively, tolerating already-missing trees.
func Remove(path string) error {
	if strings.TrimSpace(path) == "" {
		return serrors.InternalError("refusing to remove an empty path", nil)
	}
	if err := os.RemoveAll(path); err != nil {
		return serrors.FileSystemError("remove directory", path, err)
	}
	return nil
}
