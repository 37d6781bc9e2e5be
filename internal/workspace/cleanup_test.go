package workspace

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serrors "git.home.luguber.info/inful/scratch/internal/errors"
)

func newTestCleaner(t *testing.T) (*Cleaner, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c, err := NewCleaner(t.TempDir(), &out)
	require.NoError(t, err)
	return c, &out
}

func TestCleanTarget_FileInsideWorkspace(t *testing.T) {
	c, out := newTestCleaner(t)
	ws := filepath.Join(c.TempRoot, "scratch-py-abc")
	entry := filepath.Join(ws, "main.py")
	require.NoError(t, os.MkdirAll(ws, 0o755))
	require.NoError(t, os.WriteFile(entry, []byte("print('hi')\n"), 0o644))

	deleted, err := c.CleanTarget(entry)
	require.NoError(t, err)

	assert.Equal(t, ws, deleted)
	assert.False(t, Exists(ws))
	assert.Contains(t, out.String(), "Deleted scratch workspace: "+ws)
}

func TestCleanTarget_NotAWorkspace(t *testing.T) {
	c, _ := newTestCleaner(t)
	dir := filepath.Join(c.TempRoot, "not-scratch-abc")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	_, err := c.CleanTarget(dir)
	require.Error(t, err)
	assert.True(t, serrors.IsCategory(err, serrors.CategoryContainment))
	assert.Contains(t, err.Error(), "Target must point to a scratch workspace")
	assert.True(t, Exists(dir))
}

func TestCleanTarget_OutsideTempRoot(t *testing.T) {
	c, _ := newTestCleaner(t)
	outside := filepath.Join(filepath.Dir(c.TempRoot), "scratch-ts-elsewhere")

	_, err := c.CleanTarget(outside)
	require.Error(t, err)
	assert.True(t, serrors.IsCategory(err, serrors.CategoryContainment))
	assert.Contains(t, err.Error(), "Target must be inside your OS temp directory")
}

func TestCleanTarget_Missing(t *testing.T) {
	c, _ := newTestCleaner(t)
	ws := filepath.Join(c.TempRoot, "scratch-go-gone")

	_, err := c.CleanTarget(filepath.Join(ws, "main.go"))
	require.Error(t, err)
	assert.True(t, serrors.IsCategory(err, serrors.CategoryNotFound))
}

func TestCleanAll(t *testing.T) {
	c, out := newTestCleaner(t)
	first := filepath.Join(c.TempRoot, "scratch-py-a")
	second := filepath.Join(c.TempRoot, "scratch-ts-b")
	unrelated := filepath.Join(c.TempRoot, "not-scratch-c")
	nested := filepath.Join(unrelated, "scratch-go-nested")
	file := filepath.Join(c.TempRoot, "scratch-js-file")

	for _, dir := range []string{first, second, nested} {
		require.NoError(t, os.MkdirAll(dir, 0o755))
	}
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	count, err := c.CleanAll()
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	assert.False(t, Exists(first))
	assert.False(t, Exists(second))
	assert.True(t, Exists(unrelated))
	assert.True(t, Exists(nested))
	assert.True(t, Exists(file))
	assert.Contains(t, out.String(), "Deleted 2 scratch workspaces from: "+c.TempRoot)
}

func TestCleanAll_Nothing(t *testing.T) {
	c, out := newTestCleaner(t)
	require.NoError(t, os.MkdirAll(filepath.Join(c.TempRoot, "unrelated"), 0o755))

	count, err := c.CleanAll()
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, "No scratch workspaces found in: "+c.TempRoot+"\n", out.String())
}

func TestCleanAll_MissingRoot(t *testing.T) {
	c, err := NewCleaner(filepath.Join(t.TempDir(), "missing"), nil)
	require.NoError(t, err)

	_, err = c.CleanAll()
	require.Error(t, err)
	assert.True(t, serrors.IsCategory(err, serrors.CategoryFileSystem))
}
