package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	root := t.TempDir()
	ws := filepath.Join(root, "scratch-py-abc123")
	nested := filepath.Join(ws, "pkg", "deep", "deeper", "main.py")
	require.NoError(t, os.MkdirAll(filepath.Dir(nested), 0o755))
	require.NoError(t, os.WriteFile(nested, []byte("print(1)\n"), 0o600))

	other := filepath.Join(root, "not-scratch-dir")
	require.NoError(t, os.MkdirAll(other, 0o755))

	t.Run("workspace root", func(t *testing.T) {
		got, ok := Find(ws, root)
		require.True(t, ok)
		assert.Equal(t, ws, got)
	})

	t.Run("nested file", func(t *testing.T) {
		got, ok := Find(nested, root)
		require.True(t, ok)
		assert.Equal(t, ws, got)
	})

	t.Run("nested directory", func(t *testing.T) {
		got, ok := Find(filepath.Dir(nested), root)
		require.True(t, ok)
		assert.Equal(t, ws, got)
	})

	t.Run("path need not exist", func(t *testing.T) {
		got, ok := Find(filepath.Join(ws, "gone", "file.txt"), root)
		require.True(t, ok)
		assert.Equal(t, ws, got)
	})

	t.Run("non matching sibling", func(t *testing.T) {
		_, ok := Find(other, root)
		assert.False(t, ok)
	})

	t.Run("temp root itself", func(t *testing.T) {
		_, ok := Find(root, root)
		assert.False(t, ok)
	})

	t.Run("outside temp root", func(t *testing.T) {
		_, ok := Find(filepath.Dir(root), root)
		assert.False(t, ok)
	})
}

func TestFind_DoesNotEscapeTempRoot(t *testing.T) {
	// A matching ancestor above the temp root must not be returned.
	outer := filepath.Join(t.TempDir(), "scratch-ts-outer")
	root := filepath.Join(outer, "tmp")
	target := filepath.Join(root, "plain", "file.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))

	_, ok := Find(target, root)
	assert.False(t, ok)
}

func TestFind_NearestAncestorWins(t *testing.T) {
	root := t.TempDir()
	outer := filepath.Join(root, "scratch-go-outer")
	inner := filepath.Join(outer, "scratch-ts-inner")
	file := filepath.Join(inner, "index.ts")

	got, ok := Find(file, root)
	require.True(t, ok)
	assert.Equal(t, inner, got)
}
