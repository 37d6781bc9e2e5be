package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/scratch/internal/language"
)

func TestMatchesName(t *testing.T) {
	assert.True(t, MatchesName("scratch-ts-abc"))
	assert.True(t, MatchesName("scratch-cpp-123"))
	assert.True(t, MatchesName("scratch-java-x"))
	assert.True(t, MatchesName("scratch-py-20260219-150405"))

	assert.False(t, MatchesName("scratch-rb-abc"))
	assert.False(t, MatchesName("scratch-ts"))
	assert.False(t, MatchesName("not-scratch-ts-abc"))
	assert.False(t, MatchesName("scratch-clean-all-1"))
}

func TestLanguageOf(t *testing.T) {
	l, ok := LanguageOf("scratch-cpp-abc")
	require.True(t, ok)
	assert.Equal(t, language.CPP, l)

	_, ok = LanguageOf("scratch-rb-abc")
	assert.False(t, ok)
}

func TestManager_CreateEveryLanguage(t *testing.T) {
	root := t.TempDir()
	mgr := NewManager(root)
	assert.Equal(t, root, mgr.TempRoot())

	for _, lang := range language.All {
		t.Run(string(lang), func(t *testing.T) {
			ws, err := mgr.Create(lang)
			require.NoError(t, err)

			assert.Equal(t, lang, ws.Language)
			assert.Equal(t, root, filepath.Dir(ws.Path))
			assert.True(t, MatchesName(filepath.Base(ws.Path)))
			assert.Regexp(t, `^scratch-`+string(lang)+`-`, filepath.Base(ws.Path))
			assert.True(t, ws.Exists())

			entries, err := os.ReadDir(ws.Path)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestManager_CreateIsUnique(t *testing.T) {
	mgr := NewManager(t.TempDir())
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		ws, err := mgr.Create(language.Python)
		require.NoError(t, err)
		assert.False(t, seen[ws.Path], "duplicate workspace %s", ws.Path)
		seen[ws.Path] = true
	}
}

func TestManager_CreateRejectsUnknownLanguage(t *testing.T) {
	_, err := NewManager(t.TempDir()).Create(language.Language("rb"))
	require.Error(t, err)
}

func TestWorkspace_Remove(t *testing.T) {
	ws, err := NewManager(t.TempDir()).Create(language.Go)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(ws.Path, "main.go"), []byte("package main\n"), 0o600))

	require.NoError(t, ws.Remove())
	assert.False(t, ws.Exists())

	// Removing twice is fine.
	require.NoError(t, ws.Remove())
}
