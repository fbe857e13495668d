package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeWithFile(t *testing.T) {
	t.Setenv("WBMENU_DEBUG", "")
	t.Setenv("WBMENU_DEBUG_FILE", "")

	path := filepath.Join(t.TempDir(), "nested", "debug.log")

	require.NoError(t, Initialize(false, path, 0))
	Logger.Debug("hello", "answer", 42)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"answer":42`)
}

func TestInitializeDiscardsWithoutDebug(t *testing.T) {
	t.Setenv("WBMENU_DEBUG", "")
	t.Setenv("WBMENU_DEBUG_FILE", "")

	require.NoError(t, Initialize(false, "", 0))
	assert.NotNil(t, Logger)
	assert.False(t, Logger.Enabled(t.Context(), -8))
}

func TestRotateLogs(t *testing.T) {
	dir := t.TempDir()

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"a.log", "b.log", "c.log", "keep.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(name), 0644))
		modTime := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, modTime, modTime))
	}

	require.NoError(t, rotateLogs(dir, 2))

	_, err := os.Stat(filepath.Join(dir, "a.log"))
	assert.True(t, os.IsNotExist(err), "oldest log should be removed")

	_, err = os.Stat(filepath.Join(dir, "b.log"))
	assert.True(t, os.IsNotExist(err), "second oldest log should be removed to make room")

	assert.FileExists(t, filepath.Join(dir, "c.log"))
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
}
