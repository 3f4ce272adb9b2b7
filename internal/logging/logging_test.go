package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLogs(t *testing.T, dir string, n int) {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < n; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%02d.log", i))
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
		mtime := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, mtime, mtime))
	}
}

func TestRotateLogs_DeletesOldest(t *testing.T) {
	dir := t.TempDir()
	writeLogs(t, dir, 5)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0644))

	require.NoError(t, rotateLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"03.log", "04.log", "keep.txt"}, names)
}

func TestRotateLogs_UnderLimit(t *testing.T) {
	dir := t.TempDir()
	writeLogs(t, dir, 2)

	require.NoError(t, rotateLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestInitialize_DisabledDiscards(t *testing.T) {
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvDebugFile, "")

	require.NoError(t, Initialize(false, "", DefaultMaxLogFiles))
	require.NotNil(t, Logger)
	Logger.Info("dropped")
}

func TestInitialize_DebugFile(t *testing.T) {
	t.Setenv(EnvDebug, "1")
	path := filepath.Join(t.TempDir(), "nested", "run.log")

	require.NoError(t, Initialize(false, path, DefaultMaxLogFiles))
	Logger.Info("hello", "key", "value")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"key":"value"`)
}
