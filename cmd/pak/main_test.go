package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `
assets:
  app:
    file: app.js
    extension: js
public:
  - app
`

func chdir(t *testing.T, dir string) {
	t.Helper()
	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(originalWd)
	})
}

func TestRun_PackSuccess(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "pak.yaml"), []byte(testManifest), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "app.js"), []byte("let x = 1"), 0o600))
	chdir(t, tmpDir)

	os.Args = []string{"pak", "pack"}
	assert.Equal(t, 0, run())

	// The versioned output and the public index land under dist/.
	entries, err := os.ReadDir(filepath.Join(tmpDir, "dist"))
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestRun_MissingManifest(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	chdir(t, t.TempDir())

	os.Args = []string{"pak", "pack"}
	assert.Equal(t, 1, run())
}

func TestRun_Version(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"pak", "version"}
	assert.Equal(t, 0, run())
}
