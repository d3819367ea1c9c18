package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTargetPath(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "oct.sorted.csv"), DefaultTargetPath(filepath.Join("data", "oct.csv"), ".sorted.csv"))
	assert.Equal(t, filepath.Join("data", "oct.export.sorted.csv"), DefaultTargetPath(filepath.Join("data", "oct.export.xlsx"), ".sorted.csv"))
	assert.Equal(t, "noext.sorted.csv", DefaultTargetPath("noext", ".sorted.csv"))
}

func TestRequireFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	assert.NoError(t, RequireFile("source", path))
	assert.ErrorContains(t, RequireFile("source", filepath.Join(dir, "nope.csv")), "--source file not found")
	assert.ErrorContains(t, RequireFile("source", dir), "is a directory")

	assert.True(t, FileExists(path))
	assert.ErrorContains(t, RequireAbsent("target", path), "already exists")
	assert.NoError(t, RequireAbsent("target", filepath.Join(dir, "out.csv")))
}
