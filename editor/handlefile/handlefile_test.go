package handlefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadEnv_Priority(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env.example", "GLYPH_TEST_PRIORITY=example\n")
	writeFile(t, dir, ".env", "GLYPH_TEST_PRIORITY=env\n")
	writeFile(t, dir, ".env.local", "GLYPH_TEST_PRIORITY=local\n")
	t.Setenv("GLYPH_TEST_PRIORITY", "")
	os.Unsetenv("GLYPH_TEST_PRIORITY")

	path, err := LoadEnv(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".env.local"), path)
	assert.Equal(t, "local", os.Getenv("GLYPH_TEST_PRIORITY"))
}

func TestLoadEnv_FallsBackToExample(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env.example", "GLYPH_TEST_FALLBACK=example\n")
	t.Setenv("GLYPH_TEST_FALLBACK", "")
	os.Unsetenv("GLYPH_TEST_FALLBACK")

	path, err := LoadEnv(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".env.example"), path)
	assert.Equal(t, "example", os.Getenv("GLYPH_TEST_FALLBACK"))
}

func TestLoadEnv_DoesNotOverrideExisting(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "GLYPH_TEST_KEEP=file\n")
	t.Setenv("GLYPH_TEST_KEEP", "process")

	_, err := LoadEnv(dir)
	require.NoError(t, err)
	assert.Equal(t, "process", os.Getenv("GLYPH_TEST_KEEP"))
}

func TestLoadEnv_NoFiles(t *testing.T) {
	path, err := LoadEnv(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestGetProjectRoot(t *testing.T) {
	assert.NotEmpty(t, GetProjectRoot())
}
