package bank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeIgnoreFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadIgnoreMatcherMissingFileAlwaysPasses(t *testing.T) {
	m, err := loadIgnoreMatcher(filepath.Join(t.TempDir(), ".gitignore"))
	assert.NoError(t, err)
	assert.False(t, m.Matches("anything.go", false))
}

func TestIgnoreMatcherGlobAndDirOnly(t *testing.T) {
	path := writeIgnoreFile(t, "*.log\nbuild/\n# comment\n\n")
	m, err := loadIgnoreMatcher(path)
	assert.NoError(t, err)

	assert.True(t, m.Matches("debug.log", false))
	assert.False(t, m.Matches("debug.go", false))
	assert.True(t, m.Matches("build", true))
	assert.False(t, m.Matches("build", false))
}

func TestIgnoreMatcherNegation(t *testing.T) {
	path := writeIgnoreFile(t, "*.log\n!keep.log\n")
	m, err := loadIgnoreMatcher(path)
	assert.NoError(t, err)

	assert.True(t, m.Matches("debug.log", false))
	assert.False(t, m.Matches("keep.log", false))
}
