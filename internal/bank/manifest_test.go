package bank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindManifestAtRoot(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package]\nname = \"x\"\n"), 0o644))

	m, found, err := findManifest(dir)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "toml", m.FenceTag)
	assert.Contains(t, m.Contents, "[package]")
}

func TestFindManifestMakefileUsesMakeFenceTag(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "Makefile"), []byte("build:\n\tgo build ./...\n"), 0o644))

	m, found, err := findManifest(dir)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "make", m.FenceTag)
}

func TestFindManifestPrefersFixedOrder(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte("[tool]"), 0o644))

	m, found, err := findManifest(dir)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "toml", m.FenceTag)
}

func TestFindManifestStopsAtThreeParents(t *testing.T) {
	root := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(root, "Cargo.toml"), []byte("[package]"), 0o644))

	deep := filepath.Join(root, "a", "b", "c", "d")
	assert.NoError(t, os.MkdirAll(deep, 0o755))

	_, found, err := findManifest(deep)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestFindManifestNoneFound(t *testing.T) {
	dir := t.TempDir()
	_, found, err := findManifest(dir)
	assert.NoError(t, err)
	assert.False(t, found)
}
