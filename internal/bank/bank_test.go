package bank

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codebank/codebank/internal/format"
)

func TestGenerateEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	doc, err := Generate(context.Background(), dir, Options{Strategy: format.Default})
	assert.NoError(t, err)
	assert.Equal(t, "# Code Bank\n", doc)
}

func TestGenerateSkipsUnsupportedExtensions(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))

	doc, err := Generate(context.Background(), dir, Options{Strategy: format.Default})
	assert.NoError(t, err)
	assert.NotContains(t, doc, "notes.txt")
}

func TestGenerateIncludesManifestAndGoFile(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "Makefile"), []byte("build:\n\tgo build ./...\n"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n\nfunc Hello() {}\n"), 0o644))

	doc, err := Generate(context.Background(), dir, Options{Strategy: format.Default})
	assert.NoError(t, err)
	assert.Contains(t, doc, "```make")
	assert.Contains(t, doc, "## main.go")
	assert.Contains(t, doc, "func Hello() {}")
}

func TestGenerateHonorsGitignore(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("ignored.go\n"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.go"), []byte("package main\n"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "kept.go"), []byte("package main\n\nfunc Kept() {}\n"), 0o644))

	doc, err := Generate(context.Background(), dir, Options{Strategy: format.Default})
	assert.NoError(t, err)
	assert.NotContains(t, doc, "ignored.go")
	assert.Contains(t, doc, "kept.go")
}

func TestGenerateToFileWritesDocument(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n\nfunc Hello() {}\n"), 0o644))
	out := filepath.Join(t.TempDir(), "bank.md")

	err := GenerateToFile(context.Background(), dir, out, Options{Strategy: format.Default})
	assert.NoError(t, err)

	data, err := os.ReadFile(out)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "func Hello() {}")
}
