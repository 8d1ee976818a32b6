package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCmdPrintsDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n\nfunc Hello() {}\n"), 0o644))

	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	generateCmd.SetOut(&out)
	generateCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"generate", dir, "default"})
	err := rootCmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, out.String(), "func Hello() {}")
}

func TestGenerateOptionsRejectsUnknownStrategy(t *testing.T) {
	_, err := generateOptions(generateCmd, "bogus")
	assert.Error(t, err)
}
