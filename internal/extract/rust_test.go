package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codebank/codebank/internal/grammar"
	"github.com/codebank/codebank/internal/ir"
)

func TestRustExtractFunctionsAndVisibility(t *testing.T) {
	src := []byte(`use std::fmt;

/// Adds one.
pub fn a() -> i32 {
    1
}

fn b() {}
`)
	registry := grammar.NewRegistry()
	defer registry.Close()
	ex, err := New(grammar.Rust, registry)
	require.NoError(t, err)

	file, err := ex.Extract(context.Background(), "lib.rs", src)
	require.NoError(t, err)

	require.Len(t, file.Declares, 1)
	require.Len(t, file.Functions, 2)
	assert.Equal(t, "a", file.Functions[0].Name)
	assert.Equal(t, ir.Public, file.Functions[0].Visibility)
	assert.Equal(t, "Adds one.", file.Functions[0].Documentation)
	assert.Equal(t, "b", file.Functions[1].Name)
	assert.Equal(t, ir.Private, file.Functions[1].Visibility)
}

func TestRustExtractCfgTestModule(t *testing.T) {
	src := []byte(`#[cfg(test)]
mod tests {
    #[test]
    fn t() {}
}

pub fn keep() {}
`)
	registry := grammar.NewRegistry()
	defer registry.Close()
	ex, err := New(grammar.Rust, registry)
	require.NoError(t, err)

	file, err := ex.Extract(context.Background(), "lib.rs", src)
	require.NoError(t, err)

	require.Len(t, file.Modules, 1)
	assert.Equal(t, "tests", file.Modules[0].Name)
	assert.Contains(t, file.Modules[0].Attributes, "#[cfg(test)]")
	require.Len(t, file.Functions, 1)
	assert.Equal(t, "keep", file.Functions[0].Name)
}
