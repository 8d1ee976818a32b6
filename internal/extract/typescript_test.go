package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codebank/codebank/internal/grammar"
	"github.com/codebank/codebank/internal/ir"
)

func TestTSExtractExportedClassMethodVisibility(t *testing.T) {
	src := []byte(`export class A {
    public m(x: number): number { return x; }
    private _h() {}
}
`)
	registry := grammar.NewRegistry()
	defer registry.Close()
	ex, err := New(grammar.TypeScript, registry)
	require.NoError(t, err)

	file, err := ex.Extract(context.Background(), "a.ts", src)
	require.NoError(t, err)

	require.Len(t, file.Structs, 1)
	a := file.Structs[0]
	assert.Equal(t, "A", a.Name)
	assert.Equal(t, ir.Public, a.Visibility)
	require.Len(t, a.Methods, 2)
	assert.Equal(t, ir.Public, a.Methods[0].Visibility)
	assert.Equal(t, ir.Private, a.Methods[1].Visibility)
}

func TestTSExtractUnexportedFunctionIsPrivate(t *testing.T) {
	src := []byte(`function helper() {}
`)
	registry := grammar.NewRegistry()
	defer registry.Close()
	ex, err := New(grammar.TypeScript, registry)
	require.NoError(t, err)

	file, err := ex.Extract(context.Background(), "a.ts", src)
	require.NoError(t, err)

	require.Len(t, file.Functions, 1)
	assert.Equal(t, ir.Private, file.Functions[0].Visibility)
}

func TestTSExtractObjectShapeTypeAliasIsTrait(t *testing.T) {
	src := []byte(`export type Shape = {
    area(): number;
}
`)
	registry := grammar.NewRegistry()
	defer registry.Close()
	ex, err := New(grammar.TypeScript, registry)
	require.NoError(t, err)

	file, err := ex.Extract(context.Background(), "a.ts", src)
	require.NoError(t, err)

	require.Empty(t, file.Structs)
	require.Len(t, file.Traits, 1)
	assert.Equal(t, "Shape", file.Traits[0].Name)
	assert.Equal(t, ir.Public, file.Traits[0].Visibility)
	require.Len(t, file.Traits[0].Methods, 1)
	assert.Equal(t, "area", file.Traits[0].Methods[0].Name)
}

func TestTSExtractNonObjectTypeAliasIsDropped(t *testing.T) {
	src := []byte(`export type Id = string | number;
`)
	registry := grammar.NewRegistry()
	defer registry.Close()
	ex, err := New(grammar.TypeScript, registry)
	require.NoError(t, err)

	file, err := ex.Extract(context.Background(), "a.ts", src)
	require.NoError(t, err)

	assert.Empty(t, file.Traits)
	assert.Empty(t, file.Structs)
}

func TestTSExtractAbstractClassAllAbstractMethodsIsTrait(t *testing.T) {
	src := []byte(`export abstract class Shape {
    abstract area(): number;
    abstract perimeter(): number;
}
`)
	registry := grammar.NewRegistry()
	defer registry.Close()
	ex, err := New(grammar.TypeScript, registry)
	require.NoError(t, err)

	file, err := ex.Extract(context.Background(), "a.ts", src)
	require.NoError(t, err)

	require.Empty(t, file.Structs)
	require.Len(t, file.Traits, 1)
	assert.Equal(t, "Shape", file.Traits[0].Name)
	require.Len(t, file.Traits[0].Methods, 2)
	assert.False(t, file.Traits[0].Methods[0].HasBody)
	assert.False(t, file.Traits[0].Methods[1].HasBody)
}

func TestTSExtractAbstractClassMixedMethodsIsStructWithAbstractBodyNone(t *testing.T) {
	src := []byte(`export abstract class Shape {
    abstract area(): number;
    describe(): string { return "shape"; }
}
`)
	registry := grammar.NewRegistry()
	defer registry.Close()
	ex, err := New(grammar.TypeScript, registry)
	require.NoError(t, err)

	file, err := ex.Extract(context.Background(), "a.ts", src)
	require.NoError(t, err)

	require.Empty(t, file.Traits)
	require.Len(t, file.Structs, 1)
	require.Len(t, file.Structs[0].Methods, 2)
	assert.Equal(t, "area", file.Structs[0].Methods[0].Name)
	assert.False(t, file.Structs[0].Methods[0].HasBody)
	assert.Equal(t, "describe", file.Structs[0].Methods[1].Name)
	assert.True(t, file.Structs[0].Methods[1].HasBody)
}
