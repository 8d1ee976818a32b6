package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codebank/codebank/internal/grammar"
	"github.com/codebank/codebank/internal/ir"
)

func TestCppExtractPureVirtualClassBecomesTrait(t *testing.T) {
	src := []byte(`class Shape {
public:
    virtual double area() const = 0;
};
`)
	registry := grammar.NewRegistry()
	defer registry.Close()
	ex, err := New(grammar.Cpp, registry)
	require.NoError(t, err)

	file, err := ex.Extract(context.Background(), "shape.hpp", src)
	require.NoError(t, err)

	require.Empty(t, file.Structs)
	require.Len(t, file.Traits, 1)
	shape := file.Traits[0]
	assert.Equal(t, "Shape", shape.Name)
	require.Len(t, shape.Methods, 1)
	assert.Equal(t, "virtual double area() const = 0;", shape.Methods[0].Signature)
	assert.False(t, shape.Methods[0].HasBody)
}

func TestCppExtractStructWithMethodsDefaultsPublicAccess(t *testing.T) {
	src := []byte(`struct Widget {
    void bar() {}
private:
    void hidden() {}
};
`)
	registry := grammar.NewRegistry()
	defer registry.Close()
	ex, err := New(grammar.Cpp, registry)
	require.NoError(t, err)

	file, err := ex.Extract(context.Background(), "widget.hpp", src)
	require.NoError(t, err)

	require.Empty(t, file.Traits)
	require.Len(t, file.Structs, 1)
	widget := file.Structs[0]
	require.Len(t, widget.Methods, 2)
	assert.Equal(t, "bar", widget.Methods[0].Name)
	assert.Equal(t, ir.Public, widget.Methods[0].Visibility)
	assert.Equal(t, "hidden", widget.Methods[1].Name)
	assert.Equal(t, ir.Private, widget.Methods[1].Visibility)
}

func TestCExtractFunctionAndStruct(t *testing.T) {
	src := []byte(`#include <stdio.h>

struct Point {
    int x;
    int y;
};

void greet(void) {
    printf("hi\n");
}
`)
	registry := grammar.NewRegistry()
	defer registry.Close()
	ex, err := New(grammar.C, registry)
	require.NoError(t, err)

	file, err := ex.Extract(context.Background(), "point.c", src)
	require.NoError(t, err)

	require.Len(t, file.Declares, 1)
	require.Len(t, file.Structs, 1)
	assert.Equal(t, "Point", file.Structs[0].Name)
	require.Len(t, file.Functions, 1)
	assert.Equal(t, "greet", file.Functions[0].Name)
}
