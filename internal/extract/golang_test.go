package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codebank/codebank/internal/grammar"
)

func TestGoExtractFunctionsAndMethods(t *testing.T) {
	src := []byte(`package demo

import "fmt"

// Greet prints a greeting.
func Greet(name string) {
	fmt.Println("hello", name)
}

type Widget struct {
	Size int
}

// Do performs the widget's action.
func (w *Widget) Do() {
}

func (w *Widget) hidden() {
}
`)
	registry := grammar.NewRegistry()
	defer registry.Close()
	ex, err := New(grammar.Go, registry)
	require.NoError(t, err)

	file, err := ex.Extract(context.Background(), "demo.go", src)
	require.NoError(t, err)

	require.Len(t, file.Declares, 1)
	require.Len(t, file.Functions, 1)
	assert.Equal(t, "Greet", file.Functions[0].Name)
	assert.Equal(t, "Greet prints a greeting.", file.Functions[0].Documentation)

	require.Len(t, file.Structs, 1)
	widget := file.Structs[0]
	assert.Equal(t, "Widget", widget.Name)
	require.Len(t, widget.Methods, 2)
	assert.Equal(t, "Do", widget.Methods[0].Name)
	assert.Equal(t, "hidden", widget.Methods[1].Name)
}

func TestGoExtractInterface(t *testing.T) {
	src := []byte(`package demo

type Runner interface {
	Run() error
}
`)
	registry := grammar.NewRegistry()
	defer registry.Close()
	ex, err := New(grammar.Go, registry)
	require.NoError(t, err)

	file, err := ex.Extract(context.Background(), "demo.go", src)
	require.NoError(t, err)

	require.Len(t, file.Traits, 1)
	assert.Equal(t, "Runner", file.Traits[0].Name)
	require.Len(t, file.Traits[0].Methods, 1)
	assert.Equal(t, "Run", file.Traits[0].Methods[0].Name)
}
