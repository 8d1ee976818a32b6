package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codebank/codebank/internal/ir"
)

func TestGoRenderNoTestsDropsTestFunction(t *testing.T) {
	file := &ir.FileUnit{
		Path: "foo_test.go",
		Functions: []ir.FunctionUnit{
			{Name: "TestX", Source: "func TestX(t *testing.T) {}"},
			{Name: "Helper", Source: "func Helper() {}"},
		},
	}
	got := goRenderer{}.Render(file, NoTests)
	assert.Equal(t, "func Helper() {}", got)
}

func TestGoIsTestFnRequiresTestFileSuffix(t *testing.T) {
	assert.True(t, goIsTestFn("TestX", "foo_test.go"))
	assert.False(t, goIsTestFn("TestX", "foo.go"))
	assert.False(t, goIsTestFn("Regular", "foo_test.go"))
	assert.True(t, goIsTestFn("BenchmarkX", "foo_test.go"))
	assert.True(t, goIsTestFn("ExampleX", "foo_test.go"))
}

func TestGoRenderSummaryStruct(t *testing.T) {
	file := &ir.FileUnit{
		Structs: []ir.StructUnit{
			{
				Name:       "Widget",
				Visibility: ir.Public,
				Methods: []ir.FunctionUnit{
					{Name: "Do", Visibility: ir.Public, Signature: "func (w *Widget) Do()", HasBody: true},
					{Name: "hidden", Visibility: ir.Private, Signature: "func (w *Widget) hidden()", HasBody: true},
				},
			},
		},
	}
	got := goRenderer{}.Render(file, Summary)
	assert.Contains(t, got, "type Widget struct {}")
	assert.Contains(t, got, "func (w *Widget) Do() { ... }")
	assert.NotContains(t, got, "hidden")
}
