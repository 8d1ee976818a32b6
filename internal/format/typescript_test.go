package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codebank/codebank/internal/grammar"
	"github.com/codebank/codebank/internal/ir"
)

func TestTSRenderSummaryFiltersPrivateMethods(t *testing.T) {
	file := &ir.FileUnit{
		Structs: []ir.StructUnit{
			{
				Name:       "A",
				Visibility: ir.Public,
				Source:     "export class A { public m(x: number): number { return x; } private _h() {} }",
				Methods: []ir.FunctionUnit{
					{Name: "m", Visibility: ir.Public, Signature: "m(x: number): number", HasBody: true},
					{Name: "_h", Visibility: ir.Private, Signature: "_h()", HasBody: true},
				},
			},
		},
	}
	got := tsRenderer{}.Render(file, Summary)
	assert.Contains(t, got, "m(x: number): number { ... }")
	assert.NotContains(t, got, "_h")
}

func TestTSLanguageSelection(t *testing.T) {
	assert.Equal(t, grammar.TypeScript, tsRenderer{jsx: false}.Language())
	assert.Equal(t, grammar.JavaScript, tsRenderer{jsx: true}.Language())
}

func TestTSIsTestUnit(t *testing.T) {
	assert.True(t, tsIsTestUnit([]string{"@Test"}))
	assert.False(t, tsIsTestUnit([]string{"@Override"}))
}

func TestTSRenderNoTestsStripsNestedTestDecoratedMethod(t *testing.T) {
	file := &ir.FileUnit{
		Structs: []ir.StructUnit{
			{
				Name:   "Widget",
				Source: "class Widget {\n    bar() {}\n\n    @Test\n    checksBar() {}\n}",
				Methods: []ir.FunctionUnit{
					{Name: "bar", Source: "bar() {}"},
					{Name: "checksBar", Attributes: []string{"@Test"}, Source: "@Test\n    checksBar() {}"},
				},
			},
		},
	}
	got := tsRenderer{}.Render(file, NoTests)
	assert.Equal(t, "class Widget {\n    bar() {}\n}", got)
	assert.NotContains(t, got, "@Test")
}
