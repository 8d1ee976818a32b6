package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codebank/codebank/internal/ir"
)

func TestRustRenderSummaryKeepsOnlyPublicFunctions(t *testing.T) {
	file := &ir.FileUnit{
		Functions: []ir.FunctionUnit{
			{Name: "a", Visibility: ir.Public, Signature: "pub fn a() -> i32", HasBody: true, Source: "pub fn a() -> i32 { 1 }"},
			{Name: "b", Visibility: ir.Private, Signature: "fn b()", HasBody: true, Source: "fn b() {}"},
		},
	}
	got := rustRenderer{}.Render(file, Summary)
	assert.Equal(t, "pub fn a() -> i32 { ... }", got)
}

func TestRustRenderNoTestsDropsCfgTestModule(t *testing.T) {
	file := &ir.FileUnit{
		Modules: []ir.ModuleUnit{
			{
				Name:       "tests",
				Attributes: []string{"#[cfg(test)]"},
				Source:     "mod tests {\n    #[test]\n    fn t() {}\n}",
			},
		},
		Functions: []ir.FunctionUnit{
			{Name: "keep", Visibility: ir.Public, Source: "pub fn keep() {}"},
		},
	}
	got := rustRenderer{}.Render(file, NoTests)
	assert.Equal(t, "pub fn keep() {}", got)
	assert.NotContains(t, got, "mod tests")
}

func TestRustRenderDefaultIsByteForByte(t *testing.T) {
	file := &ir.FileUnit{
		Functions: []ir.FunctionUnit{
			{Name: "a", Source: "pub fn a() -> i32 { 1 }"},
		},
	}
	assert.Equal(t, "pub fn a() -> i32 { 1 }", rustRenderer{}.Render(file, Default))
}

func TestRustRenderNoTestsStripsNestedTestMethodFromImpl(t *testing.T) {
	file := &ir.FileUnit{
		Impls: []ir.ImplUnit{
			{
				TypeName: "Foo",
				Source:   "impl Foo {\n    fn bar() {}\n\n    #[test]\n    fn t() {}\n}",
				Methods: []ir.FunctionUnit{
					{Name: "bar", Source: "fn bar() {}"},
					{Name: "t", Attributes: []string{"#[test]"}, Source: "#[test]\n    fn t() {}"},
				},
			},
		},
	}
	got := rustRenderer{}.Render(file, NoTests)
	assert.Equal(t, "impl Foo {\n    fn bar() {}\n}", got)
	assert.NotContains(t, got, "#[test]")
}

func TestRustRenderNoTestsStripsNestedTestMethodFromNestedModule(t *testing.T) {
	file := &ir.FileUnit{
		Modules: []ir.ModuleUnit{
			{
				Name:   "outer",
				Source: "mod outer {\n    struct Widget;\n\n    impl Widget {\n        fn bar(&self) {}\n\n        #[test]\n        fn t(&self) {}\n    }\n}",
				Structs: []ir.StructUnit{
					{Name: "Widget", Source: "struct Widget;"},
				},
				Impls: []ir.ImplUnit{
					{
						TypeName: "Widget",
						Source:   "impl Widget {\n        fn bar(&self) {}\n\n        #[test]\n        fn t(&self) {}\n    }",
						Methods: []ir.FunctionUnit{
							{Name: "bar", Source: "fn bar(&self) {}"},
							{Name: "t", Attributes: []string{"#[test]"}, Source: "#[test]\n        fn t(&self) {}"},
						},
					},
				},
			},
		},
	}
	got := rustRenderer{}.Render(file, NoTests)
	assert.NotContains(t, got, "#[test]")
	assert.Contains(t, got, "fn bar(&self) {}")
}

func TestRustImplSummaryOmittedWhenEmpty(t *testing.T) {
	file := &ir.FileUnit{
		Impls: []ir.ImplUnit{
			{TypeName: "Foo", Methods: []ir.FunctionUnit{
				{Name: "bar", Visibility: ir.Private, Source: "fn bar() {}"},
			}},
		},
	}
	assert.Equal(t, "", rustRenderer{}.Render(file, Summary))
}
