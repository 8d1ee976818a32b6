package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codebank/codebank/internal/ir"
)

func TestIndent(t *testing.T) {
	assert.Equal(t, "    a\n    b", indent("a\nb", "    "))
	assert.Equal(t, "    a\n\n    b", indent("a\n\nb", "    "))
}

func TestCommentBlock(t *testing.T) {
	assert.Equal(t, "", commentBlock("", "//"))
	assert.Equal(t, "// line one\n// line two\n", commentBlock("line one\nline two", "//"))
}

func TestPlaceholderBraceUnit(t *testing.T) {
	withBody := ir.FunctionUnit{Signature: "pub fn a() -> i32", HasBody: true}
	assert.Equal(t, "pub fn a() -> i32 { ... }", placeholderBraceUnit(withBody))

	abstract := ir.FunctionUnit{Signature: "virtual void f() = 0;", HasBody: false}
	assert.Equal(t, "virtual void f() = 0;", placeholderBraceUnit(abstract))
}

func TestSummarizeMethodHolderBraceEmptyBody(t *testing.T) {
	got := summarizeMethodHolderBrace("Foo", "struct", nil, func(ir.FunctionUnit, Strategy) string { return "" }, Summary)
	assert.Equal(t, "struct Foo {}", got)
}
