package format

import (
	"strings"

	"github.com/codebank/codebank/internal/grammar"
	"github.com/codebank/codebank/internal/ir"
)

// pythonRenderer implements the indentation-language placeholder ("..." on
// the signature's own line, or on its own line below a kept docstring) and
// Python's test markers (a `pytest` decorator,
// a function named `test_*`, a class named `Test*`) per spec §4.4.
type pythonRenderer struct{}

func (pythonRenderer) Language() grammar.Language { return grammar.Python }

func pythonIsTestFn(fn ir.FunctionUnit) bool {
	return attrsContainSubstring(fn.Attributes, "pytest") || strings.HasPrefix(fn.Name, "test_")
}

func pythonIsTestClass(s ir.StructUnit) bool {
	return strings.HasPrefix(s.Name, "Test")
}

func (r pythonRenderer) Render(file *ir.FileUnit, strategy Strategy) string {
	var blocks []string
	if strategy != Summary {
		if file.Document != "" {
			blocks = append(blocks, `"""`+file.Document+`"""`)
		}
		for _, d := range file.Declares {
			blocks = append(blocks, d.Source)
		}
	}
	for _, fn := range file.Functions {
		if b := r.renderFunction(fn, strategy); b != "" {
			blocks = append(blocks, b)
		}
	}
	for _, s := range file.Structs {
		if b := r.renderClass(s, strategy); b != "" {
			blocks = append(blocks, b)
		}
	}
	return joinBlocks(blocks)
}

func (r pythonRenderer) renderFunction(fn ir.FunctionUnit, strategy Strategy) string {
	switch strategy {
	case NoTests:
		if pythonIsTestFn(fn) {
			return ""
		}
		return fn.Source
	case Summary:
		if fn.Visibility != ir.Public {
			return ""
		}
		return pythonDecoratorPrefix(fn.Attributes) + pythonPlaceholder(fn)
	default:
		return fn.Source
	}
}

func pythonDecoratorPrefix(attrs []string) string {
	if len(attrs) == 0 {
		return ""
	}
	return strings.Join(attrs, "\n") + "\n"
}

func pythonPlaceholder(fn ir.FunctionUnit) string {
	if !fn.HasBody {
		return fn.Signature
	}
	if fn.Documentation == "" {
		return fn.Signature + " ..."
	}
	return fn.Signature + "\n    \"\"\"" + fn.Documentation + "\"\"\"\n    ..."
}

func (r pythonRenderer) renderClass(s ir.StructUnit, strategy Strategy) string {
	switch strategy {
	case NoTests:
		if pythonIsTestClass(s) {
			return ""
		}
		return stripSources(s.Source, testFunctionSpans(s.Methods, pythonIsTestFn))
	case Summary:
		if s.Visibility != ir.Public {
			return ""
		}
		return summarizeMethodHolderIndent(s.Name, s.Methods, r.renderFunction, strategy)
	default:
		return s.Source
	}
}
