package format

import (
	"github.com/codebank/codebank/internal/grammar"
	"github.com/codebank/codebank/internal/ir"
)

// tsRenderer implements the brace-language placeholder body and
// TypeScript/JavaScript's test marker: a decorator containing "Test". Per
// spec §4.4, a bare call-site name like test()/it()/describe() is a concern
// of the test runner, not this formatter, and is left untouched.
type tsRenderer struct {
	jsx bool
}

func (r tsRenderer) Language() grammar.Language {
	if r.jsx {
		return grammar.JavaScript
	}
	return grammar.TypeScript
}

func tsIsTestUnit(attrs []string) bool {
	return attrsContainSubstring(attrs, "Test")
}

func tsIsTestFn(fn ir.FunctionUnit) bool {
	return tsIsTestUnit(fn.Attributes)
}

func (r tsRenderer) Render(file *ir.FileUnit, strategy Strategy) string {
	var blocks []string
	if strategy != Summary {
		for _, d := range file.Declares {
			blocks = append(blocks, d.Source)
		}
	}
	for _, m := range file.Modules {
		if b := r.renderModule(m, strategy); b != "" {
			blocks = append(blocks, b)
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
	for _, t := range file.Traits {
		if b := r.renderInterface(t, strategy); b != "" {
			blocks = append(blocks, b)
		}
	}
	return joinBlocks(blocks)
}

func (r tsRenderer) renderFunction(fn ir.FunctionUnit, strategy Strategy) string {
	switch strategy {
	case NoTests:
		if tsIsTestFn(fn) {
			return ""
		}
		return fn.Source
	case Summary:
		if fn.Visibility != ir.Public {
			return ""
		}
		return commentBlock(fn.Documentation, " *") + placeholderBraceUnit(fn)
	default:
		return fn.Source
	}
}

func (r tsRenderer) renderClass(s ir.StructUnit, strategy Strategy) string {
	switch strategy {
	case NoTests:
		if tsIsTestUnit(s.Attributes) {
			return ""
		}
		return stripSources(s.Source, testFunctionSpans(s.Methods, tsIsTestFn))
	case Summary:
		if s.Visibility != ir.Public {
			return ""
		}
		return commentBlock(s.Documentation, " *") + summarizeMethodHolderBrace(s.Name, "class", s.Methods, r.renderFunction, strategy)
	default:
		return s.Source
	}
}

func (r tsRenderer) renderInterface(t ir.TraitUnit, strategy Strategy) string {
	switch strategy {
	case NoTests:
		return stripSources(t.Source, testFunctionSpans(t.Methods, tsIsTestFn))
	case Summary:
		if t.Visibility != ir.Public {
			return ""
		}
		return commentBlock(t.Documentation, " *") + summarizeMethodHolderBrace(t.Name, "interface", t.Methods, r.renderFunction, strategy)
	default:
		return t.Source
	}
}

// tsNestedTestSpans collects the verbatim Source of every test-tagged
// function or method reachable under m, so renderModule's NoTests case can
// strip them from the module's own verbatim Source.
func tsNestedTestSpans(m ir.ModuleUnit) []string {
	var spans []string
	spans = append(spans, testFunctionSpans(m.Functions, tsIsTestFn)...)
	for _, s := range m.Structs {
		spans = append(spans, testFunctionSpans(s.Methods, tsIsTestFn)...)
	}
	for _, t := range m.Traits {
		spans = append(spans, testFunctionSpans(t.Methods, tsIsTestFn)...)
	}
	for _, sub := range m.Submodules {
		spans = append(spans, tsNestedTestSpans(sub)...)
	}
	return spans
}

func (r tsRenderer) renderModule(m ir.ModuleUnit, strategy Strategy) string {
	switch strategy {
	case NoTests:
		return stripSources(m.Source, tsNestedTestSpans(m))
	case Summary:
		if m.Visibility != ir.Public {
			return ""
		}
		var inner []string
		for _, fn := range m.Functions {
			if b := r.renderFunction(fn, strategy); b != "" {
				inner = append(inner, indent(b, "  "))
			}
		}
		for _, s := range m.Structs {
			if b := r.renderClass(s, strategy); b != "" {
				inner = append(inner, indent(b, "  "))
			}
		}
		for _, t := range m.Traits {
			if b := r.renderInterface(t, strategy); b != "" {
				inner = append(inner, indent(b, "  "))
			}
		}
		if len(inner) == 0 {
			return ""
		}
		return commentBlock(m.Documentation, " *") + "namespace " + m.Name + " {\n" + joinBlocks(inner) + "\n}"
	default:
		return m.Source
	}
}
