package format

import (
	"strings"

	"github.com/codebank/codebank/internal/grammar"
	"github.com/codebank/codebank/internal/ir"
)

// cRenderer implements the brace-language placeholder body and the C/C++
// test marker: a function name beginning with TEST (covers both the TEST
// and TEST_F macro-generated function name conventions) per spec §4.4.
type cRenderer struct {
	cpp bool
}

func (r cRenderer) Language() grammar.Language {
	if r.cpp {
		return grammar.Cpp
	}
	return grammar.C
}

func cIsTestFn(name string) bool {
	return strings.HasPrefix(name, "TEST")
}

func cIsTestUnit(fn ir.FunctionUnit) bool { return cIsTestFn(fn.Name) }

func (r cRenderer) Render(file *ir.FileUnit, strategy Strategy) string {
	var blocks []string
	if strategy != Summary {
		for _, d := range file.Declares {
			blocks = append(blocks, d.Source)
		}
	}
	for _, m := range file.Modules {
		if b := r.renderNamespace(m, strategy); b != "" {
			blocks = append(blocks, b)
		}
	}
	for _, fn := range file.Functions {
		if b := r.renderFunction(fn, strategy); b != "" {
			blocks = append(blocks, b)
		}
	}
	for _, s := range file.Structs {
		if b := r.renderStruct(s, strategy); b != "" {
			blocks = append(blocks, b)
		}
	}
	for _, t := range file.Traits {
		if b := r.renderTrait(t, strategy); b != "" {
			blocks = append(blocks, b)
		}
	}
	return joinBlocks(blocks)
}

func (r cRenderer) renderFunction(fn ir.FunctionUnit, strategy Strategy) string {
	switch strategy {
	case NoTests:
		if cIsTestFn(fn.Name) {
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

func (r cRenderer) renderStruct(s ir.StructUnit, strategy Strategy) string {
	switch strategy {
	case NoTests:
		return stripSources(s.Source, testFunctionSpans(s.Methods, cIsTestUnit))
	case Summary:
		if s.Visibility != ir.Public {
			return ""
		}
		return commentBlock(s.Documentation, " *") + summarizeMethodHolderBrace(s.Name, "struct", s.Methods, r.renderFunction, strategy) + ";"
	default:
		return s.Source
	}
}

// renderTrait handles a C++ class made entirely of pure-virtual members
// (re-shaped into ir.TraitUnit by the extractor). Pure-virtual declarations
// have no body to begin with, so Summary emits them verbatim per spec §4.4's
// "abstract/signature-only declarations ... are emitted verbatim" rule —
// never appending the brace placeholder.
func (r cRenderer) renderTrait(t ir.TraitUnit, strategy Strategy) string {
	switch strategy {
	case NoTests:
		return t.Source
	case Summary:
		if t.Visibility != ir.Public {
			return ""
		}
		return commentBlock(t.Documentation, " *") + summarizeMethodHolderBrace(t.Name, "class", t.Methods, r.renderFunction, strategy) + ";"
	default:
		return t.Source
	}
}

func (r cRenderer) renderNamespace(m ir.ModuleUnit, strategy Strategy) string {
	switch strategy {
	case NoTests:
		var spans []string
		var collect func(ir.ModuleUnit)
		collect = func(mod ir.ModuleUnit) {
			spans = append(spans, testFunctionSpans(mod.Functions, cIsTestUnit)...)
			for _, s := range mod.Structs {
				spans = append(spans, testFunctionSpans(s.Methods, cIsTestUnit)...)
			}
			for _, sub := range mod.Submodules {
				collect(sub)
			}
		}
		collect(m)
		return stripSources(m.Source, spans)
	case Summary:
		var inner []string
		for _, fn := range m.Functions {
			if b := r.renderFunction(fn, strategy); b != "" {
				inner = append(inner, indent(b, "    "))
			}
		}
		for _, s := range m.Structs {
			if b := r.renderStruct(s, strategy); b != "" {
				inner = append(inner, indent(b, "    "))
			}
		}
		for _, t := range m.Traits {
			if b := r.renderTrait(t, strategy); b != "" {
				inner = append(inner, indent(b, "    "))
			}
		}
		for _, sub := range m.Submodules {
			if b := r.renderNamespace(sub, strategy); b != "" {
				inner = append(inner, indent(b, "    "))
			}
		}
		if len(inner) == 0 {
			return ""
		}
		return commentBlock(m.Documentation, " *") + "namespace " + m.Name + " {\n" + strings.Join(inner, "\n\n") + "\n}"
	default:
		return m.Source
	}
}
