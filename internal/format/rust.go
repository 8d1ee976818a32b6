package format

import (
	"strings"

	"github.com/codebank/codebank/internal/grammar"
	"github.com/codebank/codebank/internal/ir"
)

// rustRenderer implements the brace-language placeholder body (" { ... }")
// and Rust's test markers (#[test], #[tokio::test], a #[cfg(test)] module)
// per spec §4.4.
type rustRenderer struct{}

func (rustRenderer) Language() grammar.Language { return grammar.Rust }

func rustIsTestFn(fn ir.FunctionUnit) bool {
	return attrsContainToken(fn.Attributes, "test")
}

func rustIsTestModule(m ir.ModuleUnit) bool {
	return attrsContainToken(m.Attributes, "test")
}

func (r rustRenderer) Render(file *ir.FileUnit, strategy Strategy) string {
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
		if b := r.renderStruct(s, strategy); b != "" {
			blocks = append(blocks, b)
		}
	}
	for _, t := range file.Traits {
		if b := r.renderTrait(t, strategy); b != "" {
			blocks = append(blocks, b)
		}
	}
	for _, i := range file.Impls {
		if b := r.renderImpl(i, strategy); b != "" {
			blocks = append(blocks, b)
		}
	}
	return joinBlocks(blocks)
}

func (r rustRenderer) renderFunction(fn ir.FunctionUnit, strategy Strategy) string {
	switch strategy {
	case NoTests:
		if rustIsTestFn(fn) {
			return ""
		}
		return fn.Source
	case Summary:
		if fn.Visibility != ir.Public {
			return ""
		}
		return commentBlock(fn.Documentation, "///") + placeholderBraceUnit(fn)
	default:
		return fn.Source
	}
}

func (r rustRenderer) renderStruct(s ir.StructUnit, strategy Strategy) string {
	switch strategy {
	case NoTests:
		return stripSources(s.Source, testFunctionSpans(s.Methods, rustIsTestFn))
	case Summary:
		if s.Visibility != ir.Public {
			return ""
		}
		return commentBlock(s.Documentation, "///") + summarizeMethodHolderBrace(s.Name, "struct", s.Methods, r.renderFunction, strategy)
	default:
		return s.Source
	}
}

func (r rustRenderer) renderTrait(t ir.TraitUnit, strategy Strategy) string {
	switch strategy {
	case NoTests:
		return stripSources(t.Source, testFunctionSpans(t.Methods, rustIsTestFn))
	case Summary:
		if t.Visibility != ir.Public {
			return ""
		}
		return commentBlock(t.Documentation, "///") + summarizeMethodHolderBrace(t.Name, "trait", t.Methods, r.renderFunction, strategy)
	default:
		return t.Source
	}
}

func (r rustRenderer) renderImpl(i ir.ImplUnit, strategy Strategy) string {
	switch strategy {
	case NoTests:
		return stripSources(i.Source, testFunctionSpans(i.Methods, rustIsTestFn))
	case Summary:
		var kept []string
		for _, m := range i.Methods {
			if b := r.renderFunction(m, strategy); b != "" {
				kept = append(kept, indent(b, "    "))
			}
		}
		if len(kept) == 0 {
			return ""
		}
		header := "impl " + i.TypeName
		if i.TraitName != "" {
			header = "impl " + i.TraitName + " for " + i.TypeName
		}
		return commentBlock(i.Documentation, "///") + header + " {\n" + strings.Join(kept, "\n\n") + "\n}"
	default:
		return i.Source
	}
}

// rustNestedTestSpans collects the verbatim Source of every test-tagged
// unit reachable under m, at any depth, so renderModule's NoTests case can
// strip them from the module's own verbatim Source. A nested test module is
// removed whole; everything else's individual test methods are removed one
// at a time, leaving the rest of the container's formatting untouched.
func rustNestedTestSpans(m ir.ModuleUnit) []string {
	var spans []string
	spans = append(spans, testFunctionSpans(m.Functions, rustIsTestFn)...)
	for _, s := range m.Structs {
		spans = append(spans, testFunctionSpans(s.Methods, rustIsTestFn)...)
	}
	for _, t := range m.Traits {
		spans = append(spans, testFunctionSpans(t.Methods, rustIsTestFn)...)
	}
	for _, i := range m.Impls {
		spans = append(spans, testFunctionSpans(i.Methods, rustIsTestFn)...)
	}
	for _, sub := range m.Submodules {
		if rustIsTestModule(sub) {
			spans = append(spans, sub.Source)
			continue
		}
		spans = append(spans, rustNestedTestSpans(sub)...)
	}
	return spans
}

func (r rustRenderer) renderModule(m ir.ModuleUnit, strategy Strategy) string {
	if strategy == NoTests && rustIsTestModule(m) {
		return ""
	}
	switch strategy {
	case NoTests:
		return stripSources(m.Source, rustNestedTestSpans(m))
	case Summary:
		if m.Visibility != ir.Public {
			return ""
		}
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
			if b := r.renderModule(sub, strategy); b != "" {
				inner = append(inner, indent(b, "    "))
			}
		}
		if len(inner) == 0 {
			return ""
		}
		return commentBlock(m.Documentation, "///") + "mod " + m.Name + " {\n" + strings.Join(inner, "\n\n") + "\n}"
	default:
		return m.Source
	}
}
