package format

import (
	"strings"

	"github.com/codebank/codebank/internal/grammar"
	"github.com/codebank/codebank/internal/ir"
)

// goRenderer implements the brace-language placeholder body and Go's test
// marker: a top-level function named Test/Benchmark/Example-prefixed, in a
// file whose path ends _test.go, per spec §4.4.
type goRenderer struct{}

func (goRenderer) Language() grammar.Language { return grammar.Go }

func goIsTestFn(name, path string) bool {
	if !strings.HasSuffix(path, "_test.go") {
		return false
	}
	for _, prefix := range []string{"Test", "Benchmark", "Example"} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func (r goRenderer) Render(file *ir.FileUnit, strategy Strategy) string {
	var blocks []string
	if strategy != Summary {
		for _, d := range file.Declares {
			blocks = append(blocks, d.Source)
		}
	}
	for _, fn := range file.Functions {
		if b := r.renderFunction(fn, file.Path, strategy); b != "" {
			blocks = append(blocks, b)
		}
	}
	for _, s := range file.Structs {
		if b := r.renderStruct(s, file.Path, strategy); b != "" {
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

func (r goRenderer) renderFunction(fn ir.FunctionUnit, path string, strategy Strategy) string {
	switch strategy {
	case NoTests:
		if goIsTestFn(fn.Name, path) {
			return ""
		}
		return fn.Source
	case Summary:
		if fn.Visibility != ir.Public {
			return ""
		}
		return commentBlock(fn.Documentation, "//") + placeholderBraceUnit(fn)
	default:
		return fn.Source
	}
}

func (r goRenderer) renderStruct(s ir.StructUnit, path string, strategy Strategy) string {
	switch strategy {
	case Summary:
		if s.Visibility != ir.Public {
			return ""
		}
		var kept []string
		for _, m := range s.Methods {
			if b := r.renderFunction(m, path, strategy); b != "" {
				kept = append(kept, b)
			}
		}
		header := "type " + s.Name + " struct {}"
		body := commentBlock(s.Documentation, "//") + header
		if len(kept) > 0 {
			body += "\n\n" + strings.Join(kept, "\n\n")
		}
		return body
	default:
		// Methods are separate declarations in Go, not part of the type
		// declaration's Source, so each is emitted after it.
		parts := []string{s.Source}
		for _, m := range s.Methods {
			parts = append(parts, m.Source)
		}
		return joinBlocks(parts)
	}
}

func (r goRenderer) renderInterface(t ir.TraitUnit, strategy Strategy) string {
	switch strategy {
	case NoTests:
		return t.Source
	case Summary:
		if t.Visibility != ir.Public {
			return ""
		}
		var kept []string
		for _, m := range t.Methods {
			if m.Visibility != ir.Public {
				continue
			}
			kept = append(kept, indent(commentBlock(m.Documentation, "//")+m.Signature, "\t"))
		}
		header := "type " + t.Name + " interface {"
		if len(kept) == 0 {
			return commentBlock(t.Documentation, "//") + header + "}"
		}
		return commentBlock(t.Documentation, "//") + header + "\n" + strings.Join(kept, "\n") + "\n}"
	default:
		return t.Source
	}
}
