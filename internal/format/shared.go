package format

import (
	"strings"

	"github.com/codebank/codebank/internal/ir"
)

// indent prefixes every non-empty line of s with prefix.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l == "" {
			continue
		}
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// commentBlock renders doc as a block of linePrefix-marked comment lines,
// one per line of doc, or "" if doc is empty. The caller appends the
// returned block directly above the unit's rendered body.
func commentBlock(doc, linePrefix string) string {
	if doc == "" {
		return ""
	}
	lines := strings.Split(doc, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(linePrefix+" "+l, " ")
	}
	return strings.Join(lines, "\n") + "\n"
}

// placeholderBraceUnit renders a brace-language function under Summary: its
// signature followed by " { ... }", or the signature verbatim when the
// function never had a body (abstract/interface member).
func placeholderBraceUnit(fn ir.FunctionUnit) string {
	if !fn.HasBody {
		return fn.Signature
	}
	return fn.Signature + " { ... }"
}

// placeholderIndentUnit renders an indentation-language function (Python)
// under Summary: its signature with " ..." appended on the same line.
func placeholderIndentUnit(fn ir.FunctionUnit) string {
	if !fn.HasBody {
		return fn.Signature
	}
	return fn.Signature + " ..."
}

// summarizeMethodHolderIndent renders an indentation-language class's
// Summary body. An empty surviving method set still renders, using the "..."
// stub-file placeholder body Python tooling already uses for this exact
// situation.
func summarizeMethodHolderIndent(name string, methods []ir.FunctionUnit, renderFn func(ir.FunctionUnit, Strategy) string, strategy Strategy) string {
	var kept []string
	for _, m := range methods {
		if b := renderFn(m, strategy); b != "" {
			kept = append(kept, indent(b, "    "))
		}
	}
	header := "class " + name + ":"
	if len(kept) == 0 {
		return header + "\n    ..."
	}
	return header + "\n" + strings.Join(kept, "\n\n")
}

// testFunctionSpans returns the verbatim Source of every method isTest
// flags, for stripSources to delete from a container's NoTests rendering.
func testFunctionSpans(methods []ir.FunctionUnit, isTest func(ir.FunctionUnit) bool) []string {
	var spans []string
	for _, m := range methods {
		if isTest(m) {
			spans = append(spans, m.Source)
		}
	}
	return spans
}

// stripSources removes each span from source (first occurrence of each),
// together with the whitespace and blank lines directly before it, then
// collapses any resulting run of blank lines down to one. A container
// not itself tagged a test (so rendered via its verbatim Source) still must
// not let a nested test-tagged unit survive inside that text — spec §8's
// "no unit tagged a test appears anywhere in the text" binds at every
// nesting depth, not just the top level.
func stripSources(source string, spans []string) string {
	if len(spans) == 0 {
		return source
	}
	out := source
	for _, span := range spans {
		if span == "" {
			continue
		}
		i := strings.Index(out, span)
		if i < 0 {
			continue
		}
		start := i
		for start > 0 && strings.ContainsRune(" \t\n", rune(out[start-1])) {
			start--
		}
		out = out[:start] + out[i+len(span):]
	}
	for strings.Contains(out, "\n\n\n") {
		out = strings.ReplaceAll(out, "\n\n\n", "\n\n")
	}
	return strings.TrimRight(out, " \t\n")
}

// summarizeMethodHolderBrace renders a struct/trait/class's Summary body:
// keyword name, then its surviving methods braced and indented. Per spec
// §4.4 a struct/trait with zero surviving methods still renders its
// (empty) body — only ImplUnit suppresses itself when empty.
func summarizeMethodHolderBrace(name, keyword string, methods []ir.FunctionUnit, renderFn func(ir.FunctionUnit, Strategy) string, strategy Strategy) string {
	var kept []string
	for _, m := range methods {
		if b := renderFn(m, strategy); b != "" {
			kept = append(kept, indent(b, "    "))
		}
	}
	header := strings.TrimSpace(keyword + " " + name)
	if len(kept) == 0 {
		return header + " {}"
	}
	return header + " {\n" + strings.Join(kept, "\n\n") + "\n}"
}
