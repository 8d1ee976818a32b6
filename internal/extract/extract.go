// Package extract drives the tree-sitter grammar adapters over a byte
// buffer and populates ir.FileUnit. One file in this package per supported
// language; the shared helpers here (CRLF/BOM normalization, attribute
// collection, doc-comment stripping) are grounded on the doc-comment
// handling in the teacher's graph/java/parse_javadoc.go, generalized past
// Javadoc to every doc-comment convention the spec names.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codebank/codebank/internal/grammar"
	"github.com/codebank/codebank/internal/ir"
)

// EncodingError signals that a file was not valid UTF-8.
type EncodingError struct {
	Path string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("extract: %s is not valid UTF-8", e.Path)
}

// Extractor is the capability set every per-language extractor implements:
// extract(path, bytes) -> FileUnit, plus a language tag for dispatch.
type Extractor interface {
	Language() grammar.Language
	Extract(ctx context.Context, path string, source []byte) (*ir.FileUnit, error)
}

// New returns the Extractor for l, backed by registry's cached Adapter.
func New(l grammar.Language, registry *grammar.Registry) (Extractor, error) {
	adapter, err := registry.Adapter(l)
	if err != nil {
		return nil, err
	}
	switch l {
	case grammar.Rust:
		return &rustExtractor{adapter: adapter}, nil
	case grammar.Python:
		return &pythonExtractor{adapter: adapter}, nil
	case grammar.TypeScript, grammar.JavaScript:
		return &tsExtractor{adapter: adapter, jsx: l == grammar.JavaScript}, nil
	case grammar.Go:
		return &goExtractor{adapter: adapter}, nil
	case grammar.C, grammar.Cpp:
		return &cExtractor{adapter: adapter, cpp: l == grammar.Cpp}, nil
	default:
		return nil, fmt.Errorf("extract: unsupported language %v", l)
	}
}

// Normalize strips a leading UTF-8 BOM and rewrites CRLF line endings to LF.
// Implements the CRLF/BOM handling the spec leaves unspecified (see
// SPEC_FULL.md "Supplemented behavior"). Returns an EncodingError if source
// is not valid UTF-8 once the BOM is stripped.
func Normalize(path string, source []byte) ([]byte, error) {
	source = bytes.TrimPrefix(source, []byte{0xEF, 0xBB, 0xBF})
	source = bytes.ReplaceAll(source, []byte("\r\n"), []byte("\n"))
	if !utf8.Valid(source) {
		return nil, &EncodingError{Path: path}
	}
	return source, nil
}

// childrenOf returns every direct child of node.
func childrenOf(node *sitter.Node) []*sitter.Node {
	n := int(node.ChildCount())
	out := make([]*sitter.Node, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, node.Child(i))
	}
	return out
}

// namedChildrenOf returns every named (non-anonymous) direct child of node.
func namedChildrenOf(node *sitter.Node) []*sitter.Node {
	n := int(node.NamedChildCount())
	out := make([]*sitter.Node, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, node.NamedChild(i))
	}
	return out
}

// content returns node's verbatim source text.
func content(node *sitter.Node, source []byte) string {
	return node.Content(source)
}

// collectAttributes walks backwards from node collecting contiguous
// decorator/annotation siblings of the given type names, in source order.
// Matches the teacher's other_examples rust parser's collectAttributes,
// generalized to an arbitrary set of attribute node types so every
// language's extractor can reuse it.
func collectAttributes(node *sitter.Node, source []byte, attrTypes map[string]bool) []string {
	var attrs []string
	current := node.PrevSibling()
	for current != nil && attrTypes[current.Type()] {
		attrs = append([]string{content(current, source)}, attrs...)
		current = current.PrevSibling()
	}
	return attrs
}

// precedingDocComment walks backwards from node over attribute siblings
// (which do not break a doc block, per spec §9) looking for a contiguous
// run of doc-comment nodes, stopping at the first blank-line break or
// non-doc sibling. commentTypes names the doc-comment node type(s) for the
// language; attrTypes names attribute/decorator node types to skip over.
func precedingDocComment(node *sitter.Node, source []byte, commentTypes, attrTypes map[string]bool, isDoc func(string) bool) string {
	current := node.PrevSibling()
	// Skip over attributes immediately above the item; they attach to the
	// item, the doc comment (if any) stays above them.
	for current != nil && attrTypes[current.Type()] {
		current = current.PrevSibling()
	}

	var lines []string
	for current != nil && commentTypes[current.Type()] {
		text := content(current, source)
		if !isDoc(text) {
			break
		}
		if blankLineBetween(current, source) {
			break
		}
		lines = append([]string{stripDocMarkers(text)}, lines...)
		current = current.PrevSibling()
	}
	return strings.Join(lines, "\n")
}

// blankLineBetween reports whether a blank source line separates node from
// its next sibling (used to detect a doc-comment block broken by
// whitespace, per spec §9).
func blankLineBetween(node *sitter.Node, source []byte) bool {
	next := node.NextSibling()
	if next == nil {
		return false
	}
	between := source[node.EndByte():next.StartByte()]
	return bytes.Count(between, []byte("\n")) > 1
}

// stripDocMarkers strips comment syntax from a single doc-comment node's
// text, leaving plain text lines. Grounded on the teacher's
// graph/java/parse_javadoc.go ParseJavadocTags, which strips a leading "/**"
// and per-line "*" the same way; generalized here to "///", "//!", and
// "/** ... */" conventions.
func stripDocMarkers(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "/**")
	raw = strings.TrimPrefix(raw, "/*!")
	raw = strings.TrimSuffix(raw, "*/")

	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "///")
		line = strings.TrimPrefix(line, "//!")
		line = strings.TrimPrefix(line, "//")
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
