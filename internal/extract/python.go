package extract

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codebank/codebank/internal/grammar"
	"github.com/codebank/codebank/internal/ir"
)

// pythonExtractor walks a tree-sitter Python parse tree. Node type names
// (function_definition, class_definition, decorator, expression_statement
// wrapping a leading string) are grounded on
// other_examples/3b447e70_C360Studio-semspec__processor-ast-python-parser.go.go.
type pythonExtractor struct {
	adapter *grammar.Adapter
}

func (e *pythonExtractor) Language() grammar.Language { return grammar.Python }

func (e *pythonExtractor) Extract(ctx context.Context, path string, source []byte) (*ir.FileUnit, error) {
	source, err := Normalize(path, source)
	if err != nil {
		return nil, err
	}
	tree, err := e.adapter.Parse(ctx, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := e.adapter.Root(tree)
	file := &ir.FileUnit{Path: path, Source: string(source)}
	file.Document = pythonModuleDocstring(root, source)

	for _, child := range childrenOf(root) {
		switch child.Type() {
		case "import_statement", "import_from_statement":
			file.Declares = append(file.Declares, ir.DeclareStatement{Source: content(child, source), Kind: ir.Import})
		case "function_definition":
			file.Functions = append(file.Functions, pythonFunction(child, source))
		case "class_definition":
			file.Structs = append(file.Structs, pythonClass(child, source))
		case "decorated_definition":
			if inner := child.ChildByFieldName("definition"); inner != nil {
				switch inner.Type() {
				case "function_definition":
					file.Functions = append(file.Functions, pythonFunction(child, source))
				case "class_definition":
					file.Structs = append(file.Structs, pythonClass(child, source))
				}
			}
		}
	}
	return file, nil
}

// pythonModuleDocstring returns the file's leading triple-quoted string
// expression statement, if the file opens with one, per Python convention.
func pythonModuleDocstring(root *sitter.Node, source []byte) string {
	for _, child := range childrenOf(root) {
		if child.Type() != "comment" {
			if s := pythonDocstringOf(child, source); s != "" {
				return s
			}
			return ""
		}
	}
	return ""
}

// pythonDocstringOf extracts the string literal from a leading
// expression_statement -> string node, which is how tree-sitter-python
// represents both module and function/class docstrings.
func pythonDocstringOf(node *sitter.Node, source []byte) string {
	if node.Type() != "expression_statement" {
		return ""
	}
	if node.NamedChildCount() == 0 {
		return ""
	}
	str := node.NamedChild(0)
	if str.Type() != "string" {
		return ""
	}
	return pythonStripStringQuotes(content(str, source))
}

func pythonStripStringQuotes(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, q := range []string{`"""`, `'''`, `"`, `'`} {
		if strings.HasPrefix(raw, q) && strings.HasSuffix(raw, q) && len(raw) >= 2*len(q) {
			raw = strings.TrimPrefix(raw, q)
			raw = strings.TrimSuffix(raw, q)
			break
		}
	}
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		out = append(out, strings.TrimRight(line, " \t"))
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func pythonVisibility(name string) ir.Visibility {
	if strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__") {
		return ir.Public
	}
	if strings.HasPrefix(name, "_") {
		return ir.Private
	}
	return ir.Public
}

func pythonSignatureBodySplit(node *sitter.Node, source []byte) (signature, body string, hasBody bool) {
	block := node.ChildByFieldName("body")
	if block == nil {
		return content(node, source), "", false
	}
	sig := strings.TrimRight(string(source[node.StartByte():block.StartByte()]), " \t\n")
	return sig, content(block, source), true
}

func pythonFunction(node *sitter.Node, source []byte) ir.FunctionUnit {
	var attrs []string
	def := node
	if node.Type() == "decorated_definition" {
		attrs = pythonDecoratorTexts(node, source)
		if inner := node.ChildByFieldName("definition"); inner != nil {
			def = inner
		}
	}
	name := ""
	if n := def.ChildByFieldName("name"); n != nil {
		name = content(n, source)
	}
	doc := pythonBodyDocstring(def, source)
	sig, body, hasBody := pythonSignatureBodySplit(def, source)
	return ir.FunctionUnit{
		Name:          name,
		Visibility:    pythonVisibility(name),
		Attributes:    attrs,
		Documentation: doc,
		Signature:     sig,
		Body:          body,
		HasBody:       hasBody,
		Source:        content(node, source),
	}
}

func pythonDecoratorTexts(decorated *sitter.Node, source []byte) []string {
	var out []string
	for _, child := range childrenOf(decorated) {
		if child.Type() == "decorator" {
			out = append(out, content(child, source))
		}
	}
	return out
}

// pythonBodyDocstring returns a function's or class's docstring: the first
// statement in its body block, when that statement is a bare string
// expression.
func pythonBodyDocstring(node *sitter.Node, source []byte) string {
	block := node.ChildByFieldName("body")
	if block == nil || block.NamedChildCount() == 0 {
		return ""
	}
	first := block.NamedChild(0)
	return pythonDocstringOf(first, source)
}

func pythonClass(node *sitter.Node, source []byte) ir.StructUnit {
	var attrs []string
	def := node
	if node.Type() == "decorated_definition" {
		attrs = pythonDecoratorTexts(node, source)
		if inner := node.ChildByFieldName("definition"); inner != nil {
			def = inner
		}
	}
	name := ""
	if n := def.ChildByFieldName("name"); n != nil {
		name = content(n, source)
	}
	var methods []ir.FunctionUnit
	if block := def.ChildByFieldName("body"); block != nil {
		for _, item := range childrenOf(block) {
			switch item.Type() {
			case "function_definition":
				methods = append(methods, pythonFunction(item, source))
			case "decorated_definition":
				if inner := item.ChildByFieldName("definition"); inner != nil && inner.Type() == "function_definition" {
					methods = append(methods, pythonFunction(item, source))
				}
			}
		}
	}
	return ir.StructUnit{
		Name:          name,
		Visibility:    pythonVisibility(name),
		Attributes:    attrs,
		Documentation: pythonBodyDocstring(def, source),
		Methods:       methods,
		Source:        content(node, source),
	}
}
