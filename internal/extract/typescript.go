package extract

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codebank/codebank/internal/grammar"
	"github.com/codebank/codebank/internal/ir"
)

// tsExtractor walks a tree-sitter TypeScript/JavaScript parse tree. Node
// type names (function_declaration, class_declaration, interface_declaration,
// method_definition, export_statement, accessibility_modifier) follow the
// language-enum dispatch pattern in
// other_examples/02c70370_Jonathangadeaharder-structurelint__internal-parser-treesitter-exports.go.go.
// jsx selects the JavaScript grammar variant for files with no static types
// or interfaces.
type tsExtractor struct {
	adapter *grammar.Adapter
	jsx     bool
}

func (e *tsExtractor) Language() grammar.Language {
	if e.jsx {
		return grammar.JavaScript
	}
	return grammar.TypeScript
}

var tsCommentTypes = map[string]bool{"comment": true}

func isTSDocComment(text string) bool {
	return strings.HasPrefix(text, "/**")
}

func (e *tsExtractor) Extract(ctx context.Context, path string, source []byte) (*ir.FileUnit, error) {
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

	for _, child := range childrenOf(root) {
		tsDispatchTopLevel(file, child, source, true)
	}
	return file, nil
}

// tsDispatchTopLevel classifies one top-level (or export-wrapped) statement
// into the FileUnit. An export_statement is handed to tsDispatchExported,
// since tree-sitter-typescript nests the real declaration one level inside
// it. topLevel is false for statements inside a namespace body; it does not
// change how a statement is classified.
func tsDispatchTopLevel(file *ir.FileUnit, node *sitter.Node, source []byte, topLevel bool) {
	switch node.Type() {
	case "import_statement":
		file.Declares = append(file.Declares, ir.DeclareStatement{Source: content(node, source), Kind: ir.Import})
	case "export_statement":
		for _, child := range namedChildrenOf(node) {
			tsDispatchExported(file, node, child, source)
		}
	case "function_declaration":
		file.Functions = append(file.Functions, tsFunction(node, source, false))
	case "class_declaration", "abstract_class_declaration":
		tsAppendClass(file, node, source, false)
	case "interface_declaration":
		file.Traits = append(file.Traits, tsInterface(node, source, false))
	case "type_alias_declaration":
		if trait, ok := tsTypeAlias(node, source, false); ok {
			file.Traits = append(file.Traits, trait)
		}
	case "module", "internal_module":
		file.Modules = append(file.Modules, tsModule(node, source, false))
	}
}

func tsDispatchExported(file *ir.FileUnit, exportNode, node *sitter.Node, source []byte) {
	switch node.Type() {
	case "function_declaration":
		file.Functions = append(file.Functions, tsFunction(exportNode, source, true))
	case "class_declaration", "abstract_class_declaration":
		tsAppendClass(file, exportNode, source, true)
	case "interface_declaration":
		file.Traits = append(file.Traits, tsInterface(exportNode, source, true))
	case "type_alias_declaration":
		if trait, ok := tsTypeAlias(exportNode, source, true); ok {
			file.Traits = append(file.Traits, trait)
		}
	case "module", "internal_module":
		file.Modules = append(file.Modules, tsModule(exportNode, source, true))
	}
}

// tsInner returns the declaration a node actually describes, unwrapping one
// export_statement layer if present.
func tsInner(node *sitter.Node) *sitter.Node {
	if node.Type() == "export_statement" {
		for _, child := range namedChildrenOf(node) {
			switch child.Type() {
			case "function_declaration", "class_declaration", "abstract_class_declaration", "interface_declaration", "type_alias_declaration", "module", "internal_module":
				return child
			}
		}
	}
	return node
}

func tsVisibility(exported bool) ir.Visibility {
	if exported {
		return ir.Public
	}
	return ir.Private
}

func tsDocumentation(node *sitter.Node, source []byte) string {
	return precedingDocComment(node, source, tsCommentTypes, map[string]bool{}, isTSDocComment)
}

func tsSignatureBodySplit(node *sitter.Node, source []byte) (signature, body string, hasBody bool) {
	block := node.ChildByFieldName("body")
	if block == nil {
		return content(node, source), "", false
	}
	sig := strings.TrimRight(string(source[node.StartByte():block.StartByte()]), " \t\n")
	return sig, content(block, source), true
}

// tsDecoratorTypes names the node type TypeScript decorators parse as;
// decorators attach as preceding siblings of the declaration they annotate,
// the same shape Rust's attribute_item siblings take.
var tsDecoratorTypes = map[string]bool{"decorator": true}

func tsDecorators(node *sitter.Node, source []byte) []string {
	return collectAttributes(node, source, tsDecoratorTypes)
}

func tsFunction(node *sitter.Node, source []byte, exported bool) ir.FunctionUnit {
	inner := tsInner(node)
	name := ""
	if n := inner.ChildByFieldName("name"); n != nil {
		name = content(n, source)
	}
	sig, body, hasBody := tsSignatureBodySplit(inner, source)
	return ir.FunctionUnit{
		Name:          name,
		Visibility:    tsVisibility(exported),
		Attributes:    tsDecorators(node, source),
		Documentation: tsDocumentation(node, source),
		Signature:     sig,
		Body:          body,
		HasBody:       hasBody,
		Source:        content(node, source),
	}
}

// tsMethodVisibility reads a class/interface member's accessibility_modifier
// child ("public"/"private"/"protected"), defaulting to Public — TypeScript
// class members are public unless annotated otherwise.
func tsMethodVisibility(node *sitter.Node, source []byte) ir.Visibility {
	for _, child := range childrenOf(node) {
		if child.Type() == "accessibility_modifier" {
			switch content(child, source) {
			case "private":
				return ir.Private
			case "protected":
				return ir.Protected
			}
		}
	}
	return ir.Public
}

func tsMethod(node *sitter.Node, source []byte) ir.FunctionUnit {
	name := ""
	if n := node.ChildByFieldName("name"); n != nil {
		name = content(n, source)
	}
	sig, body, hasBody := tsSignatureBodySplit(node, source)
	return ir.FunctionUnit{
		Name:          name,
		Visibility:    tsMethodVisibility(node, source),
		Attributes:    tsDecorators(node, source),
		Documentation: tsDocumentation(node, source),
		Signature:     sig,
		Body:          body,
		HasBody:       hasBody,
		Source:        content(node, source),
	}
}

// tsAppendClass extracts a class_declaration or abstract_class_declaration
// and files it as a StructUnit, or as a TraitUnit when it is abstract and
// every one of its methods is abstract (no body) — an abstract class with
// only method stubs is an interface in substance.
func tsAppendClass(file *ir.FileUnit, node *sitter.Node, source []byte, exported bool) {
	s, allAbstract := tsClass(node, source, exported)
	if allAbstract {
		file.Traits = append(file.Traits, ir.TraitUnit{
			Name:          s.Name,
			Visibility:    s.Visibility,
			Attributes:    s.Attributes,
			Documentation: s.Documentation,
			Methods:       s.Methods,
			Source:        s.Source,
		})
		return
	}
	file.Structs = append(file.Structs, s)
}

// tsClass builds the StructUnit for a class_declaration or
// abstract_class_declaration. The second return value reports whether the
// class is abstract and has at least one method, all of them abstract
// (abstract_method_signature members, which have no body) — the shape spec
// §4.3 reshapes into a TraitUnit instead.
func tsClass(node *sitter.Node, source []byte, exported bool) (ir.StructUnit, bool) {
	inner := tsInner(node)
	name := ""
	if n := inner.ChildByFieldName("name"); n != nil {
		name = content(n, source)
	}
	var methods []ir.FunctionUnit
	if body := inner.ChildByFieldName("body"); body != nil {
		for _, item := range namedChildrenOf(body) {
			if item.Type() == "method_definition" || item.Type() == "abstract_method_signature" {
				methods = append(methods, tsMethod(item, source))
			}
		}
	}
	s := ir.StructUnit{
		Name:          name,
		Visibility:    tsVisibility(exported),
		Attributes:    tsDecorators(node, source),
		Documentation: tsDocumentation(node, source),
		Methods:       methods,
		Source:        content(node, source),
	}
	allAbstract := inner.Type() == "abstract_class_declaration" && len(methods) > 0
	for _, m := range methods {
		if m.HasBody {
			allAbstract = false
		}
	}
	return s, allAbstract
}

func tsInterface(node *sitter.Node, source []byte, exported bool) ir.TraitUnit {
	inner := tsInner(node)
	name := ""
	if n := inner.ChildByFieldName("name"); n != nil {
		name = content(n, source)
	}
	var methods []ir.FunctionUnit
	if body := inner.ChildByFieldName("body"); body != nil {
		for _, item := range namedChildrenOf(body) {
			if item.Type() == "method_signature" {
				sig := content(item, source)
				name := ""
				if n := item.ChildByFieldName("name"); n != nil {
					name = content(n, source)
				}
				methods = append(methods, ir.FunctionUnit{
					Name:          name,
					Visibility:    ir.Public,
					Documentation: tsDocumentation(item, source),
					Signature:     sig,
					HasBody:       false,
					Source:        content(item, source),
				})
			}
		}
	}
	return ir.TraitUnit{
		Name:          name,
		Visibility:    tsVisibility(exported),
		Documentation: tsDocumentation(node, source),
		Methods:       methods,
		Source:        content(node, source),
	}
}

// tsTypeAlias builds a TraitUnit for a type alias whose value is an object
// shape (`type Foo = { bar(): void }`), per spec §4.3's grouping of object-shape
// type aliases with interfaces. Aliases of any other shape (union, primitive,
// mapped type, ...) are not units this tool models and are reported via ok=false.
func tsTypeAlias(node *sitter.Node, source []byte, exported bool) (ir.TraitUnit, bool) {
	inner := tsInner(node)
	value := inner.ChildByFieldName("value")
	if value == nil || value.Type() != "object_type" {
		return ir.TraitUnit{}, false
	}
	name := ""
	if n := inner.ChildByFieldName("name"); n != nil {
		name = content(n, source)
	}
	var methods []ir.FunctionUnit
	for _, item := range namedChildrenOf(value) {
		if item.Type() == "method_signature" {
			sig := content(item, source)
			mname := ""
			if n := item.ChildByFieldName("name"); n != nil {
				mname = content(n, source)
			}
			methods = append(methods, ir.FunctionUnit{
				Name:          mname,
				Visibility:    ir.Public,
				Documentation: tsDocumentation(item, source),
				Signature:     sig,
				HasBody:       false,
				Source:        content(item, source),
			})
		}
	}
	return ir.TraitUnit{
		Name:          name,
		Visibility:    tsVisibility(exported),
		Documentation: tsDocumentation(node, source),
		Methods:       methods,
		Source:        content(node, source),
	}, true
}

func tsModule(node *sitter.Node, source []byte, exported bool) ir.ModuleUnit {
	inner := tsInner(node)
	name := ""
	if n := inner.ChildByFieldName("name"); n != nil {
		name = content(n, source)
	}
	mod := ir.ModuleUnit{
		Name:          name,
		Visibility:    tsVisibility(exported),
		Documentation: tsDocumentation(node, source),
		Source:        content(node, source),
	}
	body := inner.ChildByFieldName("body")
	if body == nil {
		return mod
	}
	fileLike := &ir.FileUnit{}
	for _, child := range childrenOf(body) {
		tsDispatchTopLevel(fileLike, child, source, false)
	}
	mod.Declares = fileLike.Declares
	mod.Functions = fileLike.Functions
	mod.Structs = fileLike.Structs
	mod.Traits = fileLike.Traits
	mod.Submodules = fileLike.Modules
	return mod
}
