package extract

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codebank/codebank/internal/grammar"
	"github.com/codebank/codebank/internal/ir"
)

// cExtractor walks a tree-sitter C/C++ parse tree. cpp selects the C++
// grammar, which adds class_specifier/access_specifier/virtual handling on
// top of the shared C node types (function_definition, struct_specifier,
// preproc_include, comment).
type cExtractor struct {
	adapter *grammar.Adapter
	cpp     bool
}

func (e *cExtractor) Language() grammar.Language {
	if e.cpp {
		return grammar.Cpp
	}
	return grammar.C
}

var cCommentTypes = map[string]bool{"comment": true}

func isCDocComment(text string) bool {
	return strings.HasPrefix(text, "/**") || strings.HasPrefix(text, "///")
}

func (e *cExtractor) Extract(ctx context.Context, path string, source []byte) (*ir.FileUnit, error) {
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
		switch child.Type() {
		case "preproc_include":
			file.Declares = append(file.Declares, ir.DeclareStatement{Source: content(child, source), Kind: ir.Other, RawKind: "include"})
		case "function_definition":
			file.Functions = append(file.Functions, cFunction(child, source))
		case "struct_specifier":
			s, isAbstract := cStruct(child, source, e.cpp)
			if isAbstract {
				file.Traits = append(file.Traits, cppClassAsTrait(s))
			} else {
				file.Structs = append(file.Structs, s)
			}
		case "class_specifier":
			if e.cpp {
				s, isAbstract := cppClass(child, source)
				if isAbstract {
					file.Traits = append(file.Traits, cppClassAsTrait(s))
				} else {
					file.Structs = append(file.Structs, s)
				}
			}
		case "namespace_definition":
			if e.cpp {
				file.Modules = append(file.Modules, cppNamespace(child, source))
			}
		}
	}
	return file, nil
}

func cDocumentation(node *sitter.Node, source []byte) string {
	return precedingDocComment(node, source, cCommentTypes, map[string]bool{}, isCDocComment)
}

func cSignatureBodySplit(node *sitter.Node, source []byte) (signature, body string, hasBody bool) {
	block := node.ChildByFieldName("body")
	if block == nil {
		return content(node, source), "", false
	}
	sig := strings.TrimRight(string(source[node.StartByte():block.StartByte()]), " \t\n")
	return sig, content(block, source), true
}

// cFunctionName descends through the declarator chain (pointer/function
// declarators) to find the identifier tree-sitter-c nests the name under.
func cFunctionName(node *sitter.Node, source []byte) string {
	d := node.ChildByFieldName("declarator")
	for d != nil {
		switch d.Type() {
		case "identifier", "field_identifier", "qualified_identifier":
			return content(d, source)
		case "function_declarator", "pointer_declarator", "reference_declarator":
			d = d.ChildByFieldName("declarator")
		default:
			return content(d, source)
		}
	}
	return ""
}

func cFunction(node *sitter.Node, source []byte) ir.FunctionUnit {
	sig, body, hasBody := cSignatureBodySplit(node, source)
	return ir.FunctionUnit{
		Name:          cFunctionName(node, source),
		Visibility:    ir.Public,
		Documentation: cDocumentation(node, source),
		Signature:     sig,
		Body:          body,
		HasBody:       hasBody,
		Source:        content(node, source),
	}
}

// cStruct extracts a struct_specifier. Plain C structs have no methods or
// access specifiers, but a C++ struct_specifier shares class_specifier's
// field_declaration_list shape — struct-with-methods is idiomatic C++ — so
// in C++ mode it walks the same body-collecting logic as cppClass, just
// starting from C++'s own default member access for struct: public instead
// of private. isAbstract mirrors cppClass's meaning and is always false in
// plain-C mode.
func cStruct(node *sitter.Node, source []byte, cpp bool) (ir.StructUnit, bool) {
	name := ""
	if n := node.ChildByFieldName("name"); n != nil {
		name = content(n, source)
	}
	s := ir.StructUnit{
		Name:          name,
		Visibility:    ir.Public,
		Documentation: cDocumentation(node, source),
		Source:        content(node, source),
	}
	if !cpp {
		return s, false
	}
	return cClassLikeBody(node, source, s, ir.Public)
}

// cppClass walks a class_specifier's field_declaration_list tracking the
// current access_specifier (default private for `class`, public for
// `struct`). isAbstract reports whether every method is a pure virtual
// (`= 0`) declaration, which the formatter treats as trait-equivalent.
func cppClass(node *sitter.Node, source []byte) (ir.StructUnit, bool) {
	name := ""
	if n := node.ChildByFieldName("name"); n != nil {
		name = content(n, source)
	}
	s := ir.StructUnit{
		Name:          name,
		Visibility:    ir.Public,
		Documentation: cDocumentation(node, source),
		Source:        content(node, source),
	}
	return cClassLikeBody(node, source, s, ir.Private)
}

// cClassLikeBody walks a class_specifier's or struct_specifier's
// field_declaration_list, tracking the current access_specifier starting
// from defaultAccess, and collects its methods (function_definition bodies
// and bare declarations, the latter possibly pure virtual via "= 0") onto s.
func cClassLikeBody(node *sitter.Node, source []byte, s ir.StructUnit, defaultAccess ir.Visibility) (ir.StructUnit, bool) {
	body := node.ChildByFieldName("body")
	if body == nil {
		return s, false
	}
	current := defaultAccess
	methodCount := 0
	pureVirtualCount := 0
	for _, child := range childrenOf(body) {
		switch child.Type() {
		case "access_specifier":
			switch content(child, source) {
			case "public":
				current = ir.Public
			case "protected":
				current = ir.Protected
			case "private":
				current = ir.Private
			}
		case "function_definition":
			m := cFunction(child, source)
			m.Visibility = current
			s.Methods = append(s.Methods, m)
			methodCount++
		case "declaration", "field_declaration":
			// A member function declaration with no body, possibly "= 0"
			// for a pure virtual member. Data members are skipped.
			d := child.ChildByFieldName("declarator")
			for d != nil && d.Type() != "function_declarator" {
				switch d.Type() {
				case "pointer_declarator", "reference_declarator", "init_declarator":
					d = d.ChildByFieldName("declarator")
				default:
					d = nil
				}
			}
			if d == nil {
				continue
			}
			text := content(child, source)
			m := ir.FunctionUnit{
				Name:          cFunctionName(child, source),
				Visibility:    current,
				Documentation: cDocumentation(child, source),
				Signature:     strings.TrimSpace(text),
				HasBody:       false,
				Source:        text,
			}
			s.Methods = append(s.Methods, m)
			methodCount++
			if strings.Contains(text, "= 0") {
				pureVirtualCount++
			}
		}
	}
	return s, methodCount > 0 && methodCount == pureVirtualCount
}

// cppClassAsTrait re-shapes an all-pure-virtual StructUnit into the
// TraitUnit the formatter renders interface-equivalents as.
func cppClassAsTrait(s ir.StructUnit) ir.TraitUnit {
	return ir.TraitUnit{
		Name:          s.Name,
		Visibility:    s.Visibility,
		Documentation: s.Documentation,
		Methods:       s.Methods,
		Source:        s.Source,
	}
}

func cppNamespace(node *sitter.Node, source []byte) ir.ModuleUnit {
	name := ""
	if n := node.ChildByFieldName("name"); n != nil {
		name = content(n, source)
	}
	mod := ir.ModuleUnit{
		Name:          name,
		Visibility:    ir.Public,
		Documentation: cDocumentation(node, source),
		Source:        content(node, source),
	}
	body := node.ChildByFieldName("body")
	if body == nil {
		return mod
	}
	for _, child := range childrenOf(body) {
		switch child.Type() {
		case "preproc_include":
			mod.Declares = append(mod.Declares, ir.DeclareStatement{Source: content(child, source), Kind: ir.Other, RawKind: "include"})
		case "function_definition":
			mod.Functions = append(mod.Functions, cFunction(child, source))
		case "struct_specifier":
			s, isAbstract := cStruct(child, source, true)
			if isAbstract {
				mod.Traits = append(mod.Traits, cppClassAsTrait(s))
			} else {
				mod.Structs = append(mod.Structs, s)
			}
		case "class_specifier":
			s, isAbstract := cppClass(child, source)
			if isAbstract {
				mod.Traits = append(mod.Traits, cppClassAsTrait(s))
			} else {
				mod.Structs = append(mod.Structs, s)
			}
		case "namespace_definition":
			mod.Submodules = append(mod.Submodules, cppNamespace(child, source))
		}
	}
	return mod
}
