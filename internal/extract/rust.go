package extract

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codebank/codebank/internal/grammar"
	"github.com/codebank/codebank/internal/ir"
)

// rustExtractor walks a tree-sitter Rust parse tree. Node type names
// (function_item, struct_item, trait_item, impl_item, mod_item,
// visibility_modifier, attribute_item) are grounded on
// other_examples/25afb3e3_api2spec-api2spec__internal-parser-rust.go.go.
type rustExtractor struct {
	adapter *grammar.Adapter
}

func (e *rustExtractor) Language() grammar.Language { return grammar.Rust }

func (e *rustExtractor) Extract(ctx context.Context, path string, source []byte) (*ir.FileUnit, error) {
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
		case "line_comment", "block_comment":
			// Leading file-level doc handled via //! markers collected below.
		case "use_declaration":
			file.Declares = append(file.Declares, rustDeclare(child, source))
		case "mod_item":
			if body := child.ChildByFieldName("body"); body == nil {
				file.Declares = append(file.Declares, ir.DeclareStatement{
					Source: content(child, source),
					Kind:   ir.Mod,
				})
			} else {
				file.Modules = append(file.Modules, rustModule(child, source))
			}
		case "function_item":
			file.Functions = append(file.Functions, rustFunction(child, source))
		case "struct_item":
			file.Structs = append(file.Structs, rustStruct(child, source))
		case "trait_item":
			file.Traits = append(file.Traits, rustTrait(child, source))
		case "impl_item":
			file.Impls = append(file.Impls, rustImpl(child, source))
		}
	}

	file.Document = rustInnerDoc(root, source)
	return file, nil
}

var rustCommentTypes = map[string]bool{"line_comment": true, "block_comment": true}
var rustAttrTypes = map[string]bool{"attribute_item": true, "inner_attribute_item": true}

func isRustDocComment(text string) bool {
	return strings.HasPrefix(text, "///") || strings.HasPrefix(text, "//!") || strings.HasPrefix(text, "/**")
}

// rustInnerDoc collects //! module-level doc comments at the very top of
// the file, attaching them to the FileUnit's Document per spec §4.3
// ("Inner doc comments associated with the containing scope").
func rustInnerDoc(root *sitter.Node, source []byte) string {
	var lines []string
	for _, child := range childrenOf(root) {
		if child.Type() != "line_comment" && child.Type() != "block_comment" {
			break
		}
		text := content(child, source)
		if !strings.HasPrefix(text, "//!") {
			break
		}
		lines = append(lines, stripDocMarkers(text))
	}
	return strings.Join(lines, "\n")
}

func rustVisibility(node *sitter.Node, source []byte) (ir.Visibility, string) {
	for _, child := range childrenOf(node) {
		if child.Type() == "visibility_modifier" {
			text := content(child, source)
			switch {
			case strings.Contains(text, "crate"):
				return ir.Restricted, "crate"
			case strings.Contains(text, "super"):
				return ir.Restricted, "super"
			case strings.Contains(text, "self"):
				return ir.Restricted, "self"
			default:
				return ir.Public, ""
			}
		}
	}
	return ir.Private, ""
}

func rustAttributes(node *sitter.Node, source []byte) []string {
	return collectAttributes(node, source, rustAttrTypes)
}

func rustDocumentation(node *sitter.Node, source []byte) string {
	return precedingDocComment(node, source, rustCommentTypes, rustAttrTypes, isRustDocComment)
}

func rustDeclare(node *sitter.Node, source []byte) ir.DeclareStatement {
	return ir.DeclareStatement{Source: content(node, source), Kind: ir.Use}
}

func rustSignatureBodySplit(node *sitter.Node, source []byte) (signature, body string, hasBody bool) {
	block := node.ChildByFieldName("body")
	if block == nil {
		return content(node, source), "", false
	}
	sig := strings.TrimRight(string(source[node.StartByte():block.StartByte()]), " \t\n")
	b := content(block, source)
	return sig, b, true
}

func rustFunction(node *sitter.Node, source []byte) ir.FunctionUnit {
	name := ""
	if n := node.ChildByFieldName("name"); n != nil {
		name = content(n, source)
	}
	vis, scope := rustVisibility(node, source)
	sig, body, hasBody := rustSignatureBodySplit(node, source)
	return ir.FunctionUnit{
		Name:            name,
		Visibility:      vis,
		RestrictedScope: scope,
		Attributes:      rustAttributes(node, source),
		Documentation:   rustDocumentation(node, source),
		Signature:       sig,
		Body:            body,
		HasBody:         hasBody,
		Source:          content(node, source),
	}
}

func rustStruct(node *sitter.Node, source []byte) ir.StructUnit {
	name := ""
	if n := node.ChildByFieldName("name"); n != nil {
		name = content(n, source)
	}
	vis, scope := rustVisibility(node, source)
	return ir.StructUnit{
		Name:            name,
		Visibility:      vis,
		RestrictedScope: scope,
		Attributes:      rustAttributes(node, source),
		Documentation:   rustDocumentation(node, source),
		Source:          content(node, source),
	}
}

func rustTrait(node *sitter.Node, source []byte) ir.TraitUnit {
	name := ""
	if n := node.ChildByFieldName("name"); n != nil {
		name = content(n, source)
	}
	vis, scope := rustVisibility(node, source)
	var methods []ir.FunctionUnit
	if body := node.ChildByFieldName("body"); body != nil {
		for _, item := range namedChildrenOf(body) {
			switch item.Type() {
			case "function_item", "function_signature_item":
				methods = append(methods, rustFunction(item, source))
			}
		}
	}
	return ir.TraitUnit{
		Name:            name,
		Visibility:      vis,
		RestrictedScope: scope,
		Attributes:      rustAttributes(node, source),
		Documentation:   rustDocumentation(node, source),
		Methods:         methods,
		Source:          content(node, source),
	}
}

func rustImpl(node *sitter.Node, source []byte) ir.ImplUnit {
	impl := ir.ImplUnit{
		Attributes:    rustAttributes(node, source),
		Documentation: rustDocumentation(node, source),
		Source:        content(node, source),
	}
	if t := node.ChildByFieldName("type"); t != nil {
		impl.TypeName = content(t, source)
	}
	if tr := node.ChildByFieldName("trait"); tr != nil {
		impl.TraitName = content(tr, source)
	}
	if body := node.ChildByFieldName("body"); body != nil {
		for _, item := range namedChildrenOf(body) {
			if item.Type() == "function_item" {
				impl.Methods = append(impl.Methods, rustFunction(item, source))
			}
		}
	}
	return impl
}

func rustModule(node *sitter.Node, source []byte) ir.ModuleUnit {
	name := ""
	if n := node.ChildByFieldName("name"); n != nil {
		name = content(n, source)
	}
	vis, scope := rustVisibility(node, source)
	mod := ir.ModuleUnit{
		Name:            name,
		Visibility:      vis,
		RestrictedScope: scope,
		Attributes:      rustAttributes(node, source),
		Documentation:   rustDocumentation(node, source),
		Source:          content(node, source),
	}
	body := node.ChildByFieldName("body")
	if body == nil {
		return mod
	}
	for _, child := range childrenOf(body) {
		switch child.Type() {
		case "use_declaration":
			mod.Declares = append(mod.Declares, rustDeclare(child, source))
		case "mod_item":
			if b := child.ChildByFieldName("body"); b == nil {
				mod.Declares = append(mod.Declares, ir.DeclareStatement{
					Source: content(child, source),
					Kind:   ir.Mod,
				})
			} else {
				mod.Submodules = append(mod.Submodules, rustModule(child, source))
			}
		case "function_item":
			mod.Functions = append(mod.Functions, rustFunction(child, source))
		case "struct_item":
			mod.Structs = append(mod.Structs, rustStruct(child, source))
		case "trait_item":
			mod.Traits = append(mod.Traits, rustTrait(child, source))
		case "impl_item":
			mod.Impls = append(mod.Impls, rustImpl(child, source))
		}
	}
	return mod
}
