package extract

import (
	"context"
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codebank/codebank/internal/grammar"
	"github.com/codebank/codebank/internal/ir"
)

// goExtractor walks a tree-sitter Go parse tree. Exported-identifier
// visibility (leading uppercase rune) and doc-comment attachment follow the
// same convention the teacher's own sourcecode-parser module is written in.
type goExtractor struct {
	adapter *grammar.Adapter
}

func (e *goExtractor) Language() grammar.Language { return grammar.Go }

var goCommentTypes = map[string]bool{"comment": true}

func isGoDocComment(string) bool { return true }

func (e *goExtractor) Extract(ctx context.Context, path string, source []byte) (*ir.FileUnit, error) {
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

	// package clause's own leading comment becomes the file-level doc.
	for _, child := range childrenOf(root) {
		if child.Type() == "package_clause" {
			file.Document = goDocumentation(child, source)
			break
		}
	}

	structsByName := map[string]*ir.StructUnit{}
	var order []string

	for _, child := range childrenOf(root) {
		switch child.Type() {
		case "import_declaration":
			file.Declares = append(file.Declares, ir.DeclareStatement{Source: content(child, source), Kind: ir.Import})
		case "function_declaration":
			file.Functions = append(file.Functions, goFunction(child, source))
		case "method_declaration":
			recv := goReceiverType(child, source)
			s, ok := structsByName[recv]
			if !ok {
				s = &ir.StructUnit{Name: recv, Visibility: ir.Public}
				structsByName[recv] = s
				order = append(order, recv)
			}
			s.Methods = append(s.Methods, goFunction(child, source))
		case "type_declaration":
			for _, spec := range namedChildrenOf(child) {
				if spec.Type() != "type_spec" {
					continue
				}
				name := ""
				if n := spec.ChildByFieldName("name"); n != nil {
					name = content(n, source)
				}
				typeNode := spec.ChildByFieldName("type")
				if typeNode != nil && typeNode.Type() == "interface_type" {
					file.Traits = append(file.Traits, goInterface(child, spec, name, source))
					continue
				}
				s, ok := structsByName[name]
				if !ok {
					s = &ir.StructUnit{Name: name}
					structsByName[name] = s
					order = append(order, name)
				}
				s.Visibility = goVisibility(name)
				s.Documentation = goDocumentation(child, source)
				s.Attributes = nil
				s.Source = content(child, source)
			}
		}
	}

	for _, name := range order {
		file.Structs = append(file.Structs, *structsByName[name])
	}
	return file, nil
}

func goVisibility(name string) ir.Visibility {
	if name == "" {
		return ir.Private
	}
	r := []rune(name)[0]
	if unicode.IsUpper(r) {
		return ir.Public
	}
	return ir.Private
}

func goDocumentation(node *sitter.Node, source []byte) string {
	return precedingDocComment(node, source, goCommentTypes, map[string]bool{}, isGoDocComment)
}

func goSignatureBodySplit(node *sitter.Node, source []byte) (signature, body string, hasBody bool) {
	block := node.ChildByFieldName("body")
	if block == nil {
		return content(node, source), "", false
	}
	sig := strings.TrimRight(string(source[node.StartByte():block.StartByte()]), " \t\n")
	return sig, content(block, source), true
}

func goFunction(node *sitter.Node, source []byte) ir.FunctionUnit {
	name := ""
	if n := node.ChildByFieldName("name"); n != nil {
		name = content(n, source)
	}
	sig, body, hasBody := goSignatureBodySplit(node, source)
	return ir.FunctionUnit{
		Name:          name,
		Visibility:    goVisibility(name),
		Documentation: goDocumentation(node, source),
		Signature:     sig,
		Body:          body,
		HasBody:       hasBody,
		Source:        content(node, source),
	}
}

// goReceiverType returns the unqualified type name a method_declaration is
// defined on, stripping a leading pointer "*".
func goReceiverType(node *sitter.Node, source []byte) string {
	recv := node.ChildByFieldName("receiver")
	if recv == nil || recv.NamedChildCount() == 0 {
		return ""
	}
	param := recv.NamedChild(0)
	typeNode := param.ChildByFieldName("type")
	if typeNode == nil {
		return ""
	}
	text := content(typeNode, source)
	return strings.TrimPrefix(text, "*")
}

func goInterface(declNode, spec *sitter.Node, name string, source []byte) ir.TraitUnit {
	trait := ir.TraitUnit{
		Name:          name,
		Visibility:    goVisibility(name),
		Documentation: goDocumentation(declNode, source),
		Source:        content(declNode, source),
	}
	typeNode := spec.ChildByFieldName("type")
	if typeNode == nil {
		return trait
	}
	for _, member := range namedChildrenOf(typeNode) {
		if member.Type() != "method_elem" {
			continue
		}
		mname := ""
		if n := member.ChildByFieldName("name"); n != nil {
			mname = content(n, source)
		}
		trait.Methods = append(trait.Methods, ir.FunctionUnit{
			Name:          mname,
			Visibility:    ir.Public,
			Documentation: goDocumentation(member, source),
			Signature:     content(member, source),
			HasBody:       false,
			Source:        content(member, source),
		})
	}
	return trait
}
