// Package grammar owns the configured tree-sitter parser for each
// supported language. It holds no query patterns: Extractors find doc
// comments, imports, and top-level declarations by walking the parse tree
// and switching on node types. It is the only package that configures the
// underlying incremental-parser engine.
package grammar

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Language is the closed set of languages CodeBank understands.
type Language int

const (
	Rust Language = iota
	Python
	TypeScript
	JavaScript
	Go
	C
	Cpp
)

// String returns the language's canonical lower-case tag, also used as the
// Markdown fence tag (see FenceTag).
func (l Language) String() string {
	switch l {
	case Rust:
		return "rust"
	case Python:
		return "python"
	case TypeScript:
		return "typescript"
	case JavaScript:
		return "javascript"
	case Go:
		return "go"
	case C:
		return "c"
	case Cpp:
		return "cpp"
	default:
		return "unknown"
	}
}

// ParseError signals that a grammar binding failed to initialize. It is the
// only error Registry.Adapter can return; a syntactically malformed
// file still produces a best-effort tree, never this error.
type ParseError struct {
	Language Language
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("grammar: failed to initialize %s parser: %v", e.Language, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func languageBinding(l Language) (*sitter.Language, error) {
	switch l {
	case Rust:
		return rust.GetLanguage(), nil
	case Python:
		return python.GetLanguage(), nil
	case TypeScript:
		return typescript.GetLanguage(), nil
	case JavaScript:
		return javascript.GetLanguage(), nil
	case Go:
		return golang.GetLanguage(), nil
	case C:
		return c.GetLanguage(), nil
	case Cpp:
		return cpp.GetLanguage(), nil
	default:
		return nil, fmt.Errorf("unsupported language %v", l)
	}
}

// Adapter binds one language to a reusable tree-sitter parser. Adapters are
// idempotent and safe to reuse across many files within a single
// invocation, but a single Adapter instance must not be used from more than
// one goroutine at a time — tree-sitter parser state is not shareable.
type Adapter struct {
	language Language
	parser   *sitter.Parser
}

// newAdapter initializes the grammar binding for l. The only error this can
// return is *ParseError.
func newAdapter(l Language) (*Adapter, error) {
	binding, err := languageBinding(l)
	if err != nil {
		return nil, &ParseError{Language: l, Err: err}
	}
	p := sitter.NewParser()
	p.SetLanguage(binding)
	return &Adapter{language: l, parser: p}, nil
}

// Parse parses bytes and returns the resulting tree. A syntactically
// malformed input still yields a (possibly error-riddled) tree; only a
// cancelled context or an internal tree-sitter failure returns an error
// here, never ParseError (initialization already succeeded by the time
// Parse is callable).
func (a *Adapter) Parse(ctx context.Context, source []byte) (*sitter.Tree, error) {
	tree, err := a.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("grammar: parse failed for %s: %w", a.language, err)
	}
	return tree, nil
}

// Root returns the handle to tree's top node.
func (a *Adapter) Root(tree *sitter.Tree) *sitter.Node {
	return tree.RootNode()
}

// Language reports which language this adapter is bound to.
func (a *Adapter) Language() Language { return a.language }

// Close releases the underlying tree-sitter parser.
func (a *Adapter) Close() { a.parser.Close() }

// Registry amortizes grammar setup cost across files processed by a single
// generate invocation by caching one Adapter per language in a bounded LRU.
// There are only as many possible languages as the Language enum has
// values, so the cache never evicts in practice — the bound exists so the
// Registry has one well-defined place to express "cache adapters, don't
// leak parsers across invocations" rather than an unbounded map the caller
// must remember to drain.
type Registry struct {
	cache *lru.Cache[Language, *Adapter]
}

// NewRegistry creates a Registry sized to hold every supported language's
// adapter at once.
func NewRegistry() *Registry {
	cache, err := lru.New[Language, *Adapter](8)
	if err != nil {
		// Only returns an error for a non-positive size, which 8 never is.
		panic(err)
	}
	return &Registry{cache: cache}
}

// Adapter returns the cached Adapter for l, initializing and caching it on
// first use. The returned error, if any, is always *ParseError.
func (r *Registry) Adapter(l Language) (*Adapter, error) {
	if a, ok := r.cache.Get(l); ok {
		return a, nil
	}
	a, err := newAdapter(l)
	if err != nil {
		return nil, err
	}
	r.cache.Add(l, a)
	return a, nil
}

// Close releases every cached adapter. Call once the Registry's owning
// generate invocation is done.
func (r *Registry) Close() {
	for _, l := range r.cache.Keys() {
		if a, ok := r.cache.Peek(l); ok {
			a.Close()
		}
	}
	r.cache.Purge()
}

// LanguageForExtension maps a file extension (including the leading dot) to
// the Language that extracts it, and reports whether the extension is
// supported at all. Unsupported extensions are skipped by the Orchestrator,
// never an error.
func LanguageForExtension(ext string) (Language, bool) {
	switch ext {
	case ".rs":
		return Rust, true
	case ".py":
		return Python, true
	case ".ts", ".tsx":
		return TypeScript, true
	case ".js", ".jsx":
		return JavaScript, true
	case ".go":
		return Go, true
	case ".c", ".h":
		return C, true
	case ".cpp", ".hpp", ".cc", ".hh":
		return Cpp, true
	default:
		return 0, false
	}
}

// FenceTag returns the Markdown code-fence language tag for l.
func FenceTag(l Language) string {
	return l.String()
}
