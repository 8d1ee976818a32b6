// Package format renders ir.FileUnit back to language-faithful text under
// one of three strategies. One file in this package per supported language,
// mirroring internal/extract; format.go holds the strategy enum, the
// dispatch table, and the small set of helpers every language's renderer
// shares (fragment joining, attribute-token matching).
package format

import (
	"fmt"
	"strings"

	"github.com/codebank/codebank/internal/grammar"
	"github.com/codebank/codebank/internal/ir"
)

// Strategy selects how much of a file's IR reaches the rendered fragment.
type Strategy int

const (
	// Default emits every unit's original source byte-for-byte.
	Default Strategy = iota
	// NoTests emits everything Default does except units identified as tests.
	NoTests
	// Summary emits only Public-visibility units, bodies replaced by a
	// language-specific placeholder.
	Summary
)

// ParseStrategy maps the CLI's three strategy spellings to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "default":
		return Default, nil
	case "no-tests":
		return NoTests, nil
	case "summary":
		return Summary, nil
	default:
		return 0, fmt.Errorf("format: unknown strategy %q (want default|no-tests|summary)", s)
	}
}

// Renderer turns one file's IR into a text fragment under a Strategy.
type Renderer interface {
	Language() grammar.Language
	Render(file *ir.FileUnit, strategy Strategy) string
}

// New returns the Renderer for l.
func New(l grammar.Language) (Renderer, error) {
	switch l {
	case grammar.Rust:
		return rustRenderer{}, nil
	case grammar.Python:
		return pythonRenderer{}, nil
	case grammar.TypeScript, grammar.JavaScript:
		return tsRenderer{jsx: l == grammar.JavaScript}, nil
	case grammar.Go:
		return goRenderer{}, nil
	case grammar.C, grammar.Cpp:
		return cRenderer{cpp: l == grammar.Cpp}, nil
	default:
		return nil, fmt.Errorf("format: unsupported language %v", l)
	}
}

// joinBlocks joins non-empty fragments with one blank line between them,
// the "customary blank-line policy" every language renderer in this package
// follows per spec §4.4.
func joinBlocks(blocks []string) string {
	var nonEmpty []string
	for _, b := range blocks {
		if strings.TrimSpace(b) != "" {
			nonEmpty = append(nonEmpty, b)
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}

// attrsContainToken reports whether any attribute in attrs contains token as
// a whole word (not merely a substring of a longer identifier).
func attrsContainToken(attrs []string, token string) bool {
	for _, a := range attrs {
		if containsWholeWord(a, token) {
			return true
		}
	}
	return false
}

// attrsContainSubstring reports whether any attribute in attrs contains
// substr anywhere.
func attrsContainSubstring(attrs []string, substr string) bool {
	for _, a := range attrs {
		if strings.Contains(a, substr) {
			return true
		}
	}
	return false
}

func containsWholeWord(haystack, word string) bool {
	idx := 0
	for {
		i := strings.Index(haystack[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isIdentByte(haystack[start-1])
		afterOK := end == len(haystack) || !isIdentByte(haystack[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
