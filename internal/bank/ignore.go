package bank

import (
	"os"
	"path/filepath"
	"strings"
)

// ignoreMatcher is a small self-contained matcher for the gitignore pattern
// grammar: prefix-anchored and unanchored globs, directory-only patterns
// (trailing "/"), and negation ("!"). No example repo in the retrieval pack
// imports a gitignore-parsing library, so this is built directly against
// the grammar rather than adopting a dependency with nothing in the pack to
// ground it on (see DESIGN.md).
type ignoreMatcher struct {
	patterns []ignorePattern
}

type ignorePattern struct {
	glob      string
	dirOnly   bool
	anchored  bool
	negate    bool
}

// loadIgnoreMatcher reads a .gitignore-style file at path, if present, and
// returns a matcher for it. A missing file yields an empty, always-pass
// matcher.
func loadIgnoreMatcher(path string) (*ignoreMatcher, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ignoreMatcher{}, nil
		}
		return nil, err
	}
	m := &ignoreMatcher{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p := ignorePattern{}
		if strings.HasPrefix(line, "!") {
			p.negate = true
			line = line[1:]
		}
		if strings.HasSuffix(line, "/") {
			p.dirOnly = true
			line = strings.TrimSuffix(line, "/")
		}
		if strings.Contains(line, "/") {
			p.anchored = true
			line = strings.TrimPrefix(line, "/")
		}
		p.glob = line
		m.patterns = append(m.patterns, p)
	}
	return m, nil
}

// Matches reports whether relPath (slash-separated, relative to the
// ignore file's directory) is ignored. isDir tells the matcher whether
// relPath names a directory, for dirOnly patterns.
func (m *ignoreMatcher) Matches(relPath string, isDir bool) bool {
	ignored := false
	base := filepath.Base(relPath)
	for _, p := range m.patterns {
		if p.dirOnly && !isDir {
			continue
		}
		var hit bool
		if p.anchored {
			hit, _ = filepath.Match(p.glob, relPath)
		} else {
			hit, _ = filepath.Match(p.glob, base)
			if !hit {
				hit, _ = filepath.Match(p.glob, relPath)
			}
		}
		if hit {
			ignored = !p.negate
		}
	}
	return ignored
}
