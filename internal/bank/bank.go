// Package bank implements the Bank Orchestrator: generate(root, strategy)
// walks a source tree, dispatches each file to the matching Extractor and
// Formatter, and assembles the per-file fragments into one Markdown
// document. The directory walk is adapted from the teacher's
// graph/construct.go Initialize; files are processed one at a time, in
// sorted path order.
package bank

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/codebank/codebank/internal/extract"
	"github.com/codebank/codebank/internal/format"
	"github.com/codebank/codebank/internal/grammar"
)

// IoError wraps a filesystem failure that aborts generation entirely (the
// root itself is unreadable), as opposed to a per-file error, which is
// logged and the file is skipped.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string { return fmt.Sprintf("bank: %s: %v", e.Path, e.Err) }
func (e *IoError) Unwrap() error { return e.Err }

// Options configures one Generate call.
type Options struct {
	Strategy format.Strategy
	Logger   *Logger
}

type fileEntry struct {
	absPath string
	relPath string
}

// Generate implements generate(root, strategy) -> markdown (spec §4.5).
func Generate(ctx context.Context, root string, opts Options) (string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(VerbosityDefault)
	}

	canonical, err := filepath.Abs(root)
	if err != nil {
		return "", &IoError{Path: root, Err: err}
	}
	canonical, err = filepath.EvalSymlinks(canonical)
	if err != nil {
		return "", &IoError{Path: root, Err: err}
	}

	info, err := os.Stat(canonical)
	if err != nil {
		return "", &IoError{Path: canonical, Err: err}
	}
	if !info.IsDir() {
		return "", &IoError{Path: canonical, Err: fmt.Errorf("not a directory")}
	}

	var sb strings.Builder
	sb.WriteString("# Code Bank\n\n")

	m, found, err := findManifest(canonical)
	if err != nil {
		return "", &IoError{Path: canonical, Err: err}
	}
	if found {
		sb.WriteString("```" + m.FenceTag + "\n")
		sb.WriteString(strings.TrimRight(m.Contents, "\n"))
		sb.WriteString("\n```\n\n")
	}

	ignore, err := loadIgnoreMatcher(filepath.Join(canonical, ".gitignore"))
	if err != nil {
		return "", &IoError{Path: canonical, Err: err}
	}

	files, err := walk(canonical, ignore)
	if err != nil {
		return "", &IoError{Path: canonical, Err: err}
	}

	registry := grammar.NewRegistry()
	defer registry.Close()

	for _, f := range files {
		fragment, ok, ferr := renderFile(ctx, registry, f, opts.Strategy)
		if ferr != nil {
			var parseErr *grammar.ParseError
			if errors.As(ferr, &parseErr) {
				return "", parseErr
			}
			logger.Warning("skipping %s: %v", f.relPath, ferr)
			continue
		}
		if !ok {
			continue
		}
		logger.Progress("processed %s", f.relPath)
		sb.WriteString("## " + f.relPath + "\n")
		sb.WriteString("```" + fragmentFenceTag(f.relPath) + "\n")
		sb.WriteString(fragment)
		if !strings.HasSuffix(fragment, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString("```\n\n")
	}

	return strings.TrimRight(sb.String(), "\n") + "\n", nil
}

// GenerateToFile is the convenience wrapper from spec §6:
// generate_to_file(root, strategy, output_path) -> ().
func GenerateToFile(ctx context.Context, root, outputPath string, opts Options) error {
	doc, err := Generate(ctx, root, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, []byte(doc), 0o644); err != nil {
		return &IoError{Path: outputPath, Err: err}
	}
	return nil
}

func fragmentFenceTag(relPath string) string {
	ext := filepath.Ext(relPath)
	if l, ok := grammar.LanguageForExtension(ext); ok {
		return grammar.FenceTag(l)
	}
	return ""
}

// renderFile extracts and renders a single file. ok is false for a file
// whose extension is unsupported (skipped silently, per spec §4.5 step 4)
// or whose rendered fragment is the empty string (omitted per spec §4.4).
func renderFile(ctx context.Context, registry *grammar.Registry, f fileEntry, strategy format.Strategy) (string, bool, error) {
	ext := filepath.Ext(f.relPath)
	lang, ok := grammar.LanguageForExtension(ext)
	if !ok {
		return "", false, nil
	}

	source, err := os.ReadFile(f.absPath)
	if err != nil {
		return "", false, err
	}

	extractor, err := extract.New(lang, registry)
	if err != nil {
		return "", false, err
	}
	unit, err := extractor.Extract(ctx, f.relPath, source)
	if err != nil {
		return "", false, err
	}

	renderer, err := format.New(lang)
	if err != nil {
		return "", false, err
	}
	fragment := renderer.Render(unit, strategy)
	if fragment == "" {
		return "", false, nil
	}
	return fragment, true, nil
}

// walk recursively lists every regular file under root, skipping hidden
// directories (name begins with ".") and paths the ignore matcher excludes,
// returning entries in the deterministic lexicographic order spec §5
// requires of the final document.
func walk(root string, ignore *ignoreMatcher) ([]fileEntry, error) {
	var out []fileEntry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if ignore.Matches(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if ignore.Matches(rel, false) {
			return nil
		}
		out = append(out, fileEntry{absPath: path, relPath: rel})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].relPath < out[j].relPath })
	return out, nil
}
