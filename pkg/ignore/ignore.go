// Package ignore decides which filesystem entries are excluded from the
// rendered file map and file contents. Exclusion comes from two sources: a
// static deny-list of well-known filesystem artifacts, matched against path
// segments, and optional glob rules loaded from a rules file at the root of
// each traversed directory.
package ignore

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"go.uber.org/zap"
)

// RulesFileName is the per-root rules file, one glob pattern per line.
const RulesFileName = ".packignore"

// staticFragments are well-known version-control, OS-metadata, build and
// cache artifacts. Any path with a segment equal to one of these is
// excluded from every run.
var staticFragments = map[string]struct{}{
	".DS_Store":       {},
	".Spotlight-V100": {},
	".Trashes":        {},
	".fseventsd":      {},
	".AppleDouble":    {},
	"node_modules":    {},
	"vendor":          {},
	".git":            {},
	".svn":            {},
	".hg":             {},
	"dist":            {},
	"__pycache__":     {},
	".pyc":            {},
	".pyo":            {},
	".pyd":            {},
	".cache":          {},
	".idea":           {},
	".vscode":         {},
	".pytest_cache":   {},
	".o":              {},
	".obj":            {},
	".so":             {},
	".dylib":          {},
	".dll":            {},
	".exe":            {},
	".env":            {},
}

// Rule is a single compiled glob pattern from a rules file.
type Rule struct {
	Glob   glob.Glob // Compiled glob for the pattern.
	Line   string    // Original pattern line.
	LineNo int       // Line number in the source (1-based).
}

// Filter holds the ignore rules for one traversal root. Evaluation order is
// fixed: static segment check first, then each rule against the
// root-relative path, then against the base name alone. Any match excludes;
// there are no negation patterns and no directory-only semantics.
type Filter struct {
	rules  []*Rule
	cache  map[string]bool // decision cache keyed by slash-normalized relative path
	logger *zap.Logger
}

// New returns a Filter carrying only the static deny-list.
func New(logger *zap.Logger) *Filter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Filter{
		cache:  make(map[string]bool),
		logger: logger,
	}
}

// Load returns a Filter populated from the rules file found in root, if
// any. A missing or unreadable rules file is not an error: the Filter then
// carries static rules only.
func Load(root, rulesName string, logger *zap.Logger) *Filter {
	f := New(logger)
	if rulesName == "" {
		rulesName = RulesFileName
	}

	rulesPath := filepath.Join(root, rulesName)
	content, err := os.ReadFile(rulesPath)
	if err != nil {
		f.logger.Debug("No rules file loaded", zap.String("filePath", rulesPath), zap.Error(err))
		return f
	}

	f.CompileLines(strings.Split(string(content), "\n")...)
	f.logger.Debug("Compiled rules file",
		zap.String("filePath", rulesPath),
		zap.Int("ruleCount", len(f.rules)))
	return f
}

// CompileLines parses rule lines and appends the resulting globs. Blank
// lines and #-comments are skipped. A single leading slash anchors the
// pattern to the traversal root and is stripped; invalid patterns are
// logged and dropped.
func (f *Filter) CompileLines(lines ...string) {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		trimmed = strings.TrimPrefix(trimmed, "/")

		g, err := glob.Compile(trimmed, '/')
		if err != nil {
			f.logger.Warn("Invalid rule pattern",
				zap.String("pattern", line),
				zap.Int("lineNo", i+1),
				zap.Error(err))
			continue
		}

		f.rules = append(f.rules, &Rule{
			Glob:   g,
			Line:   line,
			LineNo: i + 1, // 1-based line numbering.
		})
	}
}

// RuleCount returns the number of compiled rules, excluding the static set.
func (f *Filter) RuleCount() int {
	return len(f.rules)
}

// Match reports whether the entry at relPath must be excluded. relPath is
// the path relative to the traversal root; separators are normalized before
// matching. Decisions are cached per Filter.
func (f *Filter) Match(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	if excluded, ok := f.cache[relPath]; ok {
		return excluded
	}
	excluded := f.match(relPath)
	f.cache[relPath] = excluded
	return excluded
}

func (f *Filter) match(relPath string) bool {
	if StaticMatch(relPath) {
		f.logger.Debug("Path matches static fragment", zap.String("path", relPath))
		return true
	}

	base := path.Base(relPath)
	for _, r := range f.rules {
		if r.Glob.Match(relPath) || r.Glob.Match(base) {
			f.logger.Debug("Path matches rule",
				zap.String("path", relPath),
				zap.String("pattern", r.Line),
				zap.Int("lineNo", r.LineNo))
			return true
		}
	}
	return false
}

// StaticMatch reports whether any segment of p equals a static fragment.
// It works on any path form, absolute or relative.
func StaticMatch(p string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(p), "/") {
		if _, ok := staticFragments[seg]; ok {
			return true
		}
	}
	return false
}
