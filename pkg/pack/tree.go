// File: pkg/pack/tree.go
package pack

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"promptpack/pkg/ignore"

	"go.uber.org/zap"
)

// BuildFileMap renders the <file_map> section for the given input paths.
// Each path is emitted as a header line followed by its directory tree,
// directories before files at every level, both groups in lexicographic
// order. Ignored entries are skipped and ignored directories are never
// descended into. A bare file input renders a single marker line.
func BuildFileMap(paths []string, rulesFile string, logger *zap.Logger) string {
	var treeBuilder strings.Builder
	treeBuilder.WriteString("<file_map>\n")

	for _, p := range paths {
		logger.Debug("Mapping path", zap.String("path", p))
		treeBuilder.WriteString(p + "\n")

		info, err := os.Stat(p)
		if err != nil {
			logger.Warn("Cannot stat path for map", zap.String("path", p), zap.Error(err))
			continue
		}

		if !info.IsDir() {
			treeBuilder.WriteString(branchMarker + filepath.Base(p) + "\n")
			continue
		}

		if ignore.StaticMatch(p) {
			logger.Debug("Skipping ignored root in map", zap.String("path", p))
			continue
		}

		f := ignore.Load(p, rulesFile, logger)
		writeTreeLevel(&treeBuilder, p, p, 0, f, logger)
	}

	treeBuilder.WriteString("</file_map>\n")
	return treeBuilder.String()
}

// writeTreeLevel emits dir's surviving entries at the given depth and then
// descends into each surviving subdirectory.
func writeTreeLevel(b *strings.Builder, dir, root string, depth int, f *ignore.Filter, logger *zap.Logger) {
	dirs, files, err := listEntries(dir, root, f)
	if err != nil {
		logger.Warn("Failed to read directory for map", zap.String("directory", dir), zap.Error(err))
		return
	}

	indent := strings.Repeat(indentUnit, depth)
	for _, name := range dirs {
		b.WriteString(indent + branchMarker + name + "\n")
	}
	for _, name := range files {
		b.WriteString(indent + branchMarker + name + "\n")
	}

	for _, name := range dirs {
		writeTreeLevel(b, filepath.Join(dir, name), root, depth+1, f, logger)
	}
}

// listEntries returns dir's non-ignored subdirectory and file names, each
// group sorted lexicographically.
func listEntries(dir, root string, f *ignore.Filter) (dirs, files []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	for _, entry := range entries {
		relPath, relErr := filepath.Rel(root, filepath.Join(dir, entry.Name()))
		if relErr != nil || f.Match(relPath) {
			continue
		}
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		} else {
			files = append(files, entry.Name())
		}
	}

	sort.Strings(dirs)
	sort.Strings(files)
	return dirs, files, nil
}
