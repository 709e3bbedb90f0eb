// File: pkg/pack/contents.go
package pack

import (
	"encoding/json"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"promptpack/pkg/ignore"

	"go.uber.org/zap"
)

// BuildFileContents renders the <file_contents> section for the given input
// paths. Directories are descended depth-first with ignored subtrees
// pruned; each directory's surviving files are emitted in lexicographic
// order before its subdirectories are visited. A bare file input is emitted
// under its base name.
func BuildFileContents(paths []string, rulesFile string, logger *zap.Logger) string {
	var contentBuilder strings.Builder
	contentBuilder.WriteString("<file_contents>\n")

	for _, p := range paths {
		logger.Debug("Processing path for contents", zap.String("path", p))

		info, err := os.Stat(p)
		if err != nil {
			logger.Warn("Cannot stat path for contents", zap.String("path", p), zap.Error(err))
			continue
		}

		if !info.IsDir() {
			if !ignore.StaticMatch(p) {
				writeFileBlock(&contentBuilder, p, filepath.Base(p), logger)
			}
			continue
		}

		if ignore.StaticMatch(p) {
			logger.Debug("Skipping ignored root in contents", zap.String("path", p))
			continue
		}

		f := ignore.Load(p, rulesFile, logger)
		writeContentsLevel(&contentBuilder, p, p, f, logger)
	}

	contentBuilder.WriteString("</file_contents>")
	return contentBuilder.String()
}

// writeContentsLevel emits the content blocks for dir's surviving files and
// then descends into its surviving subdirectories.
func writeContentsLevel(b *strings.Builder, dir, root string, f *ignore.Filter, logger *zap.Logger) {
	dirs, files, err := listEntries(dir, root, f)
	if err != nil {
		logger.Warn("Failed to read directory for contents", zap.String("directory", dir), zap.Error(err))
		return
	}

	for _, name := range files {
		fullPath := filepath.Join(dir, name)
		relPath, relErr := filepath.Rel(root, fullPath)
		if relErr != nil {
			relPath = name
		}
		writeFileBlock(b, fullPath, filepath.ToSlash(relPath), logger)
	}

	for _, name := range dirs {
		writeContentsLevel(b, filepath.Join(dir, name), root, f, logger)
	}
}

// writeFileBlock emits one labeled, fenced content block.
func writeFileBlock(b *strings.Builder, path, displayPath string, logger *zap.Logger) {
	content := fileContents(path, logger)
	b.WriteString("File: " + displayPath + "\n")
	b.WriteString("```\n" + content + "\n```\n\n")
}

// fileContents returns the rendered content of a single file. Files whose
// inferred media type is image, pdf or a generic byte stream get a fixed
// placeholder. JSON files are re-serialized with stable four-space
// indentation, falling back to raw text when parsing fails. Read errors and
// non-UTF-8 content degrade to an empty string so the traversal always
// completes.
func fileContents(path string, logger *zap.Logger) string {
	ext := strings.ToLower(filepath.Ext(path))
	if isBinaryType(mime.TypeByExtension(ext)) {
		logger.Debug("Binary file detected", zap.String("filePath", path))
		return binaryPlaceholder
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Failed to read file", zap.String("filePath", path), zap.Error(err))
		return ""
	}
	if !utf8.Valid(raw) {
		logger.Warn("File is not valid UTF-8 text", zap.String("filePath", path))
		return ""
	}

	if ext == ".json" {
		if pretty, ok := reindentJSON(raw); ok {
			return pretty
		}
		logger.Debug("JSON parsing failed, using raw content", zap.String("filePath", path))
	}

	return string(raw)
}

// isBinaryType classifies a media type as binary. An empty type means the
// extension is unknown and the file is treated as text.
func isBinaryType(mediaType string) bool {
	if mediaType == "" {
		return false
	}
	mediaType = strings.ToLower(mediaType)
	return strings.HasPrefix(mediaType, "image/") ||
		strings.Contains(mediaType, "pdf") ||
		strings.HasPrefix(mediaType, "application/octet-stream")
}

// reindentJSON parses raw as JSON and re-serializes it with four-space
// indentation for readability.
func reindentJSON(raw []byte) (string, bool) {
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}
	pretty, err := json.MarshalIndent(value, "", indentUnit)
	if err != nil {
		return "", false
	}
	return string(pretty), true
}
