package pack

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"promptpack/pkg/ignore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildFileContentsSkipsIgnoredDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "hi")
	writeFile(t, filepath.Join(root, ".git", "config"), "[core]")

	got := BuildFileContents([]string{root}, ignore.RulesFileName, zap.NewNop())

	want := "<file_contents>\n" +
		"File: a.txt\n" +
		"```\nhi\n```\n\n" +
		"</file_contents>"
	assert.Equal(t, want, got)
}

func TestBuildFileContentsPrunesIgnoredSubtree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ignore.RulesFileName), "secret\n")
	writeFile(t, filepath.Join(root, "secret", "inner.txt"), "hidden")
	writeFile(t, filepath.Join(root, "visible.txt"), "shown")

	got := BuildFileContents([]string{root}, ignore.RulesFileName, zap.NewNop())

	// inner.txt matches no rule itself, but its parent directory does, so
	// descent is pruned and nothing below it appears.
	assert.NotContains(t, got, "inner.txt")
	assert.NotContains(t, got, "hidden")
	assert.Contains(t, got, "File: visible.txt\n```\nshown\n```\n\n")
}

func TestBuildFileContentsAppliesRulesFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ignore.RulesFileName), "*.log\n")
	writeFile(t, filepath.Join(root, "run.log"), "noise")
	writeFile(t, filepath.Join(root, "run.txt"), "signal")

	got := BuildFileContents([]string{root}, ignore.RulesFileName, zap.NewNop())

	assert.NotContains(t, got, "run.log")
	assert.Contains(t, got, "File: run.txt\n```\nsignal\n```\n\n")
}

func TestBuildFileContentsSingleFileInput(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "sub", "notes.md")
	writeFile(t, file, "hello")

	got := BuildFileContents([]string{file}, ignore.RulesFileName, zap.NewNop())

	// A bare file input is labeled with its base name only.
	want := "<file_contents>\n" +
		"File: notes.md\n" +
		"```\nhello\n```\n\n" +
		"</file_contents>"
	assert.Equal(t, want, got)
}

func TestBuildFileContentsRelativePathsUseForwardSlashes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pkg", "util", "util.go"), "package util\n")

	got := BuildFileContents([]string{root}, ignore.RulesFileName, zap.NewNop())

	assert.Contains(t, got, "File: pkg/util/util.go\n")
}

func TestFileContentsJSONRoundTrip(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "config.json")
	writeFile(t, file, `{"b": 1, "a": [1, 2], "c": {"d": true}}`)

	got := fileContents(file, zap.NewNop())

	// Stable four-space indentation.
	assert.Contains(t, got, "\n    \"a\": [")
	assert.NotContains(t, got, "\t")

	// Re-parsing the emitted content yields the original value.
	var original, reparsed interface{}
	require.NoError(t, json.Unmarshal([]byte(`{"b": 1, "a": [1, 2], "c": {"d": true}}`), &original))
	require.NoError(t, json.Unmarshal([]byte(got), &reparsed))
	assert.Equal(t, original, reparsed)
}

func TestFileContentsJSONParseFallback(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "broken.json")
	writeFile(t, file, "{not json at all")

	got := fileContents(file, zap.NewNop())
	assert.Equal(t, "{not json at all", got)
}

func TestFileContentsBinaryPlaceholder(t *testing.T) {
	root := t.TempDir()

	png := filepath.Join(root, "pixel.png")
	require.NoError(t, os.WriteFile(png, []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}, 0644))
	assert.Equal(t, binaryPlaceholder, fileContents(png, zap.NewNop()))

	pdf := filepath.Join(root, "doc.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.4"), 0644))
	assert.Equal(t, binaryPlaceholder, fileContents(pdf, zap.NewNop()))
}

func TestFileContentsInvalidUTF8BecomesEmpty(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "garbled.txt")
	require.NoError(t, os.WriteFile(file, []byte{0xff, 0xfe, 0xfd}, 0644))

	assert.Equal(t, "", fileContents(file, zap.NewNop()))

	// The block is still emitted, just with empty content.
	got := BuildFileContents([]string{root}, ignore.RulesFileName, zap.NewNop())
	assert.Contains(t, got, "File: garbled.txt\n```\n\n```\n\n")
}

func TestFileContentsMissingFileBecomesEmpty(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.txt")
	assert.Equal(t, "", fileContents(missing, zap.NewNop()))
}

func TestIsBinaryType(t *testing.T) {
	testCases := []struct {
		name      string
		mediaType string
		binary    bool
	}{
		{name: "png image", mediaType: "image/png", binary: true},
		{name: "pdf", mediaType: "application/pdf", binary: true},
		{name: "octet stream", mediaType: "application/octet-stream", binary: true},
		{name: "plain text", mediaType: "text/plain; charset=utf-8", binary: false},
		{name: "json", mediaType: "application/json", binary: false},
		{name: "unknown extension", mediaType: "", binary: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.binary, isBinaryType(tc.mediaType))
		})
	}
}
